// integration/users.go
package integration

import (
	"context"
	"strings"

	"github.com/harborsec/go-jamf-classic-adapter/jamf"
)

var userIdentifierValues = []string{"id", "name", "email"}

func (a *Adapter) getUsersCommand() Command {
	return Command{
		Name:        "jamf-get-users",
		Description: "List the user directory.",
		Args:        pageArgs(),
		Run: func(ctx context.Context, args Args) (*Result, error) {
			page, err := pageOptionsFromArgs(args)
			if err != nil {
				return nil, err
			}

			users, err := a.service.ListUsers(ctx, page)
			if err != nil {
				return nil, err
			}

			rows := make([][]string, 0, len(users))
			for _, u := range users {
				rows = append(rows, []string{formatInt(u.ID), u.Name})
			}

			return &Result{
				Outputs: map[string]any{"JAMF.User": users},
				Readable: markdownTable("Jamf Users",
					[]string{"ID", "Name"}, rows),
			}, nil
		},
	}
}

func (a *Adapter) getUserCommand() Command {
	return Command{
		Name:        "jamf-get-user",
		Description: "Fetch one user by id, name or email.",
		Args: []ArgSpec{
			{Name: "identifier", Description: "Field resolving the user.", Required: true, Allowed: userIdentifierValues},
			{Name: "identifier_value", Description: "Value of the chosen identifier field.", Required: true},
		},
		Run: func(ctx context.Context, args Args) (*Result, error) {
			ident, err := identifierFromArgs(args)
			if err != nil {
				return nil, err
			}

			user, err := a.service.GetUser(ctx, ident)
			if err != nil {
				return nil, err
			}

			return &Result{
				Outputs:  map[string]any{"JAMF.User": user},
				Readable: userTable(user),
			}, nil
		},
	}
}

func userTable(u *jamf.User) string {
	return keyValueTable("Jamf User", [][2]string{
		{"ID", formatInt(u.ID)},
		{"Name", u.Name},
		{"Full Name", u.FullName},
		{"Email", u.Email},
		{"Phone Number", u.PhoneNumber},
		{"Position", u.Position},
		{"LDAP Server", u.LDAPServer.Name},
		{"Computers", resourceNames(u.Links.Computers)},
		{"Mobile Devices", resourceNames(u.Links.MobileDevices)},
	})
}

func resourceNames(refs []jamf.ResourceRef) string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
	}
	return strings.Join(names, ", ")
}
