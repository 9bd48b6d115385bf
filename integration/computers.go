// integration/computers.go
package integration

import (
	"context"

	"github.com/harborsec/go-jamf-classic-adapter/jamf"
)

var computerIdentifierValues = []string{"id", "name", "udid", "serialnumber", "macaddress"}

func pageArgs() []ArgSpec {
	return []ArgSpec{
		{Name: "limit", Description: "Maximum number of entries to return (1-200).", Default: "50"},
		{Name: "page", Description: "Zero-based page offset into the listing.", Default: "0"},
	}
}

func pageOptionsFromArgs(args Args) (jamf.PageOptions, error) {
	limit, err := args.Int("limit")
	if err != nil {
		return jamf.PageOptions{}, err
	}
	page, err := args.Int("page")
	if err != nil {
		return jamf.PageOptions{}, err
	}
	return jamf.PageOptions{Page: page, Limit: limit}, nil
}

func identifierFromArgs(args Args) (jamf.Identifier, error) {
	kind, err := jamf.ParseIdentifierKind(args.String("identifier"))
	if err != nil {
		return jamf.Identifier{}, err
	}
	return jamf.NewIdentifier(kind, args.String("identifier_value"))
}

func (a *Adapter) getComputersCommand() Command {
	return Command{
		Name:        "jamf-get-computers",
		Description: "List the computer inventory in basic form.",
		Args:        pageArgs(),
		Run: func(ctx context.Context, args Args) (*Result, error) {
			page, err := pageOptionsFromArgs(args)
			if err != nil {
				return nil, err
			}

			computers, err := a.service.ListComputers(ctx, page)
			if err != nil {
				return nil, err
			}

			rows := make([][]string, 0, len(computers))
			for _, c := range computers {
				rows = append(rows, []string{
					formatInt(c.ID), c.Name, c.SerialNumber, c.UDID,
					c.MACAddress, c.Username, c.Model, formatBool(c.Managed),
				})
			}

			return &Result{
				Outputs: map[string]any{"JAMF.Computer": computers},
				Readable: markdownTable("Jamf Computers",
					[]string{"ID", "Name", "Serial Number", "UDID", "MAC Address", "Username", "Model", "Managed"},
					rows),
			}, nil
		},
	}
}

func (a *Adapter) getComputerByIDCommand() Command {
	return Command{
		Name:        "jamf-get-computer-by-id",
		Description: "Fetch the full inventory record of one computer by id.",
		Args: []ArgSpec{
			{Name: "id", Description: "Computer id in the inventory.", Required: true},
		},
		Run: func(ctx context.Context, args Args) (*Result, error) {
			ident, err := jamf.NewIdentifier(jamf.IdentifierID, args.String("id"))
			if err != nil {
				return nil, err
			}

			computer, err := a.service.GetComputer(ctx, ident)
			if err != nil {
				return nil, err
			}

			return &Result{
				Outputs:  map[string]any{"JAMF.Computer": computer},
				Readable: computerGeneralTable("Jamf Computer", computer),
			}, nil
		},
	}
}

func (a *Adapter) getComputerByMatchCommand() Command {
	return Command{
		Name:        "jamf-get-computer-by-match",
		Description: "Search computers by a match term; `*` wildcards are allowed.",
		Args: []ArgSpec{
			{Name: "match", Description: "Match term applied across name, serial, UDID, MAC and user fields.", Required: true},
		},
		Run: func(ctx context.Context, args Args) (*Result, error) {
			matches, err := a.service.MatchComputers(ctx, args.String("match"))
			if err != nil {
				return nil, err
			}

			rows := make([][]string, 0, len(matches))
			for _, m := range matches {
				rows = append(rows, []string{
					formatInt(m.ID), m.Name, m.SerialNumber, m.UDID,
					m.MACAddress, m.Username, m.Email, m.Department,
				})
			}

			return &Result{
				Outputs: map[string]any{"JAMF.Computer": matches},
				Readable: markdownTable("Jamf Computer Matches",
					[]string{"ID", "Name", "Serial Number", "UDID", "MAC Address", "Username", "Email", "Department"},
					rows),
			}, nil
		},
	}
}

func (a *Adapter) getComputerSubsetCommand() Command {
	return Command{
		Name:        "jamf-get-computer-subset",
		Description: "Fetch one inventory subset of a computer.",
		Args: []ArgSpec{
			{Name: "identifier", Description: "Field resolving the computer.", Required: true, Allowed: computerIdentifierValues},
			{Name: "identifier_value", Description: "Value of the chosen identifier field.", Required: true},
			{Name: "subset", Description: "Inventory subset to fetch.", Required: true, Allowed: jamf.ComputerSubsetNames()},
		},
		Run: func(ctx context.Context, args Args) (*Result, error) {
			ident, err := identifierFromArgs(args)
			if err != nil {
				return nil, err
			}

			computer, segment, err := a.service.GetComputerSubset(ctx, ident, args.String("subset"))
			if err != nil {
				return nil, err
			}

			return &Result{
				Outputs:  map[string]any{"JAMF.ComputerSubset": computer},
				Readable: computerSubsetReadable(segment, computer),
			}, nil
		},
	}
}

func computerGeneralTable(title string, c *jamf.Computer) string {
	return keyValueTable(title, [][2]string{
		{"ID", formatInt(c.General.ID)},
		{"Name", c.General.Name},
		{"Serial Number", c.General.SerialNumber},
		{"UDID", c.General.UDID},
		{"MAC Address", c.General.MACAddress},
		{"IP Address", c.General.IPAddress},
		{"Platform", c.General.Platform},
		{"MDM Capable", formatBool(c.General.MDMCapable)},
		{"Last Contact", c.General.LastContactTime},
		{"Username", c.Location.Username},
		{"Email", c.Location.EmailAddress},
		{"Department", c.Location.Department},
		{"Building", c.Location.Building},
	})
}

// computerSubsetReadable renders the subset that was requested; every other
// section of the record is absent by construction.
func computerSubsetReadable(segment string, c *jamf.Computer) string {
	switch segment {
	case "General":
		return computerGeneralTable("Computer General", c)
	case "Location":
		return keyValueTable("Computer Location", [][2]string{
			{"Username", c.Location.Username},
			{"Real Name", c.Location.Realname},
			{"Email", c.Location.EmailAddress},
			{"Position", c.Location.Position},
			{"Phone", c.Location.Phone},
			{"Department", c.Location.Department},
			{"Building", c.Location.Building},
			{"Room", c.Location.Room},
		})
	case "Purchasing":
		return keyValueTable("Computer Purchasing", [][2]string{
			{"Purchased", formatBool(c.Purchasing.IsPurchased)},
			{"Leased", formatBool(c.Purchasing.IsLeased)},
			{"PO Number", c.Purchasing.PONumber},
			{"Vendor", c.Purchasing.Vendor},
			{"AppleCare ID", c.Purchasing.ApplecareID},
			{"Purchase Price", c.Purchasing.PurchasePrice},
			{"Warranty Expires", c.Purchasing.WarrantyExpires},
		})
	case "Peripherals":
		rows := make([][]string, 0, len(c.Peripherals))
		for _, p := range c.Peripherals {
			rows = append(rows, []string{formatInt(p.ID), p.Type, p.BarCode1, p.BarCode2})
		}
		return markdownTable("Computer Peripherals",
			[]string{"ID", "Type", "Bar Code 1", "Bar Code 2"}, rows)
	case "Hardware":
		return keyValueTable("Computer Hardware", [][2]string{
			{"Make", c.Hardware.Make},
			{"Model", c.Hardware.Model},
			{"Model Identifier", c.Hardware.ModelIdentifier},
			{"OS Name", c.Hardware.OSName},
			{"OS Version", c.Hardware.OSVersion},
			{"OS Build", c.Hardware.OSBuild},
			{"Processor", c.Hardware.ProcessorType},
			{"Total RAM", formatInt(int(c.Hardware.TotalRAM))},
			{"SIP Status", c.Hardware.SIPStatus},
		})
	case "Certificates":
		rows := make([][]string, 0, len(c.Certificates))
		for _, cert := range c.Certificates {
			rows = append(rows, []string{cert.CommonName, formatBool(cert.Identity), cert.ExpiresUTC})
		}
		return markdownTable("Computer Certificates",
			[]string{"Common Name", "Identity", "Expires"}, rows)
	case "Security":
		return keyValueTable("Computer Security", [][2]string{
			{"Activation Lock", formatBool(c.Security.ActivationLock)},
			{"Recovery Lock Enabled", formatBool(c.Security.RecoveryLockEnabled)},
			{"Secure Boot Level", c.Security.SecureBootLevel},
			{"External Boot Level", c.Security.ExternalBootLevel},
			{"Firewall Enabled", formatBool(c.Security.FirewallEnabled)},
		})
	case "Software":
		rows := make([][]string, 0, len(c.Software.Applications))
		for _, app := range c.Software.Applications {
			rows = append(rows, []string{app.Name, app.Version, app.Path})
		}
		return markdownTable("Computer Software",
			[]string{"Name", "Version", "Path"}, rows)
	case "ExtensionAttributes":
		rows := make([][]string, 0, len(c.ExtensionAttributes))
		for _, ea := range c.ExtensionAttributes {
			rows = append(rows, []string{formatInt(ea.ID), ea.Name, ea.Type, ea.Value})
		}
		return markdownTable("Computer Extension Attributes",
			[]string{"ID", "Name", "Type", "Value"}, rows)
	case "GroupsAccounts":
		rows := make([][]string, 0, len(c.GroupsAccounts.LocalAccounts))
		for _, acct := range c.GroupsAccounts.LocalAccounts {
			rows = append(rows, []string{acct.Name, acct.Realname, acct.UID, formatBool(acct.Administrator)})
		}
		return markdownTable("Computer Local Accounts",
			[]string{"Name", "Real Name", "UID", "Administrator"}, rows)
	case "iphones":
		rows := make([][]string, 0, len(c.IPhones))
		for _, d := range c.IPhones {
			rows = append(rows, []string{formatInt(d.ID), d.Name, d.SerialNumber, d.UDID})
		}
		return markdownTable("Computer Paired Devices",
			[]string{"ID", "Name", "Serial Number", "UDID"}, rows)
	case "ConfigurationProfiles":
		rows := make([][]string, 0, len(c.ConfigurationProfiles))
		for _, p := range c.ConfigurationProfiles {
			rows = append(rows, []string{formatInt(p.ID), p.Name, p.UUID, formatBool(p.IsRemovable)})
		}
		return markdownTable("Computer Configuration Profiles",
			[]string{"ID", "Name", "UUID", "Removable"}, rows)
	default:
		return computerGeneralTable("Jamf Computer", c)
	}
}
