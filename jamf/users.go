// jamf/users.go
package jamf

import (
	"context"
	"fmt"

	"github.com/harborsec/go-jamf-classic-adapter/response"
)

// ListUsers fetches the user directory and applies the page window.
func (s *Service) ListUsers(ctx context.Context, page PageOptions) ([]UserBasic, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	var envelope struct {
		Users []UserBasic `json:"users"`
	}
	if err := s.client.Get(ctx, "/users", nil, &envelope); err != nil {
		return nil, err
	}

	return window(envelope.Users, page), nil
}

// GetUser fetches one user resolved by id, name or email. A 404 becomes
// ErrNotFound; other identifier kinds fail validation before any network call.
func (s *Service) GetUser(ctx context.Context, ident Identifier) (*User, error) {
	lookupPath, err := ident.pathFor(userIdentifierKinds)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		User User `json:"user"`
	}
	if err := s.client.Get(ctx, "/users"+lookupPath, nil, &envelope); err != nil {
		if response.IsNotFound(err) {
			return nil, fmt.Errorf("user %s=%s: %w", ident.Kind, ident.Value, ErrNotFound)
		}
		return nil, err
	}

	return &envelope.User, nil
}
