// jamf/computers.go
package jamf

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/harborsec/go-jamf-classic-adapter/response"
)

// ListComputers fetches the basic computer inventory and applies the page
// window. Server ordering is preserved.
func (s *Service) ListComputers(ctx context.Context, page PageOptions) ([]ComputerBasic, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	var envelope struct {
		Computers []ComputerBasic `json:"computers"`
	}
	if err := s.client.Get(ctx, "/computers/subset/basic", nil, &envelope); err != nil {
		return nil, err
	}

	s.log.Debug("Listed computers",
		zap.Int("total", len(envelope.Computers)),
		zap.Int("page", page.Page), zap.Int("limit", page.Limit))

	return window(envelope.Computers, page), nil
}

// MatchComputers searches computers by a match term; `*` wildcards are
// allowed. No match yields an empty slice, not an error.
func (s *Service) MatchComputers(ctx context.Context, match string) ([]ComputerMatch, error) {
	if match == "" {
		return nil, invalidArgf("match term must not be empty")
	}

	var envelope struct {
		Computers []ComputerMatch `json:"computers"`
	}
	err := s.client.Get(ctx, "/computers/match/"+url.PathEscape(match), nil, &envelope)
	if err != nil {
		if response.IsNotFound(err) {
			return []ComputerMatch{}, nil
		}
		return nil, err
	}

	if envelope.Computers == nil {
		return []ComputerMatch{}, nil
	}
	return envelope.Computers, nil
}

// GetComputer fetches the full inventory record for one computer, resolved by
// any supported identifier kind. A 404 becomes ErrNotFound.
func (s *Service) GetComputer(ctx context.Context, ident Identifier) (*Computer, error) {
	lookupPath, err := ident.pathFor(computerIdentifierKinds)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Computer Computer `json:"computer"`
	}
	if err := s.client.Get(ctx, "/computers"+lookupPath, nil, &envelope); err != nil {
		if response.IsNotFound(err) {
			return nil, fmt.Errorf("computer %s=%s: %w", ident.Kind, ident.Value, ErrNotFound)
		}
		return nil, err
	}

	return &envelope.Computer, nil
}

// GetComputerSubset fetches one named inventory subset of a computer. The
// returned record has only the requested subset populated; the canonical
// subset segment is returned alongside it.
func (s *Service) GetComputerSubset(ctx context.Context, ident Identifier, subset string) (*Computer, string, error) {
	segment, err := NormalizeComputerSubset(subset)
	if err != nil {
		return nil, "", err
	}

	lookupPath, err := ident.pathFor(computerIdentifierKinds)
	if err != nil {
		return nil, "", err
	}

	var envelope struct {
		Computer Computer `json:"computer"`
	}
	endpoint := "/computers" + lookupPath + "/subset/" + segment
	if err := s.client.Get(ctx, endpoint, nil, &envelope); err != nil {
		if response.IsNotFound(err) {
			return nil, "", fmt.Errorf("computer %s=%s: %w", ident.Kind, ident.Value, ErrNotFound)
		}
		return nil, "", err
	}

	return &envelope.Computer, segment, nil
}
