// jamf/mobiledevices.go
package jamf

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/harborsec/go-jamf-classic-adapter/response"
)

// ListMobileDevices fetches the mobile device inventory and applies the page
// window. Server ordering is preserved.
func (s *Service) ListMobileDevices(ctx context.Context, page PageOptions) ([]MobileDeviceBasic, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	var envelope struct {
		MobileDevices []MobileDeviceBasic `json:"mobile_devices"`
	}
	if err := s.client.Get(ctx, "/mobiledevices", nil, &envelope); err != nil {
		return nil, err
	}

	s.log.Debug("Listed mobile devices",
		zap.Int("total", len(envelope.MobileDevices)),
		zap.Int("page", page.Page), zap.Int("limit", page.Limit))

	return window(envelope.MobileDevices, page), nil
}

// MatchMobileDevices searches mobile devices by a match term; `*` wildcards
// are allowed. No match yields an empty slice, not an error.
func (s *Service) MatchMobileDevices(ctx context.Context, match string) ([]MobileDeviceMatch, error) {
	if match == "" {
		return nil, invalidArgf("match term must not be empty")
	}

	var envelope struct {
		MobileDevices []MobileDeviceMatch `json:"mobile_devices"`
	}
	err := s.client.Get(ctx, "/mobiledevices/match/"+url.PathEscape(match), nil, &envelope)
	if err != nil {
		if response.IsNotFound(err) {
			return []MobileDeviceMatch{}, nil
		}
		return nil, err
	}

	if envelope.MobileDevices == nil {
		return []MobileDeviceMatch{}, nil
	}
	return envelope.MobileDevices, nil
}

// GetMobileDevice fetches the full inventory record for one mobile device. A
// 404 becomes ErrNotFound.
func (s *Service) GetMobileDevice(ctx context.Context, ident Identifier) (*MobileDevice, error) {
	lookupPath, err := ident.pathFor(mobileDeviceIdentifierKinds)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		MobileDevice MobileDevice `json:"mobile_device"`
	}
	if err := s.client.Get(ctx, "/mobiledevices"+lookupPath, nil, &envelope); err != nil {
		if response.IsNotFound(err) {
			return nil, fmt.Errorf("mobile device %s=%s: %w", ident.Kind, ident.Value, ErrNotFound)
		}
		return nil, err
	}

	return &envelope.MobileDevice, nil
}

// GetMobileDeviceSubset fetches one named inventory subset of a mobile device.
func (s *Service) GetMobileDeviceSubset(ctx context.Context, ident Identifier, subset string) (*MobileDevice, string, error) {
	segment, err := NormalizeMobileDeviceSubset(subset)
	if err != nil {
		return nil, "", err
	}

	lookupPath, err := ident.pathFor(mobileDeviceIdentifierKinds)
	if err != nil {
		return nil, "", err
	}

	var envelope struct {
		MobileDevice MobileDevice `json:"mobile_device"`
	}
	endpoint := "/mobiledevices" + lookupPath + "/subset/" + segment
	if err := s.client.Get(ctx, endpoint, nil, &envelope); err != nil {
		if response.IsNotFound(err) {
			return nil, "", fmt.Errorf("mobile device %s=%s: %w", ident.Kind, ident.Value, ErrNotFound)
		}
		return nil, "", err
	}

	return &envelope.MobileDevice, segment, nil
}
