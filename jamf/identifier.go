// jamf/identifier.go
package jamf

import (
	"net/url"
	"strings"
)

// IdentifierKind selects which field resolves a single device or user.
type IdentifierKind string

const (
	IdentifierID           IdentifierKind = "id"
	IdentifierName         IdentifierKind = "name"
	IdentifierUDID         IdentifierKind = "udid"
	IdentifierSerialNumber IdentifierKind = "serialnumber"
	IdentifierMACAddress   IdentifierKind = "macaddress"
	IdentifierEmail        IdentifierKind = "email"
)

// identifierPathSegments maps each kind to its Classic API URL path segment.
// The kind dispatch is a lookup table rather than per-command branching.
var identifierPathSegments = map[IdentifierKind]string{
	IdentifierID:           "id",
	IdentifierName:         "name",
	IdentifierUDID:         "udid",
	IdentifierSerialNumber: "serialnumber",
	IdentifierMACAddress:   "macaddress",
	IdentifierEmail:        "email",
}

// ParseIdentifierKind accepts the documented spellings of an identifier kind.
// Underscored forms (serial_number, mac_address) are normalized.
func ParseIdentifierKind(s string) (IdentifierKind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "")
	switch normalized {
	case "id":
		return IdentifierID, nil
	case "name":
		return IdentifierName, nil
	case "udid":
		return IdentifierUDID, nil
	case "serialnumber":
		return IdentifierSerialNumber, nil
	case "macaddress":
		return IdentifierMACAddress, nil
	case "email":
		return IdentifierEmail, nil
	default:
		return "", invalidArgf("unknown identifier kind %q", s)
	}
}

// Identifier is a tagged value resolving one resource. Exactly one kind is
// active per lookup.
type Identifier struct {
	Kind  IdentifierKind
	Value string
}

// NewIdentifier builds an Identifier, rejecting empty values.
func NewIdentifier(kind IdentifierKind, value string) (Identifier, error) {
	if _, ok := identifierPathSegments[kind]; !ok {
		return Identifier{}, invalidArgf("unknown identifier kind %q", kind)
	}
	if strings.TrimSpace(value) == "" {
		return Identifier{}, invalidArgf("identifier value for kind %q must not be empty", kind)
	}
	return Identifier{Kind: kind, Value: value}, nil
}

// pathFor returns the `/{segment}/{value}` lookup path for a resource,
// validating that the resource supports the identifier kind. The value is
// path-escaped.
func (i Identifier) pathFor(supported map[IdentifierKind]bool) (string, error) {
	segment, ok := identifierPathSegments[i.Kind]
	if !ok {
		return "", invalidArgf("unknown identifier kind %q", i.Kind)
	}
	if !supported[i.Kind] {
		return "", invalidArgf("identifier kind %q is not supported for this resource", i.Kind)
	}
	return "/" + segment + "/" + url.PathEscape(i.Value), nil
}

// Identifier kinds accepted per resource.
var (
	computerIdentifierKinds = map[IdentifierKind]bool{
		IdentifierID:           true,
		IdentifierName:         true,
		IdentifierUDID:         true,
		IdentifierSerialNumber: true,
		IdentifierMACAddress:   true,
	}
	mobileDeviceIdentifierKinds = map[IdentifierKind]bool{
		IdentifierID:           true,
		IdentifierName:         true,
		IdentifierUDID:         true,
		IdentifierSerialNumber: true,
		IdentifierMACAddress:   true,
	}
	userIdentifierKinds = map[IdentifierKind]bool{
		IdentifierID:    true,
		IdentifierName:  true,
		IdentifierEmail: true,
	}
)
