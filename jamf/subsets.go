// jamf/subsets.go
package jamf

import "strings"

// Canonical subset path segments per resource. Keys are the normalized
// spelling (lowercase, separators stripped); values are the segment the
// Classic API expects.
var computerSubsets = map[string]string{
	"general":               "General",
	"location":              "Location",
	"purchasing":            "Purchasing",
	"peripherals":           "Peripherals",
	"hardware":              "Hardware",
	"certificates":          "Certificates",
	"security":              "Security",
	"software":              "Software",
	"extensionattributes":   "ExtensionAttributes",
	"groupsaccounts":        "GroupsAccounts",
	"iphones":               "iphones",
	"configurationprofiles": "ConfigurationProfiles",
}

var mobileDeviceSubsets = map[string]string{
	"general":              "General",
	"location":             "Location",
	"purchasing":           "Purchasing",
	"applications":         "Applications",
	"security":             "Security",
	"network":              "Network",
	"certificates":         "Certificates",
	"provisioningprofiles": "ProvisioningProfiles",
	"mobiledevicegroups":   "MobileDeviceGroups",
	"extensionattributes":  "ExtensionAttributes",
}

func normalizeSubsetName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, " ", "")
}

// NormalizeComputerSubset resolves a caller-supplied subset name to its
// canonical path segment.
func NormalizeComputerSubset(s string) (string, error) {
	if segment, ok := computerSubsets[normalizeSubsetName(s)]; ok {
		return segment, nil
	}
	return "", invalidArgf("unknown computer subset %q", s)
}

// NormalizeMobileDeviceSubset resolves a caller-supplied subset name to its
// canonical path segment.
func NormalizeMobileDeviceSubset(s string) (string, error) {
	if segment, ok := mobileDeviceSubsets[normalizeSubsetName(s)]; ok {
		return segment, nil
	}
	return "", invalidArgf("unknown mobile device subset %q", s)
}

// ComputerSubsetNames lists the accepted computer subset segments.
func ComputerSubsetNames() []string {
	return subsetNames(computerSubsets)
}

// MobileDeviceSubsetNames lists the accepted mobile device subset segments.
func MobileDeviceSubsetNames() []string {
	return subsetNames(mobileDeviceSubsets)
}

func subsetNames(subsets map[string]string) []string {
	names := make([]string, 0, len(subsets))
	for _, segment := range subsets {
		names = append(names, segment)
	}
	return names
}
