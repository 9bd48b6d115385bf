// integration/mobiledevices.go
package integration

import (
	"context"

	"github.com/harborsec/go-jamf-classic-adapter/jamf"
)

var mobileDeviceIdentifierValues = []string{"id", "name", "udid", "serialnumber", "macaddress"}

func (a *Adapter) getMobileDevicesCommand() Command {
	return Command{
		Name:        "jamf-get-mobile-devices",
		Description: "List the mobile device inventory in basic form.",
		Args:        pageArgs(),
		Run: func(ctx context.Context, args Args) (*Result, error) {
			page, err := pageOptionsFromArgs(args)
			if err != nil {
				return nil, err
			}

			devices, err := a.service.ListMobileDevices(ctx, page)
			if err != nil {
				return nil, err
			}

			rows := make([][]string, 0, len(devices))
			for _, d := range devices {
				rows = append(rows, []string{
					formatInt(d.ID), d.Name, d.SerialNumber, d.UDID,
					d.WifiMACAddress, d.Username, d.Model,
					formatBool(d.Managed), formatBool(d.Supervised),
				})
			}

			return &Result{
				Outputs: map[string]any{"JAMF.MobileDevice": devices},
				Readable: markdownTable("Jamf Mobile Devices",
					[]string{"ID", "Name", "Serial Number", "UDID", "WiFi MAC Address", "Username", "Model", "Managed", "Supervised"},
					rows),
			}, nil
		},
	}
}

func (a *Adapter) getMobileDeviceByIDCommand() Command {
	return Command{
		Name:        "jamf-get-mobile-device-by-id",
		Description: "Fetch the full inventory record of one mobile device by id.",
		Args: []ArgSpec{
			{Name: "id", Description: "Mobile device id in the inventory.", Required: true},
		},
		Run: func(ctx context.Context, args Args) (*Result, error) {
			ident, err := jamf.NewIdentifier(jamf.IdentifierID, args.String("id"))
			if err != nil {
				return nil, err
			}

			device, err := a.service.GetMobileDevice(ctx, ident)
			if err != nil {
				return nil, err
			}

			return &Result{
				Outputs:  map[string]any{"JAMF.MobileDevice": device},
				Readable: mobileDeviceGeneralTable("Jamf Mobile Device", device),
			}, nil
		},
	}
}

func (a *Adapter) getMobileDeviceByMatchCommand() Command {
	return Command{
		Name:        "jamf-get-mobile-device-by-match",
		Description: "Search mobile devices by a match term; `*` wildcards are allowed.",
		Args: []ArgSpec{
			{Name: "match", Description: "Match term applied across name, serial, UDID, MAC and user fields.", Required: true},
		},
		Run: func(ctx context.Context, args Args) (*Result, error) {
			matches, err := a.service.MatchMobileDevices(ctx, args.String("match"))
			if err != nil {
				return nil, err
			}

			rows := make([][]string, 0, len(matches))
			for _, m := range matches {
				rows = append(rows, []string{
					formatInt(m.ID), m.Name, m.SerialNumber, m.UDID,
					m.WifiMACAddress, m.Username, m.Email, m.Department,
				})
			}

			return &Result{
				Outputs: map[string]any{"JAMF.MobileDevice": matches},
				Readable: markdownTable("Jamf Mobile Device Matches",
					[]string{"ID", "Name", "Serial Number", "UDID", "WiFi MAC Address", "Username", "Email", "Department"},
					rows),
			}, nil
		},
	}
}

func (a *Adapter) getMobileDeviceSubsetCommand() Command {
	return Command{
		Name:        "jamf-get-mobile-device-subset",
		Description: "Fetch one inventory subset of a mobile device.",
		Args: []ArgSpec{
			{Name: "identifier", Description: "Field resolving the mobile device.", Required: true, Allowed: mobileDeviceIdentifierValues},
			{Name: "identifier_value", Description: "Value of the chosen identifier field.", Required: true},
			{Name: "subset", Description: "Inventory subset to fetch.", Required: true, Allowed: jamf.MobileDeviceSubsetNames()},
		},
		Run: func(ctx context.Context, args Args) (*Result, error) {
			ident, err := identifierFromArgs(args)
			if err != nil {
				return nil, err
			}

			device, segment, err := a.service.GetMobileDeviceSubset(ctx, ident, args.String("subset"))
			if err != nil {
				return nil, err
			}

			return &Result{
				Outputs:  map[string]any{"JAMF.MobileDeviceSubset": device},
				Readable: mobileDeviceSubsetReadable(segment, device),
			}, nil
		},
	}
}

func mobileDeviceGeneralTable(title string, d *jamf.MobileDevice) string {
	return keyValueTable(title, [][2]string{
		{"ID", formatInt(d.General.ID)},
		{"Name", d.General.Name},
		{"Serial Number", d.General.SerialNumber},
		{"UDID", d.General.UDID},
		{"WiFi MAC Address", d.General.WifiMACAddress},
		{"IP Address", d.General.IPAddress},
		{"Model", d.General.Model},
		{"OS Version", d.General.OSVersion},
		{"Phone Number", d.General.PhoneNumber},
		{"Managed", formatBool(d.General.Managed)},
		{"Supervised", formatBool(d.General.Supervised)},
		{"Battery Level", formatInt(d.General.BatteryLevel)},
		{"Last Inventory Update", d.General.LastInventoryUpdate},
		{"Username", d.Location.Username},
		{"Email", d.Location.EmailAddress},
	})
}

func mobileDeviceSubsetReadable(segment string, d *jamf.MobileDevice) string {
	switch segment {
	case "General":
		return mobileDeviceGeneralTable("Mobile Device General", d)
	case "Location":
		return keyValueTable("Mobile Device Location", [][2]string{
			{"Username", d.Location.Username},
			{"Real Name", d.Location.Realname},
			{"Email", d.Location.EmailAddress},
			{"Position", d.Location.Position},
			{"Phone", d.Location.Phone},
			{"Department", d.Location.Department},
			{"Building", d.Location.Building},
			{"Room", d.Location.Room},
		})
	case "Purchasing":
		return keyValueTable("Mobile Device Purchasing", [][2]string{
			{"Purchased", formatBool(d.Purchasing.IsPurchased)},
			{"Leased", formatBool(d.Purchasing.IsLeased)},
			{"PO Number", d.Purchasing.PONumber},
			{"Vendor", d.Purchasing.Vendor},
			{"AppleCare ID", d.Purchasing.ApplecareID},
			{"Warranty Expires", d.Purchasing.WarrantyExpires},
		})
	case "Applications":
		rows := make([][]string, 0, len(d.Applications))
		for _, app := range d.Applications {
			rows = append(rows, []string{app.ApplicationName, app.ApplicationVersion, app.Identifier})
		}
		return markdownTable("Mobile Device Applications",
			[]string{"Name", "Version", "Identifier"}, rows)
	case "Security":
		return keyValueTable("Mobile Device Security", [][2]string{
			{"Data Protection", formatBool(d.Security.DataProtection)},
			{"Passcode Present", formatBool(d.Security.PasscodePresent)},
			{"Passcode Compliant", formatBool(d.Security.PasscodeCompliant)},
			{"Activation Lock Enabled", formatBool(d.Security.ActivationLockEnabled)},
			{"Jailbreak Detected", d.Security.JailbreakDetected},
			{"Lost Mode Enabled", d.Security.LostModeEnabled},
			{"Lost Mode Message", d.Security.LostModeMessage},
			{"Lost Mode Phone", d.Security.LostModePhone},
		})
	case "Network":
		return keyValueTable("Mobile Device Network", [][2]string{
			{"Home Carrier", d.Network.HomeCarrierNetwork},
			{"Current Carrier", d.Network.CurrentCarrierNetwork},
			{"Cellular Technology", d.Network.CellularTechnology},
			{"Data Roaming Enabled", formatBool(d.Network.DataRoamingEnabled)},
			{"IMEI", d.Network.IMEI},
			{"ICCID", d.Network.ICCID},
		})
	case "Certificates":
		rows := make([][]string, 0, len(d.Certificates))
		for _, cert := range d.Certificates {
			rows = append(rows, []string{cert.CommonName, formatBool(cert.Identity), cert.ExpiresUTC})
		}
		return markdownTable("Mobile Device Certificates",
			[]string{"Common Name", "Identity", "Expires"}, rows)
	case "ProvisioningProfiles":
		rows := make([][]string, 0, len(d.ProvisioningProfiles))
		for _, p := range d.ProvisioningProfiles {
			rows = append(rows, []string{p.DisplayName, p.UUID, p.ExpirationDate})
		}
		return markdownTable("Mobile Device Provisioning Profiles",
			[]string{"Display Name", "UUID", "Expiration Date"}, rows)
	case "MobileDeviceGroups":
		rows := make([][]string, 0, len(d.MobileDeviceGroups))
		for _, g := range d.MobileDeviceGroups {
			rows = append(rows, []string{formatInt(g.ID), g.Name})
		}
		return markdownTable("Mobile Device Groups",
			[]string{"ID", "Name"}, rows)
	case "ExtensionAttributes":
		rows := make([][]string, 0, len(d.ExtensionAttributes))
		for _, ea := range d.ExtensionAttributes {
			rows = append(rows, []string{formatInt(ea.ID), ea.Name, ea.Type, ea.Value})
		}
		return markdownTable("Mobile Device Extension Attributes",
			[]string{"ID", "Name", "Type", "Value"}, rows)
	default:
		return mobileDeviceGeneralTable("Jamf Mobile Device", d)
	}
}
