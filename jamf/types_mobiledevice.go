// jamf/types_mobiledevice.go
package jamf

// MobileDeviceBasic is one entry of the mobile devices listing.
type MobileDeviceBasic struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	DeviceName      string `json:"device_name"`
	UDID            string `json:"udid"`
	SerialNumber    string `json:"serial_number"`
	PhoneNumber     string `json:"phone_number"`
	WifiMACAddress  string `json:"wifi_mac_address"`
	Managed         bool   `json:"managed"`
	Supervised      bool   `json:"supervised"`
	Model           string `json:"model"`
	ModelIdentifier string `json:"model_identifier"`
	Username        string `json:"username"`
}

// MobileDeviceMatch is one entry of a mobile devices match search.
type MobileDeviceMatch struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	UDID           string `json:"udid"`
	SerialNumber   string `json:"serial_number"`
	WifiMACAddress string `json:"wifi_mac_address"`
	Username       string `json:"username"`
	Realname       string `json:"realname"`
	Email          string `json:"email"`
	Building       string `json:"building"`
	Department     string `json:"department"`
	Room           string `json:"room"`
}

// MobileDevice is the full inventory record.
type MobileDevice struct {
	General              MobileDeviceGeneral   `json:"general"`
	Location             ComputerLocation      `json:"location"`
	Purchasing           ComputerPurchasing    `json:"purchasing"`
	Applications         []MobileDeviceApp     `json:"applications"`
	Security             MobileDeviceSecurity  `json:"security_object"`
	Network              MobileDeviceNetwork   `json:"network"`
	Certificates         []Certificate         `json:"certificates"`
	ProvisioningProfiles []ProvisioningProfile `json:"provisioning_profiles"`
	MobileDeviceGroups   []MobileDeviceGroup   `json:"mobile_device_groups"`
	ExtensionAttributes  []ExtensionAttribute  `json:"extension_attributes"`
}

// MobileDeviceGeneral is the general inventory subset.
type MobileDeviceGeneral struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	DeviceName          string `json:"device_name"`
	UDID                string `json:"udid"`
	SerialNumber        string `json:"serial_number"`
	CapacityMB          int64  `json:"capacity_mb"`
	AvailableMB         int64  `json:"available_mb"`
	PercentageUsed      int    `json:"percentage_used"`
	OSType              string `json:"os_type"`
	OSVersion           string `json:"os_version"`
	OSBuild             string `json:"os_build"`
	Model               string `json:"model"`
	ModelIdentifier     string `json:"model_identifier"`
	ModemFirmware       string `json:"modem_firmware"`
	PhoneNumber         string `json:"phone_number"`
	IPAddress           string `json:"ip_address"`
	WifiMACAddress      string `json:"wifi_mac_address"`
	BluetoothMACAddress string `json:"bluetooth_mac_address"`
	Managed             bool   `json:"managed"`
	Supervised          bool   `json:"supervised"`
	BatteryLevel        int    `json:"battery_level"`
	LastInventoryUpdate string `json:"last_inventory_update"`
}

// MobileDeviceApp is one installed application.
type MobileDeviceApp struct {
	ApplicationName    string `json:"application_name"`
	ApplicationVersion string `json:"application_version"`
	Identifier         string `json:"identifier"`
}

// MobileDeviceSecurity is the security subset, including lost-mode state.
type MobileDeviceSecurity struct {
	DataProtection          bool   `json:"data_protection"`
	BlockLevelEncryption    bool   `json:"block_level_encryption_capable"`
	FileLevelEncryption     bool   `json:"file_level_encryption_capable"`
	PasscodePresent         bool   `json:"passcode_present"`
	PasscodeCompliant       bool   `json:"passcode_compliant"`
	HardwareEncryption      int    `json:"hardware_encryption"`
	ActivationLockEnabled   bool   `json:"activation_lock_enabled"`
	JailbreakDetected       string `json:"jailbreak_detected"`
	LostModeEnabled         string `json:"lost_mode_enabled"`
	LostModeEnforced        bool   `json:"lost_mode_enforced"`
	LostModeEnableIssuedUTC string `json:"lost_mode_enable_issued_utc"`
	LostModeMessage         string `json:"lost_mode_message"`
	LostModePhone           string `json:"lost_mode_phone"`
	LostModeFootnote        string `json:"lost_mode_footnote"`
}

// MobileDeviceNetwork is the network subset.
type MobileDeviceNetwork struct {
	HomeCarrierNetwork     string `json:"home_carrier_network"`
	CurrentCarrierNetwork  string `json:"current_carrier_network"`
	CarrierSettingsVersion string `json:"carrier_settings_version"`
	CellularTechnology     string `json:"cellular_technology"`
	DataRoamingEnabled     bool   `json:"data_roaming_enabled"`
	VoiceRoamingEnabled    string `json:"voice_roaming_enabled"`
	IMEI                   string `json:"imei"`
	ICCID                  string `json:"iccid"`
}

// ProvisioningProfile is one installed provisioning profile.
type ProvisioningProfile struct {
	DisplayName    string `json:"display_name"`
	ExpirationDate string `json:"expiration_date"`
	UUID           string `json:"uuid"`
}

// MobileDeviceGroup is one static or smart group membership.
type MobileDeviceGroup struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
