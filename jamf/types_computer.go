// jamf/types_computer.go
// Inventory record shapes for the computers endpoints. Field names follow the
// Classic API JSON keys; absent optional keys decode to zero values so every
// projection has a fixed shape.
package jamf

// ComputerBasic is one entry of the computers basic subset listing.
type ComputerBasic struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Managed         bool   `json:"managed"`
	Username        string `json:"username"`
	Model           string `json:"model"`
	Department      string `json:"department"`
	Building        string `json:"building"`
	MACAddress      string `json:"mac_address"`
	UDID            string `json:"udid"`
	SerialNumber    string `json:"serial_number"`
	ReportDateUTC   string `json:"report_date_utc"`
	ReportDateEpoch int64  `json:"report_date_epoch"`
}

// ComputerMatch is one entry of a computers match search.
type ComputerMatch struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Realname     string `json:"realname"`
	MACAddress   string `json:"mac_address"`
	UDID         string `json:"udid"`
	SerialNumber string `json:"serial_number"`
	Building     string `json:"building"`
	Department   string `json:"department"`
	Room         string `json:"room"`
}

// Computer is the full inventory record.
type Computer struct {
	General               ComputerGeneral             `json:"general"`
	Location              ComputerLocation            `json:"location"`
	Purchasing            ComputerPurchasing          `json:"purchasing"`
	Peripherals           []Peripheral                `json:"peripherals"`
	Hardware              ComputerHardware            `json:"hardware"`
	Certificates          []Certificate               `json:"certificates"`
	Security              ComputerSecurity            `json:"security"`
	Software              ComputerSoftware            `json:"software"`
	ExtensionAttributes   []ExtensionAttribute        `json:"extension_attributes"`
	GroupsAccounts        ComputerGroupsAccounts      `json:"groups_accounts"`
	IPhones               []MobileDeviceBasic         `json:"iphones"`
	ConfigurationProfiles []ConfigurationProfileBasic `json:"configuration_profiles"`
}

// ComputerGeneral is the general inventory subset.
type ComputerGeneral struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	MACAddress      string `json:"mac_address"`
	AltMACAddress   string `json:"alt_mac_address"`
	IPAddress       string `json:"ip_address"`
	SerialNumber    string `json:"serial_number"`
	UDID            string `json:"udid"`
	JamfVersion     string `json:"jamf_version"`
	Platform        string `json:"platform"`
	MDMCapable      bool   `json:"mdm_capable"`
	ReportDate      string `json:"report_date"`
	LastContactTime string `json:"last_contact_time"`
}

// ComputerLocation is the user-and-location subset.
type ComputerLocation struct {
	Username     string `json:"username"`
	Realname     string `json:"realname"`
	RealName     string `json:"real_name"`
	EmailAddress string `json:"email_address"`
	Position     string `json:"position"`
	Phone        string `json:"phone"`
	Department   string `json:"department"`
	Building     string `json:"building"`
	Room         string `json:"room"`
}

// ComputerPurchasing is the purchasing subset.
type ComputerPurchasing struct {
	IsPurchased       bool   `json:"is_purchased"`
	IsLeased          bool   `json:"is_leased"`
	PONumber          string `json:"po_number"`
	Vendor            string `json:"vendor"`
	ApplecareID       string `json:"applecare_id"`
	PurchasePrice     string `json:"purchase_price"`
	PurchasingAccount string `json:"purchasing_account"`
	PODate            string `json:"po_date"`
	WarrantyExpires   string `json:"warranty_expires"`
}

// Peripheral is one attached peripheral record.
type Peripheral struct {
	ID       int    `json:"id"`
	BarCode1 string `json:"bar_code_1"`
	BarCode2 string `json:"bar_code_2"`
	Type     string `json:"type"`
}

// ComputerHardware is the hardware subset.
type ComputerHardware struct {
	Make              string          `json:"make"`
	Model             string          `json:"model"`
	ModelIdentifier   string          `json:"model_identifier"`
	OSName            string          `json:"os_name"`
	OSVersion         string          `json:"os_version"`
	OSBuild           string          `json:"os_build"`
	ProcessorType     string          `json:"processor_type"`
	ProcessorSpeedMhz int             `json:"processor_speed_mhz"`
	NumberProcessors  int             `json:"number_processors"`
	TotalRAM          int64           `json:"total_ram"`
	BootROM           string          `json:"boot_rom"`
	BatteryCapacity   int             `json:"battery_capacity"`
	SIPStatus         string          `json:"sip_status"`
	Storage           []StorageDevice `json:"storage"`
}

// StorageDevice is one physical disk in the hardware subset.
type StorageDevice struct {
	Disk            string `json:"disk"`
	Model           string `json:"model"`
	Serial          string `json:"serial_number"`
	Size            int64  `json:"size"`
	DriveCapacityMB int64  `json:"drive_capacity_mb"`
	SmartStatus     string `json:"smart_status"`
}

// Certificate is one identity or device certificate.
type Certificate struct {
	CommonName   string `json:"common_name"`
	Identity     bool   `json:"identity"`
	ExpiresUTC   string `json:"expires_utc"`
	ExpiresEpoch int64  `json:"expires_epoch"`
	Name         string `json:"name"`
}

// ComputerSecurity is the security subset.
type ComputerSecurity struct {
	ActivationLock      bool   `json:"activation_lock"`
	RecoveryLockEnabled bool   `json:"recovery_lock_enabled"`
	SecureBootLevel     string `json:"secure_boot_level"`
	ExternalBootLevel   string `json:"external_boot_level"`
	FirewallEnabled     bool   `json:"firewall_enabled"`
}

// ComputerSoftware is the software subset.
type ComputerSoftware struct {
	UnixExecutables          []string      `json:"unix_executables"`
	InstalledByCasper        []string      `json:"installed_by_casper"`
	AvailableSoftwareUpdates []string      `json:"available_software_updates"`
	Applications             []Application `json:"applications"`
}

// Application is one installed application.
type Application struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Version string `json:"version"`
}

// ExtensionAttribute is one inventory extension attribute value.
type ExtensionAttribute struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ComputerGroupsAccounts is the group-membership and local-account subset.
type ComputerGroupsAccounts struct {
	ComputerGroupMemberships []string       `json:"computer_group_memberships"`
	LocalAccounts            []LocalAccount `json:"local_accounts"`
}

// LocalAccount is one local user account on a computer.
type LocalAccount struct {
	Name          string `json:"name"`
	Realname      string `json:"realname"`
	UID           string `json:"uid"`
	Home          string `json:"home"`
	Administrator bool   `json:"administrator"`
}

// ConfigurationProfileBasic is one applied configuration profile.
type ConfigurationProfileBasic struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	UUID        string `json:"uuid"`
	IsRemovable bool   `json:"is_removable"`
}
