// jamf/types_user.go
package jamf

// UserBasic is one entry of the users listing.
type UserBasic struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// User is the full user record.
type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	EmailAddress string     `json:"email_address"`
	PhoneNumber  string     `json:"phone_number"`
	Position     string     `json:"position"`
	LDAPServer   LDAPServer `json:"ldap_server"`
	Links        UserLinks  `json:"links"`
}

// LDAPServer identifies the directory service a user came from.
type LDAPServer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UserLinks lists the inventory objects assigned to a user.
type UserLinks struct {
	Computers         []ResourceRef `json:"computers"`
	Peripherals       []ResourceRef `json:"peripherals"`
	MobileDevices     []ResourceRef `json:"mobile_devices"`
	VPPAssignments    []ResourceRef `json:"vpp_assignments"`
	TotalVPPCodeCount int           `json:"total_vpp_code_count"`
}

// ResourceRef is a bare id/name reference to another resource.
type ResourceRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
