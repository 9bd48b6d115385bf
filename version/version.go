// version.go
package version

// AppName holds the name of the adapter
var AppName = "go-jamf-classic-adapter"

// Version holds the current version of the adapter
var Version = "0.3.1"

// GetAppName returns the name of the adapter
func GetAppName() string {
	return AppName
}

// GetVersion returns the current version of the adapter
func GetVersion() string {
	return Version
}

// UserAgent returns the User-Agent header value sent with every request.
func UserAgent() string {
	return AppName + "/" + Version
}
