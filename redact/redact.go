// redact/redact.go
package redact

// sensitiveHeaders are request header keys whose values never appear in logs.
var sensitiveHeaders = map[string]bool{
	"Authorization":       true,
	"Proxy-Authorization": true,
	"Cookie":              true,
	"Set-Cookie":          true,
}

// RedactSensitiveHeaderData redacts sensitive header values based on the
// hideSensitiveData flag. Non-sensitive values pass through unchanged.
func RedactSensitiveHeaderData(hideSensitiveData bool, key, value string) string {
	if hideSensitiveData && sensitiveHeaders[key] {
		return "REDACTED"
	}
	return value
}

// RedactSensitiveValue unconditionally masks a credential value for display,
// keeping nothing of the original.
func RedactSensitiveValue(value string) string {
	if value == "" {
		return ""
	}
	return "REDACTED"
}
