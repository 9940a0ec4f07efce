package user

import (
	"os"
	osuser "os/user"
	"strings"
)

// Identity describes the person running taskflow
type Identity struct {
	Username    string
	DisplayName string
}

// Current returns the identity of the OS user.
// It tries multiple methods with fallbacks:
// 1. os/user - most reliable, gets username and full name from OS
// 2. USER then LOGNAME environment variables - restricted environments
// 3. "unknown" - final fallback to ensure a non-empty value
func Current() Identity {
	return current(osuser.Current)
}

// GetCurrentUsername returns the current system username
func GetCurrentUsername() string {
	return Current().Username
}

func current(lookup func() (*osuser.User, error)) Identity {
	var id Identity

	if u, err := lookup(); err == nil && u != nil {
		id.Username = u.Username
		// GECOS may carry extra comma-separated fields after the name
		id.DisplayName = strings.TrimSpace(strings.Split(u.Name, ",")[0])
	}
	if id.Username == "" {
		id.Username = os.Getenv("USER")
	}
	if id.Username == "" {
		id.Username = os.Getenv("LOGNAME")
	}
	if id.Username == "" {
		id.Username = "unknown"
	}
	if id.DisplayName == "" {
		id.DisplayName = id.Username
	}
	return id
}
