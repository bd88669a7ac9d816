package user

import (
	"os"
	"os/user"
)

// Name returns the name recorded as the author of board writes.
// LEADBOARD_USER wins so shared machines and CI can set an explicit owner;
// otherwise the OS account is used, then $USER, then "unknown".
func Name() string {
	if name := os.Getenv("LEADBOARD_USER"); name != "" {
		return name
	}
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
