package debug

import "os"

var enabled bool

func SetEnabled(value bool) {
	enabled = value
}

func IsEnabled() bool {
	return enabled || os.Getenv("SEEDFIX_DEBUG") != ""
}
