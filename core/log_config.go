package core

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// init initializes the logging configuration for the library based on the DEBUG_LPMETRIC environment variable.
// It sets the global logging level to Disabled, Debug, or Info based on the value of DEBUG_LPMETRIC.
func init() {
	// Retrieve the DEBUG_LPMETRIC environment variable, trim spaces, and convert to lowercase.
	debugMode := strings.TrimSpace(strings.ToLower(os.Getenv("DEBUG_LPMETRIC")))

	// Set the global logging level based on the value of DEBUG_LPMETRIC.
	if debugMode == "off" || debugMode == "0" {
		// Disable logging if DEBUG_LPMETRIC is set to "off" or "0".
		zerolog.SetGlobalLevel(zerolog.Disabled)
	} else if debugMode == "full" {
		// Enable debug level logging if DEBUG_LPMETRIC is set to "full".
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		// Set the logging level to info by default.
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
