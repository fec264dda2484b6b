package core

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// LogLevelEnv names the environment variable that controls the global log level.
const LogLevelEnv = "DEBUG_PAIRDIST"

// init initializes the logging configuration for the application based on the DEBUG_PAIRDIST environment variable.
func init() {
	zerolog.SetGlobalLevel(LevelFromEnv())
}

// LevelFromEnv maps DEBUG_PAIRDIST to a zerolog level.
// "off" or "0" disables logging, "full" enables debug output and anything else means info.
func LevelFromEnv() zerolog.Level {
	debugMode := strings.TrimSpace(strings.ToLower(os.Getenv(LogLevelEnv)))

	switch debugMode {
	case "off", "0":
		return zerolog.Disabled
	case "full":
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}
