package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// InitLogger initializes the structured logger with proper configuration
func InitLogger(logLevel string, isDevelopment bool) *logrus.Logger {
	log := logrus.New()

	// Override with environment if not provided
	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
		if logLevel == "" {
			if isDevelopment {
				logLevel = "debug"
			} else {
				logLevel = "info"
			}
		}
	}

	if level, err := logrus.ParseLevel(strings.ToLower(logLevel)); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", logLevel).Warn("Invalid LOG_LEVEL, using INFO")
	}

	// Set formatter based on environment
	if !isDevelopment || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     true,
		})
	}

	log.SetOutput(os.Stdout)

	Logger = log

	return log
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	if Logger == nil {
		return InitLogger("info", false)
	}
	return Logger
}

// WithSource creates a logger with source-sheet context
func WithSource(source string) *logrus.Entry {
	return GetLogger().WithField("source", source)
}

// WithLoadID creates a logger with pool-build load context
func WithLoadID(loadID string) *logrus.Entry {
	return GetLogger().WithField("load_id", loadID)
}

// WithPlayerContext creates a logger with player context
func WithPlayerContext(key, displayName string) *logrus.Entry {
	fields := logrus.Fields{}
	if key != "" {
		fields["player_key"] = key
	}
	if displayName != "" {
		fields["player_name"] = displayName
	}
	return GetLogger().WithFields(fields)
}

// WithPoolContext creates a logger with pool build context
func WithPoolContext(loadID string, sourceCount int) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"load_id": loadID,
		"sources": sourceCount,
	})
}
