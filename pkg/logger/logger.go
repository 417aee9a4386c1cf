package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// InitLogger builds the structured logger used across the service.
func InitLogger(logLevel string, isDevelopment bool) *logrus.Logger {
	log := logrus.New()

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

	return log
}

// WithSheet returns an entry tagged with the workbook sheet being accessed.
func WithSheet(log *logrus.Logger, sheet string) *logrus.Entry {
	return log.WithField("sheet", sheet)
}

// WithRound returns an entry tagged with capture context.
func WithRound(log *logrus.Logger, roundID, playerID string) *logrus.Entry {
	fields := logrus.Fields{}
	if roundID != "" {
		fields["round_id"] = roundID
	}
	if playerID != "" {
		fields["player_id"] = playerID
	}
	return log.WithFields(fields)
}
