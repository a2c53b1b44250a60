package logs

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// WithPackage returns a logger tagged with the package it is used from.
func WithPackage(pkg string) *logrus.Entry {
	return logrus.WithField("package", pkg)
}

// Configure sets the global level and output format. Format is either `text`
// or `json`.
func Configure(level, format string) error {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))

	if err != nil {
		return err
	}

	logrus.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format `%s`", format)
	}

	return nil
}
