// Package rdlog configures the engine's logrus logger (SPEC_FULL.md
// "AMBIENT STACK / Logging", grounded on skeema-skeema's log.go, which
// configures logrus directly rather than the teacher's plain fmt/
// os.Stderr). Logging is a side channel: it never appears in a
// Result and is never on Execute's hot path.
package rdlog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logrus.Logger that writes text-formatted entries to
// stderr at the given level. An unrecognized level falls back to Info.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}
