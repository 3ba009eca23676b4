package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// setupLogger builds the diagnostic logger. Reports go to stdout, so logs
// are kept on w (stderr in practice).
func setupLogger(level string, verbose bool, w io.Writer) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
		log.Warnf("unknown log level %q, using warn", level)
	}
	if verbose {
		lvl = logrus.DebugLevel
	}
	log.SetLevel(lvl)

	return logrus.NewEntry(log)
}
