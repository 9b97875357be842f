package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// configureLogging sends glog output to stderr when verbose is set. Otherwise
// recovered errors go to log files under the dashctl home instead of the
// terminal. If that directory cannot be created, logging stays on stderr.
func configureLogging(verbose bool) {
	if verbose {
		_ = flag.Set("logtostderr", "true")
		_ = flag.Set("v", "2")
		return
	}
	logDir, err := getLogDir()
	if err != nil {
		_ = flag.Set("logtostderr", "true")
		return
	}
	_ = flag.Set("log_dir", logDir)
	_ = flag.Set("stderrthreshold", "FATAL")
	_ = flag.Set("logtostderr", "false")
	_ = flag.Set("alsologtostderr", "false")
}

func getLogDir() (string, error) {
	dashctlHome, err := getDashctlHome()
	if err != nil {
		return "", errors.Wrapf(err, "error finding dashctl home")
	}
	logDir := filepath.Join(dashctlHome, "logs")
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return "", errors.Wrapf(err, "error creating log directory %s", logDir)
	}
	return logDir, nil
}
