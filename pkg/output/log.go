// Package output provides the shared diagnostic logger.
package output

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the global logger. Commands print their primary output with
// plain fmt; the logger carries diagnostics and warnings on stderr.
var Logger *log.Logger

func init() {
	Logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
}

// SetupLogging adjusts verbosity for the whole process.
func SetupLogging(verbose bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	Logger.SetLevel(level)
}

func Debug(msg string, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}
