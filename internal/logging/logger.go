// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

// package logging provides the process-wide logger. Output goes to stderr
// until SetFile redirects it into a size-rotated log file, which the TUI does
// so that log lines never paint over the screen.
package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// L is the package-level logger. Callers should use the helper functions
// below rather than holding on to L.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "unitools"})

// fileSink is the currently open rotating file, if any.
var fileSink *lumberjack.Logger

// SetDebug enables or disables debug-level output.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.InfoLevel)
}

// SetOutput replaces the destination of L.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// SetFile sends all further output to a rotating file at path. An empty path
// restores stderr.
func SetFile(path string) {
	if fileSink != nil {
		_ = fileSink.Close()
		fileSink = nil
	}
	if path == "" {
		L.SetOutput(os.Stderr)
		return
	}
	fileSink = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // MB
		MaxBackups: 2,
		MaxAge:     28, // days
	}
	L.SetOutput(fileSink)
}

// Close releases the log file opened by SetFile.
func Close() error {
	if fileSink == nil {
		return nil
	}
	err := fileSink.Close()
	fileSink = nil
	L.SetOutput(os.Stderr)
	return err
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
