// Package monitoring holds the process-wide diagnostic logger.
package monitoring

import (
	"io"
	"log"
)

// Logf receives diagnostics about cell construction and backend conversion.
// xtal mutes it unless -v is given, in which case SetOutput points it at
// stderr.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SetOutput routes Logf to w with the given prefix.
func SetOutput(w io.Writer, prefix string) {
	l := log.New(w, prefix, log.LstdFlags)
	Logf = l.Printf
}
