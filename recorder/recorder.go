// Package recorder persists projection runs so past analyses can be
// inspected later with any sqlite client.
package recorder

import "github.com/etnz/etfcast"

// Recorder records completed projection runs.
type Recorder interface {
	// RecordRun stores the inputs, derived metrics, and final snapshot of
	// one projection run.
	RecordRun(report *etfcast.Report) error
	Close() error
}
