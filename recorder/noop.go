package recorder

import "github.com/etnz/etfcast"

// Noop is a Recorder that discards everything. It is used when no database
// path is configured.
type Noop struct{}

func (Noop) RecordRun(*etfcast.Report) error { return nil }
func (Noop) Close() error                    { return nil }
