package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans a write out to all the sinks (e.g. stdout and a rotating log file).
// A failing sink does not stop the others; errors of all failing sinks are combined.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer(nil), writers...),
	}
}

// Write reports len(p) as written if at least one sink took the whole message.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var errs error
	anyOK := false
	for _, w := range cw.Writers {
		written, err := w.Write(p)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if written == len(p) {
			anyOK = true
		}
	}

	if !anyOK {
		return 0, errs
	}
	return len(p), errs
}
