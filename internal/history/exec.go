package history

import (
	"context"
	"time"

	"github.com/StarNumber12046/rocket/internal/log"
)

// Exec runs fn on line and records the outcome under source. fn's result is
// returned unchanged; a failed Record is logged and otherwise ignored. A nil
// Store only runs fn.
func (s *Store) Exec(ctx context.Context, source Source, line string, fn func(string) (string, error)) (string, error) {
	start := time.Now()
	out, err := fn(line)
	if s == nil {
		return out, err
	}

	e := Entry{
		Line:     line,
		Source:   source,
		Output:   out,
		Duration: time.Since(start),
	}
	if err != nil {
		e.Error = err.Error()
	}
	if _, recErr := s.Record(ctx, e); recErr != nil {
		log.WithComponent("history").Warn("failed to record command", "source", string(source), "error", recErr)
	}
	return out, err
}
