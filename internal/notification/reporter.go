// Package notification delivers user-facing reports such as rolled-back
// mutations and the outstanding-balance digest.
package notification

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/logger"
)

type Reporter interface {
	Report(ctx context.Context, message string)
}

// LogReporter writes reports to the application log.
type LogReporter struct {
	logger logger.Logger
}

func NewLogReporter(logger logger.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

func (r *LogReporter) Report(_ context.Context, message string) {
	r.logger.Warn("report", logger.String("message", message))
}

// Fanout sends every report to all reporters concurrently and waits for them.
type Fanout []Reporter

func (f Fanout) Report(ctx context.Context, message string) {
	var wg sync.WaitGroup
	for _, r := range f {
		if r == nil {
			continue
		}
		wg.Add(1)
		go func(r Reporter) {
			defer wg.Done()
			r.Report(ctx, message)
		}(r)
	}
	wg.Wait()
}

// Recorder keeps reports in memory; the HTTP layer drains it to show the
// latest failures to the client.
type Recorder struct {
	mu       sync.Mutex
	limit    int
	messages []string
}

func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = 50
	}
	return &Recorder{limit: limit}
}

func (r *Recorder) Report(_ context.Context, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	if over := len(r.messages) - r.limit; over > 0 {
		r.messages = append([]string(nil), r.messages[over:]...)
	}
}

// Drain returns the buffered reports oldest first and empties the buffer.
func (r *Recorder) Drain() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.messages
	r.messages = nil
	return out
}
