package metrics

import (
	"context"
	"time"
)

// Recorder is implemented by every metrics sink
type Recorder interface {
	RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration)
	RecordGeneration(ctx context.Context, kind string, duration time.Duration, success bool)
}

// Recorders fans a metric out to several sinks
type Recorders []Recorder

func (r Recorders) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	for _, rec := range r {
		rec.RecordAPIRequest(ctx, endpoint, statusCode, duration)
	}
}

func (r Recorders) RecordGeneration(ctx context.Context, kind string, duration time.Duration, success bool) {
	for _, rec := range r {
		rec.RecordGeneration(ctx, kind, duration, success)
	}
}
