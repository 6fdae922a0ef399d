package audit

import (
	"context"

	"go.uber.org/zap"
)

// Event is one write worth recording.
type Event struct {
	AccountID *uint
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
}

// Dispatcher writes audit events inline with the request. A failed write
// is logged and never fails the request.
type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		logger: logger,
		log:    log,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	if d == nil || d.logger == nil {
		return
	}
	if err := d.logger.Write(ctx, ev); err != nil {
		d.log.Warn("audit write failed",
			zap.String("action", ev.Action),
			zap.String("entity", ev.Entity),
			zap.Error(err),
		)
	}
}
