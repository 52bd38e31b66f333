package audit

import "go.uber.org/zap"

type Event struct {
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

// Sink receives audit events. The gorm-backed Logger is the production
// sink.
type Sink interface {
	Log(userID *string, action string, entity string, entityID *string, metadata any) error
}

// Dispatcher writes audit events off the request path. The queue is
// bounded; when it fills, events are dropped rather than blocking the API.
type Dispatcher struct {
	logger Sink
	log    *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger Sink, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Warn("audit write failed", zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}
