package audit

import "log/slog"

type Dispatcher struct {
	sink   Sink
	logger *slog.Logger
	queue  chan Event
}

func NewDispatcher(sink Sink, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:   sink,
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			d.logger.Error("audit write failed", "action", ev.Action, "err", err)
		}
	}
}

// Dispatch never blocks the request path: a full queue drops the
// event.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}
