package reforge

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/zoobzio/capitan"
)

// SignalTrigger marks the flag each time one of the configured OS signals
// is delivered to the process. It runs for the lifetime of the context,
// waiting and marking again after each delivery.
type SignalTrigger struct {
	signals []os.Signal
}

// NewSignalTrigger creates a SignalTrigger for the given signals.
func NewSignalTrigger(signals ...os.Signal) *SignalTrigger {
	return &SignalTrigger{signals: signals}
}

// Start registers the signal set and begins listening on a background
// goroutine. An empty signal set is an installation failure.
func (t *SignalTrigger) Start(ctx context.Context, flag *Flag) error {
	if len(t.signals) == 0 {
		return errors.New("no reload signals configured for this platform")
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, t.signals...)

	go func() {
		defer signal.Stop(ch)

		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-ch:
				flag.Mark()
				capitan.Emit(ctx, SignalReceived,
					KeySignal.Field(sig.String()),
				)
			}
		}
	}()

	return nil
}
