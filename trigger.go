package reforge

import "context"

// Trigger observes an external change source and marks a Flag whenever the
// source reports a change. Implementations must return quickly from Start,
// doing their observation on their own goroutine until the context is
// canceled. A non-nil error from Start means observation could not be
// established.
type Trigger interface {
	Start(ctx context.Context, flag *Flag) error
}

// TriggerFunc adapts a function to the Trigger interface.
type TriggerFunc func(ctx context.Context, flag *Flag) error

// Start calls f.
func (f TriggerFunc) Start(ctx context.Context, flag *Flag) error {
	return f(ctx, flag)
}

// ChannelTrigger marks the flag each time a value arrives on the wrapped
// channel. Useful for testing and for custom sources that already produce
// change notifications.
type ChannelTrigger struct {
	ch <-chan struct{}
}

// NewChannelTrigger creates a ChannelTrigger over the given channel.
func NewChannelTrigger(ch <-chan struct{}) *ChannelTrigger {
	return &ChannelTrigger{ch: ch}
}

// Start forwards channel receives into flag marks until the context is
// canceled or the channel is closed.
func (t *ChannelTrigger) Start(ctx context.Context, flag *Flag) error {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-t.ch:
				if !ok {
					return
				}
				flag.Mark()
			}
		}
	}()
	return nil
}
