package telekit

import (
	"context"

	"github.com/gotd/td/bin"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/tg"
	"github.com/gotd/td/tgerr"
)

// floodWaitMiddleware sleeps through FLOOD_WAIT errors and repeats the call
// instead of handing the error to the caller.
type floodWaitMiddleware struct{}

func (floodWaitMiddleware) Handle(next tg.Invoker) telegram.InvokeFunc {
	return func(ctx context.Context, input bin.Encoder, output bin.Decoder) error {
		for {
			err := next.Invoke(ctx, input, output)
			if err == nil {
				return nil
			}

			waited, waitErr := tgerr.FloodWait(ctx, err)
			if !waited {
				return waitErr
			}
		}
	}
}
