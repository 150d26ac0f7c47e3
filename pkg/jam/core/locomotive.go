package core

import "context"

// Locomotive pulls inputs from inputCh, runs engine on each and forwards the
// outputs to outCh until inputCh is closed or ctx is done.
//
// An engine error stops this line and is returned; it is meant for faults,
// regular outcomes travel as values. Cancellation is not an error here, the
// caller knows why it cancelled.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out,
	engine func(ctx context.Context, input In) (Out, error),
	onSuccess func(ctx context.Context, out Out)) error {

	for {
		select {
		case <-ctx.Done():
			return nil
		case in, ok := <-inputCh:
			if !ok {
				return nil
			}

			out, err := engine(ctx, in)
			if err != nil {
				return err
			}

			select {
			case <-ctx.Done():
				return nil
			case outCh <- out:
				if onSuccess != nil {
					onSuccess(ctx, out)
				}
			}
		}
	}
}
