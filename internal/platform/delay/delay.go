package delay

import (
	"context"
	"time"
)

// Run ejecuta work en otra goroutine después de d y entrega el resultado a done.
// No bloquea al caller. Si ctx se cancela antes, work no corre y done recibe ctx.Err().
// done se invoca exactamente una vez.
func Run[T any](ctx context.Context, d time.Duration, work func() (T, error), done func(T, error)) {
	go func() {
		if d > 0 {
			timer := time.NewTimer(d)
			defer timer.Stop()

			select {
			case <-ctx.Done():
				var zero T
				done(zero, ctx.Err())
				return
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			var zero T
			done(zero, err)
			return
		}

		v, err := work()
		done(v, err)
	}()
}

// Wait es Run + bloqueo sobre el resultado, para callers que sí pueden esperar
// (p.ej. un handler HTTP cuyo request ya corre en su propia goroutine).
func Wait[T any](ctx context.Context, d time.Duration, work func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)
	Run(ctx, d, work, func(v T, err error) { ch <- result{v, err} })
	res := <-ch
	return res.v, res.err
}
