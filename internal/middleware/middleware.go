package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Action - действие меню
type Action func(ctx context.Context) error

// Middleware оборачивает действие
type Middleware func(next Action) Action

// Chain применяет middleware так, что первая в списке оказывается внешней
func Chain(action Action, mws ...Middleware) Action {
	for i := len(mws) - 1; i >= 0; i-- {
		action = mws[i](action)
	}
	return action
}

// Logger middleware для логирования действий меню
func Logger(logger *slog.Logger, name string) Middleware {
	return func(next Action) Action {
		return func(ctx context.Context) error {
			start := time.Now()

			err := next(ctx)

			attrs := []any{
				slog.String("action", name),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.Warn("menu action failed", append(attrs, slog.Any("error", err))...)
				return err
			}
			logger.Info("menu action", attrs...)
			return nil
		}
	}
}

// Recoverer middleware превращает панику в действии в ошибку,
// чтобы меню могло вернуться в главное состояние
func Recoverer(logger *slog.Logger, name string) Middleware {
	return func(next Action) Action {
		return func(ctx context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered",
						slog.Any("error", r),
						slog.String("action", name),
					)
					err = fmt.Errorf("internal error in %q: %v", name, r)
				}
			}()
			return next(ctx)
		}
	}
}
