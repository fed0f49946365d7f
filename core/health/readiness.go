package health

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/patchbind/core/handler"
	"github.com/dmitrymomot/patchbind/core/logger"
	"github.com/dmitrymomot/patchbind/core/response"
)

// Readiness runs every check in order and answers 503 on the first failure.
func Readiness[C handler.Context](log *slog.Logger, checks ...func(context.Context) error) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Component("health"), logger.Error(err))
				return response.Error(response.ErrServiceUnavailable)
			}
		}
		return response.JSON(Status{Status: "ready"})
	}
}
