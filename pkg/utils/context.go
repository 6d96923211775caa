package utils

import (
	"context"

	"golang-stock-pulse/pkg/logger"
)

// ShouldContinue reports whether the run context is still live, logging when
// it is not.
func ShouldContinue(ctx context.Context, log *logger.Logger) bool {
	select {
	case <-ctx.Done():
		log.Warn("Context cancelled, stopping run", logger.ErrorField(ctx.Err()))
		return false
	default:
		return true
	}
}
