package middlewares

import (
	"labrequest-service/internal/app/config"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	WizardLimiter  *RateLimiter
}
