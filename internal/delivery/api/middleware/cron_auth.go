package middleware

import (
	"crypto/subtle"
	"log/slog"
	"strings"

	"danyowa/config"
	ctxPkg "danyowa/internal/delivery/context"
	domainerrors "danyowa/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// CronAuthMiddleware guards the schedule check trigger with the shared cron secret
type CronAuthMiddleware struct {
	secret               string
	allowUnauthenticated bool
	logger               *slog.Logger
}

// NewCronAuthMiddleware creates the cron trigger guard
func NewCronAuthMiddleware(cfg *config.Config, logger *slog.Logger) *CronAuthMiddleware {
	if cfg.Cron.Secret == "" && !cfg.AllowsUnauthenticatedCron() {
		logger.Warn("cron.secret is empty, every schedule check trigger will be rejected")
	}

	return &CronAuthMiddleware{
		secret:               cfg.Cron.Secret,
		allowUnauthenticated: cfg.AllowsUnauthenticatedCron(),
		logger:               logger,
	}
}

// Authenticate accepts "Authorization: Bearer <cron.secret>" and rejects everything else with 401.
// Unauthenticated triggers pass only when explicitly allowed in the develop environment.
func (m *CronAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.authorized(c.Request().Header.Get(echo.HeaderAuthorization)) {
			return next(c)
		}

		logger := ctxPkg.GetLoggerOrDefault(c.Request().Context(), m.logger)
		if m.allowUnauthenticated {
			logger.Warn("Accepting unauthenticated cron trigger in develop environment")

			return next(c)
		}

		logger.Warn("Rejected cron trigger with missing or invalid credentials",
			slog.String("remote_ip", c.RealIP()),
		)

		return domainerrors.ErrCronUnauthorized
	}
}

func (m *CronAuthMiddleware) authorized(header string) bool {
	if m.secret == "" || !strings.HasPrefix(header, bearerPrefix) {
		return false
	}
	token := strings.TrimPrefix(header, bearerPrefix)

	return subtle.ConstantTimeCompare([]byte(token), []byte(m.secret)) == 1
}
