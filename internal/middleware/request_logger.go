package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// リクエスト1件ごとに構造化ログを1行出す。
func RequestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			ev := logger.Info()
			if res.Status >= 500 {
				ev = logger.Error()
			}

			//認証済みならuser_idも残す
			if userID, ok := c.Get(CtxUserIDKey).(int64); ok {
				ev = ev.Int64("user_id", userID)
			}

			ev.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Msg("request completed")

			return nil
		}
	}
}
