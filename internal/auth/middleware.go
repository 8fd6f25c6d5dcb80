package auth

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const callerContextKey = "caller"

// tokenLookup accepts "Authorization: Bearer <token>" and, for older clients,
// the bare token in the same header.
const tokenLookup = "header:" + echo.HeaderAuthorization + ":Bearer ," + "header:" + echo.HeaderAuthorization

// Middleware returns an echo-jwt middleware that never rejects a request.
// A verified token stores its Caller under the echo context; anything else
// leaves the request anonymous and lets each operation decide.
func (s *JWTService) Middleware(log logrus.FieldLogger) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: tokenLookup,
		ContextKey:  callerContextKey,
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			caller := s.ResolveCaller(raw)
			if caller.IsAnonymous() {
				return nil, errInvalidToken
			}
			return caller, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			log.WithField("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				WithError(err).Debug("no usable token, continuing as anonymous")
			return nil
		},
		ContinueOnIgnoredError: true,
	})
}

// InjectCaller copies the caller resolved by Middleware into the request
// context so code below the transport can read it with CallerFrom.
func InjectCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, ok := c.Get(callerContextKey).(Caller)
		if !ok {
			caller = Anonymous
		}
		req := c.Request()
		c.SetRequest(req.WithContext(WithCaller(req.Context(), caller)))
		return next(c)
	}
}
