package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"todogql/internal/auth"
	"todogql/internal/handler"
	"todogql/internal/logging"
)

// Register wires routes and middleware. Token verification never rejects a
// request; each GraphQL operation checks the caller it finds in the context.
func Register(
	e *echo.Echo,
	log logrus.FieldLogger,
	jwtService *auth.JWTService,
	graphqlHandler *handler.GraphQLHandler,
) {
	ids := newRequestIDs()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: ids.Next}))
	e.Use(logging.RequestLogger(log))
	e.Use(logging.ContextLogger(log))
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", handler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/graphql", graphqlHandler.Serve, jwtService.Middleware(log), auth.InjectCaller)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
