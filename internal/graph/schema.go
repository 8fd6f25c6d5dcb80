package graph

import (
	"context"
	_ "embed"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus"

	"todogql/internal/service"
)

//go:embed schema.graphql
var schemaSDL string

const maxQueryDepth = 10

// NewSchema parses the API schema and binds it to the services.
func NewSchema(auth service.AuthService, users service.UserService, todos service.TodoService, log logrus.FieldLogger) (*graphql.Schema, error) {
	root := &Resolver{auth: auth, users: users, todos: todos}
	schema, err := graphql.ParseSchema(schemaSDL, root,
		graphql.MaxDepth(maxQueryDepth),
		graphql.Logger(panicLogger{log: log}),
	)
	if err != nil {
		return nil, fmt.Errorf("parse graphql schema: %w", err)
	}
	return schema, nil
}

type panicLogger struct {
	log logrus.FieldLogger
}

func (l panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.log.WithField("panic", value).Error("graphql resolver panic")
}
