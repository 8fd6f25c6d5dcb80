package handler

import (
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"

	apperrors "todogql/internal/errors"
	"todogql/internal/logging"
)

// GraphQLHandler serves GraphQL requests over HTTP.
type GraphQLHandler struct {
	schema *graphql.Schema
}

// NewGraphQLHandler creates a new GraphQL handler.
func NewGraphQLHandler(schema *graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

// GraphQLRequest is a standard GraphQL-over-HTTP request body.
type GraphQLRequest struct {
	Query         string                 `json:"query" validate:"required"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Serve godoc
// @Summary Execute a GraphQL query or mutation
// @Description Queries are public unless noted in the schema. Mutations other than registerUser and loginUser need a token.
// @Tags graphql
// @Accept json
// @Produce json
// @Param request body GraphQLRequest true "GraphQL request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /graphql [post]
func (h *GraphQLHandler) Serve(c echo.Context) error {
	var req GraphQLRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  apperrors.CodeInvalidInput,
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "query is required",
			Code:  apperrors.CodeInvalidInput,
		})
	}

	ctx := c.Request().Context()
	resp := h.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
	if len(resp.Errors) > 0 {
		logging.FromContext(ctx).WithField("errors", len(resp.Errors)).Debug("graphql response has errors")
	}
	return c.JSON(http.StatusOK, resp)
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
