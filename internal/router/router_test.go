package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todogql/internal/auth"
	apperrors "todogql/internal/errors"
	"todogql/internal/graph"
	"todogql/internal/handler"
	"todogql/internal/repository"
	"todogql/internal/service"
)

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message    string                 `json:"message"`
		Extensions map[string]interface{} `json:"extensions"`
	} `json:"errors"`
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	log, _ := test.NewNullLogger()
	store := repository.NewMemoryStore()
	jwtService := auth.NewJWTService("router-secret")

	schema, err := graph.NewSchema(
		service.NewAuthService(store.Users, store.Todos, jwtService, time.Hour, log),
		service.NewUserService(store.Users, log),
		service.NewTodoService(store.Todos, log),
		log,
	)
	require.NoError(t, err)

	e := echo.New()
	Register(e, log, jwtService, handler.NewGraphQLHandler(schema))
	return e
}

func post(t *testing.T, e *echo.Echo, body, token string) (*httptest.ResponseRecorder, gqlResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp gqlResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestHealthz(t *testing.T) {
	e := newTestEcho(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	_, err := ulid.ParseStrict(rec.Header().Get(echo.HeaderXRequestID))
	assert.NoError(t, err)
}

func TestGraphQL_MissingQuery(t *testing.T) {
	e := newTestEcho(t)
	rec, _ := post(t, e, `{"variables": {}}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperrors.CodeInvalidInput, body.Code)
}

func TestGraphQL_TokenFlow(t *testing.T) {
	e := newTestEcho(t)

	rec, resp := post(t, e, `{"query": "mutation { registerUser(input: {username: \"alice\", email: \"a@x.io\", password: \"secret\"}) { id } }"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, resp.Errors)
	var reg struct {
		RegisterUser struct{ ID string } `json:"registerUser"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &reg))

	_, resp = post(t, e, `{"query": "mutation { loginUser(email: \"a@x.io\", password: \"secret\") { token } }"}`, "")
	require.Empty(t, resp.Errors)
	var login struct {
		LoginUser struct{ Token string } `json:"loginUser"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &login))
	require.NotEmpty(t, login.LoginUser.Token)

	create := `{"query": "mutation($uid: ID!) { createTodo(input: {title: \"Buy milk\", description: \"Buy milk from the store\", userId: $uid}) { id status } }", "variables": {"uid": "` + reg.RegisterUser.ID + `"}}`

	tests := []struct {
		name     string
		token    string
		wantCode string
	}{
		{"no token", "", apperrors.CodeUnauthorized},
		{"garbage token", "Bearer not-a-jwt", apperrors.CodeUnauthorized},
		{"bearer token", "Bearer " + login.LoginUser.Token, ""},
		{"raw token", login.LoginUser.Token, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := post(t, e, create, tt.token)
			require.Equal(t, http.StatusOK, rec.Code)
			if tt.wantCode == "" {
				assert.Empty(t, resp.Errors)
				return
			}
			require.NotEmpty(t, resp.Errors)
			assert.Equal(t, tt.wantCode, resp.Errors[0].Extensions["code"])
			assert.Equal(t, "Unauthorized", resp.Errors[0].Message)
		})
	}
}

func TestRequestIDs_Monotonic(t *testing.T) {
	ids := newRequestIDs()
	prev := ids.Next()
	for i := 0; i < 100; i++ {
		next := ids.Next()
		assert.Less(t, prev, next)
		prev = next
	}
}
