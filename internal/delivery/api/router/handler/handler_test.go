package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"raahi/internal/delivery/api/middleware"
	"raahi/internal/delivery/api/validator"
	"raahi/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var (
	touristActor  = entity.Actor{UserID: "tourist-1", Email: "t1@raahi.test", DisplayName: "Asha", Roles: entity.Roles{entity.RoleUser}}
	operatorActor = entity.Actor{UserID: "op-1", Roles: entity.Roles{entity.RoleOperator}}
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

// newRequestContext builds an echo context; a nil actor leaves it unauthenticated.
func newRequestContext(method, target, body string, actor *entity.Actor) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor != nil {
		middleware.SetActor(c, *actor)
	}

	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.Nil(t, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, out))
}
