package serverutils

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bulletin-board-be/internal/constant"
	"bulletin-board-be/internal/entity"
	"bulletin-board-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"http error", BadRequest("nope"), http.StatusBadRequest, "nope"},
		{"board not found", fmt.Errorf("wrapped: %w", entity.ErrBoardNotFound), http.StatusNotFound, constant.MessageBoardNotFound},
		{"note not found", entity.ErrNoteNotFound, http.StatusNotFound, constant.MessageNoteNotFound},
		{"board id required", entity.ErrBoardIDRequired, http.StatusBadRequest, constant.MessageMissingBoardID},
		{"fiber client error", fiber.ErrMethodNotAllowed, http.StatusMethodNotAllowed, fiber.ErrMethodNotAllowed.Message},
		{"fiber server error", fiber.ErrServiceUnavailable, http.StatusServiceUnavailable, constant.MessageInternalError},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, constant.MessageInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, message := classify(tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.message, message)
		})
	}
}

type sample struct {
	Name  *string `json:"name"`
	Count int     `json:"count"`
}

func newParseApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Post("/parse", func(ctx *fiber.Ctx) error {
		var s sample
		raw, err := ParseBody(ctx, &s)
		if err != nil {
			return err
		}
		return ctx.JSON(fiber.Map{"raw": raw, "has_name": s.Name != nil, "count": s.Count})
	})
	app.Get("/items/:id", func(ctx *fiber.Ctx) error {
		id, err := ParamsID(ctx, "id")
		if err != nil {
			return err
		}
		return ctx.JSON(fiber.Map{"id": id})
	})
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, strings.NewReader(body)), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestParseBody(t *testing.T) {
	app := newParseApp(t)

	status, body := send(t, app, http.MethodPost, "/parse", `{"name":null,"count":3,"big":12345678901234567890}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"has_name":false`)
	assert.Contains(t, body, `"count":3`)
	// Numbers in the raw map are kept verbatim.
	assert.Contains(t, body, `"big":12345678901234567890`)

	status, body = send(t, app, http.MethodPost, "/parse", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"raw":{}`)

	status, body = send(t, app, http.MethodPost, "/parse", `[1,2]`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"`+constant.MessageInvalidBody+`"}`, body)
}

func TestParamsID(t *testing.T) {
	app := newParseApp(t)

	status, body := send(t, app, http.MethodGet, "/items/12", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":12}`, body)

	status, _ = send(t, app, http.MethodGet, "/items/twelve", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestValidateRequestNotBlank(t *testing.T) {
	type rename struct {
		Name string `validate:"notblank"`
	}

	assert.NoError(t, ValidateRequest(rename{Name: "ok"}))
	assert.Error(t, ValidateRequest(rename{Name: ""}))
	assert.Error(t, ValidateRequest(rename{Name: " \t "}))
}
