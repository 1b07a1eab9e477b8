package presenter

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/wrapped", func(c *fiber.Ctx) error {
		return fmt.Errorf("lookup: %w", fiber.NewError(fiber.StatusTeapot, "short and stout"))
	})
	app.Get("/plain", func(c *fiber.Ctx) error { return fmt.Errorf("boom") })

	cases := []struct {
		path   string
		status int
		detail string
	}{
		{"/wrapped", fiber.StatusTeapot, "short and stout"},
		{"/plain", fiber.StatusInternalServerError, "internal server error"},
		{"/missing", fiber.StatusNotFound, "Cannot GET /missing"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			raw, _ := io.ReadAll(resp.Body)
			var out ErrorResponse
			require.NoError(t, json.Unmarshal(raw, &out))
			assert.Equal(t, tc.detail, out.Detail)
		})
	}
}
