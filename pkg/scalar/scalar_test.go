package scalar_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "school-cms/docs"
	"school-cms/pkg/scalar"
)

func newApp() *fiber.App {
	app := fiber.New()
	scalar.SetupRoutes(app, scalar.Config{Title: "School CMS API"})
	return app
}

func TestOpenAPIServesRegisteredDocument(t *testing.T) {
	resp, err := newApp().Test(httptest.NewRequest("GET", scalar.OpenAPIPath, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var doc struct {
		Swagger string                 `json:"swagger"`
		Info    map[string]string      `json:"info"`
		Paths   map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "School CMS API", doc.Info["title"])
	assert.Contains(t, doc.Paths, "/api/track-view")
	assert.Contains(t, doc.Paths, "/api/v1/news")
}

func TestReferencePage(t *testing.T) {
	resp, err := newApp().Test(httptest.NewRequest("GET", scalar.DocsPath, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<title>School CMS API</title>")
	assert.Contains(t, string(body), scalar.OpenAPIPath)
}
