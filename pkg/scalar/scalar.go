// Package scalar serves the registered OpenAPI document and a Scalar API
// reference page that renders it.
package scalar

import (
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"
)

const (
	DocsPath     = "/docs"
	OpenAPIPath  = "/docs/openapi.json"
	defaultTheme = "default"
)

type Config struct {
	Title string
	Theme string // default, moon, purple, solarized, bluePlanet, deepSpace, saturn, kepler, mars, none
}

const scalarTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}}</title>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
</head>
<body>
    <script id="api-reference" data-url="{{.SpecURL}}"></script>
    <script>
        document.getElementById('api-reference').dataset.configuration = JSON.stringify({
            theme: '{{.Theme}}'
        });
    </script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`

var page = template.Must(template.New("scalar").Parse(scalarTemplate))

// SetupRoutes mounts the reference page and the raw document on app
func SetupRoutes(app fiber.Router, cfg Config) {
	if cfg.Title == "" {
		cfg.Title = "API Reference"
	}
	if cfg.Theme == "" {
		cfg.Theme = defaultTheme
	}

	app.Get(OpenAPIPath, OpenAPI)
	app.Get(DocsPath, reference(cfg))
}

// OpenAPI writes the document registered with swag
func OpenAPI(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "API document is not available")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.SendString(doc)
}

func reference(cfg Config) fiber.Handler {
	data := struct {
		Config
		SpecURL string
	}{Config: cfg, SpecURL: OpenAPIPath}

	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return page.Execute(c.Response().BodyWriter(), data)
	}
}
