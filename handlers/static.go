package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

// SetupStaticRoutes serves the two prebuilt frontend bundles: the admin
// console under /admin and the investor portal at the root. Unmatched
// sub-paths fall back to the bundle's index.html so client-side routing
// works. Must be registered after the API routes; the investor mount
// catches everything.
func SetupStaticRoutes(app *fiber.App, staticDir string) {
	app.Use("/admin", spaHandler(filepath.Join(staticDir, "admin"), "/admin", "Admin interface not found"))
	app.Use("/", spaHandler(filepath.Join(staticDir, "investor"), "", "index.html not found"))
}

func spaHandler(root, prefix, missingMsg string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := os.Stat(root); err != nil {
			return c.Status(fiber.StatusNotFound).SendString(missingMsg)
		}

		if prefix != "" {
			relativePath := strings.TrimPrefix(c.Path(), prefix)
			if relativePath == "" {
				relativePath = "/"
			}
			c.Path(relativePath)
		}

		return filesystem.New(filesystem.Config{
			Root:         http.Dir(root),
			Index:        "index.html",
			NotFoundFile: "index.html",
		})(c)
	}
}
