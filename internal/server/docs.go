package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/russross/blackfriday/v2"

	"github.com/pagelens/pagelens/internal/analysis"
)

// registerDocs serves the bundled NLP readme: raw markdown by default,
// rendered to HTML with ?format=html.
func registerDocs(e *echo.Echo, a *analysis.Analyzer) {
	e.GET("/nlp-readme/", func(c echo.Context) (err error) {
		defer func() { observe("get_nlp_readme", err) }()
		content, readErr := a.Readme()
		if readErr != nil {
			err = echo.NewHTTPError(http.StatusNotFound, "readme resource not found")
			return err
		}
		if c.QueryParam("format") == "html" {
			return c.HTMLBlob(http.StatusOK, blackfriday.Run([]byte(content)))
		}
		return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(content))
	})
}
