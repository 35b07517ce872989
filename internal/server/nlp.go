package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pagelens/pagelens/internal/analysis"
	"github.com/pagelens/pagelens/internal/fetch"
)

// NLPHandler serves the URL- and text-based NLP endpoints. Numeric parameters
// are pointer-bound so an explicit zero is distinguishable from an omitted
// field; omitted fields fall back to the configured defaults.
type NLPHandler struct {
	Analyzer *analysis.Analyzer
}

func (h *NLPHandler) Register(e *echo.Echo) {
	e.GET("/summary/", h.summaryFromURL)
	e.GET("/sentiment/", h.sentimentFromURL)
	e.GET("/entities/", h.entitiesFromURL)
	e.POST("/text-summary/", h.summarizeText)
	e.POST("/text-sentiment/", h.sentimentFromText)
	e.POST("/text-entities/", h.entitiesFromText)
}

// analysisHTTPError maps a fetch failure to a client error and anything else
// to a server error.
func analysisHTTPError(err error) error {
	var fe *fetch.FetchError
	if errors.As(err, &fe) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (h *NLPHandler) summaryFromURL(c echo.Context) (err error) {
	defer func() { observe("get_summary", err) }()
	var req struct {
		URL          string `query:"url"`
		NumSentences *int   `query:"num_sentences"`
	}
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.URL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "url is required")
	}
	summary, opErr := h.Analyzer.SummarizeURL(c.Request().Context(), req.URL, req.NumSentences)
	if opErr != nil {
		err = analysisHTTPError(opErr)
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"summary": summary})
}

func (h *NLPHandler) summarizeText(c echo.Context) (err error) {
	defer func() { observe("summarize_text", err) }()
	var req struct {
		Text         string `json:"text"`
		NumSentences *int   `json:"num_sentences"`
	}
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}
	summary := h.Analyzer.SummarizeText(req.Text, req.NumSentences)
	return c.JSON(http.StatusOK, map[string]string{"summary": summary})
}

func (h *NLPHandler) sentimentFromURL(c echo.Context) (err error) {
	defer func() { observe("analyze_sentiment_from_url", err) }()
	var req struct {
		URL       string   `query:"url"`
		Threshold *float64 `query:"threshold"`
	}
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.URL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "url is required")
	}
	result, opErr := h.Analyzer.SentimentURL(c.Request().Context(), req.URL, req.Threshold)
	if opErr != nil {
		err = analysisHTTPError(opErr)
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"paragraph_sentiments": result})
}

func (h *NLPHandler) sentimentFromText(c echo.Context) (err error) {
	defer func() { observe("analyze_sentiment_from_text", err) }()
	var req struct {
		Text      string   `json:"text"`
		Threshold *float64 `json:"threshold"`
	}
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}
	result := h.Analyzer.SentimentText(req.Text, req.Threshold)
	return c.JSON(http.StatusOK, map[string]any{"paragraph_sentiments": result})
}

func (h *NLPHandler) entitiesFromURL(c echo.Context) (err error) {
	defer func() { observe("extract_entities", err) }()
	var req struct {
		URL  string `query:"url"`
		TopK *int   `query:"top_k"`
	}
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.URL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "url is required")
	}
	records, opErr := h.Analyzer.EntitiesURL(c.Request().Context(), req.URL, req.TopK)
	if opErr != nil {
		err = analysisHTTPError(opErr)
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"entities": records})
}

func (h *NLPHandler) entitiesFromText(c echo.Context) (err error) {
	defer func() { observe("extract_text_entities", err) }()
	var req struct {
		Text string `json:"text"`
		TopK *int   `json:"top_k"`
	}
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}
	records, opErr := h.Analyzer.EntitiesText(req.Text, req.TopK)
	if opErr != nil {
		err = analysisHTTPError(opErr)
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"entities": records})
}
