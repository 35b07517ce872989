// Package mcp advertises the NLP operations to remote-procedure clients over
// a stdio JSON-RPC loop: "tools/list" returns the operation table,
// "tools/call" dispatches by operation name. The registry is static; every
// operation is a 1:1 alias of an Analyzer method.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/pagelens/pagelens/internal/analysis"
)

type rpcReq struct {
	JSONRPC string         `json:"jsonrpc"`
	ID      any            `json:"id"`
	Method  string         `json:"method"`
	Params  map[string]any `json:"params"`
}

type rpcResp struct {
	JSONRPC string         `json:"jsonrpc"`
	ID      any            `json:"id"`
	Result  map[string]any `json:"result,omitempty"`
	Error   *rpcError      `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeResp(w io.Writer, id any, result map[string]any, err error) {
	resp := rpcResp{JSONRPC: "2.0", ID: id}
	if err != nil {
		resp.Error = &rpcError{Code: -32000, Message: err.Error()}
	} else {
		resp.Result = result
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ToolDesc describes one advertised operation, including its input schema.
type ToolDesc struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// Server holds the shared Analyzer and the cached operation descriptors.
type Server struct {
	analyzer *analysis.Analyzer

	CallTimeout time.Duration

	tools []ToolDesc
}

// NewServer builds the registry around an already-initialized Analyzer.
func NewServer(analyzer *analysis.Analyzer) *Server {
	srv := &Server{analyzer: analyzer, CallTimeout: 60 * time.Second}
	srv.initTools()
	return srv
}

// initTools defines the schemas and descriptions surfaced to clients.
func (srv *Server) initTools() {
	integer := map[string]any{"type": "integer"}
	number := map[string]any{"type": "number"}
	str := map[string]any{"type": "string"}

	srv.tools = []ToolDesc{
		{
			Name:        "get_summary",
			Description: "Summarize a webpage's visible text into the top sentences.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{"url": str, "num_sentences": integer},
				"required":   []string{"url"},
			},
		},
		{
			Name:        "analyze_sentiment_from_url",
			Description: "Label the sentiment of each paragraph and sentence of a webpage.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{"url": str, "threshold": number},
				"required":   []string{"url"},
			},
		},
		{
			Name:        "analyze_sentiment_from_text",
			Description: "Label the sentiment of each paragraph and sentence of a block of text.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{"text": str, "threshold": number},
				"required":   []string{"text"},
			},
		},
		{
			Name:        "extract_entities",
			Description: "Extract the most frequent named entities from a webpage.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{"url": str, "top_k": integer},
				"required":   []string{"url"},
			},
		},
		{
			Name:        "summarize_text",
			Description: "Summarize a block of text into the top sentences.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{"text": str, "num_sentences": integer},
				"required":   []string{"text"},
			},
		},
		{
			Name:        "extract_text_entities",
			Description: "Extract the most frequent named entities from a block of text.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{"text": str, "top_k": integer},
				"required":   []string{"text"},
			},
		},
	}
}

// callTool dispatches to operation handlers by registered name.
func (srv *Server) callTool(ctx context.Context, name string, args map[string]any) (map[string]any, error) {
	switch name {
	case "get_summary":
		return srv.tGetSummary(ctx, args)
	case "analyze_sentiment_from_url":
		return srv.tSentimentFromURL(ctx, args)
	case "analyze_sentiment_from_text":
		return srv.tSentimentFromText(args)
	case "extract_entities":
		return srv.tExtractEntities(ctx, args)
	case "summarize_text":
		return srv.tSummarizeText(args)
	case "extract_text_entities":
		return srv.tExtractTextEntities(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

func (srv *Server) tGetSummary(ctx context.Context, args map[string]any) (map[string]any, error) {
	link := str(args["url"])
	if link == "" {
		return nil, errors.New("url is required")
	}
	summary, err := srv.analyzer.SummarizeURL(ctx, link, intPtr(args["num_sentences"]))
	if err != nil {
		return nil, err
	}
	return map[string]any{"summary": summary}, nil
}

func (srv *Server) tSummarizeText(args map[string]any) (map[string]any, error) {
	text := str(args["text"])
	if text == "" {
		return nil, errors.New("text is required")
	}
	return map[string]any{"summary": srv.analyzer.SummarizeText(text, intPtr(args["num_sentences"]))}, nil
}

func (srv *Server) tSentimentFromURL(ctx context.Context, args map[string]any) (map[string]any, error) {
	link := str(args["url"])
	if link == "" {
		return nil, errors.New("url is required")
	}
	result, err := srv.analyzer.SentimentURL(ctx, link, floatPtr(args["threshold"]))
	if err != nil {
		return nil, err
	}
	return map[string]any{"paragraph_sentiments": result}, nil
}

func (srv *Server) tSentimentFromText(args map[string]any) (map[string]any, error) {
	text := str(args["text"])
	if text == "" {
		return nil, errors.New("text is required")
	}
	result := srv.analyzer.SentimentText(text, floatPtr(args["threshold"]))
	return map[string]any{"paragraph_sentiments": result}, nil
}

func (srv *Server) tExtractEntities(ctx context.Context, args map[string]any) (map[string]any, error) {
	link := str(args["url"])
	if link == "" {
		return nil, errors.New("url is required")
	}
	records, err := srv.analyzer.EntitiesURL(ctx, link, intPtr(args["top_k"]))
	if err != nil {
		return nil, err
	}
	return map[string]any{"entities": records}, nil
}

func (srv *Server) tExtractTextEntities(args map[string]any) (map[string]any, error) {
	text := str(args["text"])
	if text == "" {
		return nil, errors.New("text is required")
	}
	records, err := srv.analyzer.EntitiesText(text, intPtr(args["top_k"]))
	if err != nil {
		return nil, err
	}
	return map[string]any{"entities": records}, nil
}

// ---------- helpers ----------

func str(v any) string { s, _ := v.(string); return s }

// intPtr reads an optional integer argument; nil means "use the default".
func intPtr(v any) *int {
	switch x := v.(type) {
	case float64:
		n := int(x)
		return &n
	case int:
		return &x
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return nil
		}
		n := int(i)
		return &n
	default:
		return nil
	}
}

// floatPtr reads an optional number argument; nil means "use the default".
func floatPtr(v any) *float64 {
	switch x := v.(type) {
	case float64:
		return &x
	case int:
		f := float64(x)
		return &f
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// Serve runs the stdio JSON-RPC loop until in is exhausted.
func (srv *Server) Serve(in io.Reader, out io.Writer) error {
	dec := json.NewDecoder(bufio.NewReader(in))
	for {
		var req rpcReq
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decode request: %w", err)
		}

		switch req.Method {
		case "tools/list":
			writeResp(out, req.ID, map[string]any{"tools": srv.tools}, nil)

		case "tools/call":
			name, _ := req.Params["name"].(string)
			args, _ := req.Params["arguments"].(map[string]any)
			if args == nil {
				args = map[string]any{}
			}
			// per-call timeout so a stuck fetch cannot wedge the loop
			ctx, cancel := context.WithTimeout(context.Background(), srv.CallTimeout)
			res, err := srv.callTool(ctx, name, args)
			cancel()
			writeResp(out, req.ID, res, err)

		default:
			writeResp(out, req.ID, nil, fmt.Errorf("unknown method: %s", req.Method))
		}
	}
}
