package mcp

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pagelens/pagelens/internal/analysis"
	"github.com/pagelens/pagelens/internal/fetch"
	"github.com/pagelens/pagelens/internal/nlp"
)

type fakeRecognizer struct {
	mentions []nlp.Mention
	err      error
}

func (r fakeRecognizer) Recognize(text string) ([]nlp.Mention, error) {
	return r.mentions, r.err
}

func newTestRegistry(rec nlp.Recognizer) *Server {
	return NewServer(&analysis.Analyzer{
		Fetcher:    fetch.NewClient(2*time.Second, 0, "pagelens-test/1.0"),
		Recognizer: rec,
		Defaults:   analysis.Defaults{NumSentences: 3, Threshold: 0.5, TopK: 5},
	})
}

func serve(t *testing.T, srv *Server, requests ...string) []rpcResp {
	t.Helper()
	var out bytes.Buffer
	if err := srv.Serve(strings.NewReader(strings.Join(requests, "\n")), &out); err != nil {
		t.Fatalf("Serve: %v", err)
	}
	var resps []rpcResp
	dec := json.NewDecoder(&out)
	for dec.More() {
		var r rpcResp
		if err := dec.Decode(&r); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		resps = append(resps, r)
	}
	return resps
}

func TestToolsListAdvertisesAllOperations(t *testing.T) {
	srv := newTestRegistry(fakeRecognizer{})
	resps := serve(t, srv, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	if len(resps) != 1 {
		t.Fatalf("expected 1 response, got %d", len(resps))
	}
	raw, _ := json.Marshal(resps[0].Result)
	for _, name := range []string{
		"get_summary",
		"analyze_sentiment_from_url",
		"analyze_sentiment_from_text",
		"extract_entities",
		"summarize_text",
		"extract_text_entities",
	} {
		if !strings.Contains(string(raw), `"`+name+`"`) {
			t.Fatalf("tools/list missing operation %q: %s", name, raw)
		}
	}
}

func TestCallSummarizeText(t *testing.T) {
	srv := newTestRegistry(fakeRecognizer{})
	req := `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"summarize_text","arguments":{"text":"One two. Three four. Five six. Seven eight.","num_sentences":2}}}`
	resps := serve(t, srv, req)
	if resps[0].Error != nil {
		t.Fatalf("unexpected error: %v", resps[0].Error)
	}
	summary, ok := resps[0].Result["summary"].(string)
	if !ok {
		t.Fatalf("expected summary string, got %v", resps[0].Result)
	}
	if len(nlp.SplitSentences(summary)) != 2 {
		t.Fatalf("expected 2 sentences, got %q", summary)
	}
}

func TestCallExtractTextEntities(t *testing.T) {
	srv := newTestRegistry(fakeRecognizer{mentions: []nlp.Mention{
		{Text: "Apple Inc.", Label: "ORG"},
		{Text: "Apple Inc.", Label: "ORG"},
		{Text: "Cupertino", Label: "LOC"},
	}})
	req := `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"extract_text_entities","arguments":{"text":"Apple Inc. in Cupertino.","top_k":1}}}`
	resps := serve(t, srv, req)
	if resps[0].Error != nil {
		t.Fatalf("unexpected error: %v", resps[0].Error)
	}
	entities, ok := resps[0].Result["entities"].([]any)
	if !ok || len(entities) != 1 {
		t.Fatalf("expected single entity, got %v", resps[0].Result)
	}
	first, _ := entities[0].(map[string]any)
	if first["text"] != "Apple Inc." || first["type"] != "ORG" || first["count"] != float64(2) {
		t.Fatalf("unexpected entity: %v", first)
	}
}

func TestCallSentimentFromTextMissingText(t *testing.T) {
	srv := newTestRegistry(fakeRecognizer{})
	req := `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"analyze_sentiment_from_text","arguments":{}}}`
	resps := serve(t, srv, req)
	if resps[0].Error == nil {
		t.Fatal("expected error for missing text")
	}
}

func TestCallUnknownTool(t *testing.T) {
	srv := newTestRegistry(fakeRecognizer{})
	req := `{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"name":"launch_rockets","arguments":{}}}`
	resps := serve(t, srv, req)
	if resps[0].Error == nil || !strings.Contains(resps[0].Error.Message, "unknown tool") {
		t.Fatalf("expected unknown tool error, got %v", resps[0].Error)
	}
}

func TestUnknownMethod(t *testing.T) {
	srv := newTestRegistry(fakeRecognizer{})
	resps := serve(t, srv, `{"jsonrpc":"2.0","id":6,"method":"resources/read"}`)
	if resps[0].Error == nil || !strings.Contains(resps[0].Error.Message, "unknown method") {
		t.Fatalf("expected unknown method error, got %v", resps[0].Error)
	}
}

func TestSequentialRequestsShareOneLoop(t *testing.T) {
	srv := newTestRegistry(fakeRecognizer{})
	resps := serve(t, srv,
		`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"summarize_text","arguments":{"text":"Only one sentence here."}}}`,
	)
	if len(resps) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(resps))
	}
	if resps[1].Error != nil {
		t.Fatalf("unexpected error: %v", resps[1].Error)
	}
	if resps[1].Result["summary"] != "Only one sentence here." {
		t.Fatalf("short text should come back unchanged: %v", resps[1].Result)
	}
}
