// Package testutil provides test doubles shared across packages, most
// importantly a fake OpenAI-compatible chat completion endpoint so that
// translation tests exercise the real HTTP client without network access.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
)

// quoted extracts the word the translation prompt asks about.
var quoted = regexp.MustCompile(`'([^']+)'`)

// ChatCompletionServer is a fake OpenAI chat completion endpoint. It
// answers translation prompts from the Answers map and can be told to
// fail the first N requests to exercise retry paths.
type ChatCompletionServer struct {
	Answers   map[string]string // noun -> English
	FailFirst int               // fail this many initial requests with HTTP 500
	Requests  int               // total requests received

	server *httptest.Server
}

type chatRequest struct {
	Messages []struct {
		Content string `json:"content"`
	} `json:"messages"`
}

// NewChatCompletionServer starts the fake endpoint. Callers must Close it.
func NewChatCompletionServer(answers map[string]string) *ChatCompletionServer {
	s := &ChatCompletionServer{Answers: answers}
	s.server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// BaseURL returns the value to use as the OpenAI API base URL.
func (s *ChatCompletionServer) BaseURL() string {
	return s.server.URL + "/v1"
}

// Close shuts down the server.
func (s *ChatCompletionServer) Close() {
	s.server.Close()
}

func (s *ChatCompletionServer) handle(w http.ResponseWriter, r *http.Request) {
	s.Requests++

	if s.Requests <= s.FailFirst {
		http.Error(w, `{"error": {"message": "temporary failure"}}`, http.StatusInternalServerError)
		return
	}

	if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
		http.NotFound(w, r)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
		http.Error(w, `{"error": {"message": "bad request"}}`, http.StatusBadRequest)
		return
	}

	answer := ""
	if m := quoted.FindStringSubmatch(req.Messages[0].Content); m != nil {
		answer = s.Answers[m[1]]
	}
	if answer == "" {
		http.Error(w, `{"error": {"message": "unknown word"}}`, http.StatusNotFound)
		return
	}

	resp := map[string]interface{}{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"choices": []map[string]interface{}{
			{
				"index": 0,
				"message": map[string]string{
					"role":    "assistant",
					"content": answer,
				},
				"finish_reason": "stop",
			},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
