package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/drift/internal/llm"
)

// ScriptedLLM is an llm.LLMClient that replays canned responses in order.
// Once the script is exhausted the last response repeats. Err, when set, is
// returned instead of any response.
type ScriptedLLM struct {
	Responses []string
	Err       error

	mu       sync.Mutex
	calls    int
	requests []llm.GenerateRequest
}

func NewScriptedLLM(responses ...string) *ScriptedLLM {
	return &ScriptedLLM{Responses: responses}
}

func (s *ScriptedLLM) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
	s.calls++
	if s.Err != nil {
		return nil, s.Err
	}
	text := ""
	if n := len(s.Responses); n > 0 {
		idx := s.calls - 1
		if idx >= n {
			idx = n - 1
		}
		text = s.Responses[idx]
	}
	return &llm.GenerateResponse{Text: text, Model: "scripted"}, nil
}

func (s *ScriptedLLM) Available(context.Context) bool { return true }

// Requests returns a copy of every request received so far.
func (s *ScriptedLLM) Requests() []llm.GenerateRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]llm.GenerateRequest, len(s.requests))
	copy(out, s.requests)
	return out
}
