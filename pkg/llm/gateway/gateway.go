package gateway

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"review-agent-be/pkg/llm"
)

// Gateway is the single model-call site for the analysis pipeline. It wraps an
// LLMProvider with a per-call deadline and lenient JSON decoding; a model reply
// that cannot be decoded is a normal "no result" outcome (ok=false), never an
// error. Only transport failures surface as errors, and callers treat those as
// "no result" too.
type Gateway struct {
	provider llm.LLMProvider
	timeout  time.Duration
}

func New(provider llm.LLMProvider, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Gateway{provider: provider, timeout: timeout}
}

// Complete returns the raw model reply for a system prompt + user content pair.
// An empty reply yields ok=false.
func (g *Gateway) Complete(ctx context.Context, systemPrompt, userContent string, opts ...llm.Option) (string, bool, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	reply, err := g.provider.Chat(callCtx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userContent},
	}, opts...)
	if err != nil {
		return "", false, err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", false, nil
	}
	return reply, true, nil
}

// CompleteInto decodes the model reply into out. Decoding tolerates fenced and
// chatty replies; a reply with no usable JSON yields ok=false.
func (g *Gateway) CompleteInto(ctx context.Context, systemPrompt, userContent string, out interface{}, opts ...llm.Option) (bool, error) {
	reply, ok, err := g.Complete(ctx, systemPrompt, userContent, opts...)
	if err != nil || !ok {
		return false, err
	}
	return DecodeModelJSON(reply, out), nil
}

var (
	fenceOpenRe  = regexp.MustCompile("(?s)^\\s*```(?:json)?\\s*")
	fenceCloseRe = regexp.MustCompile("(?s)\\s*```\\s*$")
)

// StripFences removes a leading ```json / ``` fence and a trailing ``` fence.
func StripFences(s string) string {
	s = fenceOpenRe.ReplaceAllString(s, "")
	s = fenceCloseRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// DecodeModelJSON decodes the first JSON object or array found in a model
// reply. Returns false when nothing decodable is present.
func DecodeModelJSON(reply string, out interface{}) bool {
	s := StripFences(reply)
	if json.Unmarshal([]byte(s), out) == nil {
		return true
	}
	// Fall back to the outermost bracketed span; models often wrap JSON in prose.
	for _, pair := range [][2]byte{{'{', '}'}, {'[', ']'}} {
		start := strings.IndexByte(s, pair[0])
		end := strings.LastIndexByte(s, pair[1])
		if start >= 0 && end > start {
			if json.Unmarshal([]byte(s[start:end+1]), out) == nil {
				return true
			}
		}
	}
	return false
}
