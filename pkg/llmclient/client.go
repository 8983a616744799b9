// Package llmclient is a thin client for OpenAI-compatible chat completion
// and embedding endpoints.
package llmclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
)

type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type Tool struct {
	Type     string   `json:"type"`
	Function ToolSpec `json:"function"`
}

type ToolSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

type Cfg struct {
	BaseURL    string
	APIKey     string
	ChatModel  string
	EmbedModel string
}

type Client struct {
	cfg   Cfg
	httpc *http.Client
}

func New(cfg Cfg) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.ChatModel == "" {
		cfg.ChatModel = "gpt-4o-mini"
	}
	if cfg.EmbedModel == "" {
		cfg.EmbedModel = "text-embedding-3-small"
	}
	return &Client{
		cfg: cfg,
		httpc: &http.Client{
			Timeout: time.Second * 60,
		},
	}
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Tools    []Tool    `json:"tools,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// ChatCompletion sends the conversation to the provider and returns the
// assistant message. The returned message may carry tool calls instead of
// content.
func (c *Client) ChatCompletion(ctx context.Context, messages []Message, tools []Tool) (*Message, error) {
	body, err := sonic.ConfigDefault.Marshal(chatRequest{
		Model:    c.cfg.ChatModel,
		Messages: messages,
		Tools:    tools,
	})
	if err != nil {
		return nil, errors.New("marshalling chat request error: " + err.Error())
	}
	respBody, err := c.post(ctx, "/chat/completions", body)
	if err != nil {
		return nil, err
	}
	var resp chatResponse
	if err = sonic.ConfigDefault.Unmarshal(respBody, &resp); err != nil {
		return nil, errors.New("unmarshalling chat response error: " + err.Error())
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat response has no choices")
	}
	return &resp.Choices[0].Message, nil
}

type embedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embedResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

// Embed returns one embedding vector per input string, in input order.
func (c *Client) Embed(ctx context.Context, input []string) ([][]float64, error) {
	body, err := sonic.ConfigDefault.Marshal(embedRequest{
		Model: c.cfg.EmbedModel,
		Input: input,
	})
	if err != nil {
		return nil, errors.New("marshalling embed request error: " + err.Error())
	}
	respBody, err := c.post(ctx, "/embeddings", body)
	if err != nil {
		return nil, err
	}
	var resp embedResponse
	if err = sonic.ConfigDefault.Unmarshal(respBody, &resp); err != nil {
		return nil, errors.New("unmarshalling embed response error: " + err.Error())
	}
	if len(resp.Data) != len(input) {
		return nil, errors.New("embed response size mismatch")
	}
	vectors := make([][]float64, len(input))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return nil, errors.New("embed response index out of range")
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}

func (c *Client) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.New("building provider request error: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, errors.New("provider request error: " + err.Error())
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New("reading provider response error: " + err.Error())
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("provider returned status " + strconv.Itoa(resp.StatusCode) + ": " + string(respBody))
	}
	return respBody, nil
}
