package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/llmclient"
)

const (
	// Upper bound on tool-call rounds within one chat turn.
	maxToolRounds = 4
	// Messages kept per user before the oldest are dropped.
	memoryLimit = 20
	// Knowledge chunks attached to the prompt when retrieval is on.
	retrieveTopK = 3
)

const systemPrompt = `You are a knowledgeable fitness assistant. You help users with workout advice, ` +
	`nutrition guidance and progress tracking. Use the available tools to look up the user's own ` +
	`workout statistics, goals and streaks when the question is about their data. Be encouraging, ` +
	`concise and practical.`

type ChatService struct {
	llm       LLMClientI
	retriever RetrieverI
	tools     []ChatTool

	mu     sync.Mutex
	memory map[uuid.UUID][]llmclient.Message
}

// NewChatService builds the chat agent. llm may be nil when no provider is
// configured; every Chat call then fails with ErrChatUnavailable.
func NewChatService(llm LLMClientI, retriever RetrieverI, tools []ChatTool) *ChatService {
	return &ChatService{
		llm:       llm,
		retriever: retriever,
		tools:     tools,
		memory:    make(map[uuid.UUID][]llmclient.Message),
	}
}

func (cs *ChatService) Chat(ctx context.Context, uid uuid.UUID, message string, useRAG bool) (*ChatResult, error) {
	if cs.llm == nil {
		return nil, errorvalues.ErrChatUnavailable
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, errors.New("empty message")
	}

	system := systemPrompt
	if useRAG && cs.retriever != nil {
		chunks, err := cs.retriever.Retrieve(ctx, message, retrieveTopK)
		if err != nil {
			return nil, errors.New("retrieving knowledge error: " + err.Error())
		}
		if len(chunks) > 0 {
			system += "\n\nRelevant fitness knowledge:\n- " + strings.Join(chunks, "\n- ")
		}
	}

	history := cs.Memory(uid)
	messages := make([]llmclient.Message, 0, len(history)+2)
	messages = append(messages, llmclient.Message{Role: "system", Content: system})
	messages = append(messages, history...)
	messages = append(messages, llmclient.Message{Role: "user", Content: message})

	specs := make([]llmclient.Tool, 0, len(cs.tools))
	for _, t := range cs.tools {
		specs = append(specs, t.Spec)
	}

	result := ChatResult{ToolsUsed: []ToolUse{}}
	for round := 0; ; round++ {
		reply, err := cs.llm.ChatCompletion(ctx, messages, specs)
		if err != nil {
			return nil, errors.New("chat completion error: " + err.Error())
		}
		if len(reply.ToolCalls) == 0 || round >= maxToolRounds {
			result.Response = reply.Content
			cs.remember(uid, message, reply.Content)
			return &result, nil
		}
		messages = append(messages, *reply)
		for _, call := range reply.ToolCalls {
			output, err := cs.runTool(ctx, uid, call)
			if err != nil {
				return nil, err
			}
			result.ToolsUsed = append(result.ToolsUsed, ToolUse{
				Tool:   call.Function.Name,
				Input:  call.Function.Arguments,
				Output: output,
			})
			messages = append(messages, llmclient.Message{
				Role:       "tool",
				Content:    output,
				ToolCallID: call.ID,
			})
		}
	}
}

func (cs *ChatService) runTool(ctx context.Context, uid uuid.UUID, call llmclient.ToolCall) (string, error) {
	for _, t := range cs.tools {
		if t.Spec.Function.Name == call.Function.Name {
			return t.Run(ctx, uid, call.Function.Arguments)
		}
	}
	return "", errorvalues.ErrUnknownTool
}

func (cs *ChatService) ToolSpecs() []llmclient.ToolSpec {
	specs := make([]llmclient.ToolSpec, 0, len(cs.tools))
	for _, t := range cs.tools {
		specs = append(specs, t.Spec.Function)
	}
	return specs
}

func (cs *ChatService) Memory(uid uuid.UUID) []llmclient.Message {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	history := cs.memory[uid]
	out := make([]llmclient.Message, len(history))
	copy(out, history)
	return out
}

func (cs *ChatService) ClearMemory(uid uuid.UUID) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	delete(cs.memory, uid)
}

func (cs *ChatService) remember(uid uuid.UUID, userMsg, reply string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	history := append(cs.memory[uid],
		llmclient.Message{Role: "user", Content: userMsg},
		llmclient.Message{Role: "assistant", Content: reply},
	)
	if len(history) > memoryLimit {
		history = history[len(history)-memoryLimit:]
	}
	cs.memory[uid] = history
}
