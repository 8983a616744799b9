package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/httputil"
	"github.com/limbo/fittrack/pkg/llmclient"
)

type ChatRequest struct {
	Message string `json:"message"`
	UseRAG  *bool  `json:"use_rag"`
}

type ChatMemoryResponse struct {
	UserID   string              `json:"uid"`
	Messages []llmclient.Message `json:"messages"`
}

func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("chat error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ChatRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Message == "" {
		logger.Error("chat error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	useRAG := true
	if req.UseRAG != nil {
		useRAG = *req.UseRAG
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*90)
	defer cancel()
	result, err := s.chatService.Chat(ctx, uid, req.Message, useRAG)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChatUnavailable):
			logger.Error("chat error: assistant not configured")
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "ai assistant is not configured", nil)
		default:
			logger.Error("chat error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while processing chat message", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("chat reply provided")
}

func (s *Server) GetChatTools(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"tools": s.chatService.ToolSpecs(),
	})
	logger.Info("chat tools provided")
}

func (s *Server) GetChatMemory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get chat memory error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ChatMemoryResponse{
		UserID:   uid.String(),
		Messages: s.chatService.Memory(uid),
	})
	logger.Info("chat memory provided")
}

func (s *Server) ClearChatMemory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("clear chat memory error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	s.chatService.ClearMemory(uid)
	w.WriteHeader(http.StatusNoContent)
	logger.Info("chat memory cleared")
}
