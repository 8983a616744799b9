// @title FitTrack API
// @description API for fitness-tracker app "FitTrack"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/limbo/fittrack/internal/api"
	"github.com/limbo/fittrack/internal/rag"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/cleanup"
	"github.com/limbo/fittrack/pkg/config"
	jwtservice "github.com/limbo/fittrack/pkg/jwt_service"
	"github.com/limbo/fittrack/pkg/llmclient"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	conn := repository.NewPool(&dbCfg)

	userService := service.NewUserService(repository.NewUsersRepoWithConn(conn))
	workoutsService := service.NewWorkoutsService(repository.NewWorkoutsRepoWithConn(conn))
	goalsService := service.NewGoalsService(repository.NewGoalsRepoWithConn(conn))
	progressService := service.NewProgressService(repository.NewProgressRepoWithConn(conn))
	analyticsService := service.NewAnalyticsService(
		repository.NewWorkoutsRepoWithConn(conn),
		repository.NewGoalsRepoWithConn(conn),
	)
	chatService := buildChatService(cfg, analyticsService)

	serv := api.New(&api.ServicesList{
		UserService:      userService,
		WorkoutsService:  workoutsService,
		GoalsService:     goalsService,
		ProgressService:  progressService,
		AnalyticsService: analyticsService,
		ChatService:      chatService,
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET")),
		DB:               conn,
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}

// buildChatService wires the AI assistant when a provider key is configured.
// Without a key the service still starts and reports the assistant as
// unavailable.
func buildChatService(cfg *config.Config, analyticsService service.AnalyticsServiceI) service.ChatServiceI {
	apiKey := cfg.GetString("LLM_API_KEY")
	if apiKey == "" {
		slog.Info("no LLM_API_KEY set, ai assistant disabled")
		return service.NewChatService(nil, nil, nil)
	}
	client := llmclient.New(llmclient.Cfg{
		BaseURL:    cfg.GetString("LLM_BASE_URL"),
		APIKey:     apiKey,
		ChatModel:  cfg.GetString("LLM_CHAT_MODEL"),
		EmbedModel: cfg.GetString("LLM_EMBED_MODEL"),
	})
	store := rag.NewStore(client)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*60)
	defer cancel()
	if err := store.Index(ctx, rag.KnowledgeChunks()); err != nil {
		slog.Error("indexing knowledge base failed, retrieval disabled", slog.String("error", err.Error()))
		return service.NewChatService(client, nil, service.FitnessTools(analyticsService))
	}
	return service.NewChatService(client, store, service.FitnessTools(analyticsService))
}
