package container

import (
	"context"
	"fmt"
	"time"

	"github.com/tindercoin/tindercoin-backend/internal/catalog"
	"github.com/tindercoin/tindercoin-backend/internal/config"
	"github.com/tindercoin/tindercoin-backend/internal/delivery/http"
	"github.com/tindercoin/tindercoin-backend/internal/delivery/http/handler"
	"github.com/tindercoin/tindercoin-backend/internal/domain"
	"github.com/tindercoin/tindercoin-backend/internal/infrastructure/gemini"
	"github.com/tindercoin/tindercoin-backend/internal/infrastructure/server"
	"github.com/tindercoin/tindercoin-backend/internal/repository"
	"github.com/tindercoin/tindercoin-backend/internal/repository/memory"
	"github.com/tindercoin/tindercoin-backend/internal/usecase/chat"
	"github.com/tindercoin/tindercoin-backend/internal/usecase/match"
	"github.com/tindercoin/tindercoin-backend/internal/usecase/swipe"
	"github.com/tindercoin/tindercoin-backend/internal/usecase/user"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Server *server.Server
	Gemini *gemini.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Load the character catalog
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load character catalog: %w", err)
	}

	// Initialize Gemini Client
	var geminiClient *gemini.Client
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewClient(cfg.GeminiAPIKey)
		if err != nil {
			fmt.Printf("Warning: Failed to initialize Gemini client: %v\n", err)
			// Don't fail, just continue with canned replies
			geminiClient = nil
		}
	} else {
		fmt.Println("Warning: GEMINI_API_KEY not set, chat will use canned replies")
	}

	// Initialize repositories
	userRepo := memory.NewUserRepository()
	swipeRepo := memory.NewSwipeRepository()
	matchRepo := memory.NewMatchRepository()
	convRepo := memory.NewConversationRepository()

	if err := seedDemoData(userRepo, matchRepo); err != nil {
		return nil, fmt.Errorf("failed to seed demo data: %w", err)
	}

	// A nil *gemini.Client stored in the interface would not compare
	// equal to nil, so only assign when the client actually exists
	var llm chat.ReplyGenerator
	if geminiClient != nil {
		llm = geminiClient
	}

	// Initialize use cases
	userUseCase := user.NewUserUseCase(userRepo)
	swipeUseCase := swipe.NewSwipeUseCase(swipeRepo, matchRepo, nil)
	matchUseCase := match.NewMatchUseCase(matchRepo, cat)
	chatUseCase := chat.NewChatUseCase(convRepo, llm)

	// Initialize handlers
	characterHandler := handler.NewCharacterHandler(cat)
	userHandler := handler.NewUserHandler(userUseCase)
	swipeHandler := handler.NewSwipeHandler(swipeUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	chatHandler := handler.NewChatHandler(chatUseCase)

	// Initialize router
	router := http.NewRouter(
		characterHandler,
		userHandler,
		swipeHandler,
		matchHandler,
		chatHandler,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// seedDemoData fills the fresh in-memory stores with the default user
// and a couple of starter matches so the app has content on first open.
func seedDemoData(userRepo repository.UserRepository, matchRepo repository.MatchRepository) error {
	ctx := context.Background()
	now := time.Now()

	demoUser := &domain.User{
		ID:          domain.DefaultUserID,
		Username:    "anon_degen",
		DisplayName: "Anon Degen",
		Bio:         "Just a humble degen looking for my moon bag soulmate. Diamond hands only. WAGMI 🚀",
		AvatarURL:   "https://picsum.photos/seed/myprofile/400",
		CreatedAt:   now,
	}
	if err := userRepo.Create(ctx, demoUser); err != nil {
		return err
	}

	demoMatches := []*domain.Match{
		{ID: "match-1", CharacterID: "pepe-01", MatchedAt: now, Location: "The DEX"},
		{ID: "match-2", CharacterID: "doge-02", MatchedAt: now.Add(-time.Hour), Location: "Uniswap Pool Party"},
	}
	for _, m := range demoMatches {
		if err := matchRepo.Append(ctx, domain.DefaultUserID, m); err != nil {
			return err
		}
	}

	return nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		if err := c.Gemini.Close(); err != nil {
			fmt.Printf("Error closing Gemini client: %v\n", err)
		}
	}
	return nil
}
