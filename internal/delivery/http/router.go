package http

import (
	"regexp"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/tindercoin/tindercoin-backend/internal/delivery/http/handler"
)

type Router struct {
	characterHandler *handler.CharacterHandler
	userHandler      *handler.UserHandler
	swipeHandler     *handler.SwipeHandler
	matchHandler     *handler.MatchHandler
	chatHandler      *handler.ChatHandler
}

func NewRouter(
	characterHandler *handler.CharacterHandler,
	userHandler *handler.UserHandler,
	swipeHandler *handler.SwipeHandler,
	matchHandler *handler.MatchHandler,
	chatHandler *handler.ChatHandler,
) *Router {
	return &Router{
		characterHandler: characterHandler,
		userHandler:      userHandler,
		swipeHandler:     swipeHandler,
		matchHandler:     matchHandler,
		chatHandler:      chatHandler,
	}
}

var walletAddrPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// RegisterValidators adds custom binding rules to gin's validator.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("walletaddr", func(fl validator.FieldLevel) bool {
			return walletAddrPattern.MatchString(fl.Field().String())
		})
	}
}

func (r *Router) Setup() *gin.Engine {
	RegisterValidators()

	router := gin.Default()

	// The app is served from a separate origin, so allow everything
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// Character routes
	router.GET("/characters", r.characterHandler.GetCharacters)
	router.POST("/characters", r.characterHandler.CreateCharacter)

	// User routes
	router.GET("/users", r.userHandler.GetUser)
	router.POST("/users", r.userHandler.CreateUser)
	router.PUT("/users", r.userHandler.UpdateUser)

	// Swipe routes
	router.GET("/swipes", r.swipeHandler.GetSwipes)
	router.POST("/swipes", r.swipeHandler.CreateSwipe)

	// Match routes
	router.GET("/matches", r.matchHandler.GetMatches)
	router.POST("/matches", r.matchHandler.CreateMatch)

	// Chat routes
	router.GET("/chat", r.chatHandler.GetHistory)
	router.POST("/chat", r.chatHandler.SendMessage)

	return router
}
