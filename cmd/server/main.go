package main

import (
	"fmt"
	"log"
	"net/http"

	"gamenight/backend/internal/assist"
	"gamenight/backend/internal/auth"
	"gamenight/backend/internal/chaos"
	"gamenight/backend/internal/config"
	"gamenight/backend/internal/database"
	"gamenight/backend/internal/handler"
	"gamenight/backend/internal/logger"
	"gamenight/backend/internal/mail"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gamenight/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Game Night API
// @version         1.0
// @description     Event lifecycle, invites and RSVPs, game lineup voting, snack roster and planning chat for game nights.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	zlog, err := logger.Init()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	// Wire collaborators
	if config.AppConfig.SMTPHost != "" {
		handler.Mailer = &mail.SMTPSender{
			Host: config.AppConfig.SMTPHost,
			Port: config.AppConfig.SMTPPort,
			User: config.AppConfig.SMTPUser,
			Pass: config.AppConfig.SMTPPass,
			From: config.AppConfig.SMTPFrom,
		}
	} else {
		handler.Mailer = &mail.LogSender{Logger: zlog}
	}
	handler.Suggester = assist.CannedSuggester{}
	if config.AppConfig.RedisAddr != "" {
		handler.ChaosManager = chaos.NewManager(config.AppConfig.RedisAddr, config.AppConfig.RedisPassword)
	}

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", handler.GetMe)
		}

		// Invite routes (the token itself is the credential)
		inviteRoutes := apiV1.Group("/invites")
		{
			inviteRoutes.GET("/:token", handler.GetInvite)
			inviteRoutes.POST("/:token/respond", handler.RespondInvite)
		}

		// Event routes. Optional auth: logged-in guests and hosts come through
		// the bearer token, anonymous guests through ?token=. Host-only
		// handlers enforce their own checks.
		eventRoutes := apiV1.Group("/events")
		eventRoutes.Use(auth.OptionalAuthMiddleware())
		{
			eventRoutes.POST("", auth.AuthMiddleware(), handler.CreateEvent)
			eventRoutes.GET("", auth.AuthMiddleware(), handler.ListEvents)
			eventRoutes.GET("/:id", handler.GetEvent)
			eventRoutes.PATCH("/:id", handler.UpdateEvent)
			eventRoutes.POST("/:id/status", handler.SetEventStatus)
			eventRoutes.PUT("/:id/house-rules", handler.UpdateHouseRules)

			eventRoutes.POST("/:id/guests", handler.AddGuest)
			eventRoutes.POST("/:id/guests/:guestID/resend", handler.ResendInvite)
			eventRoutes.PUT("/:id/guests/:guestID/bringing", handler.SetBringing)

			eventRoutes.POST("/:id/lineup", handler.AddLineupEntry)
			eventRoutes.DELETE("/:id/lineup/:entryID", handler.DeleteLineupEntry)
			eventRoutes.POST("/:id/lineup/:entryID/vote", handler.CastVote)
			eventRoutes.POST("/:id/lineup/:entryID/outcome", handler.RecordOutcome)

			eventRoutes.GET("/:id/snacks", handler.GetSnackRoster)

			eventRoutes.POST("/:id/moments", handler.CreateMoment)
			eventRoutes.GET("/:id/moments", handler.ListMoments)

			eventRoutes.POST("/:id/chat", handler.PostChatMessage)
			eventRoutes.GET("/:id/chat", handler.ListChatMessages)
			eventRoutes.GET("/:id/chat/stream", handler.StreamChat)

			eventRoutes.GET("/:id/suggestions", handler.GetSuggestions)

			eventRoutes.POST("/:id/chaos", handler.StartChaosSession)
			eventRoutes.GET("/:id/chaos", handler.GetChaosSession)
		}
	}

	addr := config.AppConfig.ServerAddr
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(addr))
}
