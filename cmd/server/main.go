package main

import (
	"log"
	"net/http"
	"time"

	"github.com/ds3-project/ds3-backend/internal/config"
	"github.com/ds3-project/ds3-backend/internal/database"
	"github.com/ds3-project/ds3-backend/internal/handlers"
	"github.com/ds3-project/ds3-backend/internal/logger"
	"github.com/ds3-project/ds3-backend/internal/middleware"
	"github.com/ds3-project/ds3-backend/internal/repository"
	"github.com/ds3-project/ds3-backend/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	appLogger, err := logger.New(cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	if err := database.Connect(cfg); err != nil {
		appLogger.Fatal("failed to connect to database", "error", err)
	}
	if err := database.Migrate(); err != nil {
		appLogger.Fatal("failed to run migrations", "error", err)
	}

	db := database.GetDB()

	userRepo := repository.NewUserRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	internshipRepo := repository.NewInternshipRepository(db)
	hackathonRepo := repository.NewHackathonRepository(db)
	chatRepo := repository.NewChatRepository(db)

	userService := services.NewUserService(userRepo)
	skillService := services.NewSkillService(skillRepo)
	internshipService := services.NewInternshipService(internshipRepo)
	hackathonService := services.NewHackathonService(hackathonRepo)
	chatService := services.NewChatService(chatRepo, userRepo)

	userHandler := handlers.NewUserHandler(userService, appLogger)
	skillHandler := handlers.NewSkillHandler(skillService, appLogger)
	internshipHandler := handlers.NewInternshipHandler(internshipService, appLogger)
	hackathonHandler := handlers.NewHackathonHandler(hackathonService, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, appLogger)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-User-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Identity())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "DS3 backend is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	users := r.Group("/api/users")
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.GET("/username/:username", userHandler.GetUserByUsername)
		users.POST("", userHandler.CreateUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	skills := r.Group("/api/skills")
	{
		skills.GET("", skillHandler.ListSkills)
		skills.GET("/:id", skillHandler.GetSkill)
		skills.POST("", skillHandler.CreateSkill)
		skills.PUT("/:id", skillHandler.UpdateSkill)
		skills.DELETE("/:id", skillHandler.DeleteSkill)
	}

	internships := r.Group("/api/internships")
	{
		internships.GET("", internshipHandler.ListInternships)
		internships.GET("/:id", internshipHandler.GetInternship)
		internships.POST("", internshipHandler.CreateInternship)
		internships.PUT("/:id", internshipHandler.UpdateInternship)
		internships.DELETE("/:id", internshipHandler.DeleteInternship)
	}

	hackathons := r.Group("/api/hackathons")
	{
		hackathons.GET("", hackathonHandler.ListHackathons)
		hackathons.GET("/:id", hackathonHandler.GetHackathon)
		hackathons.POST("", hackathonHandler.CreateHackathon)
		hackathons.PUT("/:id", hackathonHandler.UpdateHackathon)
		hackathons.DELETE("/:id", hackathonHandler.DeleteHackathon)
	}

	chats := r.Group("/api/chats")
	{
		chats.GET("/rooms", chatHandler.ListRooms)
		chats.POST("/rooms", chatHandler.CreateRoom)
		chats.POST("/rooms/one-to-one", chatHandler.GetOrCreateOneToOne)
		chats.GET("/rooms/:roomId/messages", chatHandler.ListMessages)
		chats.POST("/rooms/:roomId/messages", chatHandler.SendMessage)
		chats.DELETE("/messages/:id", chatHandler.DeleteMessage)
	}

	appLogger.Info("starting server", "port", cfg.Port, "driver", cfg.DBDriver)
	if err := r.Run(":" + cfg.Port); err != nil {
		appLogger.Fatal("failed to start server", "error", err)
	}
}
