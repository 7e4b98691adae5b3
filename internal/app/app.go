package app

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Shruthi-d-official/WareHouse/docs"
	"github.com/Shruthi-d-official/WareHouse/internal/config"
	"github.com/Shruthi-d-official/WareHouse/internal/handlers"
	"github.com/Shruthi-d-official/WareHouse/internal/pdf"
	"github.com/Shruthi-d-official/WareHouse/internal/repositories"
	"github.com/Shruthi-d-official/WareHouse/internal/routes"
	"github.com/Shruthi-d-official/WareHouse/internal/services"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to connect to DB: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close DB: %v", err)
		}
	}()

	if err := repositories.EnsureSchema(db); err != nil {
		log.Fatal("Failed to initialize schema: ", err)
	}

	// === Repos ===
	adminRepo := repositories.NewAdminRepository(db)
	vendorRepo := repositories.NewVendorRepository(db)
	teamLeaderRepo := repositories.NewTeamLeaderRepository(db)
	workerRepo := repositories.NewWorkerRepository(db)
	otpRepo := repositories.NewOTPRepository(db)
	auditRepo := repositories.NewAuditRepository(db)
	binRepo := repositories.NewBinRepository(db)
	countingRepo := repositories.NewCountingRepository(db)

	// === Services ===
	tokenService := services.NewTokenService(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.TTLMinutes)*time.Minute,
	)
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	telegramService := services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)

	otpService := services.NewOTPService(
		otpRepo,
		workerRepo,
		emailService,
		time.Duration(cfg.OTP.TTLMinutes)*time.Minute,
	)
	authService := services.NewAuthService(adminRepo, vendorRepo, teamLeaderRepo, workerRepo, otpService, tokenService)
	auditService := services.NewAuditService(auditRepo)
	adminService := services.NewAdminService(vendorRepo, authService, telegramService)
	vendorService := services.NewVendorService(vendorRepo, teamLeaderRepo, authService, telegramService)
	teamLeaderService := services.NewTeamLeaderService(workerRepo, authService, telegramService)

	reportGen := pdf.NewSessionReportGenerator(cfg.Files.RootDir)
	countingService := services.NewCountingService(binRepo, countingRepo, workerRepo, reportGen)

	// === Seed ===
	if cfg.Admin.UserID != "" && cfg.Admin.Password != "" {
		hash, err := authService.HashPassword(cfg.Admin.Password)
		if err != nil {
			log.Fatal("Failed to hash bootstrap admin password: ", err)
		}
		if err := repositories.SeedAdmin(db, cfg.Admin.UserID, hash); err != nil {
			log.Fatal("Failed to seed admin: ", err)
		}
	}
	if err := repositories.SeedBins(db); err != nil {
		log.Fatal("Failed to seed bins: ", err)
	}

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(authService, auditService)
	adminHandler := handlers.NewAdminHandler(adminService, auditService)
	vendorHandler := handlers.NewVendorHandler(vendorService, auditService)
	teamLeaderHandler := handlers.NewTeamLeaderHandler(teamLeaderService, auditService)
	countingHandler := handlers.NewCountingHandler(countingService, auditService)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		tokenService,
		authHandler,
		adminHandler,
		vendorHandler,
		teamLeaderHandler,
		countingHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
