package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/config"
	appHTTP "github.com/kaamsetu/kaamsetu-backend-go/internal/handler/http"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/cron"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/database"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/email"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/jwt"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/otp"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/storage"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/xendit"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/repository/postgresql"
	applicationService "github.com/kaamsetu/kaamsetu-backend-go/internal/service/application"
	serviceAuth "github.com/kaamsetu/kaamsetu-backend-go/internal/service/auth"
	serviceCompany "github.com/kaamsetu/kaamsetu-backend-go/internal/service/company"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/service/file"
	jobService "github.com/kaamsetu/kaamsetu-backend-go/internal/service/job"
	moderationService "github.com/kaamsetu/kaamsetu-backend-go/internal/service/moderation"
	paymentService "github.com/kaamsetu/kaamsetu-backend-go/internal/service/payment"
	userService "github.com/kaamsetu/kaamsetu-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(ctx, dsn); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	redisClient, err := otp.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		log.Fatal("Failed to connect to redis:", err)
	}
	defer redisClient.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	savedJobRepo := postgresql.NewSavedJobRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)
	orderRepo := postgresql.NewPaymentOrderRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	otpStore := otp.NewRedisStore(redisClient, cfg.OTP)

	fileStorage, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}

	fileService := file.NewFileService(fileStorage)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	xenditClient := xendit.NewClient(cfg.Xendit)
	webhookVerifier := xendit.NewWebhookVerifier(cfg.Xendit.WebhookToken)

	authService := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository, otpStore, emailService)
	userSvc := userService.NewUserService(db, userRepo, fileService)
	companyService := serviceCompany.NewCompanyService(db, companyRepo, userRepo, fileService)
	jobSvc := jobService.NewJobService(db, jobRepo, savedJobRepo, companyRepo, userRepo, orderRepo, cfg.Billing)
	applicationSvc := applicationService.NewApplicationService(db, applicationRepo, jobRepo, userRepo, fileService)
	paymentSvc := paymentService.NewPaymentService(db, orderRepo, companyRepo, userRepo, xenditClient, webhookVerifier, cfg.Billing)
	moderationSvc := moderationService.NewModerationService(db, userRepo, companyRepo, jobRepo, cfg.Moderation)

	handlers := appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(JWTService, authService),
		User:        appHTTP.NewUserHandler(userSvc),
		Company:     appHTTP.NewCompanyHandler(companyService),
		Job:         appHTTP.NewJobHandler(jobSvc),
		Application: appHTTP.NewApplicationHandler(applicationSvc),
		Payment:     appHTTP.NewPaymentHandler(paymentSvc),
		Moderation:  appHTTP.NewModerationHandler(moderationSvc),
	}

	scheduler := cron.NewScheduler()
	cron.NewMarketplaceJobs(jobRepo, orderRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, JWTService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server shutdown error:", err)
	}
}
