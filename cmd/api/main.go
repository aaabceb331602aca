package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"crystalis-cms/internal/config"
	"crystalis-cms/internal/db"
	"crystalis-cms/internal/email"
	apihttp "crystalis-cms/internal/http"
	"crystalis-cms/internal/repository"
	"crystalis-cms/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	ctxPing, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	err = db.Ping(ctxPing, pool)
	cancelPing()
	if err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}

	if len(os.Args) > 1 && os.Args[1] == "create-admin" {
		runCreateAdmin(ctx, logger, pool)
		return
	}

	repos := service.ContentRepos{
		Blogs:        repository.NewPgBlogRepository(pool),
		News:         repository.NewPgNewsRepository(pool),
		Events:       repository.NewPgEventRepository(pool),
		Careers:      repository.NewPgCareerRepository(pool),
		Partners:     repository.NewPgPartnerRepository(pool),
		Team:         repository.NewPgTeamRepository(pool),
		Testimonials: repository.NewPgTestimonialRepository(pool),
		Inquiries:    repository.NewPgInquiryRepository(pool),
		Activities:   repository.NewPgActivityRepository(pool),
		Stats:        repository.NewPgStatsRepository(pool),
	}
	adminRepo := repository.NewPgAdminUserRepository(pool)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var tokenStore service.SessionTokenStore
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			tokenStore = service.NewRedisSessionTokenStore(redisClient)
		}
		cancel()
	}

	tokenSvc := service.NewAuthTokenService(
		cfg.JWTSecret,
		time.Duration(cfg.TokenTTLHours)*time.Hour,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	adminSvc := service.NewAdminService(logger, adminRepo)
	contentSvc := service.NewContentService(logger, repos, emailSender, cfg.ContactInbox)

	authHandler := apihttp.NewAuthHandler(logger, adminSvc, tokenSvc)
	contentHandler := apihttp.NewContentHandler(logger, contentSvc)
	dashHandler := apihttp.NewDashboardHandler(logger, contentSvc)
	router := apihttp.NewRouter(logger, tokenSvc, authHandler, contentHandler, dashHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

// runCreateAdmin da de alta una cuenta del panel y termina. Sin al menos una
// cuenta creada por esta vía, ningún login puede entrar al panel.
//
//	api create-admin -name "Admin" -email admin@crystalis.com -password secret [-role admin]
func runCreateAdmin(ctx context.Context, logger *zap.Logger, pool *pgxpool.Pool) {
	fs := flag.NewFlagSet("create-admin", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	emailAddr := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	role := fs.String("role", "admin", "account role")
	_ = fs.Parse(os.Args[2:])

	admins := service.NewAdminService(logger, repository.NewPgAdminUserRepository(pool))
	user, err := admins.CreateAdmin(ctx, service.CreateAdminInput{
		Name:     *name,
		Email:    *emailAddr,
		Role:     *role,
		Password: *password,
	})
	if err != nil {
		logger.Fatal("create admin", zap.Error(err))
	}
	logger.Info("admin account created",
		zap.String("id", user.ID),
		zap.String("email", user.Email),
		zap.String("role", user.Role),
	)
}
