package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pubudubandara/portfolio-new/internal/auth"
	"github.com/pubudubandara/portfolio-new/internal/cache"
	"github.com/pubudubandara/portfolio-new/internal/certificates"
	"github.com/pubudubandara/portfolio-new/internal/config"
	"github.com/pubudubandara/portfolio-new/internal/contributions"
	"github.com/pubudubandara/portfolio-new/internal/db"
	"github.com/pubudubandara/portfolio-new/internal/handlers"
	"github.com/pubudubandara/portfolio-new/internal/media"
	"github.com/pubudubandara/portfolio-new/internal/middleware"
	"github.com/pubudubandara/portfolio-new/internal/notifications"
	"github.com/pubudubandara/portfolio-new/internal/projects"
	"github.com/pubudubandara/portfolio-new/internal/skills"
	"github.com/pubudubandara/portfolio-new/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret: []byte(cfg.JWTSecret),
			TTL:    time.Duration(cfg.SessionTTLHours) * time.Hour,
			Issuer: "portfolio-backend",
		}
	} else {
		logger.Warn("jwt secret missing, admin routes disabled")
	}

	var mediaStore *media.Store
	if cfg.MinioAccessKey != "" {
		mediaStore, err = media.NewStore(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL, cfg.MediaBaseURL)
		if err != nil {
			logger.Error("media store connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("media store connected", slog.String("bucket", cfg.MinioBucket))
	} else {
		logger.Info("media store disabled")
	}

	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.ContactRecipient, cfg.BrevoSandbox)
	if mailer == nil {
		logger.Info("brevo mailer disabled")
	} else {
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail))
	}

	val := validation.New()
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	server := &handlers.Server{
		Cfg:            cfg,
		Cols:           cols,
		Val:            val,
		Log:            logger,
		JWT:            jwtManager,
		Mailer:         mailer,
		ContactLimiter: contactLimiter,
	}
	if mediaStore != nil {
		server.Media = mediaStore
	}

	var skillAssets skills.AssetRemover
	var projectAssets projects.AssetRemover
	var certificateAssets certificates.AssetRemover
	if mediaStore != nil {
		skillAssets = mediaStore
		projectAssets = mediaStore
		certificateAssets = mediaStore
	}

	skillsHandler := skills.NewHandler(
		skills.NewService(skills.NewRepository(cols.Skills), skillAssets, logger),
		val, cacheStore, cacheTTL, logger,
	)
	projectsHandler := projects.NewHandler(
		projects.NewService(projects.NewRepository(cols.Projects), projectAssets, logger),
		val, cacheStore, cacheTTL, logger,
	)
	certificatesHandler := certificates.NewHandler(
		certificates.NewService(certificates.NewRepository(cols.Certificates), certificateAssets, logger),
		val, cacheStore, cacheTTL, logger,
	)
	contributionsHandler := contributions.NewHandler(
		contributions.NewService(contributions.NewRepository(cols.Contributions)),
		val, cacheStore, cacheTTL, logger,
	)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	r.Get("/robots.txt", server.Robots)

	r.Route("/api", func(api chi.Router) {
		api.Get("/skills", skillsHandler.List)
		api.Get("/projects", projectsHandler.List)
		api.Get("/certificates", certificatesHandler.List)
		api.Get("/contributions", contributionsHandler.List)

		api.Route("/auth", func(authRoutes chi.Router) {
			authRoutes.Post("/login", server.Login)
			authRoutes.Get("/check", server.Check)
			authRoutes.Post("/logout", server.Logout)
		})

		api.Get("/users", server.UserStatus)
		api.Post("/users", server.CreateUser)

		api.Post("/contact", server.CreateContact)

		// Every mutating and upload route sits behind the session gate.
		api.Group(func(protected chi.Router) {
			protected.Use(middleware.SessionAuth(jwtManager))

			protected.Post("/skills", skillsHandler.Create)
			protected.Put("/skills", skillsHandler.Update)
			protected.Delete("/skills", skillsHandler.Delete)

			protected.Post("/projects", projectsHandler.Create)
			protected.Put("/projects", projectsHandler.Update)
			protected.Delete("/projects", projectsHandler.Delete)

			protected.Post("/certificates", certificatesHandler.Create)
			protected.Put("/certificates", certificatesHandler.Update)
			protected.Delete("/certificates", certificatesHandler.Delete)

			protected.Post("/contributions", contributionsHandler.Create)
			protected.Put("/contributions", contributionsHandler.Update)
			protected.Delete("/contributions", contributionsHandler.Delete)

			protected.Post("/upload-skill-image", server.UploadSkillImage)
			protected.Post("/upload-project-image", server.UploadProjectImage)
			protected.Post("/upload-certificate-image", server.UploadCertificateImage)
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
