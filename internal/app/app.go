// Package app wires configuration, storage, services and the HTTP server
// into a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "marketing_site/internal/app/http"
	"marketing_site/internal/config"
	"marketing_site/internal/database"
	"marketing_site/internal/email"
	"marketing_site/internal/repository"
	"marketing_site/internal/services"
	filestorage "marketing_site/internal/storage/filestorage"
	redisapp "marketing_site/internal/storage/redis"
	httprouters "marketing_site/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server

	repo  *repository.Repository
	redis *redisapp.Client
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	if err := database.Migrate(cfg.DSN); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	repo, err := repository.NewRepository(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	redisClient := redisapp.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("%s: redis: %w", op, err)
	}

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	mailer := email.NewService(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		FromName: cfg.SMTP.FromName,
	})

	tokenService := services.NewTokenService(
		repository.NewTokenRepository(redisClient),
		cfg.Auth.Secret,
		cfg.Auth.AccessTTL,
		cfg.Auth.RefreshTTL,
	)
	userService := services.NewUserService(log, repo.User, tokenService)
	sectionService := services.NewSectionService(log, repo.Section)
	articleService := services.NewArticleService(log, repo.Article)
	contactService := services.NewContactService(log, repo.Contact, mailer, cfg.Contact.Recipient)
	mediaService := services.NewMediaService(log, repo.Media, fileStorage, cfg.FileStorage.MaxSize)

	routers := httprouters.NewRouter(
		log,
		sectionService,
		articleService,
		contactService,
		userService,
		tokenService,
		mediaService,
	)

	server := httpapp.New(log, cfg.Auth.Secret, cfg.HTTP.Host, cfg.HTTP.Port, cfg.FileStorage.BaseDir, routers)
	server.BuildRouters()

	return &App{
		HTTPServer: server,
		repo:       repo,
		redis:      redisClient,
	}, nil
}

func (a *App) Stop() error {
	if err := a.HTTPServer.Stop(); err != nil {
		return err
	}

	a.repo.Close()

	return a.redis.Close()
}
