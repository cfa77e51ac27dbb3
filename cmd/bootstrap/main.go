// Bootstrap seeds a fresh database: it runs the migrations, creates the
// first admin user and inserts empty contact rows for both languages.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"marketing_site/internal/config"
	"marketing_site/internal/database"
	"marketing_site/internal/domain/models"
	"marketing_site/internal/lib/logger/sl"
	"marketing_site/internal/repository"
	"marketing_site/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	var email, name, password string
	flag.StringVar(&email, "email", "", "admin email")
	flag.StringVar(&name, "name", "Admin", "admin display name")
	flag.StringVar(&password, "password", "", "admin password")

	cfg := config.MustLoad()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if email == "" || password == "" {
		log.Error("email and password flags are required")
		os.Exit(1)
	}

	ctx := context.Background()

	if err := database.Migrate(cfg.DSN); err != nil {
		log.Error("migration failed", sl.Err(err))
		os.Exit(1)
	}

	repo, err := repository.NewRepository(ctx, cfg.DSN)
	if err != nil {
		log.Error("failed to connect to database", sl.Err(err))
		os.Exit(1)
	}
	defer repo.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash password", sl.Err(err))
		os.Exit(1)
	}

	id, err := repo.User.SaveUser(ctx, models.User{
		Email:        email,
		Name:         name,
		Role:         models.RoleAdmin,
		PasswordHash: hash,
	})
	switch {
	case errors.Is(err, storage.ErrUserExists):
		log.Info("admin user already exists", slog.String("email", email))
	case err != nil:
		log.Error("failed to create admin user", sl.Err(err))
		os.Exit(1)
	default:
		log.Info("admin user created", slog.String("user_id", id.String()))
	}

	for _, lang := range []string{models.LanguageEN, models.LanguageHE} {
		if _, err := repo.Contact.GetByLanguage(ctx, lang); err == nil {
			continue
		}
		if _, err := repo.Contact.Upsert(ctx, models.ContactInfo{Language: lang}); err != nil {
			log.Error("failed to seed contact row", slog.String("language", lang), sl.Err(err))
			os.Exit(1)
		}
		log.Info("seeded contact row", slog.String("language", lang))
	}

	log.Info("bootstrap complete")
}
