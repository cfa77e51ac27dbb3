package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"marketing_site/internal/domain/models"
	"marketing_site/internal/email"
	"marketing_site/internal/lib/logger/sl"
	"marketing_site/internal/repository"
	"marketing_site/internal/storage"

	"github.com/patrickmn/go-cache"
)

var (
	ErrContactNotFound     = errors.New("contact info not found")
	ErrTooManyMessages     = errors.New("too many messages, try again later")
	ErrMailerNotConfigured = errors.New("mail transport not configured")
)

// throttleWindow limits how often a single sender address can submit the
// contact form.
const throttleWindow = time.Minute

type Mailer interface {
	SendContactMessage(to string, data email.ContactMessageData) error
	IsConfigured() bool
}

type ContactService struct {
	log      *slog.Logger
	repo     repository.ContactRepository
	mailer   Mailer
	to       string
	throttle *cache.Cache
}

// NewContactService wires the contact block storage and the form mailer.
// to is the notification recipient; when empty, the english contact email
// from storage is used instead.
func NewContactService(log *slog.Logger, repo repository.ContactRepository, mailer Mailer, to string) *ContactService {
	return &ContactService{
		log:      log,
		repo:     repo,
		mailer:   mailer,
		to:       to,
		throttle: cache.New(throttleWindow, 2*throttleWindow),
	}
}

// GetContact returns the contact block for a language. There is no
// cross-language fallback here: a language without a row is simply not
// found, unlike section and article content.
func (s *ContactService) GetContact(ctx context.Context, language string) (*models.ContactInfo, error) {
	const op = "contact_service.GetContact"

	info, err := s.repo.GetByLanguage(ctx, language)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrContactNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return info, nil
}

func (s *ContactService) UpdateContact(ctx context.Context, info models.ContactInfo) (*models.ContactInfo, error) {
	const op = "contact_service.UpdateContact"

	saved, err := s.repo.Upsert(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("contact info updated",
		slog.String("op", op),
		slog.String("language", info.Language),
	)

	return saved, nil
}

// SendMessage delivers a contact-form submission to the site owner. A
// missing SMTP setup is a hard failure: the submission is rejected rather
// than silently dropped.
func (s *ContactService) SendMessage(ctx context.Context, data email.ContactMessageData) error {
	const op = "contact_service.SendMessage"

	sender := strings.ToLower(strings.TrimSpace(data.Email))
	if _, found := s.throttle.Get(sender); found {
		return fmt.Errorf("%s: %w", op, ErrTooManyMessages)
	}
	s.throttle.SetDefault(sender, struct{}{})

	to := s.recipient(ctx)

	if !s.mailer.IsConfigured() {
		s.log.Error("mailer not configured, contact message rejected",
			slog.String("op", op),
			slog.String("from", data.Email),
		)
		return fmt.Errorf("%s: %w", op, ErrMailerNotConfigured)
	}

	if err := s.mailer.SendContactMessage(to, data); err != nil {
		s.log.Error("failed to send contact message", slog.String("op", op), sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("contact message sent", slog.String("op", op), slog.String("to", to))

	return nil
}

func (s *ContactService) recipient(ctx context.Context) string {
	if s.to != "" {
		return s.to
	}

	info, err := s.repo.GetByLanguage(ctx, models.LanguageEN)
	if err == nil && info.Email != "" {
		return info.Email
	}

	return ""
}
