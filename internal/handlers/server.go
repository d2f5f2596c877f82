package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/pubudubandara/portfolio-new/internal/auth"
	"github.com/pubudubandara/portfolio-new/internal/config"
	"github.com/pubudubandara/portfolio-new/internal/db"
	"github.com/pubudubandara/portfolio-new/internal/media"
	"github.com/pubudubandara/portfolio-new/internal/middleware"
	"github.com/pubudubandara/portfolio-new/internal/validation"
)

type ContactMailer interface {
	SendContactNotification(ctx context.Context, name, email, message string) (string, error)
}

type MediaStore interface {
	Upload(ctx context.Context, r io.Reader, size int64, objectName, contentType string) (media.Asset, error)
}

type Server struct {
	Cfg            *config.Config
	Cols           *db.Collections
	Val            *validation.Validator
	Log            *slog.Logger
	JWT            *auth.Manager
	Media          MediaStore
	Mailer         ContactMailer
	ContactLimiter *middleware.RateLimiter
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}
