package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pubudubandara/portfolio-new/internal/httpx"
	"github.com/pubudubandara/portfolio-new/internal/middleware"
	"github.com/pubudubandara/portfolio-new/internal/transport"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Message string `json:"message" validate:"required,max=2000"`
}

// spamKeywords is a deliberately blunt filter; it catches the bulk of drive-by
// form spam without holding a reputation service.
var spamKeywords = []string{"viagra", "casino", "lottery", "investment opportunity"}

func (s *Server) CreateContact(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req ContactRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("contact: invalid json")
		transport.WriteError(w, http.StatusBadRequest, transport.CodeBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("contact: validation error")
		transport.WriteError(w, http.StatusBadRequest, transport.CodeValidation, "All fields are required", httpx.ValidationDetails(s.Val.ValidationErrors(err)))
		return
	}

	if containsSpam(req.Name + " " + req.Email + " " + req.Message) {
		log.Warn("contact: spam rejected")
		transport.WriteError(w, http.StatusBadRequest, transport.CodeValidation, "Message contains prohibited content", nil)
		return
	}

	ip := middleware.ClientIP(r)
	if !s.ContactLimiter.Allow(ip) {
		log.Warn("contact: rate limited", slog.String("ip", ip))
		transport.WriteError(w, http.StatusTooManyRequests, transport.CodeRateLimited, "Too many email attempts. Please try again later.", nil)
		return
	}

	if s.Mailer == nil {
		log.Warn("contact: mailer not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, transport.CodeInternal, "contact mail not configured", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	messageID, err := s.Mailer.SendContactNotification(ctx, req.Name, req.Email, req.Message)
	if err != nil {
		log.Error("contact: mail send failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, transport.CodeInternal, "Failed to send email. Please try again later.", nil)
		return
	}

	// Only accepted submissions count against the hourly budget.
	s.ContactLimiter.Record(ip)

	log.Info("contact: sent", slog.String("message_id", messageID))
	transport.WriteMessage(w, http.StatusOK, "Email sent successfully")
}

func containsSpam(content string) bool {
	content = strings.ToLower(content)
	for _, keyword := range spamKeywords {
		if strings.Contains(content, keyword) {
			return true
		}
	}
	return false
}
