package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/pubudubandara/portfolio-new/internal/auth"
	"github.com/pubudubandara/portfolio-new/internal/httpx"
	"github.com/pubudubandara/portfolio-new/internal/middleware"
	"github.com/pubudubandara/portfolio-new/internal/models"
	"github.com/pubudubandara/portfolio-new/internal/transport"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type checkResponse struct {
	Success bool        `json:"success"`
	User    sessionUser `json:"user"`
}

// Login verifies credentials against the stored bcrypt hash and issues the
// session cookie. Unknown usernames and wrong passwords produce the same
// response so the endpoint cannot be used to probe which accounts exist.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req LoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, transport.CodeBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("login: validation error")
		transport.WriteError(w, http.StatusBadRequest, transport.CodeValidation, "validation error", httpx.ValidationDetails(s.Val.ValidationErrors(err)))
		return
	}

	if s.JWT == nil {
		log.Warn("login: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, transport.CodeInternal, "admin auth not configured", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	err := s.Cols.Users.FindOne(ctx, bson.M{"username": strings.TrimSpace(req.Username)}).Decode(&user)
	if err != nil {
		log.Warn("login: unknown username")
		transport.WriteError(w, http.StatusUnauthorized, transport.CodeUnauthorized, "invalid credentials", nil)
		return
	}

	if err := auth.ComparePassword(user.PasswordHash, req.Password); err != nil {
		log.Warn("login: wrong password", slog.String("username", user.Username))
		transport.WriteError(w, http.StatusUnauthorized, transport.CodeUnauthorized, "invalid credentials", nil)
		return
	}

	token, err := s.JWT.NewSessionToken(user.ID, user.Username)
	if err != nil {
		log.Error("login: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, transport.CodeInternal, "token error", nil)
		return
	}

	setSessionCookie(w, token, s.JWT.TTL, s.Cfg.CookieSecure)
	log.Info("login: ok", slog.String("username", user.Username))
	transport.WriteMessage(w, http.StatusOK, "Login successful")
}

// Check resolves the session cookie to the live user record. Any token
// problem, and a token whose user no longer exists, are all the same 401.
func (s *Server) Check(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	if s.JWT == nil {
		transport.WriteError(w, http.StatusServiceUnavailable, transport.CodeInternal, "admin auth not configured", nil)
		return
	}

	cookie, err := r.Cookie(middleware.SessionCookie)
	if err != nil || cookie.Value == "" {
		transport.WriteError(w, http.StatusUnauthorized, transport.CodeUnauthorized, "unauthorized", nil)
		return
	}

	claims, err := s.JWT.Parse(cookie.Value)
	if err != nil {
		transport.WriteError(w, http.StatusUnauthorized, transport.CodeUnauthorized, "unauthorized", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := s.Cols.Users.FindOne(ctx, bson.M{"_id": claims.Subject}).Decode(&user); err != nil {
		log.Warn("auth check: user no longer exists", slog.String("user_id", claims.Subject))
		transport.WriteError(w, http.StatusUnauthorized, transport.CodeUnauthorized, "unauthorized", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, checkResponse{
		Success: true,
		User: sessionUser{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	})
}

// Logout clears the cookie. Always succeeds, session or not.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, s.Cfg.CookieSecure)
	s.logWithRequest(r).Info("logout: ok")
	transport.WriteMessage(w, http.StatusOK, "Logged out")
}

func setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

func clearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
		MaxAge:   -1,
	})
}
