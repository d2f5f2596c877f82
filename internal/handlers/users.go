package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pubudubandara/portfolio-new/internal/auth"
	"github.com/pubudubandara/portfolio-new/internal/httpx"
	"github.com/pubudubandara/portfolio-new/internal/middleware"
	"github.com/pubudubandara/portfolio-new/internal/models"
	"github.com/pubudubandara/portfolio-new/internal/transport"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type userStatusResponse struct {
	Success   bool  `json:"success"`
	HasAdmin  bool  `json:"hasAdmin"`
	UserCount int64 `json:"userCount"`
}

// CreateUser bootstraps the admin account. The very first account may be
// created without a session; once any user exists, only an authenticated
// caller may add more.
func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req CreateUserRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("user create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, transport.CodeBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("user create: validation error")
		transport.WriteError(w, http.StatusBadRequest, transport.CodeValidation, "validation error", httpx.ValidationDetails(s.Val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	count, err := s.Cols.Users.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Error("user create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, transport.CodeInternal, "database error", nil)
		return
	}

	if count > 0 && !s.hasValidSession(r) {
		log.Warn("user create: unauthenticated with existing admin")
		transport.WriteError(w, http.StatusUnauthorized, transport.CodeUnauthorized, "unauthorized", nil)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error("user create: hash error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, transport.CodeInternal, "password error", nil)
		return
	}

	user := models.User{
		ID:           primitive.NewObjectID().Hex(),
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.Cols.Users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Warn("user create: duplicate username", slog.String("username", user.Username))
			transport.WriteError(w, http.StatusConflict, transport.CodeConflict, "User with this username already exists", nil)
			return
		}
		log.Error("user create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, transport.CodeInternal, "database error", nil)
		return
	}

	log.Info("user create: ok", slog.String("user_id", user.ID), slog.String("username", user.Username))
	transport.WriteData(w, http.StatusCreated, user)
}

// UserStatus is the public bootstrap probe the admin UI uses to decide
// between the "create first account" and "login" screens.
func (s *Server) UserStatus(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	count, err := s.Cols.Users.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Error("user status: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, transport.CodeInternal, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, userStatusResponse{
		Success:   true,
		HasAdmin:  count > 0,
		UserCount: count,
	})
}

func (s *Server) hasValidSession(r *http.Request) bool {
	if s.JWT == nil {
		return false
	}
	cookie, err := r.Cookie(middleware.SessionCookie)
	if err != nil || cookie.Value == "" {
		return false
	}
	_, err = s.JWT.Parse(cookie.Value)
	return err == nil
}
