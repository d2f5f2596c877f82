package certificates

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pubudubandara/portfolio-new/internal/cache"
	"github.com/pubudubandara/portfolio-new/internal/httpx"
	"github.com/pubudubandara/portfolio-new/internal/middleware"
	"github.com/pubudubandara/portfolio-new/internal/transport"
	"github.com/pubudubandara/portfolio-new/internal/validation"
)

const listCacheKey = "certificates:all"

type Handler struct {
	service  *Service
	val      *validation.Validator
	cache    cache.Cache
	cacheTTL time.Duration
	log      *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, c cache.Cache, cacheTTL time.Duration, log *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		val:      val,
		cache:    c,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	if cached, ok, err := h.cache.Get(r.Context(), listCacheKey); err == nil && ok {
		log.Info("certificates list: cache hit")
		transport.WriteCached(w, http.StatusOK, cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("certificates list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, transport.CodeInternal, "database error", nil)
		return
	}

	response := transport.DataResponse{Success: true, Data: items}
	if payload, err := json.Marshal(response); err == nil {
		_ = h.cache.Set(r.Context(), listCacheKey, payload, h.cacheTTL)
	}

	log.Info("certificates list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("certificates create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, transport.CodeBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("certificates create: validation error")
		transport.WriteError(w, http.StatusBadRequest, transport.CodeValidation, "fields required", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("certificates create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, transport.CodeInternal, "database error", nil)
		return
	}

	_ = h.cache.Delete(r.Context(), listCacheKey)
	log.Info("certificates create: ok", slog.String("certificate_id", item.ID))
	transport.WriteData(w, http.StatusCreated, item)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req UpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("certificates update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, transport.CodeBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("certificates update: validation error")
		transport.WriteError(w, http.StatusBadRequest, transport.CodeValidation, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("certificates update: not found", slog.String("certificate_id", req.ID))
			transport.WriteError(w, http.StatusNotFound, transport.CodeNotFound, "certificate not found", nil)
			return
		}
		log.Error("certificates update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, transport.CodeInternal, "database error", nil)
		return
	}

	_ = h.cache.Delete(r.Context(), listCacheKey)
	log.Info("certificates update: ok", slog.String("certificate_id", item.ID))
	transport.WriteData(w, http.StatusOK, item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		log.Warn("certificates delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, transport.CodeBadRequest, "ID is required", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("certificates delete: not found", slog.String("certificate_id", id))
			transport.WriteError(w, http.StatusNotFound, transport.CodeNotFound, "certificate not found", nil)
			return
		}
		log.Error("certificates delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, transport.CodeInternal, "database error", nil)
		return
	}

	_ = h.cache.Delete(r.Context(), listCacheKey)
	log.Info("certificates delete: ok", slog.String("certificate_id", id))
	transport.WriteMessage(w, http.StatusOK, "Certificate deleted successfully")
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
