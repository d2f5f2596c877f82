package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/pubudubandara/portfolio-new/internal/media"
	"github.com/pubudubandara/portfolio-new/internal/transport"
)

type uploadResult struct {
	ImageURL string `json:"imageUrl"`
	ImageID  string `json:"cloudinaryId"`
}

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

func (s *Server) UploadSkillImage(w http.ResponseWriter, r *http.Request) {
	s.handleUpload(w, r, "skill", "portfolio/skills")
}

func (s *Server) UploadProjectImage(w http.ResponseWriter, r *http.Request) {
	s.handleUpload(w, r, "project", "portfolio/projects")
}

func (s *Server) UploadCertificateImage(w http.ResponseWriter, r *http.Request) {
	s.handleUpload(w, r, "certificate", "portfolio/certificates")
}

// handleUpload applies the uniform upload contract on every route: session
// gate (at the router), declared image type, 10 MiB ceiling.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request, kind, folder string) {
	log := s.logWithRequest(r)
	if s.Media == nil {
		log.Warn("upload: media store not configured", slog.String("kind", kind))
		transport.WriteError(w, http.StatusServiceUnavailable, transport.CodeInternal, "media store not configured", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, media.MaxUploadBytes+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Warn("upload: no file provided", slog.String("kind", kind))
		transport.WriteError(w, http.StatusBadRequest, transport.CodeBadRequest, "No file provided", nil)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if err := media.ValidateImage(contentType, header.Size); err != nil {
		log.Warn("upload: rejected",
			slog.String("kind", kind),
			slog.String("content_type", contentType),
			slog.Int64("size", header.Size),
		)
		transport.WriteError(w, http.StatusBadRequest, transport.CodeValidation, err.Error(), nil)
		return
	}

	objectName := fmt.Sprintf("%s/%s_%d_%s",
		folder,
		kind,
		time.Now().UnixMilli(),
		filenameSanitizer.ReplaceAllString(header.Filename, ""),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	asset, err := s.Media.Upload(ctx, file, header.Size, objectName, contentType)
	if err != nil {
		log.Error("upload: store error", slog.String("kind", kind), slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, transport.CodeInternal, "upload failed", nil)
		return
	}

	log.Info("upload: ok", slog.String("kind", kind), slog.String("image_id", asset.ID))
	transport.WriteData(w, http.StatusOK, uploadResult{
		ImageURL: asset.URL,
		ImageID:  asset.ID,
	})
}
