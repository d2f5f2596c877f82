package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/pubudubandara/portfolio-new/internal/media"
	"github.com/pubudubandara/portfolio-new/internal/validation"
)

type fakeMedia struct {
	uploads []string
}

func (f *fakeMedia) Upload(ctx context.Context, r io.Reader, size int64, objectName, contentType string) (media.Asset, error) {
	f.uploads = append(f.uploads, objectName)
	return media.Asset{URL: "https://cdn.example.com/" + objectName, ID: objectName}, nil
}

func multipartImage(t *testing.T, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func newUploadServer(store MediaStore) *Server {
	return &Server{
		Val:   validation.New(),
		Log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Media: store,
	}
}

func TestUploadSkillImage(t *testing.T) {
	store := &fakeMedia{}
	s := newUploadServer(store)

	body, contentType := multipartImage(t, "react logo.png", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload-skill-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	s.UploadSkillImage(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ImageURL string `json:"imageUrl"`
			ImageID  string `json:"cloudinaryId"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Data.ImageURL == "" || resp.Data.ImageID == "" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if !strings.HasPrefix(resp.Data.ImageID, "portfolio/skills/skill_") {
		t.Fatalf("object key not namespaced: %q", resp.Data.ImageID)
	}
	if strings.Contains(resp.Data.ImageID, " ") {
		t.Fatalf("filename not sanitized: %q", resp.Data.ImageID)
	}
}

func TestUploadRejectsNonImage(t *testing.T) {
	store := &fakeMedia{}
	s := newUploadServer(store)

	body, contentType := multipartImage(t, "cv.pdf", "application/pdf", []byte("%PDF"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload-project-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	s.UploadProjectImage(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-image, got %d", rec.Code)
	}
	if len(store.uploads) != 0 {
		t.Fatal("rejected file must not reach the store")
	}
}

func TestUploadMissingFile(t *testing.T) {
	s := newUploadServer(&fakeMedia{})

	req := httptest.NewRequest(http.MethodPost, "/api/upload-certificate-image", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	rec := httptest.NewRecorder()

	s.UploadCertificateImage(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing file, got %d", rec.Code)
	}
}
