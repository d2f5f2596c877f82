package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pubudubandara/portfolio-new/internal/middleware"
	"github.com/pubudubandara/portfolio-new/internal/validation"
)

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) SendContactNotification(ctx context.Context, name, email, message string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)
	return "msg-1", nil
}

func newContactServer(mailer ContactMailer) *Server {
	return &Server{
		Val:            validation.New(),
		Log:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		Mailer:         mailer,
		ContactLimiter: middleware.NewRateLimiter(3, time.Hour),
	}
}

func postContact(s *Server, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.RemoteAddr = "9.9.9.9:1234"
	rec := httptest.NewRecorder()
	s.CreateContact(rec, req)
	return rec
}

func TestContactSubmission(t *testing.T) {
	mailer := &fakeMailer{}
	s := newContactServer(mailer)

	rec := postContact(s, `{"name":"Ada","email":"ada@example.com","message":"Hello there"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one mail, got %d", len(mailer.sent))
	}
}

func TestContactMissingFields(t *testing.T) {
	s := newContactServer(&fakeMailer{})

	rec := postContact(s, `{"name":"Ada","email":"ada@example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestContactInvalidEmail(t *testing.T) {
	s := newContactServer(&fakeMailer{})

	rec := postContact(s, `{"name":"Ada","email":"not-an-email","message":"hi"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestContactFieldLengthCaps(t *testing.T) {
	s := newContactServer(&fakeMailer{})

	long := strings.Repeat("a", 101)
	rec := postContact(s, `{"name":"`+long+`","email":"ada@example.com","message":"hi"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for 101-char name, got %d", rec.Code)
	}
}

func TestContactSpamKeyword(t *testing.T) {
	mailer := &fakeMailer{}
	s := newContactServer(mailer)

	rec := postContact(s, `{"name":"Ada","email":"ada@example.com","message":"Great CASINO deals"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for spam, got %d", rec.Code)
	}
	if len(mailer.sent) != 0 {
		t.Fatal("spam must not reach the mailer")
	}
}

func TestContactRateLimit(t *testing.T) {
	mailer := &fakeMailer{}
	s := newContactServer(mailer)

	for i := 0; i < 3; i++ {
		rec := postContact(s, `{"name":"Ada","email":"ada@example.com","message":"Hello"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("submission %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	rec := postContact(s, `{"name":"Ada","email":"ada@example.com","message":"Hello"}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("4th submission: expected 429, got %d", rec.Code)
	}
	if len(mailer.sent) != 3 {
		t.Fatalf("expected 3 mails, got %d", len(mailer.sent))
	}
}

func TestContactRejectedSubmissionsKeepBudget(t *testing.T) {
	mailer := &fakeMailer{}
	s := newContactServer(mailer)

	// Validation failures must not consume the hourly budget.
	for i := 0; i < 5; i++ {
		postContact(s, `{"name":"Ada"}`)
	}

	rec := postContact(s, `{"name":"Ada","email":"ada@example.com","message":"Hello"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after invalid attempts, got %d", rec.Code)
	}
}

func TestContactMailFailure(t *testing.T) {
	s := newContactServer(&fakeMailer{err: errors.New("smtp down")})

	rec := postContact(s, `{"name":"Ada","email":"ada@example.com","message":"Hello"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	// The failed attempt was not accepted, so the budget is untouched.
	s.Mailer = &fakeMailer{}
	rec = postContact(s, `{"name":"Ada","email":"ada@example.com","message":"Hello"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after transport recovery, got %d", rec.Code)
	}
}
