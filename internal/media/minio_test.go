package media

import (
	"errors"
	"testing"
)

func TestValidateImage(t *testing.T) {
	if err := ValidateImage("image/png", 1024); err != nil {
		t.Fatalf("png under the ceiling should pass: %v", err)
	}
	if err := ValidateImage("image/jpeg", MaxUploadBytes); err != nil {
		t.Fatalf("exactly at the ceiling should pass: %v", err)
	}
	if err := ValidateImage("application/pdf", 1024); !errors.Is(err, ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
	if err := ValidateImage("image/png", MaxUploadBytes+1); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}
