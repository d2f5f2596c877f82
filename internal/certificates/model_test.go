package certificates

import (
	"testing"

	"github.com/pubudubandara/portfolio-new/internal/validation"
)

func TestCertificateDateFormat(t *testing.T) {
	val := validation.New()

	base := CreateRequest{
		Name:         "AWS Certified",
		Organization: "Amazon",
		ImageURL:     "https://x/c.png",
		ImageID:      "cert1",
	}

	accepted := []string{"03/2024", "12/1999", "01/2000", "10/2025"}
	for _, date := range accepted {
		req := base
		req.Date = date
		if err := val.Struct(req); err != nil {
			t.Fatalf("date %q should be accepted: %v", date, err)
		}
	}

	rejected := []string{"13/2024", "3/2024", "03/99", "03-2024", "00/2024", "", "2024/03"}
	for _, date := range rejected {
		req := base
		req.Date = date
		if err := val.Struct(req); err == nil {
			t.Fatalf("date %q should be rejected", date)
		}
	}
}

func TestCreateRequestRequiredFields(t *testing.T) {
	val := validation.New()

	if err := val.Struct(CreateRequest{Date: "03/2024"}); err == nil {
		t.Fatal("missing required fields should fail validation")
	}
}
