package brochure

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/carebook/internal/models"
)

func TestWriteCreatesPDF(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	path, err := Write(models.DefaultSite(), dir, "pricing.pdf")
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected a PDF header")
	}
	if !filepath.IsAbs(path) {
		t.Fatalf("expected absolute path, got %q", path)
	}
}

func TestPriceLabel(t *testing.T) {
	if got := PriceLabel(models.Tier{PriceMonthly: 49}); got != "$49/mo" {
		t.Fatalf("PriceLabel = %q", got)
	}
	if got := PriceLabel(models.Tier{}); got != "Contact sales" {
		t.Fatalf("PriceLabel = %q", got)
	}
}
