// Package brochure exports the pricing tiers as a one-page PDF.
package brochure

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/carebook/internal/models"
	"github.com/go-pdf/fpdf"
)

// Write renders site's pricing to dir/filename and returns the absolute path.
func Write(site models.Site, dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create brochure dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(site.Brand+" pricing", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, tr(site.Brand))
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 7, tr(site.Tagline), "", "", false)
	pdf.Ln(6)

	for _, tier := range site.Tiers {
		pdf.SetFont("Arial", "B", 14)
		header := tier.Name + "  " + PriceLabel(tier)
		if tier.Highlighted {
			header += "  (most popular)"
		}
		pdf.Cell(0, 10, tr(header))
		pdf.Ln(8)

		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(0, 7, tr(tier.Tagline))
		pdf.Ln(7)

		pdf.SetFont("Arial", "", 11)
		for _, f := range tier.Features {
			pdf.Cell(0, 6, tr("  - "+f))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(0, 5, tr(site.Legal), "", "", false)

	path := filepath.Join(dir, filename)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write brochure: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// PriceLabel formats a tier's monthly price for display.
func PriceLabel(t models.Tier) string {
	if t.PriceMonthly <= 0 {
		return "Contact sales"
	}
	return fmt.Sprintf("$%d/mo", t.PriceMonthly)
}

// FeatureLine joins a tier's features for a single-line summary.
func FeatureLine(t models.Tier) string {
	return strings.Join(t.Features, " · ")
}
