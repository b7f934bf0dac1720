// Package export renders tour records into shareable artifacts: a PDF fact
// sheet for a single tour and an XLSX listing for a whole account.
package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"tourdesk/models"
)

// FactSheet writes a one-tour PDF summary to w. publicBaseURL is the
// customer-facing site; the QR in the corner points at the tour page there.
func FactSheet(w io.Writer, t *models.Tour, publicBaseURL string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	pdf.SetFillColor(245, 245, 255)

	// Title
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, t.Title, "", 1, "L", false, 0, "")
	if t.Code != "" {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 6, "Code: "+t.Code, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	// QR to the public tour page
	if publicBaseURL != "" {
		url := strings.TrimRight(publicBaseURL, "/") + "/tours/" + t.TourID
		if png, err := qrcode.Encode(url, qrcode.Medium, 128); err == nil {
			imgOpts := gofpdf.ImageOptions{ImageType: "png"}
			pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(png))
			pdf.ImageOptions("qr", 155, 20, 35, 35, false, imgOpts, 0, "")
		}
	}

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(125, 6, fmt.Sprintf(
		"Status: %s\nDestination: %s\nDuration: %s\nUpdated: %s",
		t.TourStatus,
		t.Destination,
		durationLine(t.Dates),
		t.UpdatedAt.Format("02 Jan 2006"),
	), "", "L", false)
	pdf.Ln(4)

	if t.Excerpt != "" {
		pdf.SetFont("Arial", "I", 11)
		pdf.MultiCell(0, 6, t.Excerpt, "", "L", false)
		pdf.Ln(4)
	}

	writePricingTable(pdf, t.Pricing)
	writeItinerary(pdf, t.Itinerary)
	writeFacts(pdf, t.Facts)

	// Footer
	pdf.SetY(-25)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 10, "Generated "+time.Now().Format("02 Jan 2006 15:04"), "T", 0, "C", false, 0, "")

	return pdf.Output(w)
}

func durationLine(d models.TourDates) string {
	days, nights := int(d.Days), int(d.Nights)
	if days == 0 && nights == 0 {
		return "flexible"
	}
	return fmt.Sprintf("%d days / %d nights", days, nights)
}

func writePricingTable(pdf *gofpdf.Fpdf, p models.Pricing) {
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 10, "Pricing", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)

	unit := "per group"
	if bool(p.PerPerson) {
		unit = "per person"
	}
	base := fmt.Sprintf("Base price: %.2f (%s), %d-%d pax", float64(p.Price), unit, p.PaxRange.Min(), p.PaxRange.Max())
	pdf.CellFormat(0, 7, base, "", 1, "L", false, 0, "")

	if bool(p.Discount.Enabled) {
		line := "Discount: "
		if pct := float64(p.Discount.Percent); pct > 0 {
			line += fmt.Sprintf("%.0f%% off", pct)
		} else {
			line += fmt.Sprintf("%.2f off", float64(p.Discount.Price))
		}
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}

	if bool(p.PricingOptions.Enabled) && len(p.PricingOptions.Options) > 0 {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(60, 7, "Option", "1", 0, "L", true, 0, "")
		pdf.CellFormat(35, 7, "Category", "1", 0, "L", true, 0, "")
		pdf.CellFormat(30, 7, "Price", "1", 0, "R", true, 0, "")
		pdf.CellFormat(30, 7, "Pax", "1", 1, "C", true, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, o := range p.PricingOptions.Options {
			cat := string(o.Category)
			if o.Category == models.PricingCustom && o.CustomCategory != "" {
				cat = o.CustomCategory
			}
			pdf.CellFormat(60, 7, o.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(35, 7, cat, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", float64(o.Price)), "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, 7, fmt.Sprintf("%d-%d", o.PaxRange.Min(), o.PaxRange.Max()), "1", 1, "C", false, 0, "")
		}
	}
	pdf.Ln(4)
}

func writeItinerary(pdf *gofpdf.Fpdf, days []models.ItineraryDay) {
	if len(days) == 0 {
		return
	}
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 10, "Itinerary", "", 1, "L", false, 0, "")
	for _, d := range days {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, fmt.Sprintf("%s: %s", d.Day, d.Title), "", 1, "L", false, 0, "")
		if d.Description != "" {
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, stripTags(d.Description), "", "L", false)
		}
	}
	pdf.Ln(4)
}

func writeFacts(pdf *gofpdf.Fpdf, facts []models.Fact) {
	if len(facts) == 0 {
		return
	}
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 10, "Facts", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, f := range facts {
		pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", f.Title, factLine(f.Value)), "", 1, "L", false, 0, "")
	}
}

func factLine(v models.FactValue) string {
	if v.IsMultiSelect() {
		labels := make([]string, 0, len(v.Options))
		for _, o := range v.Options {
			labels = append(labels, o.Label)
		}
		return strings.Join(labels, ", ")
	}
	return strings.Join(v.Texts, ", ")
}

// stripTags flattens the rich-text description fields for plain PDF output.
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
