package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"tourdesk/models"
)

var tourListHeader = []string{
	"Tour ID",
	"Title",
	"Code",
	"Status",
	"Destination",
	"Days",
	"Nights",
	"Price",
	"Per Person",
	"Special Offer",
	"Updated",
}

// TourList writes the account's tours as a spreadsheet to w.
func TourList(w io.Writer, tours []models.Tour) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Tours"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for col, h := range tourListHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for i, t := range tours {
		row := []any{
			t.TourID,
			t.Title,
			t.Code,
			t.TourStatus,
			t.Destination,
			int(t.Dates.Days),
			int(t.Dates.Nights),
			float64(t.Pricing.Price),
			bool(t.Pricing.PerPerson),
			bool(t.IsSpecialOffer),
			t.UpdatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 36); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}
