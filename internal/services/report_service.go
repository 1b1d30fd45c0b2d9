package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"collections-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReportService exports the current dashboard view as a printable
// collections worksheet for field staff.
type ReportService struct {
	Dashboard *DashboardService
}

func NewReportService(dashboard *DashboardService) *ReportService {
	return &ReportService{Dashboard: dashboard}
}

// GeneratePDF renders the visible customer list, under the same
// filters the dashboard applies, as a PDF table.
func (s *ReportService) GeneratePDF(ctx context.Context, productFilter int, city, search string) ([]byte, error) {
	entries, err := s.Dashboard.VisibleCustomers(ctx, productFilter, city, search)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "") // Landscape for more columns
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(277, 10, "Blocked Customers - Collections Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(277, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.CellFormat(277, 6, fmt.Sprintf("Customers: %d", len(entries)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(20, 7, "ID", "1", 0, "C", true, 0, "")
	pdf.CellFormat(70, 7, "Name", "1", 0, "C", true, 0, "")
	pdf.CellFormat(28, 7, "Status", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "City", "1", 0, "C", true, 0, "")
	pdf.CellFormat(38, 7, "Phone", "1", 0, "C", true, 0, "")
	pdf.CellFormat(51, 7, "Street", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Amount Due", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, entry := range entries {
		c := entry.Customer
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", c.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 6, c.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(28, 6, c.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, c.City, "1", 0, "L", false, 0, "")
		pdf.CellFormat(38, 6, c.Phone, "1", 0, "L", false, 0, "")
		pdf.CellFormat(51, 6, c.Street1, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, entry.Deposit, "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateCSV renders the same view as CSV.
func (s *ReportService) GenerateCSV(ctx context.Context, productFilter int, city, search string) ([]byte, error) {
	entries, err := s.Dashboard.VisibleCustomers(ctx, productFilter, city, search)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"id", "name", "status", "city", "phone", "street", "amount_due"})
	for _, entry := range entries {
		c := entry.Customer
		w.Write([]string{
			fmt.Sprintf("%d", c.ID), c.Name, c.Status, c.City, c.Phone, c.Street1, entry.Deposit,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	return buf.Bytes(), nil
}
