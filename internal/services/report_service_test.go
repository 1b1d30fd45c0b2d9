package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
)

func TestGenerateCSV(t *testing.T) {
	dashboard := NewDashboardService(newPortal(t, dashboardFixture(false)))
	svc := NewReportService(dashboard)

	out, err := svc.GenerateCSV(context.Background(), ProductAll, "", "")
	if err != nil {
		t.Fatalf("GenerateCSV: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 customers", len(rows))
	}
	if rows[0][0] != "id" || rows[0][6] != "amount_due" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "Alice" || rows[1][6] != "350.00" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[2][1] != "Bob" || rows[2][6] != "N/A" {
		t.Errorf("row 2 = %v", rows[2])
	}
}

func TestGeneratePDF(t *testing.T) {
	dashboard := NewDashboardService(newPortal(t, dashboardFixture(false)))
	svc := NewReportService(dashboard)

	out, err := svc.GeneratePDF(context.Background(), ProductAll, "", "")
	if err != nil {
		t.Fatalf("GeneratePDF: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}
}

func TestReportsPropagateUpstreamFailure(t *testing.T) {
	dashboard := NewDashboardService(newPortal(t, dashboardFixture(true)))
	svc := NewReportService(dashboard)

	if _, err := svc.GenerateCSV(context.Background(), ProductAll, "", ""); err == nil {
		t.Error("CSV succeeded despite upstream failure")
	}
	if _, err := svc.GeneratePDF(context.Background(), ProductAll, "", ""); err == nil {
		t.Error("PDF succeeded despite upstream failure")
	}
}
