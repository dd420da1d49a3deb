package reports

import (
	"testing"
	"time"

	"bakeshop/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewWindowWeekly(t *testing.T) {
	// 2026-08-26 is a Wednesday; the week runs Sunday 23rd through
	// Saturday 29th.
	w := NewWindow(RangeWeekly, date("2026-08-26"))
	if w == nil {
		t.Fatal("NewWindow returned nil for weekly range")
	}
	if w.Start.Format("2006-01-02") != "2026-08-23" {
		t.Errorf("start = %v, want 2026-08-23", w.Start)
	}
	if w.End.Format("2006-01-02") != "2026-08-29" {
		t.Errorf("end = %v, want 2026-08-29", w.End)
	}

	if !w.Contains(date("2026-08-23")) || !w.Contains(date("2026-08-29")) {
		t.Error("window boundaries should be inclusive")
	}
	if w.Contains(date("2026-08-30")) {
		t.Error("next Sunday should be outside the window")
	}
}

func TestNewWindowMonthly(t *testing.T) {
	w := NewWindow(RangeMonthly, date("2026-02-14"))
	if w.Start.Format("2006-01-02") != "2026-02-01" {
		t.Errorf("start = %v, want 2026-02-01", w.Start)
	}
	if w.End.Format("2006-01-02") != "2026-02-28" {
		t.Errorf("end = %v, want 2026-02-28", w.End)
	}
}

func TestNewWindowYearly(t *testing.T) {
	w := NewWindow(RangeYearly, date("2026-06-15"))
	if w.Start.Format("2006-01-02") != "2026-01-01" || w.End.Format("2006-01-02") != "2026-12-31" {
		t.Errorf("window = %v..%v, want full year", w.Start, w.End)
	}
}

func TestNewWindowAll(t *testing.T) {
	if w := NewWindow(RangeAll, date("2026-06-15")); w != nil {
		t.Errorf("RangeAll window = %v, want nil", w)
	}
	if w := NewWindow(Range("bogus"), date("2026-06-15")); w != nil {
		t.Errorf("unknown range window = %v, want nil", w)
	}
}

func TestFilter(t *testing.T) {
	receipts := []models.Receipt{
		{Vendor: "Mill Co", Amount: "12.50", Date: "2026-08-24"},
		{Vendor: "Mill Co", Amount: "7.25", Date: "2026-07-01"},
		{Vendor: "Dairy Barn", Amount: "3.00", Date: "2026-08-25"},
		{Vendor: "Mill Co", Amount: "not a number", Date: "2026-08-25"},
	}

	report := Filter(receipts, "Mill Co", NewWindow(RangeWeekly, date("2026-08-26")))
	if len(report.Receipts) != 2 {
		t.Fatalf("receipts = %d, want 2", len(report.Receipts))
	}
	// The unparseable amount is kept in the listing but adds nothing.
	if report.Total != 12.50 {
		t.Errorf("total = %v, want 12.50", report.Total)
	}
}

func TestFilterAllVendorsNoWindow(t *testing.T) {
	receipts := []models.Receipt{
		{Vendor: "Mill Co", Amount: "10", Date: "2026-08-24"},
		{Vendor: "Dairy Barn", Amount: "5", Date: "bad date"},
	}

	report := Filter(receipts, "", nil)
	if len(report.Receipts) != 2 {
		t.Errorf("receipts = %d, want 2 (no window means no date filter)", len(report.Receipts))
	}
	if report.Total != 15 {
		t.Errorf("total = %v, want 15", report.Total)
	}
}

func TestVendors(t *testing.T) {
	vendors := Vendors([]models.Receipt{
		{Vendor: "Mill Co"},
		{Vendor: "Dairy Barn"},
		{Vendor: "Mill Co"},
		{Vendor: ""},
	})

	if len(vendors) != 2 || vendors[0] != "Dairy Barn" || vendors[1] != "Mill Co" {
		t.Errorf("Vendors = %v, want [Dairy Barn Mill Co]", vendors)
	}
}
