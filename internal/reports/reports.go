package reports

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"bakeshop/internal/models"
)

// Range selects the reporting window granularity
type Range string

const (
	RangeAll     Range = "all"
	RangeWeekly  Range = "weekly"
	RangeMonthly Range = "monthly"
	RangeYearly  Range = "yearly"
)

// Window is a closed date interval; a nil Window means no date filter
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow computes the reporting interval containing the anchor date.
// Weekly windows start on Sunday and span seven days, monthly and
// yearly windows cover the calendar month and year. RangeAll (or an
// unknown range) returns nil, meaning every receipt qualifies.
func NewWindow(r Range, anchor time.Time) *Window {
	var start, end time.Time

	switch r {
	case RangeWeekly:
		start = anchor.AddDate(0, 0, -int(anchor.Weekday()))
		end = start.AddDate(0, 0, 6)
	case RangeMonthly:
		start = time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		end = start.AddDate(0, 1, -1)
	case RangeYearly:
		start = time.Date(anchor.Year(), 1, 1, 0, 0, 0, 0, anchor.Location())
		end = time.Date(anchor.Year(), 12, 31, 0, 0, 0, 0, anchor.Location())
	default:
		return nil
	}

	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location())
	return &Window{Start: start, End: end}
}

// Contains reports whether a receipt date falls inside the window
func (w *Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Report is a filtered view over receipts with the summed amount
type Report struct {
	Receipts []models.Receipt `json:"receipts"`
	Total    float64          `json:"total"`
}

// Filter selects receipts by vendor (empty string means all vendors)
// and optional window, summing their amounts. Receipts with dates or
// amounts that fail to parse are kept or skipped the forgiving way:
// an unparseable date only matters when a window is set, and an
// unparseable amount contributes zero to the total.
func Filter(receipts []models.Receipt, vendor string, w *Window) Report {
	report := Report{Receipts: []models.Receipt{}}

	for _, r := range receipts {
		if vendor != "" && r.Vendor != vendor {
			continue
		}
		if w != nil {
			date, err := time.Parse("2006-01-02", strings.TrimSpace(r.Date))
			if err != nil || !w.Contains(date) {
				continue
			}
		}
		report.Receipts = append(report.Receipts, r)
		if amount, err := strconv.ParseFloat(strings.TrimSpace(r.Amount), 64); err == nil {
			report.Total += amount
		}
	}

	return report
}

// Vendors returns the sorted distinct vendor names across receipts,
// for populating the report filter dropdown.
func Vendors(receipts []models.Receipt) []string {
	seen := make(map[string]struct{})
	var vendors []string
	for _, r := range receipts {
		if r.Vendor == "" {
			continue
		}
		if _, ok := seen[r.Vendor]; ok {
			continue
		}
		seen[r.Vendor] = struct{}{}
		vendors = append(vendors, r.Vendor)
	}
	sort.Strings(vendors)
	return vendors
}
