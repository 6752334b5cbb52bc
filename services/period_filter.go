package services

import (
	"regexp"
	"strings"
	"time"
)

type Granularity string

const (
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
)

var (
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
	monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
	dayPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ReportFilter is the single source of truth for the report's time window.
// Month/Year select the whole period used by summary cards; Day is an
// optional drill-down that narrows itemized tables only. Mutate it through
// the Set*/ClearDay methods so the states stay the ones the dashboard can
// actually reach — there is no "yearly with a day selected" state.
type ReportFilter struct {
	Granularity Granularity `json:"granularity"`
	Month       string      `json:"month"` // YYYY-MM
	Year        string      `json:"year"`  // YYYY
	Day         string      `json:"day"`   // YYYY-MM-DD, empty = whole period
}

// NewReportFilter starts at the current month.
func NewReportFilter(now time.Time) ReportFilter {
	return ReportFilter{
		Granularity: GranularityMonthly,
		Month:       now.Format("2006-01"),
		Year:        now.Format("2006"),
	}
}

func (f *ReportFilter) SetGranularity(g Granularity) {
	if g != GranularityMonthly && g != GranularityYearly {
		return
	}
	f.Granularity = g
	// day drill-down only makes sense inside a month
	if g == GranularityYearly {
		f.Day = ""
	}
}

func (f *ReportFilter) SetMonth(month string) {
	if !monthPattern.MatchString(month) {
		return
	}
	f.Month = month
	f.Day = ""
}

func (f *ReportFilter) SetYear(year string) {
	if !yearPattern.MatchString(year) {
		return
	}
	f.Year = year
	f.Day = ""
}

// SetDay drills down to one date. It forces monthly granularity and snaps
// the month/year selectors to the day's month, so the summary cards for the
// containing month stay visible next to the day-filtered tables.
func (f *ReportFilter) SetDay(day string) {
	if !dayPattern.MatchString(day) {
		return
	}
	f.Granularity = GranularityMonthly
	f.Day = day
	f.Month = day[:7]
	f.Year = day[:4]
}

// ClearDay returns to the whole-period view without touching the chosen
// month or year.
func (f *ReportFilter) ClearDay() {
	f.Day = ""
}

// PeriodPrefix is the date prefix selecting the whole period: the 4-digit
// year when yearly, else the YYYY-MM month. A malformed selector yields ""
// which matches nothing, so bad input degrades to an empty report instead of
// an unfiltered one.
func (f ReportFilter) PeriodPrefix() string {
	if f.Granularity == GranularityYearly {
		if yearPattern.MatchString(f.Year) {
			return f.Year
		}
		return ""
	}
	if monthPattern.MatchString(f.Month) {
		return f.Month
	}
	return ""
}

// MatchesPrefix reports whether dateStr falls in the period named by prefix.
// Plain string comparison: a non-conforming date simply never matches.
func MatchesPrefix(dateStr, prefix string) bool {
	return prefix != "" && strings.HasPrefix(dateStr, prefix)
}

// MatchesDay is the exact-match filter used by drill-down tables.
func MatchesDay(dateStr, day string) bool {
	return day != "" && dateStr == day
}

// MatchesTable applies the table-row filter: the exact day when one is
// selected, otherwise the whole period. Summary aggregation never uses this —
// the day override narrows tables only.
func (f ReportFilter) MatchesTable(dateStr string) bool {
	if f.Day != "" {
		return MatchesDay(dateStr, f.Day)
	}
	return MatchesPrefix(dateStr, f.PeriodPrefix())
}
