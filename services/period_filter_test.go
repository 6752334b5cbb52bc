package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewReportFilterDefaultsToCurrentMonth(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	f := NewReportFilter(now)

	assert.Equal(t, GranularityMonthly, f.Granularity)
	assert.Equal(t, "2024-03", f.Month)
	assert.Equal(t, "2024", f.Year)
	assert.Empty(t, f.Day)
}

func TestSetDayForcesMonthlyAndSnapsSelectors(t *testing.T) {
	f := ReportFilter{Granularity: GranularityYearly, Month: "2023-01", Year: "2023"}

	f.SetDay("2024-03-10")

	assert.Equal(t, GranularityMonthly, f.Granularity)
	assert.Equal(t, "2024-03-10", f.Day)
	assert.Equal(t, "2024-03", f.Month)
	assert.Equal(t, "2024", f.Year)
}

func TestClearDayKeepsMonth(t *testing.T) {
	f := ReportFilter{Granularity: GranularityMonthly, Month: "2024-03", Year: "2024"}
	f.SetDay("2024-03-10")
	f.ClearDay()

	assert.Empty(t, f.Day)
	assert.Equal(t, "2024-03", f.Month)
	assert.Equal(t, GranularityMonthly, f.Granularity)
}

func TestYearlyGranularityClearsDay(t *testing.T) {
	f := ReportFilter{Granularity: GranularityMonthly, Month: "2024-03", Year: "2024"}
	f.SetDay("2024-03-10")
	f.SetGranularity(GranularityYearly)

	assert.Empty(t, f.Day, "no reachable state has both yearly granularity and a day")
	assert.Equal(t, GranularityYearly, f.Granularity)
}

func TestMonthOrYearChangeClearsDay(t *testing.T) {
	f := ReportFilter{Granularity: GranularityMonthly, Month: "2024-03", Year: "2024"}
	f.SetDay("2024-03-10")
	f.SetMonth("2024-04")
	assert.Empty(t, f.Day)

	f.SetDay("2024-04-02")
	f.SetYear("2023")
	assert.Empty(t, f.Day)
}

func TestInvalidSelectorsAreIgnored(t *testing.T) {
	f := ReportFilter{Granularity: GranularityMonthly, Month: "2024-03", Year: "2024"}

	f.SetMonth("march")
	f.SetYear("24")
	f.SetDay("10/03/2024")
	f.SetGranularity("weekly")

	assert.Equal(t, "2024-03", f.Month)
	assert.Equal(t, "2024", f.Year)
	assert.Empty(t, f.Day)
	assert.Equal(t, GranularityMonthly, f.Granularity)
}

func TestPeriodPrefix(t *testing.T) {
	monthly := ReportFilter{Granularity: GranularityMonthly, Month: "2024-03", Year: "2024"}
	assert.Equal(t, "2024-03", monthly.PeriodPrefix())

	yearly := ReportFilter{Granularity: GranularityYearly, Month: "2024-03", Year: "2024"}
	assert.Equal(t, "2024", yearly.PeriodPrefix())

	// day selection never changes the whole-period prefix
	monthly.SetDay("2024-03-10")
	assert.Equal(t, "2024-03", monthly.PeriodPrefix())

	broken := ReportFilter{Granularity: GranularityYearly, Year: "20x4"}
	assert.Empty(t, broken.PeriodPrefix())
}

func TestMatchesPrefixAndDay(t *testing.T) {
	assert.True(t, MatchesPrefix("2024-03-10", "2024-03"))
	assert.True(t, MatchesPrefix("2024-03-10", "2024"))
	assert.False(t, MatchesPrefix("2024-04-01", "2024-03"))

	// an empty prefix matches nothing, not everything
	assert.False(t, MatchesPrefix("2024-03-10", ""))

	// malformed dates silently fail to match
	assert.False(t, MatchesPrefix("10/03/2024", "2024-03"))

	assert.True(t, MatchesDay("2024-03-10", "2024-03-10"))
	assert.False(t, MatchesDay("2024-03-11", "2024-03-10"))
	assert.False(t, MatchesDay("2024-03-10", ""))
}

func TestMatchesTableHonorsDayOverride(t *testing.T) {
	f := ReportFilter{Granularity: GranularityMonthly, Month: "2024-03", Year: "2024"}

	assert.True(t, f.MatchesTable("2024-03-05"))
	assert.True(t, f.MatchesTable("2024-03-10"))

	f.SetDay("2024-03-10")
	assert.False(t, f.MatchesTable("2024-03-05"))
	assert.True(t, f.MatchesTable("2024-03-10"))
}
