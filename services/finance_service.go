package services

import (
	"fmt"
	"sort"
	"time"

	"hostel-backend/models"

	"gorm.io/gorm"
)

// ReportInputs is everything the aggregation engine reads: already-fetched,
// unordered collections. The engine never mutates them and keeps no state
// between calls, so it is safe to recompute on every filter change.
type ReportInputs struct {
	Bookings              []models.Booking
	ExternalSales         []models.ExternalSale
	PlatformPayments      []models.PlatformPayment
	UtilityRecords        []models.UtilityRecord
	SalaryAdvances        []models.SalaryAdvance
	Absences              []models.Absence
	WalkInGuests          []models.WalkInGuest
	AccommodationBookings []models.AccommodationBooking
	Staff                 []models.Staff
	SpeedBoatTrips        []models.SpeedBoatTrip
}

// StaffPerformanceRow is one line of the per-staff breakdown.
type StaffPerformanceRow struct {
	StaffID         uint    `json:"staffId"`
	StaffName       string  `json:"staffName"`
	BookingsCount   int     `json:"bookingsCount"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalCommission float64 `json:"totalCommission"`
}

// FinancialReport is the whole-period read model behind the dashboard's
// summary cards and breakdowns. It always covers the full month or year of
// the filter; a drill-down day never changes these numbers.
type FinancialReport struct {
	TotalRevenue              float64 `json:"totalRevenue"`
	TotalAccommodationRevenue float64 `json:"totalAccommodationRevenue"`
	TotalExternalSales        float64 `json:"totalExternalSales"`
	TotalPlatformRevenue      float64 `json:"totalPlatformRevenue"`
	TotalActivityRevenue      float64 `json:"totalActivityRevenue"`
	TotalExtrasRevenue        float64 `json:"totalExtrasRevenue"`

	TotalExpenses            float64 `json:"totalExpenses"`
	TotalUtilitiesCost       float64 `json:"totalUtilitiesCost"`
	TotalItemCosts           float64 `json:"totalItemCosts"`
	TotalEmployeeCommissions float64 `json:"totalEmployeeCommissions"`

	// TotalMonthlySalaries is the gross payroll for the period (one month's
	// worth, or twelve for a yearly report) before absence deductions.
	TotalMonthlySalaries      float64 `json:"totalMonthlySalaries"`
	TotalAbsenceDeductions    float64 `json:"totalAbsenceDeductions"`
	TotalSalaryAdvances       float64 `json:"totalSalaryAdvances"`
	RemainingSalaries         float64 `json:"remainingSalaries"`
	RemainingExpensesToBePaid float64 `json:"remainingExpensesToBePaid"`

	NetProfit float64 `json:"netProfit"`

	StaffPerformance []StaffPerformanceRow `json:"staffPerformance"`
	CompanyDebts     map[string]float64    `json:"companyDebts"`
}

// FinancialTables are the itemized rows under the summary cards. Unlike the
// report they honor the drill-down day.
type FinancialTables struct {
	Bookings         []models.Booking         `json:"bookings"`
	ExternalSales    []models.ExternalSale    `json:"externalSales"`
	PlatformPayments []models.PlatformPayment `json:"platformPayments"`
}

func moneyOf(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// BuildFinancialReport folds the input collections into one consistent
// period report. Pure: same inputs and filter always give the same report.
func BuildFinancialReport(inputs ReportInputs, filter ReportFilter) FinancialReport {
	prefix := filter.PeriodPrefix()

	report := FinancialReport{
		CompanyDebts: map[string]float64{},
	}

	// ---------- revenue streams ----------
	var periodBookings []models.Booking
	for _, b := range inputs.Bookings {
		if !MatchesPrefix(b.BookingDate, prefix) {
			continue
		}
		periodBookings = append(periodBookings, b)

		report.TotalActivityRevenue += b.GuestTotal()
		if b.ItemType == models.ItemTypeExtra {
			report.TotalExtrasRevenue += b.GuestTotal()
		} else {
			report.TotalExtrasRevenue += b.ExtrasTotal
		}
	}
	for _, s := range inputs.ExternalSales {
		if MatchesPrefix(s.Date, prefix) {
			report.TotalExternalSales += s.Amount
		}
	}
	for _, p := range inputs.PlatformPayments {
		if MatchesPrefix(p.Date, prefix) {
			report.TotalPlatformRevenue += p.Amount
		}
	}
	// Accommodation revenue is cash actually collected, not the contracted
	// price: unpaid nights show up only once the money does.
	for _, w := range inputs.WalkInGuests {
		if MatchesPrefix(w.CheckInDate, prefix) {
			report.TotalAccommodationRevenue += w.AmountPaid
		}
	}
	for _, a := range inputs.AccommodationBookings {
		if MatchesPrefix(a.CheckInDate, prefix) {
			report.TotalAccommodationRevenue += a.AmountPaid
		}
	}

	report.TotalRevenue = report.TotalActivityRevenue +
		report.TotalExternalSales +
		report.TotalAccommodationRevenue +
		report.TotalPlatformRevenue

	// ---------- expense streams ----------
	for _, u := range inputs.UtilityRecords {
		if MatchesPrefix(u.Date, prefix) {
			report.TotalUtilitiesCost += u.Cost
		}
	}
	for _, b := range periodBookings {
		report.TotalItemCosts += moneyOf(b.ItemCost)
		report.TotalEmployeeCommissions += moneyOf(b.EmployeeCommission)
	}

	report.TotalMonthlySalaries = grossPayroll(inputs.Staff, filter.Granularity)
	report.TotalAbsenceDeductions = absenceDeduction(inputs.Staff, inputs.Absences, filter.Granularity, prefix)
	netSalaryExpense := report.TotalMonthlySalaries - report.TotalAbsenceDeductions

	report.TotalExpenses = report.TotalUtilitiesCost +
		report.TotalItemCosts +
		netSalaryExpense +
		report.TotalEmployeeCommissions

	for _, adv := range inputs.SalaryAdvances {
		if MatchesPrefix(adv.Date, prefix) {
			report.TotalSalaryAdvances += adv.Amount
		}
	}
	report.RemainingSalaries = netSalaryExpense - report.TotalSalaryAdvances
	report.RemainingExpensesToBePaid = report.TotalExpenses - report.TotalSalaryAdvances

	report.NetProfit = report.TotalRevenue - report.TotalExpenses

	report.StaffPerformance = staffPerformance(periodBookings, inputs.Staff)
	report.CompanyDebts = companyDebts(periodBookings, inputs.SpeedBoatTrips)

	return report
}

// BuildFinancialTables returns the itemized rows for the current filter,
// narrowed to the drill-down day when one is selected.
func BuildFinancialTables(inputs ReportInputs, filter ReportFilter) FinancialTables {
	tables := FinancialTables{
		Bookings:         []models.Booking{},
		ExternalSales:    []models.ExternalSale{},
		PlatformPayments: []models.PlatformPayment{},
	}
	for _, b := range inputs.Bookings {
		if filter.MatchesTable(b.BookingDate) {
			tables.Bookings = append(tables.Bookings, b)
		}
	}
	for _, s := range inputs.ExternalSales {
		if filter.MatchesTable(s.Date) {
			tables.ExternalSales = append(tables.ExternalSales, s)
		}
	}
	for _, p := range inputs.PlatformPayments {
		if filter.MatchesTable(p.Date) {
			tables.PlatformPayments = append(tables.PlatformPayments, p)
		}
	}
	return tables
}

// grossPayroll: each staff salary is one month's figure, so a yearly report
// carries twelve of them.
func grossPayroll(staff []models.Staff, g Granularity) float64 {
	var total float64
	for _, s := range staff {
		total += s.Salary
	}
	if g == GranularityYearly {
		total *= 12
	}
	return total
}

// absenceDeduction prices each missed day at salary/daysInMonth for the
// month the absence falls in. The yearly figure is the twelve monthly
// figures summed, NOT salary*12/365*count — February days cost more than
// January days.
func absenceDeduction(staff []models.Staff, absences []models.Absence, g Granularity, periodKey string) float64 {
	if periodKey == "" {
		return 0
	}
	if g == GranularityYearly {
		var total float64
		for m := 1; m <= 12; m++ {
			total += monthlyAbsenceDeduction(staff, absences, fmt.Sprintf("%s-%02d", periodKey, m))
		}
		return total
	}
	return monthlyAbsenceDeduction(staff, absences, periodKey)
}

func monthlyAbsenceDeduction(staff []models.Staff, absences []models.Absence, monthKey string) float64 {
	days := daysInMonth(monthKey)
	if days == 0 {
		return 0
	}

	counts := map[uint]int{}
	for _, a := range absences {
		if MatchesPrefix(a.Date, monthKey) {
			counts[a.StaffID]++
		}
	}

	var total float64
	for _, s := range staff {
		if n := counts[s.ID]; n > 0 {
			total += s.Salary / float64(days) * float64(n)
		}
	}
	return total
}

// daysInMonth is calendar-accurate (leap years included); 0 for a malformed
// month key.
func daysInMonth(monthKey string) int {
	t, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return 0
	}
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// staffPerformance builds one row per staff member — including those who
// sold nothing in the window — sorted by revenue, best seller first.
func staffPerformance(periodBookings []models.Booking, staff []models.Staff) []StaffPerformanceRow {
	rows := make([]StaffPerformanceRow, 0, len(staff))
	index := map[uint]int{}
	for _, s := range staff {
		index[s.ID] = len(rows)
		rows = append(rows, StaffPerformanceRow{StaffID: s.ID, StaffName: s.Name})
	}

	for _, b := range periodBookings {
		if b.StaffID == nil {
			continue
		}
		i, ok := index[*b.StaffID]
		if !ok {
			continue
		}
		rows[i].BookingsCount++
		rows[i].TotalRevenue += b.GuestTotal()
		rows[i].TotalCommission += moneyOf(b.EmployeeCommission)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRevenue > rows[j].TotalRevenue
	})
	return rows
}

// companyDebts accumulates speedboat item costs per operating company — what
// the hostel owes each boat operator for the period. A booking whose trip
// was deleted from the catalog cannot be attributed to anyone and is left
// out of every company's total (its cost still counts as an expense).
func companyDebts(periodBookings []models.Booking, trips []models.SpeedBoatTrip) map[string]float64 {
	byID := make(map[uint]models.SpeedBoatTrip, len(trips))
	for _, t := range trips {
		byID[t.ID] = t
	}

	debts := map[string]float64{}
	for _, b := range periodBookings {
		if b.ItemType != models.ItemTypeSpeedBoat {
			continue
		}
		trip, ok := byID[b.ItemID]
		if !ok {
			continue
		}
		debts[trip.Company] += moneyOf(b.ItemCost)
	}
	return debts
}

// ---------------------------
// DB-backed loader
// ---------------------------

// FinanceService loads the report inputs from MySQL and hands them to the
// pure aggregation functions above.
type FinanceService struct {
	DB *gorm.DB
}

func NewFinanceService(db *gorm.DB) *FinanceService {
	return &FinanceService{DB: db}
}

func (s *FinanceService) LoadInputs() (ReportInputs, error) {
	var inputs ReportInputs

	steps := []struct {
		name string
		dest interface{}
	}{
		{"bookings", &inputs.Bookings},
		{"external sales", &inputs.ExternalSales},
		{"platform payments", &inputs.PlatformPayments},
		{"utility records", &inputs.UtilityRecords},
		{"salary advances", &inputs.SalaryAdvances},
		{"absences", &inputs.Absences},
		{"walk-in guests", &inputs.WalkInGuests},
		{"accommodation bookings", &inputs.AccommodationBookings},
		{"staff", &inputs.Staff},
		{"speedboat trips", &inputs.SpeedBoatTrips},
	}
	for _, step := range steps {
		if err := s.DB.Find(step.dest).Error; err != nil {
			return ReportInputs{}, fmt.Errorf("load %s: %w", step.name, err)
		}
	}
	return inputs, nil
}

func (s *FinanceService) Report(filter ReportFilter) (FinancialReport, error) {
	inputs, err := s.LoadInputs()
	if err != nil {
		return FinancialReport{}, err
	}
	return BuildFinancialReport(inputs, filter), nil
}

func (s *FinanceService) Tables(filter ReportFilter) (FinancialTables, error) {
	inputs, err := s.LoadInputs()
	if err != nil {
		return FinancialTables{}, err
	}
	return BuildFinancialTables(inputs, filter), nil
}
