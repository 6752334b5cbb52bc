package services

import (
	"testing"

	"hostel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthlyFilter(month string) ReportFilter {
	return ReportFilter{Granularity: GranularityMonthly, Month: month, Year: month[:4]}
}

func yearlyFilter(year string) ReportFilter {
	return ReportFilter{Granularity: GranularityYearly, Month: year + "-01", Year: year}
}

func staffID(id uint) *uint { return &id }

// marchInputs is one hostel month: Ann and Ben selling, a deleted boat trip,
// a stray April booking that must stay out of the March numbers.
func marchInputs() ReportInputs {
	return ReportInputs{
		Bookings: []models.Booking{
			{
				ID: 1, ItemType: models.ItemTypeActivity, ItemID: 1, StaffID: staffID(1),
				BookingDate: "2024-03-10", CustomerPrice: 2000, NumberOfPeople: 2,
				ExtrasTotal: 300, Discount: 100,
				ItemCost: fptr(500), EmployeeCommission: fptr(150),
			},
			{
				ID: 2, ItemType: models.ItemTypeSpeedBoat, ItemID: 10, StaffID: staffID(2),
				BookingDate: "2024-03-12", CustomerPrice: 1200, NumberOfPeople: 2,
				ItemCost: fptr(900), EmployeeCommission: fptr(60),
			},
			{
				ID: 3, ItemType: models.ItemTypeExtra, ItemID: 30, StaffID: staffID(1),
				BookingDate: "2024-03-15", CustomerPrice: 160, NumberOfPeople: 2,
			},
			{
				// trip since deleted from the catalog; still revenue + expense,
				// just unattributable debt
				ID: 4, ItemType: models.ItemTypeSpeedBoat, ItemID: 999,
				BookingDate: "2024-03-20", CustomerPrice: 1000, NumberOfPeople: 2,
				ItemCost: fptr(700),
			},
			{
				ID: 5, ItemType: models.ItemTypeActivity, ItemID: 1, StaffID: staffID(1),
				BookingDate: "2024-04-02", CustomerPrice: 9999, NumberOfPeople: 1,
			},
		},
		ExternalSales: []models.ExternalSale{
			{ID: 1, Date: "2024-03-11", Amount: 500},
			{ID: 2, Date: "2024-04-01", Amount: 250},
		},
		PlatformPayments: []models.PlatformPayment{
			{ID: 1, Date: "2024-03-05", Platform: "Booking.com", Amount: 4000},
		},
		UtilityRecords: []models.UtilityRecord{
			{ID: 1, Date: "2024-03-01", Cost: 800, Category: "electricity"},
		},
		SalaryAdvances: []models.SalaryAdvance{
			{ID: 1, StaffID: 1, Date: "2024-03-20", Amount: 1000},
		},
		Absences: []models.Absence{
			{ID: 1, StaffID: 1, Date: "2024-03-11"},
		},
		WalkInGuests: []models.WalkInGuest{
			{ID: 1, CheckInDate: "2024-03-09", NumberOfNights: 2, PricePerNight: 250, AmountPaid: 350},
		},
		AccommodationBookings: []models.AccommodationBooking{
			{ID: 1, CheckInDate: "2024-03-18", NumberOfNights: 3, TotalPrice: 1800, AmountPaid: 1200},
		},
		Staff: []models.Staff{
			{ID: 1, Name: "Ann", Salary: 9000},
			{ID: 2, Name: "Ben", Salary: 7500},
		},
		SpeedBoatTrips: []models.SpeedBoatTrip{
			{ID: 10, Route: "Koh Tao", Company: "Lomprayah", Price: 600, Cost: 450},
		},
	}
}

func TestBuildFinancialReportRevenueStreams(t *testing.T) {
	report := BuildFinancialReport(marchInputs(), monthlyFilter("2024-03"))

	// per-booking: customerPrice + extrasTotal - discount
	assert.Equal(t, 4560.0, report.TotalActivityRevenue) // 2200 + 1200 + 160 + 1000
	assert.Equal(t, 460.0, report.TotalExtrasRevenue)    // extra-type booking 160 + extras component 300
	assert.Equal(t, 500.0, report.TotalExternalSales)
	assert.Equal(t, 4000.0, report.TotalPlatformRevenue)
	// cash collected, not contracted price
	assert.Equal(t, 1550.0, report.TotalAccommodationRevenue)

	assert.Equal(t, 10610.0, report.TotalRevenue)
}

func TestRevenueDecompositionHasNoResidual(t *testing.T) {
	report := BuildFinancialReport(marchInputs(), monthlyFilter("2024-03"))

	sum := report.TotalActivityRevenue +
		report.TotalExternalSales +
		report.TotalAccommodationRevenue +
		report.TotalPlatformRevenue
	assert.Equal(t, report.TotalRevenue, sum)
}

func TestBuildFinancialReportExpenses(t *testing.T) {
	report := BuildFinancialReport(marchInputs(), monthlyFilter("2024-03"))

	assert.Equal(t, 800.0, report.TotalUtilitiesCost)
	assert.Equal(t, 2100.0, report.TotalItemCosts) // 500 + 900 + 700
	assert.Equal(t, 210.0, report.TotalEmployeeCommissions)
	assert.Equal(t, 16500.0, report.TotalMonthlySalaries)

	// one absence for Ann in a 31-day month
	assert.InDelta(t, 9000.0/31, report.TotalAbsenceDeductions, 1e-9)

	netSalary := report.TotalMonthlySalaries - report.TotalAbsenceDeductions
	expectedExpenses := 800 + 2100 + 210 + netSalary
	assert.InDelta(t, expectedExpenses, report.TotalExpenses, 1e-9)

	assert.Equal(t, 1000.0, report.TotalSalaryAdvances)
	assert.InDelta(t, netSalary-1000, report.RemainingSalaries, 1e-9)
	assert.InDelta(t, report.TotalExpenses-1000, report.RemainingExpensesToBePaid, 1e-9)
}

func TestNetProfitIdentity(t *testing.T) {
	inputs := marchInputs()

	for _, filter := range []ReportFilter{monthlyFilter("2024-03"), monthlyFilter("2024-04"), yearlyFilter("2024")} {
		report := BuildFinancialReport(inputs, filter)
		assert.Equal(t, report.TotalRevenue-report.TotalExpenses, report.NetProfit)
	}
}

func TestYearlyPayrollIsTwelveMonths(t *testing.T) {
	report := BuildFinancialReport(marchInputs(), yearlyFilter("2024"))
	assert.Equal(t, 16500.0*12, report.TotalMonthlySalaries)
}

func TestDaySubsetConsistency(t *testing.T) {
	inputs := marchInputs()

	wholeMonth := monthlyFilter("2024-03")
	drilled := monthlyFilter("2024-03")
	drilled.SetDay("2024-03-10")

	// summary totals are identical whether or not a day is selected
	assert.Equal(t, BuildFinancialReport(inputs, wholeMonth), BuildFinancialReport(inputs, drilled))

	// day-filtered table rows are a subset of the month's rows
	monthTables := BuildFinancialTables(inputs, wholeMonth)
	dayTables := BuildFinancialTables(inputs, drilled)

	monthIDs := map[uint]bool{}
	for _, b := range monthTables.Bookings {
		monthIDs[b.ID] = true
	}
	require.NotEmpty(t, dayTables.Bookings)
	for _, b := range dayTables.Bookings {
		assert.True(t, monthIDs[b.ID])
		assert.Equal(t, "2024-03-10", b.BookingDate)
	}
	assert.Len(t, monthTables.Bookings, 4)
	assert.Len(t, dayTables.Bookings, 1)
}

func TestYearlyAbsenceDeductionIsMonthByMonth(t *testing.T) {
	staff := []models.Staff{{ID: 1, Name: "Ann", Salary: 3000}}
	absences := []models.Absence{
		{ID: 1, StaffID: 1, Date: "2023-01-15"}, // 31-day month
		{ID: 2, StaffID: 1, Date: "2023-02-10"}, // 28-day month
	}

	deduction := absenceDeduction(staff, absences, GranularityYearly, "2023")

	expected := 3000.0/31 + 3000.0/28
	assert.InDelta(t, expected, deduction, 1e-9)

	naive := 2 * (3000.0 * 12 / 365)
	assert.NotEqual(t, naive, deduction, "yearly deduction must not be naive daily-rate scaling")
}

func TestAbsenceDeductionLeapFebruary(t *testing.T) {
	staff := []models.Staff{{ID: 1, Salary: 2900}}
	absences := []models.Absence{{ID: 1, StaffID: 1, Date: "2024-02-10"}}

	deduction := absenceDeduction(staff, absences, GranularityMonthly, "2024-02")
	assert.InDelta(t, 2900.0/29, deduction, 1e-9)
}

func TestAbsenceDeductionMalformedPeriodIsZero(t *testing.T) {
	staff := []models.Staff{{ID: 1, Salary: 3000}}
	absences := []models.Absence{{ID: 1, StaffID: 1, Date: "2024-02-10"}}

	assert.Zero(t, absenceDeduction(staff, absences, GranularityMonthly, ""))
	assert.Zero(t, absenceDeduction(staff, absences, GranularityMonthly, "garbage"))
}

func TestStaffPerformanceSortedWithZeroRows(t *testing.T) {
	report := BuildFinancialReport(marchInputs(), monthlyFilter("2024-03"))

	require.Len(t, report.StaffPerformance, 2)

	ann := report.StaffPerformance[0]
	assert.Equal(t, "Ann", ann.StaffName)
	assert.Equal(t, 2, ann.BookingsCount)
	assert.Equal(t, 2360.0, ann.TotalRevenue) // 2200 + 160
	assert.Equal(t, 150.0, ann.TotalCommission)

	ben := report.StaffPerformance[1]
	assert.Equal(t, "Ben", ben.StaffName)
	assert.Equal(t, 1, ben.BookingsCount)
	assert.Equal(t, 1200.0, ben.TotalRevenue)
	assert.Equal(t, 60.0, ben.TotalCommission)
}

func TestStaffWithNoBookingsStillListed(t *testing.T) {
	inputs := marchInputs()
	inputs.Staff = append(inputs.Staff, models.Staff{ID: 3, Name: "Cara", Salary: 6000})

	report := BuildFinancialReport(inputs, monthlyFilter("2024-03"))

	require.Len(t, report.StaffPerformance, 3)
	last := report.StaffPerformance[2]
	assert.Equal(t, "Cara", last.StaffName)
	assert.Zero(t, last.BookingsCount)
	assert.Zero(t, last.TotalRevenue)
}

func TestCompanyDebtsExcludeDeletedTrips(t *testing.T) {
	report := BuildFinancialReport(marchInputs(), monthlyFilter("2024-03"))

	// only the resolvable Lomprayah booking contributes; the deleted trip's
	// 700 cost is attributed to no company at all
	assert.Equal(t, map[string]float64{"Lomprayah": 900}, report.CompanyDebts)

	// but it still counts in revenue and item costs
	assert.Equal(t, 2100.0, report.TotalItemCosts)
}

func TestConcreteMarchScenario(t *testing.T) {
	// Ann (9000/month), one activity booking in 2024-03:
	// customerPrice 2000, extras 300, discount 100, commission 150, cost 500
	inputs := ReportInputs{
		Bookings: []models.Booking{
			{
				ID: 1, ItemType: models.ItemTypeActivity, ItemID: 1, StaffID: staffID(1),
				BookingDate: "2024-03-10", CustomerPrice: 2000, NumberOfPeople: 1,
				ExtrasTotal: 300, Discount: 100,
				ItemCost: fptr(500), EmployeeCommission: fptr(150),
			},
		},
		Staff: []models.Staff{{ID: 1, Name: "Ann", Salary: 9000}},
	}

	report := BuildFinancialReport(inputs, monthlyFilter("2024-03"))

	assert.Equal(t, 2200.0, report.TotalActivityRevenue)
	assert.Equal(t, 2200.0, report.TotalRevenue)
	assert.Equal(t, 500.0, report.TotalItemCosts)
	assert.Equal(t, 150.0, report.TotalEmployeeCommissions)
	assert.Equal(t, 9000.0, report.TotalMonthlySalaries)
	assert.Equal(t, 500.0+150+9000, report.TotalExpenses)
	assert.Equal(t, report.TotalRevenue-report.TotalExpenses, report.NetProfit)

	require.Len(t, report.StaffPerformance, 1)
	row := report.StaffPerformance[0]
	assert.Equal(t, 1, row.BookingsCount)
	assert.Equal(t, 2200.0, row.TotalRevenue)
	assert.Equal(t, 150.0, row.TotalCommission)
}

func TestDiscountIsNotClamped(t *testing.T) {
	inputs := ReportInputs{
		Bookings: []models.Booking{
			{
				ID: 1, ItemType: models.ItemTypeActivity, ItemID: 1,
				BookingDate: "2024-03-10", CustomerPrice: 100, Discount: 500,
			},
		},
	}

	report := BuildFinancialReport(inputs, monthlyFilter("2024-03"))
	assert.Equal(t, -400.0, report.TotalActivityRevenue)
}

func TestMalformedDatesFallOutOfThePeriod(t *testing.T) {
	inputs := ReportInputs{
		Bookings: []models.Booking{
			{ID: 1, ItemType: models.ItemTypeActivity, BookingDate: "10/03/2024", CustomerPrice: 777},
		},
		ExternalSales: []models.ExternalSale{{ID: 1, Date: "not-a-date", Amount: 123}},
	}

	report := BuildFinancialReport(inputs, monthlyFilter("2024-03"))
	assert.Zero(t, report.TotalActivityRevenue)
	assert.Zero(t, report.TotalExternalSales)
	assert.Zero(t, report.TotalRevenue)
}

func TestBuildFinancialTablesEmptySlicesNotNil(t *testing.T) {
	tables := BuildFinancialTables(ReportInputs{}, monthlyFilter("2024-03"))

	assert.NotNil(t, tables.Bookings)
	assert.NotNil(t, tables.ExternalSales)
	assert.NotNil(t, tables.PlatformPayments)
	assert.Empty(t, tables.Bookings)
}
