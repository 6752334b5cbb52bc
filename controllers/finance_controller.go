package controllers

import (
	"net/http"
	"time"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type FinanceController struct {
	FinanceSvc *services.FinanceService
}

func NewFinanceController(svc *services.FinanceService) *FinanceController {
	return &FinanceController{FinanceSvc: svc}
}

// filterFromQuery builds the report filter from query params. Day is applied
// last so a drill-down always wins: it forces monthly granularity and snaps
// the month/year to the selected date.
func filterFromQuery(c *gin.Context) services.ReportFilter {
	filter := services.NewReportFilter(time.Now())

	if y := c.Query("year"); y != "" {
		filter.SetYear(y)
	}
	if m := c.Query("month"); m != "" {
		filter.SetMonth(m)
	}
	if g := c.Query("granularity"); g != "" {
		filter.SetGranularity(services.Granularity(g))
	}
	if d := c.Query("day"); d != "" {
		filter.SetDay(d)
	}
	return filter
}

// GetReport returns the whole-period summary: totals, breakdowns, staff
// performance and boat-company payables. The day param is accepted but does
// not narrow these numbers — summary cards always cover the full month/year.
func (ctrl *FinanceController) GetReport(c *gin.Context) {
	filter := filterFromQuery(c)

	report, err := ctrl.FinanceSvc.Report(filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build report")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"filter": filter,
		"report": report,
	})
}

// GetTables returns the itemized rows, narrowed to the drill-down day when
// one is selected.
func (ctrl *FinanceController) GetTables(c *gin.Context) {
	filter := filterFromQuery(c)

	tables, err := ctrl.FinanceSvc.Tables(filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load table rows")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"filter": filter,
		"tables": tables,
	})
}
