package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portssvc "github.com/SscSPs/fin_automation_app/internal/core/ports/services"
	"github.com/SscSPs/fin_automation_app/internal/dto"
	"github.com/SscSPs/fin_automation_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &reportingHandler{
		reportingService: reportingService,
		now:              time.Now,
	}

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/profit-and-loss", h.profitAndLoss)
	}
}

// trialBalance godoc
// @Summary Trial balance
// @Description Net balance of every account as of a date (default today)
// @Tags reports
// @Produce  json
// @Param   asOf query string false "Report date (YYYY-MM-DD)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.TrialBalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		writeBindError(c, logger, err)
		return
	}
	asOf := domain.TruncateDate(h.now().UTC())
	if params.AsOf != "" {
		asOf, _ = time.Parse(domain.DateLayout, params.AsOf)
	}

	tb, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}

// profitAndLoss godoc
// @Summary Profit and loss
// @Description Revenue and expense accounts over an inclusive date range
// @Tags reports
// @Produce  json
// @Param   from query string true "Start date (YYYY-MM-DD)"
// @Param   to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) profitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ProfitAndLossParams
	if err := c.ShouldBindQuery(&params); err != nil {
		writeBindError(c, logger, err)
		return
	}
	from, _ := time.Parse(domain.DateLayout, params.From)
	to, _ := time.Parse(domain.DateLayout, params.To)

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), from, to)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}
