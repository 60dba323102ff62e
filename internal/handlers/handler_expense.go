package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portssvc "github.com/SscSPs/fin_automation_app/internal/core/ports/services"
	"github.com/SscSPs/fin_automation_app/internal/dto"
	"github.com/SscSPs/fin_automation_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to business expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{
		expenseService: es,
	}
}

// registerExpenseRoutes registers routes related to expenses.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade, writeMiddleware ...gin.HandlerFunc) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.GET("/summary", h.summarizeExpenses)
		expenses.POST("", guarded(writeMiddleware, h.createExpense)...)
		expenses.DELETE("/:id", guarded(writeMiddleware, h.deleteExpense)...)
	}
}

// createExpense godoc
// @Summary Record an expense
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save expense"
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err)
		return
	}
	date, _ := time.Parse(domain.DateLayout, req.Date)
	category, _ := domain.ParseExpenseCategory(req.Category)

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), date, category, req.Description, req.Amount)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to save expense")
		return
	}

	logger.Info("Expense recorded", slog.Int64("expense_id", expense.ExpenseID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists expenses newest first. The date range applies only when both bounds are given.
// @Tags expenses
// @Produce  json
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list expenses"
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, ok := bindExpenseFilter(c, logger)
	if !ok {
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponses(expenses))
}

// summarizeExpenses godoc
// @Summary Summarize expenses
// @Description Totals expenses overall and per category, with Rupiah labels
// @Tags expenses
// @Produce  json
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.ExpenseSummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to summarize expenses"
// @Router /expenses/summary [get]
func (h *expenseHandler) summarizeExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, ok := bindExpenseFilter(c, logger)
	if !ok {
		return
	}

	summary, err := h.expenseService.SummarizeExpenses(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to summarize expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseSummaryResponse(*summary))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Param   id path int true "Expense ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid expense ID"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to delete expense"
// @Router /expenses/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expenseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || expenseID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID"})
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), expenseID); err != nil {
		writeServiceError(c, logger.With(slog.Int64("expense_id", expenseID)), err, "Failed to delete expense")
		return
	}

	logger.Info("Expense deleted", slog.Int64("expense_id", expenseID))
	c.Status(http.StatusNoContent)
}

// bindExpenseFilter reads the optional date range from the query string.
func bindExpenseFilter(c *gin.Context, logger *slog.Logger) (domain.ExpenseFilter, bool) {
	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		writeBindError(c, logger, err)
		return domain.ExpenseFilter{}, false
	}

	var filter domain.ExpenseFilter
	if params.StartDate != "" && params.EndDate != "" {
		start, _ := time.Parse(domain.DateLayout, params.StartDate)
		end, _ := time.Parse(domain.DateLayout, params.EndDate)
		filter.StartDate = &start
		filter.EndDate = &end
	}
	return filter, true
}
