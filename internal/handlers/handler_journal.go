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

// journalHandler handles HTTP requests related to ledger transactions.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journalService,
	}
}

// registerJournalRoutes registers transaction and template routes. writeMiddleware
// runs in front of every route that posts to the ledger.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, writeMiddleware ...gin.HandlerFunc) {
	h := newJournalHandler(journalService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.POST("", guarded(writeMiddleware, h.createTransaction)...)
		transactions.POST("/templates/:template", guarded(writeMiddleware, h.postTemplate)...)
	}

	rg.POST("/journal/preview/:template", h.previewTemplate)
}

// createTransaction godoc
// @Summary Post a manual transaction
// @Description Validates that debits equal credits (within 0.01) and stores the transaction with all its lines
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction with lines"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]interface{} "Invalid input, unknown account or journal not balanced"
// @Failure 500 {object} map[string]string "Failed to save transaction"
// @Router /transactions [post]
func (h *journalHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err)
		return
	}
	// binding already checked the layout
	date, _ := time.Parse(domain.DateLayout, req.Date)

	txn, err := h.journalService.PostTransaction(c.Request.Context(), date, req.Description, dto.ToDomainLines(req.Lines))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to save transaction")
		return
	}

	logger.Info("Transaction created", slog.Int64("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first with their lines joined to account code and name
// @Tags transactions
// @Produce  json
// @Param   limit query int false "Page size (1-500); all transactions when omitted"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *journalHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		writeBindError(c, logger, err)
		return
	}

	resp, err := h.journalService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid transaction ID"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{id} [get]
func (h *journalHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	transactionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || transactionID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	txn, err := h.journalService.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		writeServiceError(c, logger.With(slog.Int64("transaction_id", transactionID)), err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// postTemplate godoc
// @Summary Post a transaction from a template
// @Description Generates the journal for a business event and posts it
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   template path string true "down-payment, full-payment, receivable-settlement or manual"
// @Param   inputs body dto.TemplateRequest true "Template inputs with date and description"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]interface{} "Invalid inputs or journal not balanced"
// @Failure 500 {object} map[string]string "Failed to save transaction"
// @Router /transactions/templates/{template} [post]
func (h *journalHandler) postTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	kind, req, ok := bindTemplate(c, logger)
	if !ok {
		return
	}
	if req.Date == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and description are required"})
		return
	}
	date, _ := time.Parse(domain.DateLayout, req.Date)

	tpl, err := req.ToTemplate(kind)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to save transaction")
		return
	}

	txn, err := h.journalService.PostTemplate(c.Request.Context(), date, req.Description, tpl)
	if err != nil {
		writeServiceError(c, logger.With(slog.String("template", string(kind))), err, "Failed to save transaction")
		return
	}

	logger.Info("Transaction created from template",
		slog.String("template", string(kind)),
		slog.Int64("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// previewTemplate godoc
// @Summary Preview the journal of a template
// @Description Generates and checks the journal lines for a business event without saving anything
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   template path string true "down-payment, full-payment, receivable-settlement or manual"
// @Param   inputs body dto.TemplateRequest true "Template inputs"
// @Success 200 {object} dto.JournalPreviewResponse
// @Failure 400 {object} map[string]string "Invalid inputs"
// @Router /journal/preview/{template} [post]
func (h *journalHandler) previewTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	kind, req, ok := bindTemplate(c, logger)
	if !ok {
		return
	}
	tpl, err := req.ToTemplate(kind)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to preview journal")
		return
	}

	preview, err := h.journalService.PreviewTemplate(c.Request.Context(), tpl)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to preview journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalPreviewResponse(kind, preview))
}

// bindTemplate resolves the template path parameter and binds the request body.
func bindTemplate(c *gin.Context, logger *slog.Logger) (domain.TemplateKind, dto.TemplateRequest, bool) {
	var req dto.TemplateRequest
	kind, err := domain.ParseTemplateKind(c.Param("template"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return "", req, false
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err)
		return "", req, false
	}
	return kind, req, true
}
