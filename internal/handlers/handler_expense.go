package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{
		expenseService: es,
	}
}

// registerExpenseRoutes registers routes related to expenses. writeMiddleware
// runs only in front of the routes that change data.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade, writeMiddleware ...gin.HandlerFunc) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.GET("/summary/category", h.getCategorySummary)
		expenses.GET("/total", h.getGrandTotal)
		expenses.GET("/:id", h.getExpense)
	}

	writes := expenses.Group("", writeMiddleware...)
	{
		writes.POST("", h.createExpense)
		writes.PUT("/:id", h.updateExpense)
		writes.DELETE("/:id", h.deleteExpense)
	}
}

// respondError writes the error body for err, logging server-side failures.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, dto.ErrorResponse{Error: apperrors.PublicMessage(err, fallback)})
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists expenses, newest date first. The date range applies only when both start_date and end_date are given.
// @Tags expenses
// @Produce  json
// @Param   category   query string false "Exact category"
// @Param   start_date query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param   end_date   query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve expenses"
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filter := domain.ExpenseFilter{
		Category:  c.Query("category"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}

// createExpense godoc
// @Summary Create a new expense
// @Description Records an expense. date, category and a positive amount are required.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to create expense"
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// getExpense godoc
// @Summary Get an expense
// @Tags expenses
// @Produce  json
// @Param   id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid expense ID"
// @Failure 404 {object} dto.ErrorResponse "Expense not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve expense"
// @Router /expenses/{id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("expense_id", c.Param("id")))

	expense, err := h.expenseService.GetExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// updateExpense godoc
// @Summary Update an expense
// @Description Changes the supplied fields and refreshes updated_at. Unknown fields are rejected.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   expense body dto.UpdateExpenseRequest true "Fields to change"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or expense ID"
// @Failure 404 {object} dto.ErrorResponse "Expense not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update expense"
// @Router /expenses/{id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("expense_id", c.Param("id")))

	var req dto.UpdateExpenseRequest
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		logger.Warn("Failed to decode JSON for UpdateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Param   id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid expense ID"
// @Failure 404 {object} dto.ErrorResponse "Expense not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete expense"
// @Router /expenses/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("expense_id", c.Param("id")))

	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete expense")
		return
	}

	c.Status(http.StatusNoContent)
}

// getCategorySummary godoc
// @Summary Totals per category
// @Description Sum and count of expenses per category, largest total first.
// @Tags expenses
// @Produce  json
// @Success 200 {array} dto.CategorySummaryResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to summarize expenses"
// @Router /expenses/summary/category [get]
func (h *expenseHandler) getCategorySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.expenseService.CategorySummary(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to summarize expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategorySummaryResponse(summary))
}

// getGrandTotal godoc
// @Summary Total of all expenses
// @Tags expenses
// @Produce  json
// @Success 200 {object} dto.TotalResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to total expenses"
// @Router /expenses/total [get]
func (h *expenseHandler) getGrandTotal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	total, err := h.expenseService.GrandTotal(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to total expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToTotalResponse(total))
}
