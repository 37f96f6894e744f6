package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"spendlens/internal/dto"
	"spendlens/internal/errors"
	"spendlens/internal/models"
	"spendlens/internal/repositories"
	"spendlens/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
	appVersion       = "1.0.0"
	maxImportRecords = 10000
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         services.MetricsRecorderInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics services.MetricsRecorderInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// CreateTransaction records a new transaction
// @Summary Create transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction to record"
// @Success 201 {object} dto.TransactionResponse "Created transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_005 - Validation failed"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, errResp := transactionFromRequest(c, req.Title, req.Amount, req.Category, req.PaymentMethod, req.Date, req.Location, req.Address)
	if errResp != nil {
		return errResp
	}

	if err := h.transactionRepo.Create(transaction); err != nil {
		if isValidationError(err) {
			return SendError(c, errors.TransactionValidationFailed, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	h.metrics.RecordTransactionWrite("create")

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// GetTransaction retrieves a single transaction by ID
// @Summary Get transaction
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse "Transaction"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	transaction, err := h.transactionRepo.GetByID(id)
	if err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// ListTransactions retrieves filtered, paginated transactions
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Param category query string false "Filter by category code (repeatable)"
// @Param payment_method query string false "Filter by payment method (repeatable)"
// @Param search query string false "Case-insensitive text search"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Exclusive end date (YYYY-MM-DD)"
// @Param min_amount query string false "Minimum amount, decimal string"
// @Param max_amount query string false "Maximum amount, decimal string"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size (max 200)" default(50)
// @Success 200 {object} handlers.SuccessResponse "Transactions ordered by descending date"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid filter parameters"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	filters, err := parseListFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transactions, total, err := h.transactionRepo.List(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, dto.NewTransactionResponse(&transactions[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: responses,
		Meta: map[string]interface{}{
			"total":  total,
			"offset": filters.Offset,
			"limit":  filters.Limit,
		},
	})
}

// UpdateTransaction replaces the editable fields of a transaction
// @Summary Update transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Replacement fields"
// @Success 200 {object} dto.TransactionResponse "Updated transaction"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_005 - Validation failed"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, errResp := transactionFromRequest(c, req.Title, req.Amount, req.Category, req.PaymentMethod, req.Date, req.Location, req.Address)
	if errResp != nil {
		return errResp
	}
	transaction.ID = id

	if err := h.transactionRepo.Update(transaction); err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		if isValidationError(err) {
			return SendError(c, errors.TransactionValidationFailed, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	h.metrics.RecordTransactionWrite("update")

	updated, err := h.transactionRepo.GetByID(id)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(updated))
}

// DeleteTransaction removes a transaction
// @Summary Delete transaction
// @Tags Transactions
// @Param id path string true "Transaction ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	if err := h.transactionRepo.Delete(id); err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	h.metrics.RecordTransactionWrite("delete")

	return c.NoContent(http.StatusNoContent)
}

// ExportTransactions dumps every transaction in the backup wire format
// @Summary Export transactions
// @Tags Transactions
// @Produce json
// @Success 200 {object} dto.ExportEnvelope "All transactions wrapped in an export envelope"
// @Router /transactions/export [get]
func (h *TransactionHandler) ExportTransactions(c echo.Context) error {
	transactions, err := h.transactionRepo.GetAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	records := make([]dto.ExportRecord, 0, len(transactions))
	for i := range transactions {
		t := &transactions[i]
		records = append(records, dto.ExportRecord{
			ID:            t.ID,
			Title:         t.Title,
			AmountCents:   t.AmountCents.Cents(),
			Category:      t.Category,
			PaymentMethod: t.PaymentMethod,
			Date:          t.Date.UTC().Format(time.RFC3339),
			Location:      t.Location,
			Address:       t.Address,
		})
	}

	envelope := dto.ExportEnvelope{
		ExportDate:        time.Now().UTC().Format(time.RFC3339),
		TotalTransactions: len(records),
		AppVersion:        appVersion,
		Transactions:      records,
	}

	c.Response().Header().Set("Content-Disposition", `attachment; filename="transactions.json"`)

	return c.JSON(http.StatusOK, envelope)
}

// ImportTransactions restores transactions from an export envelope. The whole
// batch is validated before anything is written; one bad record rejects the
// import.
// @Summary Import transactions
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.ExportEnvelope true "Previously exported envelope"
// @Success 200 {object} handlers.SuccessResponse "Import summary"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_006 - Import failed"
// @Router /transactions/import [post]
func (h *TransactionHandler) ImportTransactions(c echo.Context) error {
	var envelope dto.ExportEnvelope
	if err := c.Bind(&envelope); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if len(envelope.Transactions) == 0 {
		return SendError(c, errors.TransactionImportFailed, errors.WithDetails("Envelope contains no transactions"))
	}
	if len(envelope.Transactions) > maxImportRecords {
		return SendError(c, errors.TransactionImportFailed,
			errors.WithDetails(fmt.Sprintf("Envelope exceeds %d transactions", maxImportRecords)))
	}

	transactions := make([]models.Transaction, 0, len(envelope.Transactions))
	for i, record := range envelope.Transactions {
		date, err := time.Parse(time.RFC3339, record.Date)
		if err != nil {
			return SendError(c, errors.TransactionImportFailed,
				errors.WithDetails(fmt.Sprintf("Record %d: invalid date %q", i, record.Date)))
		}

		transaction := models.Transaction{
			ID:            record.ID,
			Title:         record.Title,
			AmountCents:   models.MoneyFromCents(record.AmountCents),
			Category:      record.Category,
			PaymentMethod: record.PaymentMethod,
			Date:          date,
			Location:      record.Location,
			Address:       record.Address,
		}
		if err := transaction.Validate(); err != nil {
			return SendError(c, errors.TransactionImportFailed,
				errors.WithDetails(fmt.Sprintf("Record %d: %s", i, err.Error())))
		}

		transactions = append(transactions, transaction)
	}

	if err := h.transactionRepo.CreateBatch(transactions); err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.RecordTransactionWrite("import")

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Import completed",
		Meta: map[string]interface{}{
			"imported": len(transactions),
		},
	})
}

// transactionFromRequest assembles and pre-validates a model from request
// fields, returning a ready error response on failure.
func transactionFromRequest(c echo.Context, title, amount, category, paymentMethod string, date time.Time, location, address string) (*models.Transaction, error) {
	amountCents, err := models.ParseMoney(amount)
	if err != nil {
		return nil, SendError(c, errors.ValidationInvalidAmount, errors.WithDetails(fmt.Sprintf("Cannot parse amount %q", amount)))
	}
	if amountCents <= 0 {
		return nil, SendError(c, errors.TransactionInvalidAmount)
	}
	if !models.IsValidCategory(category) {
		return nil, SendError(c, errors.TransactionInvalidCategory, errors.WithDetails(fmt.Sprintf("Unknown category %q", category)))
	}
	if !models.IsValidPaymentMethod(paymentMethod) {
		return nil, SendError(c, errors.TransactionInvalidPayment, errors.WithDetails(fmt.Sprintf("Unknown payment method %q", paymentMethod)))
	}

	return &models.Transaction{
		Title:         title,
		AmountCents:   amountCents,
		Category:      category,
		PaymentMethod: paymentMethod,
		Date:          date,
		Location:      location,
		Address:       address,
	}, nil
}

// parseListFilters parses and validates transaction filter parameters
func parseListFilters(c echo.Context) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		Offset: 0,
		Limit:  defaultPageLimit,
	}

	for _, category := range c.QueryParams()["category"] {
		if !models.IsValidCategory(category) {
			return filters, fmt.Errorf("invalid category %q", category)
		}
		filters.Categories = append(filters.Categories, category)
	}

	for _, method := range c.QueryParams()["payment_method"] {
		if !models.IsValidPaymentMethod(method) {
			return filters, fmt.Errorf("invalid payment method %q", method)
		}
		filters.PaymentMethods = append(filters.PaymentMethods, method)
	}

	filters.SearchText = c.QueryParam("search")

	if startDateStr := c.QueryParam("start_date"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			return filters, fmt.Errorf("invalid start_date format, use YYYY-MM-DD")
		}
		filters.StartDate = &startDate
	}

	if endDateStr := c.QueryParam("end_date"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			return filters, fmt.Errorf("invalid end_date format, use YYYY-MM-DD")
		}
		filters.EndDate = &endDate
	}

	if minAmountStr := c.QueryParam("min_amount"); minAmountStr != "" {
		minAmount, err := models.ParseMoney(minAmountStr)
		if err != nil {
			return filters, fmt.Errorf("invalid min_amount format")
		}
		filters.MinAmount = &minAmount
	}

	if maxAmountStr := c.QueryParam("max_amount"); maxAmountStr != "" {
		maxAmount, err := models.ParseMoney(maxAmountStr)
		if err != nil {
			return filters, fmt.Errorf("invalid max_amount format")
		}
		filters.MaxAmount = &maxAmount
	}

	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return filters, fmt.Errorf("invalid offset parameter")
		}
		filters.Offset = offset
	}

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return filters, fmt.Errorf("invalid limit parameter")
		}
		if limit > maxPageLimit {
			limit = maxPageLimit
		}
		filters.Limit = limit
	}

	return filters, nil
}

// isValidationError reports whether a repository error stems from model
// validation rather than the database.
func isValidationError(err error) bool {
	return stderrors.Is(err, models.ErrTitleRequired) ||
		stderrors.Is(err, models.ErrInvalidAmount) ||
		stderrors.Is(err, models.ErrInvalidCategory) ||
		stderrors.Is(err, models.ErrInvalidPaymentMethod) ||
		stderrors.Is(err, models.ErrDateRequired)
}
