package dto

import (
	"time"

	"spendlens/internal/models"

	"github.com/google/uuid"
)

// CreateTransactionRequest is the payload for recording a transaction.
// Amount is a decimal string ("12.50"); it is parsed into integer cents, the
// only representation the engine works with.
type CreateTransactionRequest struct {
	Title         string    `json:"title" validate:"required,max=255"`
	Amount        string    `json:"amount" validate:"required"`
	Category      string    `json:"category" validate:"required"`
	PaymentMethod string    `json:"payment_method" validate:"required"`
	Date          time.Time `json:"date" validate:"required"`
	Location      string    `json:"location,omitempty" validate:"max=255"`
	Address       string    `json:"address,omitempty" validate:"max=255"`
}

// UpdateTransactionRequest replaces every editable field of a transaction.
type UpdateTransactionRequest struct {
	Title         string    `json:"title" validate:"required,max=255"`
	Amount        string    `json:"amount" validate:"required"`
	Category      string    `json:"category" validate:"required"`
	PaymentMethod string    `json:"payment_method" validate:"required"`
	Date          time.Time `json:"date" validate:"required"`
	Location      string    `json:"location,omitempty" validate:"max=255"`
	Address       string    `json:"address,omitempty" validate:"max=255"`
}

// TransactionResponse is the API view of a stored transaction.
type TransactionResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Amount        string    `json:"amount"`
	AmountCents   int64     `json:"amount_cents"`
	Category      string    `json:"category"`
	PaymentMethod string    `json:"payment_method"`
	Date          time.Time `json:"date"`
	Location      string    `json:"location,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewTransactionResponse converts a model into its API view.
func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		Title:         t.Title,
		Amount:        t.AmountCents.String(),
		AmountCents:   t.AmountCents.Cents(),
		Category:      t.Category,
		PaymentMethod: t.PaymentMethod,
		Date:          t.Date,
		Location:      t.Location,
		Address:       t.Address,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// ExportRecord is one transaction in the export/import wire format. Dates
// travel as ISO-8601 strings.
type ExportRecord struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	AmountCents   int64     `json:"amountCents"`
	Category      string    `json:"category"`
	PaymentMethod string    `json:"paymentMethod"`
	Date          string    `json:"date"`
	Location      string    `json:"location,omitempty"`
	Address       string    `json:"address,omitempty"`
}

// ExportEnvelope is the wrapper around an exported transaction set.
type ExportEnvelope struct {
	ExportDate        string         `json:"exportDate"`
	TotalTransactions int            `json:"totalTransactions"`
	AppVersion        string         `json:"appVersion"`
	Transactions      []ExportRecord `json:"transactions"`
}
