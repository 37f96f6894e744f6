package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidAmount        = errors.New("transaction amount must be positive")
	ErrTitleRequired        = errors.New("transaction title is required")
	ErrDateRequired         = errors.New("transaction date is required")
)

// Transaction represents a recorded expense
type Transaction struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	AmountCents   Money     `gorm:"not null" json:"amount_cents"`
	Category      string    `gorm:"type:varchar(50);not null;index" json:"category"`
	PaymentMethod string    `gorm:"type:varchar(50);not null;index" json:"payment_method"`
	Date          time.Time `gorm:"not null;index" json:"date"`
	Location      string    `gorm:"type:varchar(255)" json:"location,omitempty"`
	Address       string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.Title == "" {
		return ErrTitleRequired
	}

	if t.AmountCents <= 0 {
		return ErrInvalidAmount
	}

	if !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}

	if !IsValidPaymentMethod(t.PaymentMethod) {
		return ErrInvalidPaymentMethod
	}

	if t.Date.IsZero() {
		return ErrDateRequired
	}

	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// MatchesSearch reports whether the transaction matches a free-text query.
// The match is a case-insensitive substring test across the title, the
// category display name, and the payment-method display name.
func (t *Transaction) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}

	return containsIgnoreCase(t.Title, query) ||
		containsIgnoreCase(CategoryDisplayName(t.Category), query) ||
		containsIgnoreCase(PaymentMethodDisplayName(t.PaymentMethod), query)
}
