package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"spendlens/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// Update saves the full transaction state
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	// Model carries the populated struct so the update hook validates the
	// incoming values, not an empty record.
	result := r.db.Model(transaction).
		Where("id = ?", transaction.ID).
		Select("title", "amount_cents", "category", "payment_method", "date", "location", "address", "updated_at").
		Updates(map[string]interface{}{
			"title":          transaction.Title,
			"amount_cents":   transaction.AmountCents,
			"category":       transaction.Category,
			"payment_method": transaction.PaymentMethod,
			"date":           transaction.Date,
			"location":       transaction.Location,
			"address":        transaction.Address,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction by ID
func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// List retrieves transactions matching the filters with a total count.
// Database-expressible predicates run in SQL; the free-text search also
// matches category and payment-method display names, so it is applied in the
// application layer where those names live.
func (r *transactionRepository) List(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	query := r.applyQueryFilters(r.db.Model(&models.Transaction{}), filters)

	var transactions []models.Transaction
	if err := query.Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	if filters.SearchText != "" {
		transactions = filterBySearch(transactions, filters.SearchText)
	}

	total := int64(len(transactions))
	transactions = paginate(transactions, filters.Offset, filters.Limit)

	return transactions, total, nil
}

// GetAll returns the full transaction set ordered by descending date.
func (r *transactionRepository) GetAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetByDateRange retrieves transactions with start <= date < end
func (r *transactionRepository) GetByDateRange(start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("date >= ? AND date < ?", start, end).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// Count returns the total number of stored transactions
func (r *transactionRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

func (r *transactionRepository) applyQueryFilters(query *gorm.DB, filters models.TransactionFilters) *gorm.DB {
	if len(filters.Categories) > 0 {
		query = query.Where("category IN ?", filters.Categories)
	}

	if len(filters.PaymentMethods) > 0 {
		query = query.Where("payment_method IN ?", filters.PaymentMethods)
	}

	if filters.StartDate != nil {
		query = query.Where("date >= ?", *filters.StartDate)
	}

	if filters.EndDate != nil {
		query = query.Where("date < ?", *filters.EndDate)
	}

	if filters.MinAmount != nil {
		query = query.Where("amount_cents >= ?", int64(*filters.MinAmount))
	}

	if filters.MaxAmount != nil {
		query = query.Where("amount_cents <= ?", int64(*filters.MaxAmount))
	}

	return query
}

func filterBySearch(transactions []models.Transaction, search string) []models.Transaction {
	needle := strings.ToLower(search)
	matched := make([]models.Transaction, 0, len(transactions))
	for i := range transactions {
		if transactions[i].MatchesSearch(needle) {
			matched = append(matched, transactions[i])
		}
	}
	return matched
}

func paginate(transactions []models.Transaction, offset, limit int) []models.Transaction {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(transactions) {
		return []models.Transaction{}
	}

	end := len(transactions)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return transactions[offset:end]
}
