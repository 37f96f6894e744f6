package services

import (
	"spendlens/internal/models"
)

// FilterByInterval returns the transactions whose date satisfies
// start <= date < end, preserving input order. The input slice is never
// mutated.
func FilterByInterval(transactions []models.Transaction, interval models.Interval) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for i := range transactions {
		if interval.Contains(transactions[i].Date) {
			filtered = append(filtered, transactions[i])
		}
	}
	return filtered
}

// FilterTransactions applies the combined predicate filters (category set,
// payment-method set, text search, date range, amount range), preserving
// input order. Inactive filters contribute no constraint.
func FilterTransactions(transactions []models.Transaction, filters models.TransactionFilters) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for i := range transactions {
		if filters.Matches(&transactions[i]) {
			filtered = append(filtered, transactions[i])
		}
	}
	return filtered
}
