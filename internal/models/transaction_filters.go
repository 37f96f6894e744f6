package models

import (
	"strings"
	"time"
)

// TransactionFilters contains filtering options for transaction queries.
// Every zero-valued field is inactive and contributes no constraint; active
// fields combine with logical AND.
type TransactionFilters struct {
	Categories     []string
	PaymentMethods []string
	SearchText     string
	StartDate      *time.Time
	EndDate        *time.Time
	MinAmount      *Money
	MaxAmount      *Money
	Offset         int
	Limit          int
}

// Matches applies every active predicate to a transaction. Date bounds are
// half-open: StartDate inclusive, EndDate exclusive.
func (f TransactionFilters) Matches(t *Transaction) bool {
	if len(f.Categories) > 0 && !containsString(f.Categories, t.Category) {
		return false
	}

	if len(f.PaymentMethods) > 0 && !containsString(f.PaymentMethods, t.PaymentMethod) {
		return false
	}

	if f.StartDate != nil && t.Date.Before(*f.StartDate) {
		return false
	}

	if f.EndDate != nil && !t.Date.Before(*f.EndDate) {
		return false
	}

	if f.MinAmount != nil && t.AmountCents < *f.MinAmount {
		return false
	}

	if f.MaxAmount != nil && t.AmountCents > *f.MaxAmount {
		return false
	}

	if !t.MatchesSearch(f.SearchText) {
		return false
	}

	return true
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
