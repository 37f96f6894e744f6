package services

import (
	"testing"
	"time"

	"spendlens/internal/models"

	"github.com/stretchr/testify/suite"
)

type FilterTestSuite struct {
	suite.Suite
}

func TestFilterSuite(t *testing.T) {
	suite.Run(t, new(FilterTestSuite))
}

func (s *FilterTestSuite) TestFilterByInterval_BoundaryBehavior() {
	interval := models.Interval{
		Start: date(2024, 3, 1, 0),
		End:   date(2024, 4, 1, 0),
	}
	transactions := []models.Transaction{
		makeTransaction("At start", models.CategoryFoodDrink, models.PaymentMethodCash, 100, interval.Start),
		makeTransaction("Inside", models.CategoryFoodDrink, models.PaymentMethodCash, 200, date(2024, 3, 15, 12)),
		makeTransaction("Just before end", models.CategoryFoodDrink, models.PaymentMethodCash, 300, interval.End.Add(-time.Second)),
		makeTransaction("At end", models.CategoryFoodDrink, models.PaymentMethodCash, 400, interval.End),
		makeTransaction("Before start", models.CategoryFoodDrink, models.PaymentMethodCash, 500, interval.Start.Add(-time.Second)),
	}

	filtered := FilterByInterval(transactions, interval)

	s.Require().Len(filtered, 3)
	s.Equal("At start", filtered[0].Title)
	s.Equal("Inside", filtered[1].Title)
	s.Equal("Just before end", filtered[2].Title)
}

func (s *FilterTestSuite) TestFilterByInterval_PreservesOrder() {
	interval := models.Interval{Start: date(2024, 3, 1, 0), End: date(2024, 4, 1, 0)}
	transactions := []models.Transaction{
		makeTransaction("Third", models.CategoryFoodDrink, models.PaymentMethodCash, 300, date(2024, 3, 20, 0)),
		makeTransaction("First", models.CategoryFoodDrink, models.PaymentMethodCash, 100, date(2024, 3, 5, 0)),
		makeTransaction("Second", models.CategoryFoodDrink, models.PaymentMethodCash, 200, date(2024, 3, 10, 0)),
	}

	filtered := FilterByInterval(transactions, interval)

	s.Equal([]string{"Third", "First", "Second"},
		[]string{filtered[0].Title, filtered[1].Title, filtered[2].Title},
		"input order is preserved, not re-sorted")
}

func (s *FilterTestSuite) TestFilterByInterval_EmptyInput() {
	interval := models.Interval{Start: date(2024, 3, 1, 0), End: date(2024, 4, 1, 0)}
	s.Empty(FilterByInterval(nil, interval))
}

func (s *FilterTestSuite) TestFilterTransactions_CombinedPredicates() {
	transactions := []models.Transaction{
		makeTransaction("MTR to Central", models.CategoryTransportation, models.PaymentMethodOctopus, 500, date(2024, 3, 5, 8)),
		makeTransaction("Taxi home", models.CategoryTransportation, models.PaymentMethodCash, 8000, date(2024, 3, 6, 23)),
		makeTransaction("Lunch", models.CategoryFoodDrink, models.PaymentMethodOctopus, 4500, date(2024, 3, 7, 12)),
	}

	filtered := FilterTransactions(transactions, models.TransactionFilters{
		Categories:     []string{models.CategoryTransportation},
		PaymentMethods: []string{models.PaymentMethodOctopus},
	})

	s.Require().Len(filtered, 1)
	s.Equal("MTR to Central", filtered[0].Title)
}

func (s *FilterTestSuite) TestFilterTransactions_NoFiltersReturnsAll() {
	transactions := []models.Transaction{
		makeTransaction("A", models.CategoryFoodDrink, models.PaymentMethodCash, 100, date(2024, 3, 5, 8)),
		makeTransaction("B", models.CategoryShopping, models.PaymentMethodCash, 200, date(2024, 3, 6, 8)),
	}

	s.Len(FilterTransactions(transactions, models.TransactionFilters{}), 2)
}
