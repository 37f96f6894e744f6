package services

import (
	"math/rand"
	"time"

	"spendlens/internal/models"

	"github.com/brianvoe/gofakeit/v7"
)

// merchantEntry pairs a plausible transaction title with its category and the
// cent-amount range it usually falls in.
type merchantEntry struct {
	title     string
	category  string
	minCents  int64
	maxCents  int64
	locatable bool
}

type transactionGenerator struct {
	merchantPool []merchantEntry
	rng          *rand.Rand
}

// NewTransactionGenerator creates a new transaction generator for dev
// seeding.
func NewTransactionGenerator() TransactionGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &transactionGenerator{
		merchantPool: initializeMerchantPool(),
		rng:          rand.New(source),
	}
}

func initializeMerchantPool() []merchantEntry {
	return []merchantEntry{
		// Food & drink
		{"Starbucks", models.CategoryFoodDrink, 3000, 6500, true},
		{"McDonald's", models.CategoryFoodDrink, 2500, 8000, true},
		{"Cha Chaan Teng lunch", models.CategoryFoodDrink, 4500, 9000, true},
		{"Dim sum", models.CategoryFoodDrink, 8000, 30000, true},
		{"Wellcome groceries", models.CategoryFoodDrink, 5000, 40000, true},
		{"ParknShop groceries", models.CategoryFoodDrink, 5000, 40000, true},
		{"Bubble tea", models.CategoryFoodDrink, 2000, 4500, true},

		// Transportation
		{"MTR fare", models.CategoryTransportation, 500, 2800, false},
		{"Bus fare", models.CategoryTransportation, 400, 1500, false},
		{"Taxi", models.CategoryTransportation, 3000, 15000, false},
		{"Star Ferry", models.CategoryTransportation, 300, 600, false},
		{"Uber", models.CategoryTransportation, 4000, 20000, false},

		// Shopping
		{"Uniqlo", models.CategoryShopping, 10000, 60000, true},
		{"Don Don Donki", models.CategoryShopping, 5000, 30000, true},
		{"HKTVmall order", models.CategoryShopping, 8000, 50000, false},
		{"Apple Store", models.CategoryShopping, 50000, 200000, true},

		// Entertainment
		{"Netflix", models.CategoryEntertainment, 7800, 7800, false},
		{"Spotify", models.CategoryEntertainment, 5800, 5800, false},
		{"Cinema tickets", models.CategoryEntertainment, 9000, 26000, true},
		{"Karaoke night", models.CategoryEntertainment, 15000, 40000, true},

		// Bills & utilities
		{"Electricity bill", models.CategoryBillsUtilities, 30000, 120000, false},
		{"Mobile plan", models.CategoryBillsUtilities, 9800, 29800, false},
		{"Broadband", models.CategoryBillsUtilities, 14800, 24800, false},

		// Healthcare
		{"Clinic visit", models.CategoryHealthcare, 25000, 60000, true},
		{"Pharmacy", models.CategoryHealthcare, 3000, 20000, true},

		// Fitness
		{"Gym membership", models.CategoryFitness, 38000, 68000, true},
		{"Yoga class", models.CategoryFitness, 15000, 25000, true},

		// Other
		{"Gift", models.CategoryOther, 10000, 50000, false},
		{"Stationery", models.CategoryOther, 2000, 10000, true},
	}
}

// paymentMethodWeights skews generated data toward the methods that dominate
// day-to-day spending.
var paymentMethodWeights = []struct {
	method string
	weight int
}{
	{models.PaymentMethodOctopus, 30},
	{models.PaymentMethodCreditCard, 25},
	{models.PaymentMethodAlipayHK, 12},
	{models.PaymentMethodAlipay, 5},
	{models.PaymentMethodPayMe, 10},
	{models.PaymentMethodFPS, 8},
	{models.PaymentMethodCash, 10},
}

// Generate produces count sample transactions with dates uniformly spread
// over [from, to).
func (g *transactionGenerator) Generate(count int, from, to time.Time) []models.Transaction {
	if count <= 0 || !to.After(from) {
		return nil
	}

	span := to.Sub(from)
	transactions := make([]models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		entry := g.merchantPool[g.rng.Intn(len(g.merchantPool))]

		transaction := models.Transaction{
			Title:         entry.title,
			AmountCents:   models.MoneyFromCents(g.amountBetween(entry.minCents, entry.maxCents)),
			Category:      entry.category,
			PaymentMethod: g.pickPaymentMethod(),
			Date:          from.Add(time.Duration(g.rng.Int63n(int64(span)))),
		}

		if entry.locatable {
			transaction.Location = gofakeit.City()
			transaction.Address = gofakeit.Street()
		}

		transactions = append(transactions, transaction)
	}

	return transactions
}

func (g *transactionGenerator) amountBetween(min, max int64) int64 {
	if max <= min {
		return min
	}
	return min + g.rng.Int63n(max-min+1)
}

func (g *transactionGenerator) pickPaymentMethod() string {
	total := 0
	for _, entry := range paymentMethodWeights {
		total += entry.weight
	}

	pick := g.rng.Intn(total)
	for _, entry := range paymentMethodWeights {
		pick -= entry.weight
		if pick < 0 {
			return entry.method
		}
	}

	return models.PaymentMethodCash
}
