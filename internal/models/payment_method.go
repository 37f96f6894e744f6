package models

// Payment methods
const (
	PaymentMethodOctopus    = "OCTOPUS"
	PaymentMethodCreditCard = "CREDIT_CARD"
	PaymentMethodAlipay     = "ALIPAY"
	PaymentMethodAlipayHK   = "ALIPAY_HK"
	PaymentMethodPayMe      = "PAYME"
	PaymentMethodFPS        = "FPS"
	PaymentMethodCash       = "CASH"
)

// AllPaymentMethods returns every valid payment method in canonical order,
// which is also the tiebreak order for equal-amount breakdown buckets.
func AllPaymentMethods() []string {
	return []string{
		PaymentMethodOctopus,
		PaymentMethodCreditCard,
		PaymentMethodAlipay,
		PaymentMethodAlipayHK,
		PaymentMethodPayMe,
		PaymentMethodFPS,
		PaymentMethodCash,
	}
}

var paymentMethodDisplayNames = map[string]string{
	PaymentMethodOctopus:    "Octopus",
	PaymentMethodCreditCard: "Credit Card",
	PaymentMethodAlipay:     "Alipay",
	PaymentMethodAlipayHK:   "AlipayHK",
	PaymentMethodPayMe:      "PayMe",
	PaymentMethodFPS:        "FPS",
	PaymentMethodCash:       "Cash",
}

var paymentMethodOrder = func() map[string]int {
	order := make(map[string]int, len(AllPaymentMethods()))
	for i, method := range AllPaymentMethods() {
		order[method] = i
	}
	return order
}()

// IsValidPaymentMethod checks if a payment method string is valid
func IsValidPaymentMethod(method string) bool {
	_, ok := paymentMethodOrder[method]
	return ok
}

// PaymentMethodDisplayName returns the human-readable name for a payment
// method.
func PaymentMethodDisplayName(method string) string {
	if name, ok := paymentMethodDisplayNames[method]; ok {
		return name
	}
	return method
}

// PaymentMethodRank returns the canonical position of a payment method, with
// unknown methods sorting last.
func PaymentMethodRank(method string) int {
	if rank, ok := paymentMethodOrder[method]; ok {
		return rank
	}
	return len(paymentMethodOrder)
}
