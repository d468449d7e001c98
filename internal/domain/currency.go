package domain

// Currency is an ISO-4217 style code from the closed set of corridors
// this ledger serves.
type Currency string

const (
	USD Currency = "USD"
	SGD Currency = "SGD"
	PHP Currency = "PHP"
	MYR Currency = "MYR"
	IDR Currency = "IDR"
	THB Currency = "THB"
	VND Currency = "VND"
)

// Currencies returns every supported currency.
func Currencies() []Currency {
	return []Currency{USD, SGD, PHP, MYR, IDR, THB, VND}
}

// Valid reports whether c is one of the supported currencies.
func (c Currency) Valid() bool {
	switch c {
	case USD, SGD, PHP, MYR, IDR, THB, VND:
		return true
	}
	return false
}
