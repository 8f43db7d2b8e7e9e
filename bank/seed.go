package bank

import (
	"github.com/rupeeledger/go-rupeeledger/account"
	"github.com/rupeeledger/go-rupeeledger/money"
)

// SeedAccounts returns the fixture accounts every demo and test
// suite anchors on.
func SeedAccounts() []*account.Account {
	return []*account.Account{
		account.New("123456", "Rajesh Kumar", "1234", money.FromRupees(50000)),
		account.New("234567", "Priya Sharma", "2345", money.FromRupees(35000)),
		account.New("345678", "Amit Patel", "3456", money.FromRupees(72000)),
		account.New("456789", "Sunita Verma", "4567", money.FromRupees(28000)),
	}
}

// NewSeedDirectory creates a directory pre-populated with the
// fixture accounts.
func NewSeedDirectory(name string) *Directory {
	d := NewDirectory(name)
	for _, a := range SeedAccounts() {
		d.Register(a)
	}
	return d
}
