package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rupeeledger/go-rupeeledger/account"
	"github.com/rupeeledger/go-rupeeledger/money"
)

func TestRegister(t *testing.T) {
	d := NewDirectory("SBI Bank")
	a := account.New("123456", "Rajesh Kumar", "1234", money.FromRupees(50000))

	assert.True(t, d.Register(a))
	assert.Equal(t, 1, d.Size())

	// duplicate ids are rejected without effect
	dup := account.New("123456", "Someone Else", "0000", money.FromRupees(1))
	assert.False(t, d.Register(dup))
	assert.Equal(t, 1, d.Size())
	assert.Equal(t, "Rajesh Kumar", d.Lookup("123456").Holder())
}

func TestLookup(t *testing.T) {
	d := NewSeedDirectory("SBI Bank")

	a := d.Lookup("123456")
	assert.NotNil(t, a)
	assert.Equal(t, "Rajesh Kumar", a.Holder())

	assert.Nil(t, d.Lookup("000000"))
}

func TestAuthenticate(t *testing.T) {
	d := NewSeedDirectory("SBI Bank")

	a, err := d.Authenticate("123456", "1234")
	assert.Nil(t, err)
	assert.Equal(t, "123456", a.ID())
}

// An unknown id and a wrong credential must fail indistinguishably.
func TestAuthenticateOpaqueFailure(t *testing.T) {
	d := NewSeedDirectory("SBI Bank")

	a1, err1 := d.Authenticate("000000", "1234")
	a2, err2 := d.Authenticate("123456", "9999")

	assert.Nil(t, a1)
	assert.Nil(t, a2)
	assert.Equal(t, ErrAuthenticationFailed, err1)
	assert.Equal(t, ErrAuthenticationFailed, err2)
	assert.Equal(t, err1.Error(), err2.Error())
}

func TestSeedFixtures(t *testing.T) {
	d := NewSeedDirectory("SBI Bank")
	assert.Equal(t, "SBI Bank", d.Name())
	assert.Equal(t, 4, d.Size())

	assert.Equal(t, money.FromRupees(50000), d.Lookup("123456").Balance())
	assert.Equal(t, money.FromRupees(35000), d.Lookup("234567").Balance())
	assert.Equal(t, money.FromRupees(72000), d.Lookup("345678").Balance())
	assert.Equal(t, money.FromRupees(28000), d.Lookup("456789").Balance())
}

func TestFind(t *testing.T) {
	d := NewSeedDirectory("SBI Bank")

	rich := d.Find(func(a *account.Account) bool {
		return a.Balance() >= money.FromRupees(50000)
	})
	assert.Equal(t, 2, len(rich))

	none := d.Find(func(a *account.Account) bool { return false })
	assert.Equal(t, 0, len(none))

	assert.Equal(t, 4, len(d.All()))
}

func TestSearchByHolder(t *testing.T) {
	d := NewSeedDirectory("SBI Bank")

	hits := d.SearchByHolder("sharma")
	assert.Equal(t, 1, len(hits))
	assert.Equal(t, "234567", hits[0].ID())

	assert.Equal(t, 0, len(d.SearchByHolder("nobody")))
}

func TestWithBalanceAbove(t *testing.T) {
	d := NewSeedDirectory("SBI Bank")

	hits := d.WithBalanceAbove(money.FromRupees(40000))
	assert.Equal(t, 2, len(hits))

	// strictly above, not at
	assert.Equal(t, 1, len(d.WithBalanceAbove(money.FromRupees(50000))))
}
