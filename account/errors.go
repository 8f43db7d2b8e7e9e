package account

import (
	"errors"
	"fmt"

	"github.com/rupeeledger/go-rupeeledger/money"
)

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrSameAccount     = errors.New("source and destination are the same account")
	ErrBalanceOverflow = errors.New("account balance overflow")
)

// InsufficientFundsError reports a withdrawal or transfer that
// exceeds the available balance. It carries both amounts so the
// caller can surface them.
type InsufficientFundsError struct {
	Requested money.Money
	Available money.Money
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: requested %s, available %s", e.Requested, e.Available)
}

// IsInsufficientFunds reports whether the error is an
// InsufficientFundsError.
func IsInsufficientFunds(err error) bool {
	var ife *InsufficientFundsError
	return errors.As(err, &ife)
}
