package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rupeeledger/go-rupeeledger/bank"
)

func newTestAuthenticator(lockout time.Duration) *Authenticator {
	return NewAuthenticator(bank.NewSeedDirectory("SBI Bank"), 3, lockout)
}

func TestLoginSuccess(t *testing.T) {
	au := newTestAuthenticator(DefaultLockout)
	s := au.NewSession()

	a, err := au.Login(s, "123456", "1234")
	assert.Nil(t, err)
	assert.Equal(t, "123456", a.ID())
	assert.Equal(t, LoggedIn, s.State())
	assert.Equal(t, "123456", s.AccountID())
	assert.Equal(t, 0, s.FailedAttempts())
}

func TestLoginFailure(t *testing.T) {
	au := newTestAuthenticator(DefaultLockout)
	s := au.NewSession()

	a, err := au.Login(s, "123456", "9999")
	assert.Nil(t, a)
	assert.Equal(t, bank.ErrAuthenticationFailed, err)
	assert.Equal(t, LoggedOut, s.State())
	assert.Equal(t, 1, s.FailedAttempts())

	// a success resets the counter
	_, err = au.Login(s, "123456", "1234")
	assert.Nil(t, err)
	assert.Equal(t, 0, s.FailedAttempts())
}

func TestLockout(t *testing.T) {
	au := newTestAuthenticator(DefaultLockout)
	s := au.NewSession()

	for i := 0; i < 3; i++ {
		_, err := au.Login(s, "123456", "9999")
		assert.Equal(t, bank.ErrAuthenticationFailed, err)
	}
	assert.Equal(t, Locked, s.State())
	assert.False(t, s.LockedUntil().IsZero())

	// while locked, even the right credential is rejected without
	// consulting the directory
	a, err := au.Login(s, "123456", "1234")
	assert.Nil(t, a)
	assert.Equal(t, ErrLocked, err)
}

func TestLockoutExpiry(t *testing.T) {
	au := newTestAuthenticator(30 * time.Millisecond)
	s := au.NewSession()

	for i := 0; i < 3; i++ {
		au.Login(s, "123456", "9999")
	}
	assert.Equal(t, Locked, s.State())

	time.Sleep(60 * time.Millisecond)

	// the deadline passed, so the counter resets and authentication
	// proceeds normally
	a, err := au.Login(s, "123456", "1234")
	assert.Nil(t, err)
	assert.Equal(t, "123456", a.ID())
	assert.Equal(t, LoggedIn, s.State())
	assert.Equal(t, 0, s.FailedAttempts())
}

func TestLockoutExpiryResetsCounter(t *testing.T) {
	au := newTestAuthenticator(30 * time.Millisecond)
	s := au.NewSession()

	for i := 0; i < 3; i++ {
		au.Login(s, "123456", "9999")
	}
	time.Sleep(60 * time.Millisecond)

	// a failure after expiry counts from zero again
	_, err := au.Login(s, "123456", "9999")
	assert.Equal(t, bank.ErrAuthenticationFailed, err)
	assert.Equal(t, 1, s.FailedAttempts())
	assert.Equal(t, LoggedOut, s.State())
}

func TestLogout(t *testing.T) {
	au := newTestAuthenticator(DefaultLockout)
	s := au.NewSession()

	au.Login(s, "123456", "9999")
	au.Login(s, "123456", "1234")
	assert.Equal(t, LoggedIn, s.State())

	au.Logout(s)
	assert.Equal(t, LoggedOut, s.State())
	assert.Equal(t, "", s.AccountID())
	assert.Equal(t, 0, s.FailedAttempts())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "logged out", LoggedOut.String())
	assert.Equal(t, "logged in", LoggedIn.String())
	assert.Equal(t, "locked", Locked.String())
}
