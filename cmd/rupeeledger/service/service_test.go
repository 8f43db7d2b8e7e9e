package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rupeeledger/go-rupeeledger/auth"
	"github.com/rupeeledger/go-rupeeledger/bank"
)

func newTestServer() *httptest.Server {
	dir := bank.NewSeedDirectory("SBI Bank")
	authenticator := auth.NewAuthenticator(dir, 3, auth.DefaultLockout)
	return httptest.NewServer(NewHandler(NewService(dir, authenticator)))
}

func postJSON(t *testing.T, url string, body interface{}) (*http.Response, map[string]interface{}) {
	b, err := json.Marshal(body)
	assert.Nil(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	assert.Nil(t, err)

	var out map[string]interface{}
	if resp.StatusCode != http.StatusNoContent {
		json.NewDecoder(resp.Body).Decode(&out)
	}
	resp.Body.Close()
	return resp, out
}

func login(t *testing.T, srv *httptest.Server, id, credential string) string {
	resp, out := postJSON(t, srv.URL+"/bank/login", map[string]string{
		"account_id": id,
		"credential": credential,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := out["token"].(string)
	assert.NotEqual(t, "", token)
	return token
}

func TestLoginAndDeposit(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	token := login(t, srv, "123456", "1234")

	resp, out := postJSON(t, srv.URL+"/bank/deposit", map[string]interface{}{
		"token":  token,
		"amount": 50000, // ₹500 in paise
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(5050000), out["balance"])
	assert.Equal(t, "₹50500.00", out["display"])
}

func TestLoginFailure(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	// unknown id and wrong credential fail with the same status
	resp, _ := postJSON(t, srv.URL+"/bank/login", map[string]string{
		"account_id": "000000", "credential": "1234",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = postJSON(t, srv.URL+"/bank/login", map[string]string{
		"account_id": "123456", "credential": "9999",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLockoutOverHTTP(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	for i := 0; i < 3; i++ {
		resp, _ := postJSON(t, srv.URL+"/bank/login", map[string]string{
			"account_id": "234567", "credential": "0000",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}

	// locked now, even with the right credential
	resp, _ := postJSON(t, srv.URL+"/bank/login", map[string]string{
		"account_id": "234567", "credential": "2345",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// other identities are unaffected
	login(t, srv, "123456", "1234")
}

func TestWithdrawInsufficient(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	token := login(t, srv, "234567", "2345")

	resp, out := postJSON(t, srv.URL+"/bank/withdraw", map[string]interface{}{
		"token":  token,
		"amount": 4000000, // ₹40,000 against a ₹35,000 balance
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, out["error"], "insufficient funds")
}

func TestTransfer(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	token := login(t, srv, "123456", "1234")

	resp, out := postJSON(t, srv.URL+"/bank/transfer", map[string]interface{}{
		"token":  token,
		"to":     "234567",
		"amount": 30000, // ₹300
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(4970000), out["balance"])

	// transfer to an unknown destination
	resp, _ = postJSON(t, srv.URL+"/bank/transfer", map[string]interface{}{
		"token": token, "to": "000000", "amount": 100,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// transfer to self
	resp, _ = postJSON(t, srv.URL+"/bank/transfer", map[string]interface{}{
		"token": token, "to": "123456", "amount": 100,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHistory(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	token := login(t, srv, "123456", "1234")
	postJSON(t, srv.URL+"/bank/deposit", map[string]interface{}{"token": token, "amount": 50000})

	resp, err := http.Get(srv.URL + "/bank/account/history?token=" + token)
	assert.Nil(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&entries)
	resp.Body.Close()
	assert.Equal(t, 2, len(entries))
	assert.Equal(t, "deposit", entries[1]["kind"])

	// filtered by kind
	resp, err = http.Get(srv.URL + "/bank/account/history?token=" + token + "&kind=withdrawal")
	assert.Nil(t, err)
	entries = nil
	json.NewDecoder(resp.Body).Decode(&entries)
	resp.Body.Close()
	assert.Equal(t, 0, len(entries))
}

func TestListAccounts(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	// listing requires a valid session
	resp, err := http.Get(srv.URL + "/bank/accounts?token=bogus")
	assert.Nil(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token := login(t, srv, "123456", "1234")

	resp, err = http.Get(srv.URL + "/bank/accounts?token=" + token)
	assert.Nil(t, err)
	var views []map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&views)
	resp.Body.Close()
	assert.Equal(t, 4, len(views))
	// sorted by id at the boundary
	assert.Equal(t, "123456", views[0]["id"])

	resp, err = http.Get(srv.URL + "/bank/accounts?token=" + token + "&holder=sharma")
	assert.Nil(t, err)
	views = nil
	json.NewDecoder(resp.Body).Decode(&views)
	resp.Body.Close()
	assert.Equal(t, 1, len(views))
	assert.Equal(t, "234567", views[0]["id"])
}

func TestListAccountsBadMinBalance(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	token := login(t, srv, "123456", "1234")

	// non-numeric, negative and overflowing amounts are all rejected
	for _, min := range []string{"abc", "-5", "99999999999999999999"} {
		resp, err := http.Get(srv.URL + "/bank/accounts?token=" + token + "&min_balance=" + min)
		assert.Nil(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}

	// a valid amount still filters
	resp, err := http.Get(srv.URL + "/bank/accounts?token=" + token + "&min_balance=4000000")
	assert.Nil(t, err)
	var views []map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&views)
	resp.Body.Close()
	assert.Equal(t, 2, len(views))
}

func TestChangeCredential(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	token := login(t, srv, "456789", "4567")

	resp, _ := postJSON(t, srv.URL+"/bank/credential", map[string]string{
		"token": token, "old": "0000", "new": "5678",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = postJSON(t, srv.URL+"/bank/credential", map[string]string{
		"token": token, "old": "4567", "new": "5678",
	})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// Logins and token resolutions for the same identity may run
// concurrently in the server deployment; the session state they share
// must stay synchronized.
func TestConcurrentLoginAndResolve(t *testing.T) {
	dir := bank.NewSeedDirectory("SBI Bank")
	svc := NewService(dir, auth.NewAuthenticator(dir, 3, auth.DefaultLockout))

	token, err := svc.Login("123456", "1234")
	assert.Nil(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			svc.Login("123456", "1234")
		}()
		go func() {
			defer wg.Done()
			svc.Resolve(token)
		}()
	}
	wg.Wait()

	a, err := svc.Resolve(token)
	assert.Nil(t, err)
	assert.Equal(t, "123456", a.ID())
}

func TestLogoutInvalidatesToken(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	token := login(t, srv, "345678", "3456")

	resp, _ := postJSON(t, srv.URL+"/bank/logout", map[string]string{"token": token})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = postJSON(t, srv.URL+"/bank/deposit", map[string]interface{}{
		"token": token, "amount": 100,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
