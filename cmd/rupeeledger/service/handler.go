package service

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/emicklei/go-restful"

	"github.com/rupeeledger/go-rupeeledger/account"
	"github.com/rupeeledger/go-rupeeledger/auth"
	"github.com/rupeeledger/go-rupeeledger/bank"
	"github.com/rupeeledger/go-rupeeledger/ledger"
	"github.com/rupeeledger/go-rupeeledger/money"
)

type loginRequest struct {
	AccountID  string `json:"account_id"`
	Credential string `json:"credential"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type amountRequest struct {
	Token string `json:"token"`
	// amount in paise
	Amount int64 `json:"amount"`
	To     string `json:"to,omitempty"`
}

type credentialRequest struct {
	Token string `json:"token"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

type accountView struct {
	ID      string `json:"id"`
	Holder  string `json:"holder"`
	Balance int64  `json:"balance"`
	Display string `json:"display"`
}

type entryView struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Amount       int64  `json:"amount"`
	Counterparty string `json:"counterparty"`
	Timestamp    string `json:"timestamp"`
	Note         string `json:"note"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func viewAccount(a *account.Account) accountView {
	b := a.Balance()
	return accountView{
		ID:      a.ID(),
		Holder:  a.Holder(),
		Balance: int64(b),
		Display: b.String(),
	}
}

func viewEntries(entries []ledger.Entry) []entryView {
	out := make([]entryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryView{
			ID:           e.ID,
			Kind:         e.Kind.String(),
			Amount:       int64(e.Amount),
			Counterparty: e.CounterpartyID,
			Timestamp:    e.Timestamp.Format("2006-01-02 15:04:05"),
			Note:         e.Note,
		})
	}
	return out
}

// NewHandler creates a customized http handler over the ledger core.
func NewHandler(svc *Service) http.Handler {
	h := &handler{svc: svc}

	ws := new(restful.WebService)
	ws.Path("/bank").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)
	ws.Route(ws.POST("/login").To(h.login))
	ws.Route(ws.POST("/logout").To(h.logout))
	ws.Route(ws.GET("/accounts").To(h.listAccounts))
	ws.Route(ws.GET("/account").To(h.showAccount))
	ws.Route(ws.GET("/account/history").To(h.showHistory))
	ws.Route(ws.POST("/deposit").To(h.deposit))
	ws.Route(ws.POST("/withdraw").To(h.withdraw))
	ws.Route(ws.POST("/transfer").To(h.transfer))
	ws.Route(ws.POST("/credential").To(h.changeCredential))

	container := restful.NewContainer()
	container.Add(ws)

	return container
}

type handler struct {
	svc *Service
}

func writeError(response *restful.Response, status int, err error) {
	response.WriteHeaderAndEntity(status, errorResponse{Error: err.Error()})
}

// statusFor maps core errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, account.ErrInvalidAmount), errors.Is(err, account.ErrSameAccount):
		return http.StatusBadRequest
	case account.IsInsufficientFunds(err):
		return http.StatusConflict
	case errors.Is(err, bank.ErrAuthenticationFailed), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrLocked):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func (h *handler) login(request *restful.Request, response *restful.Response) {
	var req loginRequest
	if err := request.ReadEntity(&req); err != nil {
		writeError(response, http.StatusBadRequest, err)
		return
	}

	token, err := h.svc.Login(req.AccountID, req.Credential)
	if err != nil {
		writeError(response, statusFor(err), err)
		return
	}
	response.WriteEntity(loginResponse{Token: token})
}

func (h *handler) logout(request *restful.Request, response *restful.Response) {
	var req amountRequest
	if err := request.ReadEntity(&req); err != nil {
		writeError(response, http.StatusBadRequest, err)
		return
	}
	h.svc.Logout(req.Token)
	response.WriteHeader(http.StatusNoContent)
}

// listAccounts supports the search features: optional holder and
// min_balance query parameters narrow the result. The caller must
// hold a valid session.
func (h *handler) listAccounts(request *restful.Request, response *restful.Response) {
	if _, err := h.svc.Resolve(request.QueryParameter("token")); err != nil {
		writeError(response, statusFor(err), err)
		return
	}

	dir := h.svc.Directory()
	var accounts []*account.Account
	if holder := request.QueryParameter("holder"); holder != "" {
		accounts = dir.SearchByHolder(holder)
	} else if min := request.QueryParameter("min_balance"); min != "" {
		paise, err := parsePaise(min)
		if err != nil {
			writeError(response, http.StatusBadRequest, err)
			return
		}
		accounts = dir.WithBalanceAbove(paise)
	} else {
		accounts = dir.All()
	}

	views := make([]accountView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, viewAccount(a))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	response.WriteEntity(views)
}

func (h *handler) showAccount(request *restful.Request, response *restful.Response) {
	a, err := h.svc.Resolve(request.QueryParameter("token"))
	if err != nil {
		writeError(response, statusFor(err), err)
		return
	}
	response.WriteEntity(viewAccount(a))
}

func (h *handler) showHistory(request *restful.Request, response *restful.Response) {
	a, err := h.svc.Resolve(request.QueryParameter("token"))
	if err != nil {
		writeError(response, statusFor(err), err)
		return
	}

	var entries []ledger.Entry
	if kind, ok := parseKind(request.QueryParameter("kind")); ok {
		entries = a.HistoryByKind(kind)
	} else {
		entries = a.History()
	}
	response.WriteEntity(viewEntries(entries))
}

func (h *handler) deposit(request *restful.Request, response *restful.Response) {
	var req amountRequest
	if err := request.ReadEntity(&req); err != nil {
		writeError(response, http.StatusBadRequest, err)
		return
	}

	a, err := h.svc.Resolve(req.Token)
	if err != nil {
		writeError(response, statusFor(err), err)
		return
	}
	if _, err := a.Deposit(money.Money(req.Amount)); err != nil {
		writeError(response, statusFor(err), err)
		return
	}
	response.WriteEntity(viewAccount(a))
}

func (h *handler) withdraw(request *restful.Request, response *restful.Response) {
	var req amountRequest
	if err := request.ReadEntity(&req); err != nil {
		writeError(response, http.StatusBadRequest, err)
		return
	}

	a, err := h.svc.Resolve(req.Token)
	if err != nil {
		writeError(response, statusFor(err), err)
		return
	}
	if _, err := a.Withdraw(money.Money(req.Amount)); err != nil {
		writeError(response, statusFor(err), err)
		return
	}
	response.WriteEntity(viewAccount(a))
}

func (h *handler) transfer(request *restful.Request, response *restful.Response) {
	var req amountRequest
	if err := request.ReadEntity(&req); err != nil {
		writeError(response, http.StatusBadRequest, err)
		return
	}

	a, err := h.svc.Resolve(req.Token)
	if err != nil {
		writeError(response, statusFor(err), err)
		return
	}
	to := h.svc.Directory().Lookup(req.To)
	if to == nil {
		writeError(response, http.StatusNotFound, errors.New("destination account not found"))
		return
	}
	if _, _, err := a.Transfer(to, money.Money(req.Amount)); err != nil {
		writeError(response, statusFor(err), err)
		return
	}
	response.WriteEntity(viewAccount(a))
}

func (h *handler) changeCredential(request *restful.Request, response *restful.Response) {
	var req credentialRequest
	if err := request.ReadEntity(&req); err != nil {
		writeError(response, http.StatusBadRequest, err)
		return
	}

	a, err := h.svc.Resolve(req.Token)
	if err != nil {
		writeError(response, statusFor(err), err)
		return
	}
	if !a.ChangeCredential(req.Old, req.New) {
		writeError(response, http.StatusForbidden, errors.New("credential mismatch"))
		return
	}
	response.WriteHeader(http.StatusNoContent)
}

func parseKind(s string) (ledger.EntryKind, bool) {
	switch s {
	case "deposit":
		return ledger.Deposit, true
	case "withdrawal":
		return ledger.Withdrawal, true
	case "transfer_out":
		return ledger.TransferOut, true
	case "transfer_in":
		return ledger.TransferIn, true
	}
	return 0, false
}

func parsePaise(s string) (money.Money, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0, errors.New("min_balance must be a non-negative paise amount")
	}
	return money.Money(v), nil
}
