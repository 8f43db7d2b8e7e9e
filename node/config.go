package node

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// SeedAccount describes one account to pre-populate the directory
// with at startup.
type SeedAccount struct {
	ID         string
	Holder     string
	Credential string
	// opening balance in whole rupees
	BalanceRupees int64
}

type Config struct {
	// display name of the bank
	BankName string
	// listen port of the HTTP service
	Port string
	// database backend, "memdb" or "boltdb"
	DBBackend string
	// database file path, required for boltdb
	DBPath string
	// consecutive failed logins before lockout
	MaxLoginAttempts int
	// how long a locked session stays locked
	LockoutDuration time.Duration
	// accounts to register at startup; empty means the built-in
	// seed fixtures
	Accounts []SeedAccount
}

func NewConfig(v *viper.Viper) (*Config, error) {
	if v.GetString("bank_name") == "" {
		return nil, errors.New("bank name is missing")
	}
	if v.GetString("port") == "" {
		return nil, errors.New("service port is missing")
	}

	backend := v.GetString("db_backend")
	if backend == "" {
		backend = "memdb"
	}
	if backend != "memdb" && backend != "boltdb" {
		return nil, fmt.Errorf("unknown db backend: %s", backend)
	}
	if backend == "boltdb" && v.GetString("db_path") == "" {
		return nil, errors.New("db path is missing")
	}

	accounts, err := parseAccounts(v.Get("accounts"))
	if err != nil {
		return nil, fmt.Errorf("parse seed accounts failed: %v", err)
	}

	c := Config{
		BankName:         v.GetString("bank_name"),
		Port:             v.GetString("port"),
		DBBackend:        backend,
		DBPath:           v.GetString("db_path"),
		MaxLoginAttempts: v.GetInt("max_login_attempts"),
		LockoutDuration:  v.GetDuration("lockout_duration"),
		Accounts:         accounts,
	}

	return &c, nil
}

func parseAccounts(raw interface{}) ([]SeedAccount, error) {
	if raw == nil {
		return nil, nil
	}

	items, ok := raw.([]interface{})
	if !ok {
		return nil, errors.New("accounts is not a list")
	}

	var accounts []SeedAccount
	for _, item := range items {
		fields := make(map[string]interface{})
		switch m := item.(type) {
		case map[string]interface{}:
			fields = m
		case map[interface{}]interface{}:
			for k, v := range m {
				fields[fmt.Sprintf("%v", k)] = v
			}
		default:
			return nil, errors.New("account entry is not a map")
		}

		sa := SeedAccount{}
		if id, ok := fields["id"]; ok {
			sa.ID = fmt.Sprintf("%v", id)
		}
		if sa.ID == "" {
			return nil, errors.New("account id is missing")
		}
		if holder, ok := fields["holder"]; ok {
			sa.Holder = fmt.Sprintf("%v", holder)
		}
		if cred, ok := fields["credential"]; ok {
			sa.Credential = fmt.Sprintf("%v", cred)
		}
		if bal, ok := fields["balance"]; ok {
			switch b := bal.(type) {
			case int:
				sa.BalanceRupees = int64(b)
			case int64:
				sa.BalanceRupees = b
			case float64:
				sa.BalanceRupees = int64(b)
			default:
				return nil, fmt.Errorf("account %s balance is not a number", sa.ID)
			}
		}
		accounts = append(accounts, sa)
	}

	return accounts, nil
}
