// Copyright 2026 The go-rupeeledger Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package app

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rupeeledger/go-rupeeledger/account"
	"github.com/rupeeledger/go-rupeeledger/auth"
	"github.com/rupeeledger/go-rupeeledger/bank"
	"github.com/rupeeledger/go-rupeeledger/cmd/rupeeledger/service"
	"github.com/rupeeledger/go-rupeeledger/db"
	"github.com/rupeeledger/go-rupeeledger/db/memdb"
	"github.com/rupeeledger/go-rupeeledger/log"
	"github.com/rupeeledger/go-rupeeledger/money"
	"github.com/rupeeledger/go-rupeeledger/node"
	"github.com/rupeeledger/go-rupeeledger/store"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bank HTTP service",
	Long:  `Start the HTTP service with the directory restored from the database or seeded from config`,
	Run: func(cmd *cobra.Command, args []string) {
		if cfgFile == "" {
			log.Fatal(errors.New("config file not provided"))
		}
		v := viper.New()
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		c, err := node.NewConfig(v)
		if err != nil {
			log.Fatal(err)
		}

		var database db.Database
		switch c.DBBackend {
		case "boltdb":
			database = db.NewBoltDB(c.DBPath)
		default:
			database = memdb.New()
		}
		defer database.Close()
		st := store.New(database)

		dir, err := st.LoadDirectory(c.BankName)
		if err != nil {
			log.Fatalf("restore directory failed: %v", err)
		}
		if dir.Size() > 0 {
			log.Infow("directory restored from checkpoint", "accounts", dir.Size())
		} else {
			dir = seedDirectory(c)
			log.Infow("directory seeded", "accounts", dir.Size())
		}

		authenticator := auth.NewAuthenticator(dir, c.MaxLoginAttempts, c.LockoutDuration)
		svc := service.NewService(dir, authenticator)

		server := &http.Server{
			Addr:    ":" + c.Port,
			Handler: service.NewHandler(svc),
		}

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-stop
			if err := st.Checkpoint(dir); err != nil {
				log.Errorf("checkpoint directory failed: %v", err)
			}
			server.Close()
		}()

		log.Infow("bank service listening", "bank", c.BankName, "port", c.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	},
}

// seedDirectory builds the startup directory from config, falling
// back to the built-in fixtures when no accounts are configured.
func seedDirectory(c *node.Config) *bank.Directory {
	if len(c.Accounts) == 0 {
		return bank.NewSeedDirectory(c.BankName)
	}
	dir := bank.NewDirectory(c.BankName)
	for _, sa := range c.Accounts {
		a := account.New(sa.ID, sa.Holder, sa.Credential, money.FromRupees(sa.BalanceRupees))
		if !dir.Register(a) {
			log.Fatalf("duplicate seed account id: %s", sa.ID)
		}
	}
	return dir
}

var cfgFile string

func init() {
	startCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "path to the yaml config file")
	startCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(startCmd)
}
