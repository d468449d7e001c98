package main

import (
	"log"
	"net/http"

	"github.com/marlonbarreto-git/tejaco-ledger/internal/api"
	"github.com/marlonbarreto-git/tejaco-ledger/internal/config"
	"github.com/marlonbarreto-git/tejaco-ledger/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var ledgerStore store.Store
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		pgStore, err := store.NewPostgresStore(cfg.DBSource)
		if err != nil {
			log.Fatalf("Unable to connect to database: %v", err)
		}
		defer pgStore.Close()
		ledgerStore = pgStore
	default:
		users, transactions := store.SeedData()
		ledgerStore = store.NewMemoryStore(users, transactions)
	}

	handler := api.NewHandler(ledgerStore)
	r := api.NewRouter(handler)

	log.Printf("Server starting on :%s (%s store, %s)", cfg.Port, cfg.StoreBackend, cfg.Env)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
