package main

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/sheikh-saqib/concurrent-funds-ledger/internal/config"
	"github.com/sheikh-saqib/concurrent-funds-ledger/internal/events/kafka"
	"github.com/sheikh-saqib/concurrent-funds-ledger/internal/interfaces"
	"github.com/sheikh-saqib/concurrent-funds-ledger/internal/ledger"
	"github.com/sheikh-saqib/concurrent-funds-ledger/internal/models"
	"github.com/sheikh-saqib/concurrent-funds-ledger/internal/storage/postgres"
	"github.com/shopspring/decimal"
)

// statusCode maps a ledger status to an HTTP status.
func statusCode(status models.Status) int {
	switch status {
	case models.Success:
		return http.StatusOK
	case models.InvalidAccount, models.InvalidFreezeID:
		return http.StatusNotFound
	case models.InsufficientFunds:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	// Each response carries a correlation id for log matching.
	w.Header().Set("X-Request-Id", uuid.New().String())
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("server: failed to encode response: %v", err)
	}
}

func main() {
	cfg := config.Load()

	var opts []ledger.Option
	if len(cfg.KafkaBrokers) > 0 {
		publisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer publisher.Close()
		opts = append(opts, ledger.WithPublisher(publisher, cfg.KafkaTopic))
		log.Printf("publishing transaction events to %v topic %q", cfg.KafkaBrokers, cfg.KafkaTopic)
	}
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to open archive database: %v", err)
		}
		defer db.Close()
		opts = append(opts, ledger.WithArchive(postgres.NewArchive(db)))
		log.Println("archiving transactions to postgres")
	}

	var service interfaces.Ledger = ledger.New(opts...)

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	http.HandleFunc("/accounts", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		accountID, status := service.CreateAccount()
		writeJSON(w, http.StatusCreated, struct {
			AccountID uint64 `json:"account_id"`
			Status    string `json:"status"`
		}{accountID, status.String()})
	})

	http.HandleFunc("/accounts/balance", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		accountID, err := strconv.ParseUint(r.URL.Query().Get("account_id"), 10, 64)
		if err != nil {
			http.Error(w, "account_id is a mandatory numeric field", http.StatusBadRequest)
			return
		}

		balance, status := service.GetAccountBalance(accountID)
		writeJSON(w, statusCode(status), struct {
			AccountID uint64          `json:"account_id"`
			Balance   decimal.Decimal `json:"balance"`
			Status    string          `json:"status"`
		}{accountID, balance, status.String()})
	})

	http.HandleFunc("/accounts/deposit", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			AccountID uint64          `json:"account_id"`
			Amount    decimal.Decimal `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		status := service.AddFunds(req.AccountID, req.Amount)
		writeJSON(w, statusCode(status), struct {
			Status string `json:"status"`
		}{status.String()})
	})

	http.HandleFunc("/accounts/withdraw", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			AccountID uint64          `json:"account_id"`
			Amount    decimal.Decimal `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		status := service.RemoveFunds(req.AccountID, req.Amount)
		writeJSON(w, statusCode(status), struct {
			Status string `json:"status"`
		}{status.String()})
	})

	http.HandleFunc("/transfers", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			FromAccount uint64          `json:"from_account"`
			ToAccount   uint64          `json:"to_account"`
			Amount      decimal.Decimal `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		status := service.TransferFunds(req.FromAccount, req.ToAccount, req.Amount)
		writeJSON(w, statusCode(status), struct {
			Status string `json:"status"`
		}{status.String()})
	})

	http.HandleFunc("/freezes", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			AccountID uint64          `json:"account_id"`
			Amount    decimal.Decimal `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		freezeID, status := service.FreezeFunds(req.AccountID, req.Amount)
		writeJSON(w, statusCode(status), struct {
			FreezeID uint64 `json:"freeze_id"`
			Status   string `json:"status"`
		}{freezeID, status.String()})
	})

	http.HandleFunc("/freezes/release", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			AccountID uint64 `json:"account_id"`
			FreezeID  uint64 `json:"freeze_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		amount, status := service.UnfreezeFunds(req.AccountID, req.FreezeID)
		writeJSON(w, statusCode(status), struct {
			Amount decimal.Decimal `json:"amount"`
			Status string          `json:"status"`
		}{amount, status.String()})
	})

	http.HandleFunc("/ledger", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		writeJSON(w, http.StatusOK, service.GetLedger())
	})

	log.Printf("starting ledger server on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, nil))
}
