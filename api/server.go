package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/OxMarco/Cross-chain-Vault/api/handlers"
)

func Serve(
	ctx context.Context,
	addr string,
	ordersHandler *handlers.OrdersHandler,
	vaultHandler *handlers.VaultHandler,
) {
	r := mux.NewRouter()
	r.HandleFunc("/v1/domains/{domainId:[0-9]+}/orders/initiate", ordersHandler.HandleInitiate).Methods("POST")
	r.HandleFunc("/v1/domains/{domainId:[0-9]+}/orders/fill", ordersHandler.HandleFill).Methods("POST")
	r.HandleFunc("/v1/domains/{domainId:[0-9]+}/orders/claim", ordersHandler.HandleClaim).Methods("POST")
	r.HandleFunc("/v1/domains/{domainId:[0-9]+}/orders/reclaim", ordersHandler.HandleReclaim).Methods("POST")
	r.HandleFunc("/v1/domains/{domainId:[0-9]+}/orders/{orderHash}", ordersHandler.HandleStatus).Methods("GET")

	if vaultHandler != nil {
		r.HandleFunc("/v1/vault", vaultHandler.HandleVault).Methods("GET")
		r.HandleFunc("/v1/vault/accounts/{account}", vaultHandler.HandleAccount).Methods("GET")
		r.HandleFunc("/v1/vault/deposits", vaultHandler.HandleRequestDeposit).Methods("POST")
		r.HandleFunc("/v1/vault/deposits/execute", vaultHandler.HandleDeposit).Methods("POST")
		r.HandleFunc("/v1/vault/deposits/{account}", vaultHandler.HandleCancelDeposit).Methods("DELETE")
		r.HandleFunc("/v1/vault/withdrawals", vaultHandler.HandleRequestWithdrawal).Methods("POST")
		r.HandleFunc("/v1/vault/withdrawals/execute", vaultHandler.HandleWithdraw).Methods("POST")
		r.HandleFunc("/v1/vault/withdrawals/{account}", vaultHandler.HandleCancelWithdrawal).Methods("DELETE")
	}

	server := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
