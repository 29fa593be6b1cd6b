package http

import (
	"context"
	"errors"
	"net/http"
)

type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

func loggingMiddleware(logger Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.InfoContext(
			r.Context(),
			"request",
			"method", r.Method,
			"path", r.URL.Path,
		)

		next.ServeHTTP(w, r)
	})
}

type Server struct {
	httpServer     *http.Server
	accountHandler Handler
	logger         Logger
}

func NewServer(
	accounts AccountManager,
	balances BalanceProcessor,
	logger Logger,
	config Config,
) *Server {
	accountHandler := NewHandler(accounts, balances, logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/accounts", accountHandler.ListAccounts)
	mux.HandleFunc("POST /api/accounts", accountHandler.RegisterAccount)
	mux.HandleFunc("GET /api/accounts/{id}", accountHandler.GetAccount)
	mux.HandleFunc("PUT /api/accounts/{id}", accountHandler.EditAccount)
	mux.HandleFunc("DELETE /api/accounts/{id}", accountHandler.DeleteAccount)
	mux.HandleFunc("GET /api/accounts/{id}/balance", accountHandler.GetBalance)
	mux.HandleFunc("POST /api/accounts/{id}/deposit", accountHandler.Deposit)
	mux.HandleFunc("POST /api/accounts/{id}/withdraw", accountHandler.Withdraw)

	handler := loggingMiddleware(logger, mux)

	httpServer := &http.Server{
		Addr:         config.Address,
		Handler:      handler,
		ReadTimeout:  config.Timeout,
		WriteTimeout: config.Timeout,
	}

	return &Server{
		httpServer:     httpServer,
		accountHandler: accountHandler,
		logger:         logger,
	}
}

func (s *Server) Start(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Starting HTTP server", "address", s.httpServer.Addr)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "HTTP server error", "error", err)
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}
