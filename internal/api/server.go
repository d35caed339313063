package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/handlers"
	"go.uber.org/zap"

	accountrepo "github.com/gauravbalpande/final-winner/internal/account/repo"
	"github.com/gauravbalpande/final-winner/internal/api/dto"
	"github.com/gauravbalpande/final-winner/internal/auth"
	betrepo "github.com/gauravbalpande/final-winner/internal/betting/repo"
)

// Accounts is the account service surface the API depends on.
type Accounts interface {
	Register(ctx context.Context, username, email, password string) (*accountrepo.User, error)
	Login(ctx context.Context, username, password string) (*accountrepo.User, string, error)
}

// Wallets is the wallet service surface the API depends on.
type Wallets interface {
	Balance(ctx context.Context, userID string) (float64, error)
}

// Bets is the betting service surface the API depends on.
type Bets interface {
	PlaceHorseBet(ctx context.Context, userID string, horseChoice int, betAmount float64) (*betrepo.Bet, float64, error)
	History(ctx context.Context, userID string, limit int) ([]betrepo.Bet, error)
}

// Server maps HTTP requests onto the account, wallet and betting services.
type Server struct {
	log            *zap.Logger
	tokens         *auth.Tokens
	accounts       Accounts
	wallets        Wallets
	bets           Bets
	allowedOrigins []string
}

func NewServer(log *zap.Logger, tokens *auth.Tokens, accounts Accounts, wallets Wallets, bets Bets, allowedOrigins []string) *Server {
	return &Server{
		log:            log,
		tokens:         tokens,
		accounts:       accounts,
		wallets:        wallets,
		bets:           bets,
		allowedOrigins: allowedOrigins,
	}
}

// Router builds the public API router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.logRequests)
	r.Use(handlers.CORS(
		handlers.AllowedOrigins(s.allowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
		handlers.MaxAge(3600),
	))

	r.Get("/", s.root)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.register)
			r.Post("/login", s.login)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.requireBearer)

			r.Get("/user/balance", s.getBalance)

			r.Post("/bets/horse", s.placeHorseBet)
			r.Get("/bets/history", s.betHistory)

			r.Get("/payment/status", s.paymentStatus)
			r.Post("/payment/deposit", s.paymentDeposit)
			r.Post("/payment/withdraw", s.paymentWithdraw)
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, dto.ErrorResponse{Detail: detail})
}
