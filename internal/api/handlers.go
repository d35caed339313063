package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strconv"

	"go.uber.org/zap"

	"github.com/gauravbalpande/final-winner/internal/account"
	accountrepo "github.com/gauravbalpande/final-winner/internal/account/repo"
	"github.com/gauravbalpande/final-winner/internal/api/dto"
	"github.com/gauravbalpande/final-winner/internal/betting"
	betrepo "github.com/gauravbalpande/final-winner/internal/betting/repo"
	walletrepo "github.com/gauravbalpande/final-winner/internal/wallet/repo"
)

const defaultHistoryLimit = 20

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to BetMasterX API",
		"version": "1.0.0",
		"status":  "operational",
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	u, err := s.accounts.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrUsernameTaken), errors.Is(err, account.ErrEmailTaken):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			s.log.Error("register failed", zap.Error(err))
			writeError(w, http.StatusBadRequest, "failed to create user")
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.RegisterResponse{
		Message: "User registered successfully",
		User:    userResponse(u),
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, token, err := s.accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, account.ErrInvalidCredentials.Error())
			return
		}
		s.log.Error("login failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Message:   "Login successful",
		User:      dto.UserView{ID: u.ID, Username: u.Username, Email: u.Email},
		Token:     token,
		TokenType: "bearer",
	})
}

func (s *Server) getBalance(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		s.unauthorized(w)
		return
	}

	balance, err := s.wallets.Balance(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, walletrepo.ErrWalletNotFound) {
			writeError(w, http.StatusNotFound, "wallet not found")
			return
		}
		s.log.Error("balance lookup failed", zap.Error(err), zap.String("user_id", identity.UserID))
		writeError(w, http.StatusInternalServerError, "failed to fetch balance")
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{UserID: identity.UserID, Balance: balance})
}

func (s *Server) placeHorseBet(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		s.unauthorized(w)
		return
	}

	var req dto.HorseBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// Boundary validation: the service is never invoked with a
	// malformed bet.
	if req.BetAmount <= 0 {
		writeError(w, http.StatusBadRequest, betting.ErrInvalidBetAmount.Error())
		return
	}
	if req.HorseChoice < 1 || req.HorseChoice > 4 {
		writeError(w, http.StatusBadRequest, betting.ErrInvalidHorseChoice.Error())
		return
	}

	bet, newBalance, err := s.bets.PlaceHorseBet(r.Context(), identity.UserID, req.HorseChoice, req.BetAmount)
	if err != nil {
		switch {
		case errors.Is(err, betrepo.ErrInsufficientBalance):
			writeError(w, http.StatusBadRequest, "insufficient balance")
		case errors.Is(err, walletrepo.ErrWalletNotFound):
			writeError(w, http.StatusBadRequest, "wallet not found")
		default:
			s.log.Error("place bet failed", zap.Error(err), zap.String("user_id", identity.UserID))
			writeError(w, http.StatusBadRequest, "failed to place bet")
		}
		return
	}

	writeJSON(w, http.StatusOK, betResponse(bet, newBalance))
}

func (s *Server) betHistory(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		s.unauthorized(w)
		return
	}

	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	bets, err := s.bets.History(r.Context(), identity.UserID, limit)
	if err != nil {
		s.log.Error("bet history failed", zap.Error(err), zap.String("user_id", identity.UserID))
		writeError(w, http.StatusInternalServerError, "failed to fetch bet history")
		return
	}

	out := dto.BetHistoryResponse{Bets: make([]dto.HistoryBet, 0, len(bets))}
	for _, b := range bets {
		out.Bets = append(out.Bets, dto.HistoryBet{
			ID:           b.ID,
			HorseChoice:  b.HorseChoice,
			BetAmount:    b.BetAmount,
			WinningHorse: b.WinningHorse,
			Result:       b.Result,
			Winnings:     b.Winnings,
			CreatedAt:    b.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Payment endpoints are placeholders until a real gateway is integrated.

func (s *Server) paymentStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.PaymentStatusResponse{
		Status:           "coming_soon",
		Message:          "Payment Gateway Integration Coming Soon",
		SupportedMethods: []string{},
		Note:             "This endpoint will support deposits and withdrawals in future releases",
	})
}

func (s *Server) paymentDeposit(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.PaymentStubResponse{
		Status:  "not_implemented",
		Message: "Deposit functionality will be available soon",
	})
}

func (s *Server) paymentWithdraw(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.PaymentStubResponse{
		Status:  "not_implemented",
		Message: "Withdrawal functionality will be available soon",
	})
}

func userResponse(u *accountrepo.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func betResponse(b *betrepo.Bet, newBalance float64) dto.BetResponse {
	return dto.BetResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		HorseChoice:  b.HorseChoice,
		BetAmount:    b.BetAmount,
		WinningHorse: b.WinningHorse,
		Result:       b.Result,
		Winnings:     b.Winnings,
		NewBalance:   newBalance,
		CreatedAt:    b.CreatedAt,
	}
}
