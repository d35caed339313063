package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	walletrepo "github.com/gauravbalpande/final-winner/internal/wallet/repo"
)

// ErrInsufficientBalance rejects stakes above the current balance.
var ErrInsufficientBalance = errors.New("insufficient balance")

// Postgres implements bet persistence.
type Postgres struct{ db *sql.DB }

func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// Settle applies a bet's financial effect and records it in one
// transaction. The wallet row is locked for the duration, so two
// concurrent bets for the same user serialize instead of racing the
// balance, and a failed bet insert rolls the balance change back.
// Fills in the bet id and timestamp and returns the new balance.
func (p *Postgres) Settle(ctx context.Context, b *Bet) (float64, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var balance float64
	err = tx.QueryRowContext(ctx,
		`SELECT balance FROM wallets WHERE user_id=$1 FOR UPDATE`, b.UserID).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, walletrepo.ErrWalletNotFound
	}
	if err != nil {
		return 0, err
	}

	if b.BetAmount > balance {
		return 0, ErrInsufficientBalance
	}

	newBalance := balance - b.BetAmount
	if b.Result == ResultWin {
		newBalance = balance + b.Winnings
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE wallets SET balance=$1 WHERE user_id=$2`, newBalance, b.UserID); err != nil {
		return 0, err
	}

	b.ID = uuid.NewString()
	b.CreatedAt = time.Now().UTC()

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO bets (id, user_id, horse_choice, bet_amount, winning_horse, result, winnings, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		b.ID, b.UserID, b.HorseChoice, b.BetAmount, b.WinningHorse, b.Result, b.Winnings, b.CreatedAt,
	); err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// RecentByUser returns a user's latest bets, newest first.
func (p *Postgres) RecentByUser(ctx context.Context, userID string, limit int) ([]Bet, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, user_id, horse_choice, bet_amount, winning_horse, result, winnings, created_at
		FROM bets WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bets []Bet
	for rows.Next() {
		var b Bet
		if err := rows.Scan(&b.ID, &b.UserID, &b.HorseChoice, &b.BetAmount,
			&b.WinningHorse, &b.Result, &b.Winnings, &b.CreatedAt); err != nil {
			return nil, err
		}
		bets = append(bets, b)
	}
	return bets, rows.Err()
}
