package repo

import (
	"context"
	"database/sql"
	"errors"
)

// ErrWalletNotFound marks a user without a wallet row.
var ErrWalletNotFound = errors.New("wallet not found")

// Postgres implements wallet persistence.
type Postgres struct{ db *sql.DB }

func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// Balance returns the current balance for a user.
func (p *Postgres) Balance(ctx context.Context, userID string) (float64, error) {
	var balance float64
	err := p.db.QueryRowContext(ctx,
		`SELECT balance FROM wallets WHERE user_id=$1`, userID).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, ErrWalletNotFound
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// SetBalance overwrites the wallet balance. Bet settlement does not use
// this path; it runs its own transaction.
func (p *Postgres) SetBalance(ctx context.Context, userID string, balance float64) error {
	res, err := p.db.ExecContext(ctx,
		`UPDATE wallets SET balance=$1 WHERE user_id=$2`, balance, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrWalletNotFound
	}
	return nil
}
