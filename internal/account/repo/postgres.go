package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Postgres implements user persistence.
type Postgres struct{ db *sql.DB }

// NewPostgres returns the user repository.
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// GetByUsername returns the user with that username, or nil when none
// exists.
func (p *Postgres) GetByUsername(ctx context.Context, username string) (*User, error) {
	return p.getBy(ctx, `SELECT id, username, email, password_hash, created_at FROM users WHERE username=$1`, username)
}

// GetByEmail returns the user with that email, or nil when none exists.
func (p *Postgres) GetByEmail(ctx context.Context, email string) (*User, error) {
	return p.getBy(ctx, `SELECT id, username, email, password_hash, created_at FROM users WHERE email=$1`, email)
}

func (p *Postgres) getBy(ctx context.Context, query, arg string) (*User, error) {
	var u User
	err := p.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateWithWallet inserts the user row and its wallet row in one
// transaction, so a failed wallet insert never leaves a user without a
// wallet. Fills in the generated id and creation timestamp.
func (p *Postgres) CreateWithWallet(ctx context.Context, u *User, initialBalance float64) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES ($1,$2,$3,$4,$5)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.CreatedAt,
	); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO wallets (id, user_id, balance)
		VALUES ($1,$2,$3)`,
		uuid.NewString(), u.ID, initialBalance,
	); err != nil {
		return err
	}

	return tx.Commit()
}
