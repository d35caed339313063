package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every token failure mode: bad signature, bad
// encoding, expiry, missing subject. Callers only ever see 401.
var ErrInvalidToken = errors.New("could not validate credentials")

// Identity is the authenticated caller extracted from a bearer token.
type Identity struct {
	UserID   string
	Username string
}

// Tokens issues and verifies signed bearer tokens with a symmetric secret.
type Tokens struct {
	secret []byte
	method jwt.SigningMethod
	expiry time.Duration
}

// NewTokens builds a token manager. The algorithm name must resolve to a
// registered signing method (HS256 in every deployment).
func NewTokens(secret, algorithm string, expiry time.Duration) (*Tokens, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	return &Tokens{secret: []byte(secret), method: method, expiry: expiry}, nil
}

// Issue signs a token carrying the user id and username, expiring after
// the configured TTL.
func (t *Tokens) Issue(userID, username string) (string, error) {
	return t.IssueWithTTL(userID, username, t.expiry)
}

// IssueWithTTL signs a token with an explicit TTL.
func (t *Tokens) IssueWithTTL(userID, username string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"exp":      time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(t.method, claims).SignedString(t.secret)
}

// Parse verifies signature and expiry and returns the caller identity.
func (t *Tokens) Parse(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(tok *jwt.Token) (any, error) {
		if tok.Method.Alg() != t.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", tok.Method.Alg())
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}
	username, _ := claims["username"].(string)

	return &Identity{UserID: sub, Username: username}, nil
}
