package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var (
	ErrInvalidToken = errors.New("invalid_token")
	ErrRevoked      = errors.New("token_revoked")
)

type Claims struct {
	Type string `json:"typ"`
	jwt.RegisteredClaims
}

// AccountID returns the numeric subject of the token.
func (c *Claims) AccountID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

// TokenStore allow-lists refresh tokens so they can be revoked.
type TokenStore interface {
	Save(ctx context.Context, jti string, accountID uint, expiresAt time.Time) error
	Exists(ctx context.Context, jti string) (bool, error)
	Revoke(ctx context.Context, jti string) error
}

type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	store      TokenStore
	now        func() time.Time
}

func NewIssuer(secret string, accessTTL, refreshTTL time.Duration, store TokenStore) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		store:      store,
		now:        time.Now,
	}
}

// IssuePair signs a new access/refresh pair and allow-lists the refresh jti.
func (i *Issuer) IssuePair(ctx context.Context, accountID uint) (*Pair, error) {
	access, err := i.sign(accountID, TypeAccess, i.accessTTL)
	if err != nil {
		return nil, err
	}

	jti := uuid.NewString()
	refresh, err := i.signWithID(accountID, TypeRefresh, i.refreshTTL, jti)
	if err != nil {
		return nil, err
	}

	if err := i.store.Save(ctx, jti, accountID, i.now().Add(i.refreshTTL)); err != nil {
		return nil, fmt.Errorf("save refresh token: %w", err)
	}

	return &Pair{Access: access, Refresh: refresh}, nil
}

// Refresh trades a live refresh token for a new access token.
func (i *Issuer) Refresh(ctx context.Context, refresh string) (string, error) {
	claims, err := i.parse(refresh, TypeRefresh)
	if err != nil {
		return "", err
	}

	ok, err := i.store.Exists(ctx, claims.ID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrRevoked
	}

	accountID, err := claims.AccountID()
	if err != nil {
		return "", err
	}
	return i.sign(accountID, TypeAccess, i.accessTTL)
}

// Revoke drops a refresh token from the allow-list.
func (i *Issuer) Revoke(ctx context.Context, refresh string) error {
	claims, err := i.parse(refresh, TypeRefresh)
	if err != nil {
		return err
	}
	return i.store.Revoke(ctx, claims.ID)
}

// ParseAccess validates an access token and returns its claims.
func (i *Issuer) ParseAccess(token string) (*Claims, error) {
	return i.parse(token, TypeAccess)
}

// Verify accepts any well-signed, unexpired token of either type.
func (i *Issuer) Verify(token string) error {
	_, err := i.parse(token, "")
	return err
}

func (i *Issuer) sign(accountID uint, typ string, ttl time.Duration) (string, error) {
	return i.signWithID(accountID, typ, ttl, uuid.NewString())
}

func (i *Issuer) signWithID(accountID uint, typ string, ttl time.Duration, jti string) (string, error) {
	now := i.now()
	claims := Claims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(accountID), 10),
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *Issuer) parse(tokenString, typ string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if typ != "" && claims.Type != typ {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
