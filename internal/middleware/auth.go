package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	ContextAccountID = "accountID"
	ContextAccount   = "account"
)

// AccountLookup is the account read Authenticate needs.
type AccountLookup interface {
	Get(ctx context.Context, id uint, scopes ...crud.Scope) (*models.Account, error)
}

// Authenticate resolves the caller from "Authorization: Bearer <t>" or
// "Authorization: JWT <t>". Requests without the header pass through
// anonymous; a header that does not carry a valid access token of an
// existing account is rejected with 401, an inactive account with 403.
func Authenticate(issuer *auth.Issuer, accounts AccountLookup, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !isTokenScheme(parts[0]) {
			httperr.Unauthorized(c, "invalid_authorization_header", "Authorization header must be 'Bearer <token>' or 'JWT <token>'.")
			return
		}

		claims, err := issuer.ParseAccess(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Given token not valid for any token type.")
			return
		}

		accountID, err := claims.AccountID()
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token contained no recognizable user identification.")
			return
		}

		acc, err := accounts.Get(c.Request.Context(), accountID)
		if err != nil {
			if errors.Is(err, crud.ErrNotFound) {
				httperr.Unauthorized(c, "account_not_found", "User not found.")
				return
			}
			log.Error("load account", zap.Uint("account_id", accountID), zap.Error(err))
			httperr.Internal(c, "internal_error", "Internal server error.")
			return
		}
		if !acc.IsActive {
			httperr.Forbidden(c, "account_inactive", "User is inactive.")
			return
		}

		c.Set(ContextAccountID, acc.ID)
		c.Set(ContextAccount, acc)
		c.Next()
	}
}

func isTokenScheme(s string) bool {
	return strings.EqualFold(s, "Bearer") || strings.EqualFold(s, "JWT")
}

// RequireAuth rejects anonymous callers. It runs after Authenticate.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := AccountID(c); !ok {
			httperr.Unauthorized(c, "authentication_required", "Authentication credentials were not provided.")
			return
		}
		c.Next()
	}
}

// RequireAuthForWrites lets safe methods through and requires a caller
// for everything else.
func RequireAuthForWrites() gin.HandlerFunc {
	needAuth := RequireAuth()
	return func(c *gin.Context) {
		switch c.Request.Method {
		case "GET", "HEAD", "OPTIONS":
			c.Next()
		default:
			needAuth(c)
		}
	}
}

func AccountID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextAccountID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

func CurrentAccount(c *gin.Context) (*models.Account, bool) {
	v, ok := c.Get(ContextAccount)
	if !ok {
		return nil, false
	}
	acc, ok := v.(*models.Account)
	return acc, ok
}
