package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// AccountStore is what registration and login need from accounts.
type AccountStore interface {
	Create(ctx context.Context, acc *models.Account) error
	FindByUsername(ctx context.Context, username string) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
}

type AuthHandler struct {
	accounts AccountStore
	issuer   *auth.Issuer
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewAuthHandler(
	accounts AccountStore,
	issuer *auth.Issuer,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		issuer:   issuer,
		audit:    audit,
		log:      log.With(zap.String("handler", "auth")),
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,max=150"`
	Email     string `json:"email" binding:"required,email,max=254"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type VerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	ctx := c.Request.Context()

	username := strings.TrimSpace(req.Username)
	email := validators.NormalizeEmail(req.Email)

	taken, err := h.taken(ctx, username, email)
	if err != nil {
		renderError(c, h.log, "account", err)
		return
	}
	if len(taken) > 0 {
		httperr.Validation(c, taken)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		renderError(c, h.log, "account", err)
		return
	}

	acc := models.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		IsActive:     true,
	}
	if err := h.accounts.Create(ctx, &acc); err != nil {
		renderError(c, h.log, "account", err)
		return
	}

	recordAudit(c, h.audit, "account_registered", "account", acc.ID, nil)
	httpresp.Created(c, dto.NewAccountPublic(acc))
}

func (h *AuthHandler) taken(ctx context.Context, username, email string) (httperr.FieldErrors, error) {
	fields := httperr.FieldErrors{}

	if _, err := h.accounts.FindByUsername(ctx, username); err == nil {
		fields["username"] = "A user with that username already exists."
	} else if !errors.Is(err, crud.ErrNotFound) {
		return nil, err
	}

	if _, err := h.accounts.FindByEmail(ctx, email); err == nil {
		fields["email"] = "A user with that email already exists."
	} else if !errors.Is(err, crud.ErrNotFound) {
		return nil, err
	}

	return fields, nil
}

// Login issues an access/refresh pair for valid, active credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	ctx := c.Request.Context()

	acc, err := h.accounts.FindByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, crud.ErrNotFound) {
		renderError(c, h.log, "account", err)
		return
	}
	if acc == nil || !acc.IsActive || !auth.CheckPassword(acc.PasswordHash, req.Password) {
		httperr.Unauthorized(c, "no_active_account", "No active account found with the given credentials.")
		return
	}

	pair, err := h.issuer.IssuePair(ctx, acc.ID)
	if err != nil {
		renderError(c, h.log, "account", err)
		return
	}

	recordAudit(c, h.audit, "login", "account", acc.ID, nil)
	httpresp.OK(c, pair)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if !bindJSON(c, h.log, &req) {
		return
	}

	access, err := h.issuer.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		h.tokenError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"access": access})
}

func (h *AuthHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if !bindJSON(c, h.log, &req) {
		return
	}

	if err := h.issuer.Verify(req.Token); err != nil {
		h.tokenError(c, err)
		return
	}
	httpresp.OK(c, gin.H{})
}

// Logout revokes the refresh token; its access tokens live until expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshRequest
	if !bindJSON(c, h.log, &req) {
		return
	}

	if err := h.issuer.Revoke(c.Request.Context(), req.Refresh); err != nil {
		h.tokenError(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *AuthHandler) tokenError(c *gin.Context, err error) {
	if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrRevoked) {
		httperr.Unauthorized(c, "token_not_valid", "Token is invalid or expired.")
		return
	}
	renderError(c, h.log, "token", err)
}
