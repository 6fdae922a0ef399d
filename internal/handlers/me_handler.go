package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type accountUpdater interface {
	Update(ctx context.Context, acc *models.Account) error
}

type MeHandler struct {
	accounts accountUpdater
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewMeHandler(accounts accountUpdater, audit *audit.Dispatcher, log *zap.Logger) *MeHandler {
	return &MeHandler{
		accounts: accounts,
		audit:    audit,
		log:      log.With(zap.String("handler", "me")),
	}
}

type UpdateMeRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	acc, ok := middleware.CurrentAccount(c)
	if !ok {
		httperr.Unauthorized(c, "authentication_required", "Authentication credentials were not provided.")
		return
	}
	httpresp.OK(c, dto.NewAccountPublic(*acc))
}

// UpdateMe changes the caller's name fields.
func (h *MeHandler) UpdateMe(c *gin.Context) {
	acc, ok := middleware.CurrentAccount(c)
	if !ok {
		httperr.Unauthorized(c, "authentication_required", "Authentication credentials were not provided.")
		return
	}

	var req UpdateMeRequest
	if !bindJSON(c, h.log, &req) {
		return
	}

	if req.FirstName != nil {
		acc.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		acc.LastName = strings.TrimSpace(*req.LastName)
	}

	if err := h.accounts.Update(c.Request.Context(), acc); err != nil {
		renderError(c, h.log, "account", err)
		return
	}

	recordAudit(c, h.audit, "profile_updated", "account", acc.ID, nil)
	httpresp.OK(c, dto.NewAccountPublic(*acc))
}
