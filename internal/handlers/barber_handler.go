package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BarberHandler struct {
	barbers crud.Repository[models.Barber]
	shops   Exister
	audit   *audit.Dispatcher
	log     *zap.Logger
}

func NewBarberHandler(
	barbers crud.Repository[models.Barber],
	shops Exister,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *BarberHandler {
	return &BarberHandler{
		barbers: barbers,
		shops:   shops,
		audit:   audit,
		log:     log.With(zap.String("handler", "barber")),
	}
}

type BarberRequest struct {
	Shop   uint   `json:"shop" binding:"required"`
	Name   string `json:"name" binding:"required,max=100"`
	Avatar string `json:"avatar" binding:"required,url,max=1000"`
}

func (r BarberRequest) apply(b *models.Barber) {
	b.ShopID = r.Shop
	b.Name = r.Name
	b.Avatar = r.Avatar
}

func (h *BarberHandler) List(c *gin.Context) {
	scopes, ok := shopFilter(c)
	if !ok {
		return
	}

	barbers, err := h.barbers.List(c.Request.Context(), append(scopes, crud.OrderByID())...)
	if err != nil {
		renderError(c, h.log, "barber", err)
		return
	}
	httpresp.List(c, dto.NewBarberDocuments(barbers))
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "barber")
	if !ok {
		return
	}

	barber, err := h.barbers.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, h.log, "barber", err)
		return
	}
	httpresp.OK(c, dto.NewBarberDocument(*barber))
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	ctx := c.Request.Context()

	if err := requireShop(ctx, h.shops, req.Shop); err != nil {
		renderError(c, h.log, "barber", err)
		return
	}

	var barber models.Barber
	req.apply(&barber)

	if err := h.barbers.Create(ctx, &barber); err != nil {
		renderError(c, h.log, "barber", err)
		return
	}

	recordAudit(c, h.audit, "barber_created", "barber", barber.ID, map[string]any{"shop": barber.ShopID})
	httpresp.Created(c, dto.NewBarberDocument(barber))
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "barber")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	barber, err := h.barbers.Get(ctx, id)
	if err != nil {
		renderError(c, h.log, "barber", err)
		return
	}

	var req BarberRequest
	if c.Request.Method == "PATCH" {
		req = BarberRequest{Shop: barber.ShopID, Name: barber.Name, Avatar: barber.Avatar}
	}
	if !bindJSON(c, h.log, &req) {
		return
	}

	if err := requireShop(ctx, h.shops, req.Shop); err != nil {
		renderError(c, h.log, "barber", err)
		return
	}
	req.apply(barber)

	if err := h.barbers.Update(ctx, barber); err != nil {
		renderError(c, h.log, "barber", err)
		return
	}

	recordAudit(c, h.audit, "barber_updated", "barber", barber.ID, nil)
	httpresp.OK(c, dto.NewBarberDocument(*barber))
}

// Delete leaves the barber's bookings in place with no barber.
func (h *BarberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "barber")
	if !ok {
		return
	}

	if err := h.barbers.Delete(c.Request.Context(), id); err != nil {
		renderError(c, h.log, "barber", err)
		return
	}

	recordAudit(c, h.audit, "barber_deleted", "barber", id, nil)
	httpresp.NoContent(c)
}
