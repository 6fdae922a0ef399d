package handlers

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Exister answers whether a row with id is present.
type Exister interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// requireShop turns a missing shop into a field error on "shop".
func requireShop(ctx context.Context, shops Exister, id uint) error {
	ok, err := shops.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrField("shop", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
	}
	return nil
}

type ServiceHandler struct {
	services crud.Repository[models.Service]
	shops    Exister
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewServiceHandler(
	services crud.Repository[models.Service],
	shops Exister,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *ServiceHandler {
	return &ServiceHandler{
		services: services,
		shops:    shops,
		audit:    audit,
		log:      log.With(zap.String("handler", "service")),
	}
}

// --------- Requests ---------

type ServiceRequest struct {
	Shop        uint             `json:"shop" binding:"required"`
	Name        string           `json:"name" binding:"required,max=100"`
	Price       *decimal.Decimal `json:"price" binding:"required,money"`
	DurationMin *int             `json:"duration_min" binding:"required,min=1"`
	Description string           `json:"description"`
	Category    string           `json:"category" binding:"omitempty,service_category"`
	Discount    *decimal.Decimal `json:"discount" binding:"omitempty,money"`
}

func serviceRequestFrom(s *models.Service) ServiceRequest {
	price := s.Price
	duration := s.DurationMin
	return ServiceRequest{
		Shop:        s.ShopID,
		Name:        s.Name,
		Price:       &price,
		DurationMin: &duration,
		Description: s.Description,
		Category:    s.Category,
		Discount:    s.Discount,
	}
}

func (r ServiceRequest) apply(s *models.Service) {
	s.ShopID = r.Shop
	s.Name = r.Name
	if r.Price != nil {
		s.Price = *r.Price
	}
	if r.DurationMin != nil {
		s.DurationMin = *r.DurationMin
	}
	s.Description = r.Description
	s.Category = r.Category
	if s.Category == "" {
		s.Category = string(catalog.DefaultCategory())
	}
	s.Discount = r.Discount
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	scopes, ok := shopFilter(c)
	if !ok {
		return
	}

	services, err := h.services.List(c.Request.Context(), append(scopes, crud.OrderByID())...)
	if err != nil {
		renderError(c, h.log, "service", err)
		return
	}
	httpresp.List(c, dto.NewServiceDocuments(services))
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "service")
	if !ok {
		return
	}

	service, err := h.services.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, h.log, "service", err)
		return
	}
	httpresp.OK(c, dto.NewServiceDocument(*service))
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	ctx := c.Request.Context()

	if err := requireShop(ctx, h.shops, req.Shop); err != nil {
		renderError(c, h.log, "service", err)
		return
	}

	var service models.Service
	req.apply(&service)

	if err := h.services.Create(ctx, &service); err != nil {
		renderError(c, h.log, "service", err)
		return
	}

	recordAudit(c, h.audit, "service_created", "service", service.ID, map[string]any{"shop": service.ShopID})
	httpresp.Created(c, dto.NewServiceDocument(service))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "service")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	service, err := h.services.Get(ctx, id)
	if err != nil {
		renderError(c, h.log, "service", err)
		return
	}

	var req ServiceRequest
	if c.Request.Method == "PATCH" {
		req = serviceRequestFrom(service)
	}
	if !bindJSON(c, h.log, &req) {
		return
	}

	if err := requireShop(ctx, h.shops, req.Shop); err != nil {
		renderError(c, h.log, "service", err)
		return
	}
	req.apply(service)

	if err := h.services.Update(ctx, service); err != nil {
		renderError(c, h.log, "service", err)
		return
	}

	recordAudit(c, h.audit, "service_updated", "service", service.ID, nil)
	httpresp.OK(c, dto.NewServiceDocument(*service))
}

// Delete keeps the bookings that listed the service.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "service")
	if !ok {
		return
	}

	if err := h.services.Delete(c.Request.Context(), id); err != nil {
		renderError(c, h.log, "service", err)
		return
	}

	recordAudit(c, h.audit, "service_deleted", "service", id, nil)
	httpresp.NoContent(c)
}
