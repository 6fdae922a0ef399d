package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const defaultReviewsCount = "0 avaliações"

type ShopHandler struct {
	shops crud.Repository[models.Shop]
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewShopHandler(
	shops crud.Repository[models.Shop],
	audit *audit.Dispatcher,
	log *zap.Logger,
) *ShopHandler {
	return &ShopHandler{
		shops: shops,
		audit: audit,
		log:   log.With(zap.String("handler", "shop")),
	}
}

// --------- Requests ---------

type ShopRequest struct {
	Name             string           `json:"name" binding:"required,max=255"`
	Address          string           `json:"address" binding:"required,max=255"`
	Rating           float64          `json:"rating" binding:"gte=0,lte=5"`
	ReviewsCount     string           `json:"reviews_count" binding:"max=50"`
	Image            string           `json:"image" binding:"required,url,max=1000"`
	Logo             *string          `json:"logo" binding:"omitempty,url,max=1000"`
	Status           string           `json:"status" binding:"omitempty,shop_status"`
	OpeningHours     string           `json:"opening_hours" binding:"required,max=100"`
	Phone            string           `json:"phone" binding:"required,max=20"`
	Tags             []string         `json:"tags"`
	MainServicePrice *decimal.Decimal `json:"main_service_price" binding:"required,money"`
	MainServiceName  string           `json:"main_service_name" binding:"required,max=100"`
}

func shopRequestFrom(s *models.Shop) ShopRequest {
	price := s.MainServicePrice
	return ShopRequest{
		Name:             s.Name,
		Address:          s.Address,
		Rating:           s.Rating,
		ReviewsCount:     s.ReviewsCount,
		Image:            s.Image,
		Logo:             s.Logo,
		Status:           s.Status,
		OpeningHours:     s.OpeningHours,
		Phone:            s.Phone,
		Tags:             append([]string(nil), s.Tags...),
		MainServicePrice: &price,
		MainServiceName:  s.MainServiceName,
	}
}

func (r ShopRequest) apply(s *models.Shop) {
	s.Name = r.Name
	s.Address = r.Address
	s.Rating = r.Rating
	s.ReviewsCount = r.ReviewsCount
	if s.ReviewsCount == "" {
		s.ReviewsCount = defaultReviewsCount
	}
	s.Image = r.Image
	s.Logo = r.Logo
	s.Status = r.Status
	if s.Status == "" {
		s.Status = string(catalog.DefaultShopStatus())
	}
	s.OpeningHours = r.OpeningHours
	s.Phone = r.Phone
	s.Tags = datatypes.JSONSlice[string](r.Tags)
	if r.MainServicePrice != nil {
		s.MainServicePrice = *r.MainServicePrice
	}
	s.MainServiceName = r.MainServiceName
}

// --------- Handlers ---------

func (h *ShopHandler) List(c *gin.Context) {
	scopes := append(repository.ShopDocumentScopes(), crud.OrderByID())

	shops, err := h.shops.List(c.Request.Context(), scopes...)
	if err != nil {
		renderError(c, h.log, "shop", err)
		return
	}
	httpresp.List(c, dto.NewShopDocuments(shops))
}

func (h *ShopHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "shop")
	if !ok {
		return
	}
	h.respond(c, id, httpresp.OK)
}

func (h *ShopHandler) Create(c *gin.Context) {
	var req ShopRequest
	if !bindJSON(c, h.log, &req) {
		return
	}

	var shop models.Shop
	req.apply(&shop)

	if err := h.shops.Create(c.Request.Context(), &shop); err != nil {
		renderError(c, h.log, "shop", err)
		return
	}

	h.record(c, "shop_created", shop.ID, map[string]any{"name": shop.Name})
	h.respond(c, shop.ID, httpresp.Created)
}

// Update serves PUT and PATCH. PATCH starts from the stored values so
// fields left out of the body keep them.
func (h *ShopHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "shop")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	shop, err := h.shops.Get(ctx, id)
	if err != nil {
		renderError(c, h.log, "shop", err)
		return
	}

	var req ShopRequest
	if c.Request.Method == "PATCH" {
		req = shopRequestFrom(shop)
	}
	if !bindJSON(c, h.log, &req) {
		return
	}
	req.apply(shop)

	if err := h.shops.Update(ctx, shop); err != nil {
		renderError(c, h.log, "shop", err)
		return
	}

	h.record(c, "shop_updated", shop.ID, nil)
	h.respond(c, shop.ID, httpresp.OK)
}

// Delete removes the shop with its services, barbers, bookings and
// reviews.
func (h *ShopHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "shop")
	if !ok {
		return
	}

	if err := h.shops.Delete(c.Request.Context(), id); err != nil {
		renderError(c, h.log, "shop", err)
		return
	}

	h.record(c, "shop_deleted", id, nil)
	httpresp.NoContent(c)
}

func (h *ShopHandler) respond(c *gin.Context, id uint, write func(*gin.Context, any)) {
	shop, err := h.shops.Get(c.Request.Context(), id, repository.ShopDocumentScopes()...)
	if err != nil {
		renderError(c, h.log, "shop", err)
		return
	}
	write(c, dto.NewShopDocument(*shop))
}

func (h *ShopHandler) record(c *gin.Context, action string, id uint, meta any) {
	recordAudit(c, h.audit, action, "shop", id, meta)
}
