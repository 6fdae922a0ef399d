package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ReviewHandler struct {
	reviews crud.Repository[models.Review]
	shops   Exister
	audit   *audit.Dispatcher
	log     *zap.Logger
}

func NewReviewHandler(
	reviews crud.Repository[models.Review],
	shops Exister,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
		shops:   shops,
		audit:   audit,
		log:     log.With(zap.String("handler", "review")),
	}
}

// ReviewRequest never carries the author; it comes from the caller.
type ReviewRequest struct {
	Shop    uint   `json:"shop" binding:"required"`
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment" binding:"required"`
}

func (r ReviewRequest) apply(rv *models.Review) {
	rv.ShopID = r.Shop
	rv.Rating = r.Rating
	rv.Comment = r.Comment
}

func (h *ReviewHandler) List(c *gin.Context) {
	scopes, ok := shopFilter(c)
	if !ok {
		return
	}
	scopes = append(scopes, crud.Preload("Account"), crud.OrderByID())

	reviews, err := h.reviews.List(c.Request.Context(), scopes...)
	if err != nil {
		renderError(c, h.log, "review", err)
		return
	}
	httpresp.List(c, dto.NewReviewDocuments(reviews))
}

func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "review")
	if !ok {
		return
	}
	h.respond(c, id, httpresp.OK)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	accountID, _ := middleware.AccountID(c)

	var req ReviewRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	ctx := c.Request.Context()

	if err := requireShop(ctx, h.shops, req.Shop); err != nil {
		renderError(c, h.log, "review", err)
		return
	}

	review := models.Review{AccountID: accountID}
	req.apply(&review)

	if err := h.reviews.Create(ctx, &review); err != nil {
		renderError(c, h.log, "review", err)
		return
	}

	recordAudit(c, h.audit, "review_created", "review", review.ID, map[string]any{
		"shop":   review.ShopID,
		"rating": review.Rating,
	})
	h.respond(c, review.ID, httpresp.Created)
}

// Update is open to any authenticated caller; the author never changes.
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "review")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	review, err := h.reviews.Get(ctx, id)
	if err != nil {
		renderError(c, h.log, "review", err)
		return
	}

	var req ReviewRequest
	if c.Request.Method == "PATCH" {
		req = ReviewRequest{Shop: review.ShopID, Rating: review.Rating, Comment: review.Comment}
	}
	if !bindJSON(c, h.log, &req) {
		return
	}

	if err := requireShop(ctx, h.shops, req.Shop); err != nil {
		renderError(c, h.log, "review", err)
		return
	}
	req.apply(review)

	if err := h.reviews.Update(ctx, review); err != nil {
		renderError(c, h.log, "review", err)
		return
	}

	recordAudit(c, h.audit, "review_updated", "review", review.ID, nil)
	h.respond(c, review.ID, httpresp.OK)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "review")
	if !ok {
		return
	}

	if err := h.reviews.Delete(c.Request.Context(), id); err != nil {
		renderError(c, h.log, "review", err)
		return
	}

	recordAudit(c, h.audit, "review_deleted", "review", id, nil)
	httpresp.NoContent(c)
}

func (h *ReviewHandler) respond(c *gin.Context, id uint, write func(*gin.Context, any)) {
	review, err := h.reviews.Get(c.Request.Context(), id, crud.Preload("Account"))
	if err != nil {
		renderError(c, h.log, "review", err)
		return
	}
	write(c, dto.NewReviewDocument(*review))
}
