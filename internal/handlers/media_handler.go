package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/media"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// MediaHandler stores shop pictures and barber avatars. A nil uploader
// disables both routes.
type MediaHandler struct {
	shops    crud.Repository[models.Shop]
	barbers  crud.Repository[models.Barber]
	uploader media.Uploader
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewMediaHandler(
	shops crud.Repository[models.Shop],
	barbers crud.Repository[models.Barber],
	uploader media.Uploader,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *MediaHandler {
	return &MediaHandler{
		shops:    shops,
		barbers:  barbers,
		uploader: uploader,
		audit:    audit,
		log:      log.With(zap.String("handler", "media")),
	}
}

func (h *MediaHandler) ShopImage(c *gin.Context) {
	id, ok := parseID(c, "shop")
	if !ok || !h.enabled(c) {
		return
	}
	ctx := c.Request.Context()

	shop, err := h.shops.Get(ctx, id)
	if err != nil {
		renderError(c, h.log, "shop", err)
		return
	}

	url, ok := h.store(c, fmt.Sprintf("shops/%d", id))
	if !ok {
		return
	}

	shop.Image = url
	if err := h.shops.Update(ctx, shop); err != nil {
		renderError(c, h.log, "shop", err)
		return
	}
	recordAudit(c, h.audit, "shop_image_uploaded", "shop", id, map[string]any{"url": url})

	doc, err := h.shops.Get(ctx, id, repository.ShopDocumentScopes()...)
	if err != nil {
		renderError(c, h.log, "shop", err)
		return
	}
	httpresp.OK(c, dto.NewShopDocument(*doc))
}

func (h *MediaHandler) BarberAvatar(c *gin.Context) {
	id, ok := parseID(c, "barber")
	if !ok || !h.enabled(c) {
		return
	}
	ctx := c.Request.Context()

	barber, err := h.barbers.Get(ctx, id)
	if err != nil {
		renderError(c, h.log, "barber", err)
		return
	}

	url, ok := h.store(c, fmt.Sprintf("barbers/%d", id))
	if !ok {
		return
	}

	barber.Avatar = url
	if err := h.barbers.Update(ctx, barber); err != nil {
		renderError(c, h.log, "barber", err)
		return
	}
	recordAudit(c, h.audit, "barber_avatar_uploaded", "barber", id, map[string]any{"url": url})

	httpresp.OK(c, dto.NewBarberDocument(*barber))
}

func (h *MediaHandler) enabled(c *gin.Context) bool {
	if h.uploader == nil {
		httperr.Unavailable(c, "uploads_disabled", "File uploads are not configured.")
		return false
	}
	return true
}

// store converts the multipart "file" to WebP and uploads it under
// prefix. It writes the error response itself.
func (h *MediaHandler) store(c *gin.Context, prefix string) (string, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		httperr.Validation(c, map[string]string{"file": "No file was submitted."})
		return "", false
	}
	if fh.Size > media.MaxUploadBytes {
		httperr.Validation(c, map[string]string{"file": "File is larger than 5 MB."})
		return "", false
	}

	f, err := fh.Open()
	if err != nil {
		renderError(c, h.log, "file", err)
		return "", false
	}
	defer f.Close()

	body, err := media.ToWebP(f, media.MaxEdge)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedImage) {
			httperr.Validation(c, map[string]string{"file": "Upload a valid JPEG, PNG or WebP image."})
			return "", false
		}
		renderError(c, h.log, "file", err)
		return "", false
	}

	key := fmt.Sprintf("%s/%s.webp", prefix, uuid.NewString())
	url, err := h.uploader.Upload(c.Request.Context(), key, body, media.ContentTypeWebP)
	if err != nil {
		h.log.Error("upload failed", zap.String("key", key), zap.Error(err))
		httperr.Write(c, http.StatusBadGateway, "upload_failed", "Could not store the file.")
		return "", false
	}
	return url, true
}
