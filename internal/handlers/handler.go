package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
)

// parseID reads the :id path parameter. It answers 404 itself when the
// value is not a positive integer.
func parseID(c *gin.Context, entity string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		notFound(c, entity)
		return 0, false
	}
	return uint(id), true
}

// shopFilter reads the optional ?shop= query.
func shopFilter(c *gin.Context) ([]crud.Scope, bool) {
	raw := c.Query("shop")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.Validation(c, map[string]string{"shop": "A valid integer is required."})
		return nil, false
	}
	return []crud.Scope{crud.ForShop(uint(id))}, true
}

// bindJSON binds the body onto req and answers 400 with field errors on
// failure. req may be prefilled for partial updates.
func bindJSON(c *gin.Context, log *zap.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		log.Debug("invalid request", zap.Error(err))
		httperr.Validation(c, httperr.FromBinding(err))
		return false
	}
	return true
}

func notFound(c *gin.Context, entity string) {
	httperr.NotFound(c, "not_found", "No "+entity+" matches the given query.")
}

// renderError is the single place a handler turns an error into a
// response.
func renderError(c *gin.Context, log *zap.Logger, entity string, err error) {
	if errors.Is(err, crud.ErrNotFound) {
		notFound(c, entity)
		return
	}
	if fields, ok := httperr.AsFields(err); ok {
		log.Debug("validation failed", zap.Any("fields", fields))
		httperr.Validation(c, fields)
		return
	}
	if fields, ok := httperr.FromStore(err); ok {
		log.Debug("constraint violated", zap.Any("fields", fields), zap.Error(err))
		httperr.Validation(c, fields)
		return
	}
	var be httperr.BusinessError
	if errors.As(err, &be) {
		httperr.BadRequest(c, be.Code, be.Code)
		return
	}

	log.Error("request failed",
		zap.String("entity", entity),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	httperr.Internal(c, "internal_error", "Internal server error.")
}

func recordAudit(c *gin.Context, d *audit.Dispatcher, action, entity string, id uint, meta any) {
	ev := audit.Event{
		Action:   action,
		Entity:   entity,
		EntityID: &id,
		Metadata: meta,
	}
	if accountID, ok := middleware.AccountID(c); ok {
		ev.AccountID = &accountID
	}
	d.Dispatch(c.Request.Context(), ev)
}
