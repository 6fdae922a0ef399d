package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AuditLogsHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAuditLogsHandler(db *gorm.DB, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{
		db:  db,
		log: log.With(zap.String("handler", "audit_logs")),
	}
}

// List pages through audit entries, newest first. Staff see every
// entry, other accounts only their own.
func (h *AuditLogsHandler) List(c *gin.Context) {
	acc, _ := middleware.CurrentAccount(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	switch {
	case limit <= 0:
		limit = 50
	case limit > 200:
		limit = 200
	}

	offset := (page - 1) * limit

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})
	if acc == nil || !acc.IsStaff {
		var id uint
		if acc != nil {
			id = acc.ID
		}
		q = q.Where("account_id = ?", id)
	}

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		q = q.Where("created_at >= ?", from)
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		q = q.Where("created_at < ?", to.Add(24*time.Hour))
	}

	// reusable for both the count and the page query
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		renderError(c, h.log, "audit log", err)
		return
	}

	logs := make([]models.AuditLog, 0)
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		renderError(c, h.log, "audit log", err)
		return
	}

	httpresp.Page(c, logs, total, page, limit)
}
