package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

type BookingHandler struct {
	bookings crud.Repository[models.Booking]
	create   *ucBooking.CreateBooking
	update   *ucBooking.UpdateBooking
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewBookingHandler(
	bookings crud.Repository[models.Booking],
	create *ucBooking.CreateBooking,
	update *ucBooking.UpdateBooking,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		create:   create,
		update:   update,
		audit:    audit,
		log:      log.With(zap.String("handler", "booking")),
	}
}

// --------- Requests ---------

// BookingRequest is the write shape: references are ids. A "user" in
// the body is accepted and ignored.
type BookingRequest struct {
	Shop          uint    `json:"shop"`
	Barber        *uint   `json:"barber"`
	Services      []uint  `json:"services"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	PaymentMethod *string `json:"payment_method"`
	Status        string  `json:"status"`
	User          any     `json:"user,omitempty"`
}

func (r BookingRequest) input() ucBooking.Input {
	return ucBooking.Input{
		ShopID:        r.Shop,
		BarberID:      r.Barber,
		ServiceIDs:    r.Services,
		Date:          r.Date,
		Time:          r.Time,
		PaymentMethod: r.PaymentMethod,
		Status:        r.Status,
	}
}

func bookingRequestFrom(in ucBooking.Input) BookingRequest {
	return BookingRequest{
		Shop:          in.ShopID,
		Barber:        in.BarberID,
		Services:      in.ServiceIDs,
		Date:          in.Date,
		Time:          in.Time,
		PaymentMethod: in.PaymentMethod,
		Status:        in.Status,
	}
}

// --------- Handlers ---------

// Every booking route runs behind RequireAuth, so the caller is known.
func caller(c *gin.Context) uint {
	id, _ := middleware.AccountID(c)
	return id
}

func (h *BookingHandler) List(c *gin.Context) {
	scopes := append(repository.BookingDocumentScopes(),
		crud.OwnedBy(caller(c)),
		crud.OrderByID(),
	)

	bookings, err := h.bookings.List(c.Request.Context(), scopes...)
	if err != nil {
		renderError(c, h.log, "booking", err)
		return
	}
	httpresp.List(c, dto.NewBookingDocuments(bookings))
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "booking")
	if !ok {
		return
	}
	h.respond(c, id, httpresp.OK)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req BookingRequest
	if !bindJSON(c, h.log, &req) {
		return
	}

	b, err := h.create.Execute(c.Request.Context(), caller(c), req.input())
	if err != nil {
		renderError(c, h.log, "booking", err)
		return
	}
	h.respond(c, b.ID, httpresp.Created)
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "booking")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	accountID := caller(c)

	var req BookingRequest
	if c.Request.Method == "PATCH" {
		current, err := h.update.Current(ctx, accountID, id)
		if err != nil {
			renderError(c, h.log, "booking", err)
			return
		}
		req = bookingRequestFrom(current)
	}
	if !bindJSON(c, h.log, &req) {
		return
	}

	b, err := h.update.Execute(ctx, accountID, id, req.input())
	if err != nil {
		renderError(c, h.log, "booking", err)
		return
	}
	h.respond(c, b.ID, httpresp.OK)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "booking")
	if !ok {
		return
	}
	accountID := caller(c)

	if err := h.bookings.Delete(c.Request.Context(), id, crud.OwnedBy(accountID)); err != nil {
		renderError(c, h.log, "booking", err)
		return
	}

	recordAudit(c, h.audit, "booking_deleted", "booking", id, nil)
	httpresp.NoContent(c)
}

func (h *BookingHandler) respond(c *gin.Context, id uint, write func(*gin.Context, any)) {
	scopes := append(repository.BookingDocumentScopes(), crud.OwnedBy(caller(c)))

	b, err := h.bookings.Get(c.Request.Context(), id, scopes...)
	if err != nil {
		renderError(c, h.log, "booking", err)
		return
	}
	write(c, dto.NewBookingDocument(*b))
}
