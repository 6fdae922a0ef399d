package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/media"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// Deps are the singletons the routes are built from. Uploader may be nil.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *zap.Logger
	Tokens   auth.TokenStore
	Uploader media.Uploader
}

// resource is one endpoint group: list, retrieve, create, update, delete.
type resource interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func RegisterRoutes(r *gin.Engine, d Deps) error {
	if err := validators.RegisterGin(); err != nil {
		return err
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Log),
		middleware.Recover(d.Log),
		middleware.CORSMiddleware(d.Config.AllowsOrigin),
	)

	// ======================================================
	// INFRA
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(d.DB)
	shopRepo := infraRepo.NewShopGormRepository(d.DB)
	serviceRepo := infraRepo.NewServiceGormRepository(d.DB)
	barberRepo := infraRepo.NewBarberGormRepository(d.DB)
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	reviewRepo := infraRepo.NewGormRepository[models.Review](d.DB)

	auditDispatcher := audit.NewDispatcher(audit.New(d.DB), d.Log)
	issuer := auth.NewIssuer(
		d.Config.JWTSecret,
		d.Config.AccessTokenTTL,
		d.Config.RefreshTokenTTL,
		d.Tokens,
	)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, shopRepo, barberRepo, serviceRepo, auditDispatcher)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, shopRepo, barberRepo, serviceRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(accountRepo, issuer, auditDispatcher, d.Log)
	meHandler := handlers.NewMeHandler(accountRepo, auditDispatcher, d.Log)
	shopHandler := handlers.NewShopHandler(shopRepo, auditDispatcher, d.Log)
	serviceHandler := handlers.NewServiceHandler(serviceRepo, shopRepo, auditDispatcher, d.Log)
	barberHandler := handlers.NewBarberHandler(barberRepo, shopRepo, auditDispatcher, d.Log)
	reviewHandler := handlers.NewReviewHandler(reviewRepo, shopRepo, auditDispatcher, d.Log)
	bookingHandler := handlers.NewBookingHandler(bookingRepo, createBookingUC, updateBookingUC, auditDispatcher, d.Log)
	mediaHandler := handlers.NewMediaHandler(shopRepo, barberRepo, d.Uploader, auditDispatcher, d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, d.Log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.Authenticate(issuer, accountRepo, d.Log))
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		handle(api, http.MethodPost, "/auth/users", authHandler.Register)
		handle(api, http.MethodPost, "/auth/jwt/create", authHandler.Login)
		handle(api, http.MethodPost, "/auth/jwt/refresh", authHandler.Refresh)
		handle(api, http.MethodPost, "/auth/jwt/verify", authHandler.Verify)
		handle(api, http.MethodPost, "/auth/jwt/logout", authHandler.Logout)

		secured := api.Group("")
		secured.Use(middleware.RequireAuth())
		{
			handle(secured, http.MethodGet, "/auth/users/me", meHandler.GetMe)
			handle(secured, http.MethodPut, "/auth/users/me", meHandler.UpdateMe)
			handle(secured, http.MethodPatch, "/auth/users/me", meHandler.UpdateMe)

			handle(secured, http.MethodGet, "/audit-logs", auditLogsHandler.List)

			handle(secured, http.MethodPost, "/shops/:id/image", mediaHandler.ShopImage)
			handle(secured, http.MethodPost, "/barbers/:id/avatar", mediaHandler.BarberAvatar)

			// owner-scoped
			registerResource(secured, "/bookings", bookingHandler)
		}

		// ------------------------------
		// OPEN READ, AUTHENTICATED WRITE
		// ------------------------------
		openRead := api.Group("")
		openRead.Use(middleware.RequireAuthForWrites())
		{
			registerResource(openRead, "/shops", shopHandler)
			registerResource(openRead, "/services", serviceHandler)
			registerResource(openRead, "/barbers", barberHandler)
			registerResource(openRead, "/reviews", reviewHandler)
		}
	}

	return nil
}

func registerResource(g *gin.RouterGroup, path string, h resource) {
	handle(g, http.MethodGet, path, h.List)
	handle(g, http.MethodPost, path, h.Create)
	handle(g, http.MethodGet, path+"/:id", h.Get)
	handle(g, http.MethodPut, path+"/:id", h.Update)
	handle(g, http.MethodPatch, path+"/:id", h.Update)
	handle(g, http.MethodDelete, path+"/:id", h.Delete)
}

// handle registers path with and without a trailing slash.
func handle(g *gin.RouterGroup, method, path string, h gin.HandlerFunc) {
	path = strings.TrimSuffix(path, "/")
	g.Handle(method, path, h)
	g.Handle(method, path+"/", h)
}
