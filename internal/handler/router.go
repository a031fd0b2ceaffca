package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"store-reservation/internal/domain/user"
	"store-reservation/internal/handler/api"
	"store-reservation/internal/handler/middleware"
	"store-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	User        *api.UserHandler
	Partner     *api.PartnerHandler
	Store       *api.StoreHandler
	Reservation *api.ReservationHandler
	Review      *api.ReviewHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireUser := authMiddleware.RequireRole(user.RoleUser)
	requirePartner := authMiddleware.RequireRole(user.RolePartner)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/user/login", Handler: h.Auth.UserLogin},
				{Method: http.MethodPost, Path: "/partner/login", Handler: h.Auth.PartnerLogin},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "", Handler: h.User.Register},
				{Method: http.MethodGet, Path: "/me/reservations", Handler: h.User.ListReservations, Mw: []gin.HandlerFunc{requireAuth, requireUser}},
				{Method: http.MethodGet, Path: "/me/reviews", Handler: h.User.ListReviews, Mw: []gin.HandlerFunc{requireAuth, requireUser}},
			})
		}

		partners := apiGroup.Group("/partners")
		{
			addRoutes(partners, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Partner.Register},
				{Method: http.MethodGet, Path: "/me/reservations", Handler: h.Partner.ListReservations, Mw: []gin.HandlerFunc{requireAuth, requirePartner}},
			})
		}

		stores := apiGroup.Group("/stores")
		{
			addRoutes(stores, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Store.Search},
				{Method: http.MethodGet, Path: "/:name", Handler: h.Store.Get},
				{Method: http.MethodGet, Path: "/:name/reviews", Handler: h.Store.ListReviews},
				{Method: http.MethodPost, Path: "", Handler: h.Store.Register, Mw: []gin.HandlerFunc{requireAuth, requirePartner}},
				{Method: http.MethodPut, Path: "/:name", Handler: h.Store.Update, Mw: []gin.HandlerFunc{requireAuth, requirePartner}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: []gin.HandlerFunc{requireAuth, requireUser}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Reservation.ChangeStatus, Mw: []gin.HandlerFunc{requireAuth, requirePartner}},
				// Kiosk endpoint, no login session
				{Method: http.MethodPost, Path: "/:id/arrival", Handler: h.Reservation.ArrivalCheck},
			})
		}

		reviews := apiGroup.Group("/reviews")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Add, Mw: []gin.HandlerFunc{requireAuth, requireUser}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Review.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Review.Edit, Mw: []gin.HandlerFunc{requireAuth, requireUser}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
