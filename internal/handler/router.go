package handler

import (
	"net/http"

	"hotel-admin/internal/domain/operator"
	"hotel-admin/internal/handler/api"
	"hotel-admin/internal/handler/middleware"
	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Entry     *api.EntryHandler
	Records   *api.RecordsHandler
	Dashboard *api.DashboardHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	logger *middleware.Logger,
	recorder *metrics.Recorder,
) {
	setupMiddleware(engine, cfg, logger, recorder)
	setupRoutes(engine, h, authMiddleware, recorder)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, recorder *metrics.Recorder) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.MetricsMiddleware(recorder))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, recorder *metrics.Recorder) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(recorder.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	entry := engine.Group("")
	entry.Use(authMiddleware.OptionalAuth())
	addRoutes(entry, []route{
		{Method: http.MethodGet, Path: "/", Handler: h.Entry.Root},
		{Method: http.MethodGet, Path: "/dashboard", Handler: h.Entry.Dashboard},
	})

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		decide := authMiddleware.RequireRoleAtLeast(operator.RoleOperator)

		records := apiGroup.Group("")
		records.Use(authMiddleware.RequireAuth())
		{
			addRoutes(records, []route{
				{Method: http.MethodGet, Path: "/users", Handler: h.Records.ListUsers},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Records.ListBookings},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Records.UpdateBookingStatus, Mw: []gin.HandlerFunc{decide}},
			})
		}

		views := apiGroup.Group("/dashboard/views")
		views.Use(authMiddleware.RequireAuth())
		{
			addRoutes(views, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Dashboard.Mount},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Dashboard.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Dashboard.Unmount},
				{Method: http.MethodPost, Path: "/:id/more", Handler: h.Dashboard.More},
				{Method: http.MethodGet, Path: "/:id/events", Handler: h.Dashboard.Events},
				{Method: http.MethodGet, Path: "/:id/export", Handler: h.Dashboard.Export},
				{Method: http.MethodGet, Path: "/:id/intent", Handler: h.Dashboard.GetIntent},
				{Method: http.MethodPost, Path: "/:id/intent", Handler: h.Dashboard.RequestIntent, Mw: []gin.HandlerFunc{decide}},
				{Method: http.MethodPost, Path: "/:id/intent/confirm", Handler: h.Dashboard.ConfirmIntent, Mw: []gin.HandlerFunc{decide}},
				{Method: http.MethodPost, Path: "/:id/intent/cancel", Handler: h.Dashboard.CancelIntent},
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
