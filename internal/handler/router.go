package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-quote-engine/internal/handler/api"
	"hotel-quote-engine/internal/handler/middleware"
	"hotel-quote-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, hotelHandler *api.HotelHandler, quoteHandler *api.QuoteHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, hotelHandler, quoteHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

const maxQuoteBody = 16 << 10

func setupRoutes(engine *gin.Engine, hotelHandler *api.HotelHandler, quoteHandler *api.QuoteHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	hotels := engine.Group("/hotels/api")
	{
		addRoutes(hotels, []route{
			{Method: http.MethodGet, Path: "/list/", Handler: hotelHandler.List},
			{Method: http.MethodGet, Path: "/search/", Handler: hotelHandler.Search},
			{Method: http.MethodGet, Path: "/:id/", Handler: hotelHandler.Get},
			{Method: http.MethodGet, Path: "/:id/occupancy/", Handler: hotelHandler.Occupancy},
			{Method: http.MethodPost, Path: "/check-availability/", Handler: quoteHandler.CheckAvailability, Mw: []gin.HandlerFunc{middleware.MaxBodyBytes(maxQuoteBody)}},
			{Method: http.MethodPost, Path: "/calculate-price/", Handler: quoteHandler.CalculatePrice, Mw: []gin.HandlerFunc{middleware.MaxBodyBytes(maxQuoteBody)}},
		})
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
