package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/travelease/callcenter/internal/infrastructure/config"
	"github.com/travelease/callcenter/internal/interfaces/http/middleware"
	"github.com/travelease/callcenter/internal/interfaces/http/routes"
	"github.com/travelease/callcenter/internal/shared/constants"
	"github.com/travelease/callcenter/internal/shared/logger"
	"github.com/travelease/callcenter/internal/shared/utils"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter builds the container and registers every route.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	r := &Router{Container: NewContainer(db, redisClient, cfg, log)}
	r.SetupRoutes()
	return r
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CustomLogger(r.log.Named("http")))
	r.engine.Use(middleware.Recovery(r.log.Named("recovery")))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.NoRoute(func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusNotFound, "Not found")
	})

	r.engine.GET("/", r.hdlrs.healthHandler.Root)
	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)

	var visaRateLimit gin.HandlerFunc
	if r.visaLimiter != nil {
		visaRateLimit = middleware.RateLimit(r.visaLimiter, "visa", r.log.Named("ratelimit"))
	}

	api := r.engine.Group(constants.APIPrefix)

	routes.SetupAgentRoutes(api, &routes.AgentRouteConfig{
		AgentHandler: r.hdlrs.agentHandler,
	})
	routes.SetupCustomerRoutes(api, &routes.CustomerRouteConfig{
		CustomerHandler: r.hdlrs.customerHandler,
	})
	routes.SetupCallRoutes(api, &routes.CallRouteConfig{
		CallHandler: r.hdlrs.callHandler,
	})
	routes.SetupBookingRoutes(api, &routes.BookingRouteConfig{
		BookingHandler: r.hdlrs.bookingHandler,
		VisaRateLimit:  visaRateLimit,
	})
	routes.SetupNoteRoutes(api, &routes.NoteRouteConfig{
		NoteHandler: r.hdlrs.noteHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
