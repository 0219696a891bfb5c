package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/travelease/callcenter/internal/infrastructure/cache"
	"github.com/travelease/callcenter/internal/infrastructure/config"
	"github.com/travelease/callcenter/internal/infrastructure/ratelimit"
	infravisa "github.com/travelease/callcenter/internal/infrastructure/visa"
	"github.com/travelease/callcenter/internal/shared/biztime"
	"github.com/travelease/callcenter/internal/shared/logger"
	"github.com/travelease/callcenter/internal/shared/services/markdown"
)

// Container holds every component of the HTTP application and wires them
// together. The *gorm.DB handle is created by the caller and shared by all
// repositories.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client
	clock  biztime.Clock

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	markdown    markdown.Renderer
	visaGateway *infravisa.CachedGateway
	visaLimiter ratelimit.Limiter
}

// NewContainer builds the application. redisClient may be nil, in which
// case the visa cache is disabled and rate limiting is kept in memory.
func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine:   gin.New(),
		db:       db,
		cfg:      cfg,
		log:      log,
		redis:    redisClient,
		clock:    biztime.NewSystemClock(),
		markdown: markdown.NewRenderer(),
	}

	c.initInfrastructure()
	c.initRepositories()
	c.initUseCases()
	c.initHandlers()

	return c
}

func (c *Container) initInfrastructure() {
	var applicationCache infravisa.ApplicationCache = cache.NopVisaApplicationCache{}
	if c.redis != nil {
		applicationCache = cache.NewRedisVisaApplicationCache(c.redis, c.cfg.Visa.CacheTTL, c.log.Named("visa-cache"))
	}

	client := infravisa.NewClient(c.cfg.Visa.BaseURL, c.cfg.Visa.Timeout, c.log.Named("visa-client"))
	c.visaGateway = infravisa.NewCachedGateway(client, applicationCache, c.log.Named("visa-gateway"))

	limitCfg := ratelimit.Config{
		Requests: c.cfg.RateLimit.Requests,
		Window:   c.cfg.RateLimit.Window,
	}
	if !limitCfg.Enabled() {
		return
	}
	if c.redis != nil {
		c.visaLimiter = ratelimit.NewRedisLimiter(c.redis, limitCfg, c.clock)
	} else {
		c.visaLimiter = ratelimit.NewMemoryLimiter(limitCfg, c.clock)
	}
}

// Shutdown releases the Redis connection. The database handle belongs to
// the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
