// Package server exposes the template designer over HTTP.
package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/stencil/internal/config"
	"github.com/smallbiznis/stencil/internal/designer/catalog"
	"github.com/smallbiznis/stencil/internal/designer/render"
	templatedomain "github.com/smallbiznis/stencil/internal/invoicetemplate/domain"
	"github.com/smallbiznis/stencil/internal/observability/logger"
	"github.com/smallbiznis/stencil/internal/observability/metrics"
	"github.com/smallbiznis/stencil/internal/orgcontext"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const orgIDHeader = "X-Org-Id"

type Server struct {
	cfg         config.Config
	log         *zap.Logger
	templateSvc templatedomain.Service
	catalog     *catalog.Catalog
	htmlRender  *render.HTMLRenderer
	metrics     *metrics.HTTPMetrics
	previewRate *rateLimiter
}

type ServerParam struct {
	fx.In

	Config      config.Config
	Log         *zap.Logger
	TemplateSvc templatedomain.Service
	Catalog     *catalog.Catalog
	Metrics     *metrics.HTTPMetrics
}

func NewServer(p ServerParam) *Server {
	return &Server{
		cfg:         p.Config,
		log:         p.Log.Named("server"),
		templateSvc: p.TemplateSvc,
		catalog:     p.Catalog,
		htmlRender:  render.NewHTMLRenderer(),
		metrics:     p.Metrics,
		previewRate: newRateLimiter(p.Config.PreviewRateLimit, time.Minute),
	}
}

// NewEngine builds the gin engine with the shared middleware chain.
func NewEngine(cfg config.Config, m *metrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{SkipPaths: []string{"/healthz", "/metrics"}}))
	engine.Use(m.GinMiddleware())
	return engine
}

// RegisterRoutes mounts the API surface.
func (s *Server) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", s.metrics.Handler())

	api := engine.Group("/api", s.orgMiddleware())
	{
		api.GET("/templates", s.ListTemplates)
		api.POST("/templates", s.CreateTemplate)
		api.GET("/templates/:id", s.GetTemplateByID)
		api.PATCH("/templates/:id", s.UpdateTemplate)
		api.DELETE("/templates/:id", s.DeleteTemplate)
		api.POST("/templates/:id/default", s.SetDefaultTemplate)
		api.POST("/templates/:id/duplicate", s.DuplicateTemplate)
		api.POST("/templates/:id/layout", s.SaveTemplateLayout)
		api.POST("/templates/:id/preview", s.PreviewTemplate)
		api.GET("/catalog", s.ListCatalog)
		api.POST("/catalog/:type/instantiate", s.InstantiateComponent)
	}
}

// orgMiddleware resolves the owning organization. Session handling is
// an external collaborator; the gateway injects the org header.
func (s *Server) orgMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID := strings.TrimSpace(c.GetHeader(orgIDHeader))
		if orgID == "" {
			AbortWithError(c, newValidationError("org", "missing_org", "organization header is required"))
			return
		}
		ctx := orgcontext.WithOrgID(c.Request.Context(), orgID)
		if _, ok := orgcontext.OrgID(ctx); !ok {
			AbortWithError(c, newValidationError("org", "invalid_org", "organization id must be a UUID"))
			return
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RunHTTP starts the listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, engine *gin.Engine, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.log.Info("http listening", zap.String("addr", s.cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					s.log.Error("http server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(metrics.NewHTTPMetrics),
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(engine *gin.Engine, s *Server) {
		s.RegisterRoutes(engine)
	}),
	fx.Invoke(RunHTTP),
)
