package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homequest/backend/config"
	"github.com/homequest/backend/pkg/logger"
	"github.com/homequest/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)
type MiddlewareFunc func(ctx context.Context, r *http.Request) (context.Context, error)

// Router wraps gin with generic endpoint registration. Every request context
// is preloaded with the database, configs and logger, so domain methods only
// deal with context.Context.
type Router struct {
	Inner gin.IRouter

	cfg        config.Configs
	log        logger.Logger
	db         *gorm.DB
	middleware []MiddlewareFunc
}

func New(db *gorm.DB, cfg config.Configs, log logger.Logger) *Router {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Router{
		Inner: gin.New(),
		cfg:   cfg,
		log:   log,
		db:    db,
	}
}

// Before appends a middleware running ahead of every handler registered
// afterwards on this router.
func (r *Router) Before(middleware MiddlewareFunc) {
	r.middleware = append(r.middleware, middleware)
}

func (r *Router) Branch(pattern string) *Router {
	return &Router{
		Inner:      r.Inner.Group(pattern),
		cfg:        r.cfg,
		log:        r.log,
		db:         r.db,
		middleware: append([]MiddlewareFunc{}, r.middleware...),
	}
}

func (r *Router) Handler() http.Handler {
	return r.Inner.(*gin.Engine)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) baseContext(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	ctx = xcontext.WithDB(ctx, r.db)
	ctx = xcontext.WithConfigs(ctx, r.cfg)
	ctx = xcontext.WithLogger(ctx, r.log)
	return ctx
}

func wrapHandler[Request, Response any](
	r *Router, method string, handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = ginCtx.ShouldBindQuery(&req)
		default:
			err = ginCtx.ShouldBindJSON(&req)
		}

		if err != nil {
			writeError(ginCtx, newBadBindError(err))
			return
		}

		ctx := r.baseContext(ginCtx)
		for _, m := range r.middleware {
			if ctx, err = m(ctx, ginCtx.Request); err != nil {
				writeError(ginCtx, err)
				return
			}
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			writeError(ginCtx, err)
			return
		}

		ginCtx.JSON(http.StatusOK, newResponse(resp))
	}
}
