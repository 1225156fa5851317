package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hotelaria/hotel-gateway/internal/api/handler"
	"github.com/hotelaria/hotel-gateway/internal/api/middleware"
	"github.com/hotelaria/hotel-gateway/internal/api/session"
	"github.com/hotelaria/hotel-gateway/internal/core/service"
	mongodb "github.com/hotelaria/hotel-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/hotelaria/hotel-gateway/internal/infrastructure/db/redis"
	"github.com/hotelaria/hotel-gateway/internal/infrastructure/upstream"
	"github.com/hotelaria/hotel-gateway/web"
)

// Options carries everything the router needs to assemble the gateway.
type Options struct {
	APIURL    string
	JWTSecret string
	Secure    bool
	Logger    zerolog.Logger
	Mongo     *mongo.Database
	Redis     *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	renderer, err := handler.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hotel_gateway"))

	// --- Dependencies ---
	sessions := session.NewManager(opts.Secure)
	tokens := service.NewTokenService(opts.JWTSecret)
	guard := service.NewGuardService(tokens)
	up := upstream.NewClient(opts.APIURL, 0)
	limiter := redisdb.NewLoginLimiter(opts.Redis)
	audit := mongodb.NewAuditRepository(opts.Mongo)

	authHandler := handler.NewAuthHandler(up, sessions, limiter, audit, opts.Logger)
	proxyHandler := handler.NewProxyHandler(up, sessions, opts.Logger)
	pages := handler.NewPageHandler()

	// The guard runs before every handler; its own classification exempts
	// the pass-through paths registered below.
	e.Use(middleware.Guard(guard, sessions))

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/login/huesped", authHandler.GuestLogin)
	e.POST("/api/auth/registro", authHandler.Register)
	e.POST("/api/auth/logout", authHandler.Logout)

	// --- Authenticated proxy (all verbs, one implementation) ---
	e.Any("/api/proxy", proxyHandler.Forward)

	// --- Page surfaces ---
	e.GET("/login", pages.Login)
	e.GET("/registro", pages.Register)
	e.GET("/dashboard", pages.Dashboard)
	e.GET("/dashboard/:section", pages.Dashboard)
	e.GET("/portal", pages.Portal)
	e.GET("/portal/:section", pages.Portal)

	// --- Static assets ---
	e.StaticFS("/static", echo.MustSubFS(web.Static, "static"))

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.Mongo, opts.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e, nil
}
