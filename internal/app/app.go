package app

import (
	"vows-backend/internal/auth"
	"vows-backend/internal/config"
	"vows-backend/internal/database"
	"vows-backend/internal/events"
	"vows-backend/internal/health"
	"vows-backend/internal/invitations"
	"vows-backend/internal/memberships"
	"vows-backend/internal/middleware"
	"vows-backend/internal/users"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApp builds the Fiber app with all global middleware and route
// registration. DB and Redis handles are returned for startup checks.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	// CORS (before session)
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	// Session (Redis)
	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}
	sessionHandler, rdb, err := middleware.Session(sessionCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(sessionHandler)

	// Health request marker (after session)
	app.Use(middleware.HealthMarker(rdb))

	// Tracing + route logger
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	// Health (no auth)
	healthHandlers := &health.Handlers{
		Rdb:            rdb,
		DB:             &gormDBPinger{db: db},
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/health/json", healthHandlers.JSON)
	app.Get("/health/reset", healthHandlers.Reset)

	// db may be nil when DATABASE_URL is unset (e.g. smoke tests); only the
	// health endpoints are mounted in that case.
	if db == nil {
		return app, db, rdb, nil
	}

	tokens := &auth.TokenService{DB: db, Secret: cfg.JWTSecret}
	requireAuth := middleware.RequireAuth(tokens.VerifyAccess)

	// Auth: login routes are public, me/logout ride the session middleware
	authHandlers := &auth.Handlers{DB: db, Tokens: tokens, Rdb: rdb, Config: sessionCfg}
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/login", authHandlers.Login)
	authGroup.Post("/login-mobile", authHandlers.LoginMobile)
	authGroup.Post("/refresh", authHandlers.Refresh)
	authGroup.Get("/me", authHandlers.Me)
	authGroup.Delete("/logout", authHandlers.Logout)

	// Users
	userService := &users.Service{DB: db}
	userHandlers := &users.Handlers{Service: userService}
	userGroup := app.Group("/api/v1/users")
	userGroup.Post("/register", userHandlers.Register)
	userGroup.Get("/me", requireAuth, userHandlers.Me)
	userGroup.Patch("/me", requireAuth, userHandlers.UpdateMe)

	// Events + members
	memberService := &memberships.Service{DB: db}
	memberHandlers := &memberships.Handlers{Service: memberService}
	eventService := &events.Service{DB: db, Members: memberService}
	eventHandlers := &events.Handlers{Service: eventService}
	eventGroup := app.Group("/api/v1/events", requireAuth)
	eventGroup.Post("/create-event", eventHandlers.CreateEvent)
	eventGroup.Get("/my-events", eventHandlers.MyEvents)
	eventGroup.Get("/:event_id/members", memberHandlers.ListEventMembers)
	eventGroup.Get("/:event_id", eventHandlers.ViewEvent)
	eventGroup.Patch("/:event_id", eventHandlers.UpdateEvent)
	eventGroup.Delete("/:event_id", eventHandlers.DeleteEvent)

	// Invitations
	invService := &invitations.Service{DB: db}
	invHandlers := &invitations.Handlers{Service: invService}
	invGroup := app.Group("/api/v1/invitations", requireAuth)
	invGroup.Post("/send", invHandlers.SendInvite)
	invGroup.Get("/list", invHandlers.ListInvitations)
	invGroup.Get("/available-roles/:event_id", invHandlers.AvailableRoles)
	invGroup.Post("/:invitation_id/:action", invHandlers.RespondInvitation)

	return app, db, rdb, nil
}
