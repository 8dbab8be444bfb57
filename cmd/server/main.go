package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/hawkar/hawkar-web/internal/api"
	"github.com/hawkar/hawkar-web/internal/config"
	"github.com/hawkar/hawkar-web/internal/handler"
	appmw "github.com/hawkar/hawkar-web/internal/middleware"
	"github.com/hawkar/hawkar-web/internal/router"
	"github.com/hawkar/hawkar-web/internal/session"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	// Remote data API clients.
	client := api.New(cfg.APIBaseURL)
	users := api.NewUserAPI(client)
	stalls := api.NewStallAPI(client)
	admin := api.NewAdminAPI(client)

	// Session plumbing: cookie store, typed reader, profile refresher.
	store := session.NewStore()
	reader := session.NewReader(store)
	refresher := session.NewRefresher(reader, users)
	guard := handler.NewPageGuard(reader, refresher)

	// Redis is optional; when it is unreachable the cache and the rate
	// limiter silently become pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable: response cache and rate limiting disabled")
	}
	cache := appmw.NewResponseCache(config.LoadCacheConfig(), rdb)
	limiter := appmw.NewRateLimiter(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	e.Use(appmw.Guard()) // edge enforcement before any page code runs

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(store, users), limiter)
	router.RegisterPages(e,
		handler.NewConsumerHandler(guard, stalls),
		handler.NewHawkerHandler(guard, stalls),
		handler.NewAdminHandler(guard, admin),
	)
	router.RegisterPublic(e, handler.NewDirectoryHandler(stalls), cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, api=%s)", addr, cfg.Env, cfg.APIBaseURL)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
