package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/movie-ticket-booking/internal/config"
	"github.com/iliyamo/movie-ticket-booking/internal/handler"
	"github.com/iliyamo/movie-ticket-booking/internal/middleware"
	"github.com/iliyamo/movie-ticket-booking/internal/queue"
	"github.com/iliyamo/movie-ticket-booking/internal/router"
	"github.com/iliyamo/movie-ticket-booking/internal/store"
)

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()
	cfg := config.Load()

	// All application state lives in this one store; it is handed to
	// every handler explicitly and is lost on restart.
	st := store.New()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	// Redis is optional infrastructure: without it the limiter and the
	// response cache become pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response caching disabled")
	}
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.ResponseCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAdmin(e, &handler.AdminHandler{Store: st})
	router.RegisterPublic(e, &handler.PublicHandler{Store: st})
	router.RegisterBooking(e, &handler.BookingHandler{Store: st, PublishEvents: cfg.EventsEnabled})

	if cfg.EventsEnabled {
		go queue.StartBookingConsumer()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
