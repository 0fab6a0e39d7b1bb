package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/agenson/cinema-booking/internal/config"
	"github.com/agenson/cinema-booking/internal/database"
	"github.com/agenson/cinema-booking/internal/engine"
	"github.com/agenson/cinema-booking/internal/handler"
	"github.com/agenson/cinema-booking/internal/middleware"
	"github.com/agenson/cinema-booking/internal/queue"
	"github.com/agenson/cinema-booking/internal/repository"
	"github.com/agenson/cinema-booking/internal/router"
	"github.com/agenson/cinema-booking/internal/security"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache, rate limiting and logout revocation disabled")
	}
	deny := security.NewDenylist(rdb)

	store := repository.NewStore(db)
	users := engine.NewUserService(store, cfg.BcryptCost)
	movies := engine.NewMovieService(store)
	rooms := engine.NewRoomService(store)
	orders := engine.NewOrderService(store)
	tickets := engine.NewTicketService(store)

	authH := handler.NewAuthHandler(cfg, users, deny)
	movieH := handler.NewMovieHandler(movies)
	roomH := handler.NewRoomHandler(rooms, tickets)
	orderH := handler.NewOrderHandler(orders, tickets)
	ticketH := handler.NewTicketHandler(tickets, rooms, movies)
	userH := handler.NewUserHandler(users)

	e := echo.New()
	e.Use(middleware.Authenticate(cfg.JWTSecret, deny))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH)
	router.RegisterBrowse(e, movieH, roomH,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	)
	router.RegisterAPI(e, movieH, roomH, orderH, ticketH, userH)

	// Reservation events are logged out-of-process style by a background
	// consumer; the server keeps running if the broker is down.
	go func() {
		if err := queue.StartTicketConsumer(); err != nil {
			log.Printf("ticket consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
