package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	"github.com/jayarAsio/stl-gaming-system-sub001/internal/config"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/handlers/event"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/handlers/job"
	post_result "github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/handlers/schedule/result"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/handlers/schedule/today"
	verify_ticket "github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/handlers/ticket/verify"
	mwLogger "github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/middleware/logger"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/lib/logger/handler/slogpretty"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/lib/logger/sl"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/schedule"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/ticket"
	"github.com/jayarAsio/stl-gaming-system-sub001/internal/verify"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting teller server...", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	source := schedule.NewSource(cfg.Schedule, log)
	parser := ticket.NewParser(log)
	payout := verify.NewPayoutCalculator(cfg.Payout)
	engine := verify.NewEngine(payout, log)

	hub := event.NewHub(log)
	hub.RunServer()

	dispatcher := job.NewDispatcher(64)
	dispatcher.StartWorkers(2)

	verifyTicket := verify_ticket.NewVerifyTicket(log, parser, source, engine)
	scheduleToday := today.NewToday(log, source)
	postResult := post_result.NewPostResult(log, source, hub, dispatcher)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mwLogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/ticket/verify", verifyTicket.New())
	router.Get("/schedule", scheduleToday.New())
	router.Post("/draw/result", postResult.New())
	router.Get("/ws", hub.HandleConnection)

	log.Info("Server started", slog.String("address", cfg.Address))

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("Server failed", sl.Err(err))
		os.Exit(1)
	}

	log.Error("Server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlogLogger()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlogLogger() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
