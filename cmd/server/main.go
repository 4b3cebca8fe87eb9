package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"staffhub/internal/config"
	"staffhub/internal/db"
	"staffhub/internal/domain/attendance"
	"staffhub/internal/domain/audit"
	"staffhub/internal/domain/leave"
	"staffhub/internal/domain/reports"
	"staffhub/internal/domain/staff"
	"staffhub/internal/domain/task"
	"staffhub/internal/domain/team"
	"staffhub/internal/domain/user"
	attendancehandler "staffhub/internal/transport/http/handlers/attendance"
	audithandler "staffhub/internal/transport/http/handlers/audit"
	authhandler "staffhub/internal/transport/http/handlers/auth"
	leavehandler "staffhub/internal/transport/http/handlers/leave"
	reportshandler "staffhub/internal/transport/http/handlers/reports"
	staffhandler "staffhub/internal/transport/http/handlers/staff"
	taskhandler "staffhub/internal/transport/http/handlers/task"
	teamhandler "staffhub/internal/transport/http/handlers/team"
	"staffhub/internal/transport/http/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	users := user.NewService(user.NewStore(pool))
	profiles := staff.NewStore(pool)
	staffSvc := staff.NewService(profiles, users.Store)
	attendanceSvc := attendance.NewService(attendance.NewStore(pool))
	leaveSvc := leave.NewService(leave.NewStore(pool))
	taskSvc := task.NewService(task.NewStore(pool))
	teamSvc := team.NewService(team.NewStore(pool), users, profiles)
	reportsSvc := reports.NewService(reports.NewStore(pool))
	auditSvc := audit.New(pool, logger)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(chimw.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.SecureHeaders(!cfg.Development()))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	loginLimiter := middleware.RateLimit(cfg.LoginRatePerMinute, time.Minute)

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(users, auditSvc, cfg.JWTSecret, cfg.TokenTTL).RegisterRoutes(r, loginLimiter)
		attendancehandler.NewHandler(attendanceSvc, auditSvc).RegisterRoutes(r)
		leavehandler.NewHandler(leaveSvc, auditSvc).RegisterRoutes(r)
		staffhandler.NewHandler(staffSvc, auditSvc).RegisterRoutes(r)
		taskhandler.NewHandler(taskSvc, auditSvc).RegisterRoutes(r)
		teamhandler.NewHandler(teamSvc, auditSvc).RegisterRoutes(r)
		reportshandler.NewHandler(reportsSvc).RegisterRoutes(r)
		audithandler.NewHandler(auditSvc).RegisterRoutes(r)
	})

	log.Printf("staffhub server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
