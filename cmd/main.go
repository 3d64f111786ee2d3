// jobshield-verify-service
//
// Fraud verification for job postings. Combines a statistical
// classifier verdict with deterministic rule checks:
//   - POST /api/v1/verify — classify a posting, apply rule overrides,
//     return the final label with curated findings and scores
//   - POST /api/v1/scrape — pre-fill posting fields from a LinkedIn URL
//
// Stores anonymized submissions in PostgreSQL for later model
// retraining and publishes EVENT_POSTING_VERIFIED to Redis.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobshield/verify-service/internal/classifier"
	"jobshield/verify-service/internal/config"
	"jobshield/verify-service/internal/db"
	"jobshield/verify-service/internal/rules"
	"jobshield/verify-service/internal/scheduler"
	"jobshield/verify-service/internal/scraper"
	"jobshield/verify-service/internal/server"
	"jobshield/verify-service/internal/store"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[verify-service] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	log.Println("[verify-service] Connecting to PostgreSQL…")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[verify-service] PostgreSQL: %v", err)
	}
	defer pool.Close()
	log.Println("[verify-service] PostgreSQL connected ✓")

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Println("[verify-service] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[verify-service] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[verify-service] Redis connected ✓")

	// ── Verification pipeline ────────────────────────────────────────────────
	engine := rules.NewEngine(rules.DefaultRuleset(), rules.NewSpellChecker(), nil)
	clf := classifier.NewHTTPClassifier(cfg.ClassifierURL)
	subs := store.NewSubmissions(pool)
	linkedin := scraper.NewLinkedIn(rdb)

	// ── Retention scheduler ──────────────────────────────────────────────────
	sched := scheduler.New(subs, cfg.RetentionDays)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("[verify-service] Scheduler: %v", err)
	}
	defer sched.Stop()

	// ── HTTP server ──────────────────────────────────────────────────────────
	api := server.New(engine, clf, subs, linkedin, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      api.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("[verify-service] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[verify-service] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[verify-service] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[verify-service] Shutdown error: %v", err)
	}
	log.Println("[verify-service] Stopped.")
}
