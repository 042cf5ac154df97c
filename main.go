package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	port := envOr("PORT", "8080")
	dbPath := envOr("DB_PATH", "shooter.db")
	publicURL := envOr("PUBLIC_URL", "http://localhost:"+port)
	addr := ":" + port

	if lvl, err := log.ParseLevel(envOr("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(lvl)
	}
	log.SetReportTimestamp(true)

	db, err := OpenDB(dbPath)
	if err != nil {
		log.Warn("running without persistence", "path", dbPath, "err", err)
		db = nil
	}

	var analytics *Analytics
	if db != nil {
		analytics = NewAnalytics(db)
	}

	hub := NewHub(db, analytics)
	go hub.Run()

	mux := SetupRoutes(hub, publicURL)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		log.Info("server starting", "addr", addr, "db", dbPath)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal("listen failed", "err", err)
		}
	}()

	<-stop
	log.Info("shutting down")
	server.Close()
	if analytics != nil {
		analytics.Stop()
	}
	if db != nil {
		db.Close()
	}
}
