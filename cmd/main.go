package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/chopexpress/chopexpress/bot"
	"github.com/chopexpress/chopexpress/config"
	"github.com/chopexpress/chopexpress/database"
	"github.com/chopexpress/chopexpress/database/dbhelper"
	"github.com/chopexpress/chopexpress/handlers"
	"github.com/chopexpress/chopexpress/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	var store *dbhelper.Store
	if cfg.DatabaseURL != "" {
		db, err := database.ConnectAndMigrate(cfg.DatabaseURL)
		if err != nil {
			logrus.Panicf("failed to initialize database, error: %v", err)
		}
		defer db.Close()
		store = dbhelper.NewStore(db)
	}

	processor := bot.NewProcessor(store, bot.LogSender{})
	h := handlers.New(store, processor, cfg.WhatsappVerifyToken, cfg.Environment)

	svr := server.SetupRoutes(h)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.Printf("listening on %s", cfg.Addr())
		if err := svr.Run(cfg.Addr()); err != nil && err != http.ErrServerClosed {
			logrus.Panicf("server failed, error: %v", err)
		}
	}()

	<-done

	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeout); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}
