package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/tastebook/config"
	"github.com/ray-remotestate/tastebook/database"
	"github.com/ray-remotestate/tastebook/middlewares"
	"github.com/ray-remotestate/tastebook/server"
)

const shutdownTimeOut = 10 * time.Second

func main() {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	if err := config.Init(); err != nil {
		logrus.Panicf("failed to load configuration, error: %v", err)
	}

	if err := database.ConnectAndMigrate(config.DatabaseURL); err != nil {
		logrus.Panicf("failed to initialize database, error: %v", err)
	}
	logrus.Println("migration is successful")

	middlewares.InitSessions(config.SessionSecret)
	if config.FirstRun() {
		logrus.Warn("no admin password configured; visit / to run first-time setup")
	}

	svr := server.SetupRoutes()
	go func() {
		if err := svr.Run(config.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Panic("server stopped")
		}
	}()
	logrus.Printf("listening on %s", config.Port)

	<-done

	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeOut); err != nil {
		logrus.WithError(err).Error("failed to shut down server cleanly")
	}
	if err := database.ShutdownDatabase(); err != nil {
		logrus.WithError(err).Error("failed to close database connection!")
	}
	logrus.Info("system is shut ..zzz")
}
