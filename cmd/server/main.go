package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mts-ml/eManage-sub000/clients"
	"github.com/mts-ml/eManage-sub000/expenses"
	"github.com/mts-ml/eManage-sub000/internal/config"
	"github.com/mts-ml/eManage-sub000/products"
	"github.com/mts-ml/eManage-sub000/purchases"
	"github.com/mts-ml/eManage-sub000/sales"
	"github.com/mts-ml/eManage-sub000/server"
	"github.com/mts-ml/eManage-sub000/suppliers"
	"github.com/mts-ml/eManage-sub000/token/refresh"
	"github.com/mts-ml/eManage-sub000/users"
)

func main() {
	// Missing .env is fine, env vars can come from the environment itself.
	_ = godotenv.Load()
	setupLogging()

	for {
		if err := run(); err != nil {
			log.Error().Err(err).Msg("server exited with error")
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	repos := server.Repos{
		Users:         users.NewInMemoryRepo(),
		RefreshTokens: refresh.NewInMemoryRepo(),
		Clients:       clients.NewInMemoryRepo(),
		Suppliers:     suppliers.NewInMemoryRepo(),
		Products:      products.NewInMemoryRepo(),
		Sales:         sales.NewInMemoryRepo(),
		Purchases:     purchases.NewInMemoryRepo(),
		Expenses:      expenses.NewInMemoryRepo(),
	}

	apiServer, err := server.New(c, repos)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: apiServer}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if config.GetEnv("ENV", "DEV") == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel)
	}
}

func listenAndServe(httpServer *http.Server) {
	log.Info().Str("addr", httpServer.Addr).Msg("server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(httpServer *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
