package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"minitwit/internal/config"
	"minitwit/internal/core"
	"minitwit/internal/credential"
	"minitwit/internal/db"
	"minitwit/internal/http/handler"
	"minitwit/internal/http/handler/middleware"
	"minitwit/internal/http/payload"
	"minitwit/internal/http/server"
	"minitwit/internal/repository"
	"minitwit/pkg/jwt"
	"minitwit/pkg/log"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"
)

const tokenTTL = 24 * time.Hour

func Start() error {
	logger := log.NewZapLogger("minitwit", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewGormDB(config.DBDriver, config.DBConnectionURL, config.DBDebug)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err, "driver", config.DBDriver)
		return err
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Errorw("failed to close database", "error", err)
		}
	}()

	// repository
	repo := repository.NewSimulatorRepository(dbConn)
	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// simulator
	simulator := core.NewSimulator(
		logger,
		repo,
		credential.NewBcryptHasher(config.BcryptCost),
		jwt.NewJWTService([]byte(config.JWTSecret)),
		core.NewMetrics(prometheus.DefaultRegisterer),
		core.Options{
			AllowSelfFollow: config.AllowSelfFollow,
			TokenTTL:        tokenTTL,
		})

	// handler
	simHlr := handler.NewSimHandler(
		logger,
		payload.Decoder{},
		simulator)

	// register routes
	router := mux.NewRouter()
	router.Use(middleware.NewMetricsMiddleware(prometheus.DefaultRegisterer).Metrics)
	router.Handle(handler.PathMetrics, promhttp.Handler()).Methods(http.MethodGet)
	simHlr.Routes(router)

	// middleware
	var hdlr http.Handler = router
	hdlr = middleware.NewSimulatorAuthMiddleware(config.SimulatorAuth,
		handler.PathLatest,
		handler.PathLogin,
		handler.PathMetrics).Authorize(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
