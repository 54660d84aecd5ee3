package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/config"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/cover"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/generator"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/handler"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/locale"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/queue"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/server"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/service"
	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/circuit_breaker"
	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/kafka"
	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/logger"
)

func Run(cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "bookgen")
	defer log.Sync() //nolint:errcheck

	h, closeStats, err := build(cfg, log)
	if err != nil {
		return err
	}
	defer closeStats()

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	runErr := make(chan error, 1)
	go func() {
		runErr <- srv.Run()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case termSig := <-sig:
		log.Debug("Graceful shutdown", zap.Any("signal", termSig))
	case err := <-runErr:
		if err != nil {
			log.Error("server run", zap.Error(err))
			return err
		}
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}

// build wires everything behind the router. The returned func flushes the
// stats queue.
func build(cfg config.Config, log *zap.Logger) (*handler.Handler, func(), error) {
	registry, err := locale.NewRegistry()
	if err != nil {
		return nil, nil, errors.Wrap(err, "locale.NewRegistry")
	}
	gen := generator.New(registry, cfg.Generator.Workers, log.Named("generator"))

	renderer, err := cover.NewRenderer()
	if err != nil {
		return nil, nil, errors.Wrap(err, "cover.NewRenderer")
	}

	stats := newEnqueuer(cfg, log)
	closeStats := func() {
		if err := stats.Close(); err != nil {
			log.Error("stats.Close", zap.Error(err))
		}
	}

	svc, err := service.NewService(gen, renderer, cfg.Cover.CacheSize, stats, log)
	if err != nil {
		closeStats()
		return nil, nil, errors.Wrap(err, "service.NewService")
	}

	limits := handler.DefaultLimits()
	limits.MaxPageSize = cfg.Generator.MaxPageSize
	limits.MaxAverage = cfg.Generator.MaxAverage
	return handler.New(svc, limits, cfg.Generator.APIRPS, log), closeStats, nil
}

// newEnqueuer publishes stats to Kafka when brokers are configured. Stats
// never block startup: an unreachable cluster disables them.
func newEnqueuer(cfg config.Config, log *zap.Logger) queue.Enqueuer {
	if !cfg.Kafka.Enabled() {
		log.Info("kafka disabled, stats are not published")
		return queue.NewNop()
	}
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Error("kafka.NewProducer, stats disabled", zap.Error(err))
		return queue.NewNop()
	}
	cb := circuit_breaker.New(circuit_breaker.Config{
		RecordLength:     100,
		Timeout:          time.Second,
		Percentile:       0.2,
		RecoveryRequests: 2,
	})
	return queue.New(producer, cfg.Kafka.StatsTopic, cfg.Stats.Buffer, cb, log)
}
