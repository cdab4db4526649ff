package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"araucarias-admin-service/internal/chat"
	"araucarias-admin-service/internal/config"
	"araucarias-admin-service/internal/db"
	httpapi "araucarias-admin-service/internal/http"
	"araucarias-admin-service/internal/logger"
	"araucarias-admin-service/internal/queue"
	"araucarias-admin-service/internal/store"
	"araucarias-admin-service/internal/ws"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	if err := db.InitSchema(ctx, pool); err != nil {
		log.Fatal("schema init failed", zap.Error(err))
	}

	var queueClient *queue.Client
	if cfg.RabbitMQURL != "" {
		qc, err := queue.New(cfg.RabbitMQURL)
		if err != nil {
			if cfg.Env == "production" {
				log.Fatal("rabbitmq connection failed", zap.Error(err))
			}
			log.Warn("rabbitmq connection failed; continuing without events", zap.Error(err))
			qc = nil
		}
		if qc != nil {
			if err := queue.EnsureKitchenTopology(qc); err != nil {
				if cfg.Env == "production" {
					log.Fatal("rabbitmq topology failed", zap.Error(err))
				}
				log.Warn("rabbitmq topology failed; continuing without events", zap.Error(err))
				_ = qc.Close()
				qc = nil
			}
		}
		queueClient = qc
		if qc != nil {
			log.Info("kitchen events enabled", zap.String("exchange", queue.EventsExchange))
			defer qc.Close()
		}
	} else {
		log.Info("kitchen events disabled (RABBITMQ_URL is empty)")
	}

	st := store.New(pool, log)
	assistant := chat.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	if !assistant.Enabled() {
		log.Info("chat assistant disabled (GEMINI_API_KEY is empty)")
	}

	wsServer := ws.New(st, log, cfg)
	apiServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(st, log, cfg, queueClient, wsServer, assistant),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("admin api ready", zap.String("base", "/api/admin"))
		log.Info("kitchen ws ready", zap.String("base", "/ws/kitchen"))
		log.Info("admin service listening", zap.String("addr", cfg.HTTPAddr))
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctxShutdown); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}
}
