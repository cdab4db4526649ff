package httpapi

import (
	"net/http"

	"araucarias-admin-service/internal/auth"
	"araucarias-admin-service/internal/chat"
	"araucarias-admin-service/internal/config"
	"araucarias-admin-service/internal/http/handlers"
	"araucarias-admin-service/internal/middleware"
	"araucarias-admin-service/internal/queue"
	"araucarias-admin-service/internal/store"
	"araucarias-admin-service/internal/ws"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func NewRouter(st *store.Store, logger *zap.Logger, cfg config.Config, queueClient *queue.Client, wsServer *ws.Server, assistant *chat.Assistant) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.Telemetry(logger))

	if cfg.Env == "development" || len(cfg.CorsAllowedOrigins) > 0 {
		options := cors.Options{
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{
				"Accept",
				"Authorization",
				"Content-Type",
				"X-Requested-With",
				"Cache-Control",
				"Pragma",
			},
			AllowCredentials: true,
			MaxAge:           300,
		}

		if cfg.Env == "development" {
			options.AllowOriginFunc = func(_ *http.Request, origin string) bool {
				return true
			}
		} else {
			options.AllowedOrigins = cfg.CorsAllowedOrigins
		}

		r.Use(cors.Handler(options))
	}

	h := &handlers.Handler{
		Store:     st,
		Logger:    logger,
		Config:    cfg,
		Queue:     queueClient,
		WS:        wsServer,
		Assistant: assistant,
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/api/admin/auth/login", h.Login)

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AdminAuth(cfg.JWTSecret))

		r.Get("/dashboard", h.Dashboard)

		r.Get("/kitchen/orders", h.KitchenOrders)
		r.Post("/kitchen/orders/{orderId}/start", h.KitchenOrderStart)
		r.Post("/kitchen/orders/{orderId}/ready", h.KitchenOrderReady)

		r.Get("/orders/history", h.OrderHistory)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(auth.RoleAdmin))

			r.Post("/chat", h.Chat)
			r.Get("/chat/sessions/{sessionId}", h.ChatSessionMessages)
			r.Delete("/chat/sessions/{sessionId}", h.ChatSessionClear)

			r.Get("/reports/excel", h.ReportExcel)
			r.Get("/reports/pdf", h.ReportPDF)
		})
	})

	if wsServer != nil {
		r.Get("/ws/kitchen", wsServer.HandleKitchen)
	}

	return r
}
