package handlers

import (
	"araucarias-admin-service/internal/chat"
	"araucarias-admin-service/internal/config"
	"araucarias-admin-service/internal/queue"
	"araucarias-admin-service/internal/store"
	"araucarias-admin-service/internal/ws"

	"go.uber.org/zap"
)

type Handler struct {
	Store     *store.Store
	Logger    *zap.Logger
	Config    config.Config
	Queue     *queue.Client
	WS        *ws.Server
	Assistant *chat.Assistant
}
