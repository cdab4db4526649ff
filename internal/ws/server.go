package ws

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"araucarias-admin-service/internal/auth"
	"araucarias-admin-service/internal/config"
	"araucarias-admin-service/internal/kitchen"
	"araucarias-admin-service/internal/store"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *client) writeJSON(value any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(value)
}

// Server streams the merged kitchen queue to connected admin clients.
// The queue is re-read on an interval and re-broadcast only when its
// content actually changed; lifecycle mutations nudge an immediate
// refresh instead of waiting for the next tick.
type Server struct {
	Store  *store.Store
	Logger *zap.Logger
	Config config.Config

	started  sync.Once
	nudge    chan struct{}
	mu       sync.RWMutex
	clients  map[*client]struct{}
	lastHash [32]byte
}

func New(st *store.Store, logger *zap.Logger, cfg config.Config) *Server {
	return &Server{
		Store:   st,
		Logger:  logger,
		Config:  cfg,
		nudge:   make(chan struct{}, 1),
		clients: make(map[*client]struct{}),
	}
}

// Nudge asks the broadcaster to refresh the queue right away.
func (s *Server) Nudge() {
	select {
	case s.nudge <- struct{}{}:
	default:
	}
}

// HandleKitchen upgrades the connection and subscribes it to queue
// snapshots. The JWT travels as a query parameter because browsers
// cannot set websocket headers.
func (s *Server) HandleKitchen(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	claims, err := auth.VerifyAccessToken(token, s.Config.JWTSecret)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if claims.Role != auth.RoleAdmin && claims.Role != auth.RoleStaff {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Logger.Warn("kitchen ws upgrade failed", zap.Error(err))
		return
	}

	s.started.Do(func() {
		go s.broadcastLoop(context.Background())
	})

	c := &client{conn: conn}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	// Send the current queue immediately so the client does not wait for
	// the first poll tick.
	if snapshot, err := s.loadSnapshot(r.Context()); err == nil {
		_ = c.writeJSON(snapshot)
	}

	go s.heartbeat(c)

	defer func() {
		s.mu.Lock()
		delete(s.clients, c)
		s.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

type snapshot struct {
	Type   string                     `json:"type"`
	Orders []kitchen.PreparationOrder `json:"orders"`
	SentAt time.Time                  `json:"sentAt"`
}

func (s *Server) loadSnapshot(ctx context.Context) (snapshot, error) {
	quiosco, err := s.Store.ActiveKitchenInStoreOrders(ctx)
	if err != nil {
		return snapshot{}, err
	}
	delivery, err := s.Store.ActiveKitchenDeliveryOrders(ctx)
	if err != nil {
		return snapshot{}, err
	}
	return snapshot{
		Type:   "kitchenQueue",
		Orders: kitchen.MergeQueues(quiosco, delivery),
		SentAt: time.Now(),
	}, nil
}

func (s *Server) broadcastLoop(ctx context.Context) {
	interval := s.Config.KitchenPollInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-s.nudge:
		}

		s.mu.RLock()
		connected := len(s.clients)
		s.mu.RUnlock()
		if connected == 0 {
			continue
		}

		snap, err := s.loadSnapshot(ctx)
		if err != nil {
			s.Logger.Warn("kitchen queue poll failed", zap.Error(err))
			continue
		}

		payload, err := json.Marshal(snap.Orders)
		if err != nil {
			continue
		}
		hash := sha256.Sum256(payload)

		s.mu.Lock()
		changed := hash != s.lastHash
		if changed {
			s.lastHash = hash
		}
		clients := make([]*client, 0, len(s.clients))
		for c := range s.clients {
			clients = append(clients, c)
		}
		s.mu.Unlock()

		if !changed {
			continue
		}
		for _, c := range clients {
			if err := c.writeJSON(snap); err != nil {
				s.Logger.Debug("kitchen ws write failed", zap.Error(err))
			}
		}
	}
}

func (s *Server) heartbeat(c *client) {
	interval := s.Config.WSHeartbeatInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		c.writeMu.Lock()
		err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
		c.writeMu.Unlock()
		if err != nil {
			return
		}
	}
}
