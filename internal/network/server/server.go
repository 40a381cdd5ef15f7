package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/folletto/vault/internal/config"
	"github.com/folletto/vault/internal/game/room"
	"github.com/folletto/vault/internal/network/server/core"
	"github.com/folletto/vault/internal/network/server/handlers"
	"github.com/folletto/vault/internal/network/server/storage"
	"github.com/folletto/vault/internal/network/server/types"
	"github.com/folletto/vault/internal/protocol"
)

// Server is the WebSocket hub: it owns the clients, the room store and
// the statistics store.
type Server struct {
	config      *config.Config
	redis       *redis.Client
	stats       *storage.StatsStore
	roomManager *room.Manager
	handler     *handlers.Handler

	clients   map[string]*Client
	clientsMu sync.RWMutex

	upgrader       websocket.Upgrader
	originChecker  *core.OriginChecker
	messageLimiter *core.MessageRateLimiter

	// Connection cap
	maxConnections int
	semaphore      chan struct{}

	stop     chan struct{}
	stopOnce sync.Once
}

// NewServer wires the hub together. An unreachable Redis is logged, not
// fatal: gameplay is memory-only and statistics simply error out until
// Redis returns.
func NewServer(cfg *config.Config) (*Server, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ redis unreachable at %s, statistics disabled until it returns: %v", cfg.Redis.Addr, err)
	}

	s := &Server{
		config:         cfg,
		redis:          rdb,
		stats:          storage.NewStatsStore(rdb),
		roomManager:    room.NewManager(),
		clients:        make(map[string]*Client),
		originChecker:  core.NewOriginChecker(cfg.Security.AllowedOrigins),
		messageLimiter: core.NewMessageRateLimiter(cfg.Security.MessageLimit.MaxPerSecond),
		maxConnections: cfg.Server.MaxConnections,
		semaphore:      make(chan struct{}, cfg.Server.MaxConnections),
		stop:           make(chan struct{}),
	}

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.originChecker.Check,
	}

	s.handler = handlers.NewHandler(s)
	return s, nil
}

// Start serves websockets until the listener fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	go s.roomManager.CleanupLoop(s.config.Game.RoomIdleTimeoutDuration(), s.stop)
	go s.monitorStats()

	log.Printf("🎲 folletto's vault listening on ws://%s/ws (CPU cores: %d)", addr, runtime.NumCPU())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return server.ListenAndServe()
}

// handleWebSocket upgrades a connection and starts its pumps.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	clientIP := core.GetClientIP(r)

	// Connection cap; the slot is released on disconnect.
	select {
	case s.semaphore <- struct{}{}:
	default:
		log.Printf("🚫 connection cap (%d) reached, refusing %s", s.maxConnections, clientIP)
		http.Error(w, "Server Full", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		<-s.semaphore
		log.Printf("websocket upgrade failed for %s: %v", clientIP, err)
		return
	}

	client := NewClient(s, conn)
	client.IP = clientIP
	s.registerClient(client)

	client.SendMessage(protocol.MustNewMessage(protocol.MsgConnected, protocol.ConnectedPayload{
		PlayerID:   client.ID,
		PlayerName: client.Name,
	}))

	log.Printf("✅ player %s (%s) connected from %s", client.Name, client.ID, clientIP)

	go client.ReadPump()
	go client.WritePump()
}

// handleHealth answers load balancer probes.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) registerClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[client.ID] = client
}

// handleClientDisconnect vacates the client's seats everywhere and
// re-broadcasts every room that changed.
func (s *Server) handleClientDisconnect(c *Client) {
	s.clientsMu.Lock()
	_, known := s.clients[c.ID]
	delete(s.clients, c.ID)
	s.clientsMu.Unlock()

	if !known {
		return
	}
	<-s.semaphore
	s.messageLimiter.RemoveClient(c.ID)

	for _, r := range s.roomManager.DisconnectCleanup(c.ID) {
		s.BroadcastToRoom(r.Code, protocol.MustNewMessage(protocol.MsgRoomState, r.Snapshot()))
	}

	log.Printf("❌ player %s (%s) disconnected", c.Name, c.ID)
}

// GetOnlineCount returns the number of connected clients.
func (s *Server) GetOnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// BroadcastToRoom fans a message out to every client watching a room.
func (s *Server) BroadcastToRoom(code string, msg *protocol.Message) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for _, client := range s.clients {
		if client.GetRoom() == code {
			client.SendMessage(msg)
		}
	}
}

// monitorStats logs hub health every 30 seconds.
func (s *Server) monitorStats() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			log.Printf("📊 online: %d | rooms: %d | goroutines: %d | conns: %d/%d | mem: %.2f MB",
				s.GetOnlineCount(),
				s.roomManager.Count(),
				runtime.NumGoroutine(),
				len(s.semaphore),
				s.maxConnections,
				float64(m.Alloc)/1024/1024)
		case <-s.stop:
			return
		}
	}
}

// Shutdown closes every client and the Redis connection.
func (s *Server) Shutdown() {
	s.stopOnce.Do(func() { close(s.stop) })

	time.Sleep(s.config.Game.RoomCleanupDelayDuration())

	s.clientsMu.Lock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clientsMu.Unlock()

	_ = s.redis.Close()
	log.Println("server stopped")
}

// Interface implementations for types.ServerContext
func (s *Server) GetRoomManager() *room.Manager       { return s.roomManager }
func (s *Server) GetStats() types.StatsStoreInterface { return s.stats }
