package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sitewatch-dev/sitewatch/internal/types"
)

// Connections are grouped per site identifier so a refresh only wakes
// the dashboards watching that site.
var (
	siteClients   = make(map[string]map[*websocket.Conn]bool)
	siteClientsMu sync.RWMutex
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// BroadcastRefresh tells every dashboard watching the site to reload
// its data. Failed connections are dropped from the group.
func BroadcastRefresh(identifier string) {
	siteClientsMu.RLock()
	clients, exists := siteClients[identifier]
	if !exists || len(clients) == 0 {
		siteClientsMu.RUnlock()
		return
	}

	// Copy so the lock is not held while writing to sockets.
	conns := make([]*websocket.Conn, 0, len(clients))
	for conn := range clients {
		conns = append(conns, conn)
	}
	siteClientsMu.RUnlock()

	for _, conn := range conns {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			log.Printf("Failed to set write deadline for broadcast: %v", err)
			continue
		}

		err := conn.WriteJSON(map[string]string{
			"type":    "refresh",
			"message": "Site data updated",
			"site":    identifier,
		})

		if err != nil {
			log.Printf("Failed to broadcast refresh to client: %v", err)
			unregisterClient(identifier, conn)
			conn.Close()
		}
	}
}

func unregisterClient(identifier string, conn *websocket.Conn) {
	siteClientsMu.Lock()
	defer siteClientsMu.Unlock()

	if clients, exists := siteClients[identifier]; exists {
		delete(clients, conn)

		if len(clients) == 0 {
			delete(siteClients, identifier)
		}
	}
}

// WebSocket upgrades the connection and streams refresh notifications
// for a single site until the client disconnects.
func WebSocket(c *gin.Context) {
	identifier := c.Param("identifier")

	if identifier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Site identifier is required"})
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range types.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("Failed to set initial read deadline: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.Printf("Failed to set read deadline in pong handler: %v", err)
		}
		return nil
	})

	siteClientsMu.Lock()
	if siteClients[identifier] == nil {
		siteClients[identifier] = make(map[*websocket.Conn]bool)
	}
	siteClients[identifier][conn] = true
	siteClientsMu.Unlock()

	defer func() {
		unregisterClient(identifier, conn)
		conn.Close()

		log.Printf("WebSocket connection closed for site %s", identifier)
	}()

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		log.Printf("Failed to set write deadline for welcome message: %v", err)
		return
	}

	err = conn.WriteJSON(map[string]string{
		"type":    "connected",
		"message": "WebSocket connection established",
		"site":    identifier,
	})

	if err != nil {
		log.Printf("Failed to send welcome message: %v", err)
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	go func() {
		for range ticker.C {
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Printf("Failed to set write deadline for site %s: %v", identifier, err)
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("Ping failed for site %s: %v", identifier, err)
				return
			}
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.Printf("Failed to set read deadline for site %s: %v", identifier, err)
			break
		}

		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for site %s: %v", identifier, err)
			}
			break
		}

		if messageType == websocket.TextMessage {
			log.Printf("Received message from client on site %s: %s", identifier, string(message))
		}
	}
}
