package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"shuttlelink/internal/http/middleware"
	"shuttlelink/internal/realtime"
	"shuttlelink/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS layer for the REST surface; the
	// socket carries no credentials beyond the JWT already validated.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	wsReadLimit  = 4096
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 45 * time.Second
)

// WS upgrades GET /ws. Inbound messages: subscribe_tracking registers the
// client for a schedule's position pings; location_update relays a
// passenger's own position to everyone connected.
func WS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		return
	}

	reqID := middleware.GetRequestID(c)
	client := realtime.NewClient(reqID, conn)
	hub.AddClient(client)
	go client.WritePump()
	go wsPinger(client)

	utils.LogEvent(reqID, "ws", "connect", "client connected")

	conn.SetReadLimit(wsReadLimit)
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		client.LastPong = time.Now()
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	defer func() {
		hub.RemoveClient(client.ID)
		utils.LogEvent(reqID, "ws", "disconnect", "client disconnected")
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg realtime.ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		handleClientMessage(client, msg)
	}
}

func handleClientMessage(client *realtime.Client, msg realtime.ClientMessage) {
	switch msg.Type {
	case realtime.MsgSubscribeTracking:
		if msg.ScheduleID > 0 {
			hub.SubscribeTracking(msg.ScheduleID, client.ID)
		}
	case realtime.MsgLocationUpdate:
		if msg.Location == nil {
			return
		}
		hub.BroadcastAll(realtime.PassengerLocationEvent{
			Type:      realtime.EventPassengerLocation,
			BookingID: msg.BookingID,
			Location:  *msg.Location,
		})
	}
}

// wsPinger keeps intermediaries from idling the connection out.
func wsPinger(client *realtime.Client) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()
	for range ticker.C {
		if err := client.Conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second)); err != nil {
			return
		}
	}
}
