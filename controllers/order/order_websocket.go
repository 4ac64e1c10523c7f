package orderControllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/nisharmultani/girlsecret-sub000/pubsub"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type feedEvent struct {
	Type  string      `json:"type"` // "order.created" or "order.status"
	Order interface{} `json:"order"`
}

// GET /admin/orders/feed streams order events to the admin dashboard.
// Each connection gets its own bus subscription; closing the socket tears
// the subscription down.
func OrderFeedHandler(bus *pubsub.Bus) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		created, cancelCreated := bus.Subscribe(pubsub.TopicOrderCreated, 16)
		defer cancelCreated()
		status, cancelStatus := bus.Subscribe(pubsub.TopicOrderStatus, 16)
		defer cancelStatus()

		// Reader goroutine: we ignore client messages but need ReadMessage
		// to learn about disconnects.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			var ev feedEvent
			select {
			case e := <-created:
				ev = feedEvent{Type: pubsub.TopicOrderCreated, Order: e.Payload}
			case e := <-status:
				ev = feedEvent{Type: pubsub.TopicOrderStatus, Order: e.Payload}
			case <-done:
				return
			}

			data, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}
}
