package controllers

import (
	"net/http"
	"time"

	"github.com/Brayern/bibo-health-hub/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type FeedController struct {
	Hub *services.FeedHub
}

func NewFeedController(hub *services.FeedHub) *FeedController {
	return &FeedController{Hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// FeedWS streams community events to the client until it disconnects.
func (fc *FeedController) FeedWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.FeedClient{Conn: conn}
	fc.Hub.Register(cl)

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				fc.Hub.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error → unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			fc.Hub.Unregister(cl)
			return
		}
	}
}
