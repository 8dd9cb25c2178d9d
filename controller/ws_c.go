package controller

import (
	"fmt"

	"github.com/appditto/survey-push-server/models"
	"github.com/appditto/survey-push-server/notifications"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// WsController streams notification responses to connected clients. Each
// connection is a listener for as long as it stays open.
type WsController struct {
	Service     *notifications.Service
	WSClientMap *WSClientMap
}

func (wc *WsController) HandleWSMessage(c *websocket.Conn) {
	client := &WSClient{
		ID:        uuid.New(),
		Conn:      c,
		IPAddress: fmt.Sprintf("%v", c.Locals("ip")),
	}
	wc.WSClientMap.Put(client)
	sub := wc.Service.AddListener(func(response *models.NotificationResponse) {
		wc.WSClientMap.WriteJsonSafe(client, response)
	})
	klog.V(3).Infof("Websocket listener %s connected from %s", client.ID, client.IPAddress)
	defer func() {
		wc.Service.RemoveListener(sub)
		wc.WSClientMap.Delete(client.ID)
		klog.V(3).Infof("Websocket listener %s disconnected", client.ID)
	}()

	// Clients only listen, anything they send is dropped
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
