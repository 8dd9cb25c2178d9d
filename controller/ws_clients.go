package controller

import (
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

type WSClient struct {
	ID        uuid.UUID
	Conn      *websocket.Conn
	IPAddress string

	// Serializes writes to Conn
	mu sync.Mutex
}

type WSClientMap struct {
	mu      sync.Mutex
	clients []*WSClient
}

func NewWSSubscriptions() *WSClientMap {
	return &WSClientMap{
		clients: []*WSClient{},
	}
}

// Get length - synchronized
func (r *WSClientMap) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Put value into map - synchronized
func (r *WSClientMap) Put(value *WSClient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(value.ID) < 0 {
		r.clients = append(r.clients, value)
	}
}

// Removes specified id - synchronized
func (r *WSClientMap) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(id); i > -1 {
		r.clients = remove(r.clients, i)
	}
}

func (r *WSClientMap) GetAll() []*WSClient {
	r.mu.Lock()
	defer r.mu.Unlock()
	ret := make([]*WSClient, len(r.clients))
	copy(ret, r.clients)
	return ret
}

// CloseAll drops every connection, their handlers clean up on the read error
func (r *WSClientMap) CloseAll() {
	for _, client := range r.GetAll() {
		client.mu.Lock()
		if client.Conn != nil {
			client.Conn.Close()
		}
		client.mu.Unlock()
	}
}

// WriteJsonSafe writes to one client, concurrent writers are serialized
func (r *WSClientMap) WriteJsonSafe(client *WSClient, v interface{}) {
	client.mu.Lock()
	defer client.mu.Unlock()
	if client.Conn == nil {
		return
	}
	if err := client.Conn.WriteJSON(v); err != nil {
		klog.Errorf("Error writing to websocket client %s: %v", client.ID, err)
	}
}

func (r *WSClientMap) indexOf(id uuid.UUID) int {
	for i, v := range r.clients {
		if v.ID == id {
			return i
		}
	}
	return -1
}

// NOT thread safe, must be called from within a locked section
func remove(s []*WSClient, i int) []*WSClient {
	s[i] = s[len(s)-1]
	return s[:len(s)-1]
}
