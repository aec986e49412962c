package ws

import (
	"sync"

	"chefbook/internal/core/domain/model/kernel"
)

// Registry tracks which client speaks for which identity and which clients
// watch which order. One client per identity: a new connection for an already
// bound identity evicts the previous one. All state is process local.
type Registry struct {
	mu         sync.RWMutex
	byIdentity map[kernel.UUID]*Client
	byOrder    map[kernel.UUID]map[*Client]struct{}
}

// NewRegistry creates an empty connection registry.
func NewRegistry() *Registry {
	return &Registry{
		byIdentity: make(map[kernel.UUID]*Client),
		byOrder:    make(map[kernel.UUID]map[*Client]struct{}),
	}
}

// Bind associates the client with an identity. The previously bound client,
// if any and not the same one, gets its channel closed.
func (r *Registry) Bind(identity kernel.UUID, client *Client) {
	r.mu.Lock()
	previous := r.byIdentity[identity]
	r.byIdentity[identity] = client
	r.mu.Unlock()

	if previous != nil && previous != client {
		previous.closeSend()
	}
}

// Subscribe adds the client to the order's watcher set.
func (r *Registry) Subscribe(orderID kernel.UUID, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.byOrder[orderID]
	if !ok {
		set = make(map[*Client]struct{})
		r.byOrder[orderID] = set
	}
	set[client] = struct{}{}
}

// Remove drops the client from the identity map and every watcher set. Called
// once when the connection closes. The identity slot is cleared only if it
// still points at this client, so an eviction does not unbind the successor.
func (r *Registry) Remove(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for identity, bound := range r.byIdentity {
		if bound == client {
			delete(r.byIdentity, identity)
		}
	}

	for orderID, set := range r.byOrder {
		delete(set, client)
		if len(set) == 0 {
			delete(r.byOrder, orderID)
		}
	}
}

// Lookup returns the client bound to the identity, if any.
func (r *Registry) Lookup(identity kernel.UUID) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.byIdentity[identity]
	return client, ok
}

// Subscribers returns a snapshot of the clients watching an order.
func (r *Registry) Subscribers(orderID kernel.UUID) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.byOrder[orderID]
	clients := make([]*Client, 0, len(set))
	for client := range set {
		clients = append(clients, client)
	}
	return clients
}
