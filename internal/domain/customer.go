package domain

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Notification records one state change received by a customer.
type Notification struct {
	OrderID int   `json:"order_id"`
	State   State `json:"state"`
}

// Customer is the observer variant of this model: it keeps an inbox of
// every notification it receives.
type Customer struct {
	id   uuid.UUID
	name string

	mu    sync.Mutex
	inbox []Notification
}

// NewCustomer creates a customer with a fresh identity.
func NewCustomer(name string) *Customer {
	return &Customer{id: uuid.New(), name: name}
}

func (c *Customer) ID() uuid.UUID { return c.id }

func (c *Customer) Name() string { return c.name }

// OrderChanged implements Observer by recording the order's current
// (post-transition) state.
func (c *Customer) OrderChanged(o *Order) {
	n := Notification{OrderID: o.ID(), State: o.State()}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inbox = append(c.inbox, n)
}

// Notifications returns the received notifications in arrival order.
func (c *Customer) Notifications() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.inbox)
}
