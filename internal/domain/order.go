package domain

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"
)

// State is the lifecycle state of an order.
type State int

const (
	Received State = iota
	InPreparation
	ReadyForPickup
	Delivered
	Cancelled
)

// ErrUnknownState is returned by ParseState for an unrecognized state
// tag.
var ErrUnknownState = errors.New("unknown order state")

func (s State) String() string {
	switch s {
	case Received:
		return "RECIBIDO"
	case InPreparation:
		return "EN_PREPARACION"
	case ReadyForPickup:
		return "LISTO_PARA_ENTREGA"
	case Delivered:
		return "ENTREGADO"
	case Cancelled:
		return "CANCELADO"
	default:
		return "DESCONOCIDO"
	}
}

// Tag is the machine-oriented form used in scenario files and JSON
// output.
func (s State) Tag() string {
	switch s {
	case Received:
		return "recibido"
	case InPreparation:
		return "en_preparacion"
	case ReadyForPickup:
		return "listo_para_entrega"
	case Delivered:
		return "entregado"
	case Cancelled:
		return "cancelado"
	default:
		return "desconocido"
	}
}

// ParseState maps a scenario tag back to a State.
func ParseState(tag string) (State, error) {
	for _, s := range []State{Received, InPreparation, ReadyForPickup, Delivered, Cancelled} {
		if s.Tag() == tag {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, tag)
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.Tag()), nil }

func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Observer receives synchronous order state-change notifications. The
// order holds no lifecycle over its observers.
type Observer interface {
	OrderChanged(o *Order)
}

// IDSequence hands out strictly increasing order ids, starting at 1.
// It replaces a hidden global counter: whoever constructs orders owns
// the sequence and injects the next id.
type IDSequence struct {
	n atomic.Int64
}

// NewIDSequence creates an IDSequence.
func NewIDSequence() *IDSequence { return &IDSequence{} }

func (s *IDSequence) Next() int { return int(s.n.Add(1)) }

// Order aggregates dishes under a lifecycle state and fans out state
// changes to registered observers. One mutex guards items, state and
// observers as a unit; observer callbacks run outside the lock, so a
// callback may query or mutate the order without deadlocking.
type Order struct {
	id int

	mu        sync.Mutex
	items     []Dish
	state     State
	observers []Observer
}

// NewOrder creates an empty order in the Received state. The id is
// assigned once and never changes; callers obtain it from an
// IDSequence.
func NewOrder(id int) *Order {
	return &Order{id: id, state: Received}
}

func (o *Order) ID() int { return o.id }

// AddItem appends a dish to the order. Items are append-only and
// adding one does not notify observers.
func (o *Order) AddItem(d Dish) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.items = append(o.items, d)
}

// Items returns the dishes in insertion order.
func (o *Order) Items() []Dish {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Clone(o.items)
}

// Total sums the current items' prices. It is recomputed on every
// call, never cached; an empty order totals zero.
func (o *Order) Total() decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Price())
	}
	return total
}

func (o *Order) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// SetState transitions the order. Setting the current state again is a
// no-op and notifies nobody. Otherwise the state is updated first and
// every registered observer is then called in registration order, each
// seeing the post-transition state. Fan-out iterates a snapshot of the
// observer list, so callbacks may register or remove observers without
// affecting the in-flight notification.
func (o *Order) SetState(next State) {
	o.mu.Lock()
	if o.state == next {
		o.mu.Unlock()
		return
	}
	o.state = next
	snapshot := slices.Clone(o.observers)
	o.mu.Unlock()

	for _, obs := range snapshot {
		obs.OrderChanged(o)
	}
}

// RegisterObserver appends an observer. No identity check is made:
// registering the same observer twice means it is notified twice per
// transition.
func (o *Order) RegisterObserver(obs Observer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.observers = append(o.observers, obs)
}

// RemoveObserver removes the first occurrence of obs by identity.
// Removing an unregistered observer is a no-op.
func (o *Order) RemoveObserver(obs Observer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, registered := range o.observers {
		if registered == obs {
			o.observers = slices.Delete(o.observers, i, i+1)
			return
		}
	}
}
