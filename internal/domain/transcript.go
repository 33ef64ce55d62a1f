package domain

// EventKind discriminates transcript events.
type EventKind string

const (
	EventDishCreated        EventKind = "dish_created"
	EventDishDecorated      EventKind = "dish_decorated"
	EventOrderCreated       EventKind = "order_created"
	EventItemAdded          EventKind = "item_added"
	EventObserverRegistered EventKind = "observer_registered"
	EventObserverRemoved    EventKind = "observer_removed"
	EventStateChanged       EventKind = "state_changed"
	EventCustomerNotified   EventKind = "customer_notified"
	EventOrderDetail        EventKind = "order_detail"
)

// Event is one narration entry produced while running a scenario.
// Prices and states are carried pre-formatted so the transcript
// renders and serializes without reaching back into live objects.
type Event struct {
	Kind     EventKind  `json:"kind"`
	OrderID  int        `json:"order_id,omitempty"`
	Customer string     `json:"customer,omitempty"`
	Dish     string     `json:"dish,omitempty"`
	Price    string     `json:"price,omitempty"`
	From     string     `json:"from,omitempty"`
	To       string     `json:"to,omitempty"`
	State    string     `json:"state,omitempty"`
	Items    []LineItem `json:"items,omitempty"`
	Total    string     `json:"total,omitempty"`
}

// LineItem is one priced line of an order-detail event.
type LineItem struct {
	Description string `json:"description"`
	Price       string `json:"price"`
}

// Transcript is the full narration of one scenario run.
type Transcript struct {
	Title  string  `json:"title"`
	Events []Event `json:"events"`
}
