package application

import (
	"fmt"

	"github.com/comanda/comanda/internal/domain"
)

// ScenarioService runs a scenario against the domain core:
// validate → showcase dishes → build orders → apply steps → transcript.
type ScenarioService struct {
	factory *domain.Factory
	ids     *domain.IDSequence
}

func NewScenarioService(factory *domain.Factory, ids *domain.IDSequence) *ScenarioService {
	return &ScenarioService{factory: factory, ids: ids}
}

// Run executes the scenario and returns its transcript. The first
// invalid tag (dish kind, extra, price, state) aborts the run with a
// wrapped error; steps already applied are not rolled back, but
// validation up front means a well-formed scenario never fails
// mid-flight.
func (s *ScenarioService) Run(sc domain.Scenario) (*domain.Transcript, error) {
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	t := &domain.Transcript{Title: sc.Title}

	for _, spec := range sc.Showcase {
		if _, err := s.buildDish(t, spec); err != nil {
			return nil, fmt.Errorf("showcase: %w", err)
		}
	}

	for i, script := range sc.Orders {
		if err := s.runOrder(t, script); err != nil {
			return nil, fmt.Errorf("order %d: %w", i+1, err)
		}
	}

	return t, nil
}

// buildDish creates and decorates one dish, narrating each step.
func (s *ScenarioService) buildDish(t *domain.Transcript, spec domain.DishSpec) (domain.Dish, error) {
	price, err := spec.ParsePrice()
	if err != nil {
		return nil, err
	}

	dish, err := s.factory.Create(spec.Kind, spec.Name, price)
	if err != nil {
		return nil, err
	}
	t.Events = append(t.Events, domain.Event{
		Kind:  domain.EventDishCreated,
		Dish:  dish.Description(),
		Price: dish.Price().StringFixed(2),
	})

	for _, extra := range spec.Extras {
		if dish, err = domain.ApplyExtra(dish, extra); err != nil {
			return nil, err
		}
		t.Events = append(t.Events, domain.Event{
			Kind:  domain.EventDishDecorated,
			Dish:  dish.Description(),
			Price: dish.Price().StringFixed(2),
		})
	}

	return dish, nil
}

func (s *ScenarioService) runOrder(t *domain.Transcript, script domain.OrderScript) error {
	order := domain.NewOrder(s.ids.Next())
	t.Events = append(t.Events, domain.Event{
		Kind:    domain.EventOrderCreated,
		OrderID: order.ID(),
	})

	// One narrating observer per distinct name; it delegates to the
	// customer and then appends the notification to the transcript, so
	// notifications interleave with the transitions that caused them.
	taps := make(map[string]*narratingObserver)
	for _, name := range script.Observers {
		tap, ok := taps[name]
		if !ok {
			tap = &narratingObserver{customer: domain.NewCustomer(name), transcript: t}
			taps[name] = tap
		}
		order.RegisterObserver(tap)
		t.Events = append(t.Events, domain.Event{
			Kind:     domain.EventObserverRegistered,
			OrderID:  order.ID(),
			Customer: name,
		})
	}

	for _, spec := range script.Items {
		dish, err := s.buildDish(t, spec)
		if err != nil {
			return err
		}
		order.AddItem(dish)
		t.Events = append(t.Events, domain.Event{
			Kind:    domain.EventItemAdded,
			OrderID: order.ID(),
			Dish:    dish.Description(),
			Price:   dish.Price().StringFixed(2),
		})
	}

	for _, step := range script.Steps {
		if step.RemoveObserver != "" {
			if tap, ok := taps[step.RemoveObserver]; ok {
				order.RemoveObserver(tap)
			}
			t.Events = append(t.Events, domain.Event{
				Kind:     domain.EventObserverRemoved,
				OrderID:  order.ID(),
				Customer: step.RemoveObserver,
			})
			continue
		}

		next, err := domain.ParseState(step.State)
		if err != nil {
			return err
		}
		from := order.State()
		if from == next {
			// Same-state transitions notify nobody and narrate nothing.
			continue
		}
		t.Events = append(t.Events, domain.Event{
			Kind:    domain.EventStateChanged,
			OrderID: order.ID(),
			From:    from.String(),
			To:      next.String(),
		})
		order.SetState(next)
	}

	detail := domain.Event{
		Kind:    domain.EventOrderDetail,
		OrderID: order.ID(),
		State:   order.State().String(),
		Total:   order.Total().StringFixed(2),
	}
	for _, item := range order.Items() {
		detail.Items = append(detail.Items, domain.LineItem{
			Description: item.Description(),
			Price:       item.Price().StringFixed(2),
		})
	}
	t.Events = append(t.Events, detail)

	return nil
}

// narratingObserver wraps a customer so every notification it receives
// also lands in the transcript.
type narratingObserver struct {
	customer   *domain.Customer
	transcript *domain.Transcript
}

func (n *narratingObserver) OrderChanged(o *domain.Order) {
	n.customer.OrderChanged(o)
	n.transcript.Events = append(n.transcript.Events, domain.Event{
		Kind:     domain.EventCustomerNotified,
		OrderID:  o.ID(),
		Customer: n.customer.Name(),
		State:    o.State().String(),
	})
}
