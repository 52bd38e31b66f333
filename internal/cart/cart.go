package cart

import "github.com/BruksfildServices01/barber-booking-api/internal/catalog"

// ======================================================
// CART
// ======================================================

// Line pairs a catalog service with a quantity. The service is shared
// catalog data, never copied or mutated per line.
type Line struct {
	Service  catalog.Service `json:"service"`
	Quantity int             `json:"quantity"`
}

// Cart holds at most one line per composite service id. Operations return
// a new cart; the receiver is never mutated.
type Cart struct {
	Lines []Line `json:"lines"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c Cart) Quantity(serviceID string) int {
	for _, line := range c.Lines {
		if line.Service.ID == serviceID {
			return line.Quantity
		}
	}
	return 0
}

// Add appends the service or, if a line for its id already exists,
// increments that line's quantity.
func (c Cart) Add(svc catalog.Service) Cart {
	lines := make([]Line, 0, len(c.Lines)+1)
	found := false

	for _, line := range c.Lines {
		if line.Service.ID == svc.ID {
			line.Quantity++
			found = true
		}
		lines = append(lines, line)
	}

	if !found {
		lines = append(lines, Line{Service: svc, Quantity: 1})
	}
	return Cart{Lines: lines}
}

// UpdateQuantity adjusts a line by delta. Lines that reach zero are
// removed; no zero-quantity line ever persists.
func (c Cart) UpdateQuantity(serviceID string, delta int) Cart {
	lines := make([]Line, 0, len(c.Lines))

	for _, line := range c.Lines {
		if line.Service.ID == serviceID {
			line.Quantity += delta
			if line.Quantity <= 0 {
				continue
			}
		}
		lines = append(lines, line)
	}
	return Cart{Lines: lines}
}

func (c Cart) TotalPrice() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.Service.Price * float64(line.Quantity)
	}
	return total
}

// TotalMinutes is the booking length submitted at creation time.
func (c Cart) TotalMinutes() int {
	var total int
	for _, line := range c.Lines {
		total += line.Service.DurationMin * line.Quantity
	}
	return total
}
