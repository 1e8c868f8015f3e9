package cart

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNegativeUnitPrice = errors.New("unit price cannot be negative")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrDuplicateLineItem = errors.New("duplicate line item")
	ErrUnknownLineItem   = errors.New("unknown line item")
)

type LineItem struct {
	id             uuid.UUID
	name           string
	unitPriceCents int64
	quantity       int
	selected       bool
}

func NewLineItem(id uuid.UUID, name string, unitPriceCents int64, quantity int, selected bool) (LineItem, error) {
	if unitPriceCents < 0 {
		return LineItem{}, ErrNegativeUnitPrice
	}
	if quantity < 1 {
		return LineItem{}, ErrInvalidQuantity
	}
	return LineItem{
		id:             id,
		name:           name,
		unitPriceCents: unitPriceCents,
		quantity:       quantity,
		selected:       selected,
	}, nil
}

func (li LineItem) ID() uuid.UUID         { return li.id }
func (li LineItem) Name() string          { return li.name }
func (li LineItem) UnitPriceCents() int64 { return li.unitPriceCents }
func (li LineItem) Quantity() int         { return li.quantity }
func (li LineItem) Selected() bool        { return li.selected }

func (li LineItem) LineTotalCents() int64 {
	return li.unitPriceCents * int64(li.quantity)
}

// Snapshot is the ordered cart contents for one shopper. Selection state is
// part of the snapshot; the subtotal is always derived, never stored.
type Snapshot struct {
	items []LineItem
}

func NewSnapshot(items []LineItem) (*Snapshot, error) {
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.id]; dup {
			return nil, ErrDuplicateLineItem
		}
		seen[it.id] = struct{}{}
	}
	copied := make([]LineItem, len(items))
	copy(copied, items)
	return &Snapshot{items: copied}, nil
}

func (s *Snapshot) Items() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Snapshot) SelectedItems() []LineItem {
	var out []LineItem
	for _, it := range s.items {
		if it.selected {
			out = append(out, it)
		}
	}
	return out
}

// SubtotalCents sums unitPrice*quantity over selected items only.
func (s *Snapshot) SubtotalCents() int64 {
	var total int64
	for _, it := range s.items {
		if it.selected {
			total += it.LineTotalCents()
		}
	}
	return total
}

// WithSelection returns a new snapshot with exactly the given items selected.
// Every id must exist in the cart.
func (s *Snapshot) WithSelection(ids []uuid.UUID) (*Snapshot, error) {
	want := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	for id := range want {
		if !s.contains(id) {
			return nil, ErrUnknownLineItem
		}
	}

	items := make([]LineItem, len(s.items))
	for i, it := range s.items {
		_, sel := want[it.id]
		it.selected = sel
		items[i] = it
	}
	return &Snapshot{items: items}, nil
}

func (s *Snapshot) contains(id uuid.UUID) bool {
	for _, it := range s.items {
		if it.id == id {
			return true
		}
	}
	return false
}
