package draft

import "errors"

var (
	// ErrIndexOutOfRange is returned by RemoveItem for an invalid index
	// when the draft has more than one item
	ErrIndexOutOfRange = errors.New("line item index out of range")
)

// Field names a LineItem field for UpdateItem
type Field string

const (
	FieldProduct  Field = "productRef"
	FieldQuantity Field = "requestedQuantity"
)

// LineItem is one row of a draft order. Both fields hold raw user input:
// the product reference may be unset while the user is choosing, and the
// quantity may be non-numeric or non-positive mid-edit. Nothing is
// validated until submission.
type LineItem struct {
	ProductRef        string
	RequestedQuantity string
}

// Order is an in-progress, unsubmitted order composition. It always
// holds at least one line item; item identity is positional.
type Order struct {
	items []LineItem
}

// defaultQuantity matches the quantity a fresh form row starts with
const defaultQuantity = "1"

// New creates a draft with a single empty line item
func New() *Order {
	return &Order{
		items: []LineItem{{RequestedQuantity: defaultQuantity}},
	}
}

// Items returns a copy of the current line items. Mutating the returned
// slice does not affect the draft.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Len returns the number of line items
func (o *Order) Len() int {
	return len(o.items)
}

// AddItem appends a new line item with an unset product and the default
// quantity. There is no cap on draft length.
func (o *Order) AddItem() {
	o.items = append(o.items, LineItem{RequestedQuantity: defaultQuantity})
}

// RemoveItem deletes the line item at index. Removing the last remaining
// item is a no-op: the user must always have at least one row to edit.
// An out-of-range index on a longer draft returns ErrIndexOutOfRange.
func (o *Order) RemoveItem(index int) error {
	if len(o.items) == 1 {
		return nil
	}
	if index < 0 || index >= len(o.items) {
		return ErrIndexOutOfRange
	}

	o.items = append(o.items[:index], o.items[index+1:]...)
	return nil
}

// UpdateItem replaces one field of the line item at index, leaving every
// other item and field untouched. Malformed values are stored as-is;
// validation is deferred to submission. Unknown fields and out-of-range
// indexes are ignored so the operation can never fail mid-edit.
func (o *Order) UpdateItem(index int, field Field, value string) {
	if index < 0 || index >= len(o.items) {
		return
	}

	switch field {
	case FieldProduct:
		o.items[index].ProductRef = value
	case FieldQuantity:
		o.items[index].RequestedQuantity = value
	}
}

// Reset returns the draft to its initial single-empty-item state. Called
// after a successful submission or an explicit cancel.
func (o *Order) Reset() {
	o.items = []LineItem{{RequestedQuantity: defaultQuantity}}
}
