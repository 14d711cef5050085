package cart

import (
	"github.com/google/uuid"
)

// DefaultBusinessName brands the order receipt when Options leaves it blank.
const DefaultBusinessName = "CrustCraft Pizza"

// Outlet is the engine's local view of a fulfillment location.
type Outlet struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// Directory resolves outlet keys for receipt generation.
type Directory map[string]Outlet

// Options configures a Cart. Zero-value fields fall back to sane defaults
// except Outlets, which simply resolves nothing.
type Options struct {
	Outlets      Directory
	AddOns       AddOnTable
	Delivery     DeliveryPolicy
	BusinessName string
}

// Cart holds the ordered line items and the outlet selection, and derives
// totals and the order message. All mutation goes through its methods; none
// of them ever fail. Stale ids and malformed input degrade to no-ops.
type Cart struct {
	opts           Options
	items          []LineItem
	selectedOutlet string
}

func New(opts Options) *Cart {
	if opts.AddOns == nil {
		opts.AddOns = DefaultAddOnTable()
	}
	if opts.BusinessName == "" {
		opts.BusinessName = DefaultBusinessName
	}
	return &Cart{opts: opts}
}

// AddItem merges onto an existing plain line with the same (name, size) or
// appends a new line with quantity 1. A negative price is coerced to zero.
func (c *Cart) AddItem(p Product) {
	if p.Price < 0 {
		p.Price = 0
	}
	for i := range c.items {
		li := &c.items[i]
		if !li.isBundle() && li.Name == p.Name && li.SizeName == p.SizeName {
			li.Quantity++
			return
		}
	}
	c.items = append(c.items, LineItem{
		ID:        uuid.NewString(),
		Kind:      KindPlain,
		Name:      p.Name,
		SizeName:  p.SizeName,
		UnitPrice: p.Price,
		Quantity:  1,
		Category:  p.Category,
	})
}

// AddBundle appends a BOGO/combo line. Bundles never merge; each call gets a
// fresh id and its own row.
func (c *Cart) AddBundle(li LineItem) {
	if li.Kind != KindBogo && li.Kind != KindCombo {
		li.Kind = KindCombo
	}
	li.ID = uuid.NewString()
	if li.Quantity <= 0 {
		li.Quantity = 1
	}
	if li.UnitPrice < 0 {
		li.UnitPrice = 0
	}
	c.items = append(c.items, li)
}

// RemoveItem deletes the line with the given id. Stale ids are ignored.
func (c *Cart) RemoveItem(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the absolute quantity; zero or below removes the line.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// ToggleAddOn flips the named add-on on the line with the given id.
func (c *Cart) ToggleAddOn(id string, addOn AddOn) {
	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}
		switch addOn {
		case AddOnExtraCheese:
			c.items[i].ExtraCheese = !c.items[i].ExtraCheese
		case AddOnCheeseBurst:
			c.items[i].CheeseBurst = !c.items[i].CheeseBurst
		}
		return
	}
}

// SetSelectedOutlet records the outlet key. Validation happens at checkout
// time, not here.
func (c *Cart) SetSelectedOutlet(key string) {
	c.selectedOutlet = key
}

func (c *Cart) SelectedOutlet() string {
	return c.selectedOutlet
}

// ItemTotal prices one line: unit price times quantity plus a flat, once-per-
// line surcharge for each active add-on.
func (c *Cart) ItemTotal(li LineItem) int {
	total := li.UnitPrice * li.Quantity
	for _, addOn := range li.activeAddOns() {
		total += c.opts.AddOns.Surcharge(addOn, li)
	}
	return total
}

func (li LineItem) activeAddOns() []AddOn {
	var active []AddOn
	if li.ExtraCheese {
		active = append(active, AddOnExtraCheese)
	}
	if li.CheeseBurst {
		active = append(active, AddOnCheeseBurst)
	}
	return active
}

func (c *Cart) Subtotal() int {
	sum := 0
	for _, li := range c.items {
		sum += c.ItemTotal(li)
	}
	return sum
}

func (c *Cart) DeliveryCharge() int {
	return c.opts.Delivery.Charge(c.Subtotal())
}

// DeliveryFeeLabel renders the fee for receipts, with the FREE sentinel when
// the policy zeroes it for a non-empty cart.
func (c *Cart) DeliveryFeeLabel() string {
	subtotal := c.Subtotal()
	if subtotal > 0 && c.opts.Delivery.Charge(subtotal) == 0 {
		return "FREE"
	}
	return formatRupees(c.opts.Delivery.Charge(subtotal))
}

func (c *Cart) Total() int {
	return c.Subtotal() + c.DeliveryCharge()
}

// TotalItems is the quantity sum across lines; zero exactly when empty.
func (c *Cart) TotalItems() int {
	sum := 0
	for _, li := range c.items {
		sum += li.Quantity
	}
	return sum
}

// Clear drops all lines but keeps the outlet selection.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the line sequence in display order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Snapshot is the serializable cart state stored between requests.
type Snapshot struct {
	Items          []LineItem `json:"items"`
	SelectedOutlet string     `json:"selected_outlet"`
}

func (c *Cart) Snapshot() Snapshot {
	return Snapshot{Items: c.Items(), SelectedOutlet: c.selectedOutlet}
}

// Restore replaces the cart state from a snapshot, dropping lines that could
// never have been produced by the engine (missing id, non-positive quantity).
func (c *Cart) Restore(snap Snapshot) {
	items := make([]LineItem, 0, len(snap.Items))
	for _, li := range snap.Items {
		if li.ID == "" || li.Quantity <= 0 {
			continue
		}
		if li.Kind == "" {
			li.Kind = KindPlain
		}
		if li.UnitPrice < 0 {
			li.UnitPrice = 0
		}
		items = append(items, li)
	}
	c.items = items
	c.selectedOutlet = snap.SelectedOutlet
}
