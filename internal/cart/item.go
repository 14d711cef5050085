package cart

// Kind discriminates the line item union. Plain items merge on (name, size);
// bundle kinds always occupy their own line.
type Kind string

const (
	KindPlain Kind = "plain"
	KindBogo  Kind = "bogo"
	KindCombo Kind = "combo"
)

// BundlePizza is one half of a buy-one-get-one pair.
type BundlePizza struct {
	Name     string `json:"name"`
	SizeName string `json:"size_name"`
}

// ComboItem is one fixed entry inside a combo bundle.
type ComboItem struct {
	Name     string `json:"name"`
	SizeName string `json:"size_name,omitempty"`
	Qty      int    `json:"qty"`
}

// LineItem is one row in the cart. UnitPrice is whole rupees and, for bundle
// kinds, already carries the discount.
type LineItem struct {
	ID        string `json:"id"`
	Kind      Kind   `json:"kind"`
	Name      string `json:"name"`
	SizeName  string `json:"size_name,omitempty"`
	UnitPrice int    `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Category  string `json:"category,omitempty"`

	ExtraCheese bool `json:"extra_cheese"`
	CheeseBurst bool `json:"cheese_burst"`

	Pizza1     *BundlePizza `json:"pizza1,omitempty"`
	Pizza2     *BundlePizza `json:"pizza2,omitempty"`
	ComboItems []ComboItem  `json:"combo_items,omitempty"`

	// OriginalPrice/Savings describe the undiscounted bundle price for the
	// receipt. Zero on plain items.
	OriginalPrice int `json:"original_price,omitempty"`
	Savings       int `json:"savings,omitempty"`
}

// Product is the minimal catalog shape AddItem accepts.
type Product struct {
	Name     string
	SizeName string
	Price    int
	Category string
}

func (li LineItem) isBundle() bool {
	return li.Kind == KindBogo || li.Kind == KindCombo
}
