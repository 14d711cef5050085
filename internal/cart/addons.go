package cart

import "strings"

// AddOn names a toggleable per-line extra.
type AddOn string

const (
	AddOnExtraCheese AddOn = "extraCheese"
	AddOnCheeseBurst AddOn = "cheeseBurst"
)

const (
	SizeSmall  = "Small"
	SizeMedium = "Medium"
	SizeLarge  = "Large"
)

// AddOnPricing holds the surcharge for one add-on. Prices is keyed by
// normalized size for plain items; ComboPrices is keyed by the larger size of
// a bundle's contents.
type AddOnPricing struct {
	Prices      map[string]int
	ComboPrices map[string]int
}

// AddOnTable maps add-on name to its pricing. A missing entry prices the
// surcharge at zero.
type AddOnTable map[AddOn]AddOnPricing

// DefaultAddOnTable returns the menu's standing surcharge card.
func DefaultAddOnTable() AddOnTable {
	return AddOnTable{
		AddOnExtraCheese: {
			Prices:      map[string]int{SizeSmall: 30, SizeMedium: 40, SizeLarge: 50},
			ComboPrices: map[string]int{SizeMedium: 60, SizeLarge: 80},
		},
		AddOnCheeseBurst: {
			Prices:      map[string]int{SizeSmall: 50, SizeMedium: 60, SizeLarge: 70},
			ComboPrices: map[string]int{SizeMedium: 90, SizeLarge: 110},
		},
	}
}

// NormalizeSize folds free-form size strings onto the canonical tier names.
// Unknown values pass through trimmed so unusual catalog sizes still key the
// table consistently.
func NormalizeSize(size string) string {
	trimmed := strings.TrimSpace(size)
	switch strings.ToLower(trimmed) {
	case "s", "small", "regular":
		return SizeSmall
	case "m", "medium", "med":
		return SizeMedium
	case "l", "large", "big":
		return SizeLarge
	}
	return trimmed
}

// ParseAddOn maps a wire name onto a known add-on.
func ParseAddOn(name string) (AddOn, bool) {
	switch AddOn(strings.TrimSpace(name)) {
	case AddOnExtraCheese:
		return AddOnExtraCheese, true
	case AddOnCheeseBurst:
		return AddOnCheeseBurst, true
	}
	return "", false
}

// bundleSizeKey picks the combo table row for a bundle: Large when anything
// in the bundle is Large, Medium otherwise.
func bundleSizeKey(li LineItem) string {
	sizes := []string{}
	if li.Pizza1 != nil {
		sizes = append(sizes, li.Pizza1.SizeName)
	}
	if li.Pizza2 != nil {
		sizes = append(sizes, li.Pizza2.SizeName)
	}
	for _, ci := range li.ComboItems {
		sizes = append(sizes, ci.SizeName)
	}
	for _, s := range sizes {
		if NormalizeSize(s) == SizeLarge {
			return SizeLarge
		}
	}
	return SizeMedium
}

// Surcharge returns the flat per-line charge for one active add-on.
func (t AddOnTable) Surcharge(addOn AddOn, li LineItem) int {
	pricing, ok := t[addOn]
	if !ok {
		return 0
	}
	if li.isBundle() {
		return pricing.ComboPrices[bundleSizeKey(li)]
	}
	return pricing.Prices[NormalizeSize(li.SizeName)]
}
