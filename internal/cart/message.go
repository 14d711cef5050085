package cart

import (
	"fmt"
	"strings"
)

const messageSeparator = "----------------------------"

var addOnLabels = map[AddOn]string{
	AddOnExtraCheese: "Extra Cheese",
	AddOnCheeseBurst: "Cheese Burst",
}

func formatRupees(amount int) string {
	return fmt.Sprintf("Rs.%d", amount)
}

// GenerateMessage renders the cart as the order receipt handed to WhatsApp.
// It returns "" when no outlet is selected or the cart is empty; checkout
// actions treat the empty string as "not ready".
func (c *Cart) GenerateMessage() string {
	if c.selectedOutlet == "" || len(c.items) == 0 {
		return ""
	}
	outlet, ok := c.opts.Outlets[c.selectedOutlet]
	if !ok {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%s - New Order*\n\n", c.opts.BusinessName)
	fmt.Fprintf(&b, "*Outlet:* %s\n", outlet.Name)
	fmt.Fprintf(&b, "*Phone:* %s\n\n", outlet.Phone)

	for i, li := range c.items {
		writeItemLines(&b, c, i+1, li)
	}

	b.WriteString(messageSeparator + "\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", formatRupees(c.Subtotal()))
	fmt.Fprintf(&b, "Delivery: %s\n", c.DeliveryFeeLabel())
	fmt.Fprintf(&b, "Total: %s\n\n", formatRupees(c.Total()))
	b.WriteString("Please confirm this order. Thank you!")

	return b.String()
}

func writeItemLines(b *strings.Builder, c *Cart, position int, li LineItem) {
	title := li.Name
	if !li.isBundle() && li.SizeName != "" {
		title = fmt.Sprintf("%s (%s)", li.Name, li.SizeName)
	}
	fmt.Fprintf(b, "%d. %s\n", position, title)

	switch li.Kind {
	case KindBogo:
		if li.Pizza1 != nil {
			fmt.Fprintf(b, "   - %s (%s)\n", li.Pizza1.Name, li.Pizza1.SizeName)
		}
		if li.Pizza2 != nil {
			fmt.Fprintf(b, "   - %s (%s)\n", li.Pizza2.Name, li.Pizza2.SizeName)
		}
	case KindCombo:
		for _, ci := range li.ComboItems {
			line := ci.Name
			if ci.SizeName != "" {
				line = fmt.Sprintf("%s (%s)", ci.Name, ci.SizeName)
			}
			if ci.Qty > 1 {
				line = fmt.Sprintf("%dx %s", ci.Qty, line)
			}
			fmt.Fprintf(b, "   - %s\n", line)
		}
	}

	fmt.Fprintf(b, "   %d x %s = %s\n", li.Quantity, formatRupees(li.UnitPrice), formatRupees(li.UnitPrice*li.Quantity))

	for _, addOn := range li.activeAddOns() {
		fmt.Fprintf(b, "   + %s (%s)\n", addOnLabels[addOn], formatRupees(c.opts.AddOns.Surcharge(addOn, li)))
	}

	if li.Savings > 0 {
		fmt.Fprintf(b, "   You save %s\n", formatRupees(li.Savings))
	}
}
