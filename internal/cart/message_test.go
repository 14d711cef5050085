package cart

import (
	"strings"
	"testing"
)

func TestGenerateMessagePreconditions(t *testing.T) {
	c := newTestCart()
	if got := c.GenerateMessage(); got != "" {
		t.Fatalf("empty cart without outlet must render nothing, got %q", got)
	}

	c.SetSelectedOutlet("sector17")
	if got := c.GenerateMessage(); got != "" {
		t.Fatalf("empty cart must render nothing even with an outlet, got %q", got)
	}

	c.AddItem(Product{Name: "Margherita", SizeName: "Medium", Price: 200})
	c.SetSelectedOutlet("")
	if got := c.GenerateMessage(); got != "" {
		t.Fatalf("unset outlet must render nothing, got %q", got)
	}

	c.SetSelectedOutlet("no-such-outlet")
	if got := c.GenerateMessage(); got != "" {
		t.Fatalf("unresolvable outlet must render nothing, got %q", got)
	}
}

func TestGenerateMessageLayout(t *testing.T) {
	c := newTestCart()
	c.SetSelectedOutlet("sector17")
	c.AddItem(Product{Name: "Margherita", SizeName: "Medium", Price: 200})
	c.ToggleAddOn(c.Items()[0].ID, AddOnExtraCheese)

	msg := c.GenerateMessage()
	for _, want := range []string{
		"*CrustCraft Pizza - New Order*",
		"*Outlet:* CrustCraft Sector 17",
		"*Phone:* +919876500017",
		"1. Margherita (Medium)",
		"1 x Rs.200 = Rs.200",
		"+ Extra Cheese (Rs.40)",
		"Subtotal: Rs.240",
		"Delivery: Rs.30",
		"Total: Rs.270",
		"Please confirm this order. Thank you!",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerateMessageIsDeterministic(t *testing.T) {
	c := newTestCart()
	c.SetSelectedOutlet("mohali")
	c.AddItem(Product{Name: "Margherita", SizeName: "Medium", Price: 200})
	c.AddItem(Product{Name: "Farmhouse", SizeName: "Large", Price: 320})

	if first, second := c.GenerateMessage(), c.GenerateMessage(); first != second {
		t.Fatal("message must be a pure function of cart state")
	}
}

func TestGenerateMessageBogoBundle(t *testing.T) {
	c := newTestCart()
	c.SetSelectedOutlet("sector17")
	c.AddBundle(LineItem{
		Kind:          KindBogo,
		Name:          "BOGO: Margherita + Farmhouse",
		UnitPrice:     349,
		OriginalPrice: 499,
		Savings:       150,
		Pizza1:        &BundlePizza{Name: "Margherita", SizeName: "Medium"},
		Pizza2:        &BundlePizza{Name: "Farmhouse", SizeName: "Medium"},
	})

	msg := c.GenerateMessage()
	for _, want := range []string{
		"1. BOGO: Margherita + Farmhouse",
		"- Margherita (Medium)",
		"- Farmhouse (Medium)",
		"1 x Rs.349 = Rs.349",
		"You save Rs.150",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerateMessageComboBundle(t *testing.T) {
	c := newTestCart()
	c.SetSelectedOutlet("sector17")
	c.AddBundle(LineItem{
		Kind:      KindCombo,
		Name:      "Family Feast",
		UnitPrice: 799,
		ComboItems: []ComboItem{
			{Name: "Margherita", SizeName: "Large", Qty: 2},
			{Name: "Garlic Bread", Qty: 1},
			{Name: "Cold Drink", Qty: 2},
		},
	})

	msg := c.GenerateMessage()
	for _, want := range []string{
		"1. Family Feast",
		"2x Margherita (Large)",
		"- Garlic Bread",
		"2x Cold Drink",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerateMessageFreeDeliverySentinel(t *testing.T) {
	c := New(Options{
		Outlets:  testDirectory(),
		Delivery: DeliveryPolicy{FlatFee: 30, FreeAbove: 299},
	})
	c.SetSelectedOutlet("sector17")
	c.AddItem(Product{Name: "Margherita", SizeName: "Medium", Price: 200})
	c.AddItem(Product{Name: "Margherita", SizeName: "Medium", Price: 200})

	msg := c.GenerateMessage()
	if !strings.Contains(msg, "Delivery: FREE") {
		t.Fatalf("expected FREE sentinel:\n%s", msg)
	}
	if !strings.Contains(msg, "Total: Rs.400") {
		t.Fatalf("free delivery must not inflate the total:\n%s", msg)
	}
}
