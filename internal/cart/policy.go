package cart

// DeliveryPolicy is the single delivery-fee rule the engine applies.
// FreeAbove <= 0 disables the free tier; otherwise delivery is free once the
// subtotal strictly exceeds the threshold.
type DeliveryPolicy struct {
	FlatFee   int
	FreeAbove int
}

// Charge returns the fee in rupees for the given subtotal. An empty cart is
// never charged.
func (p DeliveryPolicy) Charge(subtotal int) int {
	if subtotal <= 0 {
		return 0
	}
	if p.FreeAbove > 0 && subtotal > p.FreeAbove {
		return 0
	}
	return p.FlatFee
}
