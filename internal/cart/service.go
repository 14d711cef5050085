package cart

import (
	"context"
	goerrors "errors"

	"github.com/crustcraft/crustcraft-backend/internal/whatsapp"
	"github.com/crustcraft/crustcraft-backend/pkg/errors"
	"github.com/crustcraft/crustcraft-backend/pkg/logger"
)

// OutletProvider supplies the current outlet directory for receipt
// generation and checkout.
type OutletProvider interface {
	Directory(ctx context.Context) (Directory, error)
}

// View is the derived cart state returned to the storefront after every
// operation.
type View struct {
	Items          []LineItem `json:"items"`
	SelectedOutlet string     `json:"selected_outlet"`
	Subtotal       int        `json:"subtotal"`
	DeliveryCharge int        `json:"delivery_charge"`
	DeliveryLabel  string     `json:"delivery_label"`
	Total          int        `json:"total"`
	TotalItems     int        `json:"total_items"`
}

// CheckoutResult carries the rendered order message and its WhatsApp link.
type CheckoutResult struct {
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsapp_link"`
	OutletKey    string `json:"outlet_key"`
	OutletPhone  string `json:"outlet_phone"`
}

// ServiceOptions are the pricing policies every session's cart shares.
type ServiceOptions struct {
	AddOns       AddOnTable
	Delivery     DeliveryPolicy
	BusinessName string
}

// Service runs one cart operation per request: load the session snapshot,
// apply the mutation, persist, and return the derived view.
type Service struct {
	store   Store
	outlets OutletProvider
	logg    *logger.Logger
	opts    ServiceOptions
}

func NewService(store Store, outlets OutletProvider, logg *logger.Logger, opts ServiceOptions) (*Service, error) {
	if store == nil {
		return nil, goerrors.New("store is required")
	}
	if outlets == nil {
		return nil, goerrors.New("outlet provider is required")
	}
	if logg == nil {
		return nil, goerrors.New("logger is required")
	}
	if opts.AddOns == nil {
		opts.AddOns = DefaultAddOnTable()
	}
	if opts.BusinessName == "" {
		opts.BusinessName = DefaultBusinessName
	}
	return &Service{store: store, outlets: outlets, logg: logg, opts: opts}, nil
}

func (s *Service) Fetch(ctx context.Context, sessionID string) (View, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return View{}, err
	}
	return s.view(cart), nil
}

func (s *Service) AddItem(ctx context.Context, sessionID string, product Product) (View, error) {
	if product.Name == "" {
		return View{}, errors.New(errors.CodeValidation, "item name is required")
	}
	return s.mutate(ctx, sessionID, func(c *Cart) {
		c.AddItem(product)
	})
}

func (s *Service) AddBundle(ctx context.Context, sessionID string, bundle LineItem) (View, error) {
	if bundle.Name == "" {
		return View{}, errors.New(errors.CodeValidation, "bundle name is required")
	}
	return s.mutate(ctx, sessionID, func(c *Cart) {
		c.AddBundle(bundle)
	})
}

func (s *Service) RemoveItem(ctx context.Context, sessionID string, itemID string) (View, error) {
	return s.mutate(ctx, sessionID, func(c *Cart) {
		c.RemoveItem(itemID)
	})
}

func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, itemID string, quantity int) (View, error) {
	return s.mutate(ctx, sessionID, func(c *Cart) {
		c.UpdateQuantity(itemID, quantity)
	})
}

func (s *Service) ToggleAddOn(ctx context.Context, sessionID string, itemID string, addOnName string) (View, error) {
	addOn, ok := ParseAddOn(addOnName)
	if !ok {
		return View{}, errors.New(errors.CodeValidation, "unknown add-on").WithDetails(map[string]any{"add_on": addOnName})
	}
	return s.mutate(ctx, sessionID, func(c *Cart) {
		c.ToggleAddOn(itemID, addOn)
	})
}

func (s *Service) SelectOutlet(ctx context.Context, sessionID string, outletKey string) (View, error) {
	return s.mutate(ctx, sessionID, func(c *Cart) {
		c.SetSelectedOutlet(outletKey)
	})
}

func (s *Service) Clear(ctx context.Context, sessionID string) (View, error) {
	return s.mutate(ctx, sessionID, func(c *Cart) {
		c.Clear()
	})
}

// Message renders the current order message, or "" while the outlet or
// items preconditions are unmet. The storefront polls this for the preview.
func (s *Service) Message(ctx context.Context, sessionID string) (string, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return cart.GenerateMessage(), nil
}

// Checkout renders the order message and its wa.me link. The preconditions
// the storefront shows as prompts (no outlet, empty cart) surface here as
// validation errors.
func (s *Service) Checkout(ctx context.Context, sessionID string) (CheckoutResult, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return CheckoutResult{}, err
	}

	if cart.SelectedOutlet() == "" {
		return CheckoutResult{}, errors.New(errors.CodeValidation, "select an outlet before checkout")
	}
	if cart.TotalItems() == 0 {
		return CheckoutResult{}, errors.New(errors.CodeValidation, "cart is empty")
	}

	outlet, ok := cart.opts.Outlets[cart.SelectedOutlet()]
	if !ok {
		return CheckoutResult{}, errors.New(errors.CodeValidation, "selected outlet is unavailable").
			WithDetails(map[string]any{"outlet_key": cart.SelectedOutlet()})
	}

	message := cart.GenerateMessage()
	link, err := whatsapp.BuildLink(outlet.Phone, message)
	if err != nil {
		return CheckoutResult{}, errors.Wrap(errors.CodeInternal, err, "building whatsapp link")
	}

	s.logg.Info(s.logg.WithOutletKey(ctx, outlet.Key), "checkout message generated")
	return CheckoutResult{
		Message:      message,
		WhatsAppLink: link,
		OutletKey:    outlet.Key,
		OutletPhone:  outlet.Phone,
	}, nil
}

func (s *Service) mutate(ctx context.Context, sessionID string, apply func(*Cart)) (View, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return View{}, err
	}

	apply(cart)

	if err := s.store.Save(ctx, sessionID, cart.Snapshot()); err != nil {
		return View{}, errors.Wrap(errors.CodeDependency, err, "persisting cart session")
	}
	return s.view(cart), nil
}

func (s *Service) load(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, errors.New(errors.CodeValidation, "cart session is required")
	}

	directory, err := s.outlets.Directory(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "loading outlet directory")
	}

	snap, found, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "loading cart session")
	}

	cart := New(Options{
		Outlets:      directory,
		AddOns:       s.opts.AddOns,
		Delivery:     s.opts.Delivery,
		BusinessName: s.opts.BusinessName,
	})
	if found {
		cart.Restore(snap)
	}
	return cart, nil
}

func (s *Service) view(c *Cart) View {
	return View{
		Items:          c.Items(),
		SelectedOutlet: c.SelectedOutlet(),
		Subtotal:       c.Subtotal(),
		DeliveryCharge: c.DeliveryCharge(),
		DeliveryLabel:  c.DeliveryFeeLabel(),
		Total:          c.Total(),
		TotalItems:     c.TotalItems(),
	}
}
