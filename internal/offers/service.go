package offers

import (
	"context"
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crustcraft/crustcraft-backend/internal/cart"
	"github.com/crustcraft/crustcraft-backend/pkg/db/models"
	"github.com/crustcraft/crustcraft-backend/pkg/enums"
	"github.com/crustcraft/crustcraft-backend/pkg/errors"
)

// ServiceParams groups dependencies for the offer service.
type ServiceParams struct {
	Repo Repository
}

// Service manages BOGO and combo offers and builds their cart bundles.
type Service struct {
	repo Repository
}

// NewService builds an offer service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, goerrors.New("repo is required")
	}
	return &Service{repo: params.Repo}, nil
}

// TierParams is one size tier of an offer.
type TierParams struct {
	SizeName            string
	PriceRupees         int
	OriginalPriceRupees int
}

// CreateParams describe a new offer.
type CreateParams struct {
	Kind         enums.OfferKind
	Title        string
	Description  *string
	CategorySlug string
	Tiers        []TierParams
	Items        []models.OfferItemRef
}

// UpdateParams carries partial offer edits. A non-nil Tiers slice replaces
// every existing tier.
type UpdateParams struct {
	Title       *string
	Description *string
	IsActive    *bool
	Tiers       []TierParams
	Items       []models.OfferItemRef
}

// TierView is the customer-facing price tier with derived savings.
type TierView struct {
	SizeName            string `json:"size_name"`
	PriceRupees         int    `json:"price_rupees"`
	OriginalPriceRupees int    `json:"original_price_rupees"`
	SavingsRupees       int    `json:"savings_rupees"`
	SavingsPercent      string `json:"savings_percent"`
}

// Summary is the storefront projection of an offer.
type Summary struct {
	ID           uuid.UUID             `json:"id"`
	Kind         enums.OfferKind       `json:"kind"`
	Title        string                `json:"title"`
	Description  *string               `json:"description,omitempty"`
	CategorySlug string                `json:"category_slug"`
	IsActive     bool                  `json:"is_active"`
	Tiers        []TierView            `json:"tiers"`
	Items        []models.OfferItemRef `json:"items,omitempty"`
}

// BogoParams select the two pizzas for a buy-one-get-one bundle.
type BogoParams struct {
	OfferID    uuid.UUID
	Pizza1Name string
	Pizza1Size string
	Pizza2Name string
	Pizza2Size string
}

// ComboParams select a combo offer at one of its size tiers.
type ComboParams struct {
	OfferID  uuid.UUID
	SizeName string
}

func (s *Service) ListActive(ctx context.Context) ([]Summary, error) {
	offers, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	return summarize(offers), nil
}

func (s *Service) ListAll(ctx context.Context) ([]Summary, error) {
	offers, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	return summarize(offers), nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*models.Offer, error) {
	if !params.Kind.IsValid() {
		return nil, errors.New(errors.CodeValidation, "kind must be bogo or combo")
	}
	if strings.TrimSpace(params.Title) == "" {
		return nil, errors.New(errors.CodeValidation, "title is required")
	}
	if params.Kind == enums.OfferKindCombo && len(params.Items) == 0 {
		return nil, errors.New(errors.CodeValidation, "combo offers need at least one item")
	}
	tiers, err := validateTiers(params.Tiers)
	if err != nil {
		return nil, err
	}

	offerID := uuid.New()
	for i := range tiers {
		tiers[i].ID = uuid.New()
		tiers[i].OfferID = offerID
	}

	offer := &models.Offer{
		ID:           offerID,
		Kind:         params.Kind,
		Title:        strings.TrimSpace(params.Title),
		Description:  params.Description,
		CategorySlug: params.CategorySlug,
		IsActive:     true,
		Tiers:        tiers,
		Items:        params.Items,
	}
	if err := s.repo.Create(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*models.Offer, error) {
	offer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, errors.New(errors.CodeNotFound, "offer not found")
	}

	if params.Title != nil {
		if strings.TrimSpace(*params.Title) == "" {
			return nil, errors.New(errors.CodeValidation, "title cannot be empty")
		}
		offer.Title = strings.TrimSpace(*params.Title)
	}
	if params.Description != nil {
		offer.Description = params.Description
	}
	if params.IsActive != nil {
		offer.IsActive = *params.IsActive
	}
	if params.Items != nil {
		offer.Items = params.Items
	}

	if params.Tiers != nil {
		tiers, err := validateTiers(params.Tiers)
		if err != nil {
			return nil, err
		}
		for i := range tiers {
			tiers[i].ID = uuid.New()
			tiers[i].OfferID = offer.ID
		}
		if err := s.repo.ReplaceTiers(ctx, offer.ID, tiers); err != nil {
			return nil, err
		}
		offer.Tiers = tiers
	}

	if err := s.repo.Update(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	offer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if offer == nil {
		return errors.New(errors.CodeNotFound, "offer not found")
	}
	return s.repo.Delete(ctx, id)
}

// BuildBogo prices two pizzas at the offer's tier for the larger of their
// sizes and returns the cart line the storefront adds.
func (s *Service) BuildBogo(ctx context.Context, params BogoParams) (cart.LineItem, error) {
	offer, err := s.loadActive(ctx, params.OfferID)
	if err != nil {
		return cart.LineItem{}, err
	}
	if offer.Kind != enums.OfferKindBogo {
		return cart.LineItem{}, errors.New(errors.CodeValidation, "offer is not a BOGO offer")
	}
	if params.Pizza1Name == "" || params.Pizza2Name == "" {
		return cart.LineItem{}, errors.New(errors.CodeValidation, "both pizzas are required")
	}

	size1 := cart.NormalizeSize(params.Pizza1Size)
	size2 := cart.NormalizeSize(params.Pizza2Size)
	tierSize := cart.SizeMedium
	if size1 == cart.SizeLarge || size2 == cart.SizeLarge {
		tierSize = cart.SizeLarge
	}

	tier, err := findTier(offer, tierSize)
	if err != nil {
		return cart.LineItem{}, err
	}

	return cart.LineItem{
		Kind:          cart.KindBogo,
		Name:          fmt.Sprintf("BOGO: %s + %s", params.Pizza1Name, params.Pizza2Name),
		UnitPrice:     tier.PriceRupees,
		Category:      offer.CategorySlug,
		Pizza1:        &cart.BundlePizza{Name: params.Pizza1Name, SizeName: size1},
		Pizza2:        &cart.BundlePizza{Name: params.Pizza2Name, SizeName: size2},
		OriginalPrice: tier.OriginalPriceRupees,
		Savings:       tier.OriginalPriceRupees - tier.PriceRupees,
	}, nil
}

// BuildCombo returns the cart line for a combo offer at the requested tier.
func (s *Service) BuildCombo(ctx context.Context, params ComboParams) (cart.LineItem, error) {
	offer, err := s.loadActive(ctx, params.OfferID)
	if err != nil {
		return cart.LineItem{}, err
	}
	if offer.Kind != enums.OfferKindCombo {
		return cart.LineItem{}, errors.New(errors.CodeValidation, "offer is not a combo offer")
	}

	tier, err := findTier(offer, cart.NormalizeSize(params.SizeName))
	if err != nil {
		return cart.LineItem{}, err
	}

	items := make([]cart.ComboItem, 0, len(offer.Items))
	for _, ref := range offer.Items {
		size := ref.SizeName
		if size != "" {
			size = cart.NormalizeSize(size)
		}
		items = append(items, cart.ComboItem{Name: ref.Name, SizeName: size, Qty: ref.Qty})
	}

	return cart.LineItem{
		Kind:          cart.KindCombo,
		Name:          offer.Title,
		UnitPrice:     tier.PriceRupees,
		Category:      offer.CategorySlug,
		ComboItems:    items,
		OriginalPrice: tier.OriginalPriceRupees,
		Savings:       tier.OriginalPriceRupees - tier.PriceRupees,
	}, nil
}

func (s *Service) loadActive(ctx context.Context, id uuid.UUID) (*models.Offer, error) {
	offer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, errors.New(errors.CodeNotFound, "offer not found")
	}
	if !offer.IsActive {
		return nil, errors.New(errors.CodeValidation, "offer is no longer active")
	}
	return offer, nil
}

func findTier(offer *models.Offer, sizeName string) (models.OfferTier, error) {
	for _, tier := range offer.Tiers {
		if cart.NormalizeSize(tier.SizeName) == sizeName {
			return tier, nil
		}
	}
	return models.OfferTier{}, errors.New(errors.CodeValidation, "no price tier for size").
		WithDetails(map[string]any{"size_name": sizeName})
}

func validateTiers(params []TierParams) ([]models.OfferTier, error) {
	if len(params) == 0 {
		return nil, errors.New(errors.CodeValidation, "at least one price tier is required")
	}

	seen := map[string]bool{}
	tiers := make([]models.OfferTier, 0, len(params))
	for _, p := range params {
		size := cart.NormalizeSize(p.SizeName)
		if size == "" {
			return nil, errors.New(errors.CodeValidation, "tier size name is required")
		}
		if seen[size] {
			return nil, errors.New(errors.CodeValidation, "duplicate tier size").WithDetails(map[string]any{"size_name": size})
		}
		seen[size] = true
		if p.PriceRupees <= 0 || p.OriginalPriceRupees < p.PriceRupees {
			return nil, errors.New(errors.CodeValidation, "tier prices must be positive and discounted").
				WithDetails(map[string]any{"size_name": size})
		}
		tiers = append(tiers, models.OfferTier{
			SizeName:            size,
			PriceRupees:         p.PriceRupees,
			OriginalPriceRupees: p.OriginalPriceRupees,
		})
	}
	return tiers, nil
}

func summarize(offers []models.Offer) []Summary {
	out := make([]Summary, 0, len(offers))
	for _, o := range offers {
		tiers := make([]TierView, 0, len(o.Tiers))
		for _, t := range o.Tiers {
			tiers = append(tiers, TierView{
				SizeName:            t.SizeName,
				PriceRupees:         t.PriceRupees,
				OriginalPriceRupees: t.OriginalPriceRupees,
				SavingsRupees:       t.OriginalPriceRupees - t.PriceRupees,
				SavingsPercent:      savingsPercent(t.OriginalPriceRupees, t.PriceRupees),
			})
		}
		out = append(out, Summary{
			ID:           o.ID,
			Kind:         o.Kind,
			Title:        o.Title,
			Description:  o.Description,
			CategorySlug: o.CategorySlug,
			IsActive:     o.IsActive,
			Tiers:        tiers,
			Items:        o.Items,
		})
	}
	return out
}

// savingsPercent renders the discount as a whole percentage, e.g. "30%".
func savingsPercent(original, price int) string {
	if original <= 0 || price >= original {
		return "0%"
	}
	pct := decimal.NewFromInt(int64(original - price)).
		Div(decimal.NewFromInt(int64(original))).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	return pct.String() + "%"
}
