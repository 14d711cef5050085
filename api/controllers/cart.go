package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/crustcraft/crustcraft-backend/api/middleware"
	"github.com/crustcraft/crustcraft-backend/api/responses"
	"github.com/crustcraft/crustcraft-backend/api/validators"
	cartsvc "github.com/crustcraft/crustcraft-backend/internal/cart"
	offersvc "github.com/crustcraft/crustcraft-backend/internal/offers"
	pkgerrors "github.com/crustcraft/crustcraft-backend/pkg/errors"
	"github.com/crustcraft/crustcraft-backend/pkg/logger"
)

// GetCart returns the session's derived cart view.
func GetCart(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		view, err := svc.Fetch(r.Context(), middleware.CartSessionFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

type addCartItemRequest struct {
	Name        string `json:"name" validate:"required"`
	SizeName    string `json:"size_name" validate:"required"`
	PriceRupees int    `json:"price_rupees" validate:"required,min=1"`
	Category    string `json:"category,omitempty"`
}

// AddCartItem adds a plain menu item; matching name+size lines merge.
func AddCartItem(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.AddItem(r.Context(), middleware.CartSessionFromContext(r.Context()), cartsvc.Product{
			Name:     validators.SanitizeString(payload.Name, 160),
			SizeName: payload.SizeName,
			Price:    payload.PriceRupees,
			Category: payload.Category,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

type addCartBogoRequest struct {
	OfferID    string `json:"offer_id" validate:"required,uuid4"`
	Pizza1Name string `json:"pizza1_name" validate:"required"`
	Pizza1Size string `json:"pizza1_size" validate:"required"`
	Pizza2Name string `json:"pizza2_name" validate:"required"`
	Pizza2Size string `json:"pizza2_size" validate:"required"`
}

// AddCartBogo builds a BOGO bundle from an active offer and appends it to
// the cart. Bundles never merge with existing lines.
func AddCartBogo(svc *cartsvc.Service, offers *offersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || offers == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addCartBogoRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		offerID, err := uuid.Parse(payload.OfferID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid offer id"))
			return
		}

		bundle, err := offers.BuildBogo(r.Context(), offersvc.BogoParams{
			OfferID:    offerID,
			Pizza1Name: payload.Pizza1Name,
			Pizza1Size: payload.Pizza1Size,
			Pizza2Name: payload.Pizza2Name,
			Pizza2Size: payload.Pizza2Size,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.AddBundle(r.Context(), middleware.CartSessionFromContext(r.Context()), bundle)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

type addCartComboRequest struct {
	OfferID  string `json:"offer_id" validate:"required,uuid4"`
	SizeName string `json:"size_name" validate:"required"`
}

// AddCartCombo builds a combo bundle at the requested size tier and appends
// it to the cart.
func AddCartCombo(svc *cartsvc.Service, offers *offersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || offers == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addCartComboRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		offerID, err := uuid.Parse(payload.OfferID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid offer id"))
			return
		}

		bundle, err := offers.BuildCombo(r.Context(), offersvc.ComboParams{
			OfferID:  offerID,
			SizeName: payload.SizeName,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.AddBundle(r.Context(), middleware.CartSessionFromContext(r.Context()), bundle)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

type updateCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItemQuantity sets a line's quantity; zero or below removes it.
func UpdateCartItemQuantity(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload updateCartQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.UpdateQuantity(r.Context(), middleware.CartSessionFromContext(r.Context()), chi.URLParam(r, "itemID"), payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// RemoveCartItem drops a line from the cart.
func RemoveCartItem(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		view, err := svc.RemoveItem(r.Context(), middleware.CartSessionFromContext(r.Context()), chi.URLParam(r, "itemID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

type toggleAddOnRequest struct {
	AddOn string `json:"add_on" validate:"required"`
}

// ToggleCartAddOn flips extra cheese or cheese burst on a line.
func ToggleCartAddOn(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload toggleAddOnRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.ToggleAddOn(r.Context(), middleware.CartSessionFromContext(r.Context()), chi.URLParam(r, "itemID"), payload.AddOn)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

type selectOutletRequest struct {
	OutletKey string `json:"outlet_key" validate:"required"`
}

// SelectCartOutlet records which outlet the order will go to.
func SelectCartOutlet(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload selectOutletRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.SelectOutlet(r.Context(), middleware.CartSessionFromContext(r.Context()), payload.OutletKey)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// ClearCart empties the cart but keeps the selected outlet.
func ClearCart(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		view, err := svc.Clear(r.Context(), middleware.CartSessionFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// GetCartMessage returns the rendered order message preview; empty while
// the cart has no outlet or no items.
func GetCartMessage(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		message, err := svc.Message(r.Context(), middleware.CartSessionFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": message})
	}
}

// CheckoutCart renders the order message and the wa.me link the storefront
// opens.
func CheckoutCart(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		result, err := svc.Checkout(r.Context(), middleware.CartSessionFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
