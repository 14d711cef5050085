package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/crustcraft/crustcraft-backend/api/responses"
	"github.com/crustcraft/crustcraft-backend/api/validators"
	offersvc "github.com/crustcraft/crustcraft-backend/internal/offers"
	"github.com/crustcraft/crustcraft-backend/pkg/db/models"
	"github.com/crustcraft/crustcraft-backend/pkg/enums"
	pkgerrors "github.com/crustcraft/crustcraft-backend/pkg/errors"
	"github.com/crustcraft/crustcraft-backend/pkg/logger"
)

// ListOffers returns the active offers with derived savings.
func ListOffers(svc *offersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "offer service unavailable"))
			return
		}

		offers, err := svc.ListActive(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, offers)
	}
}

// AdminListOffers returns every offer for the admin panel.
func AdminListOffers(svc *offersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "offer service unavailable"))
			return
		}

		offers, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, offers)
	}
}

type offerTierRequest struct {
	SizeName            string `json:"size_name" validate:"required"`
	PriceRupees         int    `json:"price_rupees" validate:"required,min=1"`
	OriginalPriceRupees int    `json:"original_price_rupees" validate:"required,min=1"`
}

type offerItemRequest struct {
	Name     string `json:"name" validate:"required"`
	SizeName string `json:"size_name,omitempty"`
	Qty      int    `json:"qty" validate:"required,min=1"`
}

type createOfferRequest struct {
	Kind         string             `json:"kind" validate:"required,oneof=bogo combo"`
	Title        string             `json:"title" validate:"required"`
	Description  *string            `json:"description,omitempty"`
	CategorySlug string             `json:"category_slug" validate:"required"`
	Tiers        []offerTierRequest `json:"tiers" validate:"required,min=1,dive"`
	Items        []offerItemRequest `json:"items,omitempty" validate:"omitempty,dive"`
}

// AdminCreateOffer adds a BOGO or combo offer.
func AdminCreateOffer(svc *offersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "offer service unavailable"))
			return
		}

		var payload createOfferRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		offer, err := svc.Create(r.Context(), offersvc.CreateParams{
			Kind:         enums.OfferKind(payload.Kind),
			Title:        validators.SanitizeString(payload.Title, 160),
			Description:  payload.Description,
			CategorySlug: payload.CategorySlug,
			Tiers:        toTierParams(payload.Tiers),
			Items:        toOfferItems(payload.Items),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, offer)
	}
}

type updateOfferRequest struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	IsActive    *bool              `json:"is_active,omitempty"`
	Tiers       []offerTierRequest `json:"tiers,omitempty" validate:"omitempty,min=1,dive"`
	Items       []offerItemRequest `json:"items,omitempty" validate:"omitempty,dive"`
}

// AdminUpdateOffer edits an offer.
func AdminUpdateOffer(svc *offersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "offer service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid offer id"))
			return
		}

		var payload updateOfferRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := offersvc.UpdateParams{
			Title:       payload.Title,
			Description: payload.Description,
			IsActive:    payload.IsActive,
		}
		if payload.Tiers != nil {
			params.Tiers = toTierParams(payload.Tiers)
		}
		if payload.Items != nil {
			params.Items = toOfferItems(payload.Items)
		}

		offer, err := svc.Update(r.Context(), id, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, offer)
	}
}

// AdminDeleteOffer removes an offer and its tiers.
func AdminDeleteOffer(svc *offersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "offer service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid offer id"))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func toTierParams(tiers []offerTierRequest) []offersvc.TierParams {
	out := make([]offersvc.TierParams, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, offersvc.TierParams{
			SizeName:            t.SizeName,
			PriceRupees:         t.PriceRupees,
			OriginalPriceRupees: t.OriginalPriceRupees,
		})
	}
	return out
}

func toOfferItems(items []offerItemRequest) []models.OfferItemRef {
	if items == nil {
		return nil
	}
	out := make([]models.OfferItemRef, 0, len(items))
	for _, i := range items {
		out = append(out, models.OfferItemRef{Name: i.Name, SizeName: i.SizeName, Qty: i.Qty})
	}
	return out
}
