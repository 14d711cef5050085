package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/crustcraft/crustcraft-backend/api/responses"
	"github.com/crustcraft/crustcraft-backend/api/validators"
	menusvc "github.com/crustcraft/crustcraft-backend/internal/menu"
	pkgerrors "github.com/crustcraft/crustcraft-backend/pkg/errors"
	"github.com/crustcraft/crustcraft-backend/pkg/logger"
)

// ListMenu returns the active menu, optionally filtered with ?category=.
func ListMenu(svc *menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "menu service unavailable"))
			return
		}

		items, err := svc.List(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// FeaturedMenu returns the items highlighted on the landing page.
func FeaturedMenu(svc *menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "menu service unavailable"))
			return
		}

		items, err := svc.Featured(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// AdminListMenu returns every menu item for the admin catalog.
func AdminListMenu(svc *menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "menu service unavailable"))
			return
		}

		items, err := svc.ListAll(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

type menuSizeRequest struct {
	SizeName    string `json:"size_name" validate:"required"`
	PriceRupees int    `json:"price_rupees" validate:"required,min=1"`
}

type createMenuItemRequest struct {
	CategorySlug string            `json:"category_slug" validate:"required"`
	Name         string            `json:"name" validate:"required"`
	Description  *string           `json:"description,omitempty"`
	Toppings     []string          `json:"toppings,omitempty"`
	IsVeg        bool              `json:"is_veg"`
	IsFeatured   bool              `json:"is_featured"`
	ImageURL     *string           `json:"image_url,omitempty"`
	Sizes        []menuSizeRequest `json:"sizes" validate:"required,min=1,dive"`
}

// AdminCreateMenuItem adds a product to the catalog.
func AdminCreateMenuItem(svc *menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "menu service unavailable"))
			return
		}

		var payload createMenuItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Create(r.Context(), menusvc.CreateParams{
			CategorySlug: payload.CategorySlug,
			Name:         validators.SanitizeString(payload.Name, 160),
			Description:  payload.Description,
			Toppings:     payload.Toppings,
			IsVeg:        payload.IsVeg,
			IsFeatured:   payload.IsFeatured,
			ImageURL:     payload.ImageURL,
			Sizes:        toSizeParams(payload.Sizes),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

type updateMenuItemRequest struct {
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	Toppings    []string          `json:"toppings,omitempty"`
	IsVeg       *bool             `json:"is_veg,omitempty"`
	IsActive    *bool             `json:"is_active,omitempty"`
	IsFeatured  *bool             `json:"is_featured,omitempty"`
	ImageURL    *string           `json:"image_url,omitempty"`
	Sizes       []menuSizeRequest `json:"sizes,omitempty" validate:"omitempty,min=1,dive"`
}

// AdminUpdateMenuItem edits a product.
func AdminUpdateMenuItem(svc *menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "menu service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid menu item id"))
			return
		}

		var payload updateMenuItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := menusvc.UpdateParams{
			Name:        payload.Name,
			Description: payload.Description,
			Toppings:    payload.Toppings,
			IsVeg:       payload.IsVeg,
			IsActive:    payload.IsActive,
			IsFeatured:  payload.IsFeatured,
			ImageURL:    payload.ImageURL,
		}
		if payload.Sizes != nil {
			params.Sizes = toSizeParams(payload.Sizes)
		}

		item, err := svc.Update(r.Context(), id, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// AdminDeleteMenuItem removes a product and its size tiers.
func AdminDeleteMenuItem(svc *menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "menu service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid menu item id"))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func toSizeParams(sizes []menuSizeRequest) []menusvc.SizeParams {
	out := make([]menusvc.SizeParams, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, menusvc.SizeParams{SizeName: s.SizeName, PriceRupees: s.PriceRupees})
	}
	return out
}
