package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/crustcraft/crustcraft-backend/api/responses"
	"github.com/crustcraft/crustcraft-backend/api/validators"
	outletssvc "github.com/crustcraft/crustcraft-backend/internal/outlets"
	pkgerrors "github.com/crustcraft/crustcraft-backend/pkg/errors"
	"github.com/crustcraft/crustcraft-backend/pkg/logger"
	"github.com/crustcraft/crustcraft-backend/pkg/types"
)

// ListOutlets returns the active outlets customers can order from.
func ListOutlets(svc *outletssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "outlet service unavailable"))
			return
		}

		outlets, err := svc.ListActive(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, outlets)
	}
}

// AdminListOutlets returns every outlet, including deactivated ones.
func AdminListOutlets(svc *outletssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "outlet service unavailable"))
			return
		}

		outlets, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, outlets)
	}
}

type outletAddressRequest struct {
	Line1      string  `json:"line1" validate:"required"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city" validate:"required"`
	State      string  `json:"state" validate:"required"`
	PostalCode string  `json:"postal_code" validate:"required"`
	Country    string  `json:"country" validate:"required"`
	Lat        float64 `json:"lat,omitempty"`
	Lng        float64 `json:"lng,omitempty"`
}

type createOutletRequest struct {
	Key     string               `json:"key" validate:"required"`
	Name    string               `json:"name" validate:"required"`
	Phone   string               `json:"phone" validate:"required"`
	Address outletAddressRequest `json:"address" validate:"required"`
}

// AdminCreateOutlet adds an outlet to the directory.
func AdminCreateOutlet(svc *outletssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "outlet service unavailable"))
			return
		}

		var payload createOutletRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		outlet, err := svc.Create(r.Context(), outletssvc.CreateParams{
			Key:     payload.Key,
			Name:    validators.SanitizeString(payload.Name, 160),
			Phone:   payload.Phone,
			Address: toAddress(payload.Address),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, outlet)
	}
}

type updateOutletRequest struct {
	Name     *string               `json:"name,omitempty"`
	Phone    *string               `json:"phone,omitempty"`
	Address  *outletAddressRequest `json:"address,omitempty"`
	IsActive *bool                 `json:"is_active,omitempty"`
}

// AdminUpdateOutlet edits an outlet or toggles its availability.
func AdminUpdateOutlet(svc *outletssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "outlet service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid outlet id"))
			return
		}

		var payload updateOutletRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := outletssvc.UpdateParams{
			Name:     payload.Name,
			Phone:    payload.Phone,
			IsActive: payload.IsActive,
		}
		if payload.Address != nil {
			addr := toAddress(*payload.Address)
			params.Address = &addr
		}

		outlet, err := svc.Update(r.Context(), id, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, outlet)
	}
}

func toAddress(a outletAddressRequest) types.Address {
	return types.Address{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Lat:        a.Lat,
		Lng:        a.Lng,
	}
}
