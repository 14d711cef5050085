package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/crustcraft/crustcraft-backend/api/responses"
	"github.com/crustcraft/crustcraft-backend/api/validators"
	franchisesvc "github.com/crustcraft/crustcraft-backend/internal/franchise"
	"github.com/crustcraft/crustcraft-backend/pkg/enums"
	pkgerrors "github.com/crustcraft/crustcraft-backend/pkg/errors"
	"github.com/crustcraft/crustcraft-backend/pkg/logger"
)

type submitFranchiseRequest struct {
	FullName        string  `json:"full_name" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           string  `json:"phone" validate:"required"`
	City            string  `json:"city" validate:"required"`
	InvestmentRange *string `json:"investment_range,omitempty"`
	Message         *string `json:"message,omitempty" validate:"omitempty,max=2000"`
}

// SubmitFranchise accepts a public franchise enquiry.
func SubmitFranchise(svc *franchisesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "franchise service unavailable"))
			return
		}

		var payload submitFranchiseRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := franchisesvc.SubmitParams{
			FullName:        validators.SanitizeString(payload.FullName, 160),
			Email:           payload.Email,
			Phone:           payload.Phone,
			City:            validators.SanitizeString(payload.City, 120),
			InvestmentRange: payload.InvestmentRange,
		}
		if payload.Message != nil {
			msg := validators.SanitizeString(*payload.Message, 2000)
			params.Message = &msg
		}

		application, err := svc.Submit(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, application)
	}
}

// AdminListFranchise returns applications, optionally filtered with ?status=
// and capped with ?limit=.
func AdminListFranchise(svc *franchisesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "franchise service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 100, 1, 500)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		applications, err := svc.List(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if len(applications) > limit {
			applications = applications[:limit]
		}
		responses.WriteSuccess(w, applications)
	}
}

type updateFranchiseStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted approved rejected"`
}

// AdminUpdateFranchiseStatus moves an application through the pipeline.
func AdminUpdateFranchiseStatus(svc *franchisesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "franchise service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid application id"))
			return
		}

		var payload updateFranchiseStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		application, err := svc.UpdateStatus(r.Context(), id, enums.FranchiseStatus(payload.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, application)
	}
}
