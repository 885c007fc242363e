package v1handler

import (
	"govconnect/internal/onboarding"
	"govconnect/pkg/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type DescriptionRequest struct {
	Description string `json:"description"`
}

type CodeRequest struct {
	Code string `json:"code"`
}

type RegionRequest struct {
	Region string `json:"region"`
}

// OptionsResponse lists the choices offered by the wizard.
type OptionsResponse struct {
	IndustryCodes []domain.IndustryCode `json:"industryCodes"`
	Regions       []domain.Region       `json:"regions"`
	ValueMin      int64                 `json:"valueMin"`
	ValueMax      int64                 `json:"valueMax"`
	ValueStep     int64                 `json:"valueStep"`
	DefaultRange  domain.ValueRange     `json:"defaultRange"`
	Currency      string                `json:"currency"`
}

// StateResponse carries the flow state, plus the error when a step was refused.
type StateResponse struct {
	onboarding.State

	Error *ErrorResponse `json:"error,omitempty"`
}

func (h *Handler) OnboardingOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, OptionsResponse{
		IndustryCodes: domain.SuggestedIndustryCodes,
		Regions:       domain.Regions(),
		ValueMin:      domain.MinContractValue,
		ValueMax:      domain.MaxContractValue,
		ValueStep:     domain.ContractValueStep,
		DefaultRange:  domain.DefaultValueRange,
		Currency:      domain.CurrencyCode(),
	})
}

func (h *Handler) OnboardingState(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, StateResponse{State: h.deps.Onboarding.State(r.Context())})
}

func (h *Handler) SetDescription(w http.ResponseWriter, r *http.Request) {
	var req DescriptionRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeState(w, r)(h.deps.Onboarding.SetDescription(r.Context(), req.Description))
}

func (h *Handler) AddIndustryCode(w http.ResponseWriter, r *http.Request) {
	var req CodeRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeState(w, r)(h.deps.Onboarding.AddIndustryCode(r.Context(), req.Code))
}

func (h *Handler) ToggleIndustryCode(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, r)(h.deps.Onboarding.ToggleIndustryCode(r.Context(), chi.URLParam(r, "code")))
}

func (h *Handler) RemoveIndustryCode(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, r)(h.deps.Onboarding.RemoveIndustryCode(r.Context(), chi.URLParam(r, "code")))
}

func (h *Handler) SetValueRange(w http.ResponseWriter, r *http.Request) {
	var req domain.ValueRange
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeState(w, r)(h.deps.Onboarding.SetValueRange(r.Context(), req))
}

func (h *Handler) SetRegion(w http.ResponseWriter, r *http.Request) {
	var req RegionRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeState(w, r)(h.deps.Onboarding.SetRegion(r.Context(), req.Region))
}

func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, r)(h.deps.Onboarding.Next(r.Context()))
}

func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, r)(h.deps.Onboarding.Back(r.Context()))
}

func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, StateResponse{State: h.deps.Onboarding.Restart(r.Context())})
}

func (h *Handler) Finish(w http.ResponseWriter, r *http.Request) {
	saved, err := h.deps.Onboarding.Finish(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, saved)
}

// writeState answers with the flow state. A refused action keeps the error
// status and carries the unchanged state next to the error.
func (h *Handler) writeState(w http.ResponseWriter, r *http.Request) func(onboarding.State, error) {
	return func(state onboarding.State, err error) {
		if err != nil {
			res := h.NewError(r.Context(), err)
			writeJSON(r.Context(), w, res.StatusCode, StateResponse{State: state, Error: &res.Response})

			return
		}

		writeJSON(r.Context(), w, http.StatusOK, StateResponse{State: state})
	}
}
