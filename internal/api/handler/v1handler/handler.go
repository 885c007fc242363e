// Package v1handler implements the v1 HTTP API on top of the session store,
// the onboarding flow, the profile editor and the tender catalog.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"govconnect/internal/onboarding"
	"govconnect/internal/profile"
	"govconnect/internal/session"
	"govconnect/internal/signal"
	"govconnect/internal/tenders"
	"govconnect/pkg/logger"
	"govconnect/pkg/serrors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// Subscriber hands out signal streams.
type Subscriber interface {
	Subscribe() (<-chan signal.Signal, func())
}

type Deps struct {
	Session    session.Manager
	Onboarding onboarding.Controller
	Profile    profile.Editor
	Tenders    tenders.Catalog
	Signals    Subscriber
}

type Handler struct {
	deps Deps
	sec  *SecHandler
}

func New(deps Deps, sec *SecHandler) *Handler {
	return &Handler{deps: deps, sec: sec}
}

// Routes registers the v1 endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	auth := h.sec.Middleware(h.deps.Session)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/signup", h.Signup)
		r.Post("/logout", h.Logout)
	})

	r.Get("/session", h.Session)
	r.With(auth).Patch("/session/user", h.UpdateUser)

	r.Route("/onboarding", func(r chi.Router) {
		r.Get("/options", h.OnboardingOptions)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/", h.OnboardingState)
			r.Put("/description", h.SetDescription)
			r.Post("/codes", h.AddIndustryCode)
			r.Post("/codes/{code}/toggle", h.ToggleIndustryCode)
			r.Delete("/codes/{code}", h.RemoveIndustryCode)
			r.Put("/value-range", h.SetValueRange)
			r.Put("/region", h.SetRegion)
			r.Post("/next", h.Next)
			r.Post("/back", h.Back)
			r.Post("/finish", h.Finish)
			r.Post("/restart", h.Restart)
		})
	})

	r.With(auth).Get("/profile", h.GetProfile)
	r.With(auth).Put("/profile", h.UpdateProfile)

	r.Route("/tenders", func(r chi.Router) {
		r.Use(auth)
		r.Get("/", h.ListTenders)
		r.Get("/export.xlsx", h.ExportTenders)
		r.Get("/{id}", h.GetTender)
		r.Post("/{id}/save", h.SaveTender)
		r.Post("/{id}/ignore", h.IgnoreTender)
		r.Delete("/{id}/mark", h.ClearTenderMark)
	})
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrInvalidCredentials:     "invalid email or password",
	serrors.ErrEmailAlreadyRegistered: "email already in use",
	serrors.ErrStepIncomplete:         "step incomplete",
	serrors.ErrBadRequest:             "bad request",
	serrors.ErrUnauthorized:           "unauthorized",
	serrors.ErrNotFound:               "resource not found",
	serrors.ErrConflict:               "conflict",
}

var statusCodes = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrInvalidCredentials:     http.StatusUnauthorized,
	serrors.ErrEmailAlreadyRegistered: http.StatusConflict,
	serrors.ErrStepIncomplete:         http.StatusUnprocessableEntity,
	serrors.ErrBadRequest:             http.StatusBadRequest,
	serrors.ErrUnauthorized:           http.StatusUnauthorized,
	serrors.ErrNotFound:               http.StatusNotFound,
	serrors.ErrConflict:               http.StatusConflict,
}

// NewError maps err to a response. Recoverable kinds keep their message;
// anything else is logged and hidden behind a generic internal error.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	status, ok := statusCodes[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorResponse{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	logger.Debug(ctx, "request rejected", zap.String("kind", kind.Error()), zap.Error(err))

	return &ErrorStatusCode{
		StatusCode: status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: serrors.MessageOf(err, defaultMessages[kind]),
		},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, res.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// decode reads a JSON body into v, rejecting unknown fields.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return serrors.With(serrors.ErrBadRequest, "request body is required")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
