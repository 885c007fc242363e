package v1handler

import (
	"govconnect/internal/signal"
	"govconnect/pkg/domain"
	"net/http"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and signup.
type AuthResponse struct {
	User  domain.User  `json:"user"`
	Token string       `json:"token"`
	Route signal.Route `json:"route"`
}

// UpdateUserRequest only exposes the fields a user may change directly.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.deps.Session.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeAuth(w, r, user)
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.deps.Session.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeAuth(w, r, user)
}

func (h *Handler) writeAuth(w http.ResponseWriter, r *http.Request, user domain.User) {
	token, err := h.sec.Issue(user.ID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, AuthResponse{
		User:  user,
		Token: token,
		Route: h.deps.Session.State().Route(),
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Session.Logout(r.Context()); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Session reports the session and the route the presentation layer belongs on.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, h.deps.Session.Snapshot())
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.deps.Session.UpdateUser(r.Context(), domain.UserUpdate{Name: req.Name, Email: req.Email})
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if user == nil {
		w.WriteHeader(http.StatusNoContent)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, user)
}
