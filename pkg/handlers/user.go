package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"authportal/pkg/session"
	"authportal/pkg/user"
)

type RegisterForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserHandler struct {
	Service  user.ServiceInterface
	Sessions session.ManagerInterface
	Logger   *slog.Logger
}

func NewUserHandler(service user.ServiceInterface, sessions session.ManagerInterface, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		Service:  service,
		Sessions: sessions,
		Logger:   logger,
	}
}

// Register creates the account only. No session and no cookie: the client
// logs in as a separate step.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	_, err := h.Service.Register(req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, user.ErrMissingFields):
		writeError(w, http.StatusBadRequest, typeMessage, "missing required fields")
	case errors.Is(err, user.ErrEmailTaken):
		WriteResp(w, h.Logger, map[string]any{
			"errors": []FieldError{
				{
					Location: "body",
					Param:    "email",
					Value:    req.Email,
					Msg:      "already exists",
				},
			},
		}, http.StatusUnprocessableEntity)
	case err != nil:
		h.Logger.Error("register", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "internal error")
	default:
		if ok := WriteResp(w, h.Logger, map[string]any{"message": "user created"}, http.StatusCreated); ok {
			h.Logger.Info("register", "email", req.Email)
		}
	}
}

// Login authenticates and mints a session, delivered as an HttpOnly cookie.
// Unknown email and wrong password answer with one identical body.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	acc, err := h.Service.Login(req.Email, req.Password)
	switch {
	case errors.Is(err, user.ErrMissingFields):
		writeError(w, http.StatusBadRequest, typeMessage, "missing email or password")
	case errors.Is(err, user.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, typeMessage, "invalid credentials")
	case err != nil:
		h.Logger.Error("login", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "internal error")
	default:
		token, err := h.Sessions.Create(acc)
		if err != nil {
			h.Logger.Error("login", "error", err)
			writeError(w, http.StatusInternalServerError, typeError, "internal error")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(session.TTL),
			HttpOnly: true,
		})

		if ok := WriteResp(w, h.Logger, map[string]any{
			"message": "login successful",
			"user":    acc,
		}, http.StatusOK); ok {
			h.Logger.Info("login", "user", acc.ID)
		}
	}
}

// Logout clears the client cookie unconditionally, then destroys the
// server-side session. A failed destroy still leaves the client logged out.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(session.CookieName)

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	if err != nil {
		WriteResp(w, h.Logger, map[string]any{"message": "logout successful"}, http.StatusOK)
		return
	}

	if err := h.Sessions.Destroy(cookie.Value); err != nil {
		h.Logger.Error("logout", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "error logging out")
		return
	}

	WriteResp(w, h.Logger, map[string]any{"message": "logout successful"}, http.StatusOK)
}
