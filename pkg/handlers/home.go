package handlers

import (
	"net/http"

	"authportal/pkg/identity"
)

// Home is the protected resource. It trusts the identity the access gate put
// into the context and does no auth check of its own.
func (h *UserHandler) Home(w http.ResponseWriter, r *http.Request) {
	var ident identity.Identity
	if ok := getIdentityFromContext(w, r, &ident); !ok {
		return
	}

	WriteResp(w, h.Logger, map[string]any{
		"message": "welcome " + ident.Username,
		"user":    ident,
	}, http.StatusOK)
}
