package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"authportal/pkg/enquiry"
)

type EnquiryForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type EnquiryHandler struct {
	Service enquiry.ServiceInterface
	Logger  *slog.Logger
}

func NewEnquiryHandler(service enquiry.ServiceInterface, logger *slog.Logger) *EnquiryHandler {
	return &EnquiryHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *EnquiryHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req EnquiryForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	err := h.Service.Submit(req.Name, req.Email, req.Message)
	switch {
	case errors.Is(err, enquiry.ErrMissingFields):
		writeError(w, http.StatusBadRequest, typeMessage, "all fields are required")
	case err != nil:
		h.Logger.Error("enquiry", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "error sending enquiry")
	default:
		if ok := WriteResp(w, h.Logger, map[string]any{"message": "enquiry sent successfully"}, http.StatusOK); ok {
			h.Logger.Info("enquiry relayed", "from", req.Email)
		}
	}
}
