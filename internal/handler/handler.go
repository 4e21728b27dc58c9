package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dan9191/credit-simulator/internal/middleware"
	"github.com/Dan9191/credit-simulator/internal/models"
	"github.com/Dan9191/credit-simulator/internal/service"
	"github.com/sirupsen/logrus"
)

const invalidBodyMessage = "Requisição inválida: verifique os dados enviados."

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Health reports that the process is serving requests
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Categories lists the rate table
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.log.WithError(err).Error("Failed to list categories")
		writeError(w, http.StatusInternalServerError, service.UserMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// Simulate handles a credit simulation
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req models.SimulationRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.svc.Simulate(r.Context(), req)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// RemainingPayments handles the payment count solve
func (h *Handler) RemainingPayments(w http.ResponseWriter, r *http.Request) {
	var req models.RemainingPaymentsRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.svc.RemainingPayments(r.Context(), req)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ReferenceRate returns the cached BCB reference rate
func (h *Handler) ReferenceRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.svc.ReferenceRate(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

// Login handles operator authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// SendSummary simulates and e-mails the summary. Requires an operator token.
func (h *Handler) SendSummary(w http.ResponseWriter, r *http.Request) {
	var req models.SummaryEmailRequest
	if !h.decode(w, r, &req) {
		return
	}
	operator, _ := middleware.Operator(r.Context())
	resp, err := h.svc.SendSummary(r.Context(), req)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.log.WithFields(logrus.Fields{"operator": operator, "to": req.To}).Info("Simulation summary sent")
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, invalidBodyMessage)
		return false
	}
	return true
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.WithError(err).Error("Request failed")
	}
	writeError(w, status, service.UserMessage(err))
}

func statusFor(err error) int {
	switch {
	case service.IsValidationError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrMailerDisabled), errors.Is(err, service.ErrNoRateSource):
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
