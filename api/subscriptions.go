package api

import (
	"errors"
	"net/http"

	"github.com/herald-dev/herald"
	"github.com/herald-dev/herald/dispatch"
	"github.com/herald-dev/herald/id"
	"github.com/herald-dev/herald/subscription"
)

type createSubscriptionRequest struct {
	URL         string            `json:"url"`
	Events      []string          `json:"events"`
	Active      bool              `json:"active"`
	Description string            `json:"description,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	RateLimit   int               `json:"rate_limit,omitempty"`
}

func (h *Handler) createSubscription(w http.ResponseWriter, r *http.Request) {
	var req createSubscriptionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := subscription.Input{
		URL:         req.URL,
		Events:      req.Events,
		Active:      req.Active,
		Description: req.Description,
		Headers:     req.Headers,
		RateLimit:   req.RateLimit,
	}

	sub, err := h.herald.Subscriptions().Create(r.Context(), input)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The secret is only revealed once, at creation time.
	writeJSON(w, http.StatusCreated, map[string]any{
		"subscription": sub,
		"secret":       sub.Secret,
	})
}

func (h *Handler) listSubscriptions(w http.ResponseWriter, r *http.Request) {
	opts := subscription.ListOpts{
		Offset: queryInt(r, "offset", 0),
		Limit:  queryInt(r, "limit", 50),
	}
	switch r.URL.Query().Get("active") {
	case "true":
		active := true
		opts.Active = &active
	case "false":
		active := false
		opts.Active = &active
	}

	subs, err := h.herald.Subscriptions().List(r.Context(), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, subs)
}

func (h *Handler) getSubscription(w http.ResponseWriter, r *http.Request) {
	subID, err := id.ParseSubscriptionID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subscription ID")
		return
	}

	sub, getErr := h.herald.Subscriptions().Get(r.Context(), subID)
	if getErr != nil {
		if errors.Is(getErr, herald.ErrSubscriptionNotFound) {
			writeError(w, http.StatusNotFound, "subscription not found")
			return
		}
		writeError(w, http.StatusInternalServerError, getErr.Error())
		return
	}

	writeJSON(w, http.StatusOK, sub)
}

func (h *Handler) updateSubscription(w http.ResponseWriter, r *http.Request) {
	subID, err := id.ParseSubscriptionID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subscription ID")
		return
	}

	var req createSubscriptionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := subscription.Input{
		URL:         req.URL,
		Events:      req.Events,
		Active:      req.Active,
		Description: req.Description,
		Headers:     req.Headers,
		RateLimit:   req.RateLimit,
	}

	sub, updateErr := h.herald.Subscriptions().Update(r.Context(), subID, input)
	if updateErr != nil {
		if errors.Is(updateErr, herald.ErrSubscriptionNotFound) {
			writeError(w, http.StatusNotFound, "subscription not found")
			return
		}
		writeError(w, http.StatusInternalServerError, updateErr.Error())
		return
	}

	writeJSON(w, http.StatusOK, sub)
}

func (h *Handler) deleteSubscription(w http.ResponseWriter, r *http.Request) {
	subID, err := id.ParseSubscriptionID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subscription ID")
		return
	}

	if deleteErr := h.herald.Subscriptions().Delete(r.Context(), subID); deleteErr != nil {
		if errors.Is(deleteErr, herald.ErrSubscriptionNotFound) {
			writeError(w, http.StatusNotFound, "subscription not found")
			return
		}
		writeError(w, http.StatusInternalServerError, deleteErr.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) enableSubscription(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

func (h *Handler) disableSubscription(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *Handler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	subID, err := id.ParseSubscriptionID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subscription ID")
		return
	}

	if setErr := h.herald.Subscriptions().SetActive(r.Context(), subID, active); setErr != nil {
		if errors.Is(setErr, herald.ErrSubscriptionNotFound) {
			writeError(w, http.StatusNotFound, "subscription not found")
			return
		}
		writeError(w, http.StatusInternalServerError, setErr.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) rotateSecret(w http.ResponseWriter, r *http.Request) {
	subID, err := id.ParseSubscriptionID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subscription ID")
		return
	}

	newSecret, rotateErr := h.herald.Subscriptions().RotateSecret(r.Context(), subID)
	if rotateErr != nil {
		if errors.Is(rotateErr, herald.ErrSubscriptionNotFound) {
			writeError(w, http.StatusNotFound, "subscription not found")
			return
		}
		writeError(w, http.StatusInternalServerError, rotateErr.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"secret": newSecret})
}

func (h *Handler) sendTestMessage(w http.ResponseWriter, r *http.Request) {
	subID, err := id.ParseSubscriptionID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subscription ID")
		return
	}

	if sendErr := h.herald.SendTestMessage(r.Context(), subID); sendErr != nil {
		switch {
		case errors.Is(sendErr, herald.ErrSubscriptionNotFound):
			writeError(w, http.StatusNotFound, "subscription not found")
		case errors.Is(sendErr, herald.ErrSubscriptionInactive):
			writeError(w, http.StatusConflict, "subscription is inactive")
		default:
			var delErr *dispatch.DeliveryError
			if errors.As(sendErr, &delErr) {
				writeJSON(w, http.StatusBadGateway, map[string]any{
					"error":       "test delivery failed",
					"status_code": delErr.StatusCode,
					"detail":      delErr.Error(),
				})
				return
			}
			writeError(w, http.StatusInternalServerError, sendErr.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": "delivered"})
}
