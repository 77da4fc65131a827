package http

import (
	"net/http"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/service"
)

type IncassoHandler struct {
	incassos service.IncassoService
}

func NewIncassoHandler(incassos service.IncassoService) *IncassoHandler {
	return &IncassoHandler{incassos: incassos}
}

func (h *IncassoHandler) Create(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hotel id"})
		return
	}

	var req incassoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	happenedAt, err := parseTime(req.HappenedAt)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid happened_at timestamp"})
		return
	}

	incasso, err := h.incassos.Create(r.Context(), service.IncassoInput{
		HotelID:    hotelID,
		ActorID:    actorFrom(r.Context()).ActorID,
		Amount:     amount,
		Method:     domain.Account(req.Method),
		HappenedAt: happenedAt,
		Comment:    req.Comment,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, incasso)
}

func (h *IncassoHandler) List(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hotel id"})
		return
	}

	page, pageSize := pagination(r)
	incassos, total, err := h.incassos.List(r.Context(), hotelID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: incassos, Total: total, Page: page})
}
