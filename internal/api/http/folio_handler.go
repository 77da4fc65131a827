package http

import (
	"net/http"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/service"
)

type FolioHandler struct {
	folios service.FolioService
}

func NewFolioHandler(folios service.FolioService) *FolioHandler {
	return &FolioHandler{folios: folios}
}

func (h *FolioHandler) AddPayment(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hotel id"})
		return
	}

	var req folioPaymentRequest
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

	item, err := h.folios.AddPayment(r.Context(), service.FolioPaymentInput{
		HotelID:    hotelID,
		ActorID:    actorFrom(r.Context()).ActorID,
		CompanyID:  req.CompanyID,
		Amount:     amount,
		Method:     domain.Account(req.Method),
		HappenedAt: happenedAt,
		ArticleID:  req.ArticleID,
		Comment:    req.Comment,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *FolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid folio id"})
		return
	}

	folio, items, balance, err := h.folios.GetFolio(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"folio":   folio,
		"items":   items,
		"balance": balance,
	})
}

func (h *FolioHandler) List(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hotel id"})
		return
	}

	openOnly := r.URL.Query().Get("open") == "true"
	folios, err := h.folios.ListFolios(r.Context(), hotelID, openOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, folios)
}
