package http

import (
	"net/http"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/service"
)

type LedgerHandler struct {
	ledger service.LedgerService
}

func NewLedgerHandler(ledger service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

func (h *LedgerHandler) GetRegister(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hotel id"})
		return
	}

	snapshot, err := h.ledger.GetSnapshot(r.Context(), hotelID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (h *LedgerHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hotel id"})
		return
	}

	page, pageSize := pagination(r)
	movements, total, err := h.ledger.ListMovements(r.Context(), hotelID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: movements, Total: total, Page: page})
}

func (h *LedgerHandler) CreateMovement(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hotel id"})
		return
	}

	var req movementRequest
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

	movement, err := h.ledger.ApplyMovement(r.Context(), service.MovementInput{
		HotelID:    hotelID,
		ActorID:    actorFrom(r.Context()).ActorID,
		Account:    domain.Account(req.Account),
		Direction:  domain.Direction(req.Direction),
		Amount:     amount,
		HappenedAt: happenedAt,
		Comment:    req.Comment,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, movement)
}

func (h *LedgerHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hotel id"})
		return
	}

	var req transferRequest
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

	transfer, err := h.ledger.Transfer(r.Context(), service.TransferInput{
		HotelID:     hotelID,
		ActorID:     actorFrom(r.Context()).ActorID,
		FromAccount: domain.Account(req.FromAccount),
		ToAccount:   domain.Account(req.ToAccount),
		Amount:      amount,
		HappenedAt:  happenedAt,
		Comment:     req.Comment,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, transfer)
}

func (h *LedgerHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hotel id"})
		return
	}

	page, pageSize := pagination(r)
	transfers, total, err := h.ledger.ListTransfers(r.Context(), hotelID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: transfers, Total: total, Page: page})
}

func (h *LedgerHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hotel id"})
		return
	}

	mismatches, err := h.ledger.Reconcile(r.Context(), hotelID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"hotel_id":   hotelID,
		"in_sync":    len(mismatches) == 0,
		"mismatches": mismatches,
	})
}
