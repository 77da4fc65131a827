package http

import (
	"net/http"
	"time"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/repository"
	"hoteldesk-backoffice/internal/service"
)

type OperationHandler struct {
	operations service.OperationService
}

func NewOperationHandler(operations service.OperationService) *OperationHandler {
	return &OperationHandler{operations: operations}
}

func (h *OperationHandler) Record(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hotel id"})
		return
	}

	var req recordOperationRequest
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

	op, movement, err := h.operations.Record(r.Context(), service.RecordOperationInput{
		HotelID:         hotelID,
		ActorID:         actorFrom(r.Context()).ActorID,
		ArticleID:       req.ArticleID,
		Amount:          amount,
		Method:          domain.Account(req.Method),
		HappenedAt:      happenedAt,
		Counterparty:    req.Counterparty,
		Comment:         req.Comment,
		BookkeepingOnly: req.BookkeepingOnly,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"operation": op,
		"movement":  movement,
	})
}

func (h *OperationHandler) Void(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid operation id"})
		return
	}

	var req voidOperationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	op, err := h.operations.Void(r.Context(), id, actorFrom(r.Context()).ActorID, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, op)
}

func (h *OperationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid operation id"})
		return
	}

	op, movement, err := h.operations.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"operation": op,
		"movement":  movement,
	})
}

func (h *OperationHandler) List(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hotel id"})
		return
	}

	q := r.URL.Query()
	page, pageSize := pagination(r)
	filter := repository.OperationFilter{
		HotelID:        hotelID,
		Kind:           domain.Kind(q.Get("kind")),
		IncludeVoided:  q.Get("include_voided") == "true",
		ExcludeIncasso: q.Get("exclude_incasso") == "true",
		Page:           page,
		PageSize:       pageSize,
	}
	if v := q.Get("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid from timestamp"})
			return
		}
		filter.From = &from
	}
	if v := q.Get("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid to timestamp"})
			return
		}
		filter.To = &to
	}

	ops, total, err := h.operations.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: ops, Total: total, Page: page})
}

func (h *OperationHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	kind := domain.Kind(r.URL.Query().Get("kind"))
	articles, err := h.operations.ListArticles(r.Context(), kind)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}
