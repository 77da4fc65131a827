package http

import (
	"net/http"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/service"
)

type StayHandler struct {
	stays service.StayService
}

func NewStayHandler(stays service.StayService) *StayHandler {
	return &StayHandler{stays: stays}
}

func (h *StayHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hotel id"})
		return
	}

	var req checkInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	total, err := parseAmount(req.TotalToPay)
	if err != nil {
		writeError(w, err)
		return
	}
	checkIn, err := parseTime(req.CheckIn)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid check_in timestamp"})
		return
	}
	checkOut, err := parseTime(req.CheckOut)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid check_out timestamp"})
		return
	}

	stayType := domain.StayType(req.StayType)
	if stayType == "" {
		stayType = domain.StayTypeWalkIn
	}

	stay, err := h.stays.CheckIn(r.Context(), service.CheckInInput{
		HotelID:    hotelID,
		ActorID:    actorFrom(r.Context()).ActorID,
		RoomLabel:  req.RoomLabel,
		GuestName:  req.GuestName,
		CompanyID:  req.CompanyID,
		StayType:   stayType,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalToPay: total,
		Method:     domain.Account(req.Method),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, stay)
}

func (h *StayHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid stay id"})
		return
	}

	stay, err := h.stays.CheckOut(r.Context(), id, actorFrom(r.Context()).ActorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stay)
}

func (h *StayHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid stay id"})
		return
	}

	var req cancelStayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	stay, err := h.stays.Cancel(r.Context(), id, actorFrom(r.Context()).ActorID, req.NoShow)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stay)
}

func (h *StayHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid stay id"})
		return
	}

	stay, err := h.stays.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stay)
}

func (h *StayHandler) List(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hotel id"})
		return
	}

	page, pageSize := pagination(r)
	status := domain.StayStatus(r.URL.Query().Get("status"))
	stays, total, err := h.stays.List(r.Context(), hotelID, status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: stays, Total: total, Page: page})
}
