package http

import (
	"net/http"

	"hoteldesk-backoffice/internal/service"
)

type HotelHandler struct {
	hotels service.HotelService
}

func NewHotelHandler(hotels service.HotelService) *HotelHandler {
	return &HotelHandler{hotels: hotels}
}

func (h *HotelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createHotelRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	hotel, err := h.hotels.CreateHotel(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, hotel)
}

func (h *HotelHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hotel id"})
		return
	}

	hotel, err := h.hotels.GetHotel(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

func (h *HotelHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	hotels, err := h.hotels.ListHotels(r.Context(), activeOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hotels)
}
