package service

import (
	"context"
	"fmt"
	"strings"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/logger"
	"hoteldesk-backoffice/internal/repository"
)

type hotelService struct {
	hotelRepo repository.HotelRepository
}

func NewHotelService(hotelRepo repository.HotelRepository) HotelService {
	return &hotelService{hotelRepo: hotelRepo}
}

func (s *hotelService) CreateHotel(ctx context.Context, name string) (*domain.Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("hotel name is required")
	}

	// The register is created together with the hotel, so no first payment
	// ever races a missing register row.
	hotel := &domain.Hotel{Name: name, IsActive: true}
	if err := s.hotelRepo.Create(ctx, hotel); err != nil {
		return nil, err
	}

	logger.Info("hotel created", "hotel_id", hotel.ID, "name", hotel.Name)
	return hotel, nil
}

func (s *hotelService) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	return s.hotelRepo.GetByID(ctx, id)
}

func (s *hotelService) ListHotels(ctx context.Context, activeOnly bool) ([]domain.Hotel, error) {
	return s.hotelRepo.List(ctx, activeOnly)
}
