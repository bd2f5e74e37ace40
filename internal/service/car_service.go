package service

import (
	"context"
	"errors"

	"github.com/dealership-api/internal/domain"
	"github.com/dealership-api/internal/dto"
	"github.com/dealership-api/internal/repository"
)

// CarService определяет бизнес-логику для автомобилей
type CarService interface {
	List(ctx context.Context) ([]dto.CarResponse, error)
	Get(ctx context.Context, id int64) (*dto.CarResponse, error)
	Create(ctx context.Context, req *dto.CarRequest) (*dto.ServiceResponse, error)
	Update(ctx context.Context, id int64, req *dto.CarRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id int64) (*dto.ServiceResponse, error)
}

type carService struct {
	carRepo repository.CarRepository
}

// NewCarService создаёт новый экземпляр сервиса
func NewCarService(carRepo repository.CarRepository) CarService {
	return &carService{carRepo: carRepo}
}

func (s *carService) List(ctx context.Context) ([]dto.CarResponse, error) {
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toCarResponses(cars), nil
}

func (s *carService) Get(ctx context.Context, id int64) (*dto.CarResponse, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toCarResponse(car)
	return &resp, nil
}

// Create вставляет автомобиль с полями запроса как есть, включая
// переданное имя владельца. Существование владельца не проверяется,
// некорректный owner_id отсекает внешний ключ
func (s *carService) Create(ctx context.Context, req *dto.CarRequest) (*dto.ServiceResponse, error) {
	car := &domain.Car{
		Make:      req.Make,
		Model:     req.Model,
		Year:      req.Year,
		OwnerID:   req.OwnerID,
		OwnerName: req.OwnerName,
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}

	return dto.Created(car.CarID), nil
}

func (s *carService) Update(ctx context.Context, id int64, req *dto.CarRequest) (*dto.ServiceResponse, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCarNotFound) {
			return dto.NotFound("Car not found."), nil
		}
		return nil, err
	}

	car.Make = req.Make
	car.Model = req.Model
	car.Year = req.Year
	car.OwnerID = req.OwnerID
	car.OwnerName = req.OwnerName
	car.Owner = nil

	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}

	return dto.Updated(), nil
}

func (s *carService) Delete(ctx context.Context, id int64) (*dto.ServiceResponse, error) {
	if err := s.carRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrCarNotFound) {
			return dto.NotFound("Car not found."), nil
		}
		return nil, err
	}
	return dto.Deleted(), nil
}
