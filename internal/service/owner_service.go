package service

import (
	"context"
	"errors"

	"github.com/dealership-api/internal/domain"
	"github.com/dealership-api/internal/dto"
	"github.com/dealership-api/internal/repository"
)

// OwnerService определяет бизнес-логику для владельцев
type OwnerService interface {
	List(ctx context.Context) ([]dto.OwnerResponse, error)
	Find(ctx context.Context, id int64) (*dto.OwnerResponse, error)
	Create(ctx context.Context, req *dto.OwnerRequest) (*dto.ServiceResponse, error)
	Update(ctx context.Context, id int64, req *dto.OwnerRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id int64) (*dto.ServiceResponse, error)
}

type ownerService struct {
	ownerRepo repository.OwnerRepository
	carRepo   repository.CarRepository
}

// NewOwnerService создаёт новый экземпляр сервиса
func NewOwnerService(ownerRepo repository.OwnerRepository, carRepo repository.CarRepository) OwnerService {
	return &ownerService{
		ownerRepo: ownerRepo,
		carRepo:   carRepo,
	}
}

func (s *ownerService) List(ctx context.Context) ([]dto.OwnerResponse, error) {
	owners, err := s.ownerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.OwnerResponse, len(owners))
	for i := range owners {
		result[i] = toOwnerResponse(&owners[i])
	}
	return result, nil
}

// Find возвращает только скалярные поля владельца, без списка
// автомобилей: страницы запрашивают автомобили отдельно
func (s *ownerService) Find(ctx context.Context, id int64) (*dto.OwnerResponse, error) {
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toOwnerResponse(owner)
	return &resp, nil
}

// Create создаёт владельца и переводит на него автомобили из запроса.
// Несуществующие ID автомобилей отбрасываются без ошибки
func (s *ownerService) Create(ctx context.Context, req *dto.OwnerRequest) (*dto.ServiceResponse, error) {
	cars, _, err := resolveCars(ctx, s.carRepo, req.CarIDs, carPolicyDropMissing)
	if err != nil {
		return nil, err
	}

	carIDs := make([]int64, len(cars))
	for i := range cars {
		carIDs[i] = cars[i].CarID
	}

	owner := &domain.Owner{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Contact:   req.Contact,
	}

	if err := s.ownerRepo.CreateWithCars(ctx, owner, carIDs); err != nil {
		return nil, err
	}

	return dto.Created(owner.OwnerID), nil
}

// Update перезаписывает только скалярные поля, связи с автомобилями
// не затрагиваются
func (s *ownerService) Update(ctx context.Context, id int64, req *dto.OwnerRequest) (*dto.ServiceResponse, error) {
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			return dto.NotFound("Owner not found."), nil
		}
		return nil, err
	}

	owner.FirstName = req.FirstName
	owner.LastName = req.LastName
	owner.Contact = req.Contact

	if err := s.ownerRepo.Update(ctx, owner); err != nil {
		return nil, err
	}

	return dto.Updated(), nil
}

// Delete удаляет владельца вместе со всеми его автомобилями
func (s *ownerService) Delete(ctx context.Context, id int64) (*dto.ServiceResponse, error) {
	if err := s.ownerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			return dto.NotFound("Owner not found."), nil
		}
		return nil, err
	}
	return dto.Deleted(), nil
}
