package service

import (
	"context"
	"errors"

	"github.com/dealership-api/internal/domain"
	"github.com/dealership-api/internal/dto"
	"github.com/dealership-api/internal/repository"
)

// StaffService определяет бизнес-логику для сотрудников, включая
// назначение рабочих задач
type StaffService interface {
	List(ctx context.Context) ([]dto.StaffResponse, error)
	Get(ctx context.Context, id int64) (*dto.StaffResponse, error)
	Create(ctx context.Context, req *dto.StaffRequest) (*dto.ServiceResponse, error)
	Update(ctx context.Context, id int64, req *dto.StaffRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id int64) (*dto.ServiceResponse, error)
	ListWorkTasks(ctx context.Context, staffID int64) ([]dto.WorkTaskResponse, error)
	AssignWorkTask(ctx context.Context, staffID, workTaskID int64) (*dto.ServiceResponse, error)
	RemoveWorkTask(ctx context.Context, staffID, workTaskID int64) (*dto.ServiceResponse, error)
}

type staffService struct {
	staffRepo repository.StaffRepository
	carRepo   repository.CarRepository
}

// NewStaffService создаёт новый экземпляр сервиса
func NewStaffService(staffRepo repository.StaffRepository, carRepo repository.CarRepository) StaffService {
	return &staffService{
		staffRepo: staffRepo,
		carRepo:   carRepo,
	}
}

func (s *staffService) List(ctx context.Context) ([]dto.StaffResponse, error) {
	staffs, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toStaffResponses(staffs), nil
}

// Get возвращает сотрудника с полным списком его автомобилей,
// имя владельца каждого автомобиля вычисляется из связанной записи
func (s *staffService) Get(ctx context.Context, id int64) (*dto.StaffResponse, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toStaffResponse(staff)
	resp.Cars = toCarResponses(staff.Cars)
	return &resp, nil
}

// Create требует непустой список автомобилей. Достаточно, чтобы
// существовал хотя бы один из переданных ID: привязывается найденное
// подмножество
func (s *staffService) Create(ctx context.Context, req *dto.StaffRequest) (*dto.ServiceResponse, error) {
	if len(req.CarIDs) == 0 {
		return dto.Error("No cars were selected."), nil
	}

	cars, errResp, err := resolveCars(ctx, s.carRepo, req.CarIDs, carPolicyRequireAny)
	if err != nil {
		return nil, err
	}
	if errResp != nil {
		return errResp, nil
	}

	staff := &domain.Staff{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Position:  req.Position,
		Contact:   req.Contact,
		Cars:      cars,
	}

	if err := s.staffRepo.CreateWithCars(ctx, staff); err != nil {
		return nil, err
	}

	return dto.Created(staff.StaffID, "Staff created successfully."), nil
}

// Update перезаписывает имя и фамилию. Непустой список автомобилей
// заменяет весь набор связей, но только если существует каждый из
// переданных ID, иначе связи остаются нетронутыми
func (s *staffService) Update(ctx context.Context, id int64, req *dto.StaffRequest) (*dto.ServiceResponse, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrStaffNotFound) {
			return dto.NotFound("Staff not found."), nil
		}
		return nil, err
	}

	staff.FirstName = req.FirstName
	staff.LastName = req.LastName

	var cars []domain.Car
	replaceCars := len(req.CarIDs) > 0
	if replaceCars {
		var errResp *dto.ServiceResponse
		cars, errResp, err = resolveCars(ctx, s.carRepo, req.CarIDs, carPolicyRequireAll)
		if err != nil {
			return nil, err
		}
		if errResp != nil {
			return errResp, nil
		}
	}

	if err := s.staffRepo.Update(ctx, staff, cars, replaceCars); err != nil {
		return nil, err
	}

	return dto.Updated("Staff updated successfully."), nil
}

func (s *staffService) Delete(ctx context.Context, id int64) (*dto.ServiceResponse, error) {
	if err := s.staffRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrStaffNotFound) {
			return dto.NotFound("Staff not found."), nil
		}
		return nil, err
	}
	return dto.Deleted("Staff deleted successfully."), nil
}

// ListWorkTasks возвращает задачи сотрудника. Отсутствующий сотрудник
// и сотрудник без задач неразличимы: в обоих случаях список пуст
func (s *staffService) ListWorkTasks(ctx context.Context, staffID int64) ([]dto.WorkTaskResponse, error) {
	tasks, err := s.staffRepo.ListWorkTasks(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return toWorkTaskResponses(tasks), nil
}

func (s *staffService) AssignWorkTask(ctx context.Context, staffID, workTaskID int64) (*dto.ServiceResponse, error) {
	if err := s.staffRepo.AssignWorkTask(ctx, staffID, workTaskID); err != nil {
		switch {
		case errors.Is(err, domain.ErrStaffNotFound):
			return dto.NotFound("Staff not found."), nil
		case errors.Is(err, domain.ErrWorkTaskNotFound):
			return dto.NotFound("Task not found."), nil
		}
		return nil, err
	}

	return &dto.ServiceResponse{
		Status:   dto.StatusCreated,
		Messages: []string{"Work task assigned successfully."},
	}, nil
}

func (s *staffService) RemoveWorkTask(ctx context.Context, staffID, workTaskID int64) (*dto.ServiceResponse, error) {
	if err := s.staffRepo.RemoveWorkTask(ctx, staffID, workTaskID); err != nil {
		switch {
		case errors.Is(err, domain.ErrStaffNotFound):
			return dto.NotFound("Staff not found."), nil
		case errors.Is(err, domain.ErrWorkTaskNotFound):
			return dto.NotFound("Task not found."), nil
		}
		return nil, err
	}
	return dto.Deleted("Work task removed from staff successfully."), nil
}
