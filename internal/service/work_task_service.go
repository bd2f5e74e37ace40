package service

import (
	"context"
	"errors"

	"github.com/dealership-api/internal/domain"
	"github.com/dealership-api/internal/dto"
	"github.com/dealership-api/internal/repository"
)

// WorkTaskService определяет бизнес-логику для рабочих задач,
// включая назначение сотрудников
type WorkTaskService interface {
	List(ctx context.Context) ([]dto.WorkTaskResponse, error)
	Get(ctx context.Context, id int64) (*dto.WorkTaskResponse, error)
	Create(ctx context.Context, req *dto.WorkTaskRequest) (*dto.ServiceResponse, error)
	Update(ctx context.Context, id int64, req *dto.WorkTaskRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id int64) (*dto.ServiceResponse, error)
	ListStaffs(ctx context.Context, workTaskID int64) ([]dto.StaffResponse, error)
	AssignStaff(ctx context.Context, workTaskID, staffID int64) (*dto.ServiceResponse, error)
	RemoveStaff(ctx context.Context, workTaskID, staffID int64) (*dto.ServiceResponse, error)
}

type workTaskService struct {
	taskRepo repository.WorkTaskRepository
}

// NewWorkTaskService создаёт новый экземпляр сервиса
func NewWorkTaskService(taskRepo repository.WorkTaskRepository) WorkTaskService {
	return &workTaskService{taskRepo: taskRepo}
}

func (s *workTaskService) List(ctx context.Context) ([]dto.WorkTaskResponse, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toWorkTaskResponses(tasks), nil
}

// Get возвращает задачу вместе со списком назначенных сотрудников
func (s *workTaskService) Get(ctx context.Context, id int64) (*dto.WorkTaskResponse, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toWorkTaskResponse(task)
	resp.Staffs = toStaffResponses(task.Staffs)
	return &resp, nil
}

// Create требует непустое имя задачи. Сотрудники из запроса
// игнорируются: задача всегда создаётся с пустым списком назначений,
// сотрудники привязываются отдельными вызовами AssignStaff
func (s *workTaskService) Create(ctx context.Context, req *dto.WorkTaskRequest) (*dto.ServiceResponse, error) {
	if req.TaskName == "" {
		return dto.Error("Task name is required."), nil
	}

	task := &domain.WorkTask{
		TaskName:    req.TaskName,
		Description: req.Description,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return dto.Created(task.WorkTaskID, "Task created successfully."), nil
}

// Update перезаписывает имя и описание, назначения не затрагиваются
func (s *workTaskService) Update(ctx context.Context, id int64, req *dto.WorkTaskRequest) (*dto.ServiceResponse, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrWorkTaskNotFound) {
			return dto.NotFound("Task not found."), nil
		}
		return nil, err
	}

	task.TaskName = req.TaskName
	task.Description = req.Description

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	return dto.Updated("Task updated successfully."), nil
}

func (s *workTaskService) Delete(ctx context.Context, id int64) (*dto.ServiceResponse, error) {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrWorkTaskNotFound) {
			return dto.NotFound("Task not found."), nil
		}
		return nil, err
	}
	return dto.Deleted("Task deleted successfully."), nil
}

// ListStaffs возвращает сотрудников задачи. Отсутствующая задача и
// задача без сотрудников неразличимы: в обоих случаях список пуст
func (s *workTaskService) ListStaffs(ctx context.Context, workTaskID int64) ([]dto.StaffResponse, error) {
	staffs, err := s.taskRepo.ListStaffs(ctx, workTaskID)
	if err != nil {
		return nil, err
	}
	return toStaffResponses(staffs), nil
}

func (s *workTaskService) AssignStaff(ctx context.Context, workTaskID, staffID int64) (*dto.ServiceResponse, error) {
	if err := s.taskRepo.AssignStaff(ctx, workTaskID, staffID); err != nil {
		switch {
		case errors.Is(err, domain.ErrWorkTaskNotFound):
			return dto.NotFound("Task not found."), nil
		case errors.Is(err, domain.ErrStaffNotFound):
			return dto.NotFound("Staff not found."), nil
		}
		return nil, err
	}

	return &dto.ServiceResponse{
		Status:   dto.StatusCreated,
		Messages: []string{"Staff assigned successfully."},
	}, nil
}

// RemoveStaff снимает назначение. Если сотрудник не был назначен,
// операция успешно завершается без изменений
func (s *workTaskService) RemoveStaff(ctx context.Context, workTaskID, staffID int64) (*dto.ServiceResponse, error) {
	if err := s.taskRepo.RemoveStaff(ctx, workTaskID, staffID); err != nil {
		if errors.Is(err, domain.ErrWorkTaskNotFound) {
			return dto.NotFound("Task not found."), nil
		}
		return nil, err
	}
	return dto.Deleted("Staff removed from task successfully."), nil
}
