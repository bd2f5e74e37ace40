package repository

import (
	"context"
	"errors"

	"github.com/dealership-api/internal/domain"
	"gorm.io/gorm"
)

// WorkTaskRepository определяет интерфейс для работы с задачами
type WorkTaskRepository interface {
	Create(ctx context.Context, task *domain.WorkTask) error
	GetByID(ctx context.Context, id int64) (*domain.WorkTask, error)
	List(ctx context.Context) ([]domain.WorkTask, error)
	Update(ctx context.Context, task *domain.WorkTask) error
	Delete(ctx context.Context, id int64) error
	ListStaffs(ctx context.Context, workTaskID int64) ([]domain.Staff, error)
	AssignStaff(ctx context.Context, workTaskID, staffID int64) error
	RemoveStaff(ctx context.Context, workTaskID, staffID int64) error
}

type workTaskRepository struct {
	db *gorm.DB
}

// NewWorkTaskRepository создаёт новый экземпляр репозитория
func NewWorkTaskRepository(db *gorm.DB) WorkTaskRepository {
	return &workTaskRepository{db: db}
}

func (r *workTaskRepository) Create(ctx context.Context, task *domain.WorkTask) error {
	return r.db.WithContext(ctx).Omit("Staffs").Create(task).Error
}

func (r *workTaskRepository) GetByID(ctx context.Context, id int64) (*domain.WorkTask, error) {
	var task domain.WorkTask
	err := r.db.WithContext(ctx).
		Preload("Staffs", func(db *gorm.DB) *gorm.DB {
			return db.Order("staffs.staff_id ASC")
		}).
		First(&task, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *workTaskRepository) List(ctx context.Context) ([]domain.WorkTask, error) {
	var tasks []domain.WorkTask
	err := r.db.WithContext(ctx).Order("work_task_id ASC").Find(&tasks).Error
	return tasks, err
}

// Update перезаписывает только имя и описание, связи с сотрудниками
// не затрагиваются
func (r *workTaskRepository) Update(ctx context.Context, task *domain.WorkTask) error {
	return r.db.WithContext(ctx).
		Model(&domain.WorkTask{WorkTaskID: task.WorkTaskID}).
		Select("task_name", "description").
		Updates(map[string]any{
			"task_name":   task.TaskName,
			"description": task.Description,
		}).Error
}

func (r *workTaskRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM staff_work_tasks WHERE work_task_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&domain.WorkTask{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrWorkTaskNotFound
		}
		return nil
	})
}

// ListStaffs возвращает сотрудников задачи. Для отсутствующей задачи
// возвращается пустой список, как и для задачи без сотрудников
func (r *workTaskRepository) ListStaffs(ctx context.Context, workTaskID int64) ([]domain.Staff, error) {
	var staffs []domain.Staff
	err := r.db.WithContext(ctx).
		Model(&domain.Staff{}).
		Joins("JOIN staff_work_tasks swt ON swt.staff_id = staffs.staff_id").
		Where("swt.work_task_id = ?", workTaskID).
		Order("staffs.staff_id ASC").
		Find(&staffs).Error
	return staffs, err
}

// AssignStaff и RemoveStaff работают с тем же множеством назначений,
// что и методы StaffRepository, но со стороны задачи

func (r *workTaskRepository) AssignStaff(ctx context.Context, workTaskID, staffID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkWorkTaskExists(tx, workTaskID); err != nil {
			return err
		}
		if err := checkStaffExists(tx, staffID); err != nil {
			return err
		}

		var count int64
		err := tx.Table("staff_work_tasks").
			Where("staff_id = ? AND work_task_id = ?", staffID, workTaskID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		return tx.Exec(
			"INSERT INTO staff_work_tasks (staff_id, work_task_id) VALUES (?, ?)",
			staffID, workTaskID,
		).Error
	})
}

func (r *workTaskRepository) RemoveStaff(ctx context.Context, workTaskID, staffID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkWorkTaskExists(tx, workTaskID); err != nil {
			return err
		}

		return tx.Exec(
			"DELETE FROM staff_work_tasks WHERE staff_id = ? AND work_task_id = ?",
			staffID, workTaskID,
		).Error
	})
}
