package repository

import (
	"context"
	"errors"

	"github.com/dealership-api/internal/domain"
	"gorm.io/gorm"
)

// StaffRepository определяет интерфейс для работы с сотрудниками
type StaffRepository interface {
	CreateWithCars(ctx context.Context, staff *domain.Staff) error
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	List(ctx context.Context) ([]domain.Staff, error)
	Update(ctx context.Context, staff *domain.Staff, cars []domain.Car, replaceCars bool) error
	Delete(ctx context.Context, id int64) error
	ListWorkTasks(ctx context.Context, staffID int64) ([]domain.WorkTask, error)
	AssignWorkTask(ctx context.Context, staffID, workTaskID int64) error
	RemoveWorkTask(ctx context.Context, staffID, workTaskID int64) error
}

type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository создаёт новый экземпляр репозитория
func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

// CreateWithCars создаёт сотрудника вместе со связями в car_staff.
// staff.Cars содержит уже существующие записи, GORM вставляет только
// строки связующей таблицы
func (r *staffRepository) CreateWithCars(ctx context.Context, staff *domain.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *staffRepository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	var staff domain.Staff
	err := r.db.WithContext(ctx).
		Preload("Cars", func(db *gorm.DB) *gorm.DB {
			return db.Order("cars.car_id ASC")
		}).
		Preload("Cars.Owner").
		First(&staff, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStaffNotFound
		}
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) List(ctx context.Context) ([]domain.Staff, error) {
	var staffs []domain.Staff
	err := r.db.WithContext(ctx).Order("staff_id ASC").Find(&staffs).Error
	return staffs, err
}

// Update перезаписывает скалярные поля сотрудника и, если replaceCars
// установлен, заменяет весь набор его автомобилей на переданный
func (r *staffRepository) Update(ctx context.Context, staff *domain.Staff, cars []domain.Car, replaceCars bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&domain.Staff{StaffID: staff.StaffID}).
			Select("first_name", "last_name").
			Updates(map[string]any{
				"first_name": staff.FirstName,
				"last_name":  staff.LastName,
			}).Error
		if err != nil {
			return err
		}

		if replaceCars {
			carRefs := make([]*domain.Car, len(cars))
			for i := range cars {
				carRefs[i] = &cars[i]
			}
			err := tx.Model(&domain.Staff{StaffID: staff.StaffID}).
				Association("Cars").
				Replace(carRefs)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *staffRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM car_staff WHERE staff_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM staff_work_tasks WHERE staff_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&domain.Staff{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrStaffNotFound
		}
		return nil
	})
}

// ListWorkTasks возвращает задачи сотрудника. Для отсутствующего
// сотрудника возвращается пустой список, как и для сотрудника без задач
func (r *staffRepository) ListWorkTasks(ctx context.Context, staffID int64) ([]domain.WorkTask, error) {
	var tasks []domain.WorkTask
	err := r.db.WithContext(ctx).
		Model(&domain.WorkTask{}).
		Joins("JOIN staff_work_tasks swt ON swt.work_task_id = work_tasks.work_task_id").
		Where("swt.staff_id = ?", staffID).
		Order("work_tasks.work_task_id ASC").
		Find(&tasks).Error
	return tasks, err
}

// AssignWorkTask добавляет назначение в staff_work_tasks. Членство -
// множество: повторное назначение той же пары не создаёт дубликата
func (r *staffRepository) AssignWorkTask(ctx context.Context, staffID, workTaskID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkStaffExists(tx, staffID); err != nil {
			return err
		}
		if err := checkWorkTaskExists(tx, workTaskID); err != nil {
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

// RemoveWorkTask снимает назначение. Удаление несуществующей пары -
// успешный no-op, состояние не меняется
func (r *staffRepository) RemoveWorkTask(ctx context.Context, staffID, workTaskID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkStaffExists(tx, staffID); err != nil {
			return err
		}
		if err := checkWorkTaskExists(tx, workTaskID); err != nil {
			return err
		}

		return tx.Exec(
			"DELETE FROM staff_work_tasks WHERE staff_id = ? AND work_task_id = ?",
			staffID, workTaskID,
		).Error
	})
}

func checkStaffExists(tx *gorm.DB, staffID int64) error {
	var count int64
	err := tx.Model(&domain.Staff{}).Where("staff_id = ?", staffID).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrStaffNotFound
	}
	return nil
}

func checkWorkTaskExists(tx *gorm.DB, workTaskID int64) error {
	var count int64
	err := tx.Model(&domain.WorkTask{}).Where("work_task_id = ?", workTaskID).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrWorkTaskNotFound
	}
	return nil
}
