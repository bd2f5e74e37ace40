package repository

import (
	"context"
	"errors"

	"github.com/dealership-api/internal/domain"
	"gorm.io/gorm"
)

// OwnerRepository определяет интерфейс для работы с владельцами
type OwnerRepository interface {
	CreateWithCars(ctx context.Context, owner *domain.Owner, carIDs []int64) error
	GetByID(ctx context.Context, id int64) (*domain.Owner, error)
	List(ctx context.Context) ([]domain.Owner, error)
	Update(ctx context.Context, owner *domain.Owner) error
	Delete(ctx context.Context, id int64) error
}

type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository создаёт новый экземпляр репозитория
func NewOwnerRepository(db *gorm.DB) OwnerRepository {
	return &ownerRepository{db: db}
}

// CreateWithCars создаёт владельца и переводит на него перечисленные
// автомобили. Список carIDs уже отфильтрован сервисом до существующих
func (r *ownerRepository) CreateWithCars(ctx context.Context, owner *domain.Owner, carIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(owner).Error; err != nil {
			return err
		}

		if len(carIDs) > 0 {
			err := tx.Model(&domain.Car{}).
				Where("car_id IN ?", carIDs).
				Update("owner_id", owner.OwnerID).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ownerRepository) GetByID(ctx context.Context, id int64) (*domain.Owner, error) {
	var owner domain.Owner
	err := r.db.WithContext(ctx).First(&owner, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) List(ctx context.Context) ([]domain.Owner, error) {
	var owners []domain.Owner
	err := r.db.WithContext(ctx).Order("owner_id ASC").Find(&owners).Error
	return owners, err
}

func (r *ownerRepository) Update(ctx context.Context, owner *domain.Owner) error {
	return r.db.WithContext(ctx).Save(owner).Error
}

// Delete удаляет владельца вместе со всеми его автомобилями.
// Каскад выполняется явно, чтобы не зависеть от настроек FK движка
func (r *ownerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var carIDs []int64
		err := tx.Model(&domain.Car{}).
			Where("owner_id = ?", id).
			Pluck("car_id", &carIDs).Error
		if err != nil {
			return err
		}

		if len(carIDs) > 0 {
			if err := tx.Exec("DELETE FROM car_staff WHERE car_id IN ?", carIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&domain.Car{}, carIDs).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&domain.Owner{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrOwnerNotFound
		}
		return nil
	})
}
