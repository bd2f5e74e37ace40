package repository

import (
	"context"
	"errors"

	"github.com/dealership-api/internal/domain"
	"gorm.io/gorm"
)

// CarRepository определяет интерфейс для работы с автомобилями
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Car, error)
	List(ctx context.Context) ([]domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int64) error
}

type carRepository struct {
	db *gorm.DB
}

// NewCarRepository создаёт новый экземпляр репозитория
func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

func (r *carRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	var car domain.Car
	err := r.db.WithContext(ctx).Preload("Owner").First(&car, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCarNotFound
		}
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Car, error) {
	var cars []domain.Car
	if len(ids) == 0 {
		return cars, nil
	}
	err := r.db.WithContext(ctx).Where("car_id IN ?", ids).Find(&cars).Error
	return cars, err
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	var cars []domain.Car
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Order("car_id ASC").
		Find(&cars).Error
	return cars, err
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	return r.db.WithContext(ctx).Save(car).Error
}

func (r *carRepository) Delete(ctx context.Context, id int64) error {
	// Строки в car_staff удаляются в той же транзакции, что и сам автомобиль
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM car_staff WHERE car_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&domain.Car{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrCarNotFound
		}
		return nil
	})
}
