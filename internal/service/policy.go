package service

import (
	"context"

	"github.com/dealership-api/internal/domain"
	"github.com/dealership-api/internal/dto"
	"github.com/dealership-api/internal/repository"
)

// carSelectionPolicy задаёт правило проверки списка автомобилей,
// переданного при создании или обновлении сущности
type carSelectionPolicy int

const (
	// carPolicyDropMissing - несуществующие ID молча отбрасываются
	carPolicyDropMissing carSelectionPolicy = iota
	// carPolicyRequireAny - хотя бы один ID должен существовать
	carPolicyRequireAny
	// carPolicyRequireAll - каждый ID обязан существовать
	carPolicyRequireAll
)

// resolveCars сопоставляет переданные ID с существующими автомобилями
// согласно политике. При нарушении политики возвращается конверт с
// ошибкой, а связи вызывающей сущности остаются нетронутыми
func resolveCars(ctx context.Context, carRepo repository.CarRepository, ids []int64, policy carSelectionPolicy) ([]domain.Car, *dto.ServiceResponse, error) {
	cars, err := carRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	switch policy {
	case carPolicyRequireAny:
		if len(cars) == 0 {
			return nil, dto.Error("Selected cars not found."), nil
		}
	case carPolicyRequireAll:
		if len(cars) != len(uniqueIDs(ids)) {
			return nil, dto.Error("Some cars provided do not exist. Please check car_id."), nil
		}
	}

	return cars, nil, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
