package service

import (
	"github.com/dealership-api/internal/domain"
	"github.com/dealership-api/internal/dto"
)

// unknownOwnerName подставляется, когда у автомобиля нет связанного владельца
const unknownOwnerName = "Unknown Owner"

// ownerDisplayName вычисляет отображаемое имя владельца из связанной
// записи. Сохранённая в cars.owner_name строка при чтении не используется
func ownerDisplayName(owner *domain.Owner) string {
	if owner == nil {
		return unknownOwnerName
	}
	return owner.FirstName + " " + owner.LastName
}

func toCarResponse(car *domain.Car) dto.CarResponse {
	return dto.CarResponse{
		CarID:     car.CarID,
		Make:      car.Make,
		Model:     car.Model,
		Year:      car.Year,
		OwnerID:   car.OwnerID,
		OwnerName: ownerDisplayName(car.Owner),
	}
}

func toCarResponses(cars []domain.Car) []dto.CarResponse {
	result := make([]dto.CarResponse, len(cars))
	for i := range cars {
		result[i] = toCarResponse(&cars[i])
	}
	return result
}

func toOwnerResponse(owner *domain.Owner) dto.OwnerResponse {
	return dto.OwnerResponse{
		OwnerID:   owner.OwnerID,
		FirstName: owner.FirstName,
		LastName:  owner.LastName,
		Contact:   owner.Contact,
	}
}

func toStaffResponse(staff *domain.Staff) dto.StaffResponse {
	return dto.StaffResponse{
		StaffID:   staff.StaffID,
		FirstName: staff.FirstName,
		LastName:  staff.LastName,
		Position:  staff.Position,
		Contact:   staff.Contact,
	}
}

func toStaffResponses(staffs []domain.Staff) []dto.StaffResponse {
	result := make([]dto.StaffResponse, len(staffs))
	for i := range staffs {
		result[i] = toStaffResponse(&staffs[i])
	}
	return result
}

func toWorkTaskResponse(task *domain.WorkTask) dto.WorkTaskResponse {
	return dto.WorkTaskResponse{
		WorkTaskID:  task.WorkTaskID,
		TaskName:    task.TaskName,
		Description: task.Description,
	}
}

func toWorkTaskResponses(tasks []domain.WorkTask) []dto.WorkTaskResponse {
	result := make([]dto.WorkTaskResponse, len(tasks))
	for i := range tasks {
		result[i] = toWorkTaskResponse(&tasks[i])
	}
	return result
}
