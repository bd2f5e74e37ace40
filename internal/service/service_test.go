package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dealership-api/internal/domain"
	"github.com/dealership-api/internal/dto"
	"github.com/dealership-api/internal/repository"
	"github.com/dealership-api/internal/service"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	db     *gorm.DB
	cars   service.CarService
	owners service.OwnerService
	staffs service.StaffService
	tasks  service.WorkTaskService
}

// setupEnv собирает сервисы поверх настоящих репозиториев на in-memory базе
func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	err = db.AutoMigrate(&domain.Owner{}, &domain.Car{}, &domain.Staff{}, &domain.WorkTask{})
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	carRepo := repository.NewCarRepository(db)
	ownerRepo := repository.NewOwnerRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	taskRepo := repository.NewWorkTaskRepository(db)

	return &testEnv{
		db:     db,
		cars:   service.NewCarService(carRepo),
		owners: service.NewOwnerService(ownerRepo, carRepo),
		staffs: service.NewStaffService(staffRepo, carRepo),
		tasks:  service.NewWorkTaskService(taskRepo),
	}
}

func (e *testEnv) createOwner(t *testing.T, first, last string) int64 {
	t.Helper()
	resp, err := e.owners.Create(context.Background(), &dto.OwnerRequest{
		FirstName: first,
		LastName:  last,
		Contact:   first + "@example.com",
	})
	if err != nil {
		t.Fatalf("create owner failed: %v", err)
	}
	if resp.Status != dto.StatusCreated || resp.CreatedID == nil {
		t.Fatalf("expected Created with id, got %+v", resp)
	}
	return *resp.CreatedID
}

func (e *testEnv) createCar(t *testing.T, carMake string, ownerID int64) int64 {
	t.Helper()
	resp, err := e.cars.Create(context.Background(), &dto.CarRequest{
		Make:    carMake,
		Model:   "Test",
		Year:    2020,
		OwnerID: ownerID,
	})
	if err != nil {
		t.Fatalf("create car failed: %v", err)
	}
	if resp.Status != dto.StatusCreated || resp.CreatedID == nil {
		t.Fatalf("expected Created with id, got %+v", resp)
	}
	return *resp.CreatedID
}

func (e *testEnv) createStaff(t *testing.T, first string, carIDs []int64) int64 {
	t.Helper()
	resp, err := e.staffs.Create(context.Background(), &dto.StaffRequest{
		FirstName: first,
		LastName:  "Smith",
		Position:  "Salesperson",
		CarIDs:    carIDs,
	})
	if err != nil {
		t.Fatalf("create staff failed: %v", err)
	}
	if resp.Status != dto.StatusCreated || resp.CreatedID == nil {
		t.Fatalf("expected Created with id, got %+v", resp)
	}
	return *resp.CreatedID
}

func (e *testEnv) createTask(t *testing.T, name string) int64 {
	t.Helper()
	resp, err := e.tasks.Create(context.Background(), &dto.WorkTaskRequest{TaskName: name})
	if err != nil {
		t.Fatalf("create task failed: %v", err)
	}
	if resp.Status != dto.StatusCreated || resp.CreatedID == nil {
		t.Fatalf("expected Created with id, got %+v", resp)
	}
	return *resp.CreatedID
}

func TestCarCreateThenGetReturnsInput(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ownerID := env.createOwner(t, "Jane", "Doe")

	resp, err := env.cars.Create(ctx, &dto.CarRequest{
		Make:      "Toyota",
		Model:     "Camry",
		Year:      2020,
		OwnerID:   ownerID,
		OwnerName: "Jane Doe",
	})
	if err != nil {
		t.Fatalf("create car failed: %v", err)
	}
	if resp.Status != dto.StatusCreated || resp.CreatedID == nil {
		t.Fatalf("expected Created with id, got %+v", resp)
	}

	car, err := env.cars.Get(ctx, *resp.CreatedID)
	if err != nil {
		t.Fatalf("get car failed: %v", err)
	}
	if car.Make != "Toyota" || car.Model != "Camry" || car.Year != 2020 || car.OwnerID != ownerID {
		t.Errorf("car fields do not match input: %+v", car)
	}
	if car.OwnerName != "Jane Doe" {
		t.Errorf("expected owner name resolved to 'Jane Doe', got %q", car.OwnerName)
	}
}

func TestCarOwnerNameComputedNotStored(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ownerID := env.createOwner(t, "Jane", "Doe")

	// Переданная строка не совпадает с настоящим именем владельца
	resp, err := env.cars.Create(ctx, &dto.CarRequest{
		Make:      "Toyota",
		Model:     "Camry",
		Year:      2020,
		OwnerID:   ownerID,
		OwnerName: "Somebody Else",
	})
	if err != nil {
		t.Fatalf("create car failed: %v", err)
	}

	car, err := env.cars.Get(ctx, *resp.CreatedID)
	if err != nil {
		t.Fatalf("get car failed: %v", err)
	}
	if car.OwnerName != "Jane Doe" {
		t.Errorf("expected computed owner name 'Jane Doe', got %q", car.OwnerName)
	}
}

func TestCarGetWithMissingOwnerFallsBack(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	// Висячая ссылка на владельца: читается с именем-заглушкой
	car := &domain.Car{Make: "Toyota", Model: "Camry", Year: 2020, OwnerID: 999}
	if err := env.db.Create(car).Error; err != nil {
		t.Fatalf("failed to seed car: %v", err)
	}

	got, err := env.cars.Get(ctx, car.CarID)
	if err != nil {
		t.Fatalf("get car failed: %v", err)
	}
	if got.OwnerName != "Unknown Owner" {
		t.Errorf("expected 'Unknown Owner', got %q", got.OwnerName)
	}
}

func TestOwnerDeleteCascadesToCars(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ownerID := env.createOwner(t, "Jane", "Doe")
	carID := env.createCar(t, "Toyota", ownerID)

	cars, err := env.cars.List(ctx)
	if err != nil {
		t.Fatalf("list cars failed: %v", err)
	}
	if len(cars) != 1 || cars[0].OwnerName != "Jane Doe" {
		t.Fatalf("expected one car owned by 'Jane Doe', got %+v", cars)
	}

	resp, err := env.owners.Delete(ctx, ownerID)
	if err != nil {
		t.Fatalf("delete owner failed: %v", err)
	}
	if resp.Status != dto.StatusDeleted {
		t.Errorf("expected Deleted, got %s", resp.Status)
	}

	if _, err := env.cars.Get(ctx, carID); !errors.Is(err, domain.ErrCarNotFound) {
		t.Errorf("expected car to be gone, got %v", err)
	}
}

func TestOwnerCreateReparentsCarsAndDropsMissing(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	firstOwner := env.createOwner(t, "Jane", "Doe")
	carID := env.createCar(t, "Toyota", firstOwner)

	// Несуществующий ID в списке не является ошибкой
	resp, err := env.owners.Create(ctx, &dto.OwnerRequest{
		FirstName: "Mark",
		LastName:  "Twain",
		CarIDs:    []int64{carID, 777},
	})
	if err != nil {
		t.Fatalf("create owner failed: %v", err)
	}
	if resp.Status != dto.StatusCreated {
		t.Fatalf("expected Created, got %+v", resp)
	}

	car, err := env.cars.Get(ctx, carID)
	if err != nil {
		t.Fatalf("get car failed: %v", err)
	}
	if car.OwnerID != *resp.CreatedID {
		t.Errorf("expected car re-parented to owner %d, got %d", *resp.CreatedID, car.OwnerID)
	}
	if car.OwnerName != "Mark Twain" {
		t.Errorf("expected owner name 'Mark Twain', got %q", car.OwnerName)
	}
}

func TestOwnerUpdateDoesNotTouchCars(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ownerID := env.createOwner(t, "Jane", "Doe")
	carID := env.createCar(t, "Toyota", ownerID)

	resp, err := env.owners.Update(ctx, ownerID, &dto.OwnerRequest{
		FirstName: "Janet",
		LastName:  "Doe",
		CarIDs:    []int64{},
	})
	if err != nil {
		t.Fatalf("update owner failed: %v", err)
	}
	if resp.Status != dto.StatusUpdated {
		t.Errorf("expected Updated, got %s", resp.Status)
	}

	car, err := env.cars.Get(ctx, carID)
	if err != nil {
		t.Fatalf("get car failed: %v", err)
	}
	if car.OwnerID != ownerID {
		t.Errorf("expected car to keep its owner, got %d", car.OwnerID)
	}
	if car.OwnerName != "Janet Doe" {
		t.Errorf("expected refreshed owner name 'Janet Doe', got %q", car.OwnerName)
	}
}

func TestStaffCreateRequiresCars(t *testing.T) {
	env := setupEnv(t)

	resp, err := env.staffs.Create(context.Background(), &dto.StaffRequest{
		FirstName: "John",
		LastName:  "Smith",
	})
	if err != nil {
		t.Fatalf("create staff failed: %v", err)
	}
	if resp.Status != dto.StatusError {
		t.Errorf("expected Error, got %s", resp.Status)
	}
}

func TestStaffCreateNoneOfCarsExist(t *testing.T) {
	env := setupEnv(t)

	resp, err := env.staffs.Create(context.Background(), &dto.StaffRequest{
		FirstName: "John",
		LastName:  "Smith",
		CarIDs:    []int64{101, 102},
	})
	if err != nil {
		t.Fatalf("create staff failed: %v", err)
	}
	if resp.Status != dto.StatusError {
		t.Errorf("expected Error, got %s", resp.Status)
	}
}

func TestStaffCreateAttachesMatchedSubset(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ownerID := env.createOwner(t, "Jane", "Doe")
	carID := env.createCar(t, "Toyota", ownerID)

	// Частичное совпадение допустимо: привязывается найденное подмножество
	staffID := env.createStaff(t, "John", []int64{carID, 555})

	staff, err := env.staffs.Get(ctx, staffID)
	if err != nil {
		t.Fatalf("get staff failed: %v", err)
	}
	if len(staff.Cars) != 1 || staff.Cars[0].CarID != carID {
		t.Errorf("expected only the existing car attached, got %+v", staff.Cars)
	}
	if staff.Cars[0].OwnerName != "Jane Doe" {
		t.Errorf("expected resolved owner name, got %q", staff.Cars[0].OwnerName)
	}
}

func TestStaffUpdateAllOrNothing(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ownerID := env.createOwner(t, "Jane", "Doe")
	car1 := env.createCar(t, "Toyota", ownerID)
	car2 := env.createCar(t, "Honda", ownerID)

	staffID := env.createStaff(t, "John", []int64{car1})

	// Один несуществующий ID отменяет всю замену
	resp, err := env.staffs.Update(ctx, staffID, &dto.StaffRequest{
		FirstName: "Changed",
		LastName:  "Name",
		CarIDs:    []int64{car2, 999},
	})
	if err != nil {
		t.Fatalf("update staff failed: %v", err)
	}
	if resp.Status != dto.StatusError {
		t.Fatalf("expected Error, got %s", resp.Status)
	}

	staff, err := env.staffs.Get(ctx, staffID)
	if err != nil {
		t.Fatalf("get staff failed: %v", err)
	}
	if staff.FirstName != "John" {
		t.Errorf("expected scalar fields untouched, got %q", staff.FirstName)
	}
	if len(staff.Cars) != 1 || staff.Cars[0].CarID != car1 {
		t.Errorf("expected associations untouched, got %+v", staff.Cars)
	}
}

func TestStaffUpdateReplacesCarsWhenAllExist(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ownerID := env.createOwner(t, "Jane", "Doe")
	car1 := env.createCar(t, "Toyota", ownerID)
	car2 := env.createCar(t, "Honda", ownerID)

	staffID := env.createStaff(t, "John", []int64{car1})

	resp, err := env.staffs.Update(ctx, staffID, &dto.StaffRequest{
		FirstName: "Johnny",
		LastName:  "Smith",
		CarIDs:    []int64{car2},
	})
	if err != nil {
		t.Fatalf("update staff failed: %v", err)
	}
	if resp.Status != dto.StatusUpdated {
		t.Fatalf("expected Updated, got %s", resp.Status)
	}

	staff, err := env.staffs.Get(ctx, staffID)
	if err != nil {
		t.Fatalf("get staff failed: %v", err)
	}
	if staff.FirstName != "Johnny" {
		t.Errorf("expected first name updated, got %q", staff.FirstName)
	}
	if len(staff.Cars) != 1 || staff.Cars[0].CarID != car2 {
		t.Errorf("expected car set replaced, got %+v", staff.Cars)
	}
}

func TestStaffUpdateWithEmptyListKeepsAssociations(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ownerID := env.createOwner(t, "Jane", "Doe")
	carID := env.createCar(t, "Toyota", ownerID)
	staffID := env.createStaff(t, "John", []int64{carID})

	resp, err := env.staffs.Update(ctx, staffID, &dto.StaffRequest{
		FirstName: "Johnny",
		LastName:  "Smith",
	})
	if err != nil {
		t.Fatalf("update staff failed: %v", err)
	}
	if resp.Status != dto.StatusUpdated {
		t.Fatalf("expected Updated, got %s", resp.Status)
	}

	staff, err := env.staffs.Get(ctx, staffID)
	if err != nil {
		t.Fatalf("get staff failed: %v", err)
	}
	if len(staff.Cars) != 1 {
		t.Errorf("expected associations kept, got %+v", staff.Cars)
	}
}

func TestStaffAssignTaskTwiceListsOnce(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ownerID := env.createOwner(t, "Jane", "Doe")
	carID := env.createCar(t, "Toyota", ownerID)
	staffID := env.createStaff(t, "John", []int64{carID})
	taskID := env.createTask(t, "Inventory Check")

	for i := 0; i < 2; i++ {
		resp, err := env.staffs.AssignWorkTask(ctx, staffID, taskID)
		if err != nil {
			t.Fatalf("assign failed: %v", err)
		}
		if resp.Status != dto.StatusCreated {
			t.Fatalf("expected Created, got %s", resp.Status)
		}
	}

	tasks, err := env.staffs.ListWorkTasks(ctx, staffID)
	if err != nil {
		t.Fatalf("list work tasks failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("expected the pair exactly once, got %d", len(tasks))
	}
}

func TestStaffRemoveMissingAssignmentIsNoOp(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ownerID := env.createOwner(t, "Jane", "Doe")
	carID := env.createCar(t, "Toyota", ownerID)
	staffID := env.createStaff(t, "John", []int64{carID})
	taskID := env.createTask(t, "Inventory Check")

	resp, err := env.staffs.RemoveWorkTask(ctx, staffID, taskID)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if resp.Status != dto.StatusDeleted {
		t.Errorf("expected Deleted for no-op removal, got %s", resp.Status)
	}
}

func TestStaffListTasksForMissingStaffIsEmpty(t *testing.T) {
	env := setupEnv(t)

	tasks, err := env.staffs.ListWorkTasks(context.Background(), 999)
	if err != nil {
		t.Fatalf("list work tasks failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty list, got %d", len(tasks))
	}
}

func TestTaskCreateRequiresName(t *testing.T) {
	env := setupEnv(t)

	resp, err := env.tasks.Create(context.Background(), &dto.WorkTaskRequest{Description: "no name"})
	if err != nil {
		t.Fatalf("create task failed: %v", err)
	}
	if resp.Status != dto.StatusError {
		t.Errorf("expected Error, got %s", resp.Status)
	}
}

func TestTaskCreateIgnoresSuppliedStaff(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ownerID := env.createOwner(t, "Jane", "Doe")
	carID := env.createCar(t, "Toyota", ownerID)
	staffID := env.createStaff(t, "John", []int64{carID})

	resp, err := env.tasks.Create(ctx, &dto.WorkTaskRequest{
		TaskName: "Inventory Check",
		StaffIDs: []int64{staffID},
	})
	if err != nil {
		t.Fatalf("create task failed: %v", err)
	}
	if resp.Status != dto.StatusCreated {
		t.Fatalf("expected Created, got %+v", resp)
	}

	task, err := env.tasks.Get(ctx, *resp.CreatedID)
	if err != nil {
		t.Fatalf("get task failed: %v", err)
	}
	if len(task.Staffs) != 0 {
		t.Errorf("expected task created with empty staff list, got %d", len(task.Staffs))
	}
}

func TestTaskAssignUnknownStaffIsNotFound(t *testing.T) {
	env := setupEnv(t)

	taskID := env.createTask(t, "Inventory Check")

	resp, err := env.tasks.AssignStaff(context.Background(), taskID, 999)
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if resp.Status != dto.StatusNotFound {
		t.Errorf("expected NotFound, got %s", resp.Status)
	}
}

func TestTaskRemoveStaffAlwaysDeletedWhenTaskExists(t *testing.T) {
	env := setupEnv(t)

	taskID := env.createTask(t, "Inventory Check")

	// Сотрудник не был назначен - всё равно успех
	resp, err := env.tasks.RemoveStaff(context.Background(), taskID, 999)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if resp.Status != dto.StatusDeleted {
		t.Errorf("expected Deleted, got %s", resp.Status)
	}
}

func TestTaskUpdateKeepsAssignments(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ownerID := env.createOwner(t, "Jane", "Doe")
	carID := env.createCar(t, "Toyota", ownerID)
	staffID := env.createStaff(t, "John", []int64{carID})
	taskID := env.createTask(t, "Inventory Check")

	if _, err := env.tasks.AssignStaff(ctx, taskID, staffID); err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	resp, err := env.tasks.Update(ctx, taskID, &dto.WorkTaskRequest{
		TaskName:    "Monthly Inventory",
		Description: "updated",
	})
	if err != nil {
		t.Fatalf("update task failed: %v", err)
	}
	if resp.Status != dto.StatusUpdated {
		t.Fatalf("expected Updated, got %s", resp.Status)
	}

	staffs, err := env.tasks.ListStaffs(ctx, taskID)
	if err != nil {
		t.Fatalf("list staffs failed: %v", err)
	}
	if len(staffs) != 1 || staffs[0].StaffID != staffID {
		t.Errorf("expected assignment kept after update, got %+v", staffs)
	}
}

func TestCarUpdateNotFound(t *testing.T) {
	env := setupEnv(t)

	resp, err := env.cars.Update(context.Background(), 999, &dto.CarRequest{
		Make:    "Toyota",
		Model:   "Camry",
		Year:    2020,
		OwnerID: 1,
	})
	if err != nil {
		t.Fatalf("update car failed: %v", err)
	}
	if resp.Status != dto.StatusNotFound {
		t.Errorf("expected NotFound, got %s", resp.Status)
	}
}
