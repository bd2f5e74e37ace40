package dto

// CarRequest - запрос на создание или полное обновление автомобиля
type CarRequest struct {
	Make    string `json:"make" validate:"required,min=1,max=200"`
	Model   string `json:"model" validate:"required,min=1,max=200"`
	Year    int    `json:"year" validate:"required,min=1"`
	OwnerID int64  `json:"owner_id" validate:"required,min=1"`

	// Имя владельца записывается как есть; при чтении оно вычисляется заново
	OwnerName string `json:"owner_name" validate:"max=200"`
}

// OwnerRequest - запрос на создание или обновление владельца.
// CarIDs учитывается только при создании: перечисленные автомобили
// переводятся на нового владельца, несуществующие ID молча отбрасываются
type OwnerRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=1,max=200"`
	LastName  string  `json:"last_name" validate:"required,min=1,max=200"`
	Contact   string  `json:"contact" validate:"max=200"`
	CarIDs    []int64 `json:"car_ids" validate:"dive,min=1"`
}

// StaffRequest - запрос на создание или обновление сотрудника.
// При создании CarIDs обязателен и должен содержать хотя бы один
// существующий автомобиль; при обновлении пустой список не трогает связи
type StaffRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=1,max=200"`
	LastName  string  `json:"last_name" validate:"required,min=1,max=200"`
	Position  string  `json:"position" validate:"max=200"`
	Contact   string  `json:"contact" validate:"max=200"`
	CarIDs    []int64 `json:"car_ids" validate:"dive,min=1"`
}

// WorkTaskRequest - запрос на создание или обновление задачи.
// StaffIDs принимается для совместимости, но при создании игнорируется:
// сотрудники привязываются только через эндпоинты назначения
type WorkTaskRequest struct {
	TaskName    string  `json:"task_name" validate:"max=200"`
	Description string  `json:"description" validate:"max=1000"`
	StaffIDs    []int64 `json:"staff_ids" validate:"dive,min=1"`
}

// CarResponse - ответ с данными автомобиля
type CarResponse struct {
	CarID     int64  `json:"car_id"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Year      int    `json:"year"`
	OwnerID   int64  `json:"owner_id"`
	OwnerName string `json:"owner_name"`
}

// OwnerResponse - ответ с данными владельца
type OwnerResponse struct {
	OwnerID   int64         `json:"owner_id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Contact   string        `json:"contact"`
	Cars      []CarResponse `json:"cars,omitempty"`
}

// StaffResponse - ответ с данными сотрудника
type StaffResponse struct {
	StaffID   int64         `json:"staff_id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Position  string        `json:"position"`
	Contact   string        `json:"contact"`
	Cars      []CarResponse `json:"cars,omitempty"`
}

// WorkTaskResponse - ответ с данными задачи
type WorkTaskResponse struct {
	WorkTaskID  int64           `json:"work_task_id"`
	TaskName    string          `json:"task_name"`
	Description string          `json:"description"`
	Staffs      []StaffResponse `json:"staffs,omitempty"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
