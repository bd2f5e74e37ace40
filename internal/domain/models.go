package domain

// Owner представляет владельца автомобилей
type Owner struct {
	OwnerID   int64  `json:"owner_id" gorm:"primaryKey;autoIncrement;column:owner_id"`
	FirstName string `json:"first_name" gorm:"type:varchar(200);not null"`
	LastName  string `json:"last_name" gorm:"type:varchar(200);not null"`
	Contact   string `json:"contact" gorm:"type:varchar(200)"`

	Cars []Car `json:"cars,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Owner) TableName() string {
	return "owners"
}

// Car представляет автомобиль. Каждый автомобиль принадлежит ровно одному владельцу
type Car struct {
	CarID   int64  `json:"car_id" gorm:"primaryKey;autoIncrement;column:car_id"`
	Make    string `json:"make" gorm:"type:varchar(200);not null"`
	Model   string `json:"model" gorm:"type:varchar(200);not null"`
	Year    int    `json:"year" gorm:"not null"`
	OwnerID int64  `json:"owner_id" gorm:"not null;index;column:owner_id"`

	// Денормализованное имя владельца. Сохраняется как передано вызывающей стороной,
	// при чтении имя всегда вычисляется заново из связанного Owner
	OwnerName string `json:"owner_name" gorm:"type:varchar(200)"`

	Owner  *Owner  `json:"-" gorm:"foreignKey:OwnerID"`
	Staffs []Staff `json:"staffs,omitempty" gorm:"many2many:car_staff;joinForeignKey:car_id;joinReferences:staff_id"`
}

// TableName задаёт имя таблицы для GORM
func (Car) TableName() string {
	return "cars"
}

// Staff представляет сотрудника автосалона
type Staff struct {
	StaffID   int64  `json:"staff_id" gorm:"primaryKey;autoIncrement;column:staff_id"`
	FirstName string `json:"first_name" gorm:"type:varchar(200);not null"`
	LastName  string `json:"last_name" gorm:"type:varchar(200);not null"`
	Position  string `json:"position" gorm:"type:varchar(200)"`
	Contact   string `json:"contact" gorm:"type:varchar(200)"`

	Cars      []Car      `json:"cars,omitempty" gorm:"many2many:car_staff;joinForeignKey:staff_id;joinReferences:car_id"`
	WorkTasks []WorkTask `json:"work_tasks,omitempty" gorm:"many2many:staff_work_tasks;joinForeignKey:staff_id;joinReferences:work_task_id"`
}

// TableName задаёт имя таблицы для GORM
func (Staff) TableName() string {
	return "staffs"
}

// WorkTask представляет рабочую задачу, назначаемую сотрудникам
type WorkTask struct {
	WorkTaskID  int64  `json:"work_task_id" gorm:"primaryKey;autoIncrement;column:work_task_id"`
	TaskName    string `json:"task_name" gorm:"type:varchar(200);not null"`
	Description string `json:"description" gorm:"type:varchar(1000)"`

	Staffs []Staff `json:"staffs,omitempty" gorm:"many2many:staff_work_tasks;joinForeignKey:work_task_id;joinReferences:staff_id"`
}

// TableName задаёт имя таблицы для GORM
func (WorkTask) TableName() string {
	return "work_tasks"
}
