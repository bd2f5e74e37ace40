package dto

// ServiceStatus - исход мутирующей операции сервиса
type ServiceStatus string

const (
	StatusCreated  ServiceStatus = "Created"
	StatusUpdated  ServiceStatus = "Updated"
	StatusDeleted  ServiceStatus = "Deleted"
	StatusNotFound ServiceStatus = "NotFound"
	StatusError    ServiceStatus = "Error"
)

// ServiceResponse - единый конверт ответа для всех мутирующих операций.
// Вызывающая сторона ветвится только по Status; Messages носят
// информационный характер и не подлежат разбору
type ServiceResponse struct {
	Status    ServiceStatus `json:"status"`
	Messages  []string      `json:"messages,omitempty"`
	CreatedID *int64        `json:"created_id,omitempty"`
}

// Created формирует конверт успешного создания с новым ID
func Created(id int64, messages ...string) *ServiceResponse {
	return &ServiceResponse{Status: StatusCreated, CreatedID: &id, Messages: messages}
}

// Updated формирует конверт успешного обновления
func Updated(messages ...string) *ServiceResponse {
	return &ServiceResponse{Status: StatusUpdated, Messages: messages}
}

// Deleted формирует конверт успешного удаления
func Deleted(messages ...string) *ServiceResponse {
	return &ServiceResponse{Status: StatusDeleted, Messages: messages}
}

// NotFound формирует конверт для отсутствующей целевой сущности
func NotFound(messages ...string) *ServiceResponse {
	return &ServiceResponse{Status: StatusNotFound, Messages: messages}
}

// Error формирует конверт ошибки валидации
func Error(messages ...string) *ServiceResponse {
	return &ServiceResponse{Status: StatusError, Messages: messages}
}
