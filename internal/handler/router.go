package handler

import (
	"log/slog"
	"net/http"

	"github.com/dealership-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux          *http.ServeMux
	logger       *slog.Logger
	carHandler   *CarHandler
	ownerHandler *OwnerHandler
	staffHandler *StaffHandler
	taskHandler  *WorkTaskHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	carHandler *CarHandler,
	ownerHandler *OwnerHandler,
	staffHandler *StaffHandler,
	taskHandler *WorkTaskHandler,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:          http.NewServeMux(),
		logger:       logger,
		carHandler:   carHandler,
		ownerHandler: ownerHandler,
		staffHandler: staffHandler,
		taskHandler:  taskHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.mux.HandleFunc("GET /api/Cars/List", r.carHandler.List)
	r.mux.HandleFunc("GET /api/Cars/{id}", r.carHandler.Get)
	r.mux.HandleFunc("POST /api/Cars/Add", r.carHandler.Create)
	r.mux.HandleFunc("PUT /api/Cars/Update/{id}", r.carHandler.Update)
	r.mux.HandleFunc("DELETE /api/Cars/Delete/{id}", r.carHandler.Delete)

	r.mux.HandleFunc("GET /api/Owner/List", r.ownerHandler.List)
	r.mux.HandleFunc("GET /api/Owner/Find/{id}", r.ownerHandler.Find)
	r.mux.HandleFunc("POST /api/Owner/Add", r.ownerHandler.Create)
	r.mux.HandleFunc("PUT /api/Owner/Update/{id}", r.ownerHandler.Update)
	r.mux.HandleFunc("DELETE /api/Owner/Delete/{id}", r.ownerHandler.Delete)

	r.mux.HandleFunc("GET /api/StaffAPI/List", r.staffHandler.List)
	r.mux.HandleFunc("GET /api/StaffAPI/Find/{id}", r.staffHandler.Find)
	r.mux.HandleFunc("POST /api/StaffAPI/Add", r.staffHandler.Create)
	r.mux.HandleFunc("PUT /api/StaffAPI/Update/{id}", r.staffHandler.Update)
	r.mux.HandleFunc("DELETE /api/StaffAPI/Delete/{id}", r.staffHandler.Delete)
	r.mux.HandleFunc("GET /api/StaffAPI/ListTasks/{staffId}", r.staffHandler.ListTasks)
	r.mux.HandleFunc("POST /api/StaffAPI/AssignTask/{staffId}/{taskId}", r.staffHandler.AssignTask)
	r.mux.HandleFunc("DELETE /api/StaffAPI/RemoveTask/{staffId}/{taskId}", r.staffHandler.RemoveTask)

	r.mux.HandleFunc("GET /api/TaskAPI/List", r.taskHandler.List)
	r.mux.HandleFunc("GET /api/TaskAPI/Find/{id}", r.taskHandler.Find)
	r.mux.HandleFunc("POST /api/TaskAPI/Add", r.taskHandler.Create)
	r.mux.HandleFunc("PUT /api/TaskAPI/Update/{id}", r.taskHandler.Update)
	r.mux.HandleFunc("DELETE /api/TaskAPI/Delete/{id}", r.taskHandler.Delete)
	r.mux.HandleFunc("GET /api/TaskAPI/ListStaff/{taskId}", r.taskHandler.ListStaff)
	r.mux.HandleFunc("POST /api/TaskAPI/AssignStaff/{taskId}/{staffId}", r.taskHandler.AssignStaff)
	r.mux.HandleFunc("DELETE /api/TaskAPI/RemoveStaff/{taskId}/{staffId}", r.taskHandler.RemoveStaff)

	// Health check
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}
