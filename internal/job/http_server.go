package job

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/FleetSched/FleetSched/internal/common/logger"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// HTTPServer 任务 REST 传输层。
type HTTPServer struct {
	svc *Service
	log logger.Logger
}

func NewHTTPServer(svc *Service, log logger.Logger) *HTTPServer {
	return &HTTPServer{svc: svc, log: log}
}

// NewHTTPServerFromDB 服务端装配入口。
func NewHTTPServerFromDB(db *gorm.DB, log logger.Logger) *HTTPServer {
	return NewHTTPServer(NewService(NewRepo(db)), log)
}

// Register 挂载 /api/jobs 路由。
// 固定路径（/all、/resource/*）必须先于 /{jobId} 注册。
func (s *HTTPServer) Register(r *mux.Router) {
	api := r.PathPrefix("/api/jobs").Subrouter()

	api.HandleFunc("", s.handleCreateJob).Methods(http.MethodPost)
	api.HandleFunc("", s.handleJobsByDate).Methods(http.MethodGet)
	api.HandleFunc("/all", s.handleAllJobs).Methods(http.MethodGet)
	api.HandleFunc("/resource/drivers", s.handleDrivers).Methods(http.MethodGet)
	api.HandleFunc("/resource/vehicles", s.handleVehicles).Methods(http.MethodGet)
	api.HandleFunc("/resource/clients", s.handleClients).Methods(http.MethodGet)
	api.HandleFunc("/{jobId}", s.handleJobByID).Methods(http.MethodGet)
	api.HandleFunc("/{jobId}/status", s.handleUpdateStatus).Methods(http.MethodPatch)
	api.HandleFunc("/{jobId}/assign-driver", s.handleAssignDriver).Methods(http.MethodPatch)
	api.HandleFunc("/{jobId}/assign-vehicle", s.handleAssignVehicle).Methods(http.MethodPatch)
}

func (s *HTTPServer) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var in CreateJobInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	j, err := s.svc.CreateJob(r.Context(), in)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, j)
}

func (s *HTTPServer) handleJobsByDate(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.svc.JobsByDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		s.respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (s *HTTPServer) handleAllJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.svc.AllJobs(r.Context())
	if err != nil {
		s.respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (s *HTTPServer) handleJobByID(w http.ResponseWriter, r *http.Request) {
	j, err := s.svc.JobByID(r.Context(), mux.Vars(r)["jobId"])
	if err != nil {
		s.respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (s *HTTPServer) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	j, err := s.svc.UpdateStatus(r.Context(), mux.Vars(r)["jobId"], req.Status)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

type assignDriverRequest struct {
	DriverID string `json:"driverId"`
}

func (s *HTTPServer) handleAssignDriver(w http.ResponseWriter, r *http.Request) {
	var req assignDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	j, err := s.svc.AssignDriver(r.Context(), mux.Vars(r)["jobId"], req.DriverID)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

type assignVehicleRequest struct {
	VehicleID string `json:"vehicleId"`
}

func (s *HTTPServer) handleAssignVehicle(w http.ResponseWriter, r *http.Request) {
	var req assignVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	j, err := s.svc.AssignVehicle(r.Context(), mux.Vars(r)["jobId"], req.VehicleID)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

func (s *HTTPServer) handleDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := s.svc.Drivers(r.Context())
	if err != nil {
		s.respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drivers)
}

func (s *HTTPServer) handleVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.svc.Vehicles(r.Context())
	if err != nil {
		s.respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (s *HTTPServer) handleClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.svc.Clients(r.Context())
	if err != nil {
		s.respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

// respondErr 把错误映射到 HTTP 状态码：
// ValidationError -> 400，ErrNotFound -> 404，其余 -> 500（细节只进日志不出响应）。
func (s *HTTPServer) respondErr(w http.ResponseWriter, err error) {
	switch {
	case IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		if s.log != nil {
			s.log.Errorf("internal error: %v", err)
		}
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
