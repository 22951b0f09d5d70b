package job

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/FleetSched/FleetSched/internal/fleet"
	"github.com/google/uuid"
)

// Service 封装任务领域的核心用例（不依赖 HTTP），便于复用和测试。
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateJobInput 创建任务的入参，同时是传输层的请求体。
type CreateJobInput struct {
	ClientName      string `json:"clientName"`
	PickupDate      string `json:"pickupDate"`
	PickupTime      string `json:"pickupTime"`
	PickupLocation  string `json:"pickupLocation"`
	DropOffLocation string `json:"dropOffLocation"`
}

// CreateJob 校验入参后原子地创建客户（如不存在）和任务。
// 状态强制为 SCHEDULED，忽略调用方传入的任何状态。
func (s *Service) CreateJob(ctx context.Context, in CreateJobInput) (*Job, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}

	in.ClientName = strings.TrimSpace(in.ClientName)
	in.PickupDate = strings.TrimSpace(in.PickupDate)
	in.PickupTime = strings.TrimSpace(in.PickupTime)
	in.PickupLocation = strings.TrimSpace(in.PickupLocation)
	in.DropOffLocation = strings.TrimSpace(in.DropOffLocation)

	missing := make([]string, 0, 5)
	if in.ClientName == "" {
		missing = append(missing, "clientName")
	}
	if in.PickupDate == "" {
		missing = append(missing, "pickupDate")
	}
	if in.PickupTime == "" {
		missing = append(missing, "pickupTime")
	}
	if in.PickupLocation == "" {
		missing = append(missing, "pickupLocation")
	}
	if in.DropOffLocation == "" {
		missing = append(missing, "dropOffLocation")
	}
	if len(missing) > 0 {
		return nil, newValidationError("Missing required fields: " + strings.Join(missing, ", "))
	}
	if _, err := time.Parse(DateLayout, in.PickupDate); err != nil {
		return nil, newValidationError(fmt.Sprintf("pickupDate must be %s formatted", DateLayout))
	}

	j := &Job{
		ID:              uuid.NewString(),
		PickupDate:      in.PickupDate,
		PickupTime:      in.PickupTime,
		PickupLocation:  in.PickupLocation,
		DropOffLocation: in.DropOffLocation,
		Status:          StatusScheduled,
	}
	return s.store.CreateForClient(ctx, in.ClientName, j)
}

// JobsByDate 按日查询，date 必填且必须是合法日历日期。
func (s *Service) JobsByDate(ctx context.Context, date string) ([]Job, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, newValidationError("Date parameter is required")
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, newValidationError(fmt.Sprintf("date must be %s formatted", DateLayout))
	}
	return s.store.ListByDate(ctx, date)
}

func (s *Service) AllJobs(ctx context.Context) ([]Job, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.store.ListAll(ctx)
}

func (s *Service) JobByID(ctx context.Context, id string) (*Job, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, newValidationError("jobId required")
	}
	return s.store.GetByID(ctx, id)
}

// UpdateStatus 根据状态机规则进行状态流转。
// 非法状态值在任何存储访问之前就被拒绝。
func (s *Service) UpdateStatus(ctx context.Context, id, rawStatus string) (*Job, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, newValidationError("jobId required")
	}

	to, err := ParseStatus(strings.TrimSpace(rawStatus))
	if err != nil {
		return nil, newValidationError(err.Error())
	}

	j, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ApplyTransition(j, to); err != nil {
		return nil, newValidationError(err.Error())
	}
	return s.store.Save(ctx, j)
}

// AssignDriver 派司机：司机必须存在且在职，终态任务拒绝派单。
func (s *Service) AssignDriver(ctx context.Context, jobID, driverID string) (*Job, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	jobID = strings.TrimSpace(jobID)
	driverID = strings.TrimSpace(driverID)
	if jobID == "" || driverID == "" {
		return nil, newValidationError("jobId and driverId required")
	}

	j, err := s.store.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if IsTerminal(j.Status) {
		return nil, newValidationError(fmt.Sprintf("cannot assign driver to a %s job", j.Status))
	}

	d, err := s.store.FindDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if !d.IsActive {
		return nil, newValidationError(fmt.Sprintf("driver %s is not active", driverID))
	}

	j.DriverID = &d.ID
	return s.store.Save(ctx, j)
}

// AssignVehicle 派车辆：车辆必须存在且可用，终态任务拒绝派单。
func (s *Service) AssignVehicle(ctx context.Context, jobID, vehicleID string) (*Job, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	jobID = strings.TrimSpace(jobID)
	vehicleID = strings.TrimSpace(vehicleID)
	if jobID == "" || vehicleID == "" {
		return nil, newValidationError("jobId and vehicleId required")
	}

	j, err := s.store.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if IsTerminal(j.Status) {
		return nil, newValidationError(fmt.Sprintf("cannot assign vehicle to a %s job", j.Status))
	}

	v, err := s.store.FindVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !v.IsActive {
		return nil, newValidationError(fmt.Sprintf("vehicle %s is not active", vehicleID))
	}

	j.VehicleID = &v.ID
	return s.store.Save(ctx, j)
}

func (s *Service) Drivers(ctx context.Context) ([]fleet.Driver, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.store.ListDrivers(ctx)
}

func (s *Service) Vehicles(ctx context.Context) ([]fleet.Vehicle, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.store.ListVehicles(ctx)
}

func (s *Service) Clients(ctx context.Context) ([]fleet.Client, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.store.ListClients(ctx)
}

// Reset 清空任务与客户，种子脚本使用。
func (s *Service) Reset(ctx context.Context) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("service not initialized")
	}
	return s.store.Reset(ctx)
}
