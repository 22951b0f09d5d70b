package apiclient

import (
	"context"
	"time"

	"github.com/FleetSched/FleetSched/internal/fleet"
	"github.com/FleetSched/FleetSched/internal/job"
)

// 模拟真实后端的响应延迟。
const (
	mockWriteLatency = 500 * time.Millisecond
	mockReadLatency  = 300 * time.Millisecond
)

// Mock 后端不可用时的进程内数据源。
// 内部复用 job.MemStore + job.Service，语义（状态机、客户去重、校验）
// 与真实后端一致；数据不落盘，也不会在后端恢复后回灌。
type Mock struct {
	svc *job.Service
}

// NewMock 创建带样例数据的 mock 数据源。
func NewMock() *Mock {
	store := job.NewMemStore()

	driver1 := fleet.Driver{
		ID:       "mock-driver-1",
		Name:     "John Doe",
		Email:    "john.doe@example.com",
		Phone:    "+1234567890",
		IsActive: true,
	}
	driver2 := fleet.Driver{
		ID:       "mock-driver-2",
		Name:     "Jane Smith",
		Email:    "jane.smith@example.com",
		Phone:    "+1987654321",
		IsActive: true,
	}
	store.AddDriver(driver1)
	store.AddDriver(driver2)

	vehicle1 := fleet.Vehicle{
		ID:       "mock-vehicle-1",
		Make:     "Ford",
		Model:    "Transit",
		Year:     2022,
		Plate:    "ABC123",
		VIN:      "1FTRE342X5HA12345",
		IsActive: true,
	}
	vehicle2 := fleet.Vehicle{
		ID:       "mock-vehicle-2",
		Make:     "Mercedes-Benz",
		Model:    "Sprinter",
		Year:     2023,
		Plate:    "XYZ789",
		VIN:      "WD3RE542X5HA67890",
		IsActive: true,
	}
	store.AddVehicle(vehicle1)
	store.AddVehicle(vehicle2)

	today := time.Now().Format(job.DateLayout)
	ctx := context.Background()

	j1 := &job.Job{
		ID:              "mock-job-1",
		PickupDate:      today,
		PickupTime:      "09:00",
		PickupLocation:  "123 Main St, City A",
		DropOffLocation: "456 Oak St, City B",
		Status:          job.StatusScheduled,
		DriverID:        &driver1.ID,
		VehicleID:       &vehicle1.ID,
	}
	_, _ = store.CreateForClient(ctx, "ABC Corporation", j1)

	j2 := &job.Job{
		ID:              "mock-job-2",
		PickupDate:      today,
		PickupTime:      "14:30",
		PickupLocation:  "789 Pine St, City C",
		DropOffLocation: "321 Elm St, City D",
		Status:          job.StatusScheduled,
		DriverID:        &driver2.ID,
		VehicleID:       &vehicle2.ID,
	}
	_, _ = store.CreateForClient(ctx, "XYZ Ltd", j2)

	return &Mock{svc: job.NewService(store)}
}

func (m *Mock) CreateJob(ctx context.Context, in job.CreateJobInput) (*job.Job, error) {
	if err := m.sleep(ctx, mockWriteLatency); err != nil {
		return nil, err
	}
	return m.svc.CreateJob(ctx, in)
}

func (m *Mock) JobsByDate(ctx context.Context, date string) ([]job.Job, error) {
	if err := m.sleep(ctx, mockReadLatency); err != nil {
		return nil, err
	}
	return m.svc.JobsByDate(ctx, date)
}

func (m *Mock) DailySchedule(ctx context.Context, date string) (*DailySchedule, error) {
	jobs, err := m.JobsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return &DailySchedule{Date: date, Jobs: jobs}, nil
}

func (m *Mock) JobByID(ctx context.Context, id string) (*job.Job, error) {
	if err := m.sleep(ctx, mockReadLatency); err != nil {
		return nil, err
	}
	return m.svc.JobByID(ctx, id)
}

func (m *Mock) UpdateStatus(ctx context.Context, id, status string) (*job.Job, error) {
	if err := m.sleep(ctx, mockWriteLatency); err != nil {
		return nil, err
	}
	return m.svc.UpdateStatus(ctx, id, status)
}

func (m *Mock) AssignDriver(ctx context.Context, id, driverID string) (*job.Job, error) {
	if err := m.sleep(ctx, mockWriteLatency); err != nil {
		return nil, err
	}
	return m.svc.AssignDriver(ctx, id, driverID)
}

func (m *Mock) AssignVehicle(ctx context.Context, id, vehicleID string) (*job.Job, error) {
	if err := m.sleep(ctx, mockWriteLatency); err != nil {
		return nil, err
	}
	return m.svc.AssignVehicle(ctx, id, vehicleID)
}

func (m *Mock) Drivers(ctx context.Context) ([]fleet.Driver, error) {
	if err := m.sleep(ctx, mockReadLatency); err != nil {
		return nil, err
	}
	return m.svc.Drivers(ctx)
}

func (m *Mock) Vehicles(ctx context.Context) ([]fleet.Vehicle, error) {
	if err := m.sleep(ctx, mockReadLatency); err != nil {
		return nil, err
	}
	return m.svc.Vehicles(ctx)
}

func (m *Mock) Clients(ctx context.Context) ([]fleet.Client, error) {
	if err := m.sleep(ctx, mockReadLatency); err != nil {
		return nil, err
	}
	return m.svc.Clients(ctx)
}

func (m *Mock) sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
