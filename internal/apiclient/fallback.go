package apiclient

import (
	"context"

	"github.com/FleetSched/FleetSched/internal/common/logger"
	"github.com/FleetSched/FleetSched/internal/fleet"
	"github.com/FleetSched/FleetSched/internal/job"
)

// Fallback 每次调用前探测一次 /health：
// 后端存活走 Client，否则降级到 Mock。逐次探测，不做熔断，
// 可用性在一次会话内允许来回切换。降级期间的写入只存在于 Mock，
// 后端恢复后不回灌（已知并保留的设计缺口）。
type Fallback struct {
	real *Client
	mock *Mock
	log  logger.Logger
}

func NewFallback(real *Client, log logger.Logger) *Fallback {
	return &Fallback{
		real: real,
		mock: NewMock(),
		log:  log,
	}
}

// pick 按本次探测结果选择数据源。
func (f *Fallback) pick(ctx context.Context) Service {
	if f.real != nil && f.real.Health(ctx) {
		return f.real
	}
	if f.log != nil {
		f.log.Warn("backend not available, using mock data")
	}
	return f.mock
}

func (f *Fallback) CreateJob(ctx context.Context, in job.CreateJobInput) (*job.Job, error) {
	return f.pick(ctx).CreateJob(ctx, in)
}

func (f *Fallback) JobsByDate(ctx context.Context, date string) ([]job.Job, error) {
	return f.pick(ctx).JobsByDate(ctx, date)
}

func (f *Fallback) DailySchedule(ctx context.Context, date string) (*DailySchedule, error) {
	return f.pick(ctx).DailySchedule(ctx, date)
}

func (f *Fallback) JobByID(ctx context.Context, id string) (*job.Job, error) {
	return f.pick(ctx).JobByID(ctx, id)
}

func (f *Fallback) UpdateStatus(ctx context.Context, id, status string) (*job.Job, error) {
	return f.pick(ctx).UpdateStatus(ctx, id, status)
}

func (f *Fallback) AssignDriver(ctx context.Context, id, driverID string) (*job.Job, error) {
	return f.pick(ctx).AssignDriver(ctx, id, driverID)
}

func (f *Fallback) AssignVehicle(ctx context.Context, id, vehicleID string) (*job.Job, error) {
	return f.pick(ctx).AssignVehicle(ctx, id, vehicleID)
}

func (f *Fallback) Drivers(ctx context.Context) ([]fleet.Driver, error) {
	return f.pick(ctx).Drivers(ctx)
}

func (f *Fallback) Vehicles(ctx context.Context) ([]fleet.Vehicle, error) {
	return f.pick(ctx).Vehicles(ctx)
}

func (f *Fallback) Clients(ctx context.Context) ([]fleet.Client, error) {
	return f.pick(ctx).Clients(ctx)
}
