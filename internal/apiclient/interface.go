package apiclient

import (
	"context"

	"github.com/FleetSched/FleetSched/internal/fleet"
	"github.com/FleetSched/FleetSched/internal/job"
)

// DailySchedule 某一天的排班视图。
type DailySchedule struct {
	Date string    `json:"date"`
	Jobs []job.Job `json:"jobs"`
}

// Service 展示层统一的数据访问接口。
// Client 走真实后端，Mock 用进程内数据集，Fallback 按存活探测逐次二选一。
// 两端共用 job/fleet 包里的类型作为 wire contract。
type Service interface {
	CreateJob(ctx context.Context, in job.CreateJobInput) (*job.Job, error)
	JobsByDate(ctx context.Context, date string) ([]job.Job, error)
	DailySchedule(ctx context.Context, date string) (*DailySchedule, error)
	JobByID(ctx context.Context, id string) (*job.Job, error)
	UpdateStatus(ctx context.Context, id, status string) (*job.Job, error)
	AssignDriver(ctx context.Context, id, driverID string) (*job.Job, error)
	AssignVehicle(ctx context.Context, id, vehicleID string) (*job.Job, error)
	Drivers(ctx context.Context) ([]fleet.Driver, error)
	Vehicles(ctx context.Context) ([]fleet.Vehicle, error)
	Clients(ctx context.Context) ([]fleet.Client, error)
}
