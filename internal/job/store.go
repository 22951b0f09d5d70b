package job

import (
	"context"

	"github.com/FleetSched/FleetSched/internal/fleet"
)

// Store 任务数据访问接口。
// MySQL 实现见 Repo，内存实现见 MemStore（测试与降级场景使用）。
// 未知 id 统一返回 ErrNotFound，不混入存储层错误。
type Store interface {
	// CreateForClient 原子地“按名查找或创建客户 + 写入任务”。
	// 必须在一个事务里完成，避免并发提交同名新客户时产生重复记录。
	CreateForClient(ctx context.Context, clientName string, j *Job) (*Job, error)

	// ListByDate 返回 pickupDate 等于给定日期的任务，按 pickupTime 升序，
	// 关联的客户/司机/车辆一并带出；无匹配时返回空序列而不是错误。
	ListByDate(ctx context.Context, date string) ([]Job, error)

	// ListAll 调试用全量列表，按 pickupDate 降序、pickupTime 升序。
	ListAll(ctx context.Context) ([]Job, error)

	GetByID(ctx context.Context, id string) (*Job, error)

	// Save 持久化对任务的修改，返回带关联的最新状态。
	Save(ctx context.Context, j *Job) (*Job, error)

	FindDriver(ctx context.Context, id string) (*fleet.Driver, error)
	FindVehicle(ctx context.Context, id string) (*fleet.Vehicle, error)

	ListDrivers(ctx context.Context) ([]fleet.Driver, error)
	ListVehicles(ctx context.Context) ([]fleet.Vehicle, error)
	ListClients(ctx context.Context) ([]fleet.Client, error)

	// Reset 清空任务与客户（测试/种子数据用）。
	Reset(ctx context.Context) error
}
