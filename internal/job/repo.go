package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/FleetSched/FleetSched/internal/fleet"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repo 基于 GORM/MySQL 的 Store 实现。
// 司机/车辆的读取委托给 fleet.Repo，共用同一个连接。
type Repo struct {
	db    *gorm.DB
	fleet *fleet.Repo
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db, fleet: fleet.NewRepo(db)}
}

func (r *Repo) withCtx(ctx context.Context) *gorm.DB {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.WithContext(ctx)
}

func (r *Repo) CreateForClient(ctx context.Context, clientName string, j *Job) (*Job, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}

	// 查找或创建客户 + 写入任务必须是一个事务，
	// 并发提交同名新客户时才不会出现重复客户或挂空的任务。
	// 单纯“先查后插”在 REPEATABLE READ 下两个事务都可能查空然后各插一条；
	// name 上的唯一索引拒绝后插的那个，撞到 ErrDuplicatedKey 时改为复用已有客户。
	err := db.Transaction(func(tx *gorm.DB) error {
		var c fleet.Client
		err := tx.Where("name = ?", clientName).First(&c).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c = fleet.Client{ID: uuid.NewString(), Name: clientName}
			if createErr := tx.Create(&c).Error; errors.Is(createErr, gorm.ErrDuplicatedKey) {
				// 重读必须加锁：普通一致性读还停留在事务开始时的快照，
				// 看不到对方刚提交的那行
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					Where("name = ?", clientName).First(&c).Error; err != nil {
					return err
				}
			} else if createErr != nil {
				return createErr
			}
		} else if err != nil {
			return err
		}

		j.ClientID = c.ID
		return tx.Create(j).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, j.ID)
}

func (r *Repo) ListByDate(ctx context.Context, date string) ([]Job, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}

	jobs := make([]Job, 0)
	err := db.Preload("Client").Preload("Driver").Preload("Vehicle").
		Where("pickup_date = ?", date).
		Order("pickup_time asc").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *Repo) ListAll(ctx context.Context) ([]Job, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}

	jobs := make([]Job, 0)
	err := db.Preload("Client").Preload("Driver").Preload("Vehicle").
		Order("pickup_date desc").
		Order("pickup_time asc").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*Job, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}

	var j Job
	err := db.Preload("Client").Preload("Driver").Preload("Vehicle").
		Where("id = ?", id).
		First(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *Repo) Save(ctx context.Context, j *Job) (*Job, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	if err := db.Save(j).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, j.ID)
}

func (r *Repo) FindDriver(ctx context.Context, id string) (*fleet.Driver, error) {
	d, err := r.fleet.FindDriverByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("driver %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *Repo) FindVehicle(ctx context.Context, id string) (*fleet.Vehicle, error) {
	v, err := r.fleet.FindVehicleByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *Repo) ListDrivers(ctx context.Context) ([]fleet.Driver, error) {
	return r.fleet.ListDrivers(ctx)
}

func (r *Repo) ListVehicles(ctx context.Context) ([]fleet.Vehicle, error) {
	return r.fleet.ListVehicles(ctx)
}

func (r *Repo) ListClients(ctx context.Context) ([]fleet.Client, error) {
	return r.fleet.ListClients(ctx)
}

// Reset 先删任务再删客户（外键方向）。
func (r *Repo) Reset(ctx context.Context) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Job{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&fleet.Client{}).Error
	})
}
