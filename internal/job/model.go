package job

import (
	"time"

	"github.com/FleetSched/FleetSched/internal/fleet"
)

// Status 任务状态枚举（持久化为字符串）。
type Status string

const (
	StatusScheduled  Status = "SCHEDULED"   // 已排班，唯一的初始状态
	StatusInProgress Status = "IN_PROGRESS" // 执行中
	StatusCompleted  Status = "COMPLETED"   // 已完成（终态）
	StatusCancelled  Status = "CANCELLED"   // 已取消（终态）
)

// DateLayout pickupDate 的日历日期格式。
const DateLayout = "2006-01-02"

// Job 任务 GORM 模型。JSON 标签同时是客户端侧的 wire contract，
// 服务端/客户端共用一份类型定义，避免两边各维护一套字段漂移。
type Job struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// 业务关联：客户必填，司机/车辆在派单前为空
	ClientID string        `gorm:"index;size:36;not null" json:"clientId"`
	Client   *fleet.Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	PickupDate      string `gorm:"index;size:10;not null" json:"pickupDate"` // YYYY-MM-DD
	PickupTime      string `gorm:"size:5;not null" json:"pickupTime"`        // HH:MM
	PickupLocation  string `gorm:"size:255;not null" json:"pickupLocation"`
	DropOffLocation string `gorm:"size:255;not null" json:"dropOffLocation"`

	Status Status `gorm:"type:varchar(16);index;not null" json:"status"`

	DriverID *string       `gorm:"index;size:36" json:"driverId,omitempty"`
	Driver   *fleet.Driver `gorm:"foreignKey:DriverID" json:"driver,omitempty"`

	VehicleID *string        `gorm:"index;size:36" json:"vehicleId,omitempty"`
	Vehicle   *fleet.Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
