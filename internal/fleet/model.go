package fleet

import "time"

// Client 是 clients 表的 GORM 模型。
// name 是业务上的去重键：创建任务时按名精确匹配复用，不存在才新建。
// 唯一索引兜底并发创建同名客户的竞态。
type Client struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:128;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Driver 是 drivers 表的 GORM 模型（最小可用）。
type Driver struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:128;not null" json:"email"`
	Phone     string    `gorm:"size:32" json:"phone,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Vehicle 是 vehicles 表的 GORM 模型。
type Vehicle struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Make      string    `gorm:"size:64;not null" json:"make"`
	Model     string    `gorm:"size:64;not null" json:"model"`
	Year      int       `gorm:"default:0" json:"year,omitempty"`
	Plate     string    `gorm:"uniqueIndex;size:32;not null" json:"plate"`
	VIN       string    `gorm:"size:64" json:"vin,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
