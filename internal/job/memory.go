package job

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/FleetSched/FleetSched/internal/fleet"
	"github.com/google/uuid"
)

// MemStore 纯内存的 Store 实现：单测、以及客户端降级时的 mock 数据源使用。
// 进程内状态，不与真实后端共享。
type MemStore struct {
	mu sync.RWMutex

	jobs          map[string]*Job
	clients       map[string]*fleet.Client
	clientsByName map[string]string
	drivers       map[string]*fleet.Driver
	vehicles      map[string]*fleet.Vehicle
}

func NewMemStore() *MemStore {
	return &MemStore{
		jobs:          make(map[string]*Job),
		clients:       make(map[string]*fleet.Client),
		clientsByName: make(map[string]string),
		drivers:       make(map[string]*fleet.Driver),
		vehicles:      make(map[string]*fleet.Vehicle),
	}
}

// AddDriver 预置司机（种子/测试）。
func (m *MemStore) AddDriver(d fleet.Driver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	m.drivers[d.ID] = &d
}

// AddVehicle 预置车辆（种子/测试）。
func (m *MemStore) AddVehicle(v fleet.Vehicle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	m.vehicles[v.ID] = &v
}

// ClientCount 当前客户数（客户去重断言用）。
func (m *MemStore) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

func (m *MemStore) CreateForClient(ctx context.Context, clientName string, j *Job) (*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.jobs[j.ID]; exists {
		return nil, fmt.Errorf("job %s already exists", j.ID)
	}

	now := time.Now()
	clientID, ok := m.clientsByName[clientName]
	if !ok {
		c := &fleet.Client{ID: uuid.NewString(), Name: clientName, CreatedAt: now, UpdatedAt: now}
		m.clients[c.ID] = c
		m.clientsByName[c.Name] = c.ID
		clientID = c.ID
	}

	j.ClientID = clientID
	j.CreatedAt = now
	j.UpdatedAt = now
	m.jobs[j.ID] = j

	return m.attachLocked(j), nil
}

func (m *MemStore) ListByDate(ctx context.Context, date string) ([]Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Job, 0)
	for _, j := range m.jobs {
		if j.PickupDate == date {
			result = append(result, *m.attachLocked(j))
		}
	}
	sort.Slice(result, func(i, k int) bool {
		return result[i].PickupTime < result[k].PickupTime
	})
	return result, nil
}

func (m *MemStore) ListAll(ctx context.Context) ([]Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		result = append(result, *m.attachLocked(j))
	}
	sort.Slice(result, func(i, k int) bool {
		if result[i].PickupDate != result[k].PickupDate {
			return result[i].PickupDate > result[k].PickupDate
		}
		return result[i].PickupTime < result[k].PickupTime
	})
	return result, nil
}

func (m *MemStore) GetByID(ctx context.Context, id string) (*Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	j, exists := m.jobs[id]
	if !exists {
		return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	return m.attachLocked(j), nil
}

func (m *MemStore) Save(ctx context.Context, j *Job) (*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.jobs[j.ID]; !exists {
		return nil, fmt.Errorf("job %s: %w", j.ID, ErrNotFound)
	}
	j.UpdatedAt = time.Now()
	stored := *j
	m.jobs[j.ID] = &stored
	return m.attachLocked(&stored), nil
}

func (m *MemStore) FindDriver(ctx context.Context, id string) (*fleet.Driver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, exists := m.drivers[id]
	if !exists {
		return nil, fmt.Errorf("driver %s: %w", id, ErrNotFound)
	}
	cp := *d
	return &cp, nil
}

func (m *MemStore) FindVehicle(ctx context.Context, id string) (*fleet.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, exists := m.vehicles[id]
	if !exists {
		return nil, fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
	}
	cp := *v
	return &cp, nil
}

func (m *MemStore) ListDrivers(ctx context.Context) ([]fleet.Driver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]fleet.Driver, 0, len(m.drivers))
	for _, d := range m.drivers {
		if d.IsActive {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, k int) bool { return result[i].Name < result[k].Name })
	return result, nil
}

func (m *MemStore) ListVehicles(ctx context.Context) ([]fleet.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]fleet.Vehicle, 0, len(m.vehicles))
	for _, v := range m.vehicles {
		if v.IsActive {
			result = append(result, *v)
		}
	}
	sort.Slice(result, func(i, k int) bool { return result[i].Make < result[k].Make })
	return result, nil
}

func (m *MemStore) ListClients(ctx context.Context) ([]fleet.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]fleet.Client, 0, len(m.clients))
	for _, c := range m.clients {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, k int) bool { return result[i].Name < result[k].Name })
	return result, nil
}

func (m *MemStore) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.jobs = make(map[string]*Job)
	m.clients = make(map[string]*fleet.Client)
	m.clientsByName = make(map[string]string)
	return nil
}

// attachLocked 返回带关联的副本；调用方必须已持有锁。
func (m *MemStore) attachLocked(j *Job) *Job {
	cp := *j
	if c, ok := m.clients[j.ClientID]; ok {
		cc := *c
		cp.Client = &cc
	}
	if j.DriverID != nil {
		if d, ok := m.drivers[*j.DriverID]; ok {
			dd := *d
			cp.Driver = &dd
		}
	}
	if j.VehicleID != nil {
		if v, ok := m.vehicles[*j.VehicleID]; ok {
			vv := *v
			cp.Vehicle = &vv
		}
	}
	return &cp
}
