package job

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/FleetSched/FleetSched/internal/fleet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() CreateJobInput {
	return CreateJobInput{
		ClientName:      "Acme",
		PickupDate:      "2025-01-10",
		PickupTime:      "09:00",
		PickupLocation:  "A",
		DropOffLocation: "B",
	}
}

func TestCreateJobForcesScheduledStatus(t *testing.T) {
	svc := NewService(NewMemStore())

	j, err := svc.CreateJob(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, j.Status)
	assert.NotEmpty(t, j.ID)
	require.NotNil(t, j.Client)
	assert.Equal(t, "Acme", j.Client.Name)
	assert.Nil(t, j.Driver)
	assert.Nil(t, j.Vehicle)

	j2, err := svc.CreateJob(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEqual(t, j.ID, j2.ID, "every job must get a fresh id")
}

func TestCreateJobValidation(t *testing.T) {
	svc := NewService(NewMemStore())

	cases := []struct {
		name   string
		mutate func(*CreateJobInput)
	}{
		{"missing clientName", func(in *CreateJobInput) { in.ClientName = "" }},
		{"missing pickupDate", func(in *CreateJobInput) { in.PickupDate = "" }},
		{"missing pickupTime", func(in *CreateJobInput) { in.PickupTime = "  " }},
		{"missing pickupLocation", func(in *CreateJobInput) { in.PickupLocation = "" }},
		{"missing dropOffLocation", func(in *CreateJobInput) { in.DropOffLocation = "" }},
		{"malformed pickupDate", func(in *CreateJobInput) { in.PickupDate = "10/01/2025" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.CreateJob(context.Background(), in)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestCreateJobReusesClientByName(t *testing.T) {
	store := NewMemStore()
	svc := NewService(store)

	_, err := svc.CreateJob(context.Background(), validInput())
	require.NoError(t, err)
	require.Equal(t, 1, store.ClientCount())

	_, err = svc.CreateJob(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, 1, store.ClientCount(), "second job with same clientName must reuse the client")

	in := validInput()
	in.ClientName = "Globex"
	_, err = svc.CreateJob(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 2, store.ClientCount())
}

func TestConcurrentCreateSameClientName(t *testing.T) {
	store := NewMemStore()
	svc := NewService(store)
	ctx := context.Background()

	// 并发提交同一个此前不存在的客户名，find-or-create 必须收敛到一条客户记录
	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateJob(ctx, validInput())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 1, store.ClientCount(), "concurrent submissions with the same new clientName must not duplicate the client")

	jobs, err := svc.AllJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, n)
	for _, j := range jobs {
		require.NotNil(t, j.Client)
		assert.Equal(t, "Acme", j.Client.Name)
	}
}

func TestJobsByDateOrderingAndEmpty(t *testing.T) {
	svc := NewService(NewMemStore())
	ctx := context.Background()

	for _, tm := range []string{"14:30", "09:00", "17:15"} {
		in := validInput()
		in.PickupTime = tm
		_, err := svc.CreateJob(ctx, in)
		require.NoError(t, err)
	}
	other := validInput()
	other.PickupDate = "2025-01-11"
	_, err := svc.CreateJob(ctx, other)
	require.NoError(t, err)

	jobs, err := svc.JobsByDate(ctx, "2025-01-10")
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "09:00", jobs[0].PickupTime)
	assert.Equal(t, "14:30", jobs[1].PickupTime)
	assert.Equal(t, "17:15", jobs[2].PickupTime)

	empty, err := svc.JobsByDate(ctx, "2030-06-01")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = svc.JobsByDate(ctx, "")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = svc.JobsByDate(ctx, "not-a-date")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestUpdateStatus(t *testing.T) {
	svc := NewService(NewMemStore())
	ctx := context.Background()

	j, err := svc.CreateJob(ctx, validInput())
	require.NoError(t, err)

	// 未知 id 必须是 NotFound，而不是 500 或静默成功
	_, err = svc.UpdateStatus(ctx, "missing-id", "IN_PROGRESS")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	// 非法状态值在访问存储之前就被拒绝
	_, err = svc.UpdateStatus(ctx, j.ID, "BOGUS")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	got, err := svc.JobByID(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, got.Status, "rejected update must not mutate the store")

	updated, err := svc.UpdateStatus(ctx, j.ID, "IN_PROGRESS")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, updated.Status)

	// 幂等：同状态重复更新返回同样的可观测结果
	again, err := svc.UpdateStatus(ctx, j.ID, "IN_PROGRESS")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, again.Status)
	assert.Equal(t, updated.ID, again.ID)

	// 状态机：IN_PROGRESS 不能回到 SCHEDULED
	_, err = svc.UpdateStatus(ctx, j.ID, "SCHEDULED")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = svc.UpdateStatus(ctx, j.ID, "COMPLETED")
	require.NoError(t, err)

	// 终态拒绝任何流转
	_, err = svc.UpdateStatus(ctx, j.ID, "IN_PROGRESS")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestAssignDriverAndVehicle(t *testing.T) {
	store := NewMemStore()
	svc := NewService(store)
	ctx := context.Background()

	store.AddDriver(fleet.Driver{ID: "d1", Name: "John Doe", Email: "john@fleet.com", IsActive: true})
	store.AddDriver(fleet.Driver{ID: "d2", Name: "Jane Smith", Email: "jane@fleet.com", IsActive: false})
	store.AddVehicle(fleet.Vehicle{ID: "v1", Make: "Ford", Model: "Transit", Plate: "ABC123", IsActive: true})

	j, err := svc.CreateJob(ctx, validInput())
	require.NoError(t, err)

	// 正常派单
	assigned, err := svc.AssignDriver(ctx, j.ID, "d1")
	require.NoError(t, err)
	require.NotNil(t, assigned.DriverID)
	assert.Equal(t, "d1", *assigned.DriverID)
	require.NotNil(t, assigned.Driver)
	assert.Equal(t, "John Doe", assigned.Driver.Name)

	assigned, err = svc.AssignVehicle(ctx, j.ID, "v1")
	require.NoError(t, err)
	require.NotNil(t, assigned.VehicleID)
	assert.Equal(t, "v1", *assigned.VehicleID)

	// 离职司机拒绝
	_, err = svc.AssignDriver(ctx, j.ID, "d2")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	// 不存在的资源是 NotFound
	_, err = svc.AssignDriver(ctx, j.ID, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = svc.AssignVehicle(ctx, j.ID, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	// 终态任务拒绝派单
	_, err = svc.UpdateStatus(ctx, j.ID, "CANCELLED")
	require.NoError(t, err)
	_, err = svc.AssignDriver(ctx, j.ID, "d1")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestResourceListings(t *testing.T) {
	store := NewMemStore()
	svc := NewService(store)
	ctx := context.Background()

	store.AddDriver(fleet.Driver{ID: "d1", Name: "Zoe", Email: "zoe@fleet.com", IsActive: true})
	store.AddDriver(fleet.Driver{ID: "d2", Name: "Adam", Email: "adam@fleet.com", IsActive: true})
	store.AddDriver(fleet.Driver{ID: "d3", Name: "Gone", Email: "gone@fleet.com", IsActive: false})
	store.AddVehicle(fleet.Vehicle{ID: "v1", Make: "Mercedes-Benz", Model: "Sprinter", Plate: "XYZ789", IsActive: true})
	store.AddVehicle(fleet.Vehicle{ID: "v2", Make: "Ford", Model: "Transit", Plate: "ABC123", IsActive: true})

	drivers, err := svc.Drivers(ctx)
	require.NoError(t, err)
	require.Len(t, drivers, 2, "inactive drivers must be excluded")
	assert.Equal(t, "Adam", drivers[0].Name)
	assert.Equal(t, "Zoe", drivers[1].Name)

	vehicles, err := svc.Vehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, "Ford", vehicles[0].Make)
}

func TestReset(t *testing.T) {
	store := NewMemStore()
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.CreateJob(ctx, validInput())
	require.NoError(t, err)
	require.Equal(t, 1, store.ClientCount())

	require.NoError(t, svc.Reset(ctx))
	assert.Equal(t, 0, store.ClientCount())
	jobs, err := svc.AllJobs(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}
