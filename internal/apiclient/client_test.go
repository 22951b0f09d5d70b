package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FleetSched/FleetSched/internal/fleet"
	"github.com/FleetSched/FleetSched/internal/job"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backendForTest 把真实的任务服务挂到 httptest 上，含 /health。
func backendForTest(t *testing.T) (*httptest.Server, *job.MemStore) {
	t.Helper()

	store := job.NewMemStore()
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","message":"Fleet scheduling API is running"}`))
	}).Methods(http.MethodGet)
	job.NewHTTPServer(job.NewService(store), nil).Register(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, store
}

func TestClientRoundTrip(t *testing.T) {
	srv, store := backendForTest(t)
	store.AddDriver(fleet.Driver{ID: "d1", Name: "John Doe", Email: "john@fleet.com", IsActive: true})
	c := NewClient(srv.URL, 5*time.Second)
	ctx := context.Background()

	assert.True(t, c.Health(ctx))

	created, err := c.CreateJob(ctx, job.CreateJobInput{
		ClientName:      "ABC Corporation",
		PickupDate:      "2025-03-05",
		PickupTime:      "10:00",
		PickupLocation:  "Warehouse 4",
		DropOffLocation: "Pier 12",
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusScheduled, created.Status)
	require.NotNil(t, created.Client)
	assert.Equal(t, "ABC Corporation", created.Client.Name)

	jobs, err := c.JobsByDate(ctx, "2025-03-05")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, created.ID, jobs[0].ID)

	got, err := c.JobByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	assigned, err := c.AssignDriver(ctx, created.ID, "d1")
	require.NoError(t, err)
	require.NotNil(t, assigned.Driver)
	assert.Equal(t, "John Doe", assigned.Driver.Name)

	updated, err := c.UpdateStatus(ctx, created.ID, "IN_PROGRESS")
	require.NoError(t, err)
	assert.Equal(t, job.StatusInProgress, updated.Status)

	sched, err := c.DailySchedule(ctx, "2025-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-05", sched.Date)
	require.Len(t, sched.Jobs, 1)
}

func TestClientMapsNotFound(t *testing.T) {
	srv, _ := backendForTest(t)
	c := NewClient(srv.URL, 5*time.Second)
	ctx := context.Background()

	_, err := c.JobByID(ctx, "no-such-id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, job.ErrNotFound))

	_, err = c.UpdateStatus(ctx, "no-such-id", "IN_PROGRESS")
	require.Error(t, err)
	assert.True(t, errors.Is(err, job.ErrNotFound))
}

func TestClientSurfacesValidationMessage(t *testing.T) {
	srv, _ := backendForTest(t)
	c := NewClient(srv.URL, 5*time.Second)

	_, err := c.CreateJob(context.Background(), job.CreateJobInput{ClientName: "ABC Corporation"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pickupDate")
}

func TestClientHealthDownBackend(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", time.Second)
	assert.False(t, c.Health(context.Background()))
}
