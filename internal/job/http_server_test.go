package job

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FleetSched/FleetSched/internal/fleet"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *MemStore) {
	t.Helper()

	store := NewMemStore()
	r := mux.NewRouter()
	NewHTTPServer(NewService(store), nil).Register(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, store
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, out.Bytes()
}

func TestCreateThenListByDate(t *testing.T) {
	srv, _ := newTestServer(t)

	in := map[string]string{
		"clientName":      "ABC Corporation",
		"pickupDate":      "2025-03-05",
		"pickupTime":      "10:00",
		"pickupLocation":  "Warehouse 4",
		"dropOffLocation": "Pier 12",
	}
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/jobs", in)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created Job
	require.NoError(t, json.Unmarshal(body, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, StatusScheduled, created.Status)
	require.NotNil(t, created.Client)
	assert.Equal(t, "ABC Corporation", created.Client.Name)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/jobs?date=2025-03-05", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var jobs []Job
	require.NoError(t, json.Unmarshal(body, &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, created.ID, jobs[0].ID)

	// 空结果集序列化为 []，不是 null
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/jobs?date=2030-01-01", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(body))
}

func TestCreateJobBadRequest(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/jobs", map[string]string{
		"clientName": "ABC Corporation",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp map[string]string
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Contains(t, errResp["error"], "pickupDate")
}

func TestListByDateMissingParam(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/jobs", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestJobByIDNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/jobs/no-such-id", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp map[string]string
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.NotEmpty(t, errResp["error"])
}

func TestUpdateStatusOverHTTP(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/jobs", map[string]string{
		"clientName":      "XYZ Ltd",
		"pickupDate":      "2025-03-05",
		"pickupTime":      "14:00",
		"pickupLocation":  "Office",
		"dropOffLocation": "Airport",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created Job
	require.NoError(t, json.Unmarshal(body, &created))

	statusURL := fmt.Sprintf("%s/api/jobs/%s/status", srv.URL, created.ID)

	// 非法状态值：400，且任务保持原状态
	resp, _ = doJSON(t, http.MethodPatch, statusURL, map[string]string{"status": "BOGUS"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/jobs/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got Job
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, StatusScheduled, got.Status)

	resp, body = doJSON(t, http.MethodPatch, statusURL, map[string]string{"status": "IN_PROGRESS"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, StatusInProgress, got.Status)

	// 状态机拒绝回退
	resp, _ = doJSON(t, http.MethodPatch, statusURL, map[string]string{"status": "SCHEDULED"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// 未知任务：404
	resp, _ = doJSON(t, http.MethodPatch, srv.URL+"/api/jobs/no-such-id/status", map[string]string{"status": "IN_PROGRESS"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAssignEndpoints(t *testing.T) {
	srv, store := newTestServer(t)

	store.AddDriver(fleet.Driver{ID: "d1", Name: "John Doe", Email: "john@fleet.com", IsActive: true})
	store.AddVehicle(fleet.Vehicle{ID: "v1", Make: "Ford", Model: "Transit", Plate: "ABC123", IsActive: true})

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/jobs", map[string]string{
		"clientName":      "ABC Corporation",
		"pickupDate":      "2025-03-05",
		"pickupTime":      "10:00",
		"pickupLocation":  "A",
		"dropOffLocation": "B",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created Job
	require.NoError(t, json.Unmarshal(body, &created))

	resp, body = doJSON(t, http.MethodPatch, srv.URL+"/api/jobs/"+created.ID+"/assign-driver", map[string]string{"driverId": "d1"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var got Job
	require.NoError(t, json.Unmarshal(body, &got))
	require.NotNil(t, got.Driver)
	assert.Equal(t, "John Doe", got.Driver.Name)

	resp, _ = doJSON(t, http.MethodPatch, srv.URL+"/api/jobs/"+created.ID+"/assign-vehicle", map[string]string{"vehicleId": "v1"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPatch, srv.URL+"/api/jobs/"+created.ID+"/assign-driver", map[string]string{"driverId": "missing"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResourceEndpoints(t *testing.T) {
	srv, store := newTestServer(t)

	store.AddDriver(fleet.Driver{ID: "d1", Name: "Jane Smith", Email: "jane@fleet.com", IsActive: true})
	store.AddVehicle(fleet.Vehicle{ID: "v1", Make: "Mercedes-Benz", Model: "Sprinter", Plate: "XYZ789", IsActive: true})

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/jobs/resource/drivers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var drivers []fleet.Driver
	require.NoError(t, json.Unmarshal(body, &drivers))
	require.Len(t, drivers, 1)
	assert.Equal(t, "Jane Smith", drivers[0].Name)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/jobs/resource/vehicles", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var vehicles []fleet.Vehicle
	require.NoError(t, json.Unmarshal(body, &vehicles))
	require.Len(t, vehicles, 1)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/jobs/resource/clients", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(body))
}
