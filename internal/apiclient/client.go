package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/FleetSched/FleetSched/internal/fleet"
	"github.com/FleetSched/FleetSched/internal/job"
)

// DefaultProbeTimeout 存活探测的超时上限。
const DefaultProbeTimeout = 5 * time.Second

// Client 真实后端的 HTTP 实现。
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 创建后端客户端。baseURL 形如 http://localhost:5000。
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Health 探测后端存活。每次调用独立探测，不缓存结果。
func (c *Client) Health(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, DefaultProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *Client) CreateJob(ctx context.Context, in job.CreateJobInput) (*job.Job, error) {
	var j job.Job
	if err := c.do(ctx, http.MethodPost, "/api/jobs", in, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

func (c *Client) JobsByDate(ctx context.Context, date string) ([]job.Job, error) {
	jobs := make([]job.Job, 0)
	path := "/api/jobs?date=" + url.QueryEscape(date)
	if err := c.do(ctx, http.MethodGet, path, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) DailySchedule(ctx context.Context, date string) (*DailySchedule, error) {
	jobs, err := c.JobsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return &DailySchedule{Date: date, Jobs: jobs}, nil
}

func (c *Client) JobByID(ctx context.Context, id string) (*job.Job, error) {
	var j job.Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+url.PathEscape(id), nil, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id, status string) (*job.Job, error) {
	body := map[string]string{"status": status}
	var j job.Job
	path := "/api/jobs/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, body, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

func (c *Client) AssignDriver(ctx context.Context, id, driverID string) (*job.Job, error) {
	body := map[string]string{"driverId": driverID}
	var j job.Job
	path := "/api/jobs/" + url.PathEscape(id) + "/assign-driver"
	if err := c.do(ctx, http.MethodPatch, path, body, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

func (c *Client) AssignVehicle(ctx context.Context, id, vehicleID string) (*job.Job, error) {
	body := map[string]string{"vehicleId": vehicleID}
	var j job.Job
	path := "/api/jobs/" + url.PathEscape(id) + "/assign-vehicle"
	if err := c.do(ctx, http.MethodPatch, path, body, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

func (c *Client) Drivers(ctx context.Context) ([]fleet.Driver, error) {
	drivers := make([]fleet.Driver, 0)
	if err := c.do(ctx, http.MethodGet, "/api/jobs/resource/drivers", nil, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

func (c *Client) Vehicles(ctx context.Context) ([]fleet.Vehicle, error) {
	vehicles := make([]fleet.Vehicle, 0)
	if err := c.do(ctx, http.MethodGet, "/api/jobs/resource/vehicles", nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (c *Client) Clients(ctx context.Context) ([]fleet.Client, error) {
	clients := make([]fleet.Client, 0)
	if err := c.do(ctx, http.MethodGet, "/api/jobs/resource/clients", nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// do 发起请求并解码响应。
// 非 2xx 时尽量取出服务端的 {"error": ...}；404 映射为 job.ErrNotFound。
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)

		if resp.StatusCode == http.StatusNotFound {
			if apiErr.Error != "" {
				return fmt.Errorf("%s: %w", apiErr.Error, job.ErrNotFound)
			}
			return job.ErrNotFound
		}
		if apiErr.Error != "" {
			return fmt.Errorf("api returned status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("api returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
