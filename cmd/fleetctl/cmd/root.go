package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/FleetSched/FleetSched/internal/apiclient"
	"github.com/FleetSched/FleetSched/internal/common/discovery"
	"github.com/FleetSched/FleetSched/internal/common/logger"
	"github.com/spf13/cobra"
)

// job-service 在 Consul 里的注册名。
const serviceName = "job-service"

var (
	apiURL     string
	consulAddr string
	timeout    time.Duration
)

// RootCmd fleetctl 的根命令，所有子命令在这里挂载。
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fleetctl",
		Short: "fleetctl views and maintains fleet scheduling jobs.",
	}

	cmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:5000", "job-service base URL")
	cmd.PersistentFlags().StringVar(&consulAddr, "consul", "", "consul address (host:port); resolves job-service and overrides --api")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	cmd.AddCommand(
		scheduleCmd(),
		createCmd(),
		statusCmd(),
		assignCmd(),
		getCmd(),
		resourcesCmd(),
	)

	return cmd
}

// newService 装配数据访问层：真实后端 + 按探测降级的 mock。
func newService() (apiclient.Service, error) {
	log, err := logger.NewLogger("logrus", "info", "text", "stdout", "")
	if err != nil {
		return nil, err
	}

	base := apiURL
	if consulAddr != "" {
		resolved, err := resolveViaConsul(consulAddr)
		if err != nil {
			// 解析失败不中断：落回 --api，真正不可用时由 Fallback 降级
			log.Warnf("consul resolve failed: %v, falling back to --api", err)
		} else {
			base = "http://" + resolved
		}
	}

	real := apiclient.NewClient(base, timeout)
	return apiclient.NewFallback(real, log), nil
}

func resolveViaConsul(addr string) (string, error) {
	host := addr
	port := 8500
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		host = addr[:i]
		p, err := strconv.Atoi(addr[i+1:])
		if err != nil {
			return "", fmt.Errorf("invalid consul address %q", addr)
		}
		port = p
	}

	client, err := discovery.NewConsulClient(host, port)
	if err != nil {
		return "", err
	}
	return discovery.ResolveService(client, serviceName)
}
