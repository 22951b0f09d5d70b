package main

import (
	"flag"
	"fmt"
	"net"
	"strconv"

	"github.com/FleetSched/FleetSched/internal/common/config"
	"github.com/FleetSched/FleetSched/internal/common/db"
	"github.com/FleetSched/FleetSched/internal/common/logger"
	"github.com/FleetSched/FleetSched/internal/common/server"
	"github.com/FleetSched/FleetSched/internal/common/tracing"
	"github.com/FleetSched/FleetSched/internal/fleet"
	"github.com/FleetSched/FleetSched/internal/job"
	"github.com/gorilla/mux"
)

var (
	configPath  = flag.String("config", "configs/job-service.json", "配置文件路径")
	consulKVKey = flag.String("consul-kv-key", "", "从 Consul KV 加载配置的 key（优先于 -config）")
	consulAddr  = flag.String("consul-addr", "localhost:8500", "Consul 地址，供 -consul-kv-key 使用")
)

func main() {
	flag.Parse()

	// 加载配置：优先 Consul KV，其次本地文件
	var (
		cfg *config.Config
		err error
	)
	if *consulKVKey != "" {
		host, port, splitErr := splitHostPort(*consulAddr)
		if splitErr != nil {
			panic(fmt.Sprintf("invalid -consul-addr: %v", splitErr))
		}
		cfg, err = config.LoadConfigFromConsulKV(host, port, *consulKVKey)
	} else {
		cfg, err = config.LoadConfig(*configPath)
	}
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 初始化日志
	log, err := logger.NewLogger(cfg.Log.Engine, cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	// 初始化链路追踪
	tracer, closer, err := tracing.InitTracer(
		cfg.Server.Name,
		cfg.Jaeger.Endpoint,
		cfg.Jaeger.Sampler,
	)
	if err != nil {
		log.Warnf("failed to init tracer: %v", err)
	} else {
		defer closer.Close()
	}
	_ = tracer

	// 初始化数据库
	gormDB, err := db.NewMySQL(
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Database,
		cfg.Database.MaxIdle,
		cfg.Database.MaxOpen,
	)
	if err != nil {
		log.Fatalf("failed to init mysql: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&fleet.Client{},
		&fleet.Driver{},
		&fleet.Vehicle{},
		&job.Job{},
	); err != nil {
		log.Fatalf("failed to migrate mysql schema: %v", err)
	}

	// 启动统一的 HTTP 服务模板
	jobServer := job.NewHTTPServerFromDB(gormDB, log)
	if err := server.RunHTTPServer(cfg, log, func(r *mux.Router) error {
		jobServer.Register(r)
		return nil
	}); err != nil {
		log.Fatalf("job-service exited with error: %v", err)
	}
}

func splitHostPort(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port %q", portStr)
	}
	return host, port, nil
}
