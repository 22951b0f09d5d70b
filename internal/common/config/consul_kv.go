package config

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/consul/api"
)

// LoadConfigFromConsulKV 从 Consul KV 拉取 job-service 配置。
//
// value 必须是和配置文件同构的 JSON（server/database/consul/jaeger/log 段）；
// 解析时叠加在 defaultConfig 之上，KV 里省略的段落落回默认值。
// 只做一次性读取，不 watch；动态刷新由上层自行决定。
func LoadConfigFromConsulKV(consulHost string, consulPort int, key string) (*Config, error) {
	if key == "" {
		return nil, fmt.Errorf("config: consul kv key is empty")
	}

	c, err := api.NewClient(&api.Config{
		Address: fmt.Sprintf("%s:%d", consulHost, consulPort),
	})
	if err != nil {
		return nil, fmt.Errorf("config: create consul client: %w", err)
	}

	pair, _, err := c.KV().Get(key, nil)
	if err != nil {
		return nil, fmt.Errorf("config: read consul kv %s: %w", key, err)
	}
	if pair == nil || len(pair.Value) == 0 {
		return nil, fmt.Errorf("config: consul kv %s is empty or missing", key)
	}

	cfg := defaultConfig()
	if err := json.Unmarshal(pair.Value, cfg); err != nil {
		return nil, fmt.Errorf("config: parse consul kv %s: %w", key, err)
	}
	return cfg, nil
}
