package tracing

import (
	"fmt"
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// InitTracer 初始化 Jaeger tracer 并设为全局。
// server.TracingMiddleware 依赖这里注册的 GlobalTracer 提取/创建 span，
// 未调用或初始化失败时中间件拿到 NoopTracer，请求照常处理。
func InitTracer(serviceName, agentHostPort string, sampler float64) (opentracing.Tracer, io.Closer, error) {
	if serviceName == "" {
		return nil, nil, fmt.Errorf("tracing: service name is empty")
	}
	// 常量采样，参数截断到 [0,1]
	if sampler < 0 {
		sampler = 0
	} else if sampler > 1 {
		sampler = 1
	}

	cfg := &jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: sampler,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           false,
			LocalAgentHostPort: agentHostPort,
		},
	}

	tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(jaeger.StdLogger))
	if err != nil {
		return nil, nil, fmt.Errorf("tracing: init jaeger tracer for %s: %w", serviceName, err)
	}

	opentracing.SetGlobalTracer(tracer)
	return tracer, closer, nil
}
