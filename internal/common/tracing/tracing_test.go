package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
)

func TestInitTracerRejectsEmptyServiceName(t *testing.T) {
	if _, _, err := InitTracer("", "localhost:6831", 1.0); err == nil {
		t.Fatal("expected an error for empty service name")
	}
}

func TestInitTracerSetsGlobalTracer(t *testing.T) {
	// 采样参数越界会被截断到 [0,1]，不应导致初始化失败
	tracer, closer, err := InitTracer("job-service", "localhost:6831", 2.0)
	if err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	defer closer.Close()

	if tracer == nil {
		t.Fatal("expected a tracer")
	}
	if opentracing.GlobalTracer() != tracer {
		t.Fatal("expected the tracer to be registered globally")
	}
}
