package observability

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

const meterName = "github.com/matzehuels/sprout"

// OTelHooks records pipeline and cache events as OpenTelemetry metrics.
//
// Stage durations go to one histogram split by a "stage" attribute; mesh
// sizes and cache traffic go to counters. Every instrument carries a
// "success" attribute where an error is reported.
type OTelHooks struct {
	stageDuration metric.Float64Histogram
	stageTotal    metric.Int64Counter
	genomeNodes   metric.Int64Histogram
	meshTriangles metric.Int64Histogram
	cacheOps      metric.Int64Counter
	cacheBytes    metric.Int64Counter
}

// NewOTelHooks creates the instruments on a meter from mp. A nil mp uses the
// global provider.
func NewOTelHooks(mp metric.MeterProvider) (*OTelHooks, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(meterName)

	h := &OTelHooks{}
	var err error
	if h.stageDuration, err = meter.Float64Histogram(
		"sprout_stage_duration_seconds",
		metric.WithDescription("Duration of pipeline stages"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}
	if h.stageTotal, err = meter.Int64Counter(
		"sprout_stage_total",
		metric.WithDescription("Total number of pipeline stage runs"),
	); err != nil {
		return nil, err
	}
	if h.genomeNodes, err = meter.Int64Histogram(
		"sprout_genome_nodes",
		metric.WithDescription("Node count of genomes entering a stage"),
	); err != nil {
		return nil, err
	}
	if h.meshTriangles, err = meter.Int64Histogram(
		"sprout_mesh_triangles",
		metric.WithDescription("Triangle count of generated bodies after welding"),
	); err != nil {
		return nil, err
	}
	if h.cacheOps, err = meter.Int64Counter(
		"sprout_cache_operations_total",
		metric.WithDescription("Cache lookups and writes by outcome"),
	); err != nil {
		return nil, err
	}
	if h.cacheBytes, err = meter.Int64Counter(
		"sprout_cache_written_bytes_total",
		metric.WithDescription("Bytes written to the cache"),
		metric.WithUnit("By"),
	); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *OTelHooks) recordStage(ctx context.Context, stage string, d time.Duration, err error, extra ...attribute.KeyValue) {
	attrs := metric.WithAttributes(append([]attribute.KeyValue{
		attribute.String("stage", stage),
		attribute.Bool("success", err == nil),
	}, extra...)...)
	h.stageDuration.Record(ctx, d.Seconds(), attrs)
	h.stageTotal.Add(ctx, 1, attrs)
}

// OnMutateStart implements [PipelineHooks].
func (h *OTelHooks) OnMutateStart(ctx context.Context, nodeCount int) {
	h.genomeNodes.Record(ctx, int64(nodeCount), metric.WithAttributes(attribute.String("stage", "mutate")))
}

// OnMutateComplete implements [PipelineHooks].
func (h *OTelHooks) OnMutateComplete(ctx context.Context, _ int, d time.Duration, err error) {
	h.recordStage(ctx, "mutate", d, err)
}

// OnGenerateStart implements [PipelineHooks].
func (h *OTelHooks) OnGenerateStart(ctx context.Context, nodeCount, _ int) {
	h.genomeNodes.Record(ctx, int64(nodeCount), metric.WithAttributes(attribute.String("stage", "generate")))
}

// OnGenerateComplete implements [PipelineHooks].
func (h *OTelHooks) OnGenerateComplete(ctx context.Context, _, triangles int, d time.Duration, err error) {
	h.recordStage(ctx, "generate", d, err)
	if err == nil {
		h.meshTriangles.Record(ctx, int64(triangles))
	}
}

// OnRenderStart implements [PipelineHooks].
func (h *OTelHooks) OnRenderStart(context.Context, []string) {}

// OnRenderComplete implements [PipelineHooks].
func (h *OTelHooks) OnRenderComplete(ctx context.Context, formats []string, d time.Duration, err error) {
	h.recordStage(ctx, "render", d, err, attribute.String("formats", strings.Join(formats, ",")))
}

// OnCacheHit implements [CacheHooks].
func (h *OTelHooks) OnCacheHit(ctx context.Context, keyType string) {
	h.cacheOps.Add(ctx, 1, metric.WithAttributes(
		attribute.String("key_type", keyType), attribute.String("outcome", "hit")))
}

// OnCacheMiss implements [CacheHooks].
func (h *OTelHooks) OnCacheMiss(ctx context.Context, keyType string) {
	h.cacheOps.Add(ctx, 1, metric.WithAttributes(
		attribute.String("key_type", keyType), attribute.String("outcome", "miss")))
}

// OnCacheSet implements [CacheHooks].
func (h *OTelHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	attrs := metric.WithAttributes(attribute.String("key_type", keyType), attribute.String("outcome", "set"))
	h.cacheOps.Add(ctx, 1, attrs)
	h.cacheBytes.Add(ctx, int64(size), metric.WithAttributes(attribute.String("key_type", keyType)))
}

var (
	_ PipelineHooks = (*OTelHooks)(nil)
	_ CacheHooks    = (*OTelHooks)(nil)
)

// SetupStdoutMetrics installs a global SDK meter provider that writes
// collected metrics as JSON to w. The returned shutdown func flushes and must
// be called before exit.
func SetupStdoutMetrics(w io.Writer, version string) (func(context.Context) error, error) {
	exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(w), stdoutmetric.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create stdout metric exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", "sprout"),
		attribute.String("service.version", version),
	)
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	)
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}
