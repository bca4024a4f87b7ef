// Package metrics emits pipeline counter events to CloudWatch. Emission is
// fire and forget: a failed emission is logged and never affects the
// pipeline's exit code.
package metrics

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metric names the pipeline events worth counting.
type Metric string

const (
	MetricInvoked Metric = "Invoked"
	MetricPassed  Metric = "Passed"
	MetricFailed  Metric = "Failed"
)

// Dimensions identify one pipeline invocation. Empty fields are omitted from
// the emitted datum.
type Dimensions struct {
	Repository string
	Workflow   string
	Target     string
	HeadRef    string
}

func (d Dimensions) cloudWatchDimensions() []cwtypes.Dimension {
	var dims []cwtypes.Dimension
	add := func(name, value string) {
		if value != "" {
			dims = append(dims, cwtypes.Dimension{Name: aws.String(name), Value: aws.String(value)})
		}
	}
	add("Repository", d.Repository)
	add("Workflow", d.Workflow)
	add("Target", d.Target)
	add("HeadRef", d.HeadRef)
	return dims
}

// Emitter is the notification interface the pipeline calls after deciding an
// outcome.
type Emitter interface {
	Emit(ctx context.Context, m Metric, value float64, dims Dimensions)
}

// Noop discards all emissions. Used when metrics are disabled or the
// CloudWatch client cannot be built.
type Noop struct{}

// Emit does nothing.
func (Noop) Emit(context.Context, Metric, float64, Dimensions) {}

// CloudWatch emits each event as one PutMetricData call under a fixed
// namespace.
type CloudWatch struct {
	client    *cloudwatch.Client
	namespace string
}

// NewCloudWatch builds a CloudWatch emitter from the ambient AWS
// configuration (environment, shared config, instance role).
func NewCloudWatch(ctx context.Context, namespace string) (*CloudWatch, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &CloudWatch{
		client:    cloudwatch.NewFromConfig(cfg),
		namespace: namespace,
	}, nil
}

// Emit publishes one counter datum. Errors are logged, not returned.
func (c *CloudWatch) Emit(ctx context.Context, m Metric, value float64, dims Dimensions) {
	_, err := c.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(c.namespace),
		MetricData: []cwtypes.MetricDatum{{
			MetricName: aws.String(string(m)),
			Value:      aws.Float64(value),
			Unit:       cwtypes.StandardUnitCount,
			Dimensions: dims.cloudWatchDimensions(),
		}},
	})
	if err != nil {
		slog.Warn("metric emission failed", "metric", string(m), "error", err)
	}
}
