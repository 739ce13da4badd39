package metrics

import (
	"context"

	"github.com/golangdaddy/hillclimber/pkg/sim"
	"github.com/golangdaddy/hillclimber/pkg/vehicle"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/golangdaddy/hillclimber/pkg/metrics"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Recorder publishes gameplay counters through OpenTelemetry.
// Uses the global meter provider (no-op if not configured).
type Recorder struct {
	runsStarted metric.Int64Counter
	runsEnded   metric.Int64Counter
	pickups     metric.Int64Counter
	purchases   metric.Int64Counter
	upgrades    metric.Int64Counter
	distance    metric.Int64Histogram
}

// New creates the instruments on m, or on the global meter when m is nil
func New(m metric.Meter) (*Recorder, error) {
	if m == nil {
		m = meter()
	}

	r := &Recorder{}
	var err error

	r.runsStarted, err = m.Int64Counter(
		"hillclimb.runs.started",
		metric.WithDescription("Runs started"),
	)
	if err != nil {
		return nil, err
	}

	r.runsEnded, err = m.Int64Counter(
		"hillclimb.runs.ended",
		metric.WithDescription("Runs ended, by reason"),
	)
	if err != nil {
		return nil, err
	}

	r.pickups, err = m.Int64Counter(
		"hillclimb.pickups",
		metric.WithDescription("Collectibles picked up, by kind"),
	)
	if err != nil {
		return nil, err
	}

	r.purchases, err = m.Int64Counter(
		"hillclimb.shop.purchases",
		metric.WithDescription("Vehicles bought"),
	)
	if err != nil {
		return nil, err
	}

	r.upgrades, err = m.Int64Counter(
		"hillclimb.shop.upgrades",
		metric.WithDescription("Upgrade levels bought, by track"),
	)
	if err != nil {
		return nil, err
	}

	r.distance, err = m.Int64Histogram(
		"hillclimb.run.distance",
		metric.WithDescription("Distance reached per run"),
		metric.WithUnit("{distance}"),
	)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Recorder) OnRunStarted(id vehicle.ID) {
	r.runsStarted.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("vehicle", string(id))))
}

func (r *Recorder) OnPickup(kind sim.PickupKind) {
	r.pickups.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("kind", string(kind))))
}

func (r *Recorder) OnRunEnded(sum sim.Summary) {
	attrs := metric.WithAttributes(
		attribute.String("vehicle", string(sum.Vehicle)),
		attribute.String("reason", string(sum.Reason)),
	)
	r.runsEnded.Add(context.Background(), 1, attrs)
	r.distance.Record(context.Background(), int64(sum.Distance), attrs)
}

// Purchase counts a bought vehicle
func (r *Recorder) Purchase(id vehicle.ID) {
	r.purchases.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("vehicle", string(id))))
}

// Upgrade counts a bought upgrade level
func (r *Recorder) Upgrade(track string, level int) {
	r.upgrades.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String("track", track),
			attribute.Int("level", level),
		))
}
