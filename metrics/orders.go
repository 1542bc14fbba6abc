package metrics

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/ttlcache/v3"
	"go.opentelemetry.io/otel/metric"
)

const (
	ORDER_TTL = time.Hour * 24
)

type OrderMetrics struct {
	initiatedCounter metric.Int64Counter
	filledCounter    metric.Int64Counter
	confirmedCounter metric.Int64Counter
	claimedCounter   metric.Int64Counter

	settlementTimeHistogram metric.Float64Histogram
	initiateTimeCache       *ttlcache.Cache[common.Hash, time.Time]

	opts metric.MeasurementOption
}

// NewOrderMetrics initializes metrics tracking the order lifecycle.
func NewOrderMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*OrderMetrics, error) {
	initiatedCounter, err := meter.Int64Counter(
		"settlement.InitiatedOrders",
		metric.WithDescription("Number of orders that entered escrow"),
	)
	if err != nil {
		return nil, err
	}
	filledCounter, err := meter.Int64Counter(
		"settlement.FilledOrders",
		metric.WithDescription("Number of orders filled on this domain"),
	)
	if err != nil {
		return nil, err
	}
	confirmedCounter, err := meter.Int64Counter(
		"settlement.ConfirmedOrders",
		metric.WithDescription("Number of confirmations handled on this domain"),
	)
	if err != nil {
		return nil, err
	}
	claimedCounter, err := meter.Int64Counter(
		"settlement.ClaimedOrders",
		metric.WithDescription("Number of escrows released to fillers"),
	)
	if err != nil {
		return nil, err
	}

	settlementTimeHistogram, err := meter.Float64Histogram("settlement.SettlementTime")
	if err != nil {
		return nil, err
	}

	cache := ttlcache.New(
		ttlcache.WithTTL[common.Hash, time.Time](ORDER_TTL),
	)
	go cache.Start()

	return &OrderMetrics{
		initiatedCounter:        initiatedCounter,
		filledCounter:           filledCounter,
		confirmedCounter:        confirmedCounter,
		claimedCounter:          claimedCounter,
		settlementTimeHistogram: settlementTimeHistogram,
		initiateTimeCache:       cache,
		opts:                    opts,
	}, nil
}

func (m *OrderMetrics) TrackInitiated(orderHash common.Hash) {
	m.initiatedCounter.Add(context.Background(), 1, m.opts)
	m.initiateTimeCache.Set(orderHash, time.Now(), ttlcache.DefaultTTL)
}

func (m *OrderMetrics) TrackFilled(orderHash common.Hash) {
	m.filledCounter.Add(context.Background(), 1, m.opts)
}

func (m *OrderMetrics) TrackConfirmed(orderHash common.Hash) {
	m.confirmedCounter.Add(context.Background(), 1, m.opts)
}

func (m *OrderMetrics) TrackClaimed(orderHash common.Hash) {
	m.claimedCounter.Add(context.Background(), 1, m.opts)

	start := m.initiateTimeCache.Get(orderHash)
	if start == nil {
		return
	}
	m.settlementTimeHistogram.Record(context.Background(), time.Since(start.Value()).Seconds(), m.opts)
	m.initiateTimeCache.Delete(orderHash)
}
