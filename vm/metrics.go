// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/musicvm/consts"
)

type Metrics struct {
	txsSubmitted  prometheus.Counter
	txsRejected   prometheus.Counter
	txsAccepted   *prometheus.CounterVec
	txsFailed     *prometheus.CounterVec
	stateChanges  prometheus.Counter
	executionTime prometheus.Histogram
	txSubmit      metric.Averager
}

func newMetrics(r prometheus.Registerer) (*Metrics, error) {
	txSubmit, err := metric.NewAverager(
		"vm_tx_submit",
		"time spent submitting a transaction",
		r,
	)
	if err != nil {
		return nil, err
	}
	m := &Metrics{
		txsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vm",
			Name:      "txs_submitted",
			Help:      "number of txs submitted",
		}),
		txsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vm",
			Name:      "txs_rejected",
			Help:      "number of txs rejected before execution",
		}),
		txsAccepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vm",
			Name:      "txs_accepted",
			Help:      "number of txs whose action succeeded",
		}, []string{"action"}),
		txsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vm",
			Name:      "txs_failed",
			Help:      "number of txs whose action failed",
		}, []string{"action"}),
		stateChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vm",
			Name:      "state_changes",
			Help:      "number of state changes",
		}),
		executionTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vm",
			Name:      "execution_time",
			Help:      "time spent executing an action (ns)",
			Buckets:   prometheus.ExponentialBuckets(1_000, 4, 10),
		}),
		txSubmit: txSubmit,
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.txsSubmitted),
		r.Register(m.txsRejected),
		r.Register(m.txsAccepted),
		r.Register(m.txsFailed),
		r.Register(m.stateChanges),
		r.Register(m.executionTime),
	)
	return m, errs.Err
}

func actionLabel(typeID uint8) string {
	switch typeID {
	case consts.CreateTrackID:
		return "create_track"
	case consts.IssueTrackID:
		return "issue_track"
	case consts.TransferTrackID:
		return "transfer_track"
	default:
		return "unknown"
	}
}
