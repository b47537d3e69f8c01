// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/musicvm/chain"
	"github.com/ava-labs/musicvm/codec"
	"github.com/ava-labs/musicvm/state"
	"github.com/ava-labs/musicvm/storage"
	"github.com/ava-labs/musicvm/tstate"

	mtrace "github.com/ava-labs/musicvm/trace"
)

// VM hosts the record store. Every submitted transaction is a single state
// transition against [db] that either commits entirely or leaves nothing but
// its failure receipt behind.
type VM struct {
	log        logging.Logger
	tracer     trace.Tracer
	registerer prometheus.Registerer
	metrics    *Metrics
	now        func() int64

	// Set when the tracer was created by [New] and so is closed by [Close].
	ownsTracer bool

	db       database.Database
	rules    chain.Rules
	registry chain.Registry

	// Submissions are serialized. Queries read committed state without it.
	l      sync.Mutex
	closed bool
}

func New(
	db database.Database,
	rules chain.Rules,
	registry chain.Registry,
	opts ...Option,
) (*VM, error) {
	vm := &VM{
		log:        logging.NoLog{},
		registerer: prometheus.NewRegistry(),
		now:        func() int64 { return time.Now().UnixMilli() },
		db:         db,
		rules:      rules,
		registry:   registry,
	}
	for _, opt := range opts {
		opt(vm)
	}
	if vm.tracer == nil {
		tracer, err := mtrace.New(&mtrace.Config{})
		if err != nil {
			return nil, err
		}
		vm.tracer = tracer
		vm.ownsTracer = true
	}
	metrics, err := newMetrics(vm.registerer)
	if err != nil {
		return nil, err
	}
	vm.metrics = metrics
	vm.log.Info("initialized vm",
		zap.Uint32("networkID", rules.NetworkID()),
		zap.Stringer("chainID", rules.ChainID()),
		zap.Int64("validityWindow", rules.GetValidityWindow()),
	)
	return vm, nil
}

func (vm *VM) Rules() chain.Rules {
	return vm.rules
}

func (vm *VM) Registry() chain.Registry {
	return vm.registry
}

func (vm *VM) Logger() logging.Logger {
	return vm.log
}

func (vm *VM) Tracer() trace.Tracer {
	return vm.tracer
}

// SubmitBytes parses [b] and submits the resulting transaction.
func (vm *VM) SubmitBytes(ctx context.Context, b []byte) (ids.ID, *storage.Receipt, error) {
	tx, err := chain.ParseTx(b, vm.registry)
	if err != nil {
		vm.metrics.txsRejected.Inc()
		return ids.Empty, nil, err
	}
	receipt, err := vm.Submit(ctx, tx)
	return tx.ID(), receipt, err
}

// Submit verifies and executes [tx].
//
// A transaction that fails verification is rejected: nil is returned for the
// receipt and nothing is written. A transaction whose action fails has every
// change discarded and only its failure receipt persisted; the receipt and the
// action error are both returned.
func (vm *VM) Submit(ctx context.Context, tx *chain.Transaction) (*storage.Receipt, error) {
	ctx, span := vm.tracer.Start(ctx, "VM.Submit")
	defer span.End()

	start := time.Now()
	defer func() {
		vm.metrics.txSubmit.Observe(float64(time.Since(start)))
	}()
	vm.metrics.txsSubmitted.Inc()

	receipt, err := vm.submit(ctx, tx)
	if receipt == nil && err != nil {
		vm.metrics.txsRejected.Inc()
		vm.log.Debug("rejected transaction",
			zap.Stringer("txID", tx.ID()),
			zap.Error(err),
		)
	}
	return receipt, err
}

func (vm *VM) submit(ctx context.Context, tx *chain.Transaction) (*storage.Receipt, error) {
	if err := tx.Verify(ctx); err != nil {
		return nil, err
	}

	vm.l.Lock()
	defer vm.l.Unlock()

	if vm.closed {
		return nil, ErrClosed
	}
	now := vm.now()
	if err := tx.Base.Execute(vm.rules.ChainID(), vm.rules, now); err != nil {
		return nil, err
	}
	txID := tx.ID()
	exists, err := storage.HasTransaction(vm.db, txID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateTx, txID)
	}
	stateKeys, err := tx.StateKeys()
	if err != nil {
		return nil, err
	}
	storageValues, err := state.ReadKeys(ctx, state.NewDatabase(vm.db), stateKeys)
	if err != nil {
		return nil, err
	}

	ts := tstate.New(len(stateKeys))
	tsv := ts.NewView(stateKeys, storageValues)
	outputs, actionErr := vm.execute(ctx, tx, tsv, now)

	receipt := &storage.Receipt{
		Timestamp: now,
		Success:   actionErr == nil,
		Outputs:   outputs,
	}
	label := actionLabel(tx.Action.GetTypeID())
	batch := vm.db.NewBatch()
	if actionErr != nil {
		tsv.Rollback(ctx, 0)
		receipt.Error = actionErr.Error()
		receipt.Outputs = nil
		vm.metrics.txsFailed.WithLabelValues(label).Inc()
		vm.log.Debug("action failed",
			zap.Stringer("txID", txID),
			zap.String("action", label),
			zap.Stringer("actor", tx.Actor()),
			zap.Error(actionErr),
		)
	} else {
		tsv.Commit()
		changes, err := ts.WriteChanges(ctx, batch)
		if err != nil {
			return nil, err
		}
		vm.metrics.stateChanges.Add(float64(changes))
		vm.metrics.txsAccepted.WithLabelValues(label).Inc()
		vm.log.Debug("action succeeded",
			zap.Stringer("txID", txID),
			zap.String("action", label),
			zap.Stringer("actor", tx.Actor()),
			zap.Int("changes", changes),
		)
	}
	if err := storage.StoreTransaction(ctx, batch, txID, receipt); err != nil {
		return nil, err
	}
	if err := batch.Write(); err != nil {
		return nil, err
	}
	return receipt, actionErr
}

func (vm *VM) execute(ctx context.Context, tx *chain.Transaction, mu state.Mutable, timestamp int64) ([][]byte, error) {
	ctx, span := vm.tracer.Start(ctx, "VM.Execute")
	defer span.End()

	start := time.Now()
	defer func() {
		vm.metrics.executionTime.Observe(float64(time.Since(start)))
	}()
	return tx.Action.Execute(ctx, vm.rules, mu, timestamp, tx.Actor(), tx.ID())
}

// Track returns the committed Track bound to [tokenID] and its address.
func (vm *VM) Track(ctx context.Context, tokenID codec.Address) (codec.Address, *storage.Track, bool, error) {
	ctx, span := vm.tracer.Start(ctx, "VM.Track")
	defer span.End()

	addr, _, err := storage.TrackAddress(tokenID)
	if err != nil {
		return codec.EmptyAddress, nil, false, err
	}
	track, exists, err := storage.GetTrackFromState(ctx, vm.db, addr)
	return addr, track, exists, err
}

func (vm *VM) Mint(ctx context.Context, mint codec.Address) (*storage.Mint, bool, error) {
	ctx, span := vm.tracer.Start(ctx, "VM.Mint")
	defer span.End()

	return storage.GetMintFromState(ctx, vm.db, mint)
}

func (vm *VM) Balance(ctx context.Context, owner codec.Address, mint codec.Address) (uint64, error) {
	ctx, span := vm.tracer.Start(ctx, "VM.Balance")
	defer span.End()

	return storage.GetBalanceFromState(ctx, vm.db, owner, mint)
}

// Transaction returns the receipt stored for [txID].
func (vm *VM) Transaction(ctx context.Context, txID ids.ID) (bool, *storage.Receipt, error) {
	ctx, span := vm.tracer.Start(ctx, "VM.Transaction")
	defer span.End()

	return storage.GetTransaction(ctx, vm.db, txID)
}

// Close stops accepting submissions. The database and a tracer passed with
// [WithTracer] are owned by the caller.
func (vm *VM) Close() error {
	vm.l.Lock()
	defer vm.l.Unlock()

	vm.closed = true
	if !vm.ownsTracer {
		return nil
	}
	return vm.tracer.Close()
}
