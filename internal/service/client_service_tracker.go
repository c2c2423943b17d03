// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/fabric-launcher/internal/adapter"
	"github.com/MKhiriev/fabric-launcher/internal/app"
	"github.com/MKhiriev/fabric-launcher/internal/config"
	"github.com/MKhiriev/fabric-launcher/internal/logger"
	"github.com/MKhiriev/fabric-launcher/models"
	"github.com/juju/clock"
)

type trackerState int

const (
	stateStarting trackerState = iota
	statePolling
)

func (s trackerState) String() string {
	if s == statePolling {
		return "polling"
	}
	return "starting"
}

// trackedOperation is the record of one run of an operation. A new record
// is created on every accepted Start, so comparing pointers tells a response
// of the current run apart from a late response of a cancelled one.
type trackedOperation struct {
	id        models.OperationID
	state     trackerState
	startedAt time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

type setupTracker struct {
	adapter adapter.LauncherAdapter
	sink    EventSink
	clock   clock.Clock

	pollInterval    time.Duration
	maxPollDuration time.Duration

	mu      sync.Mutex
	records map[models.OperationID]*trackedOperation
	closed  bool
	wg      sync.WaitGroup

	logger *logger.Logger
}

// NewSetupTracker creates a tracker that talks to the backend through
// launcherAdapter and reports to sink. A nil clk means the wall clock. A
// non-positive cfg.PollInterval defaults to one second; a zero
// cfg.MaxPollDuration disables the polling deadline.
func NewSetupTracker(launcherAdapter adapter.LauncherAdapter, sink EventSink, cfg config.LauncherTracker, clk clock.Clock, log *logger.Logger) SetupTracker {
	if clk == nil {
		clk = clock.WallClock
	}
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}

	return &setupTracker{
		adapter:         launcherAdapter,
		sink:            sink,
		clock:           clk,
		pollInterval:    interval,
		maxPollDuration: max(cfg.MaxPollDuration, 0),
		records:         make(map[models.OperationID]*trackedOperation),
		logger:          log.WithComponent("tracker"),
	}
}

// Start implements [SetupTracker].
//
// The record is reserved before the request is sent, so a second Start for
// the same id is rejected even while the first request is in flight. The
// lock is not held during the request.
func (t *setupTracker) Start(ctx context.Context, params models.SetupParams) (models.OperationID, error) {
	id, err := DeriveOperationID(params)
	if err != nil {
		t.sink.Info(fmt.Sprintf(app.MsgInvalidTarget, err))
		return "", err
	}

	op, err := t.reserve(id)
	if err != nil {
		return id, err
	}

	t.logger.Info().Str("operation", id.String()).Msg("requesting setup")

	// the request is aborted by the caller's ctx or by Cancel, whichever
	// comes first
	reqCtx, cancelReq := context.WithCancel(ctx)
	stop := context.AfterFunc(op.ctx, cancelReq)
	resp, err := t.adapter.Setup(reqCtx, models.SetupRequest{Target: id.String(), MCVersion: id.String()})
	stop()
	cancelReq()

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.records[id] != op {
		t.logger.Debug().Str("operation", id.String()).Msg("setup response discarded, operation was cancelled")
		return id, ErrCancelled
	}

	if err != nil && ctx.Err() != nil {
		t.removeLocked(op)
		t.logger.Warn().Err(err).Str("operation", id.String()).Msg("setup request interrupted")
		t.sink.Failed(id, fmt.Sprintf(app.MsgSetupInterrupted, id))
		return id, fmt.Errorf("start setup of %s: %w", id, context.Cause(ctx))
	}

	if err != nil {
		t.removeLocked(op)
		t.logger.Error().Err(err).Str("operation", id.String()).Msg("setup request failed")
		t.sink.Failed(id, fmt.Sprintf(app.MsgSetupFailed, id, describeError(err)))
		return id, fmt.Errorf("start setup of %s: %w", id, err)
	}

	msg := strings.TrimSpace(resp.Message)
	if msg == "" {
		msg = fmt.Sprintf(app.MsgSetupAccepted, id)
	}
	t.sink.Info(msg)

	op.state = statePolling
	op.startedAt = t.clock.Now()
	t.wg.Add(1)
	go t.poll(op)

	return id, nil
}

func (t *setupTracker) reserve(id models.OperationID) (*trackedOperation, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		t.sink.Info(app.MsgTrackerClosed)
		return nil, ErrTrackerClosed
	}

	if existing, ok := t.records[id]; ok {
		t.logger.Debug().Str("operation", id.String()).Stringer("state", existing.state).Msg("setup already tracked")
		t.sink.Info(fmt.Sprintf(app.MsgSetupBusy, id))
		return nil, fmt.Errorf("%w: %s", ErrBusy, id)
	}

	ctx, cancel := context.WithCancel(context.Background())
	op := &trackedOperation{
		id:     id,
		state:  stateStarting,
		ctx:    ctx,
		cancel: cancel,
	}
	t.records[id] = op

	return op, nil
}

// poll queries the status of op once per interval until op is removed. The
// first query happens one interval after acceptance.
func (t *setupTracker) poll(op *trackedOperation) {
	defer t.wg.Done()

	timer := t.clock.NewTimer(t.pollInterval)
	defer timer.Stop()

	for {
		select {
		case <-op.ctx.Done():
			return
		case <-timer.Chan():
		}

		// both cases may be ready at once
		if op.ctx.Err() != nil {
			return
		}
		if !t.tick(op) {
			return
		}
		timer.Reset(t.pollInterval)
	}
}

// tick performs one status query and reports whether polling continues.
func (t *setupTracker) tick(op *trackedOperation) bool {
	resp, err := t.adapter.Status(op.ctx, op.id.String())

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.records[op.id] != op {
		t.logger.Debug().Str("operation", op.id.String()).Msg("status response discarded, operation was cancelled")
		return false
	}

	if err != nil {
		t.logger.Warn().Err(err).Str("operation", op.id.String()).Msg("status poll failed")
		t.sink.Info(fmt.Sprintf(app.MsgPollFailed, op.id, describeError(err)))
		return t.checkDeadlineLocked(op)
	}

	if resp.InstallationStatus == nil {
		t.logger.Debug().Str("operation", op.id.String()).Msg("no installation status yet")
		return t.checkDeadlineLocked(op)
	}

	snapshot := models.NewStatusSnapshot(*resp.InstallationStatus)
	t.logger.Debug().
		Str("operation", op.id.String()).
		Str("status", snapshot.RawPhase).
		Int("progress", snapshot.Progress).
		Msg("status polled")

	t.sink.Progress(op.id, snapshot.Percent(), snapshot.Message)

	switch snapshot.Phase {
	case models.PhaseSuccess:
		t.removeLocked(op)
		t.logger.Info().Str("operation", op.id.String()).Str("install_dir", snapshot.InstallDir).Msg("setup completed")
		t.sink.Completed(op.id, completedText(op.id, snapshot))
		return false

	case models.PhaseFailed:
		t.removeLocked(op)
		reason := snapshot.Message
		if reason == "" {
			reason = snapshot.RawPhase
		}
		t.logger.Error().Str("operation", op.id.String()).Str("reason", reason).Msg("setup failed on server")
		t.sink.Failed(op.id, fmt.Sprintf(app.MsgSetupFailed, op.id, reason))
		return false

	case models.PhaseUnknown:
		t.logger.Warn().Str("operation", op.id.String()).Str("status", snapshot.RawPhase).Msg("unrecognised status")
		t.sink.Info(fmt.Sprintf(app.MsgUnknownPhase, op.id, snapshot.RawPhase))
	}

	return t.checkDeadlineLocked(op)
}

// checkDeadlineLocked fails op once it has been polled for maxPollDuration.
func (t *setupTracker) checkDeadlineLocked(op *trackedOperation) bool {
	if t.maxPollDuration <= 0 {
		return true
	}
	if t.clock.Now().Sub(op.startedAt) < t.maxPollDuration {
		return true
	}

	t.removeLocked(op)
	t.logger.Warn().Str("operation", op.id.String()).Dur("max_poll_duration", t.maxPollDuration).Msg("setup timed out")
	t.sink.Failed(op.id, fmt.Sprintf(app.MsgSetupTimedOut, op.id, t.maxPollDuration))
	return false
}

// removeLocked drops op and aborts its in-flight request. Safe to call more
// than once.
func (t *setupTracker) removeLocked(op *trackedOperation) {
	if t.records[op.id] == op {
		delete(t.records, op.id)
	}
	op.cancel()
}

// Cancel implements [SetupTracker].
func (t *setupTracker) Cancel(id models.OperationID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	op, ok := t.records[id]
	if !ok {
		return false
	}

	t.removeLocked(op)
	t.logger.Info().Str("operation", id.String()).Stringer("state", op.state).Msg("setup cancelled")
	t.sink.Cancelled(id, fmt.Sprintf(app.MsgSetupCancelled, id))
	return true
}

// IsTracking implements [SetupTracker].
func (t *setupTracker) IsTracking(id models.OperationID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.records[id]
	return ok
}

// Active implements [SetupTracker].
func (t *setupTracker) Active() []models.OperationID {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]models.OperationID, 0, len(t.records))
	for id := range t.records {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Close implements [SetupTracker].
func (t *setupTracker) Close() {
	t.mu.Lock()
	t.closed = true
	for _, op := range t.records {
		t.removeLocked(op)
	}
	t.mu.Unlock()

	t.wg.Wait()
}

func completedText(id models.OperationID, snapshot models.StatusSnapshot) string {
	text := fmt.Sprintf(app.MsgSetupCompleted, id)
	if snapshot.InstallDir != "" {
		text += " (" + snapshot.InstallDir + ")"
	}
	return text
}
