package financial

import (
	"context"
	"navigator-service/internal/app/contracts"
	"navigator-service/internal/pkg/constvars"
	"navigator-service/internal/pkg/registry_dto"
	"sync"
	"time"

	"go.uber.org/zap"
)

// AutosaveCoordinator batches financial draft writes per session. Each
// Notify replaces the pending snapshot and rearms a single timer, so a
// burst of edits collapses into one upsert carrying the latest answers.
// Flush and Cancel let the submit path take over a pending write, and
// Stop drains everything at shutdown.
type AutosaveCoordinator struct {
	Log             *zap.Logger
	FinancialClient contracts.FinancialRegistryClient

	debounce     time.Duration
	writeTimeout time.Duration

	mu      sync.Mutex
	pending map[string]*pendingWrite
	stopped bool
}

type pendingWrite struct {
	timer   *time.Timer
	profile *registry_dto.FinancialProfile
}

func NewAutosaveCoordinator(
	logger *zap.Logger,
	financialClient contracts.FinancialRegistryClient,
	debounce time.Duration,
	writeTimeout time.Duration,
) *AutosaveCoordinator {
	return &AutosaveCoordinator{
		Log:             logger,
		FinancialClient: financialClient,
		debounce:        debounce,
		writeTimeout:    writeTimeout,
		pending:         make(map[string]*pendingWrite),
	}
}

// Notify records the latest draft snapshot for the session and rearms
// the debounce timer. Last write wins.
func (c *AutosaveCoordinator) Notify(sessionID string, profile *registry_dto.FinancialProfile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}

	if entry, ok := c.pending[sessionID]; ok {
		entry.profile = profile
		entry.timer.Reset(c.debounce)
		return
	}

	entry := &pendingWrite{profile: profile}
	entry.timer = time.AfterFunc(c.debounce, func() {
		c.fire(sessionID)
	})
	c.pending[sessionID] = entry
}

// Cancel discards the pending write for the session, if any. Used when
// an explicit submit is about to write the same answers synchronously.
func (c *AutosaveCoordinator) Cancel(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.pending[sessionID]; ok {
		entry.timer.Stop()
		delete(c.pending, sessionID)
	}
}

// Flush writes the pending snapshot for the session immediately,
// bypassing the timer. A session with nothing pending is a no-op.
func (c *AutosaveCoordinator) Flush(ctx context.Context, sessionID string) error {
	c.mu.Lock()
	entry, ok := c.pending[sessionID]
	if ok {
		entry.timer.Stop()
		delete(c.pending, sessionID)
	}
	c.mu.Unlock()

	if !ok {
		return nil
	}

	_, err := c.FinancialClient.UpsertFinancialProfile(ctx, entry.profile)
	return err
}

// Stop drains every pending write and rejects further notifications.
// Called once during graceful shutdown.
func (c *AutosaveCoordinator) Stop() {
	c.mu.Lock()
	c.stopped = true
	drained := make(map[string]*registry_dto.FinancialProfile, len(c.pending))
	for sessionID, entry := range c.pending {
		entry.timer.Stop()
		drained[sessionID] = entry.profile
	}
	c.pending = make(map[string]*pendingWrite)
	c.mu.Unlock()

	for sessionID, profile := range drained {
		c.write(sessionID, profile)
	}
}

func (c *AutosaveCoordinator) fire(sessionID string) {
	c.mu.Lock()
	entry, ok := c.pending[sessionID]
	if ok {
		delete(c.pending, sessionID)
	}
	c.mu.Unlock()

	if !ok {
		return
	}
	c.write(sessionID, entry.profile)
}

func (c *AutosaveCoordinator) write(sessionID string, profile *registry_dto.FinancialProfile) {
	ctx, cancel := context.WithTimeout(context.Background(), c.writeTimeout)
	defer cancel()

	_, err := c.FinancialClient.UpsertFinancialProfile(ctx, profile)
	if err != nil {
		c.Log.Error("autosaveCoordinator write failed",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.String(constvars.LoggingPatientIDKey, profile.PatientID),
			zap.Error(err),
		)
		return
	}

	c.Log.Debug("autosaveCoordinator write flushed",
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingPatientIDKey, profile.PatientID),
	)
}
