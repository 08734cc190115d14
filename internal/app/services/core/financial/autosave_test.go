package financial

import (
	"context"
	"navigator-service/internal/pkg/registry_dto"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeFinancialClient struct {
	mu     sync.Mutex
	writes []*registry_dto.FinancialProfile
	err    error
}

func (f *fakeFinancialClient) GetFinancialProfile(ctx context.Context, patientID string) (*registry_dto.FinancialProfile, error) {
	return nil, nil
}

func (f *fakeFinancialClient) UpsertFinancialProfile(ctx context.Context, request *registry_dto.FinancialProfile) (*registry_dto.FinancialProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.writes = append(f.writes, request)
	return request, nil
}

func (f *fakeFinancialClient) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.writes)
}

func (f *fakeFinancialClient) lastWrite() *registry_dto.FinancialProfile {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.writes) == 0 {
		return nil
	}
	return f.writes[len(f.writes)-1]
}

func draft(patientID, answer string) *registry_dto.FinancialProfile {
	return &registry_dto.FinancialProfile{
		PatientID: patientID,
		Answers:   map[string]*string{"insurance": &answer},
	}
}

func TestAutosaveCoordinator(t *testing.T) {
	t.Run("Two Changes Within Window Collapse Into One Write", func(t *testing.T) {
		client := &fakeFinancialClient{}
		coordinator := NewAutosaveCoordinator(zap.NewNop(), client, 50*time.Millisecond, time.Second)

		coordinator.Notify("sess-1", draft("pat-1", "first"))
		coordinator.Notify("sess-1", draft("pat-1", "second"))

		time.Sleep(150 * time.Millisecond)

		assert.Equal(t, 1, client.writeCount(), "burst edits must collapse into one write")
		assert.Equal(t, "second", *client.lastWrite().Answers["insurance"], "the write must carry the latest snapshot")
	})

	t.Run("Separate Sessions Write Independently", func(t *testing.T) {
		client := &fakeFinancialClient{}
		coordinator := NewAutosaveCoordinator(zap.NewNop(), client, 20*time.Millisecond, time.Second)

		coordinator.Notify("sess-1", draft("pat-1", "a"))
		coordinator.Notify("sess-2", draft("pat-2", "b"))

		time.Sleep(100 * time.Millisecond)

		assert.Equal(t, 2, client.writeCount())
	})

	t.Run("Cancel Discards The Pending Write", func(t *testing.T) {
		client := &fakeFinancialClient{}
		coordinator := NewAutosaveCoordinator(zap.NewNop(), client, 30*time.Millisecond, time.Second)

		coordinator.Notify("sess-1", draft("pat-1", "doomed"))
		coordinator.Cancel("sess-1")

		time.Sleep(100 * time.Millisecond)

		assert.Equal(t, 0, client.writeCount(), "a cancelled snapshot must never hit the registry")
	})

	t.Run("Flush Writes Immediately", func(t *testing.T) {
		client := &fakeFinancialClient{}
		coordinator := NewAutosaveCoordinator(zap.NewNop(), client, time.Hour, time.Second)

		coordinator.Notify("sess-1", draft("pat-1", "now"))

		err := coordinator.Flush(context.Background(), "sess-1")

		assert.NoError(t, err)
		assert.Equal(t, 1, client.writeCount())
		assert.Equal(t, "now", *client.lastWrite().Answers["insurance"])
	})

	t.Run("Flush Without Pending Write Is A NoOp", func(t *testing.T) {
		client := &fakeFinancialClient{}
		coordinator := NewAutosaveCoordinator(zap.NewNop(), client, time.Hour, time.Second)

		err := coordinator.Flush(context.Background(), "sess-1")

		assert.NoError(t, err)
		assert.Equal(t, 0, client.writeCount())
	})

	t.Run("Stop Drains Pending Writes And Rejects New Ones", func(t *testing.T) {
		client := &fakeFinancialClient{}
		coordinator := NewAutosaveCoordinator(zap.NewNop(), client, time.Hour, time.Second)

		coordinator.Notify("sess-1", draft("pat-1", "drained"))
		coordinator.Stop()

		assert.Equal(t, 1, client.writeCount(), "shutdown must flush pending snapshots")

		coordinator.Notify("sess-2", draft("pat-2", "late"))
		time.Sleep(50 * time.Millisecond)

		assert.Equal(t, 1, client.writeCount(), "notifications after Stop must be dropped")
	})
}
