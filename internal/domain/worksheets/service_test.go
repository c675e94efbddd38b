package worksheets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdesk/internal/core/apperror"
	"opsdesk/internal/core/id"
	"opsdesk/internal/domain"
)

type noopTxManager struct{}

func (noopTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockRepo struct {
	byID map[id.ID]*Worksheet
}

func newMockRepo() *mockRepo {
	return &mockRepo{byID: make(map[id.ID]*Worksheet)}
}

func (m *mockRepo) Create(_ context.Context, w *Worksheet) error {
	m.byID[w.ID] = w
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, worksheetID id.ID) (*Worksheet, error) {
	w, ok := m.byID[worksheetID]
	if !ok {
		return nil, apperror.NewNotFound("worksheet", worksheetID.String())
	}
	return w, nil
}

func (m *mockRepo) Update(_ context.Context, w *Worksheet) error {
	m.byID[w.ID] = w
	return nil
}

func (m *mockRepo) Delete(_ context.Context, worksheetID id.ID) error {
	delete(m.byID, worksheetID)
	return nil
}

func (m *mockRepo) List(_ context.Context, _ ListFilter) (domain.ListResult[*Worksheet], error) {
	result := domain.ListResult[*Worksheet]{}
	for _, w := range m.byID {
		result.Items = append(result.Items, w)
	}
	result.TotalCount = int64(len(result.Items))
	return result, nil
}

func newTestWorksheet() *Worksheet {
	w := NewWorksheet("Quarterly audit", "Review open accounts")
	w.DueDate = time.Now().AddDate(0, 0, 14)
	return w
}

func TestServiceCreate(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, noopTxManager{})

	w := newTestWorksheet()
	require.NoError(t, svc.Create(context.Background(), w))
	assert.Equal(t, StatusPending, w.Status)
	assert.Equal(t, PriorityMedium, w.Priority)
	assert.True(t, w.IsActive())
}

func TestServiceCreate_RequiresDueDate(t *testing.T) {
	svc := NewService(newMockRepo(), noopTxManager{})

	w := NewWorksheet("No due date", "still needs one")
	err := svc.Create(context.Background(), w)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestServiceUpdate_CompletedPinsProgress(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, noopTxManager{})

	w := newTestWorksheet()
	require.NoError(t, svc.Create(context.Background(), w))

	w.Status = StatusCompleted
	w.Progress = 40
	require.NoError(t, svc.Update(context.Background(), w))
	assert.Equal(t, 100, w.Progress)
	assert.False(t, w.IsActive())
}

func TestServiceUpdate_RejectsOutOfRangeProgress(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, noopTxManager{})

	w := newTestWorksheet()
	require.NoError(t, svc.Create(context.Background(), w))

	w.Status = StatusInProgress
	w.Progress = 150
	err := svc.Update(context.Background(), w)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}
