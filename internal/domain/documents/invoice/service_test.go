package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdesk/internal/core/apperror"
	"opsdesk/internal/core/id"
	"opsdesk/internal/core/sequence"
	"opsdesk/internal/core/types"
	"opsdesk/internal/domain"
	"opsdesk/internal/domain/billing"
)

// noopTxManager runs the function without a real transaction.
type noopTxManager struct{}

func (noopTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockRepo struct {
	byID     map[id.ID]*Invoice
	byNumber map[string]*Invoice
	created  int
	updated  int
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		byID:     make(map[id.ID]*Invoice),
		byNumber: make(map[string]*Invoice),
	}
}

func (m *mockRepo) Create(_ context.Context, doc *Invoice) error {
	m.created++
	m.byID[doc.ID] = doc
	m.byNumber[doc.Number] = doc
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, docID id.ID) (*Invoice, error) {
	doc, ok := m.byID[docID]
	if !ok {
		return nil, apperror.NewNotFound("invoice", docID.String())
	}
	return doc, nil
}

func (m *mockRepo) GetByNumber(_ context.Context, number string) (*Invoice, error) {
	doc, ok := m.byNumber[number]
	if !ok {
		return nil, apperror.NewNotFound("invoice", number)
	}
	return doc, nil
}

func (m *mockRepo) Update(_ context.Context, doc *Invoice) error {
	m.updated++
	m.byID[doc.ID] = doc
	return nil
}

func (m *mockRepo) Delete(_ context.Context, docID id.ID) error {
	delete(m.byID, docID)
	return nil
}

func (m *mockRepo) List(_ context.Context, _ ListFilter) (domain.ListResult[*Invoice], error) {
	result := domain.ListResult[*Invoice]{}
	for _, doc := range m.byID {
		result.Items = append(result.Items, doc)
	}
	result.TotalCount = int64(len(result.Items))
	return result, nil
}

func newTestInvoice() *Invoice {
	doc := NewInvoice(id.New())
	doc.Items = billing.Items{
		{Description: "Widget", Quantity: 2, UnitPrice: types.MustMoney("10.00")},
	}
	doc.DueDate = time.Now().AddDate(0, 1, 0)
	return doc
}

func TestServiceCreate_AllocatesNumberAndTotals(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, &sequence.MockAllocator{}, noopTxManager{})

	doc := newTestInvoice()
	err := svc.Create(context.Background(), doc, billing.Overrides{})
	require.NoError(t, err)

	assert.True(t, doc.HasNumber())
	assert.Contains(t, doc.Number, "INV-")
	assert.True(t, doc.Total.Equal(types.MustMoney("20.00")))
	assert.Equal(t, 1, repo.created)

	// Second create gets a distinct number.
	doc2 := newTestInvoice()
	require.NoError(t, svc.Create(context.Background(), doc2, billing.Overrides{}))
	assert.NotEqual(t, doc.Number, doc2.Number)
}

func TestServiceCreate_KeepsPresetNumber(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, &sequence.MockAllocator{}, noopTxManager{})

	doc := newTestInvoice()
	doc.Number = "INV-2026-777"

	require.NoError(t, svc.Create(context.Background(), doc, billing.Overrides{}))
	assert.Equal(t, "INV-2026-777", doc.Number)
}

func TestServiceCreate_OverridesWin(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, &sequence.MockAllocator{}, noopTxManager{})

	doc := newTestInvoice()
	ov := billing.Overrides{
		Subtotal: types.MoneyPtr(types.MustMoney("50.00")),
		Tax:      types.MoneyPtr(types.MustMoney("5.00")),
	}

	require.NoError(t, svc.Create(context.Background(), doc, ov))
	assert.True(t, doc.Subtotal.Equal(types.MustMoney("50.00")))
	assert.True(t, doc.Total.Equal(types.MustMoney("55.00")))
}

func TestServiceCreate_InvalidItemsRejected(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, &sequence.MockAllocator{}, noopTxManager{})

	doc := newTestInvoice()
	doc.Items = billing.Items{
		{Description: "bad", Quantity: 0, UnitPrice: types.MustMoney("10.00")},
	}

	err := svc.Create(context.Background(), doc, billing.Overrides{})
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidItems(err))
	assert.Equal(t, 0, repo.created)
	assert.False(t, doc.HasNumber())
}

func TestServiceUpdate_RecomputesOnlyWhenItemsChanged(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, &sequence.MockAllocator{}, noopTxManager{})

	doc := newTestInvoice()
	require.NoError(t, svc.Create(context.Background(), doc, billing.Overrides{}))
	storedTotal := doc.Total

	// No item change: totals untouched even with zero items recompute skipped.
	require.NoError(t, svc.Update(context.Background(), doc, false, billing.Overrides{}))
	assert.True(t, doc.Total.Equal(storedTotal))

	// Item change: totals recomputed.
	doc.Items = billing.Items{
		{Description: "Widget", Quantity: 3, UnitPrice: types.MustMoney("10.00")},
	}
	require.NoError(t, svc.Update(context.Background(), doc, true, billing.Overrides{}))
	assert.True(t, doc.Total.Equal(types.MustMoney("30.00")))
}

func TestServiceUpdate_PaidStampsPaidDateOnce(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, &sequence.MockAllocator{}, noopTxManager{})

	doc := newTestInvoice()
	require.NoError(t, svc.Create(context.Background(), doc, billing.Overrides{}))
	require.Nil(t, doc.PaidDate)

	doc.Status = StatusPaid
	require.NoError(t, svc.Update(context.Background(), doc, false, billing.Overrides{}))
	require.NotNil(t, doc.PaidDate)
	first := *doc.PaidDate

	require.NoError(t, svc.Update(context.Background(), doc, false, billing.Overrides{}))
	assert.Equal(t, first, *doc.PaidDate)
}

func TestServiceList_Stats(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, &sequence.MockAllocator{}, noopTxManager{})

	paid := newTestInvoice() // 20.00
	require.NoError(t, svc.Create(context.Background(), paid, billing.Overrides{}))
	paid.MarkPaid(time.Now())
	require.NoError(t, svc.Update(context.Background(), paid, false, billing.Overrides{}))

	pending := newTestInvoice()
	pending.Items = billing.Items{
		{Description: "Gadget", Quantity: 1, UnitPrice: types.MustMoney("5.00")},
	}
	require.NoError(t, svc.Create(context.Background(), pending, billing.Overrides{}))

	_, stats, err := svc.List(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.True(t, stats.Total.Equal(types.MustMoney("25.00")))
	assert.True(t, stats.Paid.Equal(types.MustMoney("20.00")))
	assert.True(t, stats.Pending.Equal(types.MustMoney("5.00")))
}
