package customer

import (
	"context"
	"strings"
	"testing"

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
	byID map[id.ID]*Customer
}

func newMockRepo() *mockRepo {
	return &mockRepo{byID: make(map[id.ID]*Customer)}
}

func (m *mockRepo) Create(_ context.Context, c *Customer) error {
	m.byID[c.ID] = c
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, customerID id.ID) (*Customer, error) {
	c, ok := m.byID[customerID]
	if !ok {
		return nil, apperror.NewNotFound("customer", customerID.String())
	}
	return c, nil
}

func (m *mockRepo) Update(_ context.Context, c *Customer) error {
	m.byID[c.ID] = c
	return nil
}

func (m *mockRepo) Delete(_ context.Context, customerID id.ID) error {
	delete(m.byID, customerID)
	return nil
}

func (m *mockRepo) List(_ context.Context, _ ListFilter) (domain.ListResult[*Customer], error) {
	result := domain.ListResult[*Customer]{}
	for _, c := range m.byID {
		result.Items = append(result.Items, c)
	}
	result.TotalCount = int64(len(result.Items))
	return result, nil
}

func (m *mockRepo) ExistsByEmail(_ context.Context, email string, excludeID id.ID) (bool, error) {
	for _, c := range m.byID {
		if c.ID != excludeID && strings.EqualFold(c.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func TestServiceCreate(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, noopTxManager{})

	c := NewCustomer("Acme Inc", "billing@acme.test")
	require.NoError(t, svc.Create(context.Background(), c))
	assert.Equal(t, StatusActive, c.Status)
	assert.False(t, c.JoinDate.IsZero())
}

func TestServiceCreate_RejectsDuplicateEmail(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, noopTxManager{})

	require.NoError(t, svc.Create(context.Background(), NewCustomer("First", "shared@acme.test")))

	err := svc.Create(context.Background(), NewCustomer("Second", "shared@acme.test"))
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestServiceCreate_RejectsInvalidEmail(t *testing.T) {
	svc := NewService(newMockRepo(), noopTxManager{})

	err := svc.Create(context.Background(), NewCustomer("Bad", "not-an-email"))
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestServiceUpdate_AllowsOwnEmail(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, noopTxManager{})

	c := NewCustomer("Acme Inc", "billing@acme.test")
	require.NoError(t, svc.Create(context.Background(), c))

	c.Phone = "+49 30 1234"
	require.NoError(t, svc.Update(context.Background(), c))
}
