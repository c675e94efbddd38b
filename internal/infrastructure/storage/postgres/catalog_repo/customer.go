package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"opsdesk/internal/core/apperror"
	"opsdesk/internal/core/id"
	"opsdesk/internal/domain"
	"opsdesk/internal/domain/catalogs/customer"
	"opsdesk/internal/infrastructure/storage/postgres"
)

const customersTable = "cat_customers"

// CustomerRepo implements customer.Repository.
type CustomerRepo struct {
	*BaseCatalogRepo[customer.Customer]
}

// NewCustomerRepo creates a new customer repository.
func NewCustomerRepo(txm *postgres.TxManager) *CustomerRepo {
	return &CustomerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[customer.Customer](txm, customersTable),
	}
}

// Create inserts a customer, mapping a unique-index hit on email to a
// duplicate error. The service checks first, but concurrent creates can
// still race past that check.
func (r *CustomerRepo) Create(ctx context.Context, c *customer.Customer) error {
	err := r.BaseCatalogRepo.Create(ctx, c)
	if IsUniqueViolation(err) {
		return apperror.NewDuplicate("customer", "email", c.Email)
	}
	return err
}

// Update persists customer changes, mapping a unique-index hit on email
// to a duplicate error.
func (r *CustomerRepo) Update(ctx context.Context, c *customer.Customer) error {
	err := r.BaseCatalogRepo.Update(ctx, c)
	if IsUniqueViolation(err) {
		return apperror.NewDuplicate("customer", "email", c.Email)
	}
	return err
}

// List retrieves customers with filtering. Search matches name, email
// and company.
func (r *CustomerRepo) List(ctx context.Context, filter customer.ListFilter) (domain.ListResult[*customer.Customer], error) {
	q := r.baseSelect()

	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}

	return r.listWith(ctx, q, filter.ListFilter, "name", "email", "company")
}

// ExistsByEmail checks whether another customer already uses the email.
func (r *CustomerRepo) ExistsByEmail(ctx context.Context, email string, excludeID id.ID) (bool, error) {
	q := r.Builder().
		Select("1").
		From(customersTable).
		Where(squirrel.Eq{"email": email}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	if !id.IsNil(excludeID) {
		q = q.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	// squirrel has no EXISTS helper
	sql = "SELECT EXISTS(" + sql + ")"

	var exists bool
	if err := r.querier(ctx).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists by email: %w", err)
	}

	return exists, nil
}
