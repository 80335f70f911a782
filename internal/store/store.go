// Package store is the persistence gateway. Controllers talk to the Store
// interface only; the gorm-backed implementation is used in production and the
// in-memory one in tests, chosen when the process is wired together.
package store

import (
	"errors"

	"fleetops/internal/models"
)

var (
	// ErrNotFound signals a lookup, update or delete against a missing id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate signals a unique-constraint violation (username, email, role name).
	ErrDuplicate = errors.New("duplicate record")
)

// Repository exposes the CRUD surface for one entity type. Create assigns the
// id and creation timestamp; callers never supply them.
type Repository[T any] interface {
	Create(record *T) error
	Get(id uint, opts ...QueryOption) (*T, error)
	First(opts ...QueryOption) (*T, error)
	List(opts ...QueryOption) ([]T, error)
	Updates(id uint, fields map[string]any) error
	Delete(id uint) error
}

// Store groups the per-entity repositories. Transaction runs fn against a view
// of the store where every write joins the same transaction; any error rolls
// the whole unit back.
type Store interface {
	Users() Repository[models.User]
	Roles() Repository[models.Role]
	Vehicles() Repository[models.Vehicle]
	Fleets() Repository[models.Fleet]
	Trips() Repository[models.Trip]
	Maintenance() Repository[models.Maintenance]
	Alerts() Repository[models.Alert]
	Invoices() Repository[models.Invoice]
	Geofences() Repository[models.Geofence]
	PricingRules() Repository[models.PricingRule]
	Stations() Repository[models.Station]
	ActivityLogs() Repository[models.ActivityLog]
	Reports() Repository[models.Report]
	Transaction(fn func(Store) error) error
}

type filter struct {
	column string
	value  any
}

type query struct {
	filters     []filter
	unset       []string
	newestFirst bool
	forUpdate   bool
}

// QueryOption narrows or orders a read.
type QueryOption func(*query)

// Where keeps rows whose column equals value.
func Where(column string, value any) QueryOption {
	return func(q *query) { q.filters = append(q.filters, filter{column, value}) }
}

// Unset keeps rows whose column is NULL, e.g. unresolved alerts.
func Unset(column string) QueryOption {
	return func(q *query) { q.unset = append(q.unset, column) }
}

// NewestFirst orders by creation time descending.
func NewestFirst() QueryOption {
	return func(q *query) { q.newestFirst = true }
}

// ForUpdate takes a row lock for the enclosing transaction. Mutations that
// read-modify-write (invoice payment, station transfer) must use it.
func ForUpdate() QueryOption {
	return func(q *query) { q.forUpdate = true }
}

func buildQuery(opts []QueryOption) query {
	var q query
	for _, opt := range opts {
		opt(&q)
	}
	return q
}
