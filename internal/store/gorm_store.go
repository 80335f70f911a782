package store

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fleetops/internal/models"
)

// GormStore backs the gateway with a relational database through gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Users() Repository[models.User]               { return gormRepo[models.User]{s.db} }
func (s *GormStore) Roles() Repository[models.Role]               { return gormRepo[models.Role]{s.db} }
func (s *GormStore) Vehicles() Repository[models.Vehicle]         { return gormRepo[models.Vehicle]{s.db} }
func (s *GormStore) Fleets() Repository[models.Fleet]             { return gormRepo[models.Fleet]{s.db} }
func (s *GormStore) Trips() Repository[models.Trip]               { return gormRepo[models.Trip]{s.db} }
func (s *GormStore) Maintenance() Repository[models.Maintenance]  { return gormRepo[models.Maintenance]{s.db} }
func (s *GormStore) Alerts() Repository[models.Alert]             { return gormRepo[models.Alert]{s.db} }
func (s *GormStore) Invoices() Repository[models.Invoice]         { return gormRepo[models.Invoice]{s.db} }
func (s *GormStore) Geofences() Repository[models.Geofence]       { return gormRepo[models.Geofence]{s.db} }
func (s *GormStore) PricingRules() Repository[models.PricingRule] { return gormRepo[models.PricingRule]{s.db} }
func (s *GormStore) Stations() Repository[models.Station]         { return gormRepo[models.Station]{s.db} }
func (s *GormStore) ActivityLogs() Repository[models.ActivityLog] { return gormRepo[models.ActivityLog]{s.db} }
func (s *GormStore) Reports() Repository[models.Report]           { return gormRepo[models.Report]{s.db} }

func (s *GormStore) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

type gormRepo[T any] struct {
	db *gorm.DB
}

func (r gormRepo[T]) scoped(q query) *gorm.DB {
	tx := r.db
	for _, f := range q.filters {
		tx = tx.Where(fmt.Sprintf("%s = ?", f.column), f.value)
	}
	for _, col := range q.unset {
		tx = tx.Where(fmt.Sprintf("%s IS NULL", col))
	}
	if q.newestFirst {
		tx = tx.Order("created_at DESC")
	}
	if q.forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func (r gormRepo[T]) Create(record *T) error {
	if err := r.db.Create(record).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r gormRepo[T]) Get(id uint, opts ...QueryOption) (*T, error) {
	var record T
	if err := r.scoped(buildQuery(opts)).First(&record, id).Error; err != nil {
		return nil, translate(err)
	}
	return &record, nil
}

func (r gormRepo[T]) First(opts ...QueryOption) (*T, error) {
	var record T
	if err := r.scoped(buildQuery(opts)).First(&record).Error; err != nil {
		return nil, translate(err)
	}
	return &record, nil
}

func (r gormRepo[T]) List(opts ...QueryOption) ([]T, error) {
	var records []T
	if err := r.scoped(buildQuery(opts)).Find(&records).Error; err != nil {
		return nil, translate(err)
	}
	return records, nil
}

func (r gormRepo[T]) Updates(id uint, fields map[string]any) error {
	var record T
	tx := r.db.Model(&record).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r gormRepo[T]) Delete(id uint) error {
	tx := r.db.Delete(new(T), id)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// translate maps driver errors onto the gateway sentinels so handlers never
// inspect gorm or pq errors directly.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
