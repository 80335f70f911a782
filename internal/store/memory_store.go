package store

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"fleetops/internal/models"
)

// MemoryStore is the in-memory Store used by tests. It shares the entity types
// with the gorm store and resolves column names the same way gorm does, so the
// two implementations are interchangeable behind the interface. A single mutex
// serializes all access, which also covers the read-modify-write sequences the
// durable store protects with row locks.
type MemoryStore struct {
	mu           sync.Mutex
	users        *memTable[models.User]
	roles        *memTable[models.Role]
	vehicles     *memTable[models.Vehicle]
	fleets       *memTable[models.Fleet]
	trips        *memTable[models.Trip]
	maintenance  *memTable[models.Maintenance]
	alerts       *memTable[models.Alert]
	invoices     *memTable[models.Invoice]
	geofences    *memTable[models.Geofence]
	pricingRules *memTable[models.PricingRule]
	stations     *memTable[models.Station]
	activityLogs *memTable[models.ActivityLog]
	reports      *memTable[models.Report]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        &memTable[models.User]{unique: []string{"username", "email"}},
		roles:        &memTable[models.Role]{unique: []string{"name"}},
		vehicles:     &memTable[models.Vehicle]{},
		fleets:       &memTable[models.Fleet]{},
		trips:        &memTable[models.Trip]{},
		maintenance:  &memTable[models.Maintenance]{},
		alerts:       &memTable[models.Alert]{},
		invoices:     &memTable[models.Invoice]{},
		geofences:    &memTable[models.Geofence]{},
		pricingRules: &memTable[models.PricingRule]{unique: []string{"rule_type"}},
		stations:     &memTable[models.Station]{},
		activityLogs: &memTable[models.ActivityLog]{},
		reports:      &memTable[models.Report]{},
	}
}

func (s *MemoryStore) Users() Repository[models.User] {
	return memRepo[models.User]{&s.mu, s.users}
}
func (s *MemoryStore) Roles() Repository[models.Role] {
	return memRepo[models.Role]{&s.mu, s.roles}
}
func (s *MemoryStore) Vehicles() Repository[models.Vehicle] {
	return memRepo[models.Vehicle]{&s.mu, s.vehicles}
}
func (s *MemoryStore) Fleets() Repository[models.Fleet] {
	return memRepo[models.Fleet]{&s.mu, s.fleets}
}
func (s *MemoryStore) Trips() Repository[models.Trip] {
	return memRepo[models.Trip]{&s.mu, s.trips}
}
func (s *MemoryStore) Maintenance() Repository[models.Maintenance] {
	return memRepo[models.Maintenance]{&s.mu, s.maintenance}
}
func (s *MemoryStore) Alerts() Repository[models.Alert] {
	return memRepo[models.Alert]{&s.mu, s.alerts}
}
func (s *MemoryStore) Invoices() Repository[models.Invoice] {
	return memRepo[models.Invoice]{&s.mu, s.invoices}
}
func (s *MemoryStore) Geofences() Repository[models.Geofence] {
	return memRepo[models.Geofence]{&s.mu, s.geofences}
}
func (s *MemoryStore) PricingRules() Repository[models.PricingRule] {
	return memRepo[models.PricingRule]{&s.mu, s.pricingRules}
}
func (s *MemoryStore) Stations() Repository[models.Station] {
	return memRepo[models.Station]{&s.mu, s.stations}
}
func (s *MemoryStore) ActivityLogs() Repository[models.ActivityLog] {
	return memRepo[models.ActivityLog]{&s.mu, s.activityLogs}
}
func (s *MemoryStore) Reports() Repository[models.Report] {
	return memRepo[models.Report]{&s.mu, s.reports}
}

// Transaction holds the store lock for the duration of fn so concurrent
// transfers or payments cannot interleave. The in-memory store does not roll
// back on error; tests that exercise failure paths fail before the first write.
func (s *MemoryStore) Transaction(fn func(Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(memTx{s})
}

// memTx hands out repositories that skip locking, since the transaction
// already holds the store mutex.
type memTx struct {
	s *MemoryStore
}

func (t memTx) Users() Repository[models.User]               { return memRepo[models.User]{nil, t.s.users} }
func (t memTx) Roles() Repository[models.Role]               { return memRepo[models.Role]{nil, t.s.roles} }
func (t memTx) Vehicles() Repository[models.Vehicle]         { return memRepo[models.Vehicle]{nil, t.s.vehicles} }
func (t memTx) Fleets() Repository[models.Fleet]             { return memRepo[models.Fleet]{nil, t.s.fleets} }
func (t memTx) Trips() Repository[models.Trip]               { return memRepo[models.Trip]{nil, t.s.trips} }
func (t memTx) Maintenance() Repository[models.Maintenance]  { return memRepo[models.Maintenance]{nil, t.s.maintenance} }
func (t memTx) Alerts() Repository[models.Alert]             { return memRepo[models.Alert]{nil, t.s.alerts} }
func (t memTx) Invoices() Repository[models.Invoice]         { return memRepo[models.Invoice]{nil, t.s.invoices} }
func (t memTx) Geofences() Repository[models.Geofence]       { return memRepo[models.Geofence]{nil, t.s.geofences} }
func (t memTx) PricingRules() Repository[models.PricingRule] { return memRepo[models.PricingRule]{nil, t.s.pricingRules} }
func (t memTx) Stations() Repository[models.Station]         { return memRepo[models.Station]{nil, t.s.stations} }
func (t memTx) ActivityLogs() Repository[models.ActivityLog] { return memRepo[models.ActivityLog]{nil, t.s.activityLogs} }
func (t memTx) Reports() Repository[models.Report]           { return memRepo[models.Report]{nil, t.s.reports} }
func (t memTx) Transaction(fn func(Store) error) error       { return fn(t) }

type memTable[T any] struct {
	nextID uint
	rows   []T
	unique []string
}

type memRepo[T any] struct {
	mu *sync.Mutex
	t  *memTable[T]
}

func (r memRepo[T]) lock() func() {
	if r.mu == nil {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r memRepo[T]) Create(record *T) error {
	defer r.lock()()
	rv := reflect.ValueOf(record).Elem()
	for _, col := range r.t.unique {
		want, ok := columnValue(rv, col)
		if !ok {
			continue
		}
		for i := range r.t.rows {
			have, _ := columnValue(reflect.ValueOf(&r.t.rows[i]).Elem(), col)
			if have.Interface() == want.Interface() {
				return ErrDuplicate
			}
		}
	}
	r.t.nextID++
	now := time.Now().UTC()
	setColumn(rv, "id", r.t.nextID)
	setColumn(rv, "created_at", now)
	setColumn(rv, "updated_at", now)
	r.t.rows = append(r.t.rows, *record)
	return nil
}

func (r memRepo[T]) Get(id uint, opts ...QueryOption) (*T, error) {
	defer r.lock()()
	q := buildQuery(opts)
	for i := range r.t.rows {
		rv := reflect.ValueOf(&r.t.rows[i]).Elem()
		if recordID(rv) == id && matches(rv, q) {
			record := r.t.rows[i]
			return &record, nil
		}
	}
	return nil, ErrNotFound
}

func (r memRepo[T]) First(opts ...QueryOption) (*T, error) {
	defer r.lock()()
	records := r.collect(buildQuery(opts))
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	record := records[0]
	return &record, nil
}

func (r memRepo[T]) List(opts ...QueryOption) ([]T, error) {
	defer r.lock()()
	return r.collect(buildQuery(opts)), nil
}

func (r memRepo[T]) Updates(id uint, fields map[string]any) error {
	defer r.lock()()
	for i := range r.t.rows {
		rv := reflect.ValueOf(&r.t.rows[i]).Elem()
		if recordID(rv) != id {
			continue
		}
		for _, col := range r.t.unique {
			value, ok := fields[col]
			if !ok || value == nil {
				continue
			}
			for j := range r.t.rows {
				if j == i {
					continue
				}
				have, _ := columnValue(reflect.ValueOf(&r.t.rows[j]).Elem(), col)
				if have.Interface() == value {
					return ErrDuplicate
				}
			}
		}
		for col, value := range fields {
			setColumn(rv, col, value)
		}
		setColumn(rv, "updated_at", time.Now().UTC())
		return nil
	}
	return ErrNotFound
}

func (r memRepo[T]) Delete(id uint) error {
	defer r.lock()()
	for i := range r.t.rows {
		rv := reflect.ValueOf(&r.t.rows[i]).Elem()
		if recordID(rv) == id {
			r.t.rows = append(r.t.rows[:i], r.t.rows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// collect filters rows in insertion order, which is creation order.
func (r memRepo[T]) collect(q query) []T {
	records := []T{}
	for i := range r.t.rows {
		rv := reflect.ValueOf(&r.t.rows[i]).Elem()
		if matches(rv, q) {
			records = append(records, r.t.rows[i])
		}
	}
	if q.newestFirst {
		for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
			records[i], records[j] = records[j], records[i]
		}
	}
	return records
}

func matches(rv reflect.Value, q query) bool {
	for _, f := range q.filters {
		fv, ok := columnValue(rv, f.column)
		if !ok {
			return false
		}
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				return false
			}
			fv = fv.Elem()
		}
		want := reflect.ValueOf(f.value)
		if want.Type() != fv.Type() {
			if !want.CanConvert(fv.Type()) {
				return false
			}
			want = want.Convert(fv.Type())
		}
		if !reflect.DeepEqual(fv.Interface(), want.Interface()) {
			return false
		}
	}
	for _, col := range q.unset {
		fv, ok := columnValue(rv, col)
		if !ok || fv.Kind() != reflect.Pointer || !fv.IsNil() {
			return false
		}
	}
	return true
}

func recordID(rv reflect.Value) uint {
	fv, _ := columnValue(rv, "id")
	return uint(fv.Uint())
}

// columnValue resolves a gorm-style snake_case column against a struct value,
// descending into embedded structs the way gorm flattens gorm.Model.
func columnValue(rv reflect.Value, column string) (reflect.Value, bool) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if fv, ok := columnValue(rv.Field(i), column); ok {
				return fv, true
			}
			continue
		}
		if toSnake(field.Name) == column {
			return rv.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func setColumn(rv reflect.Value, column string, value any) {
	fv, ok := columnValue(rv, column)
	if !ok || !fv.CanSet() {
		return
	}
	if value == nil {
		fv.Set(reflect.Zero(fv.Type()))
		return
	}
	vv := reflect.ValueOf(value)
	if fv.Kind() == reflect.Pointer && vv.Kind() != reflect.Pointer {
		p := reflect.New(fv.Type().Elem())
		if vv.CanConvert(fv.Type().Elem()) {
			p.Elem().Set(vv.Convert(fv.Type().Elem()))
			fv.Set(p)
		}
		return
	}
	if vv.CanConvert(fv.Type()) {
		fv.Set(vv.Convert(fv.Type()))
	}
}

// toSnake matches gorm's default column naming: VehicleID -> vehicle_id.
func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && (name[i-1] < 'A' || name[i-1] > 'Z') {
				b.WriteByte('_')
			} else if i > 0 && i+1 < len(name) && name[i+1] >= 'a' && name[i+1] <= 'z' {
				b.WriteByte('_')
			}
			b.WriteByte(byte(r - 'A' + 'a'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
