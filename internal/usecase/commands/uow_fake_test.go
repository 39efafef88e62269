//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"rental-marketplace/internal/domain/listing"
	"rental-marketplace/internal/domain/reservation"
	"rental-marketplace/internal/domain/tenant"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type queuedJob struct {
	kind    string
	topic   string
	payload []byte
}

// memoryStore is an in-memory UnitOfWork. A failed Within discards every write made inside it.
type memoryStore struct {
	mu          sync.Mutex
	bookables   map[uuid.UUID]shared.BookableListingSnapshot
	listings    map[uuid.UUID]listing.Listing
	bookings    map[uuid.UUID]reservation.Reservation
	tenants     map[uuid.UUID]tenant.Tenant
	users       map[uuid.UUID]shared.UserSnapshot
	passwords   map[uuid.UUID]string
	jobs        []queuedJob
	tenantNames map[uuid.UUID]string

	createErr error
	lockCalls int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		bookables:   map[uuid.UUID]shared.BookableListingSnapshot{},
		listings:    map[uuid.UUID]listing.Listing{},
		bookings:    map[uuid.UUID]reservation.Reservation{},
		tenants:     map[uuid.UUID]tenant.Tenant{},
		users:       map[uuid.UUID]shared.UserSnapshot{},
		passwords:   map[uuid.UUID]string{},
		tenantNames: map[uuid.UUID]string{},
	}
}

func (m *memoryStore) addBookable(s shared.BookableListingSnapshot) {
	m.bookables[s.ID] = s
}

func (m *memoryStore) addBooking(r *reservation.Reservation) {
	m.bookings[r.ID()] = *r
}

func (m *memoryStore) addListing(l *listing.Listing) {
	m.listings[l.ID()] = *l
}

func (m *memoryStore) addTenant(t *tenant.Tenant) {
	m.tenants[t.ID()] = *t
	m.tenantNames[t.ID()] = t.Name()
}

func (m *memoryStore) booking(id uuid.UUID) (reservation.Reservation, bool) {
	r, ok := m.bookings[id]
	return r, ok
}

func (m *memoryStore) snapshot() *memoryStore {
	c := &memoryStore{
		bookables:   map[uuid.UUID]shared.BookableListingSnapshot{},
		listings:    map[uuid.UUID]listing.Listing{},
		bookings:    map[uuid.UUID]reservation.Reservation{},
		tenants:     map[uuid.UUID]tenant.Tenant{},
		users:       map[uuid.UUID]shared.UserSnapshot{},
		passwords:   map[uuid.UUID]string{},
		tenantNames: map[uuid.UUID]string{},
		jobs:        append([]queuedJob(nil), m.jobs...),
	}
	for k, v := range m.bookables {
		c.bookables[k] = v
	}
	for k, v := range m.listings {
		c.listings[k] = v
	}
	for k, v := range m.bookings {
		c.bookings[k] = v
	}
	for k, v := range m.tenants {
		c.tenants[k] = v
	}
	for k, v := range m.users {
		c.users[k] = v
	}
	for k, v := range m.passwords {
		c.passwords[k] = v
	}
	for k, v := range m.tenantNames {
		c.tenantNames[k] = v
	}
	return c
}

func (m *memoryStore) restore(c *memoryStore) {
	m.bookables, m.listings, m.bookings = c.bookables, c.listings, c.bookings
	m.tenants, m.users, m.passwords = c.tenants, c.users, c.passwords
	m.tenantNames, m.jobs = c.tenantNames, c.jobs
}

func (m *memoryStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved := m.snapshot()
	if err := fn(ctx, &memoryTx{m}); err != nil {
		m.restore(saved)
		return err
	}
	return nil
}

func (m *memoryStore) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (m *memoryStore) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (m *memoryStore) CommandReads() shared.CommandReads {
	return &memoryReads{m}
}

type memoryTx struct{ s *memoryStore }

func (t *memoryTx) Bookings() shared.BookingRepository           { return &memoryBookings{t.s} }
func (t *memoryTx) Listings() shared.ListingRepository           { return &memoryListings{t.s} }
func (t *memoryTx) Tenants() shared.TenantRepository             { return &memoryTenants{t.s} }
func (t *memoryTx) Users() shared.UserRepository                 { return &memoryUsers{t.s} }
func (t *memoryTx) Notifications() shared.NotificationRepository { return &memoryOutbox{t.s} }
func (t *memoryTx) Reads() shared.CommandReads                   { return &memoryReads{t.s} }
func (t *memoryTx) DB() sqlc.DBTX                                { return nil }

type memoryReads struct{ s *memoryStore }

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func (r *memoryReads) ListingByID(_ context.Context, id uuid.UUID) (*listing.Listing, error) {
	l, ok := r.s.listings[id]
	if !ok {
		return nil, notFound("listing")
	}
	return &l, nil
}

func (r *memoryReads) BookableListing(_ context.Context, id uuid.UUID) (*shared.BookableListingSnapshot, error) {
	b, ok := r.s.bookables[id]
	if !ok {
		return nil, notFound("listing")
	}
	return &b, nil
}

func (r *memoryReads) BookingByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return &b, nil
}

func (r *memoryReads) BookingForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return r.BookingByID(ctx, id)
}

func (r *memoryReads) BookingContext(_ context.Context, id uuid.UUID) (*shared.BookingContextSnapshot, error) {
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	snap := &shared.BookingContextSnapshot{
		ID:            b.ID(),
		TenantID:      b.TenantID(),
		UserID:        b.UserID(),
		CustomerName:  b.Contact().Name().Value(),
		CustomerPhone: b.Contact().Phone(),
		CustomerEmail: b.Contact().Email(),
		StartDate:     b.Dates().Start(),
		EndDate:       b.Dates().End(),
		TotalPrice:    b.TotalPrice(),
		Status:        b.Status().String(),
		TenantName:    r.s.tenantNames[b.TenantID()],
	}
	if l, ok := r.s.bookables[b.ListingID()]; ok {
		snap.ListingName = l.Name()
	}
	if b.UserID() != nil {
		snap.UserEmail = r.s.users[*b.UserID()].Email
	}
	return snap, nil
}

func (r *memoryReads) TenantByID(_ context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	t, ok := r.s.tenants[id]
	if !ok {
		return nil, notFound("tenant")
	}
	return &t, nil
}

func (r *memoryReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return &u, nil
}

func (r *memoryReads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, string, error) {
	for id, u := range r.s.users {
		if u.Email == email {
			return &u, r.s.passwords[id], nil
		}
	}
	return nil, "", notFound("user")
}

type memoryBookings struct{ s *memoryStore }

func (b *memoryBookings) LockListing(context.Context, uuid.UUID) error {
	b.s.lockCalls++
	return nil
}

func (b *memoryBookings) CountOverlapping(_ context.Context, listingID uuid.UUID, dates reservation.DateRange) (int64, error) {
	var n int64
	for _, r := range b.s.bookings {
		if r.ListingID() == listingID && r.IsBlocking() && r.Dates().Overlaps(dates) {
			n++
		}
	}
	return n, nil
}

func (b *memoryBookings) Create(_ context.Context, res *reservation.Reservation) error {
	if b.s.createErr != nil {
		return b.s.createErr
	}
	b.s.bookings[res.ID()] = *res
	return nil
}

// Update enforces the no-overlap constraint the way the database does
func (b *memoryBookings) Update(_ context.Context, res *reservation.Reservation) error {
	if res.IsBlocking() {
		for id, other := range b.s.bookings {
			if id != res.ID() && other.ListingID() == res.ListingID() && other.IsBlocking() && other.Dates().Overlaps(res.Dates()) {
				return infra.WrapRepoErr("failed to update booking", nil, infra.KindConflict)
			}
		}
	}
	b.s.bookings[res.ID()] = *res
	return nil
}

type memoryListings struct{ s *memoryStore }

func (l *memoryListings) Create(_ context.Context, v *listing.Listing) error {
	l.s.listings[v.ID()] = *v
	return nil
}

func (l *memoryListings) Update(_ context.Context, v *listing.Listing) error {
	if _, ok := l.s.listings[v.ID()]; !ok {
		return notFound("listing")
	}
	l.s.listings[v.ID()] = *v
	return nil
}

func (l *memoryListings) Delete(_ context.Context, id, tenantID uuid.UUID) ([]string, error) {
	v, ok := l.s.listings[id]
	if !ok || v.TenantID() != tenantID {
		return nil, notFound("listing")
	}
	delete(l.s.listings, id)
	return v.Images(), nil
}

type memoryTenants struct{ s *memoryStore }

func (t *memoryTenants) Create(_ context.Context, v *tenant.Tenant) error {
	for _, existing := range t.s.tenants {
		if existing.Slug() == v.Slug() || existing.Name() == v.Name() {
			return infra.WrapRepoErr("failed to create tenant", nil, infra.KindDuplicateKey)
		}
	}
	t.s.addTenant(v)
	return nil
}

func (t *memoryTenants) Update(_ context.Context, v *tenant.Tenant) error {
	t.s.tenants[v.ID()] = *v
	return nil
}

type memoryUsers struct{ s *memoryStore }

func (u *memoryUsers) Create(_ context.Context, v *user.User) error {
	for _, existing := range u.s.users {
		if existing.Email == v.Email().Value() {
			return infra.WrapRepoErr("failed to create user", nil, infra.KindDuplicateKey)
		}
	}
	u.s.users[v.ID()] = shared.UserSnapshot{
		ID:       v.ID(),
		Email:    v.Email().Value(),
		Role:     v.Role().String(),
		FullName: v.FullName().Value(),
		Phone:    v.Phone(),
		IsActive: v.IsActive(),
	}
	u.s.passwords[v.ID()] = v.PasswordHash()
	return nil
}

func (u *memoryUsers) AssignTenant(_ context.Context, userID uuid.UUID, role user.Role, tenantID uuid.UUID) error {
	snap, ok := u.s.users[userID]
	if !ok {
		return notFound("user")
	}
	snap.Role = role.String()
	snap.TenantID = &tenantID
	u.s.users[userID] = snap
	return nil
}

func (u *memoryUsers) UpdateLastLogin(context.Context, uuid.UUID) error {
	return nil
}

type memoryOutbox struct{ s *memoryStore }

func (o *memoryOutbox) Enqueue(_ context.Context, kind, topic string, payload []byte, _ time.Time) error {
	o.s.jobs = append(o.s.jobs, queuedJob{kind: kind, topic: topic, payload: payload})
	return nil
}

func sharedUser(email string) shared.UserSnapshot {
	return shared.UserSnapshot{ID: uuid.New(), Email: email, Role: user.RoleCustomer.String(), IsActive: true}
}
