package repo

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/lodgings-api/internal/domain"
)

// MemoryStore is an in-process store implementing LodgingRepo, ReservationRepo
// and UserRepo over shared maps guarded by one mutex. It is used when the
// server runs with STORAGE=memory and by tests that don't need Postgres.
//
// Lodgings are listed in insertion order. Deleting a lodging removes its
// reservations, matching the ON DELETE CASCADE in the Postgres schema.
type MemoryStore struct {
	mu           sync.RWMutex
	now          func() time.Time
	lodgings     map[uuid.UUID]domain.Lodging
	order        []uuid.UUID
	reservations map[uuid.UUID]domain.Reservation
	users        map[uuid.UUID]domain.User
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:          func() time.Time { return time.Now().UTC() },
		lodgings:     make(map[uuid.UUID]domain.Lodging),
		reservations: make(map[uuid.UUID]domain.Reservation),
		users:        make(map[uuid.UUID]domain.User),
	}
}

// Lodgings returns a LodgingRepo view of the store.
func (s *MemoryStore) Lodgings() LodgingRepo { return memLodgingRepo{s} }

// Reservations returns a ReservationRepo view of the store.
func (s *MemoryStore) Reservations() ReservationRepo { return memReservationRepo{s} }

// Users returns a UserRepo view of the store.
func (s *MemoryStore) Users() UserRepo { return memUserRepo{s} }

// seedLodging is the on-disk shape of one entry in a seed file.
// JSON is valid YAML, so both formats decode through yaml.v3.
type seedLodging struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Street      string  `yaml:"street"`
	City        string  `yaml:"city"`
	State       string  `yaml:"state"`
	Zip         string  `yaml:"zip"`
	Price       float64 `yaml:"price"`
}

// ReadSeedFile reads a JSON or YAML list of lodgings from path.
func ReadSeedFile(path string) ([]domain.Lodging, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("repo.ReadSeedFile: %w", err)
	}
	return DecodeSeed(raw)
}

// DecodeSeed decodes a JSON or YAML list of lodgings in file order.
// Entries are not validated; insert them through the lodging service.
func DecodeSeed(raw []byte) ([]domain.Lodging, error) {
	var entries []seedLodging
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("repo.DecodeSeed: %w", err)
	}
	out := make([]domain.Lodging, len(entries))
	for i, e := range entries {
		out[i] = domain.Lodging{
			Name:        e.Name,
			Description: e.Description,
			Street:      e.Street,
			City:        e.City,
			State:       e.State,
			Zip:         e.Zip,
			Price:       e.Price,
		}
	}
	return out, nil
}

// --- lodgings ----------------------------------------------------------------

type memLodgingRepo struct{ s *MemoryStore }

func (r memLodgingRepo) Create(_ context.Context, l domain.Lodging) (domain.Lodging, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	l.ID = uuid.New()
	l.CreatedAt = now
	l.UpdatedAt = now
	l.Reservations = nil
	r.s.lodgings[l.ID] = l
	r.s.order = append(r.s.order, l.ID)
	return l, nil
}

func (r memLodgingRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Lodging, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	l, ok := r.s.lodgings[id]
	if !ok {
		return domain.Lodging{}, fmt.Errorf("repo.MemoryStore.Lodgings.GetByID: %w", domain.ErrNotFound)
	}
	return l, nil
}

func (r memLodgingRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.order), nil
}

func (r memLodgingRepo) List(_ context.Context, offset, limit int) ([]domain.Lodging, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.s.order) || limit <= 0 {
		return nil, nil
	}
	end := min(offset+limit, len(r.s.order))

	out := make([]domain.Lodging, 0, end-offset)
	for _, id := range r.s.order[offset:end] {
		out = append(out, r.s.lodgings[id])
	}
	return out, nil
}

func (r memLodgingRepo) Update(_ context.Context, l domain.Lodging) (domain.Lodging, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.lodgings[l.ID]
	if !ok {
		return domain.Lodging{}, fmt.Errorf("repo.MemoryStore.Lodgings.Update: %w", domain.ErrNotFound)
	}
	l.CreatedAt = existing.CreatedAt
	l.UpdatedAt = r.s.now()
	l.Reservations = nil
	r.s.lodgings[l.ID] = l
	return l, nil
}

func (r memLodgingRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.lodgings[id]; !ok {
		return fmt.Errorf("repo.MemoryStore.Lodgings.Delete: %w", domain.ErrNotFound)
	}
	delete(r.s.lodgings, id)
	if i := slices.Index(r.s.order, id); i >= 0 {
		r.s.order = slices.Delete(r.s.order, i, i+1)
	}
	for rid, res := range r.s.reservations {
		if res.LodgingID == id {
			delete(r.s.reservations, rid)
		}
	}
	return nil
}

// --- reservations ------------------------------------------------------------

type memReservationRepo struct{ s *MemoryStore }

func (r memReservationRepo) Create(_ context.Context, res domain.Reservation) (domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.lodgings[res.LodgingID]; !ok {
		return domain.Reservation{}, fmt.Errorf("repo.MemoryStore.Reservations.Create: lodging: %w", domain.ErrNotFound)
	}
	if _, ok := r.s.users[res.UserID]; !ok {
		return domain.Reservation{}, fmt.Errorf("repo.MemoryStore.Reservations.Create: user: %w", domain.ErrNotFound)
	}
	res.ID = uuid.New()
	res.CreatedAt = r.s.now()
	r.s.reservations[res.ID] = res
	return res, nil
}

func (r memReservationRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Reservation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res, ok := r.s.reservations[id]
	if !ok {
		return domain.Reservation{}, fmt.Errorf("repo.MemoryStore.Reservations.GetByID: %w", domain.ErrNotFound)
	}
	return res, nil
}

func (r memReservationRepo) ListByLodgingID(_ context.Context, lodgingID uuid.UUID) ([]domain.Reservation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []domain.Reservation
	for _, res := range r.s.reservations {
		if res.LodgingID == lodgingID {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r memReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reservations[id]; !ok {
		return fmt.Errorf("repo.MemoryStore.Reservations.Delete: %w", domain.ErrNotFound)
	}
	delete(r.s.reservations, id)
	return nil
}

// --- users -------------------------------------------------------------------

type memUserRepo struct{ s *MemoryStore }

func (r memUserRepo) Create(_ context.Context, u domain.User) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u.Email = strings.ToLower(u.Email)
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.User{}, fmt.Errorf("repo.MemoryStore.Users.Create: %w", domain.ErrConflict)
		}
	}
	u.ID = uuid.New()
	u.CreatedAt = r.s.now()
	r.s.users[u.ID] = u
	return u, nil
}

func (r memUserRepo) GetByID(_ context.Context, id uuid.UUID) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return domain.User{}, fmt.Errorf("repo.MemoryStore.Users.GetByID: %w", domain.ErrNotFound)
	}
	return u, nil
}

func (r memUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	email = strings.ToLower(email)
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, fmt.Errorf("repo.MemoryStore.Users.GetByEmail: %w", domain.ErrNotFound)
}
