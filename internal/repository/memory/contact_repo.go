package memory

import (
	"cmp"
	"contact-book-backend/internal/domain"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// contactRepo keeps contacts in process memory. Phone uniqueness is checked
// under the same lock as the write, so concurrent duplicates lose with
// domain.ErrDuplicatePhone just like against the database index.
type contactRepo struct {
	mu       sync.Mutex
	contacts map[string]domain.Contact
	phones   map[string]string // phone -> id
	now      func() time.Time
}

func NewContactRepository() domain.ContactRepository {
	return &contactRepo{
		contacts: make(map[string]domain.Contact),
		phones:   make(map[string]string),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *contactRepo) List(_ context.Context, search string) ([]domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	needle := strings.ToLower(search)
	contacts := make([]domain.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		if needle != "" && !strings.Contains(strings.ToLower(c.Name), needle) {
			continue
		}
		contacts = append(contacts, c)
	}

	slices.SortFunc(contacts, func(a, b domain.Contact) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			strings.Compare(a.Name, b.Name),
			strings.Compare(a.ID, b.ID),
		)
	})
	return contacts, nil
}

func (r *contactRepo) GetByID(_ context.Context, id string) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.contacts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *contactRepo) Create(_ context.Context, in domain.ContactInput) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.phones[in.Phone]; taken {
		return nil, fmt.Errorf("create contact: %w", domain.ErrDuplicatePhone)
	}

	now := r.now()
	c := domain.Contact{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.contacts[c.ID] = c
	r.phones[c.Phone] = c.ID
	return &c, nil
}

func (r *contactRepo) Update(_ context.Context, id string, in domain.ContactInput) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.contacts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if owner, taken := r.phones[in.Phone]; taken && owner != id {
		return nil, fmt.Errorf("update contact: %w", domain.ErrDuplicatePhone)
	}

	delete(r.phones, c.Phone)
	c.Name, c.Email, c.Phone = in.Name, in.Email, in.Phone
	c.UpdatedAt = r.now()
	r.contacts[id] = c
	r.phones[c.Phone] = id
	return &c, nil
}

func (r *contactRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.contacts[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.contacts, id)
	delete(r.phones, c.Phone)
	return nil
}

func (r *contactRepo) Ping(context.Context) error {
	return nil
}
