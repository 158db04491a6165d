package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Store errors. Repositories wrap these so callers can match with errors.Is.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicatePhone = errors.New("phone number already registered")
)

// Contact is the single persisted entity.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactInput carries the client-supplied fields for create and update.
// Update is a full replacement, so the same rules apply to both.
type ContactInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,basic_email"`
	Phone string `json:"phone" validate:"required,phone_10"`
}

// HasAllFields reports whether every field was supplied at all.
func (in ContactInput) HasAllFields() bool {
	return in.Name != "" && in.Email != "" && in.Phone != ""
}

// Normalize trims every field and lower-cases the email.
func (in ContactInput) Normalize() ContactInput {
	return ContactInput{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.ToLower(strings.TrimSpace(in.Email)),
		Phone: strings.TrimSpace(in.Phone),
	}
}

type ContactRepository interface {
	// List returns contacts ordered by name, case-insensitively.
	// A non-empty search restricts the result to names containing it, ignoring case.
	List(ctx context.Context, search string) ([]Contact, error)
	GetByID(ctx context.Context, id string) (*Contact, error)
	// Create assigns ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, in ContactInput) (*Contact, error)
	// Update replaces name, email and phone and refreshes UpdatedAt.
	Update(ctx context.Context, id string, in ContactInput) (*Contact, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

type ContactUsecase interface {
	ListContacts(ctx context.Context, search string) ([]Contact, error)
	GetContact(ctx context.Context, id string) (*Contact, error)
	CreateContact(ctx context.Context, in ContactInput) (*Contact, error)
	UpdateContact(ctx context.Context, id string, in ContactInput) (*Contact, error)
	DeleteContact(ctx context.Context, id string) error
}
