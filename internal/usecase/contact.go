package usecase

import (
	"contact-book-backend/internal/domain"
	"contact-book-backend/pkg/apperror"
	"contact-book-backend/pkg/validation"
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
)

const (
	msgFieldsRequired = "Name, email and phone are required"
	msgDuplicatePhone = "This phone number is already registered"
	msgNotFound       = "Contact not found"
)

type contactUsecase struct {
	contactRepo domain.ContactRepository
	validate    *validator.Validate
}

// NewContactUsecase creates a new contact usecase.
// validate must have the custom tags from pkg/validation registered.
func NewContactUsecase(contactRepo domain.ContactRepository, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		contactRepo: contactRepo,
		validate:    validate,
	}
}

func (u *contactUsecase) ListContacts(ctx context.Context, search string) ([]domain.Contact, error) {
	contacts, err := u.contactRepo.List(ctx, search)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	return contacts, nil
}

func (u *contactUsecase) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	contact, err := u.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return contact, nil
}

func (u *contactUsecase) CreateContact(ctx context.Context, in domain.ContactInput) (*domain.Contact, error) {
	normalized, err := u.check(in)
	if err != nil {
		return nil, err
	}

	contact, err := u.contactRepo.Create(ctx, normalized)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return contact, nil
}

func (u *contactUsecase) UpdateContact(ctx context.Context, id string, in domain.ContactInput) (*domain.Contact, error) {
	normalized, err := u.check(in)
	if err != nil {
		return nil, err
	}

	contact, err := u.contactRepo.Update(ctx, id, normalized)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return contact, nil
}

func (u *contactUsecase) DeleteContact(ctx context.Context, id string) error {
	if err := u.contactRepo.Delete(ctx, id); err != nil {
		return mapStoreError(err)
	}
	return nil
}

// check runs the raw presence check before normalising and validating formats.
func (u *contactUsecase) check(in domain.ContactInput) (domain.ContactInput, error) {
	if !in.HasAllFields() {
		return domain.ContactInput{}, apperror.BadRequest(msgFieldsRequired)
	}

	normalized := in.Normalize()
	if err := u.validate.Struct(normalized); err != nil {
		return domain.ContactInput{}, apperror.BadRequest(validation.Message(err))
	}
	return normalized, nil
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound(msgNotFound)
	case errors.Is(err, domain.ErrDuplicatePhone):
		return apperror.Conflict(msgDuplicatePhone)
	default:
		return apperror.Internal(err)
	}
}
