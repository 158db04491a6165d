package usecase

import (
	"contact-book-backend/pkg/apperror"
	"context"
)

// Pinger is satisfied by every contact repository.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) error
}

type healthUsecase struct {
	store Pinger
}

func NewHealthUsecase(store Pinger) HealthUsecase {
	return &healthUsecase{store: store}
}

func (u *healthUsecase) Check(ctx context.Context) error {
	if err := u.store.Ping(ctx); err != nil {
		return apperror.Unavailable("Store unavailable", err)
	}
	return nil
}
