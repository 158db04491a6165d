package postgres

import (
	"errors"
	"testing"

	"contact-book-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "bob", escapeLike("bob"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
}

func TestTranslate(t *testing.T) {
	t.Run("Should map unique violations to duplicate phone", func(t *testing.T) {
		err := translate("create contact", &pgconn.PgError{Code: uniqueViolation, ConstraintName: "contacts_phone_key"})
		assert.ErrorIs(t, err, domain.ErrDuplicatePhone)
	})

	t.Run("Should pass other errors through", func(t *testing.T) {
		cause := errors.New("conn closed")
		assert.Same(t, cause, translate("create contact", cause))

		pgErr := &pgconn.PgError{Code: "23514"}
		assert.Same(t, pgErr, translate("update contact", pgErr))
	})
}
