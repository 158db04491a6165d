package postgres

import (
	"contact-book-backend/internal/domain"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// SQLSTATE for unique_violation; the only constraint the table enforces besides NOT NULL.
const uniqueViolation = "23505"

type contactRepo struct {
	db    *pgxpool.Pool
	table string // quoted identifier
}

// NewContactRepository returns a repository over the given table.
// The table name is quoted, so any identifier is safe to pass.
func NewContactRepository(db *pgxpool.Pool, table string) domain.ContactRepository {
	return &contactRepo{db: db, table: pq.QuoteIdentifier(table)}
}

const contactColumns = `id, name, email, phone, created_at, updated_at`

func (r *contactRepo) List(ctx context.Context, search string) ([]domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM ` + r.table
	var args []any
	if search != "" {
		query += ` WHERE name ILIKE $1 ESCAPE '\'`
		args = append(args, "%"+escapeLike(search)+"%")
	}
	query += ` ORDER BY lower(name) ASC, name ASC, id ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *c)
	}
	return contacts, rows.Err()
}

func (r *contactRepo) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	query := `SELECT ` + contactColumns + ` FROM ` + r.table + ` WHERE id = $1`
	c, err := scanContact(r.db.QueryRow(ctx, query, uid))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contactRepo) Create(ctx context.Context, in domain.ContactInput) (*domain.Contact, error) {
	query := `INSERT INTO ` + r.table + ` (id, name, email, phone, created_at, updated_at)
              VALUES ($1, $2, $3, $4, now(), now()) RETURNING ` + contactColumns

	c, err := scanContact(r.db.QueryRow(ctx, query, uuid.New(), in.Name, in.Email, in.Phone))
	if err != nil {
		return nil, translate("create contact", err)
	}
	return c, nil
}

func (r *contactRepo) Update(ctx context.Context, id string, in domain.ContactInput) (*domain.Contact, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	query := `UPDATE ` + r.table + ` SET name = $2, email = $3, phone = $4, updated_at = now()
              WHERE id = $1 RETURNING ` + contactColumns

	c, err := scanContact(r.db.QueryRow(ctx, query, uid, in.Name, in.Email, in.Phone))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, translate("update contact", err)
	}
	return c, nil
}

func (r *contactRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNotFound
	}

	result, err := r.db.Exec(ctx, `DELETE FROM `+r.table+` WHERE id = $1`, uid)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contactRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func scanContact(row pgx.Row) (*domain.Contact, error) {
	var (
		c  domain.Contact
		id uuid.UUID
	)
	if err := row.Scan(&id, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.ID = id.String()
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return &c, nil
}

// translate maps a unique violation on phone onto domain.ErrDuplicatePhone.
func translate(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicatePhone)
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in s match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
