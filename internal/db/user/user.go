package user

import (
	c "authwall/internal/core/domain/common"
	e "authwall/internal/core/domain/errors"
	"authwall/internal/core/domain/user"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

const userColumns = `id, email, password_hash, session_token, reset_token, created_at`

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the same
// repository serves autonomous calls and unit-of-work transactions.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PgxUserRepository struct {
	db Querier
}

func NewPgxRepository(db Querier) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (email, password_hash, created_at) VALUES ($1, $2, $3) RETURNING `+userColumns,
		string(input.Email),
		string(input.PasswordHash),
		input.CreatedAt,
	)
	u, err = scanUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}
	err = u.Validate()
	if err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) FindBy(ctx context.Context, search user.SearchBy) (user.User, error) {
	return r.findBy(ctx, search, false)
}

func (r *PgxUserRepository) FindByForUpdate(ctx context.Context, search user.SearchBy) (user.User, error) {
	return r.findBy(ctx, search, true)
}

func (r *PgxUserRepository) findBy(ctx context.Context, search user.SearchBy, forUpdate bool) (u user.User, err error) {
	conditions := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)
	if search.ID.IsPresent {
		args = append(args, int64(search.ID.Value))
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if search.Email.IsPresent {
		args = append(args, string(search.Email.Value))
		conditions = append(conditions, fmt.Sprintf("email = $%d", len(args)))
	}
	if search.SessionToken.IsPresent {
		args = append(args, string(search.SessionToken.Value))
		conditions = append(conditions, fmt.Sprintf("session_token = $%d", len(args)))
	}
	if search.ResetToken.IsPresent {
		args = append(args, string(search.ResetToken.Value))
		conditions = append(conditions, fmt.Sprintf("reset_token = $%d", len(args)))
	}
	if len(conditions) == 0 {
		return u, user.ErrEmptySearchCriteria
	}

	query := `SELECT ` + userColumns + ` FROM "user" WHERE ` + strings.Join(conditions, " AND ")
	if forUpdate {
		query += " FOR UPDATE"
	}

	u, err = scanUser(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	err = u.Validate()
	if err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateUserInput) (u user.User, err error) {
	if input.IsEmpty() {
		return u, user.ErrNoUpdateFields
	}

	assignments := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	args = append(args, int64(input.ID))
	if input.DoPasswordHashUpdate {
		args = append(args, string(input.PasswordHash))
		assignments = append(assignments, fmt.Sprintf("password_hash = $%d", len(args)))
	}
	if input.DoSessionTokenUpdate {
		args = append(args, encodeSessionToken(input.SessionToken))
		assignments = append(assignments, fmt.Sprintf("session_token = $%d", len(args)))
	}
	if input.DoResetTokenUpdate {
		args = append(args, encodeResetToken(input.ResetToken))
		assignments = append(assignments, fmt.Sprintf("reset_token = $%d", len(args)))
	}

	query := `UPDATE "user" SET ` + strings.Join(assignments, ", ") + ` WHERE id = $1 RETURNING ` + userColumns
	u, err = scanUser(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	err = u.Validate()
	if err != nil {
		return u, err
	}
	return u, nil
}

func encodeSessionToken(token c.Optional[user.SessionToken]) pgtype.Text {
	if !token.IsPresent {
		return pgtype.Text{Status: pgtype.Null}
	}
	return pgtype.Text{String: string(token.Value), Status: pgtype.Present}
}

func encodeResetToken(token c.Optional[user.PasswordResetToken]) pgtype.Text {
	if !token.IsPresent {
		return pgtype.Text{Status: pgtype.Null}
	}
	return pgtype.Text{String: string(token.Value), Status: pgtype.Present}
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id           int64
		email        string
		passwordHash string
		sessionToken pgtype.Text
		resetToken   pgtype.Text
		createdAt    time.Time
	)
	err = row.Scan(&id, &email, &passwordHash, &sessionToken, &resetToken, &createdAt)
	if err != nil {
		return u, err
	}
	return user.User{
		ID:           user.ID(id),
		Email:        c.Email(email),
		PasswordHash: user.PasswordHash(passwordHash),
		SessionToken: c.NewOptional(user.SessionToken(sessionToken.String), sessionToken.Status == pgtype.Present),
		ResetToken:   c.NewOptional(user.PasswordResetToken(resetToken.String), resetToken.Status == pgtype.Present),
		CreatedAt:    createdAt,
	}, nil
}
