package pgdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"licitaya-api/internal/entity"
	"licitaya-api/internal/repo/repo_errors"
	"licitaya-api/pkg/postgres"

	"github.com/lib/pq"
)

const userColumns = "id, name, email, phone, company, is_active, subscription_tier, is_verified, verification_token, verification_token_expires, preferences, created_at"

const uniqueViolationCode = "23505"

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pgdb *postgres.Postgres) *UserRepo {
	return &UserRepo{pgdb}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	getUserSql, args, _ := r.SqlBuilder.
		Select(userColumns).
		From("users").
		Where("email = ?", email).
		ToSql()

	return r.scanUser(r.Database.QueryRowContext(ctx, getUserSql, args...))
}

func (r *UserRepo) GetUserByToken(ctx context.Context, token string) (*entity.User, error) {
	getUserSql, args, _ := r.SqlBuilder.
		Select(userColumns).
		From("users").
		Where("verification_token = ?", token).
		ToSql()

	return r.scanUser(r.Database.QueryRowContext(ctx, getUserSql, args...))
}

func (r *UserRepo) scanUser(row *sql.Row) (*entity.User, error) {
	var user entity.User
	var phone, company, token sql.NullString
	var expires sql.NullTime
	var preferences []byte
	var createdAt time.Time

	err := row.Scan(&user.Id, &user.Name, &user.Email, &phone, &company, &user.IsActive,
		&user.SubscriptionTier, &user.IsVerified, &token, &expires, &preferences, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	user.Phone = phone.String
	user.Company = company.String
	user.VerificationToken = token.String
	user.VerificationTokenExpires = expires.Time
	user.CreatedAt = createdAt.Format(time.RFC3339)

	if len(preferences) > 0 {
		if err := json.Unmarshal(preferences, &user.Preferences); err != nil {
			return nil, err
		}
	}

	return &user, nil
}

func (r *UserRepo) CreateUser(ctx context.Context, input *entity.CreateUserInput) (int64, error) {
	preferences, err := json.Marshal(input.Preferences)
	if err != nil {
		return 0, err
	}

	createUserSql, args, _ := r.SqlBuilder.
		Insert("users").
		Columns("name", "email", "phone", "company", "is_active", "subscription_tier",
			"is_verified", "verification_token", "verification_token_expires", "preferences").
		Values(input.Name, input.Email, nullString(input.Phone), nullString(input.Company),
			true, "free", false, input.VerificationToken, input.VerificationTokenExpires, preferences).
		Suffix("RETURNING id").
		ToSql()

	var userId int64
	err = r.Database.QueryRowContext(ctx, createUserSql, args...).Scan(&userId)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, repo_errors.ErrUniqueViolation
		}

		return 0, err
	}

	return userId, nil
}

func (r *UserRepo) UpdateVerificationToken(ctx context.Context, userId int64, token string, expires time.Time) error {
	updateTokenSql, args, _ := r.SqlBuilder.
		Update("users").
		Set("verification_token", token).
		Set("verification_token_expires", expires).
		Where("id = ?", userId).
		ToSql()

	_, err := r.Database.ExecContext(ctx, updateTokenSql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return repo_errors.ErrUniqueViolation
		}

		return err
	}

	return nil
}

// MarkUserVerified flips the user to verified and clears the live token in
// the same statement, so a verified user never keeps a usable token.
func (r *UserRepo) MarkUserVerified(ctx context.Context, userId int64) error {
	verifySql, args, _ := r.SqlBuilder.
		Update("users").
		Set("is_verified", true).
		Set("verification_token", nil).
		Set("verification_token_expires", nil).
		Where("id = ?", userId).
		ToSql()

	_, err := r.Database.ExecContext(ctx, verifySql, args...)
	if err != nil {
		return err
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
