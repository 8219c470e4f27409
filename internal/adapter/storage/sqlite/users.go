package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"dsa-tutor/internal/domain/model"
	"dsa-tutor/internal/domain/ports"
)

// UserRepository stores accounts in the users table.
type UserRepository struct {
	store *Store
}

var _ ports.UserStore = (*UserRepository)(nil)

// CreateUser inserts user. A taken username yields model.ErrUserExists.
func (r *UserRepository) CreateUser(ctx context.Context, user model.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	insert := r.store.sb.Insert("users").
		Columns("username", "hashed_password", "disabled", "created_at").
		Values(user.Username, user.HashedPassword, user.Disabled, user.CreatedAt.UTC())

	if _, err := r.store.exec(ctx, insert); err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return model.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindUser loads the account named username or returns model.ErrUserNotFound.
func (r *UserRepository) FindUser(ctx context.Context, username string) (model.User, error) {
	query, args, err := r.store.sb.
		Select("username", "hashed_password", "disabled", "created_at").
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return model.User{}, fmt.Errorf("build query: %w", err)
	}

	var user model.User
	err = r.store.db.QueryRowContext(ctx, query, args...).
		Scan(&user.Username, &user.HashedPassword, &user.Disabled, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("query user: %w", err)
	}
	return user, nil
}
