package postgres

import (
	"context"
	"database/sql"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, username, display_name, password_hash, created_on FROM users WHERE username = $1`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.DisplayName, &u.PasswordHash, &u.CreatedOn)
	if err != nil {
		return nil, storeErr("get user", err)
	}
	return u, nil
}
