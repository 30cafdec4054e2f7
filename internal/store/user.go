package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fittrack/apiserver/types"
)

// UserRepository handles persistence for users.
type UserRepository struct {
	repo *Repository[types.User]
}

func NewUserRepository(db *sql.DB) *UserRepository {
	mapper := Mapper[types.User]{
		Table:   "users",
		Columns: []string{"id", "name", "email", "password"},
		Scan: func(row rowScanner) (types.User, error) {
			var user types.User
			err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash)
			return user, err
		},
	}
	return &UserRepository{repo: NewRepository(db, mapper)}
}

func (r *UserRepository) List(ctx context.Context, skip, limit int) ([]types.User, error) {
	return r.repo.List(ctx, skip, limit)
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (types.User, bool, error) {
	return r.repo.GetByID(ctx, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (types.User, bool, error) {
	return r.repo.GetBy(ctx, "email", email)
}

// Create inserts the user. The unique index on email is the final
// arbiter of duplicates; violations come back as ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	created, err := r.repo.Create(ctx, Fields{
		"name":     user.Name,
		"email":    user.Email,
		"password": user.PasswordHash,
	})
	if err != nil {
		if IsUniqueViolation(err) {
			return types.User{}, fmt.Errorf("email %q: %w", user.Email, ErrDuplicate)
		}
		return types.User{}, err
	}
	return created, nil
}

func (r *UserRepository) Update(ctx context.Context, id int, patch types.UserPatch) (types.User, bool, error) {
	fields := Fields{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}
	if patch.Password != nil {
		fields["password"] = *patch.Password
	}

	updated, ok, err := r.repo.Update(ctx, id, fields)
	if err != nil && IsUniqueViolation(err) {
		return types.User{}, false, fmt.Errorf("email: %w", ErrDuplicate)
	}
	return updated, ok, err
}

func (r *UserRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.repo.Delete(ctx, id)
}
