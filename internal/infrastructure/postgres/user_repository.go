package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pierrepaulo/stock-control/internal/domain"
	"github.com/pierrepaulo/stock-control/internal/domain/entity"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, email, password, is_admin, avatar, token, deleted_at, created_at, updated_at`

// UserRepo implementação de UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository constrói o adaptador.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste um novo usuário.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password, is_admin, avatar, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.IsAdmin, u.Avatar, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtém um usuário ativo por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL`
	return r.scanUser(r.q.QueryRow(ctx, query, id))
}

// GetByEmail obtém um usuário ativo por e-mail.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL LIMIT 1`
	return r.scanUser(r.q.QueryRow(ctx, query, email))
}

// GetByToken resolve o usuário ativo dono do token de sessão.
func (r *UserRepo) GetByToken(ctx context.Context, token string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE token = $1 AND deleted_at IS NULL LIMIT 1`
	return r.scanUser(r.q.QueryRow(ctx, query, token))
}

func (r *UserRepo) scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin,
		&u.Avatar, &u.Token, &u.DeletedAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// List lista usuários ativos com paginação.
func (r *UserRepo) List(ctx context.Context, offset, limit int) ([]entity.User, error) {
	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin,
			&u.Avatar, &u.Token, &u.DeletedAt, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update grava os campos mutáveis do usuário.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, password = $4, is_admin = $5, avatar = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.IsAdmin, u.Avatar, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// SetToken grava o token de sessão do usuário (nil limpa).
func (r *UserRepo) SetToken(ctx context.Context, id string, token *string) error {
	_, err := r.q.Exec(ctx, `UPDATE users SET token = $2 WHERE id = $1`, id, token)
	if err != nil {
		return fmt.Errorf("set user token: %w", err)
	}
	return nil
}

// ClearToken invalida a sessão identificada pelo token (logout).
func (r *UserRepo) ClearToken(ctx context.Context, token string) error {
	_, err := r.q.Exec(ctx, `UPDATE users SET token = NULL WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("clear user token: %w", err)
	}
	return nil
}

// SoftDelete marca o usuário como excluído e derruba a sessão.
func (r *UserRepo) SoftDelete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `UPDATE users SET deleted_at = now(), token = NULL WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
