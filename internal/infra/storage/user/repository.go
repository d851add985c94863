package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CarWash/internal/domain"
)

// Repository репозиторий пользователей
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
	unique  UniqueViolationDetector
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor, backend Backend) *Repository {
	return &Repository{
		db:      db,
		builder: backend.Builder(),
		unique:  backend,
	}
}

// Create добавляет пользователя одним INSERT.
// Дубликат email или телефона отклоняется ограничением хранилища и возвращает ErrUserExists,
// частичной записи при этом не бывает.
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query, args, err := r.builder.Insert("users").
		Columns("name", "email", "phone", "password_hash").
		Values(user.Name, user.Email, user.Phone, user.PasswordHash).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		if r.unique.IsUniqueViolation(err) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return user, nil
}

// ListByLogin возвращает всех пользователей, у которых email ИЛИ телефон совпадает с login.
// Телефон произвольный текст, поэтому совпасть могут несколько строк (id по возрастанию).
func (r *Repository) ListByLogin(ctx context.Context, login string) ([]*domain.User, error) {
	query, args, err := r.builder.Select("id", "name", "email", "phone", "password_hash").
		From("users").
		Where(squirrel.Or{
			squirrel.Eq{"email": login},
			squirrel.Eq{"phone": login},
		}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByLogin - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByLogin - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0, 1)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Phone,
			&user.PasswordHash,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByLogin - scan row: %v", ErrScanRow, err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByLogin - rows error: %v", ErrScanRow, err)
	}

	if len(users) == 0 {
		return nil, ErrUserNotFound
	}

	return users, nil
}

// List возвращает всех пользователей без хешей паролей (административный дамп)
func (r *Repository) List(ctx context.Context) ([]*domain.User, error) {
	query, args, err := r.builder.Select("id", "name", "email", "phone").
		From("users").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Phone); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return users, nil
}
