package shop

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CarWash/internal/domain"
)

// Repository реестр автомоек. Дубликаты не отсекаются.
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория автомоек
func NewRepository(db DBExecutor, dialect Dialect) *Repository {
	return &Repository{db: db, builder: dialect.Builder()}
}

// Create регистрирует автомойку и заполняет её ID
func (r *Repository) Create(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	query, args, err := r.builder.Insert("shops").
		Columns("shop_name", "owner_name", "email", "phone", "address", "city", "pincode", "services").
		Values(shop.ShopName, shop.OwnerName, shop.Email, shop.Phone, shop.Address, shop.City, shop.Pincode, shop.Services).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&shop.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return shop, nil
}

// List возвращает все автомойки в порядке регистрации
func (r *Repository) List(ctx context.Context) ([]*domain.Shop, error) {
	query, args, err := r.builder.Select(
		"id",
		"shop_name",
		"owner_name",
		"email",
		"phone",
		"address",
		"city",
		"pincode",
		"services",
	).
		From("shops").
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

	shops := make([]*domain.Shop, 0)
	for rows.Next() {
		var s domain.Shop
		err := rows.Scan(&s.ID, &s.ShopName, &s.OwnerName, &s.Email, &s.Phone, &s.Address, &s.City, &s.Pincode, &s.Services)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		shops = append(shops, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return shops, nil
}
