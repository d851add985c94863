package feedback

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CarWash/internal/domain"
)

// Repository репозиторий отзывов (только добавление и чтение)
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor, dialect Dialect) *Repository {
	return &Repository{db: db, builder: dialect.Builder()}
}

// Create сохраняет отзыв и заполняет его ID
func (r *Repository) Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	query, args, err := r.builder.Insert("feedback").
		Columns("name", "rating", "text", "ts").
		Values(fb.Name, fb.Rating, fb.Text, fb.CreatedAt).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&fb.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return fb, nil
}

// ListRecent возвращает не больше limit последних отзывов, новые первыми
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]*domain.Feedback, error) {
	builder := r.builder.Select("id", "name", "rating", "text", "ts").
		From("feedback").
		OrderBy("id DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "ListRecent", query, args)
}

// List возвращает все отзывы (административный дамп)
func (r *Repository) List(ctx context.Context) ([]*domain.Feedback, error) {
	query, args, err := r.builder.Select("id", "name", "rating", "text", "ts").
		From("feedback").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "List", query, args)
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]*domain.Feedback, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return scanFeedback(rows)
}

func scanFeedback(rows *sql.Rows) ([]*domain.Feedback, error) {
	items := make([]*domain.Feedback, 0)

	for rows.Next() {
		var fb domain.Feedback
		if err := rows.Scan(&fb.ID, &fb.Name, &fb.Rating, &fb.Text, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanFeedback - scan row: %v", ErrScanRow, err)
		}
		items = append(items, &fb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanFeedback - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}
