package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/SMC-CarWash/pkg/metrics"
)

// DefaultStatsInterval период сбора статистики connection pool
const DefaultStatsInterval = 15 * time.Second

// DBExecutor общий интерфейс для *sql.DB и *DB.
// Репозитории работают только через него.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DB обёртка над *sql.DB, которая пишет метрики длительности и ошибок запросов
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	service string
}

var _ DBExecutor = (*DB)(nil)

// Wrap оборачивает *sql.DB без фонового сбора статистики пула
func Wrap(db *sql.DB, m *metrics.Metrics, service string) *DB {
	return &DB{db: db, metrics: m, service: service}
}

// WrapWithDefault оборачивает *sql.DB и запускает сбор статистики пула с DefaultStatsInterval.
// Сбор останавливается при закрытии stop.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, service string, stop <-chan struct{}) *DB {
	wrapped := Wrap(db, m, service)
	go wrapped.collectStats(DefaultStatsInterval, stop)
	return wrapped
}

// Unwrap возвращает исходный *sql.DB
func (d *DB) Unwrap() *sql.DB {
	return d.db
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

// QueryRowContext ошибка *sql.Row становится известна только при Scan, поэтому считается только время
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start, row.Err())
	return row
}

func (d *DB) observe(query string, start time.Time, err error) {
	op := Operation(query)
	d.metrics.DBQueryDuration.WithLabelValues(d.service, op).Observe(time.Since(start).Seconds())
	if err != nil && err != sql.ErrNoRows {
		d.metrics.DBQueryErrors.WithLabelValues(d.service, op).Inc()
	}
}

// CollectStats снимает текущую статистику пула в gauges
func (d *DB) CollectStats() {
	stats := d.db.Stats()
	d.metrics.DBOpenConnections.WithLabelValues(d.service).Set(float64(stats.OpenConnections))
	d.metrics.DBInUseConnections.WithLabelValues(d.service).Set(float64(stats.InUse))
	d.metrics.DBIdleConnections.WithLabelValues(d.service).Set(float64(stats.Idle))
	d.metrics.DBWaitCount.WithLabelValues(d.service).Set(float64(stats.WaitCount))
}

func (d *DB) collectStats(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.CollectStats()
	for {
		select {
		case <-ticker.C:
			d.CollectStats()
		case <-stop:
			return
		}
	}
}

// Operation возвращает тип SQL-выражения (select, insert, ...) для метки метрики
func Operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	switch op := strings.ToLower(fields[0]); op {
	case "select", "insert", "update", "delete", "create", "pragma", "with":
		return op
	default:
		return "other"
	}
}
