package healthz

import "context"

// Pinger проверка соединения с базой
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Error(format string, v ...interface{})
}
