package admin_export

import (
	"context"
	"io"

	"github.com/m04kA/SMC-CarWash/internal/domain"
)

type AdminService interface {
	Export(ctx context.Context, sess *domain.Session, w io.Writer) error
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
