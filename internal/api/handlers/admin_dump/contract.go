package admin_dump

import (
	"context"

	"github.com/m04kA/SMC-CarWash/internal/domain"
	"github.com/m04kA/SMC-CarWash/internal/service/admin/models"
)

type AdminService interface {
	Dump(ctx context.Context, sess *domain.Session) (*models.DumpResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
