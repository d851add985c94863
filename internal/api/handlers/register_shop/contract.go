package register_shop

import (
	"context"

	"github.com/m04kA/SMC-CarWash/internal/service/shops/models"
)

type ShopService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
