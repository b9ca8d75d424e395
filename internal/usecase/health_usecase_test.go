package usecase_test

import (
	"context"
	"errors"
	"testing"

	"prolinked-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("refused") })

	t.Run("all up", func(t *testing.T) {
		got := usecase.NewHealthUsecase(up, up).Check(context.Background())
		assert.Equal(t, map[string]string{"status": "ok", "database": "up", "redis": "up"}, got)
	})

	t.Run("redis not configured", func(t *testing.T) {
		got := usecase.NewHealthUsecase(up, nil).Check(context.Background())
		assert.Equal(t, "ok", got["status"])
		assert.Equal(t, "disabled", got["redis"])
	})

	t.Run("database down", func(t *testing.T) {
		got := usecase.NewHealthUsecase(down, up).Check(context.Background())
		assert.Equal(t, "degraded", got["status"])
		assert.Equal(t, "down", got["database"])
	})
}
