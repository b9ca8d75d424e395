package usecase

import (
	"context"
	"time"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthUsecase struct {
	db    Pinger
	redis func(ctx context.Context) error
}

// NewHealthUsecase reports redis as "disabled" when redisCheck is nil.
func NewHealthUsecase(db Pinger, redisCheck func(ctx context.Context) error) HealthUsecase {
	return &healthUsecase{db: db, redis: redisCheck}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result := map[string]string{
		"status":   "ok",
		"database": "up",
		"redis":    "disabled",
	}
	if u.db == nil || u.db.Ping(ctx) != nil {
		result["database"] = "down"
		result["status"] = "degraded"
	}
	if u.redis != nil {
		if err := u.redis(ctx); err != nil {
			result["redis"] = "down"
			result["status"] = "degraded"
		} else {
			result["redis"] = "up"
		}
	}
	return result
}
