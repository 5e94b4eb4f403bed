package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	result := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{"store": ok}).Check(context.Background())
	assert.Equal(t, map[string]string{"status": "ok", "store": "ok"}, result)

	result = usecase.NewHealthUsecase(map[string]usecase.HealthCheck{"store": ok, "redis": down}).Check(context.Background())
	assert.Equal(t, "degraded", result["status"])
	assert.Equal(t, "connection refused", result["redis"])
	assert.Equal(t, "ok", result["store"])

	result = usecase.NewHealthUsecase(nil).Check(context.Background())
	assert.Equal(t, map[string]string{"status": "ok"}, result)
}
