package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type AnalyticsRepository struct {
	mock.Mock
}

func (m *AnalyticsRepository) Increment(ctx context.Context, scope, key string) error {
	args := m.Called(ctx, scope, key)
	return args.Error(0)
}

func (m *AnalyticsRepository) Get(ctx context.Context, scope, key string) (int64, error) {
	args := m.Called(ctx, scope, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AnalyticsRepository) Scope(ctx context.Context, scope string) (map[string]int64, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}
