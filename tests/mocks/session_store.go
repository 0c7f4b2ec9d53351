package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Once(ctx context.Context, sessionID, key string) (bool, error) {
	args := m.Called(ctx, sessionID, key)
	return args.Bool(0), args.Error(1)
}
