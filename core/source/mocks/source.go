package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Source is a mock implementation of source.Source
type Source struct {
	mock.Mock
}

func (m *Source) Fetch(ctx context.Context, ref string) (string, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Error(1)
}
