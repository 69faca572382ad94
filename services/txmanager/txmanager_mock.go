package txmanager

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockTransactionManager struct {
	mock.Mock
}

// WithTransaction executes the function directly without a real transaction,
// so service logic can be exercised against mocked repositories.
func (m *MockTransactionManager) WithTransaction(
	ctx context.Context,
	fn func(ctx context.Context) error,
) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}
