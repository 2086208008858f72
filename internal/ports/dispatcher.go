package ports

import (
	"context"

	"github.com/bft-labs/wireletter/internal/domain"
)

// Dispatcher sends a rendered letter with its summary.
// Failures must be *domain.DispatchError.
type Dispatcher interface {
	Dispatch(ctx context.Context, pdf []byte, s domain.Summary) error
}
