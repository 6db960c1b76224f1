package actions

import (
	"context"

	"github.com/Aleale0612/swift-fin/internal/storage"
)

// IAction is a unit of transactional work processed by the operator pool.
// Perform runs inside a database transaction owned by the operator.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
