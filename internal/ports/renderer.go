package ports

import (
	"context"

	"github.com/bft-labs/wireletter/internal/domain"
)

// LetterRenderer produces the PDF for a validated request.
// Failures must be *domain.RenderError and carry no partial output.
type LetterRenderer interface {
	Render(ctx context.Context, req domain.WireTransferRequest) (domain.Document, error)
}
