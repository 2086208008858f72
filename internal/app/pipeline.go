// Package app runs one wire-transfer submission through validation,
// rendering and dispatch.
package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/wireletter/internal/domain"
	"github.com/bft-labs/wireletter/internal/money"
	"github.com/bft-labs/wireletter/internal/ports"
	"github.com/bft-labs/wireletter/internal/validate"
	"github.com/bft-labs/wireletter/pkg/log"
)

// Receipt acknowledges a dispatched letter.
type Receipt struct {
	ReferenceID string
	Pages       int
}

// Pipeline is stateless between calls; every Process call owns its request
// and document.
type Pipeline struct {
	renderer   ports.LetterRenderer
	dispatcher ports.Dispatcher
	amounts    *money.Formatter
	logger     log.Logger
	now        func() time.Time
	newRef     func() string
}

// NewPipeline wires the stages together.
func NewPipeline(renderer ports.LetterRenderer, dispatcher ports.Dispatcher, amounts *money.Formatter, logger log.Logger) *Pipeline {
	return &Pipeline{
		renderer:   renderer,
		dispatcher: dispatcher,
		amounts:    amounts,
		logger:     logger,
		now:        time.Now,
		newRef:     newReference,
	}
}

func newReference() string {
	return "WT-" + uuid.NewString()[:8]
}

// Prepare validates a raw record and fills the boundary defaults: a
// generated reference id and today's date when either is missing.
func (p *Pipeline) Prepare(record map[string]any) (domain.WireTransferRequest, error) {
	req, err := validate.Request(record)
	if err != nil {
		return req, err
	}
	if req.ReferenceID == "" {
		req.ReferenceID = p.newRef()
	}
	if req.Date == "" {
		req.Date = p.now().Format("2006-01-02")
	}
	return req, nil
}

// Preview validates and renders without dispatching.
func (p *Pipeline) Preview(ctx context.Context, record map[string]any) (domain.WireTransferRequest, domain.Document, error) {
	req, err := p.Prepare(record)
	if err != nil {
		return req, domain.Document{}, err
	}
	doc, err := p.renderer.Render(ctx, req)
	return req, doc, err
}

// Process runs the full pipeline. The first failing stage aborts the call;
// nothing is dispatched unless rendering succeeded, and a dispatch failure
// fails the whole submission.
func (p *Pipeline) Process(ctx context.Context, record map[string]any) (Receipt, error) {
	start := p.now()

	req, doc, err := p.Preview(ctx, record)
	if err != nil {
		p.logger.Warn("wire transfer rejected", log.String("reference", req.ReferenceID), log.Err(err))
		return Receipt{}, err
	}

	summary := req.Summarize(p.amounts.Number(req.Amount))
	if err := p.dispatcher.Dispatch(ctx, doc.Data, summary); err != nil {
		return Receipt{}, err
	}

	p.logger.Info("wire transfer processed",
		log.String("reference", req.ReferenceID),
		log.Int("pages", doc.Pages),
		log.Duration("took", p.now().Sub(start)),
	)
	return Receipt{ReferenceID: req.ReferenceID, Pages: doc.Pages}, nil
}
