package validator

import (
	"context"

	"github.com/dmitrymomot/checktree/pkg/logger"
)

// Validate runs every registered check and returns ValidationErrors listing
// each failure, or nil when all checks pass.
//
// Branches are walked depth-first in registration order. A check's children
// run only if the check itself passed; a failed check contributes its own
// failure and nothing from below it. Independent branches are always
// evaluated, so the result is the complete report for the forest.
func (b *Builder) Validate() error {
	return b.ValidateContext(context.Background())
}

// ValidateContext is Validate with ctx passed to the logger.
func (b *Builder) ValidateContext(ctx context.Context) error {
	b.errs = nil
	for _, id := range b.roots {
		b.evaluate(ctx, id, 0)
	}

	errs := b.errs
	b.errs = nil

	if errs.IsEmpty() {
		b.logger.DebugContext(ctx, "validation passed", logger.Count(len(b.nodes)))
		return nil
	}

	b.logger.DebugContext(ctx, "validation failed",
		logger.Count(len(b.nodes)),
		logger.Failures(len(errs)),
	)
	return errs
}

func (b *Builder) evaluate(ctx context.Context, id, depth int) {
	n := b.nodes[id]
	if n.check != nil {
		if err := n.check(); failed(err) {
			b.errs = append(b.errs, failures(n.field, err)...)
			b.logger.DebugContext(ctx, "check failed",
				logger.Field(n.field),
				logger.Depth(depth),
				logger.Skipped(len(n.children)),
				logger.Error(err),
			)
			return
		}
	}

	for _, child := range n.children {
		b.evaluate(ctx, child, depth+1)
	}
}
