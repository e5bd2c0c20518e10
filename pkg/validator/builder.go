package validator

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/checktree/pkg/logger"
)

// root is the cursor position of the top-level branch.
const root = -1

type node struct {
	field    string
	check    func() error
	parent   int
	children []int
}

// Builder collects checks into a forest of dependent branches and validates
// them in a single pass.
//
// A Builder is single-use and not safe for concurrent use.
type Builder struct {
	nodes    []node
	roots    []int
	current  int
	skipNext bool
	errs     ValidationErrors
	logger   *slog.Logger
}

// New creates a Builder with an empty forest and the cursor at the top-level branch.
func New(opts ...Option) *Builder {
	b := &Builder{
		current: root,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Then moves the cursor into the last check of the current branch, so the
// checks registered next only run when that check passes.
func (b *Builder) Then() error {
	branch := b.branch()
	if len(branch) == 0 {
		return fmt.Errorf("%w: no check to descend into", ErrInvalidSequencing)
	}
	b.current = branch[len(branch)-1]
	return nil
}

// Back moves the cursor to the branch enclosing the current one.
func (b *Builder) Back() error {
	if b.current == root {
		return fmt.Errorf("%w: already at the top-level branch", ErrInvalidSequencing)
	}
	b.current = b.nodes[b.current].parent
	return nil
}

// NewBranch returns the cursor to the top level. Checks registered next start
// an independent branch.
func (b *Builder) NewBranch() *Builder {
	b.current = root
	return b
}

// If drops the next registration when condition is false. The flag is
// cleared by that registration either way.
func (b *Builder) If(condition bool) *Builder {
	b.skipNext = !condition
	return b
}

// Check registers fn under field as the last check of the current branch.
// The cursor does not move; call Then to nest checks under it.
// A nil fn always passes.
func (b *Builder) Check(field string, fn func() error) *Builder {
	if b.skipNext {
		b.skipNext = false
		b.logger.Debug("check skipped", logger.Field(field))
		return b
	}

	id := len(b.nodes)
	b.nodes = append(b.nodes, node{
		field:  field,
		check:  fn,
		parent: b.current,
	})
	if b.current == root {
		b.roots = append(b.roots, id)
	} else {
		b.nodes[b.current].children = append(b.nodes[b.current].children, id)
	}
	return b
}

// Add registers rule as the last check of the current branch.
func (b *Builder) Add(rule Rule) *Builder {
	return b.Check(rule.Field, rule.Check)
}

// Len returns the number of registered checks.
func (b *Builder) Len() int {
	return len(b.nodes)
}

func (b *Builder) branch() []int {
	if b.current == root {
		return b.roots
	}
	return b.nodes[b.current].children
}
