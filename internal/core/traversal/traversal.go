// Package traversal computes ancestor closures over pedigree graphs. The
// AncestorSource abstraction lets the closure be computed either in memory
// over a PedigreeRecord or delegated to a backing graph store.
package traversal

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/olavurmortensen/pedgraph/internal/core/model"
)

// AncestorSource answers ancestor-closure queries: the transitive closure of
// the child-to-parent relation from the seed ids, excluding the seeds
// themselves unless a seed is an ancestor of another seed. Implementations
// backed by a store and backed by an in-memory record must agree for the
// same pedigree.
type AncestorSource interface {
	AncestorsOf(ctx context.Context, seeds []string) ([]string, error)
}

// InMemory walks a PedigreeRecord directly.
type InMemory struct {
	record *model.PedigreeRecord
	logger *zap.SugaredLogger
}

func NewInMemory(record *model.PedigreeRecord, logger *zap.SugaredLogger) *InMemory {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &InMemory{record: record, logger: logger}
}

// dfs colors: unvisited (absent), on the current path, fully explored.
const (
	onPath = 1
	done   = 2
)

// AncestorsOf expands from each seed following parent references, mother
// edge before father edge. The visited set keeps termination bounded by the
// person count even on unvalidated data; a person reachable from itself is
// reported as ErrCyclicPedigree rather than silently truncated. The result
// is sorted for reproducibility; seeds are excluded unless reached as an
// ancestor of another seed.
func (t *InMemory) AncestorsOf(ctx context.Context, seeds []string) ([]string, error) {
	color := make(map[string]int, t.record.Len())
	reached := make(map[string]bool)

	for _, seed := range seeds {
		if t.record.Get(seed) == nil {
			return nil, model.NewValidationError(seed, model.ErrUnknownProband)
		}
		if err := t.walk(seed, color, reached); err != nil {
			return nil, err
		}
	}

	// reached holds exactly the persons arrived at through a parent edge,
	// which includes a seed only when it is an ancestor of another seed.
	out := make([]string, 0, len(reached))
	for ind := range reached {
		out = append(out, ind)
	}
	sort.Strings(out)
	t.logger.Debugw("ancestor closure computed", "seeds", len(seeds), "ancestors", len(out))
	return out, nil
}

// walk is an iterative depth-first expansion from one seed. Nodes on the
// current path are tracked so a back-edge (a person reachable from itself)
// is detected instead of looping.
func (t *InMemory) walk(seed string, color map[string]int, reached map[string]bool) error {
	type frame struct {
		ind     string
		parents []string
		next    int
	}

	push := func(ind string) frame {
		p := t.record.Get(ind)
		var parents []string
		if p != nil {
			// Mother before father, for reproducible diagnostics.
			if p.MotherID != "" {
				parents = append(parents, p.MotherID)
			}
			if p.FatherID != "" {
				parents = append(parents, p.FatherID)
			}
		}
		return frame{ind: ind, parents: parents}
	}

	if color[seed] == done {
		return nil
	}
	color[seed] = onPath
	stack := []frame{push(seed)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.parents) {
			parent := top.parents[top.next]
			top.next++

			switch color[parent] {
			case onPath:
				return model.NewValidationError(parent, model.ErrCyclicPedigree)
			case done:
				reached[parent] = true
				continue
			}
			reached[parent] = true
			color[parent] = onPath
			stack = append(stack, push(parent))
			continue
		}
		color[top.ind] = done
		stack = stack[:len(stack)-1]
	}
	return nil
}
