// Package tape implements the mid layer of the automatic differentiation
// engine: GradientStructure, the append-only record of StackEntry values
// an assignment statement produces, and the reverse sweeps that turn that
// record into a gradient, a gradient and Hessian, or a gradient, Hessian,
// and third-order tensor.
package tape

import (
	"github.com/atl-go/atl/internal/expr"
	"github.com/atl-go/atl/internal/idset"
	"github.com/atl-go/atl/internal/parallel"
	"github.com/atl-go/atl/internal/vinfo"
)

// parallelCfg gates the grid fan-out in Assign: the default MinChunkSize
// already guards against parallelizing a small expression's grid, so
// every call site below can pass this unconditionally.
var parallelCfg = parallel.DefaultConfig()

// Real re-exports the scalar constraint the rest of the package is
// generic over.
type Real = expr.Real

// GradientStructure is the tape: an ordered list of StackEntry records
// plus the recording state and trace level that govern how new entries
// are built.
type GradientStructure[T Real] struct {
	stack     []*StackEntry[T]
	recording bool
	level     Level

	minID, maxID uint32
	hasRange     bool
}

// New returns a tape with recording enabled and GradientAndHessian as
// the default trace level — the mode that serves the common case
// (gradient, plus a Hessian if the caller asks for one) without forcing
// a re-record when a caller that only wanted Accumulate() later decides
// it also wants AccumulateGradientAndHessian().
func New[T Real]() *GradientStructure[T] {
	return &GradientStructure[T]{recording: true, level: GradientAndHessian}
}

// IsRecording reports whether Assign appends entries or evaluates the
// expression immediately and discards it.
func (g *GradientStructure[T]) IsRecording() bool { return g.recording }

// SetRecording toggles recording.
func (g *GradientStructure[T]) SetRecording(on bool) { g.recording = on }

// Level returns the active trace level.
func (g *GradientStructure[T]) Level() Level { return g.level }

// SetLevel sets the trace level for subsequent Assign calls. Entries
// already on the stack keep whatever data they were recorded with.
func (g *GradientStructure[T]) SetLevel(l Level) { g.level = l }

// NextIndex returns the tape position the next Assign call will occupy.
func (g *GradientStructure[T]) NextIndex() int { return len(g.stack) }

// NumEntries returns the number of records currently on the tape.
func (g *GradientStructure[T]) NumEntries() int { return len(g.stack) }

// Reset discards every recorded entry, releasing the reference each
// entry held on its independents, without touching the process-wide id
// generator.
func (g *GradientStructure[T]) Reset() {
	for _, e := range g.stack {
		for _, leaf := range e.IDs {
			leaf.Release()
		}
	}
	g.stack = g.stack[:0]
	g.minID, g.maxID, g.hasRange = 0, 0, false
}

// ResetWithEpoch discards every recorded entry and rewinds the
// process-wide leaf-id generator to id — an optimization-iteration
// boundary hook, so a long-running fit loop does not exhaust uint32
// ids.
func (g *GradientStructure[T]) ResetWithEpoch(id uint32) {
	g.Reset()
	vinfo.SetNextID(id)
}

func (g *GradientStructure[T]) trackRange(id uint32) {
	if !g.hasRange {
		g.minID, g.maxID, g.hasRange = id, id, true
		return
	}
	if id < g.minID {
		g.minID = id
	}
	if id > g.maxID {
		g.maxID = id
	}
}

// Assign performs record-and-assign: it evaluates
// e, and if the tape is recording, appends a StackEntry capturing
// whatever derivative data the active Level calls for before writing
// e's value into w. If the tape is not recording, w is simply updated —
// no entry is appended.
func (g *GradientStructure[T]) Assign(w *vinfo.Info[T], e expr.Node[T]) {
	if !g.recording {
		w.VValue = e.Value()
		return
	}

	level := g.level
	if level < FirstOrder || level > DynamicRecord {
		fatalf("assign: unknown trace level %d", int(level))
	}
	entry := &StackEntry[T]{W: w}

	ids := idset.New[*vinfo.Info[T]](4)
	e.PushIDs(ids, level.usesMixedPartials())
	entry.IDs = ids.Slice()
	n := len(entry.IDs)

	if level == DynamicRecord {
		entry.Expr = e.Clone()
	} else {
		entry.First = make([]T, n)
		for i, leaf := range entry.IDs {
			entry.First[i] = e.EvalD(leaf.ID)
		}

		if level.wantsSecond() {
			entry.Second = make([]T, n)
			for i, leaf := range entry.IDs {
				entry.Second[i] = e.EvalD2(leaf.ID, leaf.ID)
			}
		}
		if level.wantsThird() {
			entry.Third = make([]T, n)
			for i, leaf := range entry.IDs {
				entry.Third[i] = e.EvalD3(leaf.ID, leaf.ID, leaf.ID)
			}
		}

		switch {
		case level.wantsFullMixedGrid():
			e.MakeNLInteractions(true)
			ids := entry.IDs
			secondMixed := make([]T, n*n)
			parallel.ForGrid2(n, func(i, j int) {
				secondMixed[i*n+j] = e.EvalD2(ids[i].ID, ids[j].ID)
			}, parallelCfg)
			entry.SecondMixed = secondMixed
			if level.wantsThird() {
				thirdMixed := make([]T, n*n*n)
				parallel.ForGrid3(n, func(i, j, k int) {
					thirdMixed[(i*n+j)*n+k] = e.EvalD3(ids[i].ID, ids[j].ID, ids[k].ID)
				}, parallelCfg)
				entry.ThirdMixed = thirdMixed
			}
		case level == SecondOrder || level == ThirdOrder:
			// Off-diagonal cross terms were never computed under these
			// levels; synthesize a grid with zeros off the diagonal so the
			// mixed-partial sweep can still be reused for the diagonal-only
			// case.
			entry.SecondMixed = make([]T, n*n)
			for i := range entry.IDs {
				entry.SecondMixed[i*n+i] = entry.Second[i]
			}
			if level == ThirdOrder {
				entry.ThirdMixed = make([]T, n*n*n)
				for i := range entry.IDs {
					entry.ThirdMixed[(i*n+i)*n+i] = entry.Third[i]
				}
			}
		}
	}

	for _, leaf := range entry.IDs {
		leaf.DependenceLevel++
		leaf.Retain()
		g.trackRange(leaf.ID)
	}
	if level.usesMixedPartials() {
		w.Dependencies = ids
	}
	w.IsDependent = true
	g.trackRange(w.ID)

	g.stack = append(g.stack, entry)
	w.VValue = e.Value()
}
