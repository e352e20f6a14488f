package graph

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/isaflow/isaflow/pkg/isa"
)

func edgeNames(g *Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, e.From.NodeName()+"->"+e.To.NodeName())
	}
	return out
}

func TestBuild_LinearChain(t *testing.T) {
	src := isa.NewSource("src")
	smp := isa.NewSample("smp")
	ext := isa.NewExtract("ext")

	collect := isa.NewProcess("collect", nil)
	collect.AddInputs(src)
	collect.AddOutputs(smp)
	extract := isa.NewProcess("extract", nil)
	extract.AddInputs(smp)
	extract.AddOutputs(ext)

	g := Build([]*isa.Process{collect, extract})

	want := []string{"collect->smp", "src->collect", "extract->ext", "smp->extract"}
	if got := edgeNames(g); !slices.Equal(got, want) {
		t.Errorf("edges = %v, want %v", got, want)
	}
	if g.Len() != 5 {
		t.Errorf("Len = %d, want 5", g.Len())
	}
	if roots := g.Roots(); len(roots) != 1 || roots[0] != isa.Node(src) {
		t.Errorf("Roots = %v, want [src]", isa.Names(roots))
	}
	if leaves := g.Leaves(); len(leaves) != 1 || leaves[0] != isa.Node(ext) {
		t.Errorf("Leaves = %v, want [ext]", isa.Names(leaves))
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a, b := isa.NewSample("a"), isa.NewSample("b")
	m := isa.NewMaterial("m", "cell")
	p := isa.NewProcess("p", nil)
	p.AddInputs(a, b)
	p.AddOutputs(m)
	seq := []*isa.Process{p}

	first := edgeNames(Build(seq))
	for range 5 {
		if got := edgeNames(Build(seq)); !slices.Equal(got, first) {
			t.Fatalf("edges = %v, want %v", got, first)
		}
	}
}

func TestBuild_OutputsTakePrecedence(t *testing.T) {
	out := isa.NewSample("out")
	next := isa.NewProcess("next", nil)
	p := isa.NewProcess("p", nil)
	p.AddOutputs(out)
	p.NextProcess = next

	g := Build([]*isa.Process{p})
	if !g.HasEdge(p, out) {
		t.Error("missing p->out")
	}
	if g.HasEdge(p, next) {
		t.Error("unexpected p->next when outputs are set")
	}
}

func TestBuild_NextProcessFallback(t *testing.T) {
	p := isa.NewProcess("p", nil)
	next := isa.NewProcess("next", nil)
	isa.Link(p, next)

	g := Build([]*isa.Process{p, next})
	if !g.HasEdge(p, next) {
		t.Error("missing p->next")
	}
	// next contributes prev->next again; the edge is not duplicated.
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1 (%v)", g.EdgeCount(), edgeNames(g))
	}
}

func TestBuild_DataFilesExcluded(t *testing.T) {
	m := isa.NewMaterial("m", "cell")
	raw := isa.NewDataFile("run.raw", "Raw Data File")
	p := isa.NewProcess("p", nil)
	p.AddOutputs(m, raw)

	g := Build([]*isa.Process{p})
	if !g.HasEdge(p, m) {
		t.Error("missing p->m")
	}
	if g.HasEdge(p, raw) || g.Has(raw) {
		t.Error("data file should not be in the graph")
	}

	// Only data-file outputs: no forward edge, and next_process is not used.
	q := isa.NewProcess("q", nil)
	q.AddOutputs(raw)
	q.NextProcess = p
	g = Build([]*isa.Process{q})
	if g.EdgeCount() != 0 {
		t.Errorf("edges = %v, want none", edgeNames(g))
	}
}

func TestBuild_InputsTakePrecedence(t *testing.T) {
	in := isa.NewSample("in")
	prev := isa.NewProcess("prev", nil)
	p := isa.NewProcess("p", nil)
	p.AddInputs(in)
	p.PrevProcess = prev

	g := Build([]*isa.Process{p})
	if !g.HasEdge(in, p) {
		t.Error("missing in->p")
	}
	if g.HasEdge(prev, p) {
		t.Error("unexpected prev->p when inputs are set")
	}

	q := isa.NewProcess("q", nil)
	q.PrevProcess = prev
	g = Build([]*isa.Process{q})
	if !g.HasEdge(prev, q) {
		t.Error("missing prev->q fallback")
	}
}

func TestBuild_IsolatedProcess(t *testing.T) {
	p := isa.NewProcess("alone", nil)
	g := Build([]*isa.Process{p, nil})
	if g.EdgeCount() != 0 || g.Len() != 0 {
		t.Errorf("graph = %d nodes / %d edges, want empty", g.Len(), g.EdgeCount())
	}
	if g := Build(nil); g.Len() != 0 {
		t.Errorf("Build(nil).Len() = %d, want 0", g.Len())
	}
}

func TestBuild_DoesNotMutate(t *testing.T) {
	in := isa.NewSample("in")
	p := isa.NewProcess("p", nil)
	p.AddInputs(in)
	Build([]*isa.Process{p})
	if len(p.Inputs) != 1 || len(p.Outputs) != 0 || p.NextProcess != nil {
		t.Error("Build modified the process")
	}
}

func TestSuccessorsPredecessors(t *testing.T) {
	a, b := isa.NewSample("a"), isa.NewSample("b")
	p := isa.NewProcess("p", nil)
	p.AddInputs(a, b)

	g := Build([]*isa.Process{p})
	if got := isa.Names(g.Predecessors(p)); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Predecessors = %v, want [a b]", got)
	}
	if got := g.Successors(a); len(got) != 1 || got[0] != isa.Node(p) {
		t.Errorf("Successors(a) = %v, want [p]", isa.Names(got))
	}
	if g.Index(b) != 2 || g.Index(isa.NewSample("x")) != -1 {
		t.Errorf("Index(b) = %d", g.Index(b))
	}
}

func TestTopologicalOrder(t *testing.T) {
	src := isa.NewSource("src")
	smp := isa.NewSample("smp")
	ext := isa.NewExtract("ext")
	p2 := isa.NewProcess("p2", nil)
	p2.AddInputs(smp)
	p2.AddOutputs(ext)
	p1 := isa.NewProcess("p1", nil)
	p1.AddInputs(src)
	p1.AddOutputs(smp)

	// p2 is listed first so insertion order differs from flow order.
	g := Build([]*isa.Process{p2, p1})
	order, err := g.TopologicalOrder()
	if err != nil {
		t.Fatalf("TopologicalOrder: %v", err)
	}
	pos := make(map[isa.Node]int)
	for i, n := range order {
		pos[n] = i
	}
	for _, e := range g.Edges() {
		if pos[e.From] >= pos[e.To] {
			t.Errorf("edge %s->%s points backward in %v", e.From.NodeName(), e.To.NodeName(), isa.Names(order))
		}
	}
}

func TestTopologicalOrder_Cycle(t *testing.T) {
	a := isa.NewProcess("a", nil)
	b := isa.NewProcess("b", nil)
	isa.Link(a, b)
	isa.Link(b, a)

	_, err := Build([]*isa.Process{a, b}).TopologicalOrder()
	var cerr *CycleError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *CycleError, got %v", err)
	}
	if len(cerr.Nodes) != 2 {
		t.Errorf("cycle nodes = %v, want [a b]", isa.Names(cerr.Nodes))
	}
	if !strings.Contains(err.Error(), `process "a"`) {
		t.Errorf("error = %q, want mention of process \"a\"", err.Error())
	}
}
