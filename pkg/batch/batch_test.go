package batch

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/isaflow/isaflow/pkg/isa"
)

func mustChar(t *testing.T, category, value string) *isa.Characteristic {
	t.Helper()
	ch, err := isa.NewCharacteristic(isa.NewOntologyAnnotation(category), value, nil)
	if err != nil {
		t.Fatalf("NewCharacteristic: %v", err)
	}
	return ch
}

func TestCreateMaterials_Naming(t *testing.T) {
	proto := isa.NewSource("S", mustChar(t, "organism", "A. thaliana"))
	got := CreateMaterials(proto, 3)

	if names := isa.Names(got); !slices.Equal(names, []string{"S-0", "S-1", "S-2"}) {
		t.Fatalf("names = %v, want [S-0 S-1 S-2]", names)
	}
	for i, m := range got {
		if m == isa.MaterialNode(proto) {
			t.Errorf("copy %d is the prototype", i)
		}
		for j := i + 1; j < len(got); j++ {
			if m == got[j] {
				t.Errorf("copies %d and %d are the same object", i, j)
			}
		}
	}
	if proto.Name != "S" {
		t.Errorf("prototype renamed to %q", proto.Name)
	}
}

func TestCreateMaterials_Isolation(t *testing.T) {
	proto := isa.NewSample("smp")
	proto.Characteristics = []*isa.Characteristic{mustChar(t, "organism part", "leaf")}
	got := CreateMaterialsOf(proto, 2)

	got[0].Characteristics = append(got[0].Characteristics, mustChar(t, "colour", "green"))
	if len(got[1].Characteristics) != 1 || len(proto.Characteristics) != 1 {
		t.Error("characteristics list shared between copies")
	}

	got[0].Characteristics[0].Value = isa.Text("root")
	if v := got[1].Characteristics[0].Value.String(); v != "leaf" {
		t.Errorf("sibling characteristic = %q, want leaf", v)
	}
	if v := proto.Characteristics[0].Value.String(); v != "leaf" {
		t.Errorf("prototype characteristic = %q, want leaf", v)
	}
}

func TestCreateMaterials_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name  string
		proto isa.Node
		n     int
	}{
		{"process", isa.NewProcess("p", nil), 2},
		{"data file", isa.NewDataFile("f.raw", ""), 2},
		{"nil", nil, 2},
		{"typed nil", (*isa.Sample)(nil), 2},
		{"zero count", isa.NewSample("s"), 0},
		{"negative count", isa.NewSample("s"), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CreateMaterials(tt.proto, tt.n, WithLogger(logger)); len(got) != 0 {
				t.Errorf("got %d materials, want 0", len(got))
			}
		})
	}
	if !strings.Contains(buf.String(), "unsupported material prototype") {
		t.Errorf("expected debug log, got %q", buf.String())
	}
}

func TestCreateMaterials_Subtypes(t *testing.T) {
	protos := []isa.Node{
		isa.NewMaterial("m", "cell"),
		isa.NewExtract("e"),
		isa.NewLabeledExtract("l", "Cy3"),
	}
	for _, p := range protos {
		got := CreateMaterials(p, 1)
		if len(got) != 1 || got[0].NodeKind() != p.NodeKind() {
			t.Errorf("%s: got %v", p.NodeKind(), got)
		}
	}
}

func TestCreateMaterials_AncestryOptions(t *testing.T) {
	src := isa.NewSource("src")
	proto := isa.NewSample("smp", src)

	total := CreateMaterialsOf(proto, 1)
	if total[0].DerivesFrom[0] == isa.MaterialNode(src) {
		t.Error("default copy should duplicate derives_from targets")
	}

	shared := CreateMaterialsOf(proto, 2, WithSharedReferences())
	for _, s := range shared {
		if s.DerivesFrom[0] != isa.MaterialNode(src) {
			t.Error("WithSharedReferences should keep derives_from shared")
		}
	}
}

func TestCreateMaterials_FreshIDs(t *testing.T) {
	proto := isa.NewSample("smp")
	proto.ID = "#sample/proto"
	n := 0
	got := CreateMaterials(proto, 2, WithFreshIDs(func(kind isa.NodeKind) string {
		n++
		return "#" + kind.String() + "/" + strings.Repeat("x", n)
	}))
	if got[0].NodeID() != "#sample/x" || got[1].NodeID() != "#sample/xx" {
		t.Errorf("ids = %q, %q", got[0].NodeID(), got[1].NodeID())
	}
	if proto.ID != "#sample/proto" {
		t.Errorf("prototype id changed to %q", proto.ID)
	}
}

func TestCreateAssays_Wiring(t *testing.T) {
	smp := isa.NewSample("sample")
	proc := isa.NewProcess("extraction", isa.NewProtocol("extraction", nil))
	mat := isa.NewMaterial("material", "cell")

	got := CreateAssays([]Stage{One(smp), One(proc), One(mat)}, Replicas(2))
	if len(got) != 2 {
		t.Fatalf("processes = %d, want 2", len(got))
	}
	for x, p := range got {
		suffix := "-" + string(rune('0'+x))
		if p.Name != "extraction"+suffix {
			t.Errorf("process name = %q", p.Name)
		}
		if len(p.Inputs) != 1 || len(p.Outputs) != 1 {
			t.Fatalf("process %d: inputs %d outputs %d, want 1/1", x, len(p.Inputs), len(p.Outputs))
		}
		in, out := p.Inputs[0], p.Outputs[0].(isa.MaterialNode)
		if in.NodeName() != "sample"+suffix || out.NodeName() != "material"+suffix {
			t.Errorf("process %d: %s -> %s", x, in.NodeName(), out.NodeName())
		}
		if in == isa.Node(smp) || out == isa.MaterialNode(mat) {
			t.Error("prototype wired into a replica")
		}
		if d := out.Derivation(); len(d) != 1 || isa.Node(d[0]) != in {
			t.Errorf("process %d: derives_from = %v, want the input sample", x, isa.Names(d))
		}
	}
	if got[0].Inputs[0] == got[1].Inputs[0] {
		t.Error("replicas share a sample")
	}
	if len(proc.Inputs) != 0 || len(mat.DerivesFrom) != 0 {
		t.Error("prototypes were modified")
	}
}

func TestCreateAssays_DefaultReplicas(t *testing.T) {
	chain := []Stage{One(isa.NewSample("s")), One(isa.NewProcess("p", nil)), One(isa.NewMaterial("m", ""))}
	for _, opts := range [][]Option{nil, {Replicas(0)}, {Replicas(-3)}} {
		if got := CreateAssays(chain, opts...); len(got) != 1 {
			t.Errorf("processes = %d, want 1", len(got))
		}
	}
}

func TestCreateAssays_ListFanOut(t *testing.T) {
	s1, s2 := isa.NewSample("s1"), isa.NewSample("s2")
	m1, m2 := isa.NewMaterial("m1", ""), isa.NewMaterial("m2", "")

	got := CreateAssays([]Stage{Many(s1, s2), One(isa.NewProcess("pool", nil)), Many(m1, m2)})
	if len(got) != 1 {
		t.Fatalf("processes = %d, want 1", len(got))
	}
	p := got[0]
	if names := isa.Names(p.Inputs); !slices.Equal(names, []string{"s1-0-0", "s2-0-1"}) {
		t.Errorf("inputs = %v", names)
	}
	if names := isa.Names(p.Outputs); !slices.Equal(names, []string{"m1-0-0", "m2-0-1"}) {
		t.Errorf("outputs = %v", names)
	}
	for _, o := range p.Outputs {
		d := o.(isa.MaterialNode).Derivation()
		if len(d) != 2 || isa.Node(d[0]) != p.Inputs[0] || isa.Node(d[1]) != p.Inputs[1] {
			t.Errorf("%s derives_from = %v, want the replicated sample list", o.NodeName(), isa.Names(d))
		}
	}

	// each output has its own derivation slice
	d0 := p.Outputs[0].(isa.MaterialNode).Derivation()
	d0[0] = nil
	if p.Outputs[1].(isa.MaterialNode).Derivation()[0] == nil {
		t.Error("derivation slices are shared between outputs")
	}
}

func TestCreateAssays_ListProcess(t *testing.T) {
	s := isa.NewSample("s")
	m := isa.NewMaterial("m", "")
	got := CreateAssays([]Stage{One(s), Many(isa.NewProcess("a", nil), isa.NewProcess("b", nil)), One(m)})

	if names := isa.Names(got); !slices.Equal(names, []string{"a-0-0", "b-0-1"}) {
		t.Fatalf("processes = %v, want [a-0-0 b-0-1]", names)
	}
	if got[0].Inputs[0] != got[1].Inputs[0] {
		t.Error("list processes should share the same input set")
	}
	if len(got[0].Outputs) != 1 || got[0].Outputs[0] != got[1].Outputs[0] {
		t.Error("list processes should share the same output set")
	}
}

func TestCreateAssays_LongChain(t *testing.T) {
	chain := []Stage{
		One(isa.NewSample("sample")),
		One(isa.NewProcess("extraction", nil)),
		One(isa.NewExtract("extract")),
		One(isa.NewProcess("labeling", nil)),
		One(isa.NewLabeledExtract("lextract", "Cy3")),
	}
	got := CreateAssays(chain, Replicas(3))
	if len(got) != 6 {
		t.Fatalf("processes = %d, want 6", len(got))
	}
	for k := range 3 {
		first, second := got[2*k], got[2*k+1]
		if second.Inputs[0] != first.Outputs[0] {
			t.Errorf("replica %d: labeling does not consume the extraction output", k)
		}
		if second.Outputs[0].NodeKind() != isa.KindLabeledExtract {
			t.Errorf("replica %d: output kind = %s", k, second.Outputs[0].NodeKind())
		}
	}
	// replicas do not leak into each other
	if got[2].Inputs[0].NodeName() != "sample-1" {
		t.Errorf("replica 1 input = %q, want sample-1", got[2].Inputs[0].NodeName())
	}
}

func TestCreateAssays_DroppedStages(t *testing.T) {
	s := isa.NewSample("s")
	p := isa.NewProcess("p", nil)
	m := isa.NewMaterial("m", "")

	tests := []struct {
		name  string
		chain []Stage
		want  int
	}{
		{"trailing material", []Stage{One(s), One(p), One(m), One(isa.NewMaterial("x", ""))}, 1},
		{"trailing process", []Stage{One(s), One(p), One(m), One(isa.NewProcess("q", nil))}, 1},
		{"material only", []Stage{One(s)}, 0},
		{"empty stage", []Stage{One(s), Many(), One(p), One(m)}, 1},
		{"data file stage", []Stage{One(s), One(isa.NewDataFile("f", "")), One(p), One(m)}, 1},
		{"nil stage", []Stage{One(nil), One(s), One(p), One(m)}, 1},
		{"empty chain", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CreateAssays(tt.chain); len(got) != tt.want {
				t.Errorf("processes = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSetAttr_Uniform(t *testing.T) {
	items := CreateMaterialsOf(isa.NewSample("s"), 3)
	if err := SetAttr(items, "name", "X"); err != nil {
		t.Fatalf("SetAttr: %v", err)
	}
	for _, it := range items {
		if it.Name != "X" {
			t.Errorf("name = %q, want X", it.Name)
		}
	}
}

func TestSetAttr_StopsAtFirstFailure(t *testing.T) {
	first, extract, last := isa.NewMaterial("a", "cell"), isa.NewExtract("b"), isa.NewMaterial("c", "cell")
	items := []isa.AttrSetter{first, extract, last}
	err := SetAttr(items, "type", "tissue")

	var verr *isa.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *isa.ValidationError, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "item 1:") {
		t.Errorf("error = %q, want item 1 prefix", err.Error())
	}
	if first.Type != "tissue" {
		t.Errorf("item before failure type = %q, want tissue", first.Type)
	}
	if extract.Type != isa.ExtractType {
		t.Errorf("failing item type = %q, want %q", extract.Type, isa.ExtractType)
	}
	if last.Type != "cell" {
		t.Errorf("item after failure changed to %q", last.Type)
	}
}

func TestSetAttr_UnknownAttribute(t *testing.T) {
	items := []isa.AttrSetter{isa.NewSample("a"), isa.NewMaterial("c", "cell")}
	err := SetAttr(items, "type", "tissue")
	if err == nil || !strings.HasPrefix(err.Error(), "item 0:") {
		t.Errorf("error = %v, want item 0 failure", err)
	}
}
