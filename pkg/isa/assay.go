package isa

// AssayMaterials holds an assay's material pools.
type AssayMaterials struct {
	Samples       []*Sample
	OtherMaterial []MaterialNode
}

// Assay describes one measurement within a study. It mirrors Study's process
// sequence and material pools, scoped to the measurement.
type Assay struct {
	Commentable
	Filename                 string
	MeasurementType          *OntologyAnnotation
	TechnologyType           *OntologyAnnotation
	TechnologyPlatform       string
	ProcessSequence          []*Process
	DataFiles                []*DataFile
	Materials                AssayMaterials
	CharacteristicCategories []*OntologyAnnotation
}

// NewAssay returns an assay; nil measurement or technology types default to
// empty annotations.
func NewAssay(measurementType, technologyType *OntologyAnnotation) *Assay {
	return &Assay{
		MeasurementType: annotationOrEmpty(measurementType),
		TechnologyType:  annotationOrEmpty(technologyType),
	}
}

// AddProcesses appends seq to the process sequence and files every input and
// output not yet pooled: samples into Samples, data files into DataFiles, any
// other material into OtherMaterial. Sources are left to the owning study.
func (a *Assay) AddProcesses(seq ...*Process) {
	pooled := make(map[Node]bool)
	for _, n := range a.pooled() {
		pooled[n] = true
	}
	add := func(n Node) {
		if IsNil(n) || pooled[n] {
			return
		}
		pooled[n] = true
		switch v := n.(type) {
		case *Sample:
			a.Materials.Samples = append(a.Materials.Samples, v)
		case *DataFile:
			a.DataFiles = append(a.DataFiles, v)
		case *Source:
			// sources belong to the study
		case MaterialNode:
			a.Materials.OtherMaterial = append(a.Materials.OtherMaterial, v)
		}
	}
	for _, p := range seq {
		if p == nil {
			continue
		}
		a.ProcessSequence = append(a.ProcessSequence, p)
		for _, n := range p.Inputs {
			add(n)
		}
		for _, n := range p.Outputs {
			add(n)
		}
	}
}

func (a *Assay) pooled() []Node {
	out := make([]Node, 0, len(a.Materials.Samples)+len(a.Materials.OtherMaterial)+len(a.DataFiles))
	for _, s := range a.Materials.Samples {
		out = append(out, s)
	}
	for _, m := range a.Materials.OtherMaterial {
		out = append(out, m)
	}
	for _, d := range a.DataFiles {
		out = append(out, d)
	}
	return out
}
