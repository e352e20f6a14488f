package isa

import (
	"github.com/hashicorp/go-multierror"
)

// CheckMaterialPools verifies that every input and output of the study's
// process sequence, and of each of its assays' sequences, is registered in the
// study's pools or in one of its assays' pools. All dangling references are
// reported together as a *multierror.Error. Nothing is modified.
func (s *Study) CheckMaterialPools() error {
	pool := make(map[Node]bool)
	for _, src := range s.Materials.Sources {
		pool[src] = true
	}
	for _, smp := range s.Materials.Samples {
		pool[smp] = true
	}
	for _, m := range s.Materials.OtherMaterial {
		pool[m] = true
	}
	for _, a := range s.Assays {
		for _, n := range a.pooled() {
			pool[n] = true
		}
	}

	var errs *multierror.Error
	errs = checkSequence(errs, s.ProcessSequence, pool)
	for _, a := range s.Assays {
		errs = checkSequence(errs, a.ProcessSequence, pool)
	}
	return errs.ErrorOrNil()
}

// CheckMaterialPools verifies the assay's process sequence against the
// assay's own pools.
func (a *Assay) CheckMaterialPools() error {
	pool := make(map[Node]bool)
	for _, n := range a.pooled() {
		pool[n] = true
	}
	return checkSequence(nil, a.ProcessSequence, pool).ErrorOrNil()
}

func checkSequence(errs *multierror.Error, seq []*Process, pool map[Node]bool) *multierror.Error {
	for _, p := range seq {
		if p == nil {
			continue
		}
		for _, n := range p.Inputs {
			if !IsNil(n) && !pool[n] {
				errs = multierror.Append(errs, &DanglingRefError{Process: p.Name, Node: n.NodeName(), Kind: n.NodeKind(), Role: "input"})
			}
		}
		for _, n := range p.Outputs {
			if !IsNil(n) && !pool[n] {
				errs = multierror.Append(errs, &DanglingRefError{Process: p.Name, Node: n.NodeName(), Kind: n.NodeKind(), Role: "output"})
			}
		}
	}
	return errs
}
