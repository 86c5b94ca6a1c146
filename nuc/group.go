package nuc

import "strings"

// groupKey is the identity of the residue an atom belongs to. Optional
// identifiers are carried by value next to a presence flag so that keys
// stay comparable and an absent label can never equal an absent auth.
type groupKey struct {
	label    ResidueLabel
	hasLabel bool
	auth     ResidueAuth
	hasAuth  bool
	model    int
}

func keyOf(a Atom3D) groupKey {
	k := groupKey{model: a.Model}
	if a.Label != nil {
		k.label, k.hasLabel = *a.Label, true
	}
	if a.Auth != nil {
		k.auth, k.hasAuth = *a.Auth, true
	}
	return k
}

// FilterModel returns the atoms belonging to the given model, preserving
// file order.
func FilterModel(atoms []Atom3D, model int) []Atom3D {
	kept := make([]Atom3D, 0, len(atoms))
	for _, a := range atoms {
		if a.Model == model {
			kept = append(kept, a)
		}
	}
	return kept
}

// GroupAtoms partitions atoms into residues by contiguous identity-key runs.
// Atoms of one residue must be contiguous in file order; the same key
// recurring later in the file starts a new residue. Residue indices are
// assigned 1, 2, 3, ... in file order with no gaps.
func GroupAtoms(atoms []Atom3D, modified Modifications) *Structure3D {
	s := &Structure3D{Residues: make([]*Residue3D, 0, len(atoms)/16)}
	if len(atoms) == 0 {
		return s
	}

	prev := keyOf(atoms[0])
	run := []Atom3D{atoms[0]}
	index := 1

	flush := func(k groupKey, group []Atom3D) {
		r := &Residue3D{
			Index: index,
			Model: k.model,
			Atoms: group,
		}
		if k.hasLabel {
			label := k.label
			r.Label = &label
		}
		if k.hasAuth {
			auth := k.auth
			r.Auth = &auth
		}
		r.Name = resolveName(r.Label, r.Auth, modified)
		s.Residues = append(s.Residues, r)
		index++
	}

	for _, a := range atoms[1:] {
		key := keyOf(a)
		if key == prev {
			run = append(run, a)
			continue
		}
		flush(prev, run)
		prev = key
		run = []Atom3D{a}
	}
	flush(prev, run)
	return s
}

// resolveName picks the chemical name of a residue. The auth-side
// modification entry has the highest priority, then the label-side entry,
// then the raw auth and label names, then the unknown-nucleotide fallback.
// Remapped parent codes are lowercased to mark the residue as modified.
func resolveName(label *ResidueLabel, auth *ResidueAuth, modified Modifications) string {
	if auth != nil {
		if name, ok := modified.ByAuth[*auth]; ok {
			return strings.ToLower(name)
		}
	}
	if label != nil {
		if name, ok := modified.ByLabel[*label]; ok {
			return strings.ToLower(name)
		}
	}
	if auth != nil {
		return auth.Name
	}
	if label != nil {
		return label.Name
	}
	return string(UnknownResidue)
}
