// Package nuc defines the canonical in-memory model for nucleic acid
// structures: atoms carrying dual label/auth identifiers, residues grouped
// from atoms in file order, and the pairing/stacking relations layered on
// top of them.
package nuc

import (
	"fmt"

	"github.com/TuftsBCB/structure"
)

// ResidueLabel is the internal (computed) addressing scheme for a residue.
// It has no insertion code concept.
type ResidueLabel struct {
	Chain  string
	Number int
	Name   string
}

// ResidueAuth is the author-assigned addressing scheme for a residue.
// An empty InsertionCode means the residue has none.
type ResidueAuth struct {
	Chain         string
	Number        int
	InsertionCode string
	Name          string
}

// Atom3D is a single atom record. At least one of Label and Auth is fully
// populated; parsers reject input that would break this.
type Atom3D struct {
	Label *ResidueLabel
	Auth  *ResidueAuth
	Model int
	Name  string
	structure.Coords
}

// Modifications maps chemically modified residues to their parent (standard)
// residue codes. The label and auth schemes are kept as two independent
// mappings so that a key from one scheme can never be confused with a key
// from the other.
type Modifications struct {
	ByLabel map[ResidueLabel]string
	ByAuth  map[ResidueAuth]string
}

// NewModifications returns an empty modification table.
func NewModifications() Modifications {
	return Modifications{
		ByLabel: make(map[ResidueLabel]string),
		ByAuth:  make(map[ResidueAuth]string),
	}
}

// Residue3D is one residue of a structure: a contiguous run of atoms that
// share an identity key in file order. It is created once during grouping
// and not mutated afterwards.
type Residue3D struct {
	// Index is the global 1-based position of this residue in the file
	// order of the selected model. It is gapless and ignores chain
	// boundaries.
	Index int

	// Name is the resolved chemical name. Residues remapped through the
	// modification table carry their parent code in lowercase.
	Name string

	Model int
	Label *ResidueLabel
	Auth  *ResidueAuth
	Atoms []Atom3D
}

// Chain returns the chain name, preferring the auth scheme.
func (r *Residue3D) Chain() string {
	if r.Auth != nil {
		return r.Auth.Chain
	}
	return r.Label.Chain
}

// Number returns the residue sequence number, preferring the auth scheme.
func (r *Residue3D) Number() int {
	if r.Auth != nil {
		return r.Auth.Number
	}
	return r.Label.Number
}

// InsertionCode returns the auth insertion code, or "" when there is none.
func (r *Residue3D) InsertionCode() string {
	if r.Auth != nil {
		return r.Auth.InsertionCode
	}
	return ""
}

// FullName returns the fully qualified residue name used by annotation
// descriptors, e.g. "A.DG1" or "B.U13^A" for an inserted residue.
func (r *Residue3D) FullName() string {
	if r.Auth != nil {
		if r.Auth.InsertionCode != "" {
			return fmt.Sprintf("%s.%s%d^%s",
				r.Auth.Chain, r.Auth.Name, r.Auth.Number, r.Auth.InsertionCode)
		}
		return fmt.Sprintf("%s.%s%d", r.Auth.Chain, r.Auth.Name, r.Auth.Number)
	}
	return fmt.Sprintf("%s.%s%d", r.Label.Chain, r.Label.Name, r.Label.Number)
}

// Atom returns the atom with the given name, or nil if the residue has none.
func (r *Residue3D) Atom(name string) *Atom3D {
	for i := range r.Atoms {
		if r.Atoms[i].Name == name {
			return &r.Atoms[i]
		}
	}
	return nil
}

func (r *Residue3D) String() string {
	return fmt.Sprintf("%s (%s)", r.FullName(), r.Name)
}

// Structure3D is the ordered residue sequence of exactly one model.
type Structure3D struct {
	Residues []*Residue3D
}

// FindResidue returns the residue matching the given label or auth key.
// A key matches only within its own scheme; nil keys match nothing.
func (s *Structure3D) FindResidue(label *ResidueLabel, auth *ResidueAuth) *Residue3D {
	for _, r := range s.Residues {
		if label != nil && r.Label != nil && *label == *r.Label {
			return r
		}
		if auth != nil && r.Auth != nil && *auth == *r.Auth {
			return r
		}
	}
	return nil
}
