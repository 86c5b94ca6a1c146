package nuc

import (
	"strings"

	"github.com/TuftsBCB/seq"
)

var deoxyMap = map[string]seq.Residue{
	"DA": 'A', "DC": 'C', "DG": 'G', "DT": 'T', "DI": 'I', "DU": 'U',
}

var riboMap = map[string]seq.Residue{
	"A": 'A', "C": 'C', "G": 'G', "U": 'U', "T": 'T', "I": 'I',
}

// UnknownResidue is the fallback code for a residue that cannot be
// classified as a known nucleotide.
const UnknownResidue = 'n'

// OneLetter returns the single-letter nucleotide code of the residue.
// A lowercase resolved name (a remapped modified residue) yields a
// lowercase letter; anything unrecognized yields UnknownResidue.
func (r *Residue3D) OneLetter() seq.Residue {
	return abbrev(r.Name)
}

func abbrev(name string) seq.Residue {
	upper := strings.ToUpper(name)
	letter, ok := deoxyMap[upper]
	if !ok {
		letter, ok = riboMap[upper]
	}
	if !ok {
		return UnknownResidue
	}
	if name != upper {
		// Lowercase marks a modified residue; keep the mark.
		return letter + 'a' - 'A'
	}
	return letter
}
