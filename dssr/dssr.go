// Package dssr imports an externally produced annotation dump and
// reconciles its nucleotide descriptors against a built structure.
//
// The dump is organized as per-model records, each carrying a pairing list
// (two descriptors plus a Leontis-Westhof code) and a stacking list
// (comma-delimited ordered descriptors). Only pairing and stacking survive
// this import path; the other interaction categories stay empty.
package dssr

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/RNApolis/eltetrado/nuc"
)

// Payload is the decoded annotation dump. Multi-model dumps carry their
// records under "models"; single-model dumps keep the pairing and stacking
// lists at the top level.
type Payload struct {
	Models []Model `json:"models"`
	Parameters
}

// Model is one per-model annotation record.
type Model struct {
	Num        int        `json:"model"`
	Parameters Parameters `json:"parameters"`
}

// Parameters carries the relation lists of one model.
type Parameters struct {
	Pairs  []Pair  `json:"pairs"`
	Stacks []Stack `json:"stacks"`
}

// Pair declares a pairing between two nucleotide descriptors.
type Pair struct {
	Nt1 string `json:"nt1"`
	Nt2 string `json:"nt2"`
	LW  string `json:"LW"`
}

// Stack declares an ordered run of stacked nucleotide descriptors,
// comma-delimited.
type Stack struct {
	NtsLong string `json:"nts_long"`
}

// Load decodes an annotation dump from JSON text.
func Load(r io.Reader) (*Payload, error) {
	var p Payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("dssr: %w", err)
	}
	return &p, nil
}

// Match resolves the annotation record for the given model against the
// built residues. Descriptors that match no residue and geometry codes
// outside the closed enumeration drop only their own relation; each drop
// is reported in the returned diagnostics. A payload with no record for
// the model yields an empty structure.
func Match(p *Payload, s *nuc.Structure3D, model int) (*nuc.Structure2D, []string) {
	params := p.Parameters
	for _, m := range p.Models {
		if m.Num == model {
			params = m.Parameters
			break
		}
	}

	out := &nuc.Structure2D{}
	var diags []string
	miss := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		slog.Warn(msg)
		diags = append(diags, msg)
	}

	for _, pair := range params.Pairs {
		nt1 := findResidue(s, pair.Nt1)
		if nt1 == nil {
			miss("failed to find residue %s", pair.Nt1)
			continue
		}
		nt2 := findResidue(s, pair.Nt2)
		if nt2 == nil {
			miss("failed to find residue %s", pair.Nt2)
			continue
		}
		lw, ok := nuc.ParseLW(pair.LW)
		if !ok {
			miss("unknown geometry class %q for pair %s - %s", pair.LW, pair.Nt1, pair.Nt2)
			continue
		}
		out.BasePairs = append(out.BasePairs, nuc.BasePair{Nt1: nt1, Nt2: nt2, LW: lw})
	}

	for _, stack := range params.Stacks {
		var prev *nuc.Residue3D
		for _, token := range strings.Split(stack.NtsLong, ",") {
			nt := findResidue(s, token)
			if nt == nil {
				miss("failed to find residue %s", token)
			}
			if prev != nil && nt != nil {
				out.Stackings = append(out.Stackings, nuc.Stacking{Nt1: prev, Nt2: nt})
			}
			prev = nt
		}
	}

	return out, diags
}

// findResidue resolves a descriptor: the significant token is the substring
// after the final scheme separator, compared exactly against each residue's
// fully qualified name. The first match wins.
func findResidue(s *nuc.Structure3D, descriptor string) *nuc.Residue3D {
	token := descriptor
	if i := strings.LastIndexByte(descriptor, ':'); i >= 0 {
		token = descriptor[i+1:]
	}
	for _, r := range s.Residues {
		if r.FullName() == token {
			return r
		}
	}
	return nil
}
