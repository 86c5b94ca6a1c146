// Package pdb parses the legacy fixed-column structure format into the
// canonical atom list and modification table.
//
// Only the records the residue pipeline needs are read: MODEL, ATOM,
// HETATM and MODRES. The byte offsets of each field are a compatibility
// requirement and are kept exactly as the legacy convention defines them.
package pdb

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/TuftsBCB/structure"

	"github.com/RNApolis/eltetrado/nuc"
)

type parser struct {
	line  []byte
	model int
	atoms []nuc.Atom3D
	mods  nuc.Modifications
}

// Parse reads a fixed-column structure file. The label identifier scheme
// does not exist in this format, so every atom carries an auth identifier
// only. A malformed numeric field aborts the parse with nuc.ErrFormat and
// no partial result.
func Parse(r io.Reader) ([]nuc.Atom3D, nuc.Modifications, error) {
	p := parser{
		model: 1,
		atoms: make([]nuc.Atom3D, 0, 256),
		mods:  nuc.NewModifications(),
	}

	breader := bufio.NewReaderSize(r, 1000)
	for {
		// 'isPrefix' is ignored: record lines never exceed the buffer.
		line, _, err := breader.ReadLine()
		if err == io.EOF && len(line) == 0 {
			break
		} else if err != io.EOF && err != nil {
			return nil, nuc.Modifications{}, err
		}
		p.line = line
		if err := p.parseLine(); err != nil {
			return nil, nuc.Modifications{}, err
		}
	}
	return p.atoms, p.mods, nil
}

func (p *parser) parseLine() error {
	switch {
	case bytes.HasPrefix(p.line, []byte("MODEL")):
		model, err := p.atoi(11, 14)
		if err != nil {
			return fmt.Errorf("pdb: model number %q: %w", p.cols(11, 14), nuc.ErrFormat)
		}
		p.model = model
	case bytes.HasPrefix(p.line, []byte("ATOM")), bytes.HasPrefix(p.line, []byte("HETATM")):
		return p.parseAtom()
	case bytes.HasPrefix(p.line, []byte("MODRES")):
		return p.parseModres()
	}
	return nil
}

// parseAtom reads one ATOM/HETATM record: alternate location in column 17,
// atom name in 13-16, residue name in 19-20, chain in 22, residue number
// in 23-26, insertion code in 27 and coordinates in 31-38, 39-46, 47-54.
func (p *parser) parseAtom() error {
	if alt := p.at(17); alt != ' ' && alt != 'A' && alt != 0 {
		// Exactly one conformer is retained: the primary one.
		return nil
	}

	number, err := p.atoi(23, 26)
	if err != nil {
		return fmt.Errorf("pdb: residue number %q: %w", p.cols(23, 26), nuc.ErrFormat)
	}
	x, err := p.atof(31, 38)
	if err != nil {
		return fmt.Errorf("pdb: x coordinate %q: %w", p.cols(31, 38), nuc.ErrFormat)
	}
	y, err := p.atof(39, 46)
	if err != nil {
		return fmt.Errorf("pdb: y coordinate %q: %w", p.cols(39, 46), nuc.ErrFormat)
	}
	z, err := p.atof(47, 54)
	if err != nil {
		return fmt.Errorf("pdb: z coordinate %q: %w", p.cols(47, 54), nuc.ErrFormat)
	}

	auth := &nuc.ResidueAuth{
		Chain:         string(p.at(22)),
		Number:        number,
		InsertionCode: p.icode(27),
		Name:          p.cols(19, 20),
	}
	p.atoms = append(p.atoms, nuc.Atom3D{
		Auth:   auth,
		Model:  p.model,
		Name:   p.cols(13, 16),
		Coords: structure.Coords{X: x, Y: y, Z: z},
	})
	return nil
}

// parseModres records an auth-keyed modification entry: original residue
// name in columns 13-15, chain in 17, residue number in 19-22, insertion
// code in 24 and the parent residue name in 25-27.
func (p *parser) parseModres() error {
	number, err := p.atoi(19, 22)
	if err != nil {
		return fmt.Errorf("pdb: modres residue number %q: %w", p.cols(19, 22), nuc.ErrFormat)
	}
	auth := nuc.ResidueAuth{
		Chain:         string(p.at(17)),
		Number:        number,
		InsertionCode: p.icode(24),
		Name:          p.cols(13, 15),
	}
	p.mods.ByAuth[auth] = p.cols(25, 27)
	return nil
}

func (p *parser) atoi(start, end int) (int, error) {
	return strconv.Atoi(p.cols(start, end))
}

func (p *parser) atof(start, end int) (float64, error) {
	return strconv.ParseFloat(p.cols(start, end), 64)
}

// cols returns the trimmed text in the 1-based, inclusive column range.
func (p *parser) cols(start, end int) string {
	rs, re := start-1, end
	if rs >= len(p.line) || rs < 0 {
		return ""
	}
	if re > len(p.line) {
		re = len(p.line)
	}
	return string(bytes.TrimSpace(p.line[rs:re]))
}

// at returns the byte in the 1-based column, or 0 past the end of line.
func (p *parser) at(column int) byte {
	i := column - 1
	if i < 0 || i >= len(p.line) {
		return 0
	}
	return p.line[i]
}

// icode reads a one-character insertion code column; blank means none.
func (p *parser) icode(column int) string {
	if c := p.at(column); c != ' ' && c != 0 {
		return string(c)
	}
	return ""
}
