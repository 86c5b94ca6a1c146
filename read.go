package eltetrado

import (
	"bytes"

	"github.com/RNApolis/eltetrado/nuc"
	"github.com/RNApolis/eltetrado/pdb"
	"github.com/RNApolis/eltetrado/pdbx"
)

// ReadStructure reads a structure file (optionally gzip-compressed) and
// builds the ordered residue sequence of the given model.
func ReadStructure(fileName string, model int) (*nuc.Structure3D, error) {
	buf, cleanup, err := openInput(fileName)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return Read3D(buf, model)
}

// Read3D sniffs the buffer, parses it with the matching parser, filters to
// the given model and groups atoms into residues. No partial result is
// produced on error.
func Read3D(buf []byte, model int) (*nuc.Structure3D, error) {
	var (
		atoms []nuc.Atom3D
		mods  nuc.Modifications
		err   error
	)
	if IsCIF(buf) {
		atoms, mods, err = pdbx.Parse(bytes.NewReader(buf))
	} else {
		atoms, mods, err = pdb.Parse(bytes.NewReader(buf))
	}
	if err != nil {
		return nil, err
	}
	return nuc.GroupAtoms(nuc.FilterModel(atoms, model), mods), nil
}
