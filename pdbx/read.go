// Package pdbx parses the tag/table-based structure format into the
// canonical atom list and modification table.
//
// The document is loaded through the CIF table backend. The atom table is
// required (a document without one yields no atoms); the modified-residue
// table is optional. Label and auth identifier columns are independently
// optional, but every row must populate at least one scheme completely.
package pdbx

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/cif"
	"github.com/TuftsBCB/structure"

	"github.com/RNApolis/eltetrado/nuc"
)

// Parse reads a tag-based structure file. The output shape matches the
// fixed-column parser: atoms in file order plus the modification table.
func Parse(r io.Reader) ([]nuc.Atom3D, nuc.Modifications, error) {
	cf, err := cif.Read(r)
	if err != nil {
		return nil, nuc.Modifications{}, fmt.Errorf("pdbx: %s: %w", err, nuc.ErrFormat)
	}

	// A structure file holds one data block in practice.
	var block *cif.DataBlock
	for _, b := range cf.Blocks {
		block = b
		break
	}
	if block == nil {
		return nil, nuc.Modifications{}, fmt.Errorf("pdbx: no data block: %w", nuc.ErrFormat)
	}

	atoms, err := readAtoms(block)
	if err != nil {
		return nil, nuc.Modifications{}, err
	}
	mods, err := readModified(block)
	if err != nil {
		return nil, nuc.Modifications{}, err
	}
	return atoms, mods, nil
}

func readAtoms(b *cif.DataBlock) ([]nuc.Atom3D, error) {
	t := findTable(b, "atom_site")
	if t == nil {
		return nil, nil
	}

	ids := identifierColumns(t, "atom_site", "pdbx_pdb_ins_code")
	names := t.column("atom_site.label_atom_id")
	models := t.column("atom_site.pdbx_pdb_model_num")
	xs := t.column("atom_site.cartn_x")
	ys := t.column("atom_site.cartn_y")
	zs := t.column("atom_site.cartn_z")

	atoms := make([]nuc.Atom3D, 0, t.n)
	for i := 0; i < t.n; i++ {
		label, auth, err := ids.keys(i)
		if err != nil {
			return nil, fmt.Errorf("pdbx: atom row %d: %w", i+1, err)
		}

		name := cell(names, i)
		if name == "" {
			return nil, fmt.Errorf("pdbx: atom row %d has no atom name: %w", i+1, nuc.ErrFormat)
		}
		model := 1
		if s := cell(models, i); s != "" {
			if model, err = strconv.Atoi(s); err != nil {
				return nil, fmt.Errorf("pdbx: atom row %d model %q: %w", i+1, s, nuc.ErrFormat)
			}
		}
		x, err := coord(xs, i, "x")
		if err != nil {
			return nil, err
		}
		y, err := coord(ys, i, "y")
		if err != nil {
			return nil, err
		}
		z, err := coord(zs, i, "z")
		if err != nil {
			return nil, err
		}

		atoms = append(atoms, nuc.Atom3D{
			Label:  label,
			Auth:   auth,
			Model:  model,
			Name:   name,
			Coords: structure.Coords{X: x, Y: y, Z: z},
		})
	}
	return atoms, nil
}

func readModified(b *cif.DataBlock) (nuc.Modifications, error) {
	mods := nuc.NewModifications()
	t := findTable(b, "pdbx_struct_mod_residue")
	if t == nil {
		return mods, nil
	}

	ids := identifierColumns(t, "pdbx_struct_mod_residue", "pdb_ins_code")
	parents := t.column("pdbx_struct_mod_residue.parent_comp_id")

	for i := 0; i < t.n; i++ {
		label, auth, err := ids.keys(i)
		if err != nil {
			return mods, fmt.Errorf("pdbx: modified residue row %d: %w", i+1, err)
		}
		parent := cell(parents, i)
		if parent == "" {
			parent = string(nuc.UnknownResidue)
		}
		if label != nil {
			mods.ByLabel[*label] = parent
		}
		if auth != nil {
			mods.ByAuth[*auth] = parent
		}
	}
	return mods, nil
}

func coord(col []string, i int, axis string) (float64, error) {
	s := cell(col, i)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("pdbx: atom row %d %s coordinate %q: %w", i+1, axis, s, nuc.ErrFormat)
	}
	return v, nil
}

// idCols is the set of identifier columns shared by the atom and
// modified-residue tables. Absent columns are nil.
type idCols struct {
	labelChain, labelSeq, labelName []string
	authChain, authSeq, authName    []string
	ins                             []string
}

func identifierColumns(t *table, category, insField string) idCols {
	pre := category + "."
	return idCols{
		labelChain: t.column(pre + "label_asym_id"),
		labelSeq:   t.column(pre + "label_seq_id"),
		labelName:  t.column(pre + "label_comp_id"),
		authChain:  t.column(pre + "auth_asym_id"),
		authSeq:    t.column(pre + "auth_seq_id"),
		authName:   t.column(pre + "auth_comp_id"),
		ins:        t.column(pre + insField),
	}
}

// keys builds the optional label and auth identifiers of one row. A value
// present in either scheme satisfies the chain/sequence/name requirement;
// a row populating neither scheme completely is an identity error.
func (c idCols) keys(i int) (*nuc.ResidueLabel, *nuc.ResidueAuth, error) {
	labelChain := cell(c.labelChain, i)
	labelNum, labelNumOK := parseInt(cell(c.labelSeq, i))
	labelName := cell(c.labelName, i)
	authChain := cell(c.authChain, i)
	authNum, authNumOK := parseInt(cell(c.authSeq, i))
	authName := cell(c.authName, i)

	switch {
	case labelChain == "" && authChain == "":
		return nil, nil, fmt.Errorf("empty chain name: %w", nuc.ErrIdentity)
	case !labelNumOK && !authNumOK:
		return nil, nil, fmt.Errorf("empty residue number: %w", nuc.ErrIdentity)
	case labelName == "" && authName == "":
		return nil, nil, fmt.Errorf("empty residue name: %w", nuc.ErrIdentity)
	}

	var label *nuc.ResidueLabel
	if labelChain != "" && labelNumOK && labelName != "" {
		label = &nuc.ResidueLabel{Chain: labelChain, Number: labelNum, Name: labelName}
	}
	var auth *nuc.ResidueAuth
	if authChain != "" && authNumOK && authName != "" {
		auth = &nuc.ResidueAuth{
			Chain:         authChain,
			Number:        authNum,
			InsertionCode: cell(c.ins, i),
			Name:          authName,
		}
	}
	if label == nil && auth == nil {
		return nil, nil, fmt.Errorf("no complete identifier scheme: %w", nuc.ErrIdentity)
	}
	return label, auth, nil
}

func parseInt(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	return v, err == nil
}

// cell returns the value of a column at row i, treating absent columns and
// the CIF null tokens "?" and "." as empty.
func cell(col []string, i int) string {
	if col == nil || i >= len(col) {
		return ""
	}
	s := col[i]
	if s == "?" || s == "." {
		return ""
	}
	return s
}

// table abstracts over whether a data category is represented as a loop or
// as single-row items, the same way the loop/value distinction is handled
// for entities in ordinary entry reading.
type table struct {
	n     int
	loop  *cif.Loop
	items map[string]cif.Value
}

// findTable locates the table holding the given category. Tag names are
// stored lowercase by the CIF backend.
func findTable(b *cif.DataBlock, category string) *table {
	prefix := category + "."
	for tag, loop := range b.Loops {
		if strings.HasPrefix(tag, prefix) {
			return &table{n: loopLen(loop), loop: loop}
		}
	}
	for tag := range b.Items {
		if strings.HasPrefix(tag, prefix) {
			return &table{n: 1, items: b.Items}
		}
	}
	return nil
}

// column returns the named column as strings, nil when absent.
func (t *table) column(tag string) []string {
	if t.loop != nil {
		i, ok := t.loop.Columns[tag]
		if !ok {
			return nil
		}
		return colStrings(t.loop.Values[i])
	}
	v, ok := t.items[tag]
	if !ok {
		return nil
	}
	return []string{valueString(v)}
}

func valueString(v cif.Value) string {
	switch x := v.Raw().(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return v.String()
}

// colStrings renders a loop column as strings regardless of the type the
// backend inferred for it.
func colStrings(vl cif.ValueLoop) []string {
	if ss := vl.Strings(); ss != nil {
		return ss
	}
	if is := vl.Ints(); is != nil {
		out := make([]string, len(is))
		for i, v := range is {
			out[i] = strconv.Itoa(v)
		}
		return out
	}
	if fs := vl.Floats(); fs != nil {
		out := make([]string, len(fs))
		for i, v := range fs {
			out[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		return out
	}
	return nil
}

func loopLen(loop *cif.Loop) int {
	if len(loop.Values) == 0 {
		return 0
	}
	return len(colStrings(loop.Values[0]))
}
