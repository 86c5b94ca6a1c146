package dssr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RNApolis/eltetrado/nuc"
)

func quadStructure() *nuc.Structure3D {
	residue := func(i int, chain string, number int, name string) *nuc.Residue3D {
		return &nuc.Residue3D{
			Index: i,
			Name:  name,
			Model: 1,
			Auth:  &nuc.ResidueAuth{Chain: chain, Number: number, Name: name},
		}
	}
	return &nuc.Structure3D{Residues: []*nuc.Residue3D{
		residue(1, "A", 1, "DG"),
		residue(2, "A", 2, "DA"),
		residue(3, "A", 3, "DG"),
	}}
}

const payloadText = `{
	"models": [
		{
			"model": 1,
			"parameters": {
				"pairs": [
					{"nt1": "1:A.DG1", "nt2": "A.DG3", "LW": "cWH"},
					{"nt1": "A.DG1", "nt2": "A.XX9", "LW": "cWW"},
					{"nt1": "A.DA2", "nt2": "A.DG3", "LW": "bogus"}
				],
				"stacks": [
					{"nts_long": "A.DG1,A.XX9,A.DA2,A.DG3"}
				]
			}
		}
	]
}`

func TestMatchPairs(t *testing.T) {
	payload, err := Load(strings.NewReader(payloadText))
	require.NoError(t, err)

	s := quadStructure()
	out, diags := Match(payload, s, 1)

	// Only the fully resolvable pair survives; the unknown descriptor and
	// the unknown geometry code drop their own relation and nothing else.
	require.Len(t, out.BasePairs, 1)
	pair := out.BasePairs[0]
	assert.Equal(t, 1, pair.Nt1.Index)
	assert.Equal(t, 3, pair.Nt2.Index)
	assert.Equal(t, nuc.CWH, pair.LW)

	assert.Empty(t, out.BaseRiboseInteractions)
	assert.Empty(t, out.BasePhosphateInteractions)
	assert.Empty(t, out.OtherInteractions)

	require.Len(t, diags, 3)
	assert.Contains(t, diags[0], "A.XX9")
	assert.Contains(t, diags[1], "bogus")
	assert.Contains(t, diags[2], "A.XX9")
}

func TestMatchStackings(t *testing.T) {
	payload, err := Load(strings.NewReader(payloadText))
	require.NoError(t, err)

	out, _ := Match(payload, quadStructure(), 1)

	// DG1 . DA2 DG3 with the unresolved token in between: only the
	// DA2/DG3 adjacency survives.
	require.Len(t, out.Stackings, 1)
	assert.Equal(t, 2, out.Stackings[0].Nt1.Index)
	assert.Equal(t, 3, out.Stackings[0].Nt2.Index)
}

func TestMatchFullStack(t *testing.T) {
	payload, err := Load(strings.NewReader(`{
		"models": [{"model": 1, "parameters": {
			"stacks": [{"nts_long": "A.DG1,A.DA2,A.DG3"}]
		}}]
	}`))
	require.NoError(t, err)

	out, diags := Match(payload, quadStructure(), 1)
	assert.Len(t, out.Stackings, 2, "k resolved tokens give k-1 relations")
	assert.Empty(t, diags)
}

func TestMatchModelSelection(t *testing.T) {
	payload, err := Load(strings.NewReader(payloadText))
	require.NoError(t, err)

	out, diags := Match(payload, quadStructure(), 2)
	assert.Empty(t, out.BasePairs)
	assert.Empty(t, out.Stackings)
	assert.Empty(t, diags)
}

func TestMatchTopLevelPayload(t *testing.T) {
	payload, err := Load(strings.NewReader(`{
		"pairs": [{"nt1": "A.DG1", "nt2": "A.DG3", "LW": "tWW"}]
	}`))
	require.NoError(t, err)

	out, _ := Match(payload, quadStructure(), 1)
	require.Len(t, out.BasePairs, 1)
	assert.Equal(t, nuc.TWW, out.BasePairs[0].LW)
}

func TestMatchInsertionCodeDescriptor(t *testing.T) {
	s := &nuc.Structure3D{Residues: []*nuc.Residue3D{{
		Index: 1,
		Name:  "U",
		Auth:  &nuc.ResidueAuth{Chain: "B", Number: 13, InsertionCode: "A", Name: "U"},
	}}}
	payload, err := Load(strings.NewReader(`{
		"pairs": [{"nt1": "B.U13^A", "nt2": "B.U13^A", "LW": "cWW"}]
	}`))
	require.NoError(t, err)

	out, diags := Match(payload, s, 1)
	assert.Len(t, out.BasePairs, 1)
	assert.Empty(t, diags)
}

func TestLoadRejectsGarbage(t *testing.T) {
	_, err := Load(strings.NewReader("not json"))
	assert.Error(t, err)
}
