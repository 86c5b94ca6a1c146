package nuc

// BasePair is a pairing relation between two residues of one structure,
// classified by its Leontis-Westhof geometry. Saenger is the optional
// Saenger class when the annotation source provides one.
type BasePair struct {
	Nt1, Nt2 *Residue3D
	LW       LeontisWesthof
	Saenger  string
}

// Stacking is a stacking relation between two residues. Topology is the
// optional upward/downward/inward/outward mark when the annotation source
// provides one.
type Stacking struct {
	Nt1, Nt2 *Residue3D
	Topology string
}

// Structure2D holds the annotation relations for one model. Import paths
// that cover only a subset of the categories leave the rest empty.
type Structure2D struct {
	BasePairs                 []BasePair
	Stackings                 []Stacking
	BaseRiboseInteractions    []BasePair
	BasePhosphateInteractions []BasePair
	OtherInteractions         []BasePair
}
