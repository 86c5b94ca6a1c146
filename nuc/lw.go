package nuc

import "fmt"

// LeontisWesthof classifies the geometry of a base pair: cis or trans
// orientation of the Watson-Crick, Hoogsteen or sugar edges of both
// nucleotides. The enumeration is closed; annotation codes outside it do
// not resolve.
type LeontisWesthof int

const (
	CWW LeontisWesthof = iota
	CWH
	CWS
	CHW
	CHH
	CHS
	CSW
	CSH
	CSS
	TWW
	TWH
	TWS
	THW
	THH
	THS
	TSW
	TSH
	TSS
)

var lwNames = [...]string{
	CWW: "cWW", CWH: "cWH", CWS: "cWS",
	CHW: "cHW", CHH: "cHH", CHS: "cHS",
	CSW: "cSW", CSH: "cSH", CSS: "cSS",
	TWW: "tWW", TWH: "tWH", TWS: "tWS",
	THW: "tHW", THH: "tHH", THS: "tHS",
	TSW: "tSW", TSH: "tSH", TSS: "tSS",
}

var lwByName = func() map[string]LeontisWesthof {
	m := make(map[string]LeontisWesthof, len(lwNames))
	for lw, name := range lwNames {
		m[name] = LeontisWesthof(lw)
	}
	return m
}()

// ParseLW resolves a geometry code by exact name, e.g. "cWH".
func ParseLW(name string) (LeontisWesthof, bool) {
	lw, ok := lwByName[name]
	return lw, ok
}

func (lw LeontisWesthof) String() string {
	if lw < 0 || int(lw) >= len(lwNames) {
		panic(fmt.Sprintf("unknown Leontis-Westhof value: %d", int(lw)))
	}
	return lwNames[lw]
}
