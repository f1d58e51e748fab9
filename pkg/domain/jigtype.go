// Package domain holds the value types of the Beluga Challenge: jig types,
// jigs, racks, production lines and the beluga aircraft. They carry no
// behaviour beyond size arithmetic — the transition system lives in
// pkg/problem.
package domain

// JigType is an immutable, name-identified cargo type. Two JigTypes are
// equal iff their names match.
type JigType struct {
	Name       string
	SizeEmpty  int
	SizeLoaded int
}

// Canonical jig types fixed by the Beluga Challenge ruleset.
var (
	TypeA = JigType{Name: "typeA", SizeEmpty: 4, SizeLoaded: 4}
	TypeB = JigType{Name: "typeB", SizeEmpty: 8, SizeLoaded: 11}
	TypeC = JigType{Name: "typeC", SizeEmpty: 9, SizeLoaded: 18}
	TypeD = JigType{Name: "typeD", SizeEmpty: 18, SizeLoaded: 25}
	TypeE = JigType{Name: "typeE", SizeEmpty: 32, SizeLoaded: 32}
)

var jigTypesByName = map[string]JigType{
	TypeA.Name: TypeA,
	TypeB.Name: TypeB,
	TypeC.Name: TypeC,
	TypeD.Name: TypeD,
	TypeE.Name: TypeE,
}

// JigTypeByName resolves one of the five canonical jig types, reporting
// false for any unrecognised name.
func JigTypeByName(name string) (JigType, bool) {
	t, ok := jigTypesByName[name]
	return t, ok
}
