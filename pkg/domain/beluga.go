package domain

// Beluga is the cargo aircraft entity. CurrentJigs is the incoming cargo
// still aboard; Outgoing is the demand list of jig types still to be
// loaded. A beluga is complete — and removed from its snapshot — once both
// are empty.
type Beluga struct {
	CurrentJigs []int
	Outgoing    []JigType
}

// Complete reports whether this beluga has no remaining cargo and no
// remaining demand.
func (b Beluga) Complete() bool {
	return len(b.CurrentJigs) == 0 && len(b.Outgoing) == 0
}

// Clone returns a Beluga with independent backing slices.
func (b Beluga) Clone() Beluga {
	current := make([]int, len(b.CurrentJigs))
	copy(current, b.CurrentJigs)
	outgoing := make([]JigType, len(b.Outgoing))
	copy(outgoing, b.Outgoing)
	return Beluga{CurrentJigs: current, Outgoing: outgoing}
}
