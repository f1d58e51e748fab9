package domain

// ProductionLine is an ordered schedule of jig ids; index 0 is the jig
// currently demanded at the line's head. A line is removed from its
// snapshot once its schedule empties.
type ProductionLine struct {
	ScheduledJigs []int
}

// Clone returns a ProductionLine with an independent backing slice.
func (p ProductionLine) Clone() ProductionLine {
	jigs := make([]int, len(p.ScheduledJigs))
	copy(jigs, p.ScheduledJigs)
	return ProductionLine{ScheduledJigs: jigs}
}
