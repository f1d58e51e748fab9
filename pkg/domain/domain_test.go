package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJigTypeByName(t *testing.T) {
	typ, ok := JigTypeByName("typeC")
	require.True(t, ok)
	assert.Equal(t, 9, typ.SizeEmpty)
	assert.Equal(t, 18, typ.SizeLoaded)

	_, ok = JigTypeByName("typeZ")
	assert.False(t, ok)
}

func TestJigSize(t *testing.T) {
	loaded := Jig{Type: TypeB, Empty: false}
	empty := Jig{Type: TypeB, Empty: true}
	assert.Equal(t, 11, loaded.Size())
	assert.Equal(t, 8, empty.Size())
}

func TestRackFreeSpace(t *testing.T) {
	jigs := []Jig{
		{Type: TypeA, Empty: false}, // size 4
		{Type: TypeA, Empty: true},  // size 4
	}
	rack := Rack{Capacity: 10, CurrentJigs: []int{0, 1}}
	assert.Equal(t, 2, rack.FreeSpace(jigs))
}

func TestRackCloneIsIndependent(t *testing.T) {
	rack := Rack{Capacity: 10, CurrentJigs: []int{0, 1}}
	clone := rack.Clone()
	clone.CurrentJigs[0] = 99
	assert.Equal(t, 0, rack.CurrentJigs[0])
}

func TestBelugaComplete(t *testing.T) {
	b := Beluga{}
	assert.True(t, b.Complete())

	b.CurrentJigs = []int{0}
	assert.False(t, b.Complete())
}

func TestBelugaCloneIsIndependent(t *testing.T) {
	b := Beluga{CurrentJigs: []int{1, 2}, Outgoing: []JigType{TypeA}}
	clone := b.Clone()
	clone.CurrentJigs[0] = 99
	clone.Outgoing[0] = TypeB
	assert.Equal(t, 1, b.CurrentJigs[0])
	assert.Equal(t, TypeA, b.Outgoing[0])
}

func TestProductionLineCloneIsIndependent(t *testing.T) {
	line := ProductionLine{ScheduledJigs: []int{3, 4}}
	clone := line.Clone()
	clone.ScheduledJigs[0] = 99
	assert.Equal(t, 3, line.ScheduledJigs[0])
}
