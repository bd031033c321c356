package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/depot-nav/internal/scene"
	"github.com/Faultbox/depot-nav/internal/scene/memscene"
	"github.com/Faultbox/depot-nav/pkg/math"
)

// countingLayer records Add/Remove calls on top of a memscene world.
type countingLayer struct {
	*memscene.World
	adds, removes int
}

func (l *countingLayer) Add(t scene.FocusTarget, c scene.Color) {
	l.adds++
	l.World.Add(t, c)
}

func (l *countingLayer) Remove(t scene.FocusTarget) {
	l.removes++
	l.World.Remove(t)
}

func mesh(name string) *memscene.Mesh {
	return memscene.NewMesh(name, math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{})
}

func TestSetReplacesPrevious(t *testing.T) {
	layer := &countingLayer{World: memscene.New()}
	c := New(layer, scene.Yellow, nil)
	x, y := mesh("x"), mesh("y")

	c.Set(x)
	c.Set(y)

	assert.Equal(t, []string{"y"}, layer.Highlighted())
	assert.Equal(t, "y", c.Current().Name())
	assert.Equal(t, 1, layer.removes)
}

func TestSetSameIsNoop(t *testing.T) {
	layer := &countingLayer{World: memscene.New()}
	c := New(layer, scene.Yellow, nil)
	x := mesh("x")

	c.Set(x)
	c.Set(x)

	assert.Equal(t, 1, layer.adds)
	assert.Zero(t, layer.removes)
	assert.Equal(t, []string{"x"}, layer.Highlighted())
}

func TestClear(t *testing.T) {
	layer := &countingLayer{World: memscene.New()}
	c := New(layer, scene.Yellow, nil)

	c.Clear()
	assert.Zero(t, layer.removes, "clearing nothing touches the layer")

	c.Set(mesh("x"))
	c.Clear()
	assert.Empty(t, layer.Highlighted())
	assert.Nil(t, c.Current())
}
