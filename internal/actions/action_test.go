package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionAccessors(t *testing.T) {
	t.Parallel()

	a := New(Stir,
		Param(TagDuration, "10 minutes"),
		Param(TagTemperature, "5 °C"))

	duration, ok := a.Get(TagDuration)
	assert.True(t, ok)
	assert.Equal(t, "10 minutes", duration)

	_, ok = a.Get(TagAtmosphere)
	assert.False(t, ok)

	assert.True(t, a.Has(TagTemperature))
	assert.False(t, a.Has(TagDropwise))
}

func TestActionValues(t *testing.T) {
	t.Parallel()

	a := New(MakeSolution,
		Param(TagMaterial, "water (5 ml)"),
		Param(TagMaterial, "THF"))

	assert.Equal(t, []string{"water (5 ml)", "THF"}, a.Values(TagMaterial))
	assert.Empty(t, a.Values(TagSolvent))
}

func TestActionWith(t *testing.T) {
	t.Parallel()

	a := New(Stir, Param(TagDuration, "10 minutes"))

	b := a.With(TagDuration, "1 h")
	duration, _ := b.Get(TagDuration)
	assert.Equal(t, "1 h", duration)

	// original must stay untouched
	duration, _ = a.Get(TagDuration)
	assert.Equal(t, "10 minutes", duration)

	c := a.With(TagTemperature, "5 °C")
	assert.True(t, c.Has(TagTemperature))
	assert.False(t, a.Has(TagTemperature))
}

func TestActionWithout(t *testing.T) {
	t.Parallel()

	a := New(Wait,
		Param(TagDuration, "10 minutes"),
		Param(TagTemperature, "25 °C"))

	b := a.Without(TagTemperature)
	assert.False(t, b.Has(TagTemperature))
	assert.True(t, b.Has(TagDuration))
	assert.True(t, a.Has(TagTemperature))
}

func TestActionCloneIsDeep(t *testing.T) {
	t.Parallel()

	a := New(Add, Param(TagMaterial, "water"))
	b := a.Clone()
	b.Parameters[0].Value = "THF"

	material, _ := a.Get(TagMaterial)
	assert.Equal(t, "water", material)
}

func TestActionEqual(t *testing.T) {
	t.Parallel()

	a := New(Stir, Param(TagDuration, "1 h"), Param(TagTemperature, "5 °C"))
	b := New(Stir, Param(TagDuration, "1 h"), Param(TagTemperature, "5 °C"))
	assert.True(t, a.Equal(b))

	// parameter order matters
	c := New(Stir, Param(TagTemperature, "5 °C"), Param(TagDuration, "1 h"))
	assert.False(t, a.Equal(c))

	assert.False(t, a.Equal(New(Reflux, Param(TagDuration, "1 h"))))
	assert.False(t, a.Equal(New(Stir, Param(TagDuration, "1 h"))))
}

func TestSequencesEqual(t *testing.T) {
	t.Parallel()

	a := []Action{New(NoAction), New(Concentrate)}
	b := []Action{New(NoAction), New(Concentrate)}
	assert.True(t, SequencesEqual(a, b))
	assert.False(t, SequencesEqual(a, b[:1]))
	assert.False(t, SequencesEqual(a, []Action{New(Concentrate), New(NoAction)}))
}

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	a := New(Stir,
		Param(TagAtmosphere, "nitrogen"),
		Param(TagDuration, "1 h"),
		Param(TagTemperature, "5 °C"))

	got := Canonicalize(a)
	want := New(Stir,
		Param(TagDuration, "1 h"),
		Param(TagTemperature, "5 °C"),
		Param(TagAtmosphere, "nitrogen"))
	assert.True(t, got.Equal(want))

	// leading slot comes first
	b := New(Add, Param(TagTemperature, "0 °C"), Param(TagMaterial, "water"))
	got = Canonicalize(b)
	require.Len(t, got.Parameters, 2)
	assert.Equal(t, TagMaterial, got.Parameters[0].Tag)

	// multi-material actions keep their parameter order
	c := New(MakeSolution, Param(TagMaterial, "B"), Param(TagMaterial, "A"))
	assert.True(t, Canonicalize(c).Equal(c))
}

func TestKindFromToken(t *testing.T) {
	t.Parallel()

	k, ok := KindFromToken("STIR")
	assert.True(t, ok)
	assert.Equal(t, Stir, k)

	_, ok = KindFromToken("stir")
	assert.False(t, ok)
	_, ok = KindFromToken("DANCE")
	assert.False(t, ok)
}

func TestKindsCoverRegistry(t *testing.T) {
	t.Parallel()

	kinds := Kinds()
	assert.Len(t, kinds, len(registry))
	for _, k := range kinds {
		_, ok := Spec(k)
		assert.True(t, ok, "missing spec for %s", k)
	}
}

func TestTakesDuration(t *testing.T) {
	t.Parallel()

	assert.True(t, TakesDuration(Stir))
	assert.True(t, TakesDuration(Wait))
	assert.True(t, TakesDuration(Reflux))
	assert.False(t, TakesDuration(Filter))
	assert.False(t, TakesDuration(Concentrate))
}
