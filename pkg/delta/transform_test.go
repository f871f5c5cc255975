package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTransform_S5 corresponds to spec.md seed scenario S5.
func TestTransform_S5(t *testing.T) {
	a := NewDelta().Insert("a", nil)
	b := NewDelta().Insert("b", nil)

	gotPriority, err := a.Transform(b, true)
	require.NoError(t, err)
	assert.True(t, gotPriority.Equal(NewDelta().Retain(1, nil).Insert("b", nil)))

	gotNoPriority, err := a.Transform(b, false)
	require.NoError(t, err)
	assert.True(t, gotNoPriority.Equal(NewDelta().Insert("b", nil)))
}

func TestTransform_Identity(t *testing.T) {
	a := NewDelta().Insert("Hello", nil)
	empty := NewDelta()

	got, err := empty.Transform(a, true)
	require.NoError(t, err)
	assert.True(t, got.Equal(a))
}

func TestTransform_DeletesAgainstEachOtherCancel(t *testing.T) {
	a := NewDelta().Delete(3)
	b := NewDelta().Delete(3)

	got, err := a.Transform(b, true)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Length())
}

func TestTransform_RetainAttributesNonPriority(t *testing.T) {
	a := NewDelta().Retain(3, Attributes{"bold": true})
	b := NewDelta().Retain(3, Attributes{"bold": false})

	got, err := a.Transform(b, false)
	require.NoError(t, err)

	want := NewDelta().Retain(3, Attributes{"bold": false})
	assert.True(t, got.Equal(want))
}

func TestTransform_RetainAttributesPriorityFavorsCaller(t *testing.T) {
	a := NewDelta().Retain(3, Attributes{"bold": true})
	b := NewDelta().Retain(3, Attributes{"bold": false})

	got, err := a.Transform(b, true)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestTransform_OTProperty(t *testing.T) {
	a := NewDelta().Insert("Hello", nil)
	b := NewDelta().Insert("World", nil).Retain(5, nil)

	aPrime, err := a.Transform(b, false)
	require.NoError(t, err)
	bPrime, err := b.Transform(a, true)
	require.NoError(t, err)

	left, err := a.Compose(aPrime)
	require.NoError(t, err)
	right, err := b.Compose(bPrime)
	require.NoError(t, err)

	assert.True(t, left.Equal(right))
}
