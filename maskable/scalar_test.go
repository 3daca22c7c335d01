package maskable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeserializeUint32Mask_EmptyPathSelects(t *testing.T) {
	var mask bool

	err := DeserializeUint32Mask(&mask, nil)

	require.NoError(t, err)
	assert.True(t, mask)
}

func TestDeserializeUint32Mask_LeftoverSegmentFails(t *testing.T) {
	var mask bool

	err := DeserializeUint32Mask(&mask, []string{"x", "y"})

	require.Error(t, err)

	var dErr *DeserializeMaskError
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, "uint32", dErr.Type)
	assert.Equal(t, "x", dErr.Field)
	assert.Equal(t, 0, dErr.Depth, "terminals report depth from their own frame")
	assert.False(t, mask, "failed parse must not set the flag")
}

func TestDeserializeTextMask_LeftoverSegmentFails(t *testing.T) {
	var mask bool

	err := DeserializeTextMask(&mask, []string{"z"})

	var dErr *DeserializeMaskError
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, "string", dErr.Type)
	assert.Equal(t, "z", dErr.Field)
}

func TestApplyUint32Mask_ReplaceLaw(t *testing.T) {
	dst, src := uint32(1), uint32(2)

	ApplyUint32Mask(&dst, src, true)
	assert.Equal(t, uint32(2), dst, "set mask replaces")

	dst = 1
	ApplyUint32Mask(&dst, src, false)
	assert.Equal(t, uint32(1), dst, "unset mask leaves dst untouched")
}

func TestApplyTextMask_ReplaceLaw(t *testing.T) {
	dst, src := "x", "y"

	ApplyTextMask(&dst, src, true)
	assert.Equal(t, "y", dst)

	dst = "x"
	ApplyTextMask(&dst, src, false)
	assert.Equal(t, "x", dst)
}

func TestScalarPresenceVariants_AlwaysPresent(t *testing.T) {
	var n uint32

	assert.True(t, ApplyUint32MaskPresence(&n, 7, true))
	assert.Equal(t, uint32(7), n)

	var s string

	assert.True(t, ApplyTextMaskPresence(&s, "v", false), "verdict is present even when nothing merged")
	assert.Equal(t, "", s)
}
