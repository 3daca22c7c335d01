package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTypeID(t *testing.T) {
	graph := testGraph()

	for _, ref := range []string{"User", "basic.User", "example/basic.User"} {
		t.Run(ref, func(t *testing.T) {
			info := ResolveTypeID(ref, graph)

			require.NotNil(t, info)
			assert.Equal(t, "User", info.ID.Name)
		})
	}
}

func TestResolveTypeID_NotFound(t *testing.T) {
	graph := testGraph()

	assert.Nil(t, ResolveTypeID("", graph))
	assert.Nil(t, ResolveTypeID("Nope", graph))
	assert.Nil(t, ResolveTypeID("other.User", graph))
	assert.Nil(t, ResolveTypeID("basic.Nope", graph))
}
