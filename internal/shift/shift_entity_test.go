package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveKind(t *testing.T) {
	assert.Equal(t, KindFirst, DeriveKind("Shift 1"))
	assert.Equal(t, KindFirst, DeriveKind(" shift 1 "))
	assert.Equal(t, KindSecond, DeriveKind("SHIFT 2"))
	assert.Equal(t, KindOther, DeriveKind("Shift 3"))
	assert.Equal(t, KindOther, DeriveKind("Malam"))
}
