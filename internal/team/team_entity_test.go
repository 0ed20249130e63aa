package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveKind(t *testing.T) {
	assert.Equal(t, KindFrontline, DeriveKind("Frontline"))
	assert.Equal(t, KindFrontline, DeriveKind("  frontline  "))
	assert.Equal(t, KindKitchen, DeriveKind("KITCHEN"))
	assert.Equal(t, KindOther, DeriveKind("Barista"))
	assert.Equal(t, KindOther, DeriveKind(""))
}

func TestValidKind(t *testing.T) {
	assert.True(t, ValidKind(KindFrontline))
	assert.True(t, ValidKind(KindKitchen))
	assert.True(t, ValidKind(KindOther))
	assert.False(t, ValidKind("Frontline")) // kind disimpan lowercase
	assert.False(t, ValidKind("warehouse"))
}
