package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildObjectKey(t *testing.T) {
	assert.Regexp(t, `^\d{13}-[0-9a-f]{8}\.png$`, BuildObjectKey("photo.png"))
	assert.Regexp(t, `\.jpg$`, BuildObjectKey("WEEKEND.JPG"), "extension is lowercased")
	assert.Regexp(t, `^\d{13}-[0-9a-f]{8}$`, BuildObjectKey("no-extension"))
}

func TestBuildObjectKeyUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		k := BuildObjectKey("a.png")
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}
