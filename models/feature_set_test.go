package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureSet(t *testing.T) {
	fs := FeatureSet{"kl": 0.5}
	fs.Merge(map[string]float64{"jacc": 0.25, "kl": 1})

	assert.Equal(t, 1.0, fs.Get("kl"))
	assert.Zero(t, fs.Get("col-num-3"))
	assert.Equal(t, []string{"jacc", "kl"}, fs.Keys())
}
