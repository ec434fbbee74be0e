package id

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oklog/ulid/v2"
)

func TestGenerateIsParseable(t *testing.T) {
	g := NewGenerator()
	s := g.GenerateString()
	_, err := ulid.Parse(s)
	require.NoError(t, err)
}

func TestGenerateWithPrefix(t *testing.T) {
	g := NewGenerator()
	s := g.GenerateWithPrefix("req")
	require.True(t, strings.HasPrefix(s, "req_"))
	_, err := ulid.Parse(strings.TrimPrefix(s, "req_"))
	require.NoError(t, err)
}

func TestNewRequestAndJobIDs(t *testing.T) {
	assert.True(t, strings.HasPrefix(string(NewRequestID()), "req_"))
	assert.True(t, strings.HasPrefix(string(NewJobID()), "job_"))
}

func TestGeneratorWithSeededEntropy(t *testing.T) {
	g := NewGeneratorWithEntropy(rand.New(rand.NewSource(42)))
	first := g.GenerateString()
	second := g.GenerateString()
	assert.NotEqual(t, first, second)
}

func TestGenerateIsUnique(t *testing.T) {
	g := NewGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		s := g.GenerateString()
		assert.False(t, seen[s], "duplicate ULID %s", s)
		seen[s] = true
	}
}
