package landscape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plegma/internal/genome"
)

func TestBuiltinsRegistered(t *testing.T) {
	names := Names()
	assert.Subset(t, names, []string{"onemax", "rastrigin", "sphere", "trap"})
	assert.IsIncreasing(t, names)

	for _, name := range names {
		l, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, l.Name())
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("himmelblau")
	assert.ErrorIs(t, err, ErrLandscapeNotFound)
}

type fixedLandscape struct{ name string }

func (f fixedLandscape) Name() string                   { return f.name }
func (fixedLandscape) Kind() genome.Kind                { return genome.KindBits }
func (fixedLandscape) Evaluate(_ genome.Genome) float64 { return 0 }

func TestRegisterDuplicate(t *testing.T) {
	require.NoError(t, Register(fixedLandscape{name: "fixed-dup"}))
	err := Register(fixedLandscape{name: "fixed-dup"})
	assert.ErrorIs(t, err, ErrLandscapeExists)
}

func TestRegisterValidation(t *testing.T) {
	assert.Error(t, Register(nil))
	assert.Error(t, Register(fixedLandscape{name: ""}))
}
