//go:build unit
// +build unit

package numtheory

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendedGCD(t *testing.T) {
	t.Run("CoprimePair", func(t *testing.T) {
		a, b := big.NewInt(120), big.NewInt(23)

		g, x, y := ExtendedGCD(a, b)

		assert.Equal(t, int64(1), g.Int64())
		assert.Equal(t, int64(14), x.Int64())
		assert.Equal(t, int64(47), y.Int64())

		// a*x + b*y == g (mod a*b) after the non-negative normalization.
		sum := new(big.Int).Mul(a, x)
		sum.Add(sum, new(big.Int).Mul(b, y))
		sum.Mod(sum, new(big.Int).Mul(a, b))
		assert.Equal(t, int64(1), sum.Int64())
	})

	t.Run("NonCoprimePair", func(t *testing.T) {
		g, _, _ := ExtendedGCD(big.NewInt(48), big.NewInt(18))
		assert.Equal(t, int64(6), g.Int64())
	})

	t.Run("CoefficientsNonNegative", func(t *testing.T) {
		pairs := [][2]int64{{120, 23}, {65537, 3120}, {17, 3120}, {240, 46}, {7, 40}}
		for _, pair := range pairs {
			a, b := big.NewInt(pair[0]), big.NewInt(pair[1])
			_, x, y := ExtendedGCD(a, b)
			assert.GreaterOrEqual(t, x.Sign(), 0)
			assert.GreaterOrEqual(t, y.Sign(), 0)
		}
	})

	t.Run("InputsNotMutated", func(t *testing.T) {
		a, b := big.NewInt(120), big.NewInt(23)
		ExtendedGCD(a, b)
		assert.Equal(t, int64(120), a.Int64())
		assert.Equal(t, int64(23), b.Int64())
	})
}

func TestModInverse(t *testing.T) {
	t.Run("KnownInverse", func(t *testing.T) {
		// 17^-1 mod 3120 == 2753, the textbook RSA example.
		inv, ok := ModInverse(big.NewInt(17), big.NewInt(3120))
		require.True(t, ok)
		assert.Equal(t, int64(2753), inv.Int64())
	})

	t.Run("IdentityHolds", func(t *testing.T) {
		a, m := big.NewInt(65537), big.NewInt(3233 * 31)
		inv, ok := ModInverse(a, m)
		require.True(t, ok)

		product := new(big.Int).Mul(a, inv)
		product.Mod(product, m)
		assert.Equal(t, int64(1), product.Int64())
	})

	t.Run("NotCoprime", func(t *testing.T) {
		_, ok := ModInverse(big.NewInt(12), big.NewInt(18))
		assert.False(t, ok)
	})
}
