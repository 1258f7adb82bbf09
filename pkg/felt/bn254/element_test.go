package bn254

import (
	"math/big"
	"testing"

	"github.com/Veridise/llzk-go/pkg/felt"
	"github.com/stretchr/testify/require"
)

func TestAddWrapsAroundModulus(t *testing.T) {
	var zero Element
	//
	pMinusOne, err := felt.FromBigInt[Element](new(big.Int).Sub(zero.Modulus(), big.NewInt(1)))
	require.NoError(t, err)
	// (p - 1) + 1 == 0
	require.True(t, pMinusOne.Add(felt.One[Element]()).IsZero())
}

func TestNegIsAdditiveInverse(t *testing.T) {
	x := felt.Uint64[Element](12345)
	//
	require.True(t, x.Add(x.Neg()).IsZero())
	require.True(t, felt.Zero[Element]().Neg().IsZero())
}

func TestMulIdentity(t *testing.T) {
	x := felt.Uint64[Element](98765)
	//
	require.Equal(t, 0, x.Mul(felt.One[Element]()).Cmp(x))
	require.True(t, x.Mul(felt.Zero[Element]()).IsZero())
}

func TestSubInverseOfAdd(t *testing.T) {
	x := felt.Uint64[Element](111)
	y := felt.Uint64[Element](222)
	//
	require.Equal(t, 0, x.Add(y).Sub(y).Cmp(x))
}

func TestFromBigIntReduces(t *testing.T) {
	var zero Element
	// p + 5 is in range (below twice the modulus width) and reduces to 5.
	val, err := felt.FromBigInt[Element](new(big.Int).Add(zero.Modulus(), big.NewInt(5)))
	require.NoError(t, err)
	require.Equal(t, 0, val.Cmp(felt.Uint64[Element](5)))
}

func TestFromBigIntRejectsNegative(t *testing.T) {
	_, err := felt.FromBigInt[Element](big.NewInt(-1))
	require.ErrorIs(t, err, felt.ErrOutOfRange)
}

func TestFromBigIntRejectsOversized(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 600)
	//
	_, err := felt.FromBigInt[Element](huge)
	require.ErrorIs(t, err, felt.ErrOutOfRange)
}

func TestBigIntRoundTrip(t *testing.T) {
	x := felt.Uint64[Element](424242)
	//
	val, err := felt.FromBigInt[Element](felt.BigInt(x))
	require.NoError(t, err)
	require.Equal(t, 0, val.Cmp(x))
}

func TestTextDecimal(t *testing.T) {
	require.Equal(t, "1000", felt.Uint64[Element](1000).Text(10))
}
