package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/funcspace/utils/sampling"
)

var testKey = []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
	0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

func Test_PRNG(t *testing.T) {

	t.Run("KeyedPRNG/Reset", func(t *testing.T) {

		Ha, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)
		Hb, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			_, err = Hb.Read(sum1)
			require.NoError(t, err)
		}

		Hb.Reset()

		_, err = Ha.Read(sum0)
		require.NoError(t, err)
		_, err = Hb.Read(sum1)
		require.NoError(t, err)

		require.Equal(t, sum0, sum1)
	})

	t.Run("KeyedPRNG/Key", func(t *testing.T) {

		Ha, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)

		Hb, err := sampling.NewKeyedPRNG(Ha.Key())
		require.NoError(t, err)

		require.Equal(t, testKey, Ha.Key())
		require.Equal(t,
			sampling.UniformFloat64Slice(Ha, 16, -1, 1),
			sampling.UniformFloat64Slice(Hb, 16, -1, 1))
	})

	t.Run("UniformFloat64/Range", func(t *testing.T) {

		prng, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)

		for _, v := range sampling.UniformFloat64Slice(prng, 1024, -3, 5) {
			require.GreaterOrEqual(t, v, -3.0)
			require.Less(t, v, 5.0)
		}
	})

	t.Run("UniformFloat64/CryptoRand", func(t *testing.T) {
		v := sampling.UniformFloat64(nil, 2, 3)
		require.GreaterOrEqual(t, v, 2.0)
		require.Less(t, v, 3.0)
	})
}
