package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whichchain/whichchain/internal/config"
	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

// runCommand executes the root command with the given arguments, capturing
// formatter output. Global CLI state is reset between runs.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvLogLevel, "off")

	var buf bytes.Buffer
	prevStdout := stdout
	stdout = &buf
	t.Cleanup(func() {
		stdout = prevStdout
		homeDir, registryDir, outputFormat, verbose = "", "", "", false
		identifyChain, identifyMinConfidence = "", 0
		derivePipeline, deriveChain, deriveHRP, deriveVersion, derivePrefix = "", "", "", "", ""
	})

	rootCmd.SetArgs(args)
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestIdentifyCommandText(t *testing.T) {
	out, err := runCommand(t, "identify", "0xd8da6bf26964af9d7eed9e03e53415d37aa96045", "-o", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "ethereum")
	assert.Contains(t, out, "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	assert.Contains(t, out, "CONFIDENCE")
}

func TestIdentifyCommandJSON(t *testing.T) {
	out, err := runCommand(t, "identify", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", "-o", "json")
	require.NoError(t, err)

	var decoded struct {
		Input      string `json:"input"`
		Candidates []struct {
			Chain      string  `json:"chain"`
			Confidence float64 `json:"confidence"`
		} `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.NotEmpty(t, decoded.Candidates)
	assert.Equal(t, "bitcoin", decoded.Candidates[0].Chain)
}

func TestIdentifyCommandChainFilter(t *testing.T) {
	out, err := runCommand(t,
		"identify", "0xd8da6bf26964af9d7eed9e03e53415d37aa96045",
		"--chain", "polygon", "-o", "json")
	require.NoError(t, err)

	var decoded struct {
		Candidates []struct {
			Chain string `json:"chain"`
		} `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.NotEmpty(t, decoded.Candidates)
	for _, c := range decoded.Candidates {
		assert.Equal(t, "polygon", c.Chain)
	}
}

func TestIdentifyCommandUnknownChainSuggests(t *testing.T) {
	_, err := runCommand(t,
		"identify", "0xd8da6bf26964af9d7eed9e03e53415d37aa96045",
		"--chain", "etherum")
	require.Error(t, err)
	assert.ErrorIs(t, err, wcerrors.ErrUnknownChain)

	var we *wcerrors.Error
	require.ErrorAs(t, err, &we)
	assert.Contains(t, we.Suggestion, "ethereum")
}

func TestIdentifyCommandMinConfidence(t *testing.T) {
	// A lowercase EVM address tops out at 0.55 without checksum evidence.
	_, err := runCommand(t,
		"identify", "0xd8da6bf26964af9d7eed9e03e53415d37aa96045",
		"--min-confidence", "0.9")
	require.Error(t, err)
	assert.ErrorIs(t, err, wcerrors.ErrInvalidInput)
}

func TestIdentifyCommandInvalidInput(t *testing.T) {
	_, err := runCommand(t, "identify", "zz!!")
	require.Error(t, err)
	assert.ErrorIs(t, err, wcerrors.ErrInvalidInput)
	assert.Equal(t, wcerrors.ExitInput, ExitCode(err))
}

func TestDeriveCommandPipeline(t *testing.T) {
	key := "0x0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	out, err := runCommand(t, "derive", key, "--pipeline", "evm", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf")
}

func TestDeriveCommandChainParams(t *testing.T) {
	key := "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	out, err := runCommand(t, "derive", key, "--chain", "polkadot", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5")
}

func TestDeriveCommandSS58PrefixOverride(t *testing.T) {
	key := "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	out, err := runCommand(t, "derive", key,
		"--pipeline", "ss58", "--ss58-prefix", "42", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY")
}

func TestDeriveCommandBase58Key(t *testing.T) {
	// Base58 rendering of the same 32-byte key used above.
	out, err := runCommand(t, "derive", "FHNpKmJrUtusuvKPGomAygQqeiks98bdV6yD61Stb6vg",
		"--pipeline", "ss58", "--ss58-prefix", "42", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY")
}

func TestDeriveCommandRejectsBadKey(t *testing.T) {
	_, err := runCommand(t, "derive", "nothex", "--pipeline", "evm")
	require.Error(t, err)
	assert.ErrorIs(t, err, wcerrors.ErrInvalidKey)
}

func TestDeriveCommandNeedsPipelineOrChain(t *testing.T) {
	_, err := runCommand(t, "derive", "0xdeadbeef")
	require.Error(t, err)
	assert.ErrorIs(t, err, wcerrors.ErrUnknownPipeline)
}

func TestChainsListCommand(t *testing.T) {
	out, err := runCommand(t, "chains", "list", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "ethereum")
	assert.Contains(t, out, "bitcoin")
	assert.Contains(t, out, "PIPELINE")
}

func TestChainsShowCommand(t *testing.T) {
	out, err := runCommand(t, "chains", "show", "bitcoin", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Bitcoin (bitcoin)")
	assert.Contains(t, out, "base58check")
	assert.Contains(t, out, "hrp bc")
}

func TestChainsValidateCommand(t *testing.T) {
	out, err := runCommand(t, "chains", "validate", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "no problems")
}

func TestConfigShowCommand(t *testing.T) {
	out, err := runCommand(t, "config", "show", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "registry: (embedded)")
}

func TestConfigInitCommand(t *testing.T) {
	out, err := runCommand(t, "config", "init", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "config.yaml")
}
