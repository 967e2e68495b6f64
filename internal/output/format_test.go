package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whichchain/whichchain/internal/chain"
	"github.com/whichchain/whichchain/pkg/identify"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{" text ", FormatText},
		{"auto", FormatAuto},
		{"", FormatAuto},
		{"yaml", FormatAuto},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseFormat(tc.input), tc.input)
	}
}

func TestResolveFormatExplicitWins(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, FormatJSON, ResolveFormat("json", &buf))
	assert.Equal(t, FormatText, ResolveFormat("text", &buf))
}

func TestResolveFormatNonTTY(t *testing.T) {
	// A plain buffer is not a terminal, so auto resolves to JSON.
	var buf bytes.Buffer
	assert.Equal(t, FormatJSON, ResolveFormat("auto", &buf))
	assert.Equal(t, FormatJSON, ResolveFormat("", &buf))
}

func TestFormatterPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON, &buf)
	require.True(t, f.IsJSON())

	require.NoError(t, f.Print(map[string]string{"chain": "ethereum"}))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "ethereum", decoded["chain"])
}

func TestFormatterPrintText(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatText, &buf)

	require.NoError(t, f.Print("hello"))
	assert.Equal(t, "hello\n", buf.String())
}

func TestFormatCandidatesText(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatText, &buf)

	candidates := []identify.Candidate{
		{
			InputType:  identify.InputTypeAddress,
			Chain:      "ethereum",
			ChainName:  "Ethereum",
			Encoding:   chain.EncodingHex,
			Normalized: "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
			Confidence: 0.85,
			Reasoning:  "hex address, valid checksum, exact length",
		},
		{
			InputType:  identify.InputTypeAddress,
			Chain:      "polygon",
			ChainName:  "Polygon",
			Encoding:   chain.EncodingHex,
			Normalized: "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
			Confidence: 0.85,
			Reasoning:  "hex address, valid checksum, exact length",
		},
	}

	require.NoError(t, FormatCandidates(f, "0xd8da6bf26964af9d7eed9e03e53415d37aa96045", candidates))

	out := buf.String()
	assert.Contains(t, out, "CHAIN")
	assert.Contains(t, out, "ethereum")
	assert.Contains(t, out, "0.85")
	assert.Contains(t, out, "valid checksum")
}

func TestFormatCandidatesJSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON, &buf)

	candidates := []identify.Candidate{
		{
			InputType:  identify.InputTypePublicKey,
			Chain:      "bitcoin",
			ChainName:  "Bitcoin",
			Encoding:   chain.EncodingBase58Check,
			Normalized: "1KGYN13Exrsyx7CnsEGMVbD8oUwHta2ZsG",
			Confidence: 0.8,
			Reasoning:  "secp256k1 public key, derived base58check address revalidates",
		},
	}

	require.NoError(t, FormatCandidates(f, "0x0479be66...", candidates))

	var decoded candidateList
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Candidates, 1)
	assert.Equal(t, "bitcoin", decoded.Candidates[0].Chain)
	assert.Equal(t, identify.InputTypePublicKey, decoded.Candidates[0].InputType)
	assert.InDelta(t, 0.8, decoded.Candidates[0].Confidence, 1e-9)
}

func TestTableRender(t *testing.T) {
	table := NewTable("ID", "NAME")
	table.AddRow("bitcoin", "Bitcoin")
	table.AddRow("bsc", "BNB Smart Chain")

	out := table.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "bitcoin")
	assert.Contains(t, out, "BNB Smart Chain")

	table.SetNoHeader(true)
	assert.NotContains(t, table.String(), "ID")
}
