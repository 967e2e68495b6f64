package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

func TestFormatErrorNil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatError(&buf, nil, FormatText))
	assert.Empty(t, buf.String())
}

func TestFormatErrorTextStructured(t *testing.T) {
	var buf bytes.Buffer
	err := wcerrors.WithSuggestion(
		wcerrors.InvalidInput("xyz123abc"),
		"check the string for typos or truncation",
	)

	require.NoError(t, FormatError(&buf, err, FormatText))

	out := buf.String()
	assert.Contains(t, out, "Error: unable to identify input")
	assert.Contains(t, out, "input: xyz123abc")
	assert.Contains(t, out, "Suggestion: check the string")
}

func TestFormatErrorTextPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatError(&buf, errors.New("boom"), FormatText))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestFormatErrorJSONStructured(t *testing.T) {
	var buf bytes.Buffer
	err := wcerrors.InvalidInput("zz!!")

	require.NoError(t, FormatError(&buf, err, FormatJSON))

	var decoded ErrorOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "INVALID_INPUT", decoded.Error.Code)
	assert.Equal(t, "zz!!", decoded.Error.Details["input"])
	assert.Equal(t, wcerrors.ExitInput, decoded.Error.ExitCode)
}

func TestFormatErrorJSONPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatError(&buf, errors.New("boom"), FormatJSON))

	var decoded ErrorOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "GENERAL_ERROR", decoded.Error.Code)
	assert.Equal(t, "boom", decoded.Error.Message)
	assert.Equal(t, wcerrors.ExitGeneral, decoded.Error.ExitCode)
}
