package derive

import (
	"github.com/whichchain/whichchain/internal/chain"
	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

type pipelineFunc func(key []byte, params map[string]string) (string, error)

//nolint:gochecknoglobals // immutable dispatch table
var pipelines = map[string]pipelineFunc{
	chain.PipelineEVM:           evmPipeline,
	chain.PipelineBitcoinP2PKH:  bitcoinP2PKHPipeline,
	chain.PipelineBitcoinBech32: bitcoinBech32Pipeline,
	chain.PipelineCosmos:        cosmosPipeline,
	chain.PipelineSolana:        solanaPipeline,
	chain.PipelineSS58:          ss58Pipeline,
	chain.PipelineCardano:       cardanoPipeline,
	chain.PipelineTron:          tronPipeline,
}

// Execute runs the pipeline identified by pipelineID over the key bytes.
// Compressed secp256k1 keys are decompressed before the pipeline runs, so
// every pipeline sees either a 32-byte curve25519-family key or a 65-byte
// uncompressed secp256k1 key.
func Execute(pipelineID string, key []byte, params map[string]string) (string, error) {
	fn, ok := pipelines[pipelineID]
	if !ok {
		return "", wcerrors.WithDetails(wcerrors.ErrUnknownPipeline, map[string]string{
			"pipeline": pipelineID,
		})
	}

	if len(key) == 33 && (key[0] == 0x02 || key[0] == 0x03) {
		expanded, err := Decompress(key)
		if err != nil {
			return "", err
		}
		key = expanded
	}

	return fn(key, params)
}
