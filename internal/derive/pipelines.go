package derive

import (
	"strconv"

	"github.com/whichchain/whichchain/internal/checksum"
	"github.com/whichchain/whichchain/internal/encoding"
	"github.com/whichchain/whichchain/internal/hashing"
	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

func keyLengthError(n int, expected string) error {
	return wcerrors.WithDetails(wcerrors.ErrInvalidKey, map[string]string{
		"length": strconv.Itoa(n),
		"reason": "expected " + expected,
	})
}

// evm: keccak256 of the 64-byte key, last 20 bytes, hex with 0x.
func evmPipeline(key []byte, _ map[string]string) (string, error) {
	key64, err := extract64(key)
	if err != nil {
		return "", err
	}
	digest := hashing.Keccak256(key64)
	return encoding.EncodeHex(digest[12:]), nil
}

// bitcoin_p2pkh: hash160 of the 64-byte key, version byte from params,
// Base58Check framing.
func bitcoinP2PKHPipeline(key []byte, params map[string]string) (string, error) {
	key64, err := extract64(key)
	if err != nil {
		return "", err
	}
	version, err := paramByte(params, "version", 0x00)
	if err != nil {
		return "", err
	}
	payload := hashing.Hash160(key64)
	return encodeBase58Check(version, payload), nil
}

// bitcoin_bech32: hash160 of the 64-byte key, 5-bit regroup, Bech32.
func bitcoinBech32Pipeline(key []byte, params map[string]string) (string, error) {
	key64, err := extract64(key)
	if err != nil {
		return "", err
	}
	payload := hashing.Hash160(key64)
	grouped, err := encoding.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	return encoding.EncodeBech32(param(params, "hrp", "bc"), grouped)
}

// cosmos: sha256 of the 32-byte key, first 20 bytes, Bech32.
func cosmosPipeline(key []byte, params map[string]string) (string, error) {
	if len(key) != 32 {
		return "", keyLengthError(len(key), "a 32-byte ed25519 key")
	}
	payload := hashing.SHA256(key)[:20]
	grouped, err := encoding.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	return encoding.EncodeBech32(param(params, "hrp", "cosmos"), grouped)
}

// solana: the raw 32-byte key, Base58.
func solanaPipeline(key []byte, _ map[string]string) (string, error) {
	if len(key) != 32 {
		return "", keyLengthError(len(key), "a 32-byte ed25519 key")
	}
	return encoding.EncodeBase58(key), nil
}

// ss58: blake2b-256 of a secp256k1 key, or the raw 32-byte key, under the
// network prefix from params.
func ss58Pipeline(key []byte, params map[string]string) (string, error) {
	prefix, err := paramUint16(params, "ss58_prefix", 0)
	if err != nil {
		return "", err
	}
	var accountID []byte
	switch len(key) {
	case 32:
		accountID = key
	case 64, 65:
		key64, err := extract64(key)
		if err != nil {
			return "", err
		}
		accountID = hashing.Blake2b256(key64)
	default:
		return "", keyLengthError(len(key), "a 32-byte curve25519-family key or a secp256k1 key")
	}
	return encoding.EncodeSS58(prefix, accountID)
}

// cardano: sha3-256 of the 32-byte key, first 28 bytes, header byte from
// params, Bech32.
func cardanoPipeline(key []byte, params map[string]string) (string, error) {
	if len(key) != 32 {
		return "", keyLengthError(len(key), "a 32-byte ed25519 key")
	}
	header, err := paramByte(params, "header", 0x00)
	if err != nil {
		return "", err
	}
	payload := hashing.SHA3256(key)[:28]
	framed := append([]byte{header}, payload...)
	grouped, err := encoding.ConvertBits(framed, 8, 5, true)
	if err != nil {
		return "", err
	}
	return encoding.EncodeBech32(param(params, "hrp", "addr"), grouped)
}

// tron: keccak256 of the 64-byte key, last 20 bytes, 0x41 version byte,
// Base58Check framing.
func tronPipeline(key []byte, _ map[string]string) (string, error) {
	key64, err := extract64(key)
	if err != nil {
		return "", err
	}
	digest := hashing.Keccak256(key64)
	return encodeBase58Check(0x41, digest[12:]), nil
}

func encodeBase58Check(version byte, payload []byte) string {
	frame := make([]byte, 0, 1+len(payload)+4)
	frame = append(frame, version)
	frame = append(frame, payload...)
	frame = append(frame, checksum.Base58Check(version, payload)...)
	return encoding.EncodeBase58(frame)
}

func param(params map[string]string, key, fallback string) string {
	if v, ok := params[key]; ok && v != "" {
		return v
	}
	return fallback
}

func paramByte(params map[string]string, key string, fallback byte) (byte, error) {
	raw, ok := params[key]
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseUint(raw, 0, 8)
	if err != nil {
		return 0, wcerrors.WithDetails(wcerrors.ErrInvalidKey, map[string]string{
			"param": key,
			"value": raw,
		})
	}
	return byte(v), nil
}

func paramUint16(params map[string]string, key string, fallback uint16) (uint16, error) {
	raw, ok := params[key]
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseUint(raw, 0, 16)
	if err != nil {
		return 0, wcerrors.WithDetails(wcerrors.ErrInvalidKey, map[string]string{
			"param": key,
			"value": raw,
		})
	}
	return uint16(v), nil
}
