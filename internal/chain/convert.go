package chain

import (
	"strconv"

	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

// Pipeline identifiers shared with the derivation dispatcher.
const (
	PipelineEVM           = "evm"
	PipelineBitcoinP2PKH  = "bitcoin_p2pkh"
	PipelineBitcoinBech32 = "bitcoin_bech32"
	PipelineCosmos        = "cosmos"
	PipelineSolana        = "solana"
	PipelineSS58          = "ss58"
	PipelineCardano       = "cardano"
	PipelineTron          = "tron"
)

// Default HRPs per pipeline, applied when the chain definition omits one.
const (
	DefaultBitcoinHRP = "bc"
	DefaultCosmosHRP  = "cosmos"
	DefaultCardanoHRP = "addr"
)

// Convert turns a raw chain definition into registry metadata. The address
// pipeline selects the format table; address parameters fill in version
// bytes, HRPs, and network prefixes with documented defaults.
func Convert(cfg Config) (Metadata, error) {
	network := NetworkMainnet
	if cfg.Param("network", "") == string(NetworkTestnet) {
		network = NetworkTestnet
	}

	formats, err := addressFormats(cfg, network)
	if err != nil {
		return Metadata{}, err
	}

	keyFormats, err := publicKeyFormats(cfg)
	if err != nil {
		return Metadata{}, err
	}

	return Metadata{
		ID:               cfg.ID,
		Name:             cfg.Name,
		AddressFormats:   formats,
		PublicKeyFormats: keyFormats,
	}, nil
}

//nolint:gocyclo,funlen // one arm per pipeline, each a flat format table
func addressFormats(cfg Config, network Network) ([]AddressFormat, error) {
	switch cfg.AddressPipeline {
	case PipelineEVM:
		return []AddressFormat{{
			Encoding:    EncodingHex,
			CharSet:     CharSetHex,
			ExactLength: 42,
			Prefixes:    []string{"0x"},
			Checksum:    ChecksumEIP55,
			Network:     network,
		}}, nil

	case PipelineBitcoinP2PKH:
		version, err := versionByte(cfg, "version", 0x00)
		if err != nil {
			return nil, err
		}
		formats := []AddressFormat{{
			Encoding:     EncodingBase58Check,
			CharSet:      CharSetBase58,
			MinLength:    26,
			MaxLength:    35,
			VersionBytes: []byte{version},
			Checksum:     ChecksumBase58Check,
			Network:      network,
		}}
		if _, ok := cfg.AddressParams["p2sh_version"]; ok {
			p2sh, verr := versionByte(cfg, "p2sh_version", 0x05)
			if verr != nil {
				return nil, verr
			}
			formats = append(formats, AddressFormat{
				Encoding:     EncodingBase58Check,
				CharSet:      CharSetBase58,
				MinLength:    26,
				MaxLength:    35,
				VersionBytes: []byte{p2sh},
				Checksum:     ChecksumBase58Check,
				Network:      network,
			})
		}
		if hrp, ok := cfg.AddressParams["hrp"]; ok && hrp != "" {
			formats = append(formats, bech32Format(hrp, network))
		}
		return formats, nil

	case PipelineBitcoinBech32:
		return []AddressFormat{
			bech32Format(cfg.Param("hrp", DefaultBitcoinHRP), network),
		}, nil

	case PipelineCosmos:
		return []AddressFormat{
			bech32Format(cfg.Param("hrp", DefaultCosmosHRP), network),
		}, nil

	case PipelineSolana:
		return []AddressFormat{{
			Encoding:  EncodingBase58,
			CharSet:   CharSetBase58,
			MinLength: 32,
			MaxLength: 44,
			Checksum:  ChecksumNone,
			Network:   network,
		}}, nil

	case PipelineSS58:
		prefix, err := ss58Prefix(cfg)
		if err != nil {
			return nil, err
		}
		return []AddressFormat{{
			Encoding:     EncodingSS58,
			CharSet:      CharSetBase58,
			MinLength:    35,
			MaxLength:    48,
			SS58Prefixes: []uint16{prefix},
			Checksum:     ChecksumSS58,
			Network:      network,
		}}, nil

	case PipelineCardano:
		return []AddressFormat{
			bech32Format(cfg.Param("hrp", DefaultCardanoHRP), network),
		}, nil

	case PipelineTron:
		return []AddressFormat{{
			Encoding:     EncodingBase58Check,
			CharSet:      CharSetBase58,
			ExactLength:  34,
			Prefixes:     []string{"T"},
			VersionBytes: []byte{0x41},
			Checksum:     ChecksumBase58Check,
			Network:      network,
		}}, nil

	default:
		return nil, wcerrors.WithDetails(wcerrors.ErrUnknownPipeline, map[string]string{
			"chain":    cfg.ID,
			"pipeline": cfg.AddressPipeline,
		})
	}
}

func bech32Format(hrp string, network Network) AddressFormat {
	return AddressFormat{
		Encoding:  EncodingBech32,
		CharSet:   CharSetBase32,
		MinLength: 14,
		MaxLength: 90,
		HRPs:      []string{hrp},
		Checksum:  ChecksumBech32,
		Network:   network,
	}
}

func versionByte(cfg Config, key string, fallback byte) (byte, error) {
	raw, ok := cfg.AddressParams[key]
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseUint(raw, 0, 8)
	if err != nil {
		return 0, wcerrors.WithDetails(wcerrors.ErrRegistryLoad, map[string]string{
			"chain": cfg.ID,
			"param": key,
			"value": raw,
		})
	}
	return byte(v), nil
}

func ss58Prefix(cfg Config) (uint16, error) {
	raw, ok := cfg.AddressParams["ss58_prefix"]
	if !ok || raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 0, 16)
	if err != nil || v > 16383 {
		return 0, wcerrors.WithDetails(wcerrors.ErrRegistryLoad, map[string]string{
			"chain": cfg.ID,
			"param": "ss58_prefix",
			"value": raw,
		})
	}
	return uint16(v), nil
}

func publicKeyFormats(cfg Config) ([]PublicKeyFormat, error) {
	keyType, err := curveKeyType(cfg)
	if err != nil {
		return nil, err
	}

	formats := make([]PublicKeyFormat, 0, len(cfg.PublicKeyFormats))
	for _, kf := range cfg.PublicKeyFormats {
		enc, cs, encErr := keyEncoding(cfg.ID, kf.Encoding)
		if encErr != nil {
			return nil, encErr
		}
		format := PublicKeyFormat{
			Encoding:    enc,
			CharSet:     cs,
			ExactLength: kf.ExactLength,
			Prefixes:    kf.Prefixes,
			KeyType:     keyType,
			Checksum:    ChecksumNone,
		}
		if len(kf.LengthRange) == 2 {
			format.MinLength = kf.LengthRange[0]
			format.MaxLength = kf.LengthRange[1]
		}
		formats = append(formats, format)
	}
	return formats, nil
}

func curveKeyType(cfg Config) (KeyType, error) {
	switch KeyType(cfg.Curve) {
	case KeySecp256k1, KeyEd25519, KeySr25519:
		return KeyType(cfg.Curve), nil
	default:
		return "", wcerrors.WithDetails(wcerrors.ErrRegistryLoad, map[string]string{
			"chain": cfg.ID,
			"curve": cfg.Curve,
		})
	}
}

func keyEncoding(chainID, raw string) (EncodingType, CharSet, error) {
	switch EncodingType(raw) {
	case EncodingHex:
		return EncodingHex, CharSetHex, nil
	case EncodingBase58:
		return EncodingBase58, CharSetBase58, nil
	case EncodingBase58Check:
		return EncodingBase58Check, CharSetBase58, nil
	case EncodingBech32:
		return EncodingBech32, CharSetBase32, nil
	case EncodingBech32m:
		return EncodingBech32m, CharSetBase32, nil
	case EncodingSS58:
		return EncodingSS58, CharSetBase58, nil
	default:
		return "", "", wcerrors.WithDetails(wcerrors.ErrRegistryLoad, map[string]string{
			"chain":    chainID,
			"encoding": raw,
		})
	}
}
