package chain

// Config is the raw per-chain definition record consumed from the registry
// loader. Optional fields default at conversion time: version byte 0x00,
// SS58 prefix 0, and a per-pipeline HRP.
type Config struct {
	ID               string            `yaml:"id"`
	Name             string            `yaml:"name"`
	Curve            string            `yaml:"curve"`
	AddressPipeline  string            `yaml:"address_pipeline"`
	RequiresStakeKey bool              `yaml:"requires_stake_key,omitempty"`
	AddressParams    map[string]string `yaml:"address_params,omitempty"`
	PublicKeyFormats []KeyFormatConfig `yaml:"public_key_formats,omitempty"`
}

// KeyFormatConfig is the raw public-key format descriptor inside a chain
// definition.
type KeyFormatConfig struct {
	Encoding    string   `yaml:"encoding"`
	ExactLength int      `yaml:"exact_length,omitempty"`
	LengthRange []int    `yaml:"length_range,omitempty,flow"`
	Prefixes    []string `yaml:"prefixes,omitempty,flow"`
}

// CurveConfig is the raw curve definition record. Informational for the
// core; the validation tooling cross-checks chains against it.
type CurveConfig struct {
	ID                  string   `yaml:"id"`
	KeyLengths          []int    `yaml:"key_lengths,flow"`
	Compression         bool     `yaml:"compression,omitempty"`
	CompatiblePipelines []string `yaml:"compatible_pipelines,omitempty,flow"`
}

// Param returns an address parameter, or the fallback when absent.
func (c Config) Param(key, fallback string) string {
	if v, ok := c.AddressParams[key]; ok && v != "" {
		return v
	}
	return fallback
}
