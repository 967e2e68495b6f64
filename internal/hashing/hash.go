// Package hashing provides the hash primitives used by address validation
// and derivation. All functions are pure and carry no chain-specific
// knowledge.
package hashing

import (
	"crypto/sha256"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/blake2b"

	// RIPEMD160 is deprecated but REQUIRED by the Bitcoin protocol.
	// P2PKH addresses use Hash160 = RIPEMD160(SHA256(pubkey)).
	//nolint:gosec,staticcheck // G507,SA1019: RIPEMD160 required by Bitcoin protocol
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// SHA256 computes the SHA-256 hash of data.
func SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// DoubleSHA256 computes SHA256(SHA256(data)) as used by Base58Check.
func DoubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Keccak256 computes the legacy Keccak-256 hash used by Ethereum and Tron.
func Keccak256(data ...[]byte) []byte {
	return ethcrypto.Keccak256(data...)
}

// Hash160 computes RIPEMD160(SHA256(data)), the Bitcoin address hash.
//
//nolint:gosec // G406: RIPEMD160 usage required by Bitcoin spec
func Hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	ripemd := ripemd160.New()
	ripemd.Write(sha[:])
	return ripemd.Sum(nil)
}

// Blake2b256 computes the first 32 bytes of the Blake2b-512 hash. Substrate
// derives secp256k1 account IDs this way.
func Blake2b256(data []byte) []byte {
	sum := blake2b.Sum512(data)
	return sum[:32]
}

// Blake2b512 computes the Blake2b-512 hash, used for SS58 checksums.
func Blake2b512(data []byte) []byte {
	sum := blake2b.Sum512(data)
	return sum[:]
}

// SHA3256 computes the standard (FIPS-202) SHA3-256 hash, used by the
// Cardano derivation pipeline.
func SHA3256(data []byte) []byte {
	sum := sha3.Sum256(data)
	return sum[:]
}
