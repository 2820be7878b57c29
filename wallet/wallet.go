// Package wallet derives a one-invocation signing wallet from a secret
// recovery phrase.
package wallet

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/mr-tron/base58"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/ripemd160"

	"github.com/oruchain/sendtx/errors"
)

// BIP44 account path for the signing key: m / 44' / 118' / 0' / 0 / 0
const (
	bip44Purpose  = 44
	bip44CoinType = 118
)

// Wallet is a signing wallet derived from a recovery phrase and an
// address prefix. It is held in memory for one invocation only.
type Wallet struct {
	addr string
	priv *secp256k1.PrivateKey
}

// Address returns the bech32 address derived for the configured prefix.
func (w *Wallet) Address() string { return w.addr }

// Derive turns a recovery phrase into a signing wallet whose address
// carries the given human-readable prefix.
func Derive(mnemonic, prefix string) (*Wallet, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.NewError(errors.KindCredential, errors.ErrMsgBadMnemonic)
	}
	seed := bip39.NewSeed(mnemonic, "")

	// Params only select HD version bytes, the address format below is
	// independent of them.
	masterKey, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, errors.Wrap(errors.KindCredential, "master key derivation failed", err)
	}

	path := []uint32{
		bip44Purpose + hdkeychain.HardenedKeyStart,
		bip44CoinType + hdkeychain.HardenedKeyStart,
		0 + hdkeychain.HardenedKeyStart,
		0,
		0,
	}
	childKey := masterKey
	for _, index := range path {
		childKey, err = childKey.Derive(index)
		if err != nil {
			return nil, errors.Wrap(errors.KindCredential, "child key derivation failed", err)
		}
	}
	privKey, err := childKey.ECPrivKey()
	if err != nil {
		return nil, errors.Wrap(errors.KindCredential, "private key extraction failed", err)
	}

	address, err := encodeAddress(privKey.PubKey().SerializeCompressed(), prefix)
	if err != nil {
		return nil, errors.Wrap(errors.KindCredential, "address encoding failed", err)
	}
	return &Wallet{addr: address, priv: privKey}, nil
}

// encodeAddress renders a compressed public key as
// bech32(prefix, ripemd160(sha256(pubkey))).
func encodeAddress(pubKey []byte, prefix string) (string, error) {
	sha := sha256.Sum256(pubKey)
	r := ripemd160.New()
	r.Write(sha[:])
	converted, err := bech32.ConvertBits(r.Sum(nil), 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(prefix, converted)
}

// PubKey returns the compressed public key, base58 encoded for the wire.
func (w *Wallet) PubKey() string {
	return base58.Encode(w.priv.PubKey().SerializeCompressed())
}

// Sign signs the canonical message bytes and returns the signature
// base58 encoded. Signing is deterministic, repeated calls over the
// same bytes produce the same signature.
func (w *Wallet) Sign(msg []byte) (string, error) {
	digest := sha256.Sum256(msg)
	sig := secpecdsa.Sign(w.priv, digest[:])
	return base58.Encode(sig.Serialize()), nil
}

// Verify reports whether sig is a valid signature over msg by the
// holder of pubKey, both encoded as produced by Sign and PubKey.
func Verify(msg []byte, sig, pubKey string) bool {
	pubBytes, err := base58.Decode(pubKey)
	if err != nil {
		return false
	}
	pub, err := secp256k1.ParsePubKey(pubBytes)
	if err != nil {
		return false
	}
	sigBytes, err := base58.Decode(sig)
	if err != nil {
		return false
	}
	parsed, err := secpecdsa.ParseDERSignature(sigBytes)
	if err != nil {
		return false
	}
	digest := sha256.Sum256(msg)
	return parsed.Verify(digest[:], pub)
}
