package sftpserver

import (
	"crypto"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"encoding/pem"
	"fmt"

	"golang.org/x/crypto/ssh"
)

// KeyAlgorithm selects the kind of key GenerateKey creates.
type KeyAlgorithm int

const (
	// RSA keys default to 2048 bits.
	RSA KeyAlgorithm = iota
	// ED25519 keys have a fixed size.
	ED25519
)

const defaultRSABits = 2048

var (
	ErrKeyGen         = fmt.Errorf("failed to generate a keypair")
	ErrPrivKeyConv    = fmt.Errorf("failed to convert the private key to an 'ssh.Signer'")
	ErrPrivKeyMarshal = fmt.Errorf("failed to marshal the private key to OpenSSH format")
)

func (a KeyAlgorithm) String() string {
	switch a {
	case RSA:
		return "RSA"
	case ED25519:
		return "ED25519"
	default:
		return fmt.Sprintf("KeyAlgorithm(%d)", int(a))
	}
}

// KeyPair is a generated private key in the forms an SSH client and server need.
type KeyPair struct {
	// Signer signs for the key, as a host key or a client identity.
	Signer ssh.Signer

	// PEM is the OpenSSH PEM encoding of the private key, encrypted when a passphrase was given. It is what
	// ConnectionModel.PrivateKey expects.
	PEM []byte
}

// PublicKey returns the public half of the pair.
func (k KeyPair) PublicKey() ssh.PublicKey {
	return k.Signer.PublicKey()
}

// AuthorizedKey returns the public key in authorized_keys format, without the trailing newline.
func (k KeyPair) AuthorizedKey() string {
	b := ssh.MarshalAuthorizedKey(k.PublicKey())
	return string(b[:len(b)-1])
}

// GenerateKey creates a KeyPair. bits only applies to RSA, zero meaning 2048. A non-empty passphrase encrypts PEM.
func GenerateKey(alg KeyAlgorithm, bits int, passphrase string) (KeyPair, error) {
	var priv crypto.Signer
	switch alg {
	case RSA:
		if bits == 0 {
			bits = defaultRSABits
		}
		key, err := rsa.GenerateKey(rand.Reader, bits)
		if err != nil {
			return KeyPair{}, fmt.Errorf("%w: %w", ErrKeyGen, err)
		}
		priv = key
	case ED25519:
		_, key, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return KeyPair{}, fmt.Errorf("%w: %w", ErrKeyGen, err)
		}
		priv = key
	default:
		return KeyPair{}, fmt.Errorf("%w: unsupported algorithm %s", ErrKeyGen, alg)
	}

	signer, err := ssh.NewSignerFromKey(priv)
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: %w", ErrPrivKeyConv, err)
	}

	var block *pem.Block
	if passphrase != "" {
		block, err = ssh.MarshalPrivateKeyWithPassphrase(priv, "", []byte(passphrase))
	} else {
		block, err = ssh.MarshalPrivateKey(priv, "")
	}
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: %w", ErrPrivKeyMarshal, err)
	}

	return KeyPair{
		Signer: signer,
		PEM:    pem.EncodeToMemory(block),
	}, nil
}
