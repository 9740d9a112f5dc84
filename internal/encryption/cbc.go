package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/idelchi/cryfa/internal/keys"
)

// terminator is appended to the plaintext before encryption.
const terminator = 0x00

// Encrypt encrypts plaintext with AES-128-CBC. A terminator byte is appended
// before PKCS#7 padding, so the ciphertext covers len(plaintext)+1 bytes.
func Encrypt(plaintext []byte, material keys.Material) ([]byte, error) {
	block, err := aes.NewCipher(material.Key[:])
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	data := make([]byte, 0, len(plaintext)+1+aes.BlockSize)
	data = append(data, plaintext...)
	data = append(data, terminator)

	padded := pkcs7Pad(data, aes.BlockSize)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, material.IV[:]).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

// Decrypt reverses Encrypt and returns the plaintext including the terminator.
//
// Well-formed padding is removed. Malformed padding is left in place instead of
// failing: without an authentication tag a wrong key is not detectable, and it
// must produce output rather than an error.
func Decrypt(ciphertext []byte, material keys.Material) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidBlockSize, len(ciphertext))
	}

	block, err := aes.NewCipher(material.Key[:])
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, material.IV[:]).CryptBlocks(plaintext, ciphertext)

	if unpadded, err := pkcs7Unpad(plaintext); err == nil {
		return unpadded, nil
	}

	return plaintext, nil
}

// Plaintext converts decrypted bytes into the emitted text. The last two bytes
// (terminator and the final newline of the last record) are dropped and a
// single newline is written in their place. Inputs shorter than two bytes
// carry no records and yield nothing.
func Plaintext(decrypted []byte) []byte {
	const trailing = 2

	if len(decrypted) < trailing {
		return nil
	}

	out := make([]byte, 0, len(decrypted)-1)
	out = append(out, decrypted[:len(decrypted)-trailing]...)

	return append(out, '\n')
}
