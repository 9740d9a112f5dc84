package encryption

import (
	"crypto/aes"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/idelchi/cryfa/internal/fasta"
	"github.com/idelchi/cryfa/internal/keys"
)

// Processor runs the encrypt and decrypt pipelines for one key.
// It holds no mutable state and is safe for concurrent use.
type Processor struct {
	// material is the derived key and IV
	material keys.Material

	// log receives size diagnostics; a no-op logger when not verbose
	log *zap.Logger
}

// NewProcessor creates a Processor. A nil logger disables diagnostics.
func NewProcessor(material keys.Material, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}

	return &Processor{material: material, log: log}
}

// Process dispatches to Encrypt or Decrypt.
func (p *Processor) Process(mode Mode, reader io.Reader, writer io.Writer) error {
	if mode == ModeDecrypt {
		return p.Decrypt(reader, writer)
	}

	return p.Encrypt(reader, writer)
}

// Encrypt reads all FASTA text from reader, normalizes it, encrypts it,
// and writes the envelope to writer.
func (p *Processor) Encrypt(reader io.Reader, writer io.Writer) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	normalized, stats := fasta.Normalize(data)

	ciphertext, err := Encrypt(normalized, p.material)
	if err != nil {
		return err
	}

	p.log.Debug("encrypted",
		zap.Int("records", stats.Kept),
		zap.Int("dropped", stats.Dropped),
		zap.Int("sym size", len(normalized)),
		zap.Int("cipher size", len(ciphertext)),
		zap.Int("block size", aes.BlockSize),
	)

	if _, err := writer.Write(Wrap(ciphertext)); err != nil {
		return fmt.Errorf("writing envelope: %w", err)
	}

	return nil
}

// Decrypt reads an envelope from reader and writes the recovered text to writer.
// Nothing is written when the envelope is invalid.
func (p *Processor) Decrypt(reader io.Reader, writer io.Writer) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	ciphertext, err := Unwrap(data)
	if err != nil {
		return err
	}

	p.log.Debug("envelope",
		zap.Int("cipher size", len(ciphertext)),
		zap.Int("block size", aes.BlockSize),
	)

	decrypted, err := Decrypt(ciphertext, p.material)
	if err != nil {
		return err
	}

	if _, err := writer.Write(Plaintext(decrypted)); err != nil {
		return fmt.Errorf("writing plaintext: %w", err)
	}

	return nil
}
