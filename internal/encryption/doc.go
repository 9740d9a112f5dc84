// Package encryption implements the cryfa v1 file format: AES-128 in CBC mode
// over normalized FASTA text, wrapped in a "#cryfa vX.Y" watermark envelope.
// The format carries no authentication tag; a wrong password decrypts to garbage.
package encryption
