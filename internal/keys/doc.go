// Package keys turns a password into the AES key and IV used by the cryfa v1 format.
//
// The derivation is deterministic and has two stages:
//   - a legacy stage folds the password bytes into a 32-bit seed using the
//     glibc rand() generator, reseeded from fixed password positions
//   - a modern stage expands that seed into bytes with MT19937
//
// Both stages must reproduce the C runtime byte for byte, otherwise files written
// by earlier releases can no longer be decrypted.
package keys
