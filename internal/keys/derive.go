package keys

import "fmt"

// SeedFolder reduces a password to the seed of the byte-producing stage.
type SeedFolder interface {
	Fold(password string) uint32
}

// ByteSampler expands a seed into n bytes.
type ByteSampler interface {
	Sample(seed uint32, n int) []byte
}

// Stream derives one fixed-length byte sequence from a password.
type Stream struct {
	Folder  SeedFolder
	Sampler ByteSampler
}

// Bytes runs both stages for the given password.
func (s Stream) Bytes(password string, n int) []byte {
	return s.Sampler.Sample(s.Folder.Fold(password), n)
}

// Deriver produces key material from a password. Key and IV come from
// independent streams so that neither can be computed from the other.
type Deriver struct {
	Key Stream
	IV  Stream
}

// V1 is the derivation used by the "#cryfa v1.1" format.
//
//nolint:gochecknoglobals // fixed format definition
var V1 = Deriver{
	Key: Stream{
		Folder:  LegacyFolder{First: 0, Second: 2, Multiplier: 24593, Offset: 49157},
		Sampler: TwisterSampler{},
	},
	IV: Stream{
		Folder:  LegacyFolder{First: 2, Second: 5, Multiplier: 7919, Offset: 75653},
		Sampler: TwisterSampler{},
	},
}

// Derive validates the password and derives key material with V1.
func Derive(password string) (Material, error) {
	return V1.Derive(password)
}

// Derive validates the password and derives key material.
func (d Deriver) Derive(password string) (Material, error) {
	if err := Validate(password); err != nil {
		return Material{}, err
	}

	var m Material

	key := d.Key.Bytes(password, KeySize)
	if len(key) != KeySize {
		return Material{}, fmt.Errorf("key stream produced %d bytes, want %d", len(key), KeySize)
	}

	iv := d.IV.Bytes(password, IVSize)
	if len(iv) != IVSize {
		return Material{}, fmt.Errorf("IV stream produced %d bytes, want %d", len(iv), IVSize)
	}

	copy(m.Key[:], key)
	copy(m.IV[:], iv)

	return m, nil
}

// LegacyFolder seeds glibc rand() from two password positions, then accumulates
// two draws per password byte into a 64-bit sum.
type LegacyFolder struct {
	// First and Second are the password positions that form the reseed value.
	First, Second int
	Multiplier    int32
	Offset        int32
}

// Fold implements SeedFolder. The password must be long enough to contain
// both positions; Validate guarantees that for V1.
func (f LegacyFolder) Fold(password string) uint32 {
	a := int32(int8(password[f.First]))  //nolint:gosec // C char is signed
	b := int32(int8(password[f.Second])) //nolint:gosec // C char is signed

	rng := newLegacyRand(uint32(f.Multiplier*(a*b) + f.Offset)) //nolint:gosec // C int to unsigned

	var sum uint64

	for i := range len(password) {
		c := uint64(int64(int8(password[i]))) //nolint:gosec // sign extension as in C
		mul := uint64(rng.Int31())
		add := uint64(rng.Int31())
		sum += c*mul + add
	}

	return uint32(sum % 4294967295) //nolint:gosec // < 2^32
}

// TwisterSampler draws bytes from MT19937 through a [0, 255] uniform
// distribution, each reduced modulo 255.
type TwisterSampler struct{}

// Sample implements ByteSampler.
func (TwisterSampler) Sample(seed uint32, n int) []byte {
	mt := newMT19937(seed)
	out := make([]byte, n)

	for i := range out {
		out[i] = byte(uniformByte(mt) % 255) //nolint:gosec // < 255
	}

	return out
}
