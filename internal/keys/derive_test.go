package keys_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/idelchi/cryfa/internal/keys"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "empty", password: "", wantErr: true},
		{name: "seven", password: "1234567", wantErr: true},
		{name: "eight", password: "12345678", wantErr: false},
		{name: "long", password: "correcthorsebatterystaple", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := keys.Validate(tt.password)
			if tt.wantErr && !errors.Is(err, keys.ErrPasswordTooShort) {
				t.Fatalf("Validate(%q) = %v, want ErrPasswordTooShort", tt.password, err)
			}

			if !tt.wantErr && err != nil {
				t.Fatalf("Validate(%q) unexpected error: %v", tt.password, err)
			}
		})
	}
}

func TestDeriveRejectsShortPassword(t *testing.T) {
	t.Parallel()

	if _, err := keys.Derive("short"); !errors.Is(err, keys.ErrPasswordTooShort) {
		t.Fatalf("Derive(short) = %v, want ErrPasswordTooShort", err)
	}
}

func TestDeriveDeterministic(t *testing.T) {
	t.Parallel()

	for _, password := range []string{"correcthorse", "12345678", "ÄÖÜ-non-ascii-pw", strings.Repeat("x", 1024)} {
		first, err := keys.Derive(password)
		if err != nil {
			t.Fatalf("Derive(%q): %v", password, err)
		}

		second, err := keys.Derive(password)
		if err != nil {
			t.Fatalf("Derive(%q): %v", password, err)
		}

		if first != second {
			t.Errorf("Derive(%q) not deterministic: %v vs %v", password, first, second)
		}
	}
}

// Material produced by cryfa v1.1 builds. Every existing envelope depends on these bytes.
func TestDeriveKnownAnswers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		password string
		key      [keys.KeySize]byte
		iv       [keys.IVSize]byte
	}{
		{
			password: "correcthorse",
			key:      [keys.KeySize]byte{112, 220, 149, 242, 104, 207, 54, 224, 196, 241, 169, 126, 195, 123, 22, 165},
			iv:       [keys.IVSize]byte{140, 165, 224, 113, 231, 202, 240, 32, 56, 84, 199, 175, 136, 31, 70, 163},
		},
		{
			password: "12345678",
			key:      [keys.KeySize]byte{24, 206, 116, 4, 145, 213, 151, 59, 56, 72, 191, 143, 132, 167, 64, 47},
			iv:       [keys.IVSize]byte{250, 74, 16, 156, 155, 180, 232, 206, 28, 88, 135, 110, 41, 197, 23, 218},
		},
		{
			// Bytes >= 0x80 fold in as negative values.
			password: "ÄÖÜ-non-ascii-pw",
			key:      [keys.KeySize]byte{120, 144, 131, 5, 23, 89, 172, 9, 68, 4, 240, 111, 205, 215, 54, 179},
			iv:       [keys.IVSize]byte{180, 63, 159, 88, 146, 183, 70, 220, 234, 111, 74, 136, 192, 84, 96, 175},
		},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			t.Parallel()

			m, err := keys.Derive(tt.password)
			if err != nil {
				t.Fatalf("Derive(%q): %v", tt.password, err)
			}

			if m.Key != tt.key {
				t.Errorf("Derive(%q).Key = %v, want %v", tt.password, m.Key, tt.key)
			}

			if m.IV != tt.iv {
				t.Errorf("Derive(%q).IV = %v, want %v", tt.password, m.IV, tt.iv)
			}
		})
	}
}

func TestDeriveKeyAndIVDiffer(t *testing.T) {
	t.Parallel()

	m, err := keys.Derive("correcthorse")
	if err != nil {
		t.Fatal(err)
	}

	if m.Key == m.IV {
		t.Error("key and IV are identical")
	}

	for i, b := range append(m.Key[:], m.IV[:]...) {
		if b == 255 {
			t.Errorf("byte %d is 255, modulo-255 reduction missing", i)
		}
	}
}

func TestDeriveDifferentPasswords(t *testing.T) {
	t.Parallel()

	a, err := keys.Derive("correcthorse")
	if err != nil {
		t.Fatal(err)
	}

	b, err := keys.Derive("correcthorsf")
	if err != nil {
		t.Fatal(err)
	}

	if a == b {
		t.Error("different passwords produced identical key material")
	}
}

type constFolder uint32

func (c constFolder) Fold(string) uint32 { return uint32(c) }

type fillSampler byte

func (f fillSampler) Sample(_ uint32, n int) []byte { return bytes.Repeat([]byte{byte(f)}, n) }

func TestDeriverStrategies(t *testing.T) {
	t.Parallel()

	d := keys.Deriver{
		Key: keys.Stream{Folder: constFolder(1), Sampler: fillSampler(0xAA)},
		IV:  keys.Stream{Folder: constFolder(2), Sampler: fillSampler(0x55)},
	}

	m, err := d.Derive("12345678")
	if err != nil {
		t.Fatal(err)
	}

	if m.Key[0] != 0xAA || m.Key[15] != 0xAA || m.IV[0] != 0x55 || m.IV[15] != 0x55 {
		t.Errorf("unexpected material %v", m)
	}
}

func TestMaterialDump(t *testing.T) {
	t.Parallel()

	var m keys.Material

	m.Key[0] = 7
	m.IV[15] = 254

	var buf bytes.Buffer
	if err := m.Dump(&buf); err != nil {
		t.Fatal(err)
	}

	want := "IV : [0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 254 ]\n" +
		"KEY: [7 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 ]\n"

	if buf.String() != want {
		t.Errorf("Dump() =\n%q\nwant\n%q", buf.String(), want)
	}
}
