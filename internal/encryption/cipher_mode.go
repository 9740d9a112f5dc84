package encryption

// Mode selects the pipeline a Processor runs.
type Mode byte

const (
	// ModeEncrypt normalizes FASTA input and writes an envelope.
	ModeEncrypt Mode = iota
	// ModeDecrypt reads an envelope and writes the recovered FASTA text.
	ModeDecrypt
)

func (m Mode) String() string {
	if m == ModeDecrypt {
		return "decrypt"
	}

	return "encrypt"
}
