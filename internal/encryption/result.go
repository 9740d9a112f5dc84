package encryption

// Result is the outcome of encrypting or decrypting one file in write mode.
type Result struct {
	// Input is the FASTA file or envelope that was read.
	Input string
	// Output is the envelope or FASTA file that was written.
	Output string
	// OutputSize is the number of bytes written to Output.
	OutputSize int64
	// Error is set when the file failed. Output is then not written.
	Error error
}
