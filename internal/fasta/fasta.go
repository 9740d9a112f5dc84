// Package fasta parses FASTA text into records and renders the canonical
// plaintext that cryfa encrypts.
//
// Parsing never fails. Records without a header, and records with a space
// in any sequence line, are dropped in full.
package fasta

import (
	"bytes"
	"strings"
)

// Record is a single FASTA entry.
type Record struct {
	// Header is the text after '>' on the identifier line.
	Header string
	// Lines are the sequence lines in input order, without line terminators.
	Lines []string
}

// Stats counts records seen while parsing.
type Stats struct {
	// Kept is the number of records in the output.
	Kept int
	// Dropped is the number of records discarded as malformed.
	Dropped int
}

// parser holds the two-state machine: a non-empty header means a record is open.
type parser struct {
	records []Record
	current Record
	stats   Stats
}

// Parse splits data into lines and returns the valid records in order.
// A trailing line without a newline is processed like any other line.
func Parse(data []byte) ([]Record, Stats) {
	p := &parser{}

	for len(data) > 0 {
		var line []byte

		if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
			line, data = data[:idx], data[idx+1:]
		} else {
			line, data = data, nil
		}

		p.line(string(line))
	}

	p.flush()

	return p.records, p.stats
}

func (p *parser) line(line string) {
	if line == "" || line[0] == '>' {
		p.flush()

		if line != "" {
			p.current.Header = line[1:]
			if p.current.Header == "" {
				p.stats.Dropped++
			}
		}

		return
	}

	if p.current.Header == "" {
		return
	}

	if strings.ContainsRune(line, ' ') {
		p.current = Record{}
		p.stats.Dropped++

		return
	}

	p.current.Lines = append(p.current.Lines, line)
}

func (p *parser) flush() {
	if p.current.Header != "" {
		p.records = append(p.records, p.current)
		p.stats.Kept++
	}

	p.current = Record{}
}

// Render writes records in canonical form: ">" header "\n", then each
// sequence line followed by "\n".
func Render(records []Record) []byte {
	size := 0
	for _, r := range records {
		size += len(r.Header) + 2
		for _, l := range r.Lines {
			size += len(l) + 1
		}
	}

	out := make([]byte, 0, size)

	for _, r := range records {
		out = append(out, '>')
		out = append(out, r.Header...)
		out = append(out, '\n')

		for _, l := range r.Lines {
			out = append(out, l...)
			out = append(out, '\n')
		}
	}

	return out
}

// Normalize parses data and renders the surviving records.
func Normalize(data []byte) ([]byte, Stats) {
	records, stats := Parse(data)

	return Render(records), stats
}
