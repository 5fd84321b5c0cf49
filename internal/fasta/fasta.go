// Package fasta reads aligned sequence pairs from FASTA files. The first
// two records of a file become the pair; extra records are ignored.
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"alnview/internal/seq"
)

// Record is one FASTA entry.
type Record struct {
	ID  string
	Seq string
}

// Read parses FASTA records from r. Sequence lines are concatenated with
// line breaks removed; case is preserved for the caller to normalize.
func Read(r io.Reader) ([]Record, error) {
	var (
		records []Record
		id      []byte
		body    []byte
		started bool
	)
	flush := func() {
		if started {
			records = append(records, Record{ID: string(id), Seq: string(body)})
			body = nil
		}
	}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		line = bytes.TrimRight(line, "\r\n")
		if len(line) > 0 && line[0] == '>' {
			flush()
			started = true
			fields := bytes.Fields(line[1:])
			if len(fields) > 0 {
				id = fields[0] // up to first space
			} else {
				id = nil
			}
		} else if len(line) > 0 {
			if !started {
				return nil, fmt.Errorf("sequence data before first FASTA header")
			}
			body = append(body, line...)
		}
		if err == io.EOF {
			flush()
			return records, nil
		}
	}
}

// LoadPair reads path and builds a validated pair from its first two
// records. Fewer than two records is an error; the records must already be
// aligned to equal length.
func LoadPair(path string) (seq.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return seq.Pair{}, err
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return seq.Pair{}, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) < 2 {
		return seq.Pair{}, fmt.Errorf("%s: need two aligned records, found %d", path, len(records))
	}
	return seq.NewPair(records[0].Seq, records[1].Seq)
}
