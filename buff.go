package edi

import (
	"errors"
	"unicode/utf8"
)

// line is one line of a document, addressable by column. Columns are bytes
// unless the line was built with codepoint columns and contains a multi-byte
// character.
type line struct {
	data string

	// Used when `SetUseCodepointIndices` has been called on `Decoder`. A
	// mapping of codepoint indices into the bytes. So `codepointIndices[n]`
	// is the starting position of the n-th codepoint in `data`.
	codepointIndices []int
}

func newLine(data string, useCodepointIndices bool) (line, error) {
	l := line{data: data}
	if !useCodepointIndices {
		return l, nil
	}

	bytesIdx := findFirstMultiByteChar(data)
	if bytesIdx == len(data) {
		return l, nil
	}
	codepointIndices := make([]int, bytesIdx, len(data))
	for i := 0; i < bytesIdx; i++ {
		codepointIndices[i] = i
	}
	for bytesIdx < len(data) {
		r, size := utf8.DecodeRuneInString(data[bytesIdx:])
		if r == utf8.RuneError && size <= 1 {
			return line{}, errors.New("edi: invalid codepoint")
		}
		codepointIndices = append(codepointIndices, bytesIdx)
		bytesIdx += size
	}
	l.codepointIndices = codepointIndices
	return l, nil
}

// len returns the number of columns in the line.
func (l line) len() int {
	if l.codepointIndices == nil {
		return len(l.data)
	}
	return len(l.codepointIndices)
}

func (l line) byteIndex(col int) int {
	if l.codepointIndices == nil {
		return col
	}
	if col >= len(l.codepointIndices) {
		return len(l.data)
	}
	return l.codepointIndices[col]
}

// columns returns width columns starting at the zero based column start. The
// result is cut short, or empty, where the line ends early.
func (l line) columns(start, width int) string {
	n := l.len()
	if start >= n {
		return ""
	}
	end := start + width
	if end > n {
		end = n
	}
	return l.data[l.byteIndex(start):l.byteIndex(end)]
}

// Scans data looking for multi-byte characters. Returns either the index of
// the first multi-byte character or the length of data if there are none.
func findFirstMultiByteChar(data string) int {
	for i := 0; i < len(data); i++ {
		if data[i]&0x80 == 0x80 {
			return i
		}
	}
	return len(data)
}
