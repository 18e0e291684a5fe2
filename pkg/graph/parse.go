package graph

import (
	"bufio"
	"io"
	"strings"
)

// ParseEdgeList reads whitespace-separated token pairs, one edge per line.
// The first two tokens on a line are the source and target identifiers, taken
// as literal strings; extra tokens are ignored and lines with fewer than two
// tokens are skipped. Malformed input never produces an error.
func ParseEdgeList(r io.Reader) [][2]string {
	var edges [][2]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) < 2 {
			continue
		}
		edges = append(edges, [2]string{fields[0], fields[1]})
	}
	return edges
}

// ParseEdgeListString is a convenience wrapper over ParseEdgeList.
func ParseEdgeListString(s string) [][2]string {
	return ParseEdgeList(strings.NewReader(s))
}
