package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed boards.txt
var FS embed.FS

// ReadBlocks splits r into groups of consecutive non-empty lines, upper-cased.
// Blank lines and "#" comments end the current group.
func ReadBlocks(r io.Reader) ([][]string, error) {
	var out [][]string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			out = append(out, cur)
			cur = nil
		}
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			flush()
			continue
		}
		cur = append(cur, strings.ToUpper(s))
	}
	flush()
	return out, sc.Err()
}

// BoardBlocks returns the reference boards, one slice of rows per board.
func BoardBlocks() ([][]string, error) {
	f, err := FS.Open("boards.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadBlocks(f)
}
