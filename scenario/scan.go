package scenario

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrBadScanLine reports a line of a scan report that does not match
// the expected valve sentence.
var ErrBadScanLine = errors.New("scenario: malformed scan line")

var scanLine = regexp.MustCompile(
	`^Valve (\S+) has flow rate=(\d+); tunnels? leads? to valves? (.+)$`)

// parseScan reads the line-oriented scan report:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// Blank lines are skipped. The start defaults to DefaultStart.
func parseScan(data []byte) (*Scenario, error) {
	s := &Scenario{Start: DefaultStart}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m := scanLine.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadScanLine, n, line)
		}
		rate, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadScanLine, n, err)
		}
		v := Valve{ID: m[1], Rate: rate}
		for _, t := range strings.Split(m[3], ",") {
			v.Tunnels = append(v.Tunnels, strings.TrimSpace(t))
		}
		s.Valves = append(s.Valves, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read scan: %w", err)
	}

	return s, nil
}
