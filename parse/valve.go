package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/flowsched/catalog"
)

// StartValve is the location every valve walk starts from.
const StartValve = "AA"

var valveLine = regexp.MustCompile(`^Valve\s+(\w+)\s+has\s+flow\s+rate=(\d+);\s+tunnels?\s+leads?\s+to\s+valves?\s+(.+)$`)

// Valves parses one "Valve XX has flow rate=N; tunnels lead to valves A, B"
// line per location and builds a valve catalog starting at StartValve.
func Valves(text string) (*catalog.Catalog, error) {
	return ValvesFrom(text, StartValve)
}

// ValvesFrom is Valves with an explicit start location.
func ValvesFrom(text, start string) (*catalog.Catalog, error) {
	locs, err := Locations(text)
	if err != nil {
		return nil, err
	}

	return catalog.NewGraphCatalog(locs, start)
}

// Locations parses valve lines into catalog locations. Blank lines are skipped.
func Locations(text string) ([]catalog.Location, error) {
	var locs []catalog.Location
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := valveLine.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrSyntax, n+1, line)
		}
		value, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: flow rate: %v", ErrSyntax, n+1, err)
		}
		tunnels := strings.Split(m[3], ",")
		for i := range tunnels {
			tunnels[i] = strings.TrimSpace(tunnels[i])
		}
		locs = append(locs, catalog.Location{Name: m[1], Value: value, Tunnels: tunnels})
	}

	return locs, nil
}
