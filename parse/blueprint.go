package parse

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/flowsched/catalog"
)

const (
	// TargetKind is the value-bearing resource of blueprint catalogs.
	TargetKind = "geode"

	// BaseKind is the kind of the robot the factory starts with.
	BaseKind = "ore"
)

// Blueprint is one parsed factory blueprint.
type Blueprint struct {
	ID      int
	Catalog *catalog.Catalog
}

var (
	blueprintHeader = regexp.MustCompile(`Blueprint\s+(\d+):`)
	robotClause     = regexp.MustCompile(`Each\s+(\w+)\s+robot\s+costs\s+([^.]+)\.`)
	costTerm        = regexp.MustCompile(`^(\d+)\s+(\w+)$`)
	andSep          = regexp.MustCompile(`\s+and\s+`)
)

// Blueprints parses "Blueprint N: Each X robot costs A ore and B clay. ..."
// records. A record may span several lines. Each robot kind becomes both a
// resource kind (in order of first appearance) and a producer raising it by
// one; the target kind is geode and the factory starts with one ore robot.
func Blueprints(text string) ([]Blueprint, error) {
	heads := blueprintHeader.FindAllStringSubmatchIndex(text, -1)
	if len(heads) == 0 {
		if strings.TrimSpace(text) == "" {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: no blueprint header", ErrSyntax)
	}
	if lead := strings.TrimSpace(text[:heads[0][0]]); lead != "" {
		return nil, fmt.Errorf("%w: unexpected text %q", ErrSyntax, lead)
	}

	out := make([]Blueprint, 0, len(heads))
	for i, h := range heads {
		id, err := strconv.Atoi(text[h[2]:h[3]])
		if err != nil {
			return nil, fmt.Errorf("%w: blueprint id: %v", ErrSyntax, err)
		}
		end := len(text)
		if i+1 < len(heads) {
			end = heads[i+1][0]
		}
		cat, err := blueprintCatalog(text[h[1]:end])
		if err != nil {
			return nil, fmt.Errorf("parse: blueprint %d: %w", id, err)
		}
		out = append(out, Blueprint{ID: id, Catalog: cat})
	}

	return out, nil
}

// blueprintCatalog turns the robot clauses of one record into a catalog.
func blueprintCatalog(body string) (*catalog.Catalog, error) {
	clauses := robotClause.FindAllStringSubmatch(body, -1)
	if len(clauses) == 0 {
		return nil, fmt.Errorf("%w: no robot clauses", ErrSyntax)
	}
	if rest := strings.TrimSpace(robotClause.ReplaceAllString(body, "")); rest != "" {
		return nil, fmt.Errorf("%w: unexpected text %q", ErrSyntax, rest)
	}

	spec := catalog.BuildSpec{Target: TargetKind}
	for _, m := range clauses {
		kind := m[1]
		cost := make(map[string]int64)
		for _, term := range andSep.Split(m[2], -1) {
			tm := costTerm.FindStringSubmatch(strings.TrimSpace(term))
			if tm == nil {
				return nil, fmt.Errorf("%w: cost %q of %s robot", ErrSyntax, term, kind)
			}
			n, err := strconv.ParseInt(tm[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: cost %q: %v", ErrSyntax, term, err)
			}
			cost[tm[2]] += n
		}
		spec.Kinds = append(spec.Kinds, kind)
		spec.Producers = append(spec.Producers, catalog.ProducerSpec{
			Name:   kind,
			Cost:   cost,
			Effect: map[string]int64{kind: 1},
		})
	}
	spec.Base = map[string]int64{spec.Kinds[0]: 1}
	if slices.Contains(spec.Kinds, BaseKind) {
		spec.Base = map[string]int64{BaseKind: 1}
	}

	return catalog.NewBuildCatalog(spec)
}
