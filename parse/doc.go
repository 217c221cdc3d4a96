// Package parse reads the two textual puzzle formats into catalogs:
// factory blueprints (build style, Blueprints) and valve caves
// (valve style, Valves). Syntax problems are reported as ErrSyntax;
// semantic problems (unknown kinds, unreachable valves) surface as the
// catalog package's sentinel errors.
package parse
