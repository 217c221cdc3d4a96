// Package flowsched plans activations of producers over a fixed horizon so
// that a target quantity is as large as possible when time runs out.
//
// Two catalog styles share one search engine:
//
//   - build: producers cost resources and permanently raise the rate of a
//     resource kind (robot factories, compounding investments).
//   - valve: producers are locations on a tunnel graph; walking there and
//     opening one adds its value to the release rate.
//
// Layout:
//
//	resource/   fixed-width resource vectors and saturating arithmetic
//	catalog/    immutable catalogs, producer sets and travel lags
//	search/     best-first explorer with dedup and upper-bound pruning
//	partition/  two agents splitting one catalog's producers
//	batch/      many catalogs evaluated concurrently
//	parse/      puzzle-text front ends for blueprints and valve scans
//	document/   YAML and JSON problem documents
//	config/     viper-backed settings and slog logger construction
//
// Quick example:
//
//	bps, _ := parse.Blueprints(text)
//	res, _ := batch.Evaluate(ctx, batch.FromBlueprints(bps), 24)
//	fmt.Println(batch.QualitySum(res))
//
// The flowsched command (cmd/flowsched) exposes the same operations.
package flowsched
