// Package document loads problem instances from YAML or JSON files.
//
// A document names its style, horizon and agent count and carries either a
// build catalog (kinds, target, base, producers) or a valve graph (start,
// locations). YAML is decoded with gopkg.in/yaml.v3 and rejects unknown
// fields; JSON is read path by path with github.com/tidwall/gjson. Both forms
// are normalized and checked with the same validate tags before Catalog
// resolves cross references.
package document
