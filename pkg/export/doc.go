// Package export writes active constraint sets out of process: as JSON
// records, as a Graphviz DOT graph of regions and the constraints between
// them, and as SVG rendered from that graph.
//
// SVG rendering runs Graphviz through [github.com/goccy/go-graphviz] and is
// the slow path; [CachedSVG] puts a [cache.Cache] in front of it keyed by
// the DOT text's hash.
package export
