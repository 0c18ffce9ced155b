package export

import (
	"context"

	"github.com/matzehuels/caliper/pkg/cache"
	"github.com/matzehuels/caliper/pkg/observability"
)

const svgKeyType = "svg"

// CachedSVG returns the SVG for dot from c, rendering and storing it on a
// miss. Entries never expire since the key is derived from the DOT text.
// A nil cache renders every time.
func CachedSVG(ctx context.Context, c cache.Cache, dot string) ([]byte, error) {
	if c == nil {
		return RenderSVG(ctx, dot)
	}
	key := SVGKey(dot)
	hooks := observability.Cache()

	if data, hit, err := c.Get(ctx, key); err == nil && hit {
		hooks.OnCacheHit(ctx, svgKeyType)
		return data, nil
	}
	hooks.OnCacheMiss(ctx, svgKeyType)

	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	if err := c.Set(ctx, key, svg, 0); err == nil {
		hooks.OnCacheSet(ctx, svgKeyType, len(svg))
	}
	return svg, nil
}

// SVGKey returns the cache key under which [CachedSVG] stores dot's
// rendering.
func SVGKey(dot string) string {
	return cache.NewDefaultKeyer().ArtifactKey(cache.Hash([]byte(dot)), cache.ArtifactKeyOpts{
		Format: "svg",
		Layout: "dot",
	})
}
