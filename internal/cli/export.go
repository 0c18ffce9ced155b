package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/caliper/pkg/errors"
	"github.com/matzehuels/caliper/pkg/export"
)

// Output formats accepted by export.
const (
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

// exportOpts holds flags for the export command.
type exportOpts struct {
	format    string
	output    string
	hierarchy bool
	noCache   bool
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "export <scene.toml>",
		Short: "Write a scene's constraints as JSON, DOT or SVG",
		Long: `Write a scene's active constraints as JSON records, a Graphviz DOT graph,
or an SVG rendering of that graph.

SVG output is cached by the DOT text's hash under ~/.cache/caliper; pass
--no-cache to always render.`,
		Example: `  caliper export login.toml --format json
  caliper export login.toml -f svg -o login.svg --hierarchy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json, dot or svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <scene>.<format>)")
	cmd.Flags().BoolVar(&opts.hierarchy, "hierarchy", false, "draw container edges in DOT and SVG output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "render SVG without the artifact cache")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, path string, opts exportOpts) error {
	format := strings.ToLower(opts.format)
	switch format {
	case formatJSON, formatDOT, formatSVG:
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported format %q (want json, dot or svg)", opts.format)
	}

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + "." + format
	}
	if err := errors.ValidatePath(out); err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	s, err := c.loadScene(path)
	if err != nil {
		return err
	}
	defer s.Close()

	name := sceneName(s, path)
	cs := s.Constraints()

	var cached *bool
	switch format {
	case formatJSON:
		if err := export.WriteJSONFile(out, name, cs); err != nil {
			return err
		}
	case formatDOT:
		dot := export.ToDOT(cs, export.Options{Hierarchy: opts.hierarchy})
		if err := os.WriteFile(out, []byte(dot), 0644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
	case formatSVG:
		hit, err := c.writeSVG(ctx, out, export.ToDOT(cs, export.Options{Hierarchy: opts.hierarchy}), opts.noCache)
		if err != nil {
			return err
		}
		cached = &hit
	}

	printSuccess("Exported %s", StyleTitle.Render(name))
	fmt.Println(sceneStats(len(s.Names()), len(cs), cached))
	printFile(out)
	prog.done(fmt.Sprintf("Exported %s as %s", name, format))
	return nil
}

// writeSVG renders dot through the artifact cache and writes it to out. It
// reports whether the SVG came from the cache.
func (c *CLI) writeSVG(ctx context.Context, out, dot string, noCache bool) (bool, error) {
	store, err := newCache(noCache)
	if err != nil {
		return false, err
	}
	defer store.Close()

	_, hit, _ := store.Get(ctx, export.SVGKey(dot))
	c.Logger.Debug("svg cache lookup", "key", export.SVGKey(dot), "hit", hit)

	var svg []byte
	if hit {
		svg, err = export.CachedSVG(ctx, store, dot)
	} else {
		spin := newSpinnerWithContext(ctx, "Rendering SVG...")
		spin.Start()
		svg, err = export.CachedSVG(ctx, store, dot)
		spin.Stop()
	}
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
	}

	if err := os.WriteFile(out, svg, 0644); err != nil {
		return false, fmt.Errorf("write %s: %w", out, err)
	}
	return hit, nil
}
