package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/caliper/pkg/errors"
	"github.com/matzehuels/caliper/pkg/scene"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var element string

	cmd := &cobra.Command{
		Use:   "check <scene.toml>",
		Short: "Build a scene and list its active constraints",
		Long: `Build a scene and list its active constraints.

The scene is parsed, every view and guide is made in document order, and
remakes are applied. Any invalid rule or rejected constraint batch fails the
check with a coded error.`,
		Example: `  caliper check login.toml
  caliper check login.toml --element card`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(args[0], element)
		},
	}

	cmd.Flags().StringVarP(&element, "element", "e", "", "only list constraints affecting this view or guide")

	return cmd
}

func (c *CLI) runCheck(path, element string) error {
	prog := newProgress(c.Logger)

	s, err := c.loadScene(path)
	if err != nil {
		return err
	}
	defer s.Close()

	cs := s.Constraints()
	if element != "" {
		el, ok := s.Element(element)
		if !ok {
			return errors.New(errors.ErrCodeNotFound, "scene has no element %q", element)
		}
		cs = s.Engine.Affecting(el)
	}

	name := sceneName(s, path)
	printSuccess("Scene %s is consistent", StyleTitle.Render(name))
	fmt.Println(sceneStats(len(s.Names()), len(cs), nil))
	if len(cs) > 0 {
		fmt.Println(constraintTable(cs, -1))
	} else {
		printInfo("No constraints")
	}
	prog.done("Checked " + name)
	printNextStep("Render it", fmt.Sprintf("%s export %s --format svg", appName, path))
	return nil
}

// sceneName returns the document's name, falling back to the file stem.
func sceneName(s *scene.Scene, path string) string {
	if s.Name != "" {
		return s.Name
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
