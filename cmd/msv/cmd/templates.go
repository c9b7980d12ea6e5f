package cmd

import (
	"fmt"

	"github.com/go-drift/multistate/pkg/view"
)

// builtinTemplates returns the inflater demo uses. Each template produces a
// plain box named after the template.
func builtinTemplates() *view.TemplateInflater {
	t := view.NewTemplateInflater()
	for _, name := range []string{"loading", "empty", "error", "spinner", "retry"} {
		name := name
		t.Register(name, func() view.View { return view.NewBox(name) })
	}
	return t
}

func init() {
	RegisterCommand(&Command{
		Name:  "templates",
		Short: "List built-in view templates",
		Long: `List the template names demo can inflate.

Use these names for loadingView, emptyView and errorView in multistate.yaml.`,
		Usage: "msv templates",
		Run:   runTemplates,
	})
}

func runTemplates(args []string) error {
	for _, name := range builtinTemplates().Names() {
		fmt.Fprintln(stdout, name)
	}
	return nil
}
