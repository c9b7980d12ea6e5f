package cmd

import (
	"fmt"

	"github.com/go-drift/multistate/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check a multistate.yaml file",
		Long: `Load and validate a configuration file.

The schema version must be v1.x. viewState must name a state, and
fadeDuration must not be negative. Template references are checked
against the built-in templates.`,
		Usage: "msv validate <file>",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("config file is required\n\nUsage: msv validate <file>")
	}
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	templates := builtinTemplates()
	for _, ref := range []string{cfg.LoadingView, cfg.EmptyView, cfg.ErrorView} {
		if ref == "" {
			continue
		}
		if _, err := templates.Inflate(ref, nil); err != nil {
			return err
		}
	}

	fmt.Fprintf(stdout, "%s: ok\n", args[0])
	fmt.Fprintf(stdout, "  schema:    %s\n", cfg.Schema)
	fmt.Fprintf(stdout, "  viewState: %s\n", cfg.ViewState)
	fmt.Fprintf(stdout, "  animate:   %v (%v per fade)\n", cfg.AnimateViewChanges, cfg.FadeDuration)
	return nil
}
