package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/launchpost/sdkref/internal/config"
	"github.com/launchpost/sdkref/internal/loader"
	"github.com/launchpost/sdkref/internal/readme"
	"github.com/launchpost/sdkref/internal/reference"
	"github.com/launchpost/sdkref/internal/templates"
	embeddedtmpl "github.com/launchpost/sdkref/templates"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "sdkref",
		Short:   "Generate the README's SDK Reference section from the OpenAPI spec",
		Version: "1.0.0",
		Args:    cobra.NoArgs,
		RunE:    run,
	}

	root.Flags().Bool("print", false, "Print the rendered section to stdout instead of updating the README")

	return root
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	result, err := loader.LoadFile(cfg.Spec)
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}

	for _, w := range result.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}

	spec, err := loader.Transform(result)
	if err != nil {
		return fmt.Errorf("transforming spec: %w", err)
	}

	cmd.PrintErrf("Loaded OpenAPI %s: %s v%s\n", result.Version, spec.Info.Title, spec.Info.Version)
	cmd.PrintErrf("  Operations: %d\n", len(spec.Operations))

	engine, err := templates.NewEngine(embeddedtmpl.FS, cfg.Templates.Dir)
	if err != nil {
		return fmt.Errorf("creating template engine: %w", err)
	}

	ref := reference.Build(spec, cfg.Reference)

	fragment, err := reference.Render(engine, ref)
	if err != nil {
		return fmt.Errorf("rendering reference: %w", err)
	}

	if printOnly, _ := cmd.Flags().GetBool("print"); printOnly {
		// cobra's Print goes to OutOrStderr; the fragment must land on
		// stdout so it can be redirected cleanly past the diagnostics.
		fmt.Fprint(cmd.OutOrStdout(), fragment)
		return nil
	}

	updated, err := readme.UpdateFile(cfg.Readme, fragment)
	if err != nil {
		return err
	}

	if updated {
		cmd.PrintErrf("Updated %s\n", cfg.Readme)
	} else {
		cmd.PrintErrln("No changes needed")
	}

	return nil
}
