package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lexweave/internal/config"
	"lexweave/internal/translator"
)

func newLookupCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var artifactPath string

	cmd := &cobra.Command{
		Use:   "lookup <english>",
		Short: "Resolve an English headword against a unified artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var tr *translator.Translator
			if path := strings.TrimSpace(artifactPath); path != "" {
				expanded, pathErr := config.ExpandPath(path)
				if pathErr != nil {
					return pathErr
				}
				tr, err = translator.Load(expanded)
			} else {
				tr, err = translator.LoadLatest(cfg.Paths.OutputDir)
			}
			if err != nil {
				return err
			}

			translation, ok := tr.Lookup(args[0])
			if !ok {
				return fmt.Errorf("no entry for %q in %s", args[0], tr.Path())
			}
			if jsonOut {
				return writeJSON(cmd, translation)
			}

			out := cmd.OutOrStdout()
			line := func(label, value string) {
				if value == "" {
					return
				}
				fmt.Fprintf(out, "%-10s %s\n", label+":", value)
			}
			line("English", translation.English)
			line("Ancient", translation.Ancient)
			line("Modern", translation.Modern)
			line("POS", translation.POS)
			line("Notes", translation.Notes)
			fmt.Fprintf(out, "%-10s %s (v%s, %d headwords)\n", "Artifact:", tr.Path(), tr.Version(), tr.Size())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the translation as JSON")
	cmd.Flags().StringVarP(&artifactPath, "artifact", "a", "", "Unified artifact to load (defaults to the newest in the output directory)")
	return cmd
}
