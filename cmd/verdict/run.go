package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdict-ml/verdict/internal/config"
	"github.com/verdict-ml/verdict/internal/harness"
	"github.com/verdict-ml/verdict/internal/store"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the golden-output suite from a manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := store.Open(activeCfg.DataRoot)
			if err != nil {
				// A storage failure is a fatal precondition, not a
				// failed test case. No retry.
				return err
			}
			defer func() {
				if rerr := st.Release(); rerr != nil {
					log.Error().Err(rerr).Msg("store release")
				}
			}()

			fsys, err := st.FS()
			if err != nil {
				return err
			}

			manifest, err := config.LoadManifest(fsys, activeCfg.Manifest, activeCfg.Threshold)
			if err != nil {
				return err
			}
			log.Info().Str("root", st.Root()).Int("cases", len(manifest.Cases)).Msg("suite start")

			summary := harness.NewRunner(fsys, log).Run(manifest.Cases)
			summary.Print(cmd.OutOrStdout())

			if summary.Failed() {
				_, failed := summary.Counts()
				return fmt.Errorf("%d of %d cases failed", failed, len(summary.Outcomes()))
			}
			return nil
		},
	}
}
