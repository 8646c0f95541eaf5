package main

import (
	"encoding/json"
	"fmt"

	"github.com/Conceptual-Machines/lounge-api/internal/arranger"
	"github.com/Conceptual-Machines/lounge-api/internal/config"
	"github.com/Conceptual-Machines/lounge-api/internal/lyrics"
	"github.com/Conceptual-Machines/lounge-api/internal/playback"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type options struct {
	key    string
	tempo  int
	swing  float64
	seed   float64
	asJSON bool
	plain  bool
}

func newRootCmd() *cobra.Command {
	_ = godotenv.Load()
	cfg := config.Load()

	opts := &options{}
	cmd := &cobra.Command{
		Use:   "leadsheet",
		Short: "Print a generated lounge jazz lead sheet",
		Long: `Generate the lounge jazz arrangement for a key and print it as a lead sheet.

Keys: C, F, Bb, Eb, G, D

Examples:
  leadsheet --key Bb
  leadsheet --key G --tempo 148 --swing 0.7
  leadsheet --seed 42 --json`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = lyrics.NewSeed()
			}
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.key, "key", "k", cfg.DefaultKey, "key id (C, F, Bb, Eb, G, D)")
	cmd.Flags().IntVarP(&opts.tempo, "tempo", "t", cfg.DefaultTempo, fmt.Sprintf("tempo in BPM (%d-%d)", playback.MinTempo, playback.MaxTempo))
	cmd.Flags().Float64VarP(&opts.swing, "swing", "s", cfg.DefaultSwing, fmt.Sprintf("swing ratio (%v-%v)", playback.MinSwing, playback.MaxSwing))
	cmd.Flags().Float64Var(&opts.seed, "seed", 0, "lyric seed (random when omitted)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the playback plan as JSON")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "disable colors")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	key, err := arranger.LookupKey(opts.key)
	if err != nil {
		return err
	}

	pools, err := lyrics.DefaultPools()
	if err != nil {
		return fmt.Errorf("failed to load lyric pools: %w", err)
	}

	plan, err := playback.NewPlanner(lyrics.NewGenerator(pools)).Plan(playback.Settings{
		Key:   key,
		Tempo: opts.tempo,
		Swing: opts.swing,
		Seed:  opts.seed,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}

	styles := DefaultStyles
	if opts.plain {
		styles = PlainStyles
	}
	_, err = fmt.Fprint(out, renderLeadSheet(plan, styles))
	return err
}
