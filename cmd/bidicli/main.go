// Command bidicli is a thin adapter over the skia/bidi package's public
// contract: it decodes a command-line string into runes, resolves
// embedding levels, and prints one of three views of the result.
//
// This command does not implement any bidi algorithm of its own; every
// rule lives in skia/bidi. It exists only to exercise that package's
// public API the way any other consumer would.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/zodimo/go-bidi/skia/bidi"
)

var (
	baseLevelFlag   int
	granularityFlag string
)

func main() {
	root := &cobra.Command{
		Use:   "bidicli",
		Short: "Resolve Unicode Bidirectional Algorithm embedding levels for text",
	}
	root.PersistentFlags().IntVar(&baseLevelFlag, "base", -1, "force paragraph base level (0 or 1); default auto-detects")
	root.PersistentFlags().StringVar(&granularityFlag, "granularity", "char", "position unit for levels/ranges output: char or byte")

	root.AddCommand(levelsCmd(), rangesCmd(), reorderCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveBaseLevel() (*bidi.Level, error) {
	if baseLevelFlag < 0 {
		return nil, nil
	}
	if baseLevelFlag != 0 && baseLevelFlag != 1 {
		return nil, fmt.Errorf("--base must be 0 or 1, got %d", baseLevelFlag)
	}
	lvl := bidi.Level(baseLevelFlag)
	return &lvl, nil
}

func resolveGranularity() (bidi.Granularity, error) {
	switch granularityFlag {
	case "char":
		return bidi.GranularityChar, nil
	case "byte":
		return bidi.GranularityByte, nil
	default:
		return 0, fmt.Errorf("--granularity must be char or byte, got %q", granularityFlag)
	}
}

// warnIfEmpty logs a diagnosable, non-fatal notice when text decodes to no
// runes at all, then lets the caller continue and print its (empty)
// result rather than treating it as an error.
func warnIfEmpty(runes []rune) {
	if len(runes) == 0 {
		log.Println("bidicli: input has no code points, output will be empty")
	}
}

func levelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels <text>",
		Short: "Print one embedding level per code point (or per byte, with --granularity=byte)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := resolveBaseLevel()
			if err != nil {
				return err
			}
			granularity, err := resolveGranularity()
			if err != nil {
				return err
			}
			runes := []rune(args[0])
			warnIfEmpty(runes)
			resolved := bidi.ResolveLevels(runes, granularity, base)
			fmt.Printf("base level: %d\n", resolved.BaseLevel)
			for i, lvl := range resolved.Levels {
				fmt.Printf("%d\t%d\n", i, lvl)
			}
			return nil
		},
	}
}

func rangesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ranges <text>",
		Short: "Print compressed (level, [start,end)) runs (byte offsets, with --granularity=byte)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := resolveBaseLevel()
			if err != nil {
				return err
			}
			granularity, err := resolveGranularity()
			if err != nil {
				return err
			}
			runes := []rune(args[0])
			warnIfEmpty(runes)
			resolved := bidi.ResolveRanges(runes, granularity, base)
			fmt.Printf("base level: %d\n", resolved.BaseLevel)
			for _, r := range resolved.Levels {
				fmt.Printf("level %d\t[%d,%d)\n", r.Level, r.Start, r.End)
			}
			return nil
		},
	}
}

func reorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <text>",
		Short: "Print the L2 visual reordering of the code points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := resolveBaseLevel()
			if err != nil {
				return err
			}
			runes := []rune(args[0])
			warnIfEmpty(runes)
			resolved := bidi.ResolveLevels(runes, bidi.GranularityChar, base)
			order := bidi.ReorderLevels(resolved.Levels)

			visual := make([]rune, len(order))
			for i, logical := range order {
				visual[i] = runes[logical]
			}
			fmt.Printf("logical order: %s\n", string(runes))
			fmt.Printf("visual order:  %s\n", string(visual))
			return nil
		},
	}
}
