package main

import (
	"fmt"
	"os"

	"github.com/cyril12/Tr3Smoothing/sceneinfo"
	"github.com/cyril12/Tr3Smoothing/vrmlparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var parseCmd = &cobra.Command{
	Use:   "parse <scene.wrl>",
	Short: "Parse a VRML scene file",
	Long:  "Parse a VRML 2.0 scene file, print a structure summary, and optionally lint or re-serialize it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("lint", false, "Run validation rules and print diagnostics")
	parseCmd.Flags().Bool("dump", false, "Re-serialize the parsed scene to stdout")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	file := args[0]
	verbose := viper.GetBool("verbose")
	lint, _ := cmd.Flags().GetBool("lint")
	dump, _ := cmd.Flags().GetBool("dump")

	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading scene file: %w", err)
	}

	scene, err := vrmlparser.ParseWithOptions(src, vrmlparser.Options{
		StrictRedefine: viper.GetBool("strict"),
		MaxDepth:       viper.GetInt("max_depth"),
		RequireHeader:  viper.GetBool("require_header"),
	})
	if err != nil {
		return fmt.Errorf("parsing %s: %w", file, err)
	}

	summary := sceneinfo.Summarize(scene)
	fmt.Fprintf(os.Stderr, "%s: %s", file, summary)

	if verbose {
		for _, name := range scene.DefNames() {
			fmt.Fprintf(os.Stderr, "  DEF %s (%s)\n", name, scene.Defs[name].Type)
		}
		for _, name := range scene.ProtoNames() {
			p := scene.Protos[name]
			kind := "PROTO"
			if p.External {
				kind = "EXTERNPROTO"
			}
			fmt.Fprintf(os.Stderr, "  %s %s (%d fields, %d eventIns, %d eventOuts)\n",
				kind, name, len(p.Fields), len(p.EventIns), len(p.EventOuts))
		}
	}

	if lint {
		diagnostics := vrmlparser.Validate(scene)
		if len(diagnostics) == 0 {
			fmt.Fprintln(os.Stderr, "no findings")
		}
		for _, d := range diagnostics {
			fmt.Fprintln(os.Stderr, d)
		}
	}

	if dump {
		if err := vrmlparser.WriteScene(os.Stdout, scene); err != nil {
			return fmt.Errorf("writing scene: %w", err)
		}
	}

	return nil
}
