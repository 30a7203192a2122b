package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "wrlinfo",
	Short: "VRML97 scene inspector",
	Long:  "wrlinfo parses VRML 2.0 (.wrl) scene files and reports their structure, lint findings, or a normalized re-serialization.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("strict", false, "Reject re-DEF of an existing node name")
	rootCmd.PersistentFlags().Int("max-depth", 0, "Node nesting bound (0 = default)")
	rootCmd.PersistentFlags().Bool("require-header", false, "Require the #VRML V2.0 utf8 header line")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	_ = viper.BindPFlag("max_depth", rootCmd.PersistentFlags().Lookup("max-depth"))
	_ = viper.BindPFlag("require_header", rootCmd.PersistentFlags().Lookup("require-header"))
}

func initConfig() {
	viper.SetEnvPrefix("WRLINFO")
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
