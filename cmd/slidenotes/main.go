// Package main is the entry point for the slidenotes CLI. It extracts
// speaker notes from a presentation into a JSON file and produces a
// PDF rendition of the original package via a headless office
// converter.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/slidenotes"
	"github.com/tsawler/slidenotes/convert"
	"github.com/tsawler/slidenotes/format"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the slidenotes CLI.
var rootCmd = &cobra.Command{
	Use:   "slidenotes <input-package> [output-dir]",
	Short: "Extract speaker notes from a presentation",
	Long: `slidenotes reads a PPTX presentation, flattens the speaker notes of every
slide into markup, and writes them as a JSON array ordered by slide number.
It then invokes a headless office converter to place a PDF rendition of the
presentation next to the notes.

The output directory defaults to the current working directory and is
created if it does not exist.`,
	Version:      version,
	Args:         cobra.RangeArgs(1, 2),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./slidenotes.yaml or ~/.config/slidenotes/config.yaml)")

	rootCmd.Flags().String("soffice", "", "converter binary (default: soffice on PATH)")
	rootCmd.Flags().Duration("timeout", convert.DefaultTimeout, "conversion timeout")
	rootCmd.Flags().Bool("skip-convert", false, "extract notes only, skip the PDF rendition")

	viper.BindPFlag("soffice", rootCmd.Flags().Lookup("soffice"))
	viper.BindPFlag("timeout", rootCmd.Flags().Lookup("timeout"))
	viper.BindPFlag("skip_convert", rootCmd.Flags().Lookup("skip-convert"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("slidenotes")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "slidenotes"))
		}
	}

	viper.SetEnvPrefix("SLIDENOTES")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func run(cmd *cobra.Command, args []string) error {
	input := args[0]
	outDir := "."
	if len(args) == 2 {
		outDir = args[1]
	}

	if format.Detect(input) == format.Unknown {
		return fmt.Errorf("unsupported input format: %s", input)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	stem := convert.Stem(input)
	notesPath := filepath.Join(outDir, stem+".notes.json")
	if err := slidenotes.Open(input).WriteJSON(notesPath); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "notes: %s\n", notesPath)

	if viper.GetBool("skip_convert") {
		return nil
	}

	renderer := convert.NewSoffice()
	renderer.Bin = viper.GetString("soffice")
	renderer.Timeout = viper.GetDuration("timeout")

	// The notes JSON is already on disk at this point; a conversion
	// failure never rolls it back.
	rendition, err := renderer.Render(input, outDir)
	if errors.Is(err, convert.ErrRenditionMissing) {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	target := filepath.Join(outDir, stem+".pdf")
	if err := convert.Place(rendition, target); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "rendition: %s\n", target)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
