// Package main provides the lithology CLI entry point.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/AIforimpact22/lithology/pkg/litho"
	"github.com/AIforimpact22/lithology/pkg/litho/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lithology",
		Short: "Extract and serve lithology section data",
		Long: `lithology reads lithology section tables out of geological profile
workbooks and serves them merged with the profile catalog.`,
	}
	rootCmd.AddCommand(newExtractCmd(), newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newExtractCmd() *cobra.Command {
	var outputPath string
	var pretty bool

	cmd := &cobra.Command{
		Use:   "extract [workbook.xlsx]",
		Short: "Extract the section table from a workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := litho.NewExtractor(newLogger()).Extract(args[0])
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}

			var data []byte
			if pretty {
				data, err = json.MarshalIndent(table, "", "  ")
			} else {
				data, err = json.Marshal(table)
			}
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, data, 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				return nil
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newServeCmd() *cobra.Command {
	config := server.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lithology catalog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.New(config, newLogger()).ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&config.Addr, "addr", config.Addr, "Listen address")
	cmd.Flags().StringVar(&config.WorkbookPath, "workbook", config.WorkbookPath, "Path to the profiles workbook")
	cmd.Flags().StringVar(&config.DataPath, "data", config.DataPath, "Path to the lithology entries JSON file")
	cmd.Flags().StringVar(&config.PDFDir, "pdf-dir", config.PDFDir, "Directory holding the profile PDFs")
	cmd.Flags().StringVar(&config.WebDir, "web-dir", config.WebDir, "Directory holding the index page")
	return cmd
}

func newLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).With().Timestamp().Logger()
}
