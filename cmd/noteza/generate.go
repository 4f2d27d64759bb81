package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/csheth/noteza/internal/export"
	"github.com/csheth/noteza/internal/notes"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate notes for one topic without the interactive view",
	Long: `generate asks the model for notes on --topic and writes them to
"<topic> notes.md" (or .pdf with --format pdf) in the export directory.
With --stdout the Markdown is printed instead.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("topic", "", "topic to study")
	generateCmd.Flags().String("level", string(notes.LevelBrief), "detail level: Brief or Detailed")
	generateCmd.Flags().String("format", string(export.FormatMarkdown), "export format: md or pdf")
	generateCmd.Flags().String("out", "", "output directory (default: export_dir)")
	generateCmd.Flags().Bool("stdout", false, "print the Markdown instead of writing a file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	levelFlag, _ := cmd.Flags().GetString("level")
	formatFlag, _ := cmd.Flags().GetString("format")
	outDir, _ := cmd.Flags().GetString("out")
	toStdout, _ := cmd.Flags().GetBool("stdout")

	level, err := notes.ParseLevel(levelFlag)
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	cfg, client, closer, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, a := newSession(cmd.Context(), client)
	note, err := a.Generate(ctx, topic, level)
	if err != nil {
		return err
	}

	if toStdout {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), note.Text)
		return err
	}
	if outDir == "" {
		outDir = cfg.ExportDir
	}
	path, err := export.Save(outDir, note, format)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", path)
	fmt.Fprintf(os.Stderr, "%s saved (%s)\n", note.Label(), format.MIMEType())
	return nil
}
