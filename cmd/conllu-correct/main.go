// Package main provides the CLI entrypoint for conllu-correct.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	conllu "github.com/jamesainslie/go-conllu"
)

const longHelp = `conllu-correct rewrites every *.conllu file directly under DIR,
replacing each token form that carries a CorrectForm annotation in its
misc column and regenerating the "# text = " line of each sentence.
Results are written next to the inputs as *_updated.conllu; the inputs
are never modified.`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "conllu-correct DIR",
		Short:        "Apply CorrectForm annotations to CoNLL-U files",
		Long:         longHelp,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	c := conllu.New(conllu.WithLogger(logger))
	report, err := c.ProcessDir(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"All files processed: %d files, %d sentences, %d forms corrected, %d text lines rewritten\n",
		report.Files, report.Sentences, report.Forms, report.Summaries)
	return nil
}
