// Ask asks one question on the terminal and prints the answer.
//
// It makes the prompts of the ask library usable from shell scripts: the
// prompt is drawn on the controlling terminal and only the answer is written
// to standard output.
//
// Usage:
//
//	ask [command] MESSAGE [flags]
//
// Examples:
//
//	name=$(ask text "Your name?" --required)
//	ask confirm "Deploy?" --default no && make deploy
//	ask select "Environment?" dev staging prod
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nao1215/ask"
)

var (
	debug    bool
	pageSize int
	vimMode  bool
	help     string
)

// errAnsweredNo makes confirm exit with a failure status without a message.
var errAnsweredNo = errors.New("answered no")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errAnsweredNo) {
			os.Exit(1)
		}
		if errors.Is(err, ask.ErrCanceled) || errors.Is(err, ask.ErrInterrupted) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ask",
	Short: "Interactive prompts for shell scripts",
	Long: `Ask shows one interactive prompt and prints the answer to standard output.

Esc cancels the prompt and Ctrl+C interrupts it; both exit with status 130.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !debug {
			return nil
		}
		log, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		ask.SetLogger(log)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		ask.SetLogger(nil)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log prompt events to standard error")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", 7, "Options shown at once in lists")
	rootCmd.PersistentFlags().BoolVar(&vimMode, "vim", false, "Enable hjkl navigation")
	rootCmd.PersistentFlags().StringVar(&help, "help-message", "", "Help line shown below the prompt")
}

// options turns the persistent flags into prompt options. --vim is only
// applied when given, so prompts keep their own default otherwise.
func options(cmd *cobra.Command) []ask.Option {
	opts := []ask.Option{
		ask.WithPageSize(pageSize),
		ask.WithHelpMessage(help),
	}
	if cmd.Flags().Changed("vim") {
		opts = append(opts, ask.WithVimMode(vimMode))
	}
	return opts
}

// printAnswer writes the answer for the calling script.
func printAnswer(cmd *cobra.Command, answer any) {
	fmt.Fprintln(cmd.OutOrStdout(), answer)
}
