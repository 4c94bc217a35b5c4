package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/ask"
)

// Command flags
var (
	defaultValue string
	placeholder  string
	required     bool
	suggestions  []string
	suggestPaths bool

	confirmDefault string

	passwordMode    string
	passwordConfirm bool
	passwordToggle  bool

	fuzzyFilter bool
	minSelected int
	defaults    []int

	minDate   string
	maxDate   string
	weekStart string

	startDir    string
	directories bool
	extensions  []string

	editorCommand string
	fileExt       string
	initialText   string
)

func init() {
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(numberCmd)
	rootCmd.AddCommand(confirmCmd)
	rootCmd.AddCommand(passwordCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(multiSelectCmd)
	rootCmd.AddCommand(dateCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(editorCmd)
}

var textCmd = &cobra.Command{
	Use:   "text MESSAGE",
	Short: "Ask for a line of text",
	Example: `  # Required answer
  ask text "Project name?" --required

  # Suggest file paths while typing
  ask text "Config file?" --paths`,
	Args: cobra.ExactArgs(1),
	RunE: runText,
}

func init() {
	textCmd.Flags().StringVar(&defaultValue, "default", "", "Answer used when the input is empty")
	textCmd.Flags().StringVar(&placeholder, "placeholder", "", "Text shown while the input is empty")
	textCmd.Flags().BoolVar(&required, "required", false, "Reject an empty answer")
	textCmd.Flags().StringSliceVar(&suggestions, "suggest", nil, "Candidates suggested with fuzzy matching")
	textCmd.Flags().BoolVar(&suggestPaths, "paths", false, "Suggest file system paths")
}

func runText(cmd *cobra.Command, args []string) error {
	text := ask.NewText(args[0], options(cmd)...)
	text.Default = defaultValue
	text.Placeholder = placeholder
	if required {
		text.Validators = append(text.Validators, ask.ValidateRequired(""))
	}
	switch {
	case suggestPaths:
		text.Suggester = ask.NewPathSuggester()
	case len(suggestions) > 0:
		text.Suggester = ask.NewFuzzySuggester(suggestions)
	}

	answer, err := text.Prompt()
	if err != nil {
		return err
	}
	printAnswer(cmd, answer)
	return nil
}

var numberCmd = &cobra.Command{
	Use:     "number MESSAGE",
	Short:   "Ask for a number",
	Example: `  ask number "Replicas?" --default 3`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		num := ask.NewCustomType[float64](args[0], options(cmd)...)
		num.ErrorMessage = "Please type a number"
		if cmd.Flags().Changed("default") {
			def, err := strconv.ParseFloat(defaultValue, 64)
			if err != nil {
				return fmt.Errorf("invalid --default %q: %w", defaultValue, err)
			}
			num.Default = &def
		}

		answer, err := num.Prompt()
		if err != nil {
			return err
		}
		printAnswer(cmd, answer)
		return nil
	},
}

func init() {
	numberCmd.Flags().StringVar(&defaultValue, "default", "", "Answer used when the input is empty")
}

var confirmCmd = &cobra.Command{
	Use:   "confirm MESSAGE",
	Short: "Ask a yes or no question",
	Long: `Ask a yes or no question.

Prints true or false. The exit status is 0 for yes and 1 for no, so the
command can be used directly in shell conditions.`,
	Example: `  ask confirm "Deploy?" --default no && make deploy`,
	Args:    cobra.ExactArgs(1),
	RunE:    runConfirm,
}

func init() {
	confirmCmd.Flags().StringVar(&confirmDefault, "default", "", "Default answer (yes or no)")
}

func runConfirm(cmd *cobra.Command, args []string) error {
	confirm := ask.NewConfirm(args[0], options(cmd)...)
	if confirmDefault != "" {
		def, err := ask.DefaultBoolParser(confirmDefault)
		if err != nil {
			return fmt.Errorf("invalid --default %q: expected yes or no", confirmDefault)
		}
		confirm.WithDefault(def)
	}

	answer, err := confirm.Prompt()
	if err != nil {
		return err
	}
	printAnswer(cmd, answer)
	if !answer {
		return errAnsweredNo
	}
	return nil
}

var passwordCmd = &cobra.Command{
	Use:   "password MESSAGE",
	Short: "Ask for a secret",
	Example: `  # New password typed twice, Ctrl+R reveals it
  ask password "New password:" --confirm --toggle`,
	Args: cobra.ExactArgs(1),
	RunE: runPassword,
}

func init() {
	passwordCmd.Flags().StringVar(&passwordMode, "mode", "masked", "Display mode (masked, hidden, full, unmasked-last-char)")
	passwordCmd.Flags().BoolVar(&passwordConfirm, "confirm", false, "Ask for the secret twice")
	passwordCmd.Flags().BoolVar(&passwordToggle, "toggle", false, "Let Ctrl+R reveal the secret")
	passwordCmd.Flags().BoolVar(&required, "required", false, "Reject an empty answer")
}

// parsePasswordMode maps a mode name back to its PasswordDisplayMode.
func parsePasswordMode(name string) (ask.PasswordDisplayMode, error) {
	for _, m := range []ask.PasswordDisplayMode{
		ask.PasswordMasked, ask.PasswordHidden, ask.PasswordFull, ask.PasswordUnmaskedLastChar,
	} {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown display mode %q", name)
}

func runPassword(cmd *cobra.Command, args []string) error {
	mode, err := parsePasswordMode(passwordMode)
	if err != nil {
		return err
	}
	pw := ask.NewPassword(args[0], options(cmd)...)
	pw.DisplayMode = mode
	pw.EnableConfirmation = passwordConfirm
	pw.EnableDisplayToggle = passwordToggle
	if required {
		pw.Validators = append(pw.Validators, ask.ValidateRequired(""))
	}

	answer, err := pw.Prompt()
	if err != nil {
		return err
	}
	printAnswer(cmd, answer)
	return nil
}

var selectCmd = &cobra.Command{
	Use:     "select MESSAGE OPTION...",
	Short:   "Ask to pick one option",
	Example: `  ask select "Environment?" dev staging prod --fuzzy`,
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sel := ask.NewSelect(args[0], args[1:], options(cmd)...)
		if fuzzyFilter {
			sel.Scorer = ask.FuzzyScorer[string]()
		}

		answer, err := sel.Prompt()
		if err != nil {
			return err
		}
		printAnswer(cmd, answer)
		return nil
	},
}

func init() {
	selectCmd.Flags().BoolVar(&fuzzyFilter, "fuzzy", false, "Filter options with fuzzy matching")
}

var multiSelectCmd = &cobra.Command{
	Use:   "multiselect MESSAGE OPTION...",
	Short: "Ask to pick any number of options",
	Long: `Ask to pick any number of options.

Each checked option is printed on its own line, in the order given.`,
	Example: `  ask multiselect "Features?" auth billing search --min 1 --checked 0`,
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ms := ask.NewMultiSelect(args[0], args[1:], options(cmd)...)
		ms.Defaults = defaults
		if fuzzyFilter {
			ms.Scorer = ask.FuzzyScorer[string]()
		}
		if minSelected > 0 {
			ms.Validators = append(ms.Validators, ask.ValidateMinSelected[string](minSelected, ""))
		}

		answers, err := ms.Prompt()
		if err != nil {
			return err
		}
		for _, a := range answers {
			printAnswer(cmd, a)
		}
		return nil
	},
}

func init() {
	multiSelectCmd.Flags().BoolVar(&fuzzyFilter, "fuzzy", false, "Filter options with fuzzy matching")
	multiSelectCmd.Flags().IntVar(&minSelected, "min", 0, "Minimum number of options to check")
	multiSelectCmd.Flags().IntSliceVar(&defaults, "checked", nil, "Indices of options checked at start")
}

var dateCmd = &cobra.Command{
	Use:   "date MESSAGE",
	Short: "Ask for a date on a calendar",
	Long: `Ask for a date on a calendar.

Prints the date as YYYY-MM-DD.`,
	Example: `  ask date "Release day?" --min 2025-01-01 --week-start monday`,
	Args:    cobra.ExactArgs(1),
	RunE:    runDate,
}

func init() {
	dateCmd.Flags().StringVar(&defaultValue, "default", "", "Starting date (YYYY-MM-DD, default today)")
	dateCmd.Flags().StringVar(&minDate, "min", "", "Earliest selectable date (YYYY-MM-DD)")
	dateCmd.Flags().StringVar(&maxDate, "max", "", "Latest selectable date (YYYY-MM-DD)")
	dateCmd.Flags().StringVar(&weekStart, "week-start", "sunday", "First day of the week")
}

// parseDate parses an optional YYYY-MM-DD flag value.
func parseDate(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", flag, value, err)
	}
	return &d, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), name) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid --week-start %q", name)
}

func runDate(cmd *cobra.Command, args []string) error {
	d := ask.NewDateSelect(args[0], options(cmd)...)

	start, err := parseDate("default", defaultValue)
	if err != nil {
		return err
	}
	if start != nil {
		d.StartingDate = *start
	}
	if d.Min, err = parseDate("min", minDate); err != nil {
		return err
	}
	if d.Max, err = parseDate("max", maxDate); err != nil {
		return err
	}
	if d.WeekStart, err = parseWeekday(weekStart); err != nil {
		return err
	}

	answer, err := d.Prompt()
	if err != nil {
		return err
	}
	printAnswer(cmd, answer.Format(time.DateOnly))
	return nil
}

var pathCmd = &cobra.Command{
	Use:   "path MESSAGE",
	Short: "Ask to pick a file or directory",
	Example: `  # A Go source file below the current directory
  ask path "Entry point?" --ext .go

  # A directory under /var
  ask path "Data directory?" --dir /var --directories`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := ask.NewPathSelect(args[0], options(cmd)...)
		p.StartDir = startDir
		p.Mode = ask.SelectFiles(extensions...)
		if directories {
			p.Mode = ask.SelectDirectories()
		}

		answer, err := p.Prompt()
		if err != nil {
			return err
		}
		printAnswer(cmd, answer)
		return nil
	},
}

func init() {
	pathCmd.Flags().StringVar(&startDir, "dir", "", "Directory to start in (default: working directory)")
	pathCmd.Flags().BoolVar(&directories, "directories", false, "Pick a directory instead of a file")
	pathCmd.Flags().StringSliceVar(&extensions, "ext", nil, "Only allow files with these extensions")
	pathCmd.MarkFlagsMutuallyExclusive("directories", "ext")
}

var editorCmd = &cobra.Command{
	Use:     "editor MESSAGE",
	Short:   "Ask for long text written in an editor",
	Example: `  ask editor "Release notes:" --ext md --editor "code --wait"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := ask.NewEditor(args[0], options(cmd)...)
		if fields := strings.Fields(editorCommand); len(fields) > 0 {
			e.EditorCommand, e.EditorArgs = fields[0], fields[1:]
		}
		e.FileExtension = fileExt
		e.PredefinedText = initialText
		e.Formatter = func(s string) string {
			return fmt.Sprintf("%d lines", strings.Count(s, "\n")+1)
		}

		answer, err := e.Prompt()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), answer)
		return nil
	},
}

func init() {
	editorCmd.Flags().StringVar(&editorCommand, "editor", "", "Editor command (default: $VISUAL or $EDITOR)")
	editorCmd.Flags().StringVar(&fileExt, "ext", ".txt", "Extension of the temporary file")
	editorCmd.Flags().StringVar(&initialText, "text", "", "Text the file starts with")
}
