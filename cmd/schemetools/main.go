package main

import (
	"fmt"
	"os"

	"github.com/gubarz/schemetools/internal/config"
	"github.com/gubarz/schemetools/internal/markdown"
	"github.com/gubarz/schemetools/internal/reindent"
	"github.com/gubarz/schemetools/internal/report"
	"github.com/gubarz/schemetools/internal/syntaxtable"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var version = "0.2.0"

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

// bindFlag binds a config key to a flag. Viper only fails when the flag is
// nil, which means the flag name passed to Lookup is wrong.
func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind %s: %v", key, err))
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schemetools",
		Short: "Source filters for the scheme.c build",
		Long: `Text filters used while building scheme.c.

Filters read standard input and write standard output, except gensym
which rewrites the named file in place.`,
		Version: version,
	}

	rootCmd.PersistentFlags().StringVar(&config.File, "config", "", "Config file (default schemetools.yaml)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only print warnings")
	bindFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.AddCommand(newGenCmd(), newGensymCmd(), newFmtCmd(), newMdCmd())
	return rootCmd
}

func newGenCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "gen",
		Aliases: []string{"sym"},
		Short:   "Regenerate setup_syntax from stdin to stdout",
		Long: `Reads a C source on standard input, removes its setup_syntax block and
appends a new one registering every function annotated with

  void <name>(void) /* syntax: <keyword> */

sorted by keyword.`,
		Args: cobra.NoArgs,
		RunE: runGen,
	}
}

func runGen(cmd *cobra.Command, args []string) error {
	return syntaxtable.Filter(cmd.InOrStdin(), cmd.OutOrStdout())
}

func newGensymCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gensym <file>",
		Short: "Regenerate setup_syntax in place",
		Long: `Regenerates the setup_syntax block of the named file. The file is
only written when its content changes, so its modification time is left
alone on a no-op run.`,
		Args: cobra.ExactArgs(1),
		RunE: runGensym,
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Report what would change without writing")
	cmd.Flags().BoolP("diff", "d", false, "Print the line differences")
	return cmd
}

func runGensym(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	showDiff, _ := cmd.Flags().GetBool("diff")

	res, err := syntaxtable.RewriteFile(args[0], syntaxtable.Options{DryRun: dryRun})
	if err != nil {
		return fmt.Errorf("gensym: %w", err)
	}

	styles := report.DefaultStyles(cmd.ErrOrStderr())
	styles.LoadFromConfig()
	r := report.New(cmd.ErrOrStderr(), config.GetQuiet()).WithStyles(styles)
	if showDiff {
		r.Diff(res)
	}
	r.Result(res)
	return nil
}

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Convert leading spaces to tabs",
		Args:  cobra.NoArgs,
		RunE:  runFmt,
	}
	cmd.Flags().IntP("tab-width", "t", 4, "Spaces per tab")
	bindFlag("tab_width", cmd.Flags().Lookup("tab-width"))
	return cmd
}

func runFmt(cmd *cobra.Command, args []string) error {
	return reindent.Filter(cmd.InOrStdin(), cmd.OutOrStdout(), config.GetTabWidth())
}

func newMdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "md",
		Aliases: []string{"mkd"},
		Short:   "Convert a commented C source to Markdown",
		Long: `Comment lines become Markdown prose with the comment marker removed.
Runs of other lines become fenced code blocks.`,
		Args: cobra.NoArgs,
		RunE: runMd,
	}
	cmd.Flags().StringP("lang", "l", "c", "Language of the code fences")
	cmd.Flags().String("prefix", "//", "Comment prefix that marks prose")
	cmd.Flags().Bool("close-fences", false, "Also fence leading and trailing code")
	bindFlag("fence_lang", cmd.Flags().Lookup("lang"))
	bindFlag("comment_prefix", cmd.Flags().Lookup("prefix"))
	bindFlag("close_fences", cmd.Flags().Lookup("close-fences"))
	return cmd
}

func runMd(cmd *cobra.Command, args []string) error {
	opts := markdown.Options{
		CommentPrefix: config.GetCommentPrefix(),
		Lang:          config.GetFenceLang(),
		CloseFences:   config.GetCloseFences(),
	}
	return markdown.Filter(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
