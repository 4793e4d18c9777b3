// Command datefmt parses and formats date-times using human-writable
// format specifications ("YYYY-MM-DD hh:mm:ss").
package main

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/c2nes/dateformat"
)

type app struct {
	spec        string
	formatsFile string
	hours       int
	verbose     bool

	log *zap.Logger
}

func (a *app) setup() error {
	a.log = zap.NewNop()
	if a.verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		a.log = log
	}
	return nil
}

func (a *app) compile() (*dateformat.DateFormat, error) {
	spec, err := a.resolveSpec()
	if err != nil {
		return nil, err
	}
	var opts []dateformat.Option
	switch a.hours {
	case 0:
	case 12:
		opts = append(opts, dateformat.With24Hour(false))
	case 24:
		opts = append(opts, dateformat.With24Hour(true))
	default:
		return nil, fmt.Errorf("--hours must be 12 or 24, got %d", a.hours)
	}
	df, err := dateformat.New(spec, opts...)
	if err != nil {
		return nil, err
	}
	a.log.Debug("compiled format",
		zap.String("spec", spec),
		zap.String("pattern", df.Pattern()),
		zap.Bool("is24hour", df.Is24Hour()))
	return df, nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "datefmt",
		Short: "Parse and format date-times with human-writable specs",
		Long: `datefmt compiles a date format specification such as
"YYYY-MM-DD hh:mm:ss" and uses it to parse date text into a canonical
representation, or to render a date-time as text.

The --spec flag accepts a raw specification, a built-in alias
(iso-date, iso-time, iso-datetime, basic-date, basic-time), or a name
defined in the YAML file given via --formats.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVarP(&a.spec, "spec", "s", "", `format specification or alias (e.g. "DD/MM/YYYY")`)
	root.PersistentFlags().StringVar(&a.formatsFile, "formats", "", "YAML file with named format aliases")
	root.PersistentFlags().IntVar(&a.hours, "hours", 0, "force 12 or 24 hour mode instead of inferring it")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newParseCmd(a), newFormatCmd(a), newTokensCmd(a))
	return root
}

func newParseCmd(a *app) *cobra.Command {
	var defaultIn string
	cmd := &cobra.Command{
		Use:   "parse [text]...",
		Short: "Extract a date-time from text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := a.compile()
			if err != nil {
				return err
			}
			input := strings.Join(args, " ")

			var t time.Time
			if defaultIn != "" {
				def, err := time.Parse(time.RFC3339, defaultIn)
				if err != nil {
					return fmt.Errorf("invalid --default value: %w", err)
				}
				t, err = df.ParseDefault(input, def)
				if err != nil {
					return err
				}
			} else {
				t, err = df.Parse(input)
				if err != nil {
					return err
				}
			}
			printTime(cmd, t)
			return nil
		},
	}
	cmd.Flags().StringVar(&defaultIn, "default", "", "RFC3339 fallback returned for non-matching input")
	return cmd
}

func newFormatCmd(a *app) *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Render a date-time with the given spec",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := a.compile()
			if err != nil {
				return err
			}
			t := time.Now()
			if in != "" {
				t, err = time.Parse(time.RFC3339Nano, in)
				if err != nil {
					return fmt.Errorf("invalid --in value: %w", err)
				}
			}
			out, err := df.Format(t)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "RFC3339 date-time to format (default: now)")
	return cmd
}

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "Show the compiled token sequence and matching pattern",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := a.compile()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, tok := range df.Tokens() {
				fmt.Fprintf(out, "%q\n", tok)
			}
			fmt.Fprintln(out, df.Pattern())
			return nil
		},
	}
}

func printTime(cmd *cobra.Command, t time.Time) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t.Format(time.RFC3339Nano))
	fmt.Fprintln(out, t.UTC().Format(time.RFC3339Nano))
	fmt.Fprintf(out, "s\t%d\n", t.Unix())
	fmt.Fprintf(out, "ms\t%d\n", t.UnixMilli())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
