package commands

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/orgball2608/story-fixtures/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/fx"
)

const stopTimeout = 10 * time.Second

// Without a subcommand the root behaves like generate, so
// `storyfixtures 3 5` keeps working.
var rootCmd = &cobra.Command{
	Use:           "storyfixtures [userCount] [storyCount]",
	Short:         "storyfixtures generates, serves and fetches story fixture data.",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func ExecuteContext(ctx context.Context) {
	err := execute(ctx, os.Args[1:])
	logger.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execute(ctx context.Context, args []string) error {
	rootCmd.SetArgs(positionalNegatives(args))
	return rootCmd.ExecuteContext(ctx)
}

var negativeNumber = regexp.MustCompile(`^-\d+$`)

// positionalNegatives keeps pflag from reading a negative count such as -5
// as a shorthand flag. The token gets a leading space, which pflag treats
// as a positional and ParseCounts trims away. Values of flags that take an
// argument are left alone.
func positionalNegatives(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = arg
		if arg == "--" {
			copy(out[i:], args[i:])
			break
		}
		if negativeNumber.MatchString(arg) && (i == 0 || !takesValue(args[i-1])) {
			out[i] = " " + arg
		}
	}
	return out
}

// takesValue reports whether arg is a flag without an inline value whose
// next token is consumed as that value.
func takesValue(arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") || negativeNumber.MatchString(arg) {
		return false
	}

	name := strings.TrimLeft(arg, "-")
	if name == "" {
		return false
	}
	lookup := func(fs *pflag.FlagSet) *pflag.Flag {
		if strings.HasPrefix(arg, "--") {
			return fs.Lookup(name)
		}
		return fs.ShorthandLookup(name[len(name)-1:])
	}

	for _, cmd := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		if f := lookup(cmd.Flags()); f != nil {
			return f.NoOptDefVal == ""
		}
	}
	return false
}

func stopApp(app *fx.App) {
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to stop application:", err)
	}
}
