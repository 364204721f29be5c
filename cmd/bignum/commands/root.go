package commands

import (
	"fmt"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/calebcase/bignum"
)

var debug bool

// NewRootCommand returns the bignum command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "bignum",
		Short:        "Arbitrary precision integer arithmetic on hex operands",
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "dump operands and results to stderr")

	root.AddCommand(
		addCmd(),
		subCmd(),
		mulCmd(),
		divmodCmd(),
		modaddCmd(),
		cmpCmd(),
		lshCmd(),
		bitlenCmd(),
		fromIntCmd(),
		fromUTFCmd(),
		toUTFCmd(),
		fromBytesCmd(),
	)

	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}

// parse converts hex arguments to values.
func parse(cmd *cobra.Command, args []string) (xs []*bignum.Int, err error) {
	for _, arg := range args {
		x, err := bignum.FromHex(arg)
		if err != nil {
			return nil, oops.Trace(err)
		}

		xs = append(xs, x)
	}

	dump(cmd, "operands", xs)

	return xs, nil
}

func dump(cmd *cobra.Command, label string, v ...interface{}) {
	if !debug {
		return
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s:\n%s", label, spew.Sdump(v...))
}

func output(cmd *cobra.Command, results ...interface{}) {
	dump(cmd, "results", results...)

	fmt.Fprintln(cmd.OutOrStdout(), results...)
}
