package commands

import (
	"github.com/calebcase/oops"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Print a + b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parse(cmd, args)
			if err != nil {
				return err
			}

			output(cmd, xs[0].Add(xs[1]))

			return nil
		},
	}
}

func subCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub <a> <b>",
		Short: "Print a - b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parse(cmd, args)
			if err != nil {
				return err
			}

			output(cmd, xs[0].Sub(xs[1]))

			return nil
		},
	}
}

func mulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul <a> <b>",
		Short: "Print a * b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parse(cmd, args)
			if err != nil {
				return err
			}

			z, err := xs[0].Mul(xs[1])
			if err != nil {
				return oops.Trace(err)
			}

			output(cmd, z)

			return nil
		},
	}
}

func divmodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "divmod <a> <b>",
		Short: "Print the truncated quotient and remainder of a / b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parse(cmd, args)
			if err != nil {
				return err
			}

			div, mod, err := xs[0].DivMod(xs[1])
			if err != nil {
				return oops.Trace(err)
			}

			output(cmd, div, mod)

			return nil
		},
	}
}

func modaddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modadd <a> <b> <m>",
		Short: "Print (a + b) mod m",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parse(cmd, args)
			if err != nil {
				return err
			}

			z, err := xs[0].ModAdd(xs[1], xs[2])
			if err != nil {
				return oops.Trace(err)
			}

			output(cmd, z)

			return nil
		},
	}
}

func cmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Print -1, 0 or 1 as a is less than, equal to or greater than b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parse(cmd, args)
			if err != nil {
				return err
			}

			output(cmd, xs[0].Cmp(xs[1]))

			return nil
		},
	}
}
