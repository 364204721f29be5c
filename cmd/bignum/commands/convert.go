package commands

import (
	"strconv"

	"github.com/calebcase/oops"
	"github.com/spf13/cobra"

	"github.com/calebcase/bignum"
)

func lshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsh <a> <bits>",
		Short: "Print a shifted left by bits",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parse(cmd, args[:1])
			if err != nil {
				return err
			}

			n, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return oops.Trace(err)
			}

			output(cmd, xs[0].Lsh(uint(n)))

			return nil
		},
	}
}

func bitlenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bitlen <a>",
		Short: "Print the bit length, byte length and leading zero bits of a",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parse(cmd, args)
			if err != nil {
				return err
			}

			output(cmd, xs[0].BitLength(), xs[0].ByteLength(), xs[0].ZeroBits())

			return nil
		},
	}
}

func fromIntCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-int <n>",
		Short: "Print a decimal integer as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return oops.Trace(err)
			}

			x, err := bignum.FromInt64(n)
			if err != nil {
				return oops.Trace(err)
			}

			output(cmd, x)

			return nil
		},
	}
}

func fromUTFCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-utf <text>",
		Short: "Print the UTF-8 bytes of text as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output(cmd, bignum.FromUTF(args[0]))

			return nil
		},
	}
}

func toUTFCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-utf <a>",
		Short: "Print the magnitude of a as UTF-8 text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parse(cmd, args)
			if err != nil {
				return err
			}

			s, err := xs[0].UTF()
			if err != nil {
				return oops.Trace(err)
			}

			output(cmd, s)

			return nil
		},
	}
}

func fromBytesCmd() *cobra.Command {
	var littleEndian bool

	cmd := &cobra.Command{
		Use:   "from-bytes <hex>",
		Short: "Print raw bytes as a big-endian value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parse(cmd, args)
			if err != nil {
				return err
			}

			order := bignum.BigEndian
			if littleEndian {
				order = bignum.LittleEndian
			}

			output(cmd, bignum.FromBytes(xs[0].Bytes(), order))

			return nil
		},
	}

	cmd.Flags().BoolVar(&littleEndian, "little-endian", false, "treat the bytes as least significant first")

	return cmd
}
