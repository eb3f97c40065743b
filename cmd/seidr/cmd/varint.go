package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/skaldic/seidr/pkg/wire"
)

// varintCmd represents the varint command
var varintCmd = &cobra.Command{
	Use:   "varint",
	Short: "Encode and decode variable-length integers",
}

var varintEncodeCmd = &cobra.Command{
	Use:   "encode <value>",
	Short: "Encode an unsigned integer as a varint",
	Long: `Encode an unsigned integer in the base-128 variable-length format
and print the hex bytes.

Example:
  seidr varint encode 65535`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseUint(args[0], 0, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[0], err)
		}

		b := wire.NewBuffer()
		wire.WriteVarUint(b, v)
		cmd.Printf("%x\n", b.Bytes())
		return nil
	},
}

var varintDecodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode a varint from hex bytes",
	Long: `Decode a base-128 variable-length integer from hex bytes and print
the value and the number of bytes it occupied.

Example:
  seidr varint decode 82fe7f`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("invalid hex: %w", err)
		}

		b := wire.NewBufferBytes(raw)
		v, err := wire.ReadVarUint(b)
		if err != nil {
			return err
		}
		cmd.Printf("value:  %d\n", v)
		cmd.Printf("length: %d\n", b.Pos())
		if b.Remaining() > 0 {
			cmd.Printf("trailing: %x\n", raw[b.Pos():])
		}
		return nil
	},
}

func init() {
	varintCmd.AddCommand(varintEncodeCmd)
	varintCmd.AddCommand(varintDecodeCmd)
	rootCmd.AddCommand(varintCmd)
}
