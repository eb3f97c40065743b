package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/skaldic/seidr/pkg/wire"
)

// compactsizeCmd represents the compactsize command
var compactsizeCmd = &cobra.Command{
	Use:   "compactsize",
	Short: "Encode and decode CompactSize length prefixes",
}

var compactsizeEncodeCmd = &cobra.Command{
	Use:   "encode <value>",
	Short: "Encode a length as a CompactSize prefix",
	Long: `Encode a length or count in the CompactSize format and print the
hex bytes. Values above the configured ceiling are rejected.

Example:
  seidr compactsize encode 65535`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseUint(args[0], 0, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[0], err)
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		b := wire.NewBufferLimit(cfg.Codec.MaxMessageSize)
		if err := wire.WriteCompactSize(b, v); err != nil {
			return err
		}
		cmd.Printf("%x\n", b.Bytes())
		return nil
	},
}

var compactsizeDecodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode a CompactSize prefix from hex bytes",
	Long: `Decode a CompactSize length prefix from hex bytes. Non-canonical
encodings and values above the configured ceiling are rejected.

Example:
  seidr compactsize decode fdfd00`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("invalid hex: %w", err)
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		b := wire.NewBufferBytesLimit(raw, cfg.Codec.MaxMessageSize)
		v, err := wire.ReadCompactSize(b)
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
	compactsizeCmd.AddCommand(compactsizeEncodeCmd)
	compactsizeCmd.AddCommand(compactsizeDecodeCmd)
	rootCmd.AddCommand(compactsizeCmd)
}
