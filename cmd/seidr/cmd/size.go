package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skaldic/seidr/pkg/records"
	"github.com/skaldic/seidr/pkg/wire"
)

// sizeCmd represents the size command
var sizeCmd = &cobra.Command{
	Use:   "size <tx|header|block> <hex>",
	Short: "Report the exact serialized size of a record",
	Long: `Decode a record and report the exact number of bytes its encoding
occupies, computed from the record rather than the input length.

Example:
  seidr size tx 0100000001...`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var rec wire.Serializable
		switch args[0] {
		case "tx":
			rec = &records.Transaction{}
		case "header":
			rec = &records.BlockHeader{}
		case "block":
			rec = &records.Block{}
		default:
			return fmt.Errorf("unknown record type %q (want tx, header or block)", args[0])
		}

		if err := decodeRecordArg(cmd, args[1], rec); err != nil {
			return err
		}
		size, err := wire.SizeOf(rec)
		if err != nil {
			return err
		}
		cmd.Printf("%d\n", size)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}
