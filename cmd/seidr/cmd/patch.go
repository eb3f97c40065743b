package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skaldic/seidr/pkg/wire"
)

// patchCmd represents the patch command
var patchCmd = &cobra.Command{
	Use:   "patch <hex> <op>...",
	Short: "Edit a byte buffer with insert and erase operations",
	Long: `Apply a sequence of edits to a byte buffer and print the result.

Operations are applied left to right:
  insert:<offset>:<hex>   splice bytes in at offset
  erase:<begin>:<end>     remove the bytes in [begin, end)

Example:
  seidr patch 00010203 insert:2:ffff erase:0:1`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("invalid hex: %w", err)
		}

		b := wire.NewBufferBytes(raw)
		for _, spec := range args[1:] {
			if err := applyPatchOp(b, spec); err != nil {
				return fmt.Errorf("op %q: %w", spec, err)
			}
		}
		cmd.Printf("%x\n", b.Bytes())
		return nil
	},
}

// applyPatchOp parses one op spec and applies it to b.
func applyPatchOp(b *wire.Buffer, spec string) error {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return fmt.Errorf("want op:arg:arg, got %d parts", len(parts))
	}

	switch parts[0] {
	case "insert":
		off, err := strconv.Atoi(parts[1])
		if err != nil {
			return fmt.Errorf("invalid offset %q: %w", parts[1], err)
		}
		p, err := hex.DecodeString(parts[2])
		if err != nil {
			return fmt.Errorf("invalid hex %q: %w", parts[2], err)
		}
		return b.Insert(off, p)
	case "erase":
		begin, err := strconv.Atoi(parts[1])
		if err != nil {
			return fmt.Errorf("invalid begin %q: %w", parts[1], err)
		}
		end, err := strconv.Atoi(parts[2])
		if err != nil {
			return fmt.Errorf("invalid end %q: %w", parts[2], err)
		}
		return b.Erase(begin, end)
	default:
		return fmt.Errorf("unknown op %q (want insert or erase)", parts[0])
	}
}

func init() {
	rootCmd.AddCommand(patchCmd)
}
