package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sarchlab/bankhash/conflictstats"
	"github.com/sarchlab/bankhash/mapping"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Replay strided access patterns through a bank mapper and report conflicts",
	Run: func(cmd *cobra.Command, args []string) {
		runSweep(cmd)
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().Uint64("num-banks", 32,
		"number of banks (power of two)")
	sweepCmd.Flags().Uint64("interleaving-size", 256,
		"bytes per bank before moving to the next (power of two)")
	sweepCmd.Flags().String("hash", "ipoly",
		"hash function: none, bitwise, ipoly, or pae")
	sweepCmd.Flags().UintSlice("stride", []uint{256, 1024, 8192, 65536},
		"byte strides to sweep")
	sweepCmd.Flags().Uint64("accesses", 4096,
		"accesses replayed per stride")
	sweepCmd.Flags().String("db", "",
		"record results into this SQLite database")
}

func runSweep(cmd *cobra.Command) {
	numBanks, _ := cmd.Flags().GetUint64("num-banks")
	interleavingSize, _ := cmd.Flags().GetUint64("interleaving-size")
	hashName, _ := cmd.Flags().GetString("hash")
	strideFlags, _ := cmd.Flags().GetUintSlice("stride")
	accesses, _ := cmd.Flags().GetUint64("accesses")
	dbPath, _ := cmd.Flags().GetString("db")

	kind, err := mapping.ParseHashKind(hashName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	strides := make([]uint64, 0, len(strideFlags))
	for _, s := range strideFlags {
		strides = append(strides, uint64(s))
	}

	mapper := buildMapper(kind, numBanks, interleavingSize)

	results := conflictstats.RunStrideSweep(mapper, conflictstats.SweepConfig{
		Mapper:   kind.String(),
		NumBanks: numBanks,
		Strides:  strides,
		Accesses: accesses,
	})

	printResults(results)

	if cmd.Flags().Changed("db") {
		recorder := conflictstats.NewRecorder(dbPath)
		for _, result := range results {
			recorder.Record(result)
		}
		recorder.Flush()
	}
}

func buildMapper(
	kind mapping.HashKind,
	numBanks, interleavingSize uint64,
) mapping.BankMapper {
	if kind == mapping.HashNone {
		return &mapping.InterleavedBankMapper{
			InterleavingSize: interleavingSize,
			NumBanks:         numBanks,
		}
	}

	return mapping.MakeBuilder().
		WithNumBanks(numBanks).
		WithInterleavingSize(interleavingSize).
		WithHashKind(kind).
		Build()
}

func printResults(results []conflictstats.SweepResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w,
		"MAPPER\tBANKS\tSTRIDE\tACCESSES\tTOUCHED\tBUSIEST\tCONFLICT")

	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%.2f\n",
			r.Mapper, r.NumBanks, r.Stride, r.Accesses,
			r.BanksTouched, r.BusiestCount, r.ConflictFactor)
	}

	w.Flush()
}
