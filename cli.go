/*
 *  cli.go
 *  smfclust
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package smfclust

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var verbose bool

// banner prints the separate steps
func banner(message string) {
	message = "* " + message + " *"
	log.Notice(strings.Repeat("*", len(message)))
	log.Notice(message)
	log.Notice(strings.Repeat("*", len(message)))
}

// newRootCmd wires every subcommand
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "smfclust",
		Short: "Cluster single-molecule footprints over a genomic region",
		Long: `smfclust: nucleosome configurations from single-molecule footprinting

Takes single molecule analysis results in a bed format, usually from
cawlr sma, and performs k-means clustering to determine different
nucleosome configurations in a given region.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			SetVerbose(verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print debug messages")
	rootCmd.AddCommand(newClusterCmd(), newSplitStrandCmd())
	return rootCmd
}

// newClusterCmd builds the `cluster` subcommand
func newClusterCmd() *cobra.Command {
	c := NewConfig("", 0, 0)
	cmd := &cobra.Command{
		Use:   "cluster -i reads.bed -s start -e end [options]",
		Short: "Separate reads over a region into k groups",
		Long: `Cluster function:
Every read is converted into a vector over the region: 1 for nucleosome,
0 for linker and missing where the read has no data. Reads covering more
than --pct of the region are clustered with k-means, missing positions are
imputed with --sentinel. Each cluster is written as a bed track
(cluster{k}.{name}.bed), a matrix for plotting (cluster{k}.{name}.npy),
plus a summary ({name}.cluster.json).

Highlights are given as {start}-{end}:{strand}, e.g. --highlight 1200-1800:+
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			banner(fmt.Sprintf("Cluster reads into %d groups", c.K))
			p := Partitioner{Config: c}
			return p.Run()
		},
	}
	cmd.Flags().StringVarP(&c.Input, "input", "i", "", "Input bed file, usually from cawlr sma")
	cmd.Flags().IntVarP(&c.Start, "start", "s", 0, "Start of region")
	cmd.Flags().IntVarP(&c.End, "end", "e", 0, "End of region")
	cmd.Flags().StringVarP(&c.Chrom, "chrom", "c", "", "Chromosome of region, reads elsewhere are dropped")
	cmd.Flags().Float64VarP(&c.Threshold, "pct", "p", c.Threshold,
		"Percent of the region that should be covered for a read to be valid")
	cmd.Flags().IntVarP(&c.K, "n-clusters", "n", c.K, "Number of clusters")
	cmd.Flags().StringSliceVar(&c.Highlights, "highlight", nil,
		"Highlight particular regions, usually gene bodies, format is {start}-{end}:{strand}")
	cmd.Flags().Int64Var(&c.Seed, "seed", c.Seed, "Random seed for k-means initialization")
	cmd.Flags().Float64Var(&c.Sentinel, "sentinel", c.Sentinel, "Value replacing missing positions before clustering")
	cmd.Flags().IntVar(&c.MaxIter, "max-iter", c.MaxIter, "Maximum iterations of a single k-means run")
	cmd.Flags().IntVar(&c.NInit, "n-init", c.NInit, "Number of k-means runs with different seeds")
	cmd.Flags().StringVar(&c.Strand, "strand", "", "Only cluster reads on this strand (+ or -)")
	cmd.Flags().StringVar(&c.Title, "suptitle", c.Title, "Figure title")
	cmd.Flags().StringVarP(&c.OutDir, "outdir", "o", "", "Output directory (default: directory of input)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

// newSplitStrandCmd builds the `split-strand` subcommand
func newSplitStrandCmd() *cobra.Command {
	s := StrandSplitter{}
	cmd := &cobra.Command{
		Use:   "split-strand -i reads.bed [options]",
		Short: "Split reads into plus, minus and unknown strand tracks",
		Long: `Split-strand function:
Writes {name}.plus.bed, {name}.minus.bed and {name}.none.bed, each a bed
track holding the reads of that strand, so that each strand can be
clustered on its own.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			banner("Split reads by strand")
			return s.Run()
		},
	}
	cmd.Flags().StringVarP(&s.Bedfile, "input", "i", "", "Input bed file")
	cmd.Flags().StringVarP(&s.OutDir, "outdir", "o", "", "Output directory (default: directory of input)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// Execute runs the command line interface
func Execute() error {
	return newRootCmd().Execute()
}

// Main runs the command line interface on args and returns the exit code,
// errors are reported through the logger
func Main(args []string) int {
	if err := ExecuteArgs(args); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}

// ExecuteArgs runs the command line interface on args, for testing
func ExecuteArgs(args []string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
