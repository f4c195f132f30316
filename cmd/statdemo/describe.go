package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FooBarShebang/statistics-lib-sub001/statistics"
)

const barWidth = 40

func newDescribeCommand(root *rootOptions) *cobra.Command {
	var bins int

	cmd := &cobra.Command{
		Use:   "describe FILE [FILE]",
		Short: "Summarize one sample, or a paired sample from two files",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			first, err := root.load(args[0])
			if err != nil {
				return err
			}
			x, err := statistics.FromSequence(first)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				fmt.Fprint(out, x.Summary())
				return printHistogram(out, x, bins)
			}

			second, err := root.load(args[1])
			if err != nil {
				return err
			}
			p, err := statistics.FromSequences(first, second)
			if err != nil {
				return err
			}
			p.SetName(first.Name + " / " + second.Name)
			fmt.Fprint(out, p.Summary())
			return nil
		},
	}
	cmd.Flags().IntVar(&bins, "bins", 10, "Histogram bins (0 disables the histogram)")
	return cmd
}

func printHistogram(out io.Writer, s *statistics.Statistics1D, bins int) error {
	if bins == 0 || s.Min() == s.Max() {
		return nil
	}
	hist, err := s.Histogram(bins)
	if err != nil {
		return err
	}
	peak := 0
	for _, b := range hist {
		peak = max(peak, b.Count)
	}
	fmt.Fprintln(out, "Histogram:")
	for _, b := range hist {
		bar := strings.Repeat("#", b.Count*barWidth/peak)
		fmt.Fprintf(out, "  %10.4g | %-*s %d\n", b.Center, barWidth, bar, b.Count)
	}
	return nil
}
