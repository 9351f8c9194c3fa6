// Copyright 2026 The probkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist reads newline-separated numbers from stdin and describes their
// distribution: mean, variance, percentiles, a credible interval,
// and, with -html, a chart of the kernel density estimate.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/logrusorgru/aurora"

	"github.com/probkit/probkit/density"
	"github.com/probkit/probkit/dist"
)

var (
	htmlOut   = flag.String("html", "", "write an HTML chart of the density estimate to `file`")
	bandwidth = flag.Float64("bandwidth", 0, "KDE bandwidth (0 selects the default)")
)

func main() {
	flag.Parse()
	xs := readInput(os.Stdin)
	if len(xs) == 0 {
		fmt.Fprintln(os.Stderr, "no input values")
		os.Exit(1)
	}

	b := dist.PmfMaker[float64]{}.Builder()
	for _, x := range xs {
		b.Add(x, 1)
	}
	pmf, err := b.Finalize()
	check(err)
	pmf, err = pmf.Normalize()
	check(err)
	cdf := dist.NewCdf(pmf)

	fmt.Printf("N %d  mean %.6g  std dev %.6g  variance %.6g\n",
		len(xs), dist.Mean(pmf), math.Sqrt(dist.Variance(pmf)), dist.Variance(pmf))
	fmt.Println()

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		v, err := cdf.Percentile(float64(p) / 100)
		check(err)
		fmt.Printf("%8s %.6g\n", label, v)
	}
	fmt.Println()

	lo, hi, err := cdf.CredibleInterval(0.9)
	check(err)
	fmt.Println(aurora.Green(fmt.Sprintf("90%% credible interval [%.6g, %.6g]", lo, hi)))

	if *htmlOut != "" {
		kde := density.FromSamples(xs, *bandwidth)
		check(renderChart(kde, *htmlOut))
		fmt.Println(aurora.Blue("density chart written to " + *htmlOut))
	}
}

func renderChart(kde *density.KDE, path string) error {
	lo, hi := kde.Bounds()
	grid := density.Grid(lo, hi, 200)

	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title: "kernel density estimate",
	}))

	labels := make([]string, len(grid))
	items := make([]opts.LineData, len(grid))
	for i, x := range grid {
		labels[i] = strconv.FormatFloat(x, 'g', 4, 64)
		items[i] = opts.LineData{Value: kde.QueryDensity(x)}
	}
	line.SetXAxis(labels)
	line.AddSeries("density", items)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return line.Render(f)
}

func readInput(r io.Reader) []float64 {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		value, err := strconv.ParseFloat(scanner.Text(), 64)
		check(err)
		xs = append(xs, value)
	}
	check(scanner.Err())
	return xs
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
