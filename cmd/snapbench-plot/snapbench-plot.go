package main

import (
	"flag"
	"fmt"
	"log"

	bench "github.com/ph128/snapbench"
)

func main() {
	var (
		csvfile = flag.String("csv", "snapshot_bench.csv", "benchmark results CSV file")
		outdir  = flag.String("outdir", ".", "output directory for the generated images")
		title   = flag.String("title", bench.DefaultThroughputTitle, "title of the absolute throughput chart")
	)
	flag.Parse()

	rows := bench.MustReadRows(*csvfile)
	ix := bench.NewIndex(rows, bench.DefaultPair)
	timePNG, speedupPNG, throughputPNG := bench.OutputPaths(*csvfile, *outdir)

	if err := bench.PlotTimes(ix, timePNG); err != nil {
		log.Fatal(err)
	}
	if err := bench.PlotSpeedup(ix, speedupPNG); err != nil {
		log.Fatal(err)
	}
	if err := bench.PlotThroughput(ix, *title, throughputPNG); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Saved plots:")
	fmt.Println(" -", timePNG)
	fmt.Println(" -", speedupPNG)
	fmt.Println(" -", throughputPNG)
}
