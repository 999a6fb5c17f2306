// Command recordgen writes a file of random records for testing the
// verifier and the sorting pipeline.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davidvella/sortcheck/generator"
)

var (
	out    = flag.String("o", "", "output file path")
	count  = flag.Int("n", 0, "number of records to generate")
	size   = flag.Int("size", 0, "fixed payload size in bytes (0 = random)")
	sorted = flag.Bool("sorted", false, "write records in ascending key order")
	seed   = flag.Int64("seed", generator.DefaultSeed, "random seed")
)

func main() {
	flag.Parse()
	if *out == "" || *count <= 0 {
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	n, err := generator.Generate(f, generator.Options{
		Count:       *count,
		PayloadSize: *size,
		Sorted:      *sorted,
		Seed:        *seed,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d records (%d bytes) in %s\n", *count, n, *out)
}
