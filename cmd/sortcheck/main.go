// Command sortcheck validates the output of the sorting pipeline.
//
// With one file it verifies the records are non-decreasing by key; with two
// files it additionally verifies both contain the same record sequence.
// Exit status is 0 on success and 1 on any verification or usage failure.
package main

import (
	"fmt"
	"os"

	"github.com/davidvella/sortcheck/recordio"
	"github.com/davidvella/sortcheck/verify"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	switch len(args) {
	case 1:
		return reportFile(verify.File(args[0]))
	case 2:
		return reportCompare(verify.Compare(args[0], args[1]))
	default:
		usage()
		return 1
	}
}

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  sortcheck <file1> [file2]")
	fmt.Println("  - If one file: verify it's sorted")
	fmt.Println("  - If two files: compare they're identical and sorted")
}

func reportFile(r verify.FileReport) int {
	fmt.Printf("Verifying %s...\n", r.Path)
	printWarnings(r.Warnings)
	if r.Err != nil {
		fmt.Printf("Error: %v\n", r.Err)
		return 1
	}
	fmt.Printf("Read %d records\n", r.Records)
	if !r.Sorted() {
		printInversion(*r.Inversion)
		fmt.Println("File is not properly sorted")
		return 1
	}
	fmt.Println("File is properly sorted")
	return 0
}

func reportCompare(r verify.CompareReport) int {
	fmt.Printf("Comparing %s and %s...\n", r.A.Path, r.B.Path)

	failed := false
	for _, fr := range []verify.FileReport{r.A, r.B} {
		printWarnings(fr.Warnings)
		if fr.Err != nil {
			fmt.Printf("Error: %v\n", fr.Err)
			failed = true
		}
	}

	if r.CountMismatch {
		fmt.Printf("Error: different number of records (%d vs %d)\n", r.A.Records, r.B.Records)
		return 1
	}
	if failed {
		return 1
	}

	for _, fr := range []verify.FileReport{r.A, r.B} {
		if !fr.Sorted() {
			printInversion(*fr.Inversion)
			fmt.Printf("Error: %s is not properly sorted\n", fr.Path)
			return 1
		}
	}

	for _, m := range r.Mismatches {
		switch m.Field {
		case verify.FieldKey:
			fmt.Printf("Key mismatch at record %d: %d vs %d\n", m.Index, m.A.Key, m.B.Key)
		case verify.FieldPayload:
			fmt.Printf("Payload mismatch at record %d (key %d)\n", m.Index, m.A.Key)
		}
	}
	if r.Truncated {
		fmt.Println("Too many mismatches, stopping comparison...")
	}
	if len(r.Mismatches) > 0 {
		fmt.Printf("Found %d mismatches\n", len(r.Mismatches))
		return 1
	}

	fmt.Println("Files are identical and properly sorted")
	return 0
}

func printInversion(inv verify.Inversion) {
	fmt.Printf("Records not sorted at position %d\n", inv.Index)
	fmt.Printf("  Previous key: %d\n", inv.Prev)
	fmt.Printf("  Current key: %d\n", inv.Key)
}

func printWarnings(warnings []recordio.Warning) {
	for _, w := range warnings {
		fmt.Println(w)
	}
}
