// Package verify is the correctness oracle for the sorting pipeline's
// output files. It checks that a file's records are non-decreasing by key
// and, given two files, that they hold the same sequence of records.
//
// All checks return typed reports rather than printing or exiting; the
// sortcheck command renders them and maps the verdict to an exit code.
package verify
