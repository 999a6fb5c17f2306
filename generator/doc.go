// Package generator writes random record files for exercising the verifier
// and the sorting pipeline it validates.
package generator
