// Command vybium-fri-prover is a small CLI demo of the FRI evaluation
// proof pipeline: build a Goldilocks polynomial from coefficients passed
// on the command line, run the non-interactive prover, and verify the
// resulting proof.
package main

import (
	"fmt"
	"os"
	"strconv"

	vybiumfriiop "github.com/vybium/vybium-fri-iop/pkg/vybium-fri-iop"
)

func main() {
	coefficients := []uint64{1, 5, 5, 1, 10, 9, 0, 88}
	if len(os.Args) > 1 {
		parsed, err := parseCoefficients(os.Args[1:])
		if err != nil {
			fatal(fmt.Sprintf("failed to parse coefficients: %v", err))
		}
		coefficients = parsed
	}

	logStderr(fmt.Sprintf("building polynomial with %d coefficients over Goldilocks", len(coefficients)))
	p := vybiumfriiop.PolynomialFromUint64(vybiumfriiop.Goldilocks, coefficients)

	logStderr("committing to polynomial")
	commitment, err := vybiumfriiop.Commit(p)
	if err != nil {
		fatal(fmt.Sprintf("failed to commit: %v", err))
	}
	fmt.Printf("commitment: %x\n", commitment.Value.Bytes())

	logStderr("generating FRI evaluation proof")
	proof, err := vybiumfriiop.EvaluationProof(p, nil)
	if err != nil {
		fatal(fmt.Sprintf("failed to generate evaluation proof: %v", err))
	}

	logStderr("verifying proof")
	result := proof.Verify(vybiumfriiop.Goldilocks)
	fmt.Printf("verification: %s\n", result.String())

	if !result.IsValid() {
		os.Exit(1)
	}
}

func parseCoefficients(args []string) ([]uint64, error) {
	out := make([]uint64, len(args))
	for i, a := range args {
		v, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "vybium-fri-prover:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
