// Package vybiumfriiop is the public facade over a FRI (Fast
// Reed-Solomon Interactive Oracle Proof of Proximity) commitment scheme
// and the PLONK-style sub-protocols that reduce to it.
//
// # Features
//
// - Prime-field arithmetic over Goldilocks and a ~251-bit STARK field
// - Radix-2 NTT and FFT-backed polynomial arithmetic
// - BLAKE3 Merkle commitment over blown-up evaluations
// - Non-interactive FRI prover/verifier with authentication paths
// - zero_test, product_check, permutation_check and their variants
//
// # Quick Start
//
// Proving and verifying an evaluation claim about a polynomial:
//
//	p := vybiumfriiop.PolynomialFromUint64(vybiumfriiop.Goldilocks, []uint64{1, 5, 5, 1, 10, 9, 0, 88})
//	proof, err := vybiumfriiop.EvaluationProof(p, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if proof.Verify(vybiumfriiop.Goldilocks) != vybiumfriiop.ValidProof {
//		log.Fatal("proof failed to verify")
//	}
//
// # Architecture
//
// - pkg/vybium-fri-iop/: public API (this package)
// - internal/vybium-fri-iop/: private implementation (not importable)
//
// The public API is a thin surface over internal/vybium-fri-iop/{field,
// domain, ntt, poly, merkle, fri, plonk}; implementation details there can
// be refactored without breaking this package's exported names.
package vybiumfriiop
