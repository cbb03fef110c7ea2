// Package engine computes expense allocation and debt settlement for a trip.
//
// It is a pure read-and-compute pipeline with four components, in dependency
// order: Convert normalizes amounts into the trip's base currency,
// AllocateShares divides one expense among entities, CalculateBalances folds
// expenses and settlements into per-entity net balances, and
// CalculateOptimalSettlement reduces those balances to a short list of
// payments. No component performs I/O or mutates its inputs; identical inputs
// always produce identical outputs.
//
// All monetary comparisons use Tolerance (one cent) so floating-point drift in
// upstream data never produces phantom debts.
package engine
