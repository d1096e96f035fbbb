// Package evaluate computes the lowest pipeline output over a seed set.
//
// The default brute-force strategy splits the seed set into chunks, evaluates
// every seed of every chunk on a bounded pool of goroutines and keeps one
// partial minimum per chunk. The final answer is the minimum of the partials,
// so it does not depend on worker count, chunk size or scheduling.
//
// Cost is linear in the total number of seeds. For range seeds that number is
// the sum of all range lengths and dominates the run time.
//
// The interval strategy pushes whole ranges through the pipeline instead and
// must agree with brute force on every input. It is opt-in.
package evaluate
