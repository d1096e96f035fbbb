// Package pipeline chains stage tables into a single value transformation.
//
// A Pipeline is built once and then shared read-only; Apply is pure and safe
// for concurrent use. Image pushes whole seed ranges through the stages and
// backs the optional interval evaluation strategy.
package pipeline
