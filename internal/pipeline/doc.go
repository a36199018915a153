// Package pipeline runs the swatch stages in sequence.
//
// A run is fetch, then extract, then rank. Each stage is a Step that
// receives the current model.ColorReport and fills in its part. Keeping the
// stages behind one interface gives them uniform logging, error recording
// and cancellation checks, and lets tests swap the network stage for a stub.
//
// Steps run one after another on the calling goroutine. The first failing
// step stops the run; its error is recorded in the report and returned.
package pipeline
