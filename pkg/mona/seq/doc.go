// Package seq works on collections and streams of containers. It is built
// on the public factories and accessors of option, either and try only.
//
// Common usage:
// - FirstOrNone/Find/Choose/Somes: pick values out of slices
// - Traverse/Sequence/TraverseAsync: all-or-nothing collection of Options
// - Partition/Lefts/Rights: split slices of Either
// - ToChan/FromChan/FirstFromChan/MapStream: channel plumbing with a fixed
//   number of worker lines
//
// Runtime knobs travel in the context: WithWorkers bounds concurrency and
// WithLogger receives debug records about dropped stream items.
package seq
