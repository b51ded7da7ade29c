/*
Package stages implements the stage combinators behind package query: small
objects that wrap one or two upstream sequences and compose into a single
lazy evaluation graph.

Every combinator returns a [Sequence] whose Seq method is Go's push-style
iterator: elements flow downstream one at a time, the yield continuation flag
flows back upstream, and no stage buffers more than its own algorithm
requires. The documented exceptions that must materialize their upstream are
[SortedBy], [TakeLast], the [Thru] family (Reverse, Shuffle, Sample, Random)
and [Memoize].

Stateful stages (the seen-set in [DistinctBy], the sort buffer in [SortedBy],
the ring in [FatMap]) rebuild their state on every call to Seq, so
re-iterating a pipeline never observes a previous traversal's leftovers.
[Memoize] is the deliberate exception: it captures one traversal and replays
it.

Selectors and predicates supplied by the caller are assumed not to fail; a
panic inside one propagates unmodified through every wrapping stage.
*/
package stages
