/*
Package query provides a lazy, composable query interface over in-memory
sequences: relational-style operators (filter, project, flatten, join, sort,
windowing, set operations, aggregation) chained fluently over any slice or
iter.Seq source.

A pipeline is built by wrapping a source with [From] or [Of] and chaining
operators. Nothing is evaluated until a terminal (ToSlice, Count, First,
ForEach, ...) or a range loop drives the pipeline, and no intermediate
collection is materialized except by the operators that inherently need one
(ordering, reversal, sampling, the take-last family).

	evens := query.Of(1, 2, 3, 4, 5, 6).
		Where(func(n int) bool { return n%2 == 0 }).
		Take(2).
		ToSlice() // [2 4]

Operators that change the element type, or constrain it, are package-level
functions because Go methods cannot introduce type parameters:

	names := query.Select(people, func(p Person) string { return p.Name })
	byAge := query.OrderBy(people, func(p Person) int { return p.Age })
	byAgeName := query.ThenBy(byAge, func(p Person) string { return p.Name })

A Query value is immutable: every operator returns a new Query, and a Query
can be branched into several pipelines that share upstream stages without
interfering. Stages with per-traversal state rebuild it on every iteration,
so iterating the same pipeline twice recomputes everything unless a
[Query.Memoize] stage pins one traversal's results.
*/
package query
