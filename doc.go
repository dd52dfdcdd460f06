// Package arrinit builds fixed-length containers element by element, calling a
// producer function exactly once per index, in ascending order.
//
// What is arrinit?
//
//	Go can spell an array as a literal ([...]int{1, 2, 3}) or as the zero
//	value of its type (var a [4]T). There is no built-in form for "call f(i)
//	for every slot", and arrays cannot be generic over their length. arrinit
//	fills that gap with a handful of small generic helpers:
//		• arr.Build / arr.TryBuild  — runtime length, returns []T of exactly n
//		• arr.Make  / arr.TryMake   — length fixed by the array type: Make[[4]int](f)
//		• arr.Fill  / arr.TryFill   — length inferred from a destination array
//		• arr.Of                    — explicit value list, no producer involved
//
// Under the hood, everything is organized under two subpackages:
//
//	arr/      — the builder: ordering, exactly-once invocation, failure & release
//	producer/ — ready-made producers: labels, arithmetic steps, seeded random draws
//
// Quick example:
//
//	ids := arr.Build(3, producer.Prefixed("s")) // ["s0" "s1" "s2"]
//	var grid [4]int
//	arr.Fill(&grid, func(i int) int { return i * 2 }) // [0 2 4 6]
//
//	go get github.com/katalvlaran/arrinit
package arrinit
