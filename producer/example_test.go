package producer_test

import (
	"fmt"

	"github.com/katalvlaran/arrinit/arr"
	"github.com/katalvlaran/arrinit/producer"
)

// ExamplePrefixed builds distinct owned labels.
func ExamplePrefixed() {
	var ids [3]string
	arr.Fill(&ids, producer.Prefixed("s"))
	fmt.Printf("%q\n", ids)
	// Output:
	// ["s0" "s1" "s2"]
}

// ExampleExcelColumn names spreadsheet columns.
func ExampleExcelColumn() {
	fmt.Println(arr.Build(4, producer.ExcelColumn))
	// Output:
	// [A B C D]
}

// ExampleStep produces an arithmetic progression.
func ExampleStep() {
	fmt.Println(arr.Make[[4]int](producer.Step(10, -3)))
	// Output:
	// [10 7 4 1]
}
