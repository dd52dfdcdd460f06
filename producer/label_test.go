package producer_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/arrinit/arr"
	"github.com/katalvlaran/arrinit/producer"
)

type sku string

// LabelSuite drives the label producers through the arr builders.
type LabelSuite struct {
	suite.Suite
}

// TestExcelColumnBoundaries checks every rollover up to three letters.
func (s *LabelSuite) TestExcelColumnBoundaries() {
	cols := arr.Build(703, producer.ExcelColumn)
	require.Equal(s.T(), "A", cols[0])
	require.Equal(s.T(), "Z", cols[25])
	require.Equal(s.T(), "AA", cols[26])
	require.Equal(s.T(), "AB", cols[27])
	require.Equal(s.T(), "AZ", cols[51])
	require.Equal(s.T(), "BA", cols[52])
	require.Equal(s.T(), "ZZ", cols[701])
	require.Equal(s.T(), "AAA", cols[702])

	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		require.False(s.T(), seen[c], "duplicate column %q", c)
		seen[c] = true
	}
}

// TestExcelColumnNegative rejects indices below zero.
func (s *LabelSuite) TestExcelColumnNegative() {
	require.Panics(s.T(), func() { producer.ExcelColumn(-1) })
}

// TestPrefixedDefinedType builds keys of a defined string type.
func (s *LabelSuite) TestPrefixedDefinedType() {
	keys := arr.Make[[3]sku](producer.Prefixed[sku]("sku-"))
	require.Equal(s.T(), [3]sku{"sku-0", "sku-1", "sku-2"}, keys)

	var names [2]string
	arr.Fill(&names, producer.Prefixed("s"))
	require.Equal(s.T(), [2]string{"s0", "s1"}, names)
}

// TestPrefixedWidthSorts keeps labels equal-length and index-ordered.
func (s *LabelSuite) TestPrefixedWidthSorts() {
	ids := arr.Build(12, producer.PrefixedWidth("id", 2))
	require.Equal(s.T(), "id00", ids[0])
	require.Equal(s.T(), "id11", ids[11])
	require.True(s.T(), sort.StringsAreSorted(ids))
}

// TestPrefixedWidthOverflow fails at the first index that does not fit and
// releases everything built before it.
func (s *LabelSuite) TestPrefixedWidthOverflow() {
	var released []sku
	require.Panics(s.T(), func() {
		arr.Build(11, producer.PrefixedWidth[sku]("x", 1), arr.WithRelease(func(_ int, v sku) {
			released = append(released, v)
		}))
	})
	require.Len(s.T(), released, 10)
	require.Equal(s.T(), sku("x9"), released[0])
	require.Equal(s.T(), sku("x0"), released[9])
}

// TestLabelConstructorPanics covers fast-fail arguments.
func (s *LabelSuite) TestLabelConstructorPanics() {
	require.Panics(s.T(), func() { producer.PrefixedWidth("id", 0) })
	require.Panics(s.T(), func() { producer.Prefixed("s")(-1) })
	require.Panics(s.T(), func() { producer.PrefixedWidth("id", 3)(-1) })
}

// TestLabelSuite runs LabelSuite.
func TestLabelSuite(t *testing.T) {
	suite.Run(t, new(LabelSuite))
}
