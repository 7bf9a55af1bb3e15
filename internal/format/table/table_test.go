package table

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"name", "kind"},
		{"Banana", "action"},
		{"ñu", "pick"},
	}
	out := Format(rows, []Alignment{AlignLeft, AlignLeft})
	require.Equal(t, []string{
		"name    kind  ",
		"Banana  action",
		"ñu      pick  ",
	}, out)
}

func TestFormatRightAlignment(t *testing.T) {
	out := Format([][]string{{"a", "1"}, {"b", "100"}}, []Alignment{AlignLeft, AlignRight})
	require.Equal(t, []string{"a    1", "b  100"}, out)
}

func TestFormatWideRunes(t *testing.T) {
	out := Format([][]string{{"日本", "x"}, {"abc", "y"}}, nil)
	require.Equal(t, []string{"日本  x", "abc   y"}, out)
}

func TestFormatRaggedRows(t *testing.T) {
	out := Format([][]string{{"a"}, {"b", "c"}}, nil)
	require.Equal(t, []string{"a   ", "b  c"}, out)
}

func TestFormatEmpty(t *testing.T) {
	require.Nil(t, Format(nil, nil))
}
