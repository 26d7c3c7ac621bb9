package repl

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// palette holds the colors used for the different kinds of output.
type palette struct {
	result *color.Color
	array  *color.Color
	err    *color.Color
}

func newPalette(on bool) *palette {
	p := &palette{
		result: color.New(color.FgGreen, color.Bold),
		array:  color.New(color.FgBlue),
		err:    color.New(color.FgRed),
	}
	if !on {
		p.result.DisableColor()
		p.array.DisableColor()
		p.err.DisableColor()
	}
	return p
}

// cellWidth is the approximate width of a table column, including borders.
const cellWidth = 8

// cmdShow prints the array as a table of positions and values, splitting it
// into blocks which fit the session's line width.
func (s *Session) cmdShow(args []string) error {
	if s.tree == nil {
		return ErrNoArray
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: show", ErrUsage)
	}
	values := s.tree.Values()
	perRow := max(1, (s.width-1)/cellWidth-1)
	table := tablewriter.NewWriter(s.out)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetRowLine(true)
	for start := 0; start < len(values); start += perRow {
		end := min(start+perRow, len(values))
		pos := []string{"pos"}
		val := []string{"value"}
		for i := start; i < end; i++ {
			pos = append(pos, strconv.Itoa(i))
			val = append(val, strconv.FormatInt(values[i], 10))
		}
		table.Append(pos)
		table.Append(val)
	}
	table.Render()
	return nil
}
