package main

import (
	"fmt"
	"time"

	"github.com/automoto/dronefall/sim"
	"github.com/gdamore/tcell/v2"
)

// World units covered by one character cell. Cells are about twice as tall
// as they are wide.
const (
	cellWidth  = 16.0
	cellHeight = 32.0
	hudRows    = 1
)

var (
	stylePlayer      = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleDowned      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSwarm       = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHunter      = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleTelegraph   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)
	stylePlayerShot  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHostileShot = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleWreck       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHUD         = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// project maps a world position to a cell of a cols x rows field whose top
// left corner sits at the camera. ok is false outside the field.
func project(x, y, camX, camY float64, cols, rows int) (col, row int, ok bool) {
	col = int((x - camX) / cellWidth)
	row = int((y - camY) / cellHeight)
	if x < camX || y < camY || col >= cols || row >= rows {
		return 0, 0, false
	}
	return col, row, true
}

func glyph(v sim.EntityView, downed bool) (rune, tcell.Style) {
	switch v.Kind {
	case sim.ViewPlayer:
		if downed {
			return 'X', styleDowned
		}
		return '@', stylePlayer
	case sim.ViewSwarm:
		return 'x', styleSwarm
	case sim.ViewHunter:
		if v.Telegraphing {
			return 'H', styleTelegraph
		}
		return 'H', styleHunter
	case sim.ViewPlayerShot:
		return '·', stylePlayerShot
	case sim.ViewHostileShot:
		return '*', styleHostileShot
	case sim.ViewWreck:
		return '%', styleWreck
	}
	return '?', tcell.StyleDefault
}

func hudLine(st sim.Stats) string {
	line := fmt.Sprintf(" HP %3.0f/%-3.0f  kills %-5d hostiles %-4d %s  %4.0f fps",
		st.Health, st.MaxHealth, st.Kills, st.Hostiles,
		(time.Duration(st.ElapsedMs) * time.Millisecond).Truncate(time.Second), st.FPS)
	if st.Downed {
		line += "  DOWNED - q to quit"
	}
	return line
}

func drawHUD(screen tcell.Screen, st sim.Stats, cols int) {
	line := []rune(hudLine(st))
	for col := 0; col < cols; col++ {
		r := ' '
		if col < len(line) {
			r = line[col]
		}
		screen.SetContent(col, 0, r, nil, styleHUD)
	}
}
