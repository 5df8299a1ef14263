// Package ui specifies custom controls for tview to assist in playing
// Jungle Chess in the terminal.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"jungle-engine/config"
	gm "jungle-engine/junglemg"
)

// BoardUI renders a position inside a tview Box, two characters per cell,
// rank 9 at the top. Terrain and piece colors come from the theme.
type BoardUI struct {
	Box *tview.Box
	Pos *gm.Position

	cfg      *config.Config
	lastMove gm.Move
}

func NewBoard(c *config.Config) *BoardUI {
	b := &BoardUI{
		Box:      tview.NewBox(),
		Pos:      gm.NewPosition(),
		cfg:      c,
		lastMove: gm.MoveNone,
	}
	b.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		b.draw(screen, x, y)
		return x, y + gm.BoardRows + 1, width, height - gm.BoardRows - 1
	})
	return b
}

// SetLastMove highlights the given move's destination square.
func (b *BoardUI) SetLastMove(m gm.Move) { b.lastMove = m }

func (b *BoardUI) draw(screen tcell.Screen, x, y int) {
	colors := b.cfg.Theme.Colors
	symbols := b.cfg.Theme.Symbols

	for row := 0; row < gm.BoardRows; row++ {
		screenY := y + (gm.BoardRows - 1 - row)
		screen.SetContent(x, screenY, rune('1'+row), nil, tcell.StyleDefault)
		for col := 0; col < gm.BoardCols; col++ {
			sq := gm.MakeSquare(row, col)
			ch, style := b.cell(sq, colors, symbols)
			screenX := x + 2 + col*2
			screen.SetContent(screenX, screenY, ch, nil, style)
			screen.SetContent(screenX+1, screenY, ' ', nil, style)
		}
	}
	for col := 0; col < gm.BoardCols; col++ {
		screen.SetContent(x+2+col*2, y+gm.BoardRows, rune('a'+col), nil, tcell.StyleDefault)
	}
}

func (b *BoardUI) cell(sq gm.Square, colors config.ConfigColors, symbols config.ConfigSymbols) (rune, tcell.Style) {
	bg := tcell.NewHexColor(int32(colors.LandColor))
	ch := symbols.Land
	switch gm.TerrainAt(sq) {
	case gm.Water:
		bg = tcell.NewHexColor(int32(colors.WaterColor))
		ch = symbols.Water
	case gm.TrapLight, gm.TrapDark:
		bg = tcell.NewHexColor(int32(colors.TrapColor))
		ch = symbols.Trap
	case gm.DenLight, gm.DenDark:
		bg = tcell.NewHexColor(int32(colors.DenColor))
		ch = symbols.Den
	}
	if b.lastMove != gm.MoveNone && sq == b.lastMove.To() {
		bg = tcell.NewHexColor(int32(colors.CursorColor))
	}

	style := tcell.StyleDefault.Background(bg)
	if rk, c := b.Pos.At(sq); rk != gm.NoRank {
		ch = rune(gm.PieceChar(rk, c))
		fg := tcell.NewHexColor(int32(colors.LightColor))
		if c == gm.Dark {
			fg = tcell.NewHexColor(int32(colors.DarkColor))
		}
		style = style.Foreground(fg).Bold(true)
	}
	return ch, style
}
