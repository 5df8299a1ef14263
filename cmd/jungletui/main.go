// jungletui is a terminal application to play Jungle Chess against the
// engine. The human plays Light; moves are typed as coordinates (a3a4).
package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"jungle-engine/config"
	"jungle-engine/engine"
	gm "jungle-engine/junglemg"
	"jungle-engine/ui"
)

var (
	app      *tview.Application
	board    *ui.BoardUI
	infoView *tview.TextView
	hint     *tview.TextView
	search   *engine.Search
	cfg      *config.Config

	thinking bool
)

func main() {
	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		panic(err)
	}

	app = tview.NewApplication()
	board = ui.NewBoard(cfg)

	infoView = tview.NewTextView().SetScrollable(false)
	infoView.SetChangedFunc(func() { app.Draw() })
	infoView.SetBorder(true).SetTitle("engine")
	hint = tview.NewTextView()
	hint.SetText("Your move (e.g. a3a4). Esc quits.")

	search = engine.NewSearch(cfg.Engine.HashMB)
	search.SetOutput(infoView)

	input := tview.NewInputField().SetLabel("move> ")
	input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter || thinking {
			return
		}
		text := strings.TrimSpace(input.GetText())
		input.SetText("")
		playHumanMove(text)
	})

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(board.Box, gm.BoardRows+2, 0, false).
		AddItem(hint, 1, 0, false).
		AddItem(input, 1, 0, true).
		AddItem(infoView, 0, 1, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			search.Stop()
			app.Stop()
			return nil
		}
		return event
	})

	if err := app.SetRoot(layout, true).SetFocus(input).Run(); err != nil {
		panic(err)
	}
}

func playHumanMove(text string) {
	if board.Pos.Status() != gm.Ongoing {
		hint.SetText("Game over. Esc quits.")
		return
	}
	m := gm.ParseMove(text)
	if m == gm.MoveNone || !board.Pos.IsLegal(m) {
		hint.SetText(fmt.Sprintf("Illegal move %q", text))
		return
	}
	board.Pos.MakeMove(m)
	board.SetLastMove(m)

	if st := board.Pos.Status(); st != gm.Ongoing {
		announce(st)
		return
	}

	thinking = true
	hint.SetText("Thinking...")
	go func() {
		infoView.Clear()
		reply := search.Think(board.Pos, 0, cfg.Engine.MovetimeMs, false)
		app.QueueUpdateDraw(func() {
			thinking = false
			if reply == gm.MoveNone {
				hint.SetText("Engine has no moves. You win!")
				return
			}
			board.Pos.MakeMove(reply)
			board.SetLastMove(reply)
			if st := board.Pos.Status(); st != gm.Ongoing {
				announce(st)
				return
			}
			hint.SetText(fmt.Sprintf("Engine plays %v. Your move.", reply))
		})
	}()
}

// announce reports a finished game from the point of view of the side to
// move, which at this point is the losing side's turn in all den/capture
// endings.
func announce(st gm.GameStatus) {
	switch st {
	case gm.SideToMoveLost:
		if board.Pos.SideToMove() == gm.Light {
			hint.SetText("Dark wins. Esc quits.")
		} else {
			hint.SetText("Light wins. Esc quits.")
		}
	case gm.SideToMoveWon:
		if board.Pos.SideToMove() == gm.Light {
			hint.SetText("Light wins. Esc quits.")
		} else {
			hint.SetText("Dark wins. Esc quits.")
		}
	}
}
