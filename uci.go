package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"jungle-engine/engine"
	gm "jungle-engine/junglemg"
)

func main() {
	protocolLoop()
}

func protocolLoop() {
	scanner := bufio.NewScanner(os.Stdin)
	pos := gm.NewPosition()
	search := engine.NewSearch(engine.DefaultHashMB)

	var searchWG sync.WaitGroup

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "init":
			fmt.Println("id name JungleGoose 0.1")
			fmt.Println("id author Goose")
			fmt.Printf("option name Hash type spin default %d min %d max %d\n",
				engine.DefaultHashMB, engine.MinHashMB, engine.MaxHashMB)
			fmt.Println("initok")
		case "isready":
			searchWG.Wait()
			fmt.Println("readyok")
		case "newgame":
			searchWG.Wait()
			pos = gm.NewPosition()
			search.Reset()
		case "position":
			searchWG.Wait()
			if p := parsePosition(tokens[1:]); p != nil {
				pos = p
			}
		case "go":
			searchWG.Wait()
			maxDepth, movetime, infinite := parseGo(tokens[1:], pos.SideToMove())
			searchWG.Add(1)
			go func() {
				defer searchWG.Done()
				best := search.Think(pos, maxDepth, movetime, infinite)
				fmt.Printf("bestmove %v\n", best)
			}()
		case "stop":
			search.Stop()
			searchWG.Wait()
		case "setoption":
			searchWG.Wait()
			if name, value, ok := parseOption(tokens[1:]); ok && strings.EqualFold(name, "Hash") {
				if mb, err := strconv.Atoi(value); err == nil {
					search.ResizeHash(mb)
					search.Reset()
				}
			}
		case "display":
			fmt.Print(pos)
		case "perft":
			if len(tokens) < 2 {
				continue
			}
			depth, err := strconv.Atoi(tokens[1])
			if err != nil || depth < 0 {
				continue
			}
			start := time.Now()
			nodes := gm.Perft(pos, depth)
			fmt.Printf("perft(%d) = %d (%d ms)\n", depth, nodes, time.Since(start).Milliseconds())
		case "eval":
			fmt.Printf("eval = %d cp (from %v perspective)\n", engine.Evaluate(pos), pos.SideToMove())
		case "moves":
			moves := pos.GenerateMoves(make([]gm.Move, 0, gm.MaxMoves))
			fmt.Printf("Legal moves (%d):", len(moves))
			for _, m := range moves {
				fmt.Printf(" %v", m)
			}
			fmt.Println()
		case "quit":
			search.Stop()
			searchWG.Wait()
			return
		}
	}
}

// parsePosition handles "startpos [moves ...]" and "fen <fen> [moves ...]".
// A nil return leaves the current position untouched.
func parsePosition(tokens []string) *gm.Position {
	if len(tokens) == 0 {
		return nil
	}

	var pos *gm.Position
	rest := tokens[1:]

	switch tokens[0] {
	case "startpos":
		pos = gm.NewPosition()
	case "fen":
		movesIdx := len(rest)
		for i, tok := range rest {
			if tok == "moves" {
				movesIdx = i
				break
			}
		}
		p, err := gm.ParseFEN(strings.Join(rest[:movesIdx], " "))
		if err != nil {
			return nil
		}
		pos = p
		rest = rest[movesIdx:]
	default:
		return nil
	}

	if len(rest) > 0 && rest[0] == "moves" {
		for _, moveStr := range rest[1:] {
			m := gm.ParseMove(moveStr)
			if m == gm.MoveNone || !pos.IsLegal(m) {
				break
			}
			pos.MakeMove(m)
		}
	}
	return pos
}

// parseGo extracts the search limits from a "go" command.
func parseGo(tokens []string, stm gm.Color) (maxDepth, movetimeMs int, infinite bool) {
	wtime, btime := -1, -1
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "infinite":
			infinite = true
		case "depth":
			if i+1 < len(tokens) {
				maxDepth, _ = strconv.Atoi(tokens[i+1])
				i++
			}
		case "movetime":
			if i+1 < len(tokens) {
				movetimeMs, _ = strconv.Atoi(tokens[i+1])
				i++
			}
		case "wtime":
			if i+1 < len(tokens) {
				wtime, _ = strconv.Atoi(tokens[i+1])
				i++
			}
		case "btime":
			if i+1 < len(tokens) {
				btime, _ = strconv.Atoi(tokens[i+1])
				i++
			}
		}
	}

	if movetimeMs == 0 && !infinite {
		remaining := wtime
		if stm == gm.Dark {
			remaining = btime
		}
		if remaining >= 0 {
			movetimeMs = engine.AllocateTime(remaining)
		} else if maxDepth == 0 {
			// No limit given at all; fall back to a small fixed budget.
			movetimeMs = engine.AllocateTime(0)
		}
	}
	return maxDepth, movetimeMs, infinite
}

// parseOption parses "name <Name> value <Value>".
func parseOption(tokens []string) (name, value string, ok bool) {
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "name":
			if i+1 < len(tokens) {
				name = tokens[i+1]
			}
		case "value":
			if i+1 < len(tokens) {
				value = tokens[i+1]
			}
		}
	}
	return name, value, name != "" && value != ""
}
