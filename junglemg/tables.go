package junglemg

import "math/rand"

// Terrain classifies a square. The classification is static: it depends on
// the square alone, never on the position.
type Terrain uint8

const (
	Land Terrain = iota
	Water
	TrapLight // Light's trap, weakens Dark pieces standing on it
	TrapDark  // Dark's trap, weakens Light pieces standing on it
	DenLight
	DenDark
)

// Den squares: d1 for Light, d9 for Dark.
const (
	DenLightSq = Square(3)
	DenDarkSq  = Square(59)
)

// DenOf returns the den square belonging to a color.
func DenOf(c Color) Square {
	if c == Light {
		return DenLightSq
	}
	return DenDarkSq
}

var (
	terrainTab [NumSquares]Terrain
	waterTab   [NumSquares]bool
)

// TerrainAt returns the terrain of a square.
func TerrainAt(sq Square) Terrain { return terrainTab[sq] }

// IsWater reports whether a square is a river square.
func IsWater(sq Square) bool { return waterTab[sq] }

// IsTrapOf reports whether sq is a trap owned by c.
func IsTrapOf(sq Square, c Color) bool {
	if c == Light {
		return terrainTab[sq] == TrapLight
	}
	return terrainTab[sq] == TrapDark
}

// JumpArc is one river jump for Lion/Tiger: a landing square and the
// water squares crossed, in crossing order. A rat on any Over square
// blocks the jump.
type JumpArc struct {
	To   Square
	Over []Square
}

// JumpsFrom indexes the jump arcs by launch square.
var JumpsFrom [NumSquares][]JumpArc

// Shortest half-move distances to each den under three movement models:
// land-only, land + river jumps, land + water. Index by [den color][square].
// 99 marks unreachable squares.
var (
	DistLand    [2][NumSquares]int
	DistJumper  [2][NumSquares]int
	DistSwimmer [2][NumSquares]int
)

const distUnreachable = 99

// Zobrist keys, drawn once from a fixed-seed PRNG for reproducibility.
var (
	zobristPiece [NumSquares][NumRanks][2]uint64
	zobristSide  uint64
)

func init() {
	initTables()
}

func initTables() {
	// Terrain. Two 2x3 river blocks at files b-c and e-f, ranks 4-6.
	for sq := Square(0); sq < NumSquares; sq++ {
		terrainTab[sq] = Land
	}
	for r := 3; r <= 5; r++ {
		for _, c := range []int{1, 2, 4, 5} {
			sq := MakeSquare(r, c)
			terrainTab[sq] = Water
			waterTab[sq] = true
		}
	}
	terrainTab[DenLightSq] = DenLight
	terrainTab[DenDarkSq] = DenDark
	for _, sq := range []Square{MakeSquare(0, 2), MakeSquare(0, 4), MakeSquare(1, 3)} {
		terrainTab[sq] = TrapLight
	}
	for _, sq := range []Square{MakeSquare(8, 2), MakeSquare(8, 4), MakeSquare(7, 3)} {
		terrainTab[sq] = TrapDark
	}

	// Jump arcs. Horizontal: a<->d and d<->g on each river rank.
	// Vertical: rank 3 <-> rank 7 on each river file. 20 arcs total.
	for i := range JumpsFrom {
		JumpsFrom[i] = nil
	}
	addJump := func(from, to Square, over ...Square) {
		JumpsFrom[from] = append(JumpsFrom[from], JumpArc{To: to, Over: over})
	}
	for r := 3; r <= 5; r++ {
		a, b, c, d := MakeSquare(r, 0), MakeSquare(r, 1), MakeSquare(r, 2), MakeSquare(r, 3)
		addJump(a, d, b, c)
		addJump(d, a, c, b)
		e, f, g := MakeSquare(r, 4), MakeSquare(r, 5), MakeSquare(r, 6)
		addJump(d, g, e, f)
		addJump(g, d, f, e)
	}
	for _, c := range []int{1, 2, 4, 5} {
		bot, top := MakeSquare(2, c), MakeSquare(6, c)
		w1, w2, w3 := MakeSquare(3, c), MakeSquare(4, c), MakeSquare(5, c)
		addJump(bot, top, w1, w2, w3)
		addJump(top, bot, w3, w2, w1)
	}

	// Zobrist keys. Fixed seed keeps hashes stable across runs and tests.
	rnd := rand.New(rand.NewSource(0xDEADBEEF42))
	for sq := 0; sq < NumSquares; sq++ {
		for rk := 1; rk < NumRanks; rk++ {
			for c := 0; c < 2; c++ {
				zobristPiece[sq][rk][c] = rnd.Uint64()
			}
		}
	}
	zobristSide = rnd.Uint64()

	// BFS distance tables from each den.
	for den := 0; den < 2; den++ {
		denSq := DenOf(Color(den))
		bfsFromDen(denSq, bfsLand, &DistLand[den])
		bfsFromDen(denSq, bfsJumper, &DistJumper[den])
		bfsFromDen(denSq, bfsSwimmer, &DistSwimmer[den])
	}
}

type bfsModel int

const (
	bfsLand bfsModel = iota
	bfsJumper
	bfsSwimmer
)

func bfsFromDen(denSq Square, model bfsModel, dist *[NumSquares]int) {
	for i := range dist {
		dist[i] = distUnreachable
	}
	dist[denSq] = 0
	queue := make([]Square, 0, NumSquares)
	queue = append(queue, denSq)

	for len(queue) > 0 {
		sq := queue[0]
		queue = queue[1:]
		nd := dist[sq] + 1

		for _, d := range dirs {
			if !canStep(sq, d) {
				continue
			}
			ns := sq + Square(d)
			// Only the swimmer model may traverse water.
			if waterTab[ns] && model != bfsSwimmer {
				continue
			}
			if nd < dist[ns] {
				dist[ns] = nd
				queue = append(queue, ns)
			}
		}

		if model == bfsJumper {
			for _, arc := range JumpsFrom[sq] {
				if nd < dist[arc.To] {
					dist[arc.To] = nd
					queue = append(queue, arc.To)
				}
			}
		}
	}
}
