package chess

// Result strings used in game records.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	Unfinished = "*"
)

// Game is the record of a played game: its tags and the sequence of moves
// applied to the board, in order.
type Game struct {
	// Unique identifier of the game.
	ID string

	// Tags for this game (e.g., Event, Site, Date, White, Black, Result).
	Tags map[string]string

	// The move list of the game.
	Moves []*Move
}

// NewGame creates a new empty game record.
func NewGame(id string) *Game {
	return &Game{
		ID:   id,
		Tags: make(map[string]string),
	}
}

// GetTag returns a tag value, or empty string if not present.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value.
func (g *Game) SetTag(name, value string) {
	g.ensureTags()
	g.Tags[name] = value
}

// HasTag returns true if the tag is present.
func (g *Game) HasTag(name string) bool {
	_, ok := g.Tags[name]
	return ok
}

// ensureTags initializes the Tags map if it is nil.
func (g *Game) ensureTags() {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
}

// Result returns the game result, or "*" if none was recorded.
func (g *Game) Result() string {
	if r := g.GetTag(ResultTag); r != "" {
		return r
	}
	return Unfinished
}

// FEN returns the FEN string of the starting position if it was not the
// standard one.
func (g *Game) FEN() string {
	return g.GetTag(FENTag)
}

// PlyCount returns the number of half-moves in the game.
func (g *Game) PlyCount() int {
	return len(g.Moves)
}

// LastMove returns the last move in the game, or nil if no moves.
func (g *Game) LastMove() *Move {
	if len(g.Moves) == 0 {
		return nil
	}
	return g.Moves[len(g.Moves)-1]
}

// AppendMove adds a move to the end of the game.
func (g *Game) AppendMove(m *Move) {
	g.Moves = append(g.Moves, m)
}

// TruncateMoves drops moves from the end so that n remain.
func (g *Game) TruncateMoves(n int) {
	if n >= 0 && n < len(g.Moves) {
		g.Moves = g.Moves[:n]
	}
}
