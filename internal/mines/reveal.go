package mines

import "fmt"

// RevealCell reveals pos and, for a cell without adjacent mines, the
// connected empty region and its numbered border.
//
// The first reveal of a game places the mines, never on pos and never under
// a flag. Revealing a revealed or flagged cell, or any cell once the game is
// over, returns CantReveal without touching the state machine.
func (g *GameState) RevealCell(pos Position) (RevealResult, error) {
	cell, err := g.board.Cell(pos)
	if err != nil {
		return RevealResult{}, err
	}
	if cell.IsRevealed() || cell.IsFlagged() || g.status.IsOver() {
		return cantRevealResult, nil
	}

	if g.status == StatusNew {
		g.start()
	}
	if !g.board.MinesPlaced() {
		if err := g.board.GenerateMines(g.rng, pos, g.board.FlaggedPositions()); err != nil {
			return RevealResult{}, fmt.Errorf("mines: place mines: %w", err)
		}
		g.logger.Debug("mines placed", "first", pos, "count", g.difficulty.Mines)
	}

	result, err := g.revealArea(pos)
	if err != nil {
		return RevealResult{}, err
	}

	if result.Outcome == GameOver {
		g.lose(result.Mine)
		return result, nil
	}

	if g.status != StatusLost && g.board.RevealedCount() == g.difficulty.SafeCells() {
		g.win()
	}
	return result, nil
}

// revealArea is a breadth-first flood fill from start. It stops at the first
// mine; cells revealed before that stay revealed.
func (g *GameState) revealArea(start Position) (RevealResult, error) {
	queue := []Position{start}
	visited := map[Position]struct{}{start: {}}

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		result, err := g.board.Reveal(pos)
		if err != nil {
			return RevealResult{}, err
		}

		switch result.Outcome {
		case GameOver:
			return result, nil
		case CantReveal:
			continue
		}

		g.revealedCells.Put(pos)

		if !g.board.at(pos).IsEmpty() {
			continue
		}
		for adj := range g.board.neighbors(pos) {
			if _, seen := visited[adj]; seen {
				continue
			}
			visited[adj] = struct{}{}

			neighbor := g.board.at(adj)
			if !neighbor.IsRevealed() && !neighbor.IsFlagged() {
				queue = append(queue, adj)
			}
		}
	}

	return continueResult, nil
}

// ToggleFlag flips a hidden cell to flagged or a flagged cell back to
// hidden, and reports whether anything changed. A successful toggle on a new
// game starts the clock; mines are still only placed on the first reveal.
func (g *GameState) ToggleFlag(pos Position) (bool, error) {
	cell, err := g.board.Cell(pos)
	if err != nil {
		return false, err
	}
	if g.status.IsOver() {
		return false, nil
	}

	var toggled bool
	switch {
	case cell.IsFlagged():
		if toggled, err = g.board.Unflag(pos); err != nil {
			return false, err
		}
		if toggled {
			g.flaggedCells.Remove(pos)
		}
	case cell.IsHidden():
		if toggled, err = g.board.Flag(pos); err != nil {
			return false, err
		}
		if toggled {
			g.flaggedCells.Put(pos)
		}
	}

	if toggled && g.status == StatusNew {
		g.start()
	}
	return toggled, nil
}

// Chording reveals every hidden, unflagged neighbour of a revealed numbered
// cell, provided exactly as many neighbours are flagged as the cell's
// number. Each neighbour goes through RevealCell. If any of them is a mine
// the result is GameOver at the first such mine.
func (g *GameState) Chording(pos Position) (RevealResult, error) {
	cell, err := g.board.Cell(pos)
	if err != nil {
		return RevealResult{}, err
	}
	if g.status.IsOver() || !cell.IsRevealed() {
		return cantRevealResult, nil
	}
	want, ok := cell.Content.Count()
	if !ok {
		return cantRevealResult, nil
	}

	flagged := 0
	var targets []Position
	for adj := range g.board.neighbors(pos) {
		switch g.board.at(adj).State {
		case Flagged:
			flagged++
		case Hidden:
			targets = append(targets, adj)
		}
	}
	if flagged != want {
		return cantRevealResult, nil
	}

	result := cantRevealResult
	for _, adj := range targets {
		r, err := g.RevealCell(adj)
		if err != nil {
			return RevealResult{}, err
		}
		switch {
		case r.Outcome == GameOver && result.Outcome != GameOver:
			result = r
		case r.Outcome == Continue && result.Outcome == CantReveal:
			result = r
		}
	}
	return result, nil
}
