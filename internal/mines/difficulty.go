package mines

import "fmt"

// Difficulty describes the board dimensions and mine count.
type Difficulty struct {
	Width  int
	Height int
	Mines  int
}

// Difficulty presets.
var (
	Beginner     = Difficulty{Width: 9, Height: 9, Mines: 10}
	Intermediate = Difficulty{Width: 16, Height: 16, Mines: 40}
	Expert       = Difficulty{Width: 30, Height: 16, Mines: 100}

	// Custom is the default custom entry; front-ends may override it before
	// constructing a game.
	Custom = Difficulty{Width: 100, Height: 100, Mines: 10}
)

// NewDifficulty creates a validated difficulty.
func NewDifficulty(width, height, mines int) (Difficulty, error) {
	d := Difficulty{Width: width, Height: height, Mines: mines}
	if err := d.Validate(); err != nil {
		return Difficulty{}, err
	}
	return d, nil
}

// Validate checks width > 0, height > 0 and 0 < mines < width*height.
func (d Difficulty) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: board size %dx%d", ErrInvalidDifficulty, d.Width, d.Height)
	}
	if d.Mines <= 0 || d.Mines >= d.Capacity() {
		return fmt.Errorf("%w: %d mines for a %dx%d board", ErrInvalidDifficulty, d.Mines, d.Width, d.Height)
	}
	return nil
}

// Capacity returns the number of cells on the board.
func (d Difficulty) Capacity() int {
	return d.Width * d.Height
}

// SafeCells returns the number of cells that must be revealed to win.
func (d Difficulty) SafeCells() int {
	return d.Capacity() - d.Mines
}

// String formats the difficulty as "WxH/M".
func (d Difficulty) String() string {
	return fmt.Sprintf("%dx%d/%d", d.Width, d.Height, d.Mines)
}

// Preset names a difficulty preset.
type Preset string

const (
	PresetBeginner     Preset = "beginner"
	PresetIntermediate Preset = "intermediate"
	PresetExpert       Preset = "expert"
	PresetCustom       Preset = "custom"
)

// Presets returns the preset names in menu order.
func Presets() []Preset {
	return []Preset{PresetBeginner, PresetIntermediate, PresetExpert, PresetCustom}
}

// Difficulty returns the difficulty for the preset. The custom preset
// resolves to the package-level Custom default.
func (p Preset) Difficulty() (Difficulty, bool) {
	switch p {
	case PresetBeginner:
		return Beginner, true
	case PresetIntermediate:
		return Intermediate, true
	case PresetExpert:
		return Expert, true
	case PresetCustom:
		return Custom, true
	default:
		return Difficulty{}, false
	}
}

// Title returns the display name of the preset.
func (p Preset) Title() string {
	switch p {
	case PresetBeginner:
		return "Beginner"
	case PresetIntermediate:
		return "Intermediate"
	case PresetExpert:
		return "Expert"
	case PresetCustom:
		return "Custom"
	default:
		return string(p)
	}
}
