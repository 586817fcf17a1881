// Package core provides the falling-block simulation for Blockfall.
// This package is UI-agnostic and deterministic for a given randomizer.
package core

import "strings"

// PieceKind identifies a tetromino. KindNone means "no active piece".
type PieceKind uint8

const (
	KindNone PieceKind = iota
	KindT
	KindO
	KindI
	KindZ
	KindS
	KindJ
	KindL
	kindCount
)

// Offset is a cell position relative to a piece anchor.
type Offset struct {
	DCol, DRow int
}

// Shape holds the four cell offsets of one orientation.
type Shape [4]Offset

// rotations is indexed by kind, then orientation.
var rotations = [kindCount][4]Shape{
	KindNone: {},
	KindT: {
		{{0, 0}, {1, 0}, {1, -1}, {2, 0}},
		{{0, 0}, {0, 1}, {0, -1}, {1, 0}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 0}},
		{{1, 0}, {1, 1}, {1, -1}, {0, 0}},
	},
	KindO: {
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	KindI: {
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {0, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {0, 1}, {0, 2}},
	},
	KindS: {
		{{0, 1}, {1, 1}, {1, 0}, {2, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 0}, {2, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindJ: {
		{{1, 0}, {1, 1}, {1, 2}, {0, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
	},
	KindL: {
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
		{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// Shape returns the offsets for the given orientation (taken mod 4).
func (k PieceKind) Shape(orientation uint8) Shape {
	if k >= kindCount {
		return Shape{}
	}
	return rotations[k][orientation&3]
}

// Color returns the default color for the kind.
func (k PieceKind) Color() Color {
	return DefaultPalette()[k]
}

// IsActive reports whether the kind is a real tetromino.
func (k PieceKind) IsActive() bool {
	return k != KindNone && k < kindCount
}

// String returns the letter name of the kind.
func (k PieceKind) String() string {
	switch k {
	case KindT:
		return "T"
	case KindO:
		return "O"
	case KindI:
		return "I"
	case KindZ:
		return "Z"
	case KindS:
		return "S"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "None"
	}
}

// ParseKind converts a letter ("t", "I", ...) to a PieceKind.
func ParseKind(s string) (PieceKind, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "T":
		return KindT, true
	case "O":
		return KindO, true
	case "I":
		return KindI, true
	case "Z":
		return KindZ, true
	case "S":
		return KindS, true
	case "J":
		return KindJ, true
	case "L":
		return KindL, true
	default:
		return KindNone, false
	}
}

// AllKinds returns the seven playable kinds in table order.
func AllKinds() []PieceKind {
	return []PieceKind{KindT, KindO, KindI, KindZ, KindS, KindJ, KindL}
}

// Palette maps every kind (including KindNone) to a color.
type Palette [kindCount]Color

// DefaultPalette returns the stock color per kind. KindNone is the background.
func DefaultPalette() Palette {
	return Palette{
		KindNone: ColorBlack,
		KindT:    ColorPurple,
		KindO:    ColorYellow,
		KindI:    ColorBlue,
		KindZ:    ColorRed,
		KindS:    ColorSkyBlue,
		KindJ:    ColorGreen,
		KindL:    ColorOrange,
	}
}

// Of returns the palette color for a kind.
func (p Palette) Of(k PieceKind) Color {
	if k >= kindCount {
		return p[KindNone]
	}
	return p[k]
}
