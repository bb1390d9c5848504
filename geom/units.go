package geom

// This file defines unit-safe length types shared by style resolution and layout.

// Unit represents the original unit of a length value as written by the author.
type Unit int

const (
	UnitNone Unit = iota // unit-less numbers like factors
	UnitMM               // millimeters
	UnitCM               // centimeters
	UnitIN               // inches
	UnitPT               // points
	UnitEM               // font-relative
)

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	case UnitPT:
		return "pt"
	case UnitEM:
		return "em"
	default:
		return ""
	}
}

// Abs is a resolved absolute length. The internal unit is millimeters.
type Abs float64

// Constructors for Abs from common units.
func Mm(v float64) Abs { return Abs(v) }
func Cm(v float64) Abs { return Abs(v * 10) }
func In(v float64) Abs { return Abs(v * 25.4) }
func Pt(v float64) Abs { return Abs(v * PtToMm) }

func (a Abs) Mm() float64 { return float64(a) }
func (a Abs) Pt() float64 { return float64(a) * MmToPt }
func (a Abs) IsZero() bool { return a == 0 }

// Em is a length relative to the current font size.
type Em float64

// At resolves the font-relative length against an absolute em size.
func (e Em) At(em Abs) Abs { return Abs(float64(em) * float64(e)) }

func (e Em) IsZero() bool { return e == 0 }

// Rel combines an absolute part with a font-relative part, like "1em + 2pt".
type Rel struct {
	Abs Abs
	Em  Em
}

// Resolve computes the final absolute length for a given em size.
func (r Rel) Resolve(em Abs) Abs { return r.Abs + r.Em.At(em) }

func (r Rel) IsZero() bool { return r.Abs.IsZero() && r.Em.IsZero() }
