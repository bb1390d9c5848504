package geom

// Dir is a direction along one of the two layout axes.
type Dir int

const (
	LTR Dir = iota // left to right
	RTL            // right to left
	TTB            // top to bottom
	BTT            // bottom to top
)

// Horizontal reports whether the direction runs along the horizontal axis.
func (d Dir) Horizontal() bool { return d == LTR || d == RTL }

// Positive reports whether the direction points towards increasing coordinates.
func (d Dir) Positive() bool { return d == LTR || d == TTB }

func (d Dir) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	case TTB:
		return "ttb"
	case BTT:
		return "btt"
	default:
		return "ltr"
	}
}

// ParseDir parses a direction keyword. Unknown input defaults to LTR.
func ParseDir(s string) Dir {
	switch s {
	case "rtl":
		return RTL
	case "ttb":
		return TTB
	case "btt":
		return BTT
	default:
		return LTR
	}
}

// Point is a position in millimeters with the origin at the top-left corner.
type Point struct {
	X Abs `json:"x"`
	Y Abs `json:"y"`
}

// Size is a width/height pair in millimeters.
type Size struct {
	W Abs `json:"w"`
	H Abs `json:"h"`
}
