package lookup

// PositionColor returns the badge colour used for a position code.
func PositionColor(pos int) string {
	switch pos {
	case 0:
		return "#f87171"
	case 1:
		return "#60a5fa"
	case 2:
		return "#22d3ee"
	case 3:
		return "#facc15"
	case 4, 5:
		return "#fde68a"
	case 6, 7:
		return "#34d399"
	default:
		return "#e5e7eb"
	}
}
