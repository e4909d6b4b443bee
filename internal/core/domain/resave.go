package domain

// Debug dump file names written when a resave does not match.
const (
	ResaveInputDump  = "input.sav"
	ResaveOutputDump = "output.sav"
)

// ResaveReport is the verdict of decoding and re-encoding a save file.
type ResaveReport struct {
	Path       string
	InputSize  int
	OutputSize int
	Match      bool
	// FirstDiff is the offset of the first differing byte, or -1 on a match.
	FirstDiff int
	// InputDump and OutputDump are set when debug dumps were written.
	InputDump  string
	OutputDump string
}

// FirstDifference returns the offset of the first byte where a and b differ,
// or -1 if they are equal. A length mismatch differs at the shorter length.
func FirstDifference(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}
