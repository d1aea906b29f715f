// Package alphabet names the bytes that may appear at each position of a chunk
// that a sparse table is populated for. The normaliser in package field folds
// everything else to Invalid, which is what ties the two together.
package alphabet

// Width is the chunk width the alphabet is defined over.
const Width = 4

// Invalid is the byte every out-of-alphabet input byte is folded to. It is not
// whitespace, a digit or '+', so the reference parser maps any chunk holding it
// to 0, and no sparse alphabet contains it.
const Invalid byte = 0x7f

// Symbols is the set of bytes a valid field can be made of.
var Symbols = []byte{'+', ' ', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

// T is a per-position alphabet.
type T struct {
	Name      string
	Positions [Width][]byte
	member    [Width][256]bool
}

func New(name string, positions [Width][]byte) (a *T) {
	a = &T{Name: name, Positions: positions}
	for i := range positions {
		for _, c := range positions[i] {
			a.member[i][c] = true
		}
	}
	return
}

var (
	// Standard admits Symbols at every position, 12^4 chunks.
	Standard = New("standard", [Width][]byte{Symbols, Symbols, Symbols, Symbols})
	// Terminated additionally admits NUL in the first position, for callers that
	// hand over C style buffers whose leading byte may be a terminator.
	Terminated = New("terminated",
		[Width][]byte{append([]byte{0}, Symbols...), Symbols, Symbols, Symbols})
	// Reachable is every chunk a normalised field can contain: Symbols plus
	// Invalid at every position.
	Reachable = New("reachable", [Width][]byte{withInvalid, withInvalid, withInvalid, withInvalid})
)

var withInvalid = append(append([]byte{}, Symbols...), Invalid)

// ByName returns the alphabet with the given name, or nil.
func ByName(name string) *T {
	switch name {
	case Standard.Name:
		return Standard
	case Terminated.Name:
		return Terminated
	}
	return nil
}

// Count is the number of chunks in the Cartesian product.
func (a *T) Count() (n int) {
	n = 1
	for i := range a.Positions {
		n *= len(a.Positions[i])
	}
	return
}

// Contains reports whether every byte of c is admitted at its position.
func (a *T) Contains(c [Width]byte) bool {
	return a.member[0][c[0]] && a.member[1][c[1]] && a.member[2][c[2]] && a.member[3][c[3]]
}

// Admits reports whether b may appear at position pos.
func (a *T) Admits(pos int, b byte) bool { return a.member[pos][b] }

// Each calls fn with every chunk of the Cartesian product, first position
// varying slowest.
func (a *T) Each(fn func(c [Width]byte)) {
	var c [Width]byte
	for _, c[0] = range a.Positions[0] {
		for _, c[1] = range a.Positions[1] {
			for _, c[2] = range a.Positions[2] {
				for _, c[3] = range a.Positions[3] {
					fn(c)
				}
			}
		}
	}
}
