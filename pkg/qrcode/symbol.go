package qrcode

// Symbol is an encoded QR module matrix without quiet zone.
// It is immutable once returned by an encoder.
type Symbol struct {
	Size    int // modules per side
	Version int
	Mask    int // MaskAuto when chosen by the library and not reported
	modules []bool
}

func newSymbol(size, version, mask int) *Symbol {
	return &Symbol{
		Size:    size,
		Version: version,
		Mask:    mask,
		modules: make([]bool, size*size),
	}
}

// Dark reports whether the module at (x, y) is dark. Coordinates outside the
// symbol are light.
func (s *Symbol) Dark(x, y int) bool {
	if x < 0 || y < 0 || x >= s.Size || y >= s.Size {
		return false
	}
	return s.modules[y*s.Size+x]
}

func (s *Symbol) set(x, y int, dark bool) {
	s.modules[y*s.Size+x] = dark
}

// versionForSize derives the version from the number of modules per side.
func versionForSize(size int) int {
	return (size - 17) / 4
}
