package parts

type PartType int

const (
	PartTypeRaw PartType = iota
	PartTypeCurrency
	// backtick quoted arpabet, passed through untouched
	PartTypeOverride
)

type Part struct {
	Value string
	Type  PartType
}

// Text reports whether later normalizers should rewrite the part.
func (p Part) Text() bool {
	return p.Type == PartTypeRaw || p.Type == PartTypeCurrency
}
