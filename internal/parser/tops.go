package parser

import "sort"

// Top is a named formation top depth.
type Top struct {
	Name  string
	Depth float64
}

// Tops is a set of formation tops ordered by increasing depth.
type Tops []Top

// NewTops builds a depth-sorted Tops from a name-to-depth mapping.
// Equal depths are ordered by name so the result is deterministic; they
// still fail Validate.
func NewTops(m map[string]float64) Tops {
	tops := make(Tops, 0, len(m))
	for name, depth := range m {
		tops = append(tops, Top{Name: name, Depth: depth})
	}
	sort.Slice(tops, func(i, j int) bool {
		if tops[i].Depth == tops[j].Depth {
			return tops[i].Name < tops[j].Name
		}
		return tops[i].Depth < tops[j].Depth
	})
	return tops
}

// Validate reports ErrEmptyTops for an empty set and ErrDuplicateTop when
// two adjacent tops share a depth. Tops must already be sorted by depth.
func (t Tops) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTops
	}
	for i := 1; i < len(t); i++ {
		if t[i].Depth == t[i-1].Depth {
			return ErrDuplicateTop
		}
	}
	return nil
}

// Classify returns the name of the deepest top at or above depth. A depth
// above the shallowest top falls into the shallowest formation. The
// receiver must be sorted ascending by depth; Validate errors are returned
// as-is.
func (t Tops) Classify(depth float64) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	// Index of the first top strictly below the sample; the enclosing
	// formation starts at the top just before it.
	i := sort.Search(len(t), func(i int) bool { return t[i].Depth > depth })
	if i == 0 {
		return t[0].Name, nil
	}
	return t[i-1].Name, nil
}
