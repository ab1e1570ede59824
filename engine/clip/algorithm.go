package clip

import (
	"errors"
	"fmt"
	"strings"

	"github.com/1siamBot/surrender/engine/geom"
)

// Algorithm selects the line clipper a shape uses.
type Algorithm uint8

const (
	LiangBarskyAlgorithm Algorithm = iota
	CohenSutherlandAlgorithm
)

// Default is the algorithm shapes get unless told otherwise.
const Default = LiangBarskyAlgorithm

var ErrUnknownAlgorithm = errors.New("unknown clipping algorithm")

var algorithmNames = map[Algorithm]string{
	LiangBarskyAlgorithm:     "liang-barsky",
	CohenSutherlandAlgorithm: "cohen-sutherland",
}

// Clip runs the selected algorithm.
func (a Algorithm) Clip(p0, p1 geom.Vec3, r geom.Rect) (Segment, bool) {
	if a == CohenSutherlandAlgorithm {
		return CohenSutherland(p0, p1, r)
	}
	return LiangBarsky(p0, p1, r)
}

// Next cycles through the available algorithms.
func (a Algorithm) Next() Algorithm {
	if a == CohenSutherlandAlgorithm {
		return LiangBarskyAlgorithm
	}
	return CohenSutherlandAlgorithm
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// ParseAlgorithm accepts the String form, case-insensitively, plus the
// short names "cs" and "lb".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "liang-barsky", "liangbarsky", "lb":
		return LiangBarskyAlgorithm, nil
	case "cohen-sutherland", "cohensutherland", "cs":
		return CohenSutherlandAlgorithm, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

func (a Algorithm) MarshalText() ([]byte, error) {
	if _, ok := algorithmNames[a]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
