package boidswarm

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// RGB returns the red, green and blue components in [0, 1]
// of a color tag such as "#006a6b".
func RGB(tag string) (r, g, b float64, err error) {
	c, err := colorful.Hex(tag)
	if err != nil {
		return 0, 0, 0, errors.Wrapf(err, "bad color %q", tag)
	}
	return c.R, c.G, c.B, nil
}

// RGB8 is like RGB but returns 8-bit components.
// Unparseable tags yield white.
func RGB8(tag string) (r, g, b uint8) {
	c, err := colorful.Hex(tag)
	if err != nil {
		return 0xff, 0xff, 0xff
	}
	return c.RGB255()
}
