package rt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// ppmMagic identifies the plain-text ("P3") PPM variant.
	ppmMagic = "P3"

	// maxChannel is the maximum color value written to the PPM header.
	maxChannel = 255

	// ppmMaxLine is the longest pixel line emitted. A pixel token that
	// would push the current line past it starts a new line instead.
	ppmMaxLine = 69
)

// ppmWriter is the subset of bufio.Writer and strings.Builder used by encodePPM.
type ppmWriter interface {
	io.Writer
	io.ByteWriter
}

// PPM returns the canvas encoded as a plain-text PPM image.
//
// Each channel is scaled by 255, clamped to [0, 255] and truncated toward
// zero, so 0.5 encodes as 127. Pixel tokens are written row-major as
// "R G B " and wrapped so that no line exceeds 69 characters. The output
// has no trailing newline.
func (c *Canvas) PPM() string {
	var b strings.Builder
	// Header plus at most 12 bytes per pixel token.
	b.Grow(32 + len(c.pixels)*12)
	c.encodePPM(&b)
	return b.String()
}

// WritePPM writes the canvas to w in the format produced by PPM.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	c.encodePPM(bw)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("rt: write ppm: %w", err)
	}
	return nil
}

// encodePPM writes the header and pixel data. Write errors from bufio are
// sticky and surface on Flush; strings.Builder never fails.
func (c *Canvas) encodePPM(w ppmWriter) {
	_, _ = fmt.Fprintf(w, "%s\n%d %d\n%d\n", ppmMagic, c.width, c.height, maxChannel)

	tok := make([]byte, 0, 12)
	lineLen, lines := 0, 1
	for _, px := range c.pixels {
		tok = appendPixel(tok[:0], px)
		if lineLen+len(tok) > ppmMaxLine {
			_ = w.WriteByte('\n')
			lineLen = 0
			lines++
		}
		_, _ = w.Write(tok)
		lineLen += len(tok)
	}

	Logger().Debug("ppm encoded",
		"width", c.width,
		"height", c.height,
		"lines", lines)
}

// appendPixel appends the "R G B " token of a color to dst.
func appendPixel(dst []byte, c Color) []byte {
	for _, v := range [3]float64{c.R, c.G, c.B} {
		dst = strconv.AppendUint(dst, uint64(channel8(v)), 10)
		dst = append(dst, ' ')
	}
	return dst
}
