package signature

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"strings"

	"golang.org/x/image/vector"
)

const dataURIPrefix = "data:image/png;base64,"

// rasterize renders the background, any hydrated base image, and every
// stroke into a fresh RGBA buffer.
func (p *Pad) rasterize() *image.RGBA {
	bounds := image.Rect(0, 0, p.cfg.width, p.cfg.height)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(p.cfg.background), image.Point{}, draw.Src)

	if p.base != nil {
		draw.Draw(img, p.base.Bounds().Intersect(bounds), p.base, image.Point{}, draw.Over)
	}

	strokes := p.strokes
	if len(p.current) > 0 {
		strokes = append(append([][]point{}, strokes...), p.current)
	}
	if len(strokes) == 0 {
		return img
	}

	r := vector.NewRasterizer(p.cfg.width, p.cfg.height)
	r.DrawOp = draw.Over
	half := p.cfg.strokeWidth / 2
	for _, stroke := range strokes {
		appendStrokePath(r, stroke, half)
	}
	r.Draw(img, bounds, image.NewUniform(p.cfg.strokeColor), image.Point{})
	return img
}

// appendStrokePath adds one polyline to the rasterizer as a series of thick
// segments with disk joins, so corners and single-point taps stay round.
func appendStrokePath(r *vector.Rasterizer, stroke []point, half float64) {
	for _, pt := range stroke {
		appendDisk(r, pt.x, pt.y, half)
	}
	for idx := 1; idx < len(stroke); idx++ {
		appendSegment(r, stroke[idx-1], stroke[idx], half)
	}
}

// appendSegment adds the quad covering a thick line segment.
func appendSegment(r *vector.Rasterizer, a, b point, half float64) {
	dx := b.x - a.x
	dy := b.y - a.y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Perpendicular offset of half the stroke width.
	nx := -dy / length * half
	ny := dx / length * half

	r.MoveTo(float32(a.x+nx), float32(a.y+ny))
	r.LineTo(float32(b.x+nx), float32(b.y+ny))
	r.LineTo(float32(b.x-nx), float32(b.y-ny))
	r.LineTo(float32(a.x-nx), float32(a.y-ny))
	r.ClosePath()
}

// appendDisk adds a polygonal approximation of a filled circle.
func appendDisk(r *vector.Rasterizer, cx, cy, radius float64) {
	const segments = 20
	r.MoveTo(float32(cx+radius), float32(cy))
	for idx := 1; idx <= segments; idx++ {
		angle := 2 * math.Pi * float64(idx) / segments
		r.LineTo(float32(cx+radius*math.Cos(angle)), float32(cy+radius*math.Sin(angle)))
	}
	r.ClosePath()
}

// encodeDataURI PNG-encodes the image into a self-describing data URI.
func encodeDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// decodeDataURI parses a payload previously produced by encodeDataURI.
func decodeDataURI(payload string) (image.Image, error) {
	if !strings.HasPrefix(payload, dataURIPrefix) {
		return nil, fmt.Errorf("payload is not a PNG data URI")
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(payload, dataURIPrefix))
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return img, nil
}
