package vt

import "github.com/tideterm/tideterm"

// ansi16 is the standard 16-color ANSI palette, in ANSI order, matching the
// teacher's ANSIColorsRGB table.
var ansi16 = [16]tideterm.Color{
	{Set: true, R: 0, G: 0, B: 0},
	{Set: true, R: 170, G: 0, B: 0},
	{Set: true, R: 0, G: 170, B: 0},
	{Set: true, R: 170, G: 85, B: 0},
	{Set: true, R: 0, G: 0, B: 170},
	{Set: true, R: 170, G: 0, B: 170},
	{Set: true, R: 0, G: 170, B: 170},
	{Set: true, R: 170, G: 170, B: 170},
	{Set: true, R: 85, G: 85, B: 85},
	{Set: true, R: 255, G: 85, B: 85},
	{Set: true, R: 85, G: 255, B: 85},
	{Set: true, R: 255, G: 255, B: 85},
	{Set: true, R: 85, G: 85, B: 255},
	{Set: true, R: 255, G: 85, B: 255},
	{Set: true, R: 85, G: 255, B: 255},
	{Set: true, R: 255, G: 255, B: 255},
}

// standardColor returns one of the 16 ANSI colors by index (0-15).
func standardColor(index int) tideterm.Color {
	if index < 0 || index > 15 {
		index = 7
	}
	return ansi16[index]
}

// paletteColor resolves a 256-color palette index (0-255) to RGB, following
// xterm's layout: 0-15 the standard palette, 16-231 a 6x6x6 color cube,
// 232-255 a 24-step grayscale ramp.
func paletteColor(index int) tideterm.Color {
	if index < 0 {
		index = 0
	} else if index > 255 {
		index = 255
	}
	if index < 16 {
		return ansi16[index]
	}
	if index < 232 {
		i := index - 16
		b := i % 6
		g := (i / 6) % 6
		r := i / 36
		return tideterm.Color{Set: true, R: scale6(r), G: scale6(g), B: scale6(b)}
	}
	gray := uint8((index-232)*10 + 8)
	return tideterm.Color{Set: true, R: gray, G: gray, B: gray}
}

func scale6(v int) uint8 { return uint8(v * 51) }

// trueColor packs a direct 24-bit color.
func trueColor(r, g, b int) tideterm.Color {
	return tideterm.Color{Set: true, R: clampByte(r), G: clampByte(g), B: clampByte(b)}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
