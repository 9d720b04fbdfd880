// Package theme holds the static visual configuration of a report: the
// palette, the page geometry, the line height factor and an optional
// TrueType font.
//
// Blocks never carry raw colors. They refer to a [Tone] (primary,
// secondary, danger, warning, dark, gray) which the renderers resolve
// through [Palette.Tone]; unknown tones resolve to gray.
//
// A theme can be overridden from YAML:
//
//	palette:
//	  primary: "#00b894"
//	  danger: [214, 48, 49]
//	page:
//	  margin: 15
//	line_height_factor: 1.6
//	font_file: /usr/share/fonts/NotoSansKR-Regular.ttf
//
// [Load] overlays the file on [Default]; keys that are absent keep their
// default values.
package theme
