// Package mxmusic builds diagram descriptions for common music-theory
// figures: pitch-class and beat-class cycles, chord schemas, and MIDI
// comparison tables. Everything here produces plain mxgraph descriptions;
// no layout or emission happens in this package.
package mxmusic

// PitchClassNames spells the 12 pitch classes with LaTeX accidentals, sharp
// or flat chosen per common usage.
var PitchClassNames = [12]string{
	"C",
	`C$\sharp$`,
	"D",
	`E$\flat$`,
	"E",
	"F",
	`F$\sharp$`,
	"G",
	`A$\flat$`,
	"A",
	`B$\flat$`,
	"B",
}

// PitchClassName returns the name of pitch class i, wrapping mod 12 so MIDI
// numbers and negative intervals work directly.
func PitchClassName(i int) string {
	i %= 12
	if i < 0 {
		i += 12
	}
	return PitchClassNames[i]
}
