// Package radio implements the aviation VHF radio frequency value type.
//
// A Frequency is a pair of integers: the MHz part ("left", 118-137 inclusive)
// and the channel part ("right"), whose last two digits must name a channel of
// either the 25 kHz or the 8.33 kHz channel plan:
//
//	25 kHz:   00 25 50 75
//	8.33 kHz: 05 10 15 30 35 40 55 60 65 80 85 90
//
// Frequencies are only obtained through New, Parse or one of the decoders, all
// of which validate. The canonical text form is "LLL.RRR", e.g. "120.905".
package radio
