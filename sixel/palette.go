package sixel

// Palette holds the sixteen CGA colors indexed the way the
// COLOR statement numbers them.
var Palette = [16][3]uint8{
	{0, 0, 0},       // black
	{0, 0, 170},     // blue
	{0, 170, 0},     // green
	{0, 170, 170},   // cyan
	{170, 0, 0},     // red
	{170, 0, 170},   // magenta
	{170, 85, 0},    // brown
	{170, 170, 170}, // white
	{85, 85, 85},    // gray
	{85, 85, 255},   // light blue
	{85, 255, 85},   // light green
	{85, 255, 255},  // light cyan
	{255, 85, 85},   // light red
	{255, 85, 255},  // light magenta
	{255, 255, 85},  // yellow
	{255, 255, 255}, // bright white
}
