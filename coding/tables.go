// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A version describes metadata associated with a version.
type version struct {
	words     int      // total codewords
	remainder int      // remainder bits
	align     [2]int   // first two alignment coordinates after 6
	pattern   uint32   // version information
	level     [4]level // per error correction level
}

type level struct {
	ec     int    // total error correction codewords
	nblock [2]int // short and long blocks
}

// Version table, from qrencode-3.1.1/qrspec.c.
var vtab = [MaxVersion + 1]version{
	1:  {26, 0, [2]int{0, 0}, 0, [4]level{{7, [2]int{1, 0}}, {10, [2]int{1, 0}}, {13, [2]int{1, 0}}, {17, [2]int{1, 0}}}},
	2:  {44, 7, [2]int{18, 0}, 0, [4]level{{10, [2]int{1, 0}}, {16, [2]int{1, 0}}, {22, [2]int{1, 0}}, {28, [2]int{1, 0}}}},
	3:  {70, 7, [2]int{22, 0}, 0, [4]level{{15, [2]int{1, 0}}, {26, [2]int{1, 0}}, {36, [2]int{2, 0}}, {44, [2]int{2, 0}}}},
	4:  {100, 7, [2]int{26, 0}, 0, [4]level{{20, [2]int{1, 0}}, {36, [2]int{2, 0}}, {52, [2]int{2, 0}}, {64, [2]int{4, 0}}}},
	5:  {134, 7, [2]int{30, 0}, 0, [4]level{{26, [2]int{1, 0}}, {48, [2]int{2, 0}}, {72, [2]int{2, 2}}, {88, [2]int{2, 2}}}},
	6:  {172, 7, [2]int{34, 0}, 0, [4]level{{36, [2]int{2, 0}}, {64, [2]int{4, 0}}, {96, [2]int{4, 0}}, {112, [2]int{4, 0}}}},
	7:  {196, 0, [2]int{22, 38}, 0x07c94, [4]level{{40, [2]int{2, 0}}, {72, [2]int{4, 0}}, {108, [2]int{2, 4}}, {130, [2]int{4, 1}}}},
	8:  {242, 0, [2]int{24, 42}, 0x085bc, [4]level{{48, [2]int{2, 0}}, {88, [2]int{2, 2}}, {132, [2]int{4, 2}}, {156, [2]int{4, 2}}}},
	9:  {292, 0, [2]int{26, 46}, 0x09a99, [4]level{{60, [2]int{2, 0}}, {110, [2]int{3, 2}}, {160, [2]int{4, 4}}, {192, [2]int{4, 4}}}},
	10: {346, 0, [2]int{28, 50}, 0x0a4d3, [4]level{{72, [2]int{2, 2}}, {130, [2]int{4, 1}}, {192, [2]int{6, 2}}, {224, [2]int{6, 2}}}},
	11: {404, 0, [2]int{30, 54}, 0x0bbf6, [4]level{{80, [2]int{4, 0}}, {150, [2]int{1, 4}}, {224, [2]int{4, 4}}, {264, [2]int{3, 8}}}},
	12: {466, 0, [2]int{32, 58}, 0x0c762, [4]level{{96, [2]int{2, 2}}, {176, [2]int{6, 2}}, {260, [2]int{4, 6}}, {308, [2]int{7, 4}}}},
	13: {532, 0, [2]int{34, 62}, 0x0d847, [4]level{{104, [2]int{4, 0}}, {198, [2]int{8, 1}}, {288, [2]int{8, 4}}, {352, [2]int{12, 4}}}},
	14: {581, 3, [2]int{26, 46}, 0x0e60d, [4]level{{120, [2]int{3, 1}}, {216, [2]int{4, 5}}, {320, [2]int{11, 5}}, {384, [2]int{11, 5}}}},
	15: {655, 3, [2]int{26, 48}, 0x0f928, [4]level{{132, [2]int{5, 1}}, {240, [2]int{5, 5}}, {360, [2]int{5, 7}}, {432, [2]int{11, 7}}}},
	16: {733, 3, [2]int{26, 50}, 0x10b78, [4]level{{144, [2]int{5, 1}}, {280, [2]int{7, 3}}, {408, [2]int{15, 2}}, {480, [2]int{3, 13}}}},
	17: {815, 3, [2]int{30, 54}, 0x1145d, [4]level{{168, [2]int{1, 5}}, {308, [2]int{10, 1}}, {448, [2]int{1, 15}}, {532, [2]int{2, 17}}}},
	18: {901, 3, [2]int{30, 56}, 0x12a17, [4]level{{180, [2]int{5, 1}}, {338, [2]int{9, 4}}, {504, [2]int{17, 1}}, {588, [2]int{2, 19}}}},
	19: {991, 3, [2]int{30, 58}, 0x13532, [4]level{{196, [2]int{3, 4}}, {364, [2]int{3, 11}}, {546, [2]int{17, 4}}, {650, [2]int{9, 16}}}},
	20: {1085, 3, [2]int{34, 62}, 0x149a6, [4]level{{224, [2]int{3, 5}}, {416, [2]int{3, 13}}, {600, [2]int{15, 5}}, {700, [2]int{15, 10}}}},
	21: {1156, 4, [2]int{28, 50}, 0x15683, [4]level{{224, [2]int{4, 4}}, {442, [2]int{17, 0}}, {644, [2]int{17, 6}}, {750, [2]int{19, 6}}}},
	22: {1258, 4, [2]int{26, 50}, 0x168c9, [4]level{{252, [2]int{2, 7}}, {476, [2]int{17, 0}}, {690, [2]int{7, 16}}, {816, [2]int{34, 0}}}},
	23: {1364, 4, [2]int{30, 54}, 0x177ec, [4]level{{270, [2]int{4, 5}}, {504, [2]int{4, 14}}, {750, [2]int{11, 14}}, {900, [2]int{16, 14}}}},
	24: {1474, 4, [2]int{28, 54}, 0x18ec4, [4]level{{300, [2]int{6, 4}}, {560, [2]int{6, 14}}, {810, [2]int{11, 16}}, {960, [2]int{30, 2}}}},
	25: {1588, 4, [2]int{32, 58}, 0x191e1, [4]level{{312, [2]int{8, 4}}, {588, [2]int{8, 13}}, {870, [2]int{7, 22}}, {1050, [2]int{22, 13}}}},
	26: {1706, 4, [2]int{30, 58}, 0x1afab, [4]level{{336, [2]int{10, 2}}, {644, [2]int{19, 4}}, {952, [2]int{28, 6}}, {1110, [2]int{33, 4}}}},
	27: {1828, 4, [2]int{34, 62}, 0x1b08e, [4]level{{360, [2]int{8, 4}}, {700, [2]int{22, 3}}, {1020, [2]int{8, 26}}, {1200, [2]int{12, 28}}}},
	28: {1921, 3, [2]int{26, 50}, 0x1cc1a, [4]level{{390, [2]int{3, 10}}, {728, [2]int{3, 23}}, {1050, [2]int{4, 31}}, {1260, [2]int{11, 31}}}},
	29: {2051, 3, [2]int{30, 54}, 0x1d33f, [4]level{{420, [2]int{7, 7}}, {784, [2]int{21, 7}}, {1140, [2]int{1, 37}}, {1350, [2]int{19, 26}}}},
	30: {2185, 3, [2]int{26, 52}, 0x1ed75, [4]level{{450, [2]int{5, 10}}, {812, [2]int{19, 10}}, {1200, [2]int{15, 25}}, {1440, [2]int{23, 25}}}},
	31: {2323, 3, [2]int{30, 56}, 0x1f250, [4]level{{480, [2]int{13, 3}}, {868, [2]int{2, 29}}, {1290, [2]int{42, 1}}, {1530, [2]int{23, 28}}}},
	32: {2465, 3, [2]int{34, 60}, 0x209d5, [4]level{{510, [2]int{17, 0}}, {924, [2]int{10, 23}}, {1350, [2]int{10, 35}}, {1620, [2]int{19, 35}}}},
	33: {2611, 3, [2]int{30, 58}, 0x216f0, [4]level{{540, [2]int{17, 1}}, {980, [2]int{14, 21}}, {1440, [2]int{29, 19}}, {1710, [2]int{11, 46}}}},
	34: {2761, 3, [2]int{34, 62}, 0x228ba, [4]level{{570, [2]int{13, 6}}, {1036, [2]int{14, 23}}, {1530, [2]int{44, 7}}, {1800, [2]int{59, 1}}}},
	35: {2876, 0, [2]int{30, 54}, 0x2379f, [4]level{{570, [2]int{12, 7}}, {1064, [2]int{12, 26}}, {1590, [2]int{39, 14}}, {1890, [2]int{22, 41}}}},
	36: {3034, 0, [2]int{24, 50}, 0x24b0b, [4]level{{600, [2]int{6, 14}}, {1120, [2]int{6, 34}}, {1680, [2]int{46, 10}}, {1980, [2]int{2, 64}}}},
	37: {3196, 0, [2]int{28, 54}, 0x2542e, [4]level{{630, [2]int{17, 4}}, {1204, [2]int{29, 14}}, {1770, [2]int{49, 10}}, {2100, [2]int{24, 46}}}},
	38: {3362, 0, [2]int{32, 58}, 0x26a64, [4]level{{660, [2]int{4, 18}}, {1260, [2]int{13, 32}}, {1860, [2]int{48, 14}}, {2220, [2]int{42, 32}}}},
	39: {3532, 0, [2]int{26, 54}, 0x27541, [4]level{{720, [2]int{20, 4}}, {1316, [2]int{40, 7}}, {1950, [2]int{43, 22}}, {2310, [2]int{10, 67}}}},
	40: {3706, 0, [2]int{30, 58}, 0x28c69, [4]level{{750, [2]int{19, 6}}, {1372, [2]int{18, 31}}, {2040, [2]int{34, 34}}, {2430, [2]int{20, 61}}}},
}
