package lut

// Tables below are indexed by configuration. The trailing comment of each
// row is the classification index of the configuration followed by the
// corners above the isovalue.

// cases maps a classification index to {class, configuration}. The first
// number is the topological class 0-14 and the second the configuration
// within the class, which indexes the class' tiling and test tables.
// Indices 0 and 255 have no surface and a configuration of -1.
var cases = [256][2]int8{
	{0, -1},  // 0
	{1, 0},   // 1: 0
	{1, 1},   // 2: 1
	{2, 0},   // 3: 0, 1
	{1, 2},   // 4: 2
	{3, 0},   // 5: 0, 2
	{2, 3},   // 6: 1, 2
	{5, 0},   // 7: 0, 1, 2
	{1, 3},   // 8: 3
	{2, 1},   // 9: 0, 3
	{3, 3},   // 10: 1, 3
	{5, 1},   // 11: 0, 1, 3
	{2, 5},   // 12: 2, 3
	{5, 4},   // 13: 0, 2, 3
	{5, 9},   // 14: 1, 2, 3
	{8, 0},   // 15: 0, 1, 2, 3
	{1, 4},   // 16: 4
	{2, 2},   // 17: 0, 4
	{3, 4},   // 18: 1, 4
	{5, 2},   // 19: 0, 1, 4
	{4, 2},   // 20: 2, 4
	{6, 2},   // 21: 0, 2, 4
	{6, 9},   // 22: 1, 2, 4
	{11, 0},  // 23: 0, 1, 2, 4
	{3, 8},   // 24: 3, 4
	{5, 5},   // 25: 0, 3, 4
	{7, 3},   // 26: 1, 3, 4
	{9, 1},   // 27: 0, 1, 3, 4
	{6, 16},  // 28: 2, 3, 4
	{14, 3},  // 29: 0, 2, 3, 4
	{12, 12}, // 30: 1, 2, 3, 4
	{5, 24},  // 31: 0, 1, 2, 3, 4
	{1, 5},   // 32: 5
	{3, 1},   // 33: 0, 5
	{2, 4},   // 34: 1, 5
	{5, 3},   // 35: 0, 1, 5
	{3, 6},   // 36: 2, 5
	{7, 0},   // 37: 0, 2, 5
	{5, 10},  // 38: 1, 2, 5
	{9, 0},   // 39: 0, 1, 2, 5
	{4, 3},   // 40: 3, 5
	{6, 4},   // 41: 0, 3, 5
	{6, 11},  // 42: 1, 3, 5
	{14, 1},  // 43: 0, 1, 3, 5
	{6, 17},  // 44: 2, 3, 5
	{12, 4},  // 45: 0, 2, 3, 5
	{11, 6},  // 46: 1, 2, 3, 5
	{5, 25},  // 47: 0, 1, 2, 3, 5
	{2, 8},   // 48: 4, 5
	{5, 7},   // 49: 0, 4, 5
	{5, 12},  // 50: 1, 4, 5
	{8, 1},   // 51: 0, 1, 4, 5
	{6, 18},  // 52: 2, 4, 5
	{12, 5},  // 53: 0, 2, 4, 5
	{14, 7},  // 54: 1, 2, 4, 5
	{5, 28},  // 55: 0, 1, 2, 4, 5
	{6, 21},  // 56: 3, 4, 5
	{11, 4},  // 57: 0, 3, 4, 5
	{12, 15}, // 58: 1, 3, 4, 5
	{5, 30},  // 59: 0, 1, 3, 4, 5
	{10, 5},  // 60: 2, 3, 4, 5
	{6, 32},  // 61: 0, 2, 3, 4, 5
	{6, 39},  // 62: 1, 2, 3, 4, 5
	{2, 12},  // 63: 0, 1, 2, 3, 4, 5
	{1, 6},   // 64: 6
	{4, 0},   // 65: 0, 6
	{3, 5},   // 66: 1, 6
	{6, 0},   // 67: 0, 1, 6
	{2, 6},   // 68: 2, 6
	{6, 3},   // 69: 0, 2, 6
	{5, 11},  // 70: 1, 2, 6
	{14, 0},  // 71: 0, 1, 2, 6
	{3, 9},   // 72: 3, 6
	{6, 5},   // 73: 0, 3, 6
	{7, 4},   // 74: 1, 3, 6
	{12, 1},  // 75: 0, 1, 3, 6
	{5, 14},  // 76: 2, 3, 6
	{11, 3},  // 77: 0, 2, 3, 6
	{9, 4},   // 78: 1, 2, 3, 6
	{5, 26},  // 79: 0, 1, 2, 3, 6
	{3, 10},  // 80: 4, 6
	{6, 6},   // 81: 0, 4, 6
	{7, 5},   // 82: 1, 4, 6
	{12, 2},  // 83: 0, 1, 4, 6
	{6, 19},  // 84: 2, 4, 6
	{10, 1},  // 85: 0, 2, 4, 6
	{12, 13}, // 86: 1, 2, 4, 6
	{6, 24},  // 87: 0, 1, 2, 4, 6
	{7, 7},   // 88: 3, 4, 6
	{12, 9},  // 89: 0, 3, 4, 6
	{13, 1},  // 90: 1, 3, 4, 6
	{7, 9},   // 91: 0, 1, 3, 4, 6
	{12, 20}, // 92: 2, 3, 4, 6
	{6, 33},  // 93: 0, 2, 3, 4, 6
	{7, 13},  // 94: 1, 2, 3, 4, 6
	{3, 12},  // 95: 0, 1, 2, 3, 4, 6
	{2, 10},  // 96: 5, 6
	{6, 7},   // 97: 0, 5, 6
	{5, 13},  // 98: 1, 5, 6
	{11, 2},  // 99: 0, 1, 5, 6
	{5, 16},  // 100: 2, 5, 6
	{12, 7},  // 101: 0, 2, 5, 6
	{8, 3},   // 102: 1, 2, 5, 6
	{5, 29},  // 103: 0, 1, 2, 5, 6
	{6, 22},  // 104: 3, 5, 6
	{10, 2},  // 105: 0, 3, 5, 6
	{12, 17}, // 106: 1, 3, 5, 6
	{6, 27},  // 107: 0, 1, 3, 5, 6
	{14, 9},  // 108: 2, 3, 5, 6
	{6, 34},  // 109: 0, 2, 3, 5, 6
	{5, 39},  // 110: 1, 2, 3, 5, 6
	{2, 14},  // 111: 0, 1, 2, 3, 5, 6
	{5, 20},  // 112: 4, 5, 6
	{14, 5},  // 113: 0, 4, 5, 6
	{9, 5},   // 114: 1, 4, 5, 6
	{5, 32},  // 115: 0, 1, 4, 5, 6
	{11, 10}, // 116: 2, 4, 5, 6
	{6, 35},  // 117: 0, 2, 4, 5, 6
	{5, 41},  // 118: 1, 2, 4, 5, 6
	{2, 16},  // 119: 0, 1, 2, 4, 5, 6
	{12, 23}, // 120: 3, 4, 5, 6
	{6, 37},  // 121: 0, 3, 4, 5, 6
	{7, 14},  // 122: 1, 3, 4, 5, 6
	{3, 16},  // 123: 0, 1, 3, 4, 5, 6
	{6, 46},  // 124: 2, 3, 4, 5, 6
	{4, 6},   // 125: 0, 2, 3, 4, 5, 6
	{3, 21},  // 126: 1, 2, 3, 4, 5, 6
	{1, 8},   // 127: 0, 1, 2, 3, 4, 5, 6
	{1, 7},   // 128: 7
	{3, 2},   // 129: 0, 7
	{4, 1},   // 130: 1, 7
	{6, 1},   // 131: 0, 1, 7
	{3, 7},   // 132: 2, 7
	{7, 1},   // 133: 0, 2, 7
	{6, 10},  // 134: 1, 2, 7
	{12, 0},  // 135: 0, 1, 2, 7
	{2, 7},   // 136: 3, 7
	{5, 6},   // 137: 0, 3, 7
	{6, 12},  // 138: 1, 3, 7
	{11, 1},  // 139: 0, 1, 3, 7
	{5, 15},  // 140: 2, 3, 7
	{9, 2},   // 141: 0, 2, 3, 7
	{14, 6},  // 142: 1, 2, 3, 7
	{5, 27},  // 143: 0, 1, 2, 3, 7
	{2, 9},   // 144: 4, 7
	{5, 8},   // 145: 0, 4, 7
	{6, 13},  // 146: 1, 4, 7
	{14, 2},  // 147: 0, 1, 4, 7
	{6, 20},  // 148: 2, 4, 7
	{12, 6},  // 149: 0, 2, 4, 7
	{10, 3},  // 150: 1, 2, 4, 7
	{6, 25},  // 151: 0, 1, 2, 4, 7
	{5, 18},  // 152: 3, 4, 7
	{8, 2},   // 153: 0, 3, 4, 7
	{12, 16}, // 154: 1, 3, 4, 7
	{5, 31},  // 155: 0, 1, 3, 4, 7
	{11, 9},  // 156: 2, 3, 4, 7
	{5, 34},  // 157: 0, 2, 3, 4, 7
	{6, 40},  // 158: 1, 2, 3, 4, 7
	{2, 13},  // 159: 0, 1, 2, 3, 4, 7
	{3, 11},  // 160: 5, 7
	{7, 2},   // 161: 0, 5, 7
	{6, 14},  // 162: 1, 5, 7
	{12, 3},  // 163: 0, 1, 5, 7
	{7, 6},   // 164: 2, 5, 7
	{13, 0},  // 165: 0, 2, 5, 7
	{12, 14}, // 166: 1, 2, 5, 7
	{7, 8},   // 167: 0, 1, 2, 5, 7
	{6, 23},  // 168: 3, 5, 7
	{12, 10}, // 169: 0, 3, 5, 7
	{10, 4},  // 170: 1, 3, 5, 7
	{6, 28},  // 171: 0, 1, 3, 5, 7
	{12, 21}, // 172: 2, 3, 5, 7
	{7, 10},  // 173: 0, 2, 3, 5, 7
	{6, 41},  // 174: 1, 2, 3, 5, 7
	{3, 13},  // 175: 0, 1, 2, 3, 5, 7
	{5, 21},  // 176: 4, 5, 7
	{9, 3},   // 177: 0, 4, 5, 7
	{11, 8},  // 178: 1, 4, 5, 7
	{5, 33},  // 179: 0, 1, 4, 5, 7
	{12, 22}, // 180: 2, 4, 5, 7
	{7, 11},  // 181: 0, 2, 4, 5, 7
	{6, 42},  // 182: 1, 2, 4, 5, 7
	{3, 14},  // 183: 0, 1, 2, 4, 5, 7
	{14, 11}, // 184: 3, 4, 5, 7
	{5, 36},  // 185: 0, 3, 4, 5, 7
	{6, 44},  // 186: 1, 3, 4, 5, 7
	{2, 17},  // 187: 0, 1, 3, 4, 5, 7
	{6, 47},  // 188: 2, 3, 4, 5, 7
	{3, 18},  // 189: 0, 2, 3, 4, 5, 7
	{4, 7},   // 190: 1, 2, 3, 4, 5, 7
	{1, 9},   // 191: 0, 1, 2, 3, 4, 5, 7
	{2, 11},  // 192: 6, 7
	{6, 8},   // 193: 0, 6, 7
	{6, 15},  // 194: 1, 6, 7
	{10, 0},  // 195: 0, 1, 6, 7
	{5, 17},  // 196: 2, 6, 7
	{12, 8},  // 197: 0, 2, 6, 7
	{11, 7},  // 198: 1, 2, 6, 7
	{6, 26},  // 199: 0, 1, 2, 6, 7
	{5, 19},  // 200: 3, 6, 7
	{14, 4},  // 201: 0, 3, 6, 7
	{12, 18}, // 202: 1, 3, 6, 7
	{6, 29},  // 203: 0, 1, 3, 6, 7
	{8, 4},   // 204: 2, 3, 6, 7
	{5, 35},  // 205: 0, 2, 3, 6, 7
	{5, 40},  // 206: 1, 2, 3, 6, 7
	{2, 15},  // 207: 0, 1, 2, 3, 6, 7
	{5, 22},  // 208: 4, 6, 7
	{11, 5},  // 209: 0, 4, 6, 7
	{12, 19}, // 210: 1, 4, 6, 7
	{6, 30},  // 211: 0, 1, 4, 6, 7
	{14, 10}, // 212: 2, 4, 6, 7
	{6, 36},  // 213: 0, 2, 4, 6, 7
	{6, 43},  // 214: 1, 2, 4, 6, 7
	{4, 4},   // 215: 0, 1, 2, 4, 6, 7
	{9, 7},   // 216: 3, 4, 6, 7
	{5, 37},  // 217: 0, 3, 4, 6, 7
	{7, 15},  // 218: 1, 3, 4, 6, 7
	{3, 17},  // 219: 0, 1, 3, 4, 6, 7
	{5, 44},  // 220: 2, 3, 4, 6, 7
	{2, 19},  // 221: 0, 2, 3, 4, 6, 7
	{3, 22},  // 222: 1, 2, 3, 4, 6, 7
	{1, 10},  // 223: 0, 1, 2, 3, 4, 6, 7
	{5, 23},  // 224: 5, 6, 7
	{12, 11}, // 225: 0, 5, 6, 7
	{14, 8},  // 226: 1, 5, 6, 7
	{6, 31},  // 227: 0, 1, 5, 6, 7
	{9, 6},   // 228: 2, 5, 6, 7
	{7, 12},  // 229: 0, 2, 5, 6, 7
	{5, 42},  // 230: 1, 2, 5, 6, 7
	{3, 15},  // 231: 0, 1, 2, 5, 6, 7
	{11, 11}, // 232: 3, 5, 6, 7
	{6, 38},  // 233: 0, 3, 5, 6, 7
	{6, 45},  // 234: 1, 3, 5, 6, 7
	{4, 5},   // 235: 0, 1, 3, 5, 6, 7
	{5, 45},  // 236: 2, 3, 5, 6, 7
	{3, 19},  // 237: 0, 2, 3, 5, 6, 7
	{2, 21},  // 238: 1, 2, 3, 5, 6, 7
	{1, 11},  // 239: 0, 1, 2, 3, 5, 6, 7
	{8, 5},   // 240: 4, 5, 6, 7
	{5, 38},  // 241: 0, 4, 5, 6, 7
	{5, 43},  // 242: 1, 4, 5, 6, 7
	{2, 18},  // 243: 0, 1, 4, 5, 6, 7
	{5, 46},  // 244: 2, 4, 5, 6, 7
	{3, 20},  // 245: 0, 2, 4, 5, 6, 7
	{2, 22},  // 246: 1, 2, 4, 5, 6, 7
	{1, 12},  // 247: 0, 1, 2, 4, 5, 6, 7
	{5, 47},  // 248: 3, 4, 5, 6, 7
	{2, 20},  // 249: 0, 3, 4, 5, 6, 7
	{3, 23},  // 250: 1, 3, 4, 5, 6, 7
	{1, 13},  // 251: 0, 1, 3, 4, 5, 6, 7
	{2, 23},  // 252: 2, 3, 4, 5, 6, 7
	{1, 14},  // 253: 0, 2, 3, 4, 5, 6, 7
	{1, 15},  // 254: 1, 2, 3, 4, 5, 6, 7
	{0, -1},  // 255: 0, 1, 2, 3, 4, 5, 6, 7
}

// Tiling1 triangulates a single corner cut off.
var Tiling1 = [16][1]Triangle{
	{{0, 8, 3}},  // 1: 0
	{{0, 1, 9}},  // 2: 1
	{{1, 2, 10}}, // 4: 2
	{{3, 11, 2}}, // 8: 3
	{{4, 7, 8}},  // 16: 4
	{{9, 5, 4}},  // 32: 5
	{{10, 6, 5}}, // 64: 6
	{{7, 6, 11}}, // 128: 7
	{{7, 11, 6}}, // 127: 0, 1, 2, 3, 4, 5, 6
	{{10, 5, 6}}, // 191: 0, 1, 2, 3, 4, 5, 7
	{{9, 4, 5}},  // 223: 0, 1, 2, 3, 4, 6, 7
	{{4, 8, 7}},  // 239: 0, 1, 2, 3, 5, 6, 7
	{{3, 2, 11}}, // 247: 0, 1, 2, 4, 5, 6, 7
	{{1, 10, 2}}, // 251: 0, 1, 3, 4, 5, 6, 7
	{{0, 9, 1}},  // 253: 0, 2, 3, 4, 5, 6, 7
	{{0, 3, 8}},  // 254: 1, 2, 3, 4, 5, 6, 7
}

// Tiling2 triangulates two corners sharing an edge.
var Tiling2 = [24][2]Triangle{
	{{1, 8, 3}, {9, 8, 1}},    // 3: 0, 1
	{{0, 11, 2}, {8, 11, 0}},  // 9: 0, 3
	{{4, 3, 0}, {7, 3, 4}},    // 17: 0, 4
	{{9, 2, 10}, {0, 2, 9}},   // 6: 1, 2
	{{0, 5, 4}, {1, 5, 0}},    // 34: 1, 5
	{{3, 10, 1}, {11, 10, 3}}, // 12: 2, 3
	{{1, 6, 5}, {2, 6, 1}},    // 68: 2, 6
	{{7, 2, 3}, {6, 2, 7}},    // 136: 3, 7
	{{9, 7, 8}, {5, 7, 9}},    // 48: 4, 5
	{{6, 8, 4}, {11, 8, 6}},   // 144: 4, 7
	{{10, 4, 9}, {6, 4, 10}},  // 96: 5, 6
	{{11, 5, 10}, {7, 5, 11}}, // 192: 6, 7
	{{11, 10, 5}, {7, 11, 5}}, // 63: 0, 1, 2, 3, 4, 5
	{{10, 9, 4}, {6, 10, 4}},  // 159: 0, 1, 2, 3, 4, 7
	{{6, 4, 8}, {11, 6, 8}},   // 111: 0, 1, 2, 3, 5, 6
	{{9, 8, 7}, {5, 9, 7}},    // 207: 0, 1, 2, 3, 6, 7
	{{7, 3, 2}, {6, 7, 2}},    // 119: 0, 1, 2, 4, 5, 6
	{{1, 5, 6}, {2, 1, 6}},    // 187: 0, 1, 3, 4, 5, 7
	{{3, 1, 10}, {11, 3, 10}}, // 243: 0, 1, 4, 5, 6, 7
	{{0, 4, 5}, {1, 0, 5}},    // 221: 0, 2, 3, 4, 6, 7
	{{9, 10, 2}, {0, 9, 2}},   // 249: 0, 3, 4, 5, 6, 7
	{{4, 0, 3}, {7, 4, 3}},    // 238: 1, 2, 3, 5, 6, 7
	{{0, 2, 11}, {8, 0, 11}},  // 246: 1, 2, 4, 5, 6, 7
	{{1, 3, 8}, {9, 1, 8}},    // 252: 2, 3, 4, 5, 6, 7
}

// Test3 is the face tested to tell apart the two corners on a face diagonal.
var Test3 = [24]int8{
	5,  // 5: 0, 2
	1,  // 33: 0, 5
	4,  // 129: 0, 7
	5,  // 10: 1, 3
	1,  // 18: 1, 4
	2,  // 66: 1, 6
	2,  // 36: 2, 5
	3,  // 132: 2, 7
	4,  // 24: 3, 4
	3,  // 72: 3, 6
	6,  // 80: 4, 6
	6,  // 160: 5, 7
	-6, // 95: 0, 1, 2, 3, 4, 6
	-6, // 175: 0, 1, 2, 3, 5, 7
	-3, // 183: 0, 1, 2, 4, 5, 7
	-4, // 231: 0, 1, 2, 5, 6, 7
	-3, // 123: 0, 1, 3, 4, 5, 6
	-2, // 219: 0, 1, 3, 4, 6, 7
	-2, // 189: 0, 2, 3, 4, 5, 7
	-1, // 237: 0, 2, 3, 5, 6, 7
	-5, // 245: 0, 2, 4, 5, 6, 7
	-4, // 126: 1, 2, 3, 4, 5, 6
	-1, // 222: 1, 2, 3, 4, 6, 7
	-5, // 250: 1, 3, 4, 5, 6, 7
}

// Tiling3_1 separates the two corners of the ambiguous face.
var Tiling3_1 = [24][2]Triangle{
	{{0, 8, 3}, {1, 2, 10}},  // 5: 0, 2
	{{9, 5, 4}, {0, 8, 3}},   // 33: 0, 5
	{{3, 0, 8}, {11, 7, 6}},  // 129: 0, 7
	{{1, 9, 0}, {2, 3, 11}},  // 10: 1, 3
	{{0, 1, 9}, {8, 4, 7}},   // 18: 1, 4
	{{9, 0, 1}, {5, 10, 6}},  // 66: 1, 6
	{{1, 2, 10}, {9, 5, 4}},  // 36: 2, 5
	{{10, 1, 2}, {6, 11, 7}}, // 132: 2, 7
	{{8, 4, 7}, {3, 11, 2}},  // 24: 3, 4
	{{2, 3, 11}, {10, 6, 5}}, // 72: 3, 6
	{{5, 10, 6}, {4, 7, 8}},  // 80: 4, 6
	{{4, 9, 5}, {7, 6, 11}},  // 160: 5, 7
	{{5, 9, 4}, {11, 6, 7}},  // 95: 0, 1, 2, 3, 4, 6
	{{6, 10, 5}, {8, 7, 4}},  // 175: 0, 1, 2, 3, 5, 7
	{{11, 3, 2}, {5, 6, 10}}, // 183: 0, 1, 2, 4, 5, 7
	{{7, 4, 8}, {2, 11, 3}},  // 231: 0, 1, 2, 5, 6, 7
	{{2, 1, 10}, {7, 11, 6}}, // 123: 0, 1, 3, 4, 5, 6
	{{10, 2, 1}, {4, 5, 9}},  // 219: 0, 1, 3, 4, 6, 7
	{{1, 0, 9}, {6, 10, 5}},  // 189: 0, 2, 3, 4, 5, 7
	{{9, 1, 0}, {7, 4, 8}},   // 237: 0, 2, 3, 5, 6, 7
	{{0, 9, 1}, {11, 3, 2}},  // 245: 0, 2, 4, 5, 6, 7
	{{8, 0, 3}, {6, 7, 11}},  // 126: 1, 2, 3, 4, 5, 6
	{{4, 5, 9}, {3, 8, 0}},   // 222: 1, 2, 3, 4, 6, 7
	{{3, 8, 0}, {10, 2, 1}},  // 250: 1, 3, 4, 5, 6, 7
}

// Tiling3_2 joins the two corners with a band across the ambiguous face.
var Tiling3_2 = [24][4]Triangle{
	{{10, 3, 2}, {10, 8, 3}, {10, 1, 0}, {8, 10, 0}}, // 5: 0, 2
	{{3, 4, 8}, {3, 5, 4}, {3, 0, 9}, {5, 3, 9}},     // 33: 0, 5
	{{6, 8, 7}, {6, 0, 8}, {6, 11, 3}, {0, 6, 3}},    // 129: 0, 7
	{{11, 0, 3}, {11, 9, 0}, {11, 2, 1}, {9, 11, 1}}, // 10: 1, 3
	{{7, 9, 4}, {7, 1, 9}, {7, 8, 0}, {1, 7, 0}},     // 18: 1, 4
	{{6, 1, 10}, {6, 0, 1}, {9, 0, 6}, {9, 6, 5}},    // 66: 1, 6
	{{4, 10, 5}, {4, 2, 10}, {4, 9, 1}, {2, 4, 1}},   // 36: 2, 5
	{{7, 2, 11}, {7, 1, 2}, {7, 6, 10}, {1, 7, 10}},  // 132: 2, 7
	{{2, 7, 11}, {2, 4, 7}, {2, 3, 8}, {4, 2, 8}},    // 24: 3, 4
	{{5, 11, 6}, {5, 3, 11}, {5, 10, 2}, {3, 5, 2}},  // 72: 3, 6
	{{8, 6, 7}, {8, 10, 6}, {8, 4, 5}, {10, 8, 5}},   // 80: 4, 6
	{{11, 5, 6}, {11, 9, 5}, {11, 7, 4}, {9, 11, 4}}, // 160: 5, 7
	{{6, 5, 11}, {5, 9, 11}, {4, 7, 11}, {4, 11, 9}}, // 95: 0, 1, 2, 3, 4, 6
	{{7, 6, 8}, {6, 10, 8}, {5, 4, 8}, {5, 8, 10}},   // 175: 0, 1, 2, 3, 5, 7
	{{6, 11, 5}, {11, 3, 5}, {2, 10, 5}, {2, 5, 3}},  // 183: 0, 1, 2, 4, 5, 7
	{{11, 7, 2}, {7, 4, 2}, {8, 3, 2}, {8, 2, 4}},    // 231: 0, 1, 2, 5, 6, 7
	{{11, 2, 7}, {2, 1, 7}, {10, 6, 7}, {10, 7, 1}},  // 123: 0, 1, 3, 4, 5, 6
	{{5, 10, 4}, {10, 2, 4}, {1, 9, 4}, {1, 4, 2}},   // 219: 0, 1, 3, 4, 6, 7
	{{10, 1, 6}, {1, 0, 6}, {6, 0, 9}, {5, 6, 9}},    // 189: 0, 2, 3, 4, 5, 7
	{{4, 9, 7}, {9, 1, 7}, {0, 8, 7}, {0, 7, 1}},     // 237: 0, 2, 3, 5, 6, 7
	{{3, 0, 11}, {0, 9, 11}, {1, 2, 11}, {1, 11, 9}}, // 245: 0, 2, 4, 5, 6, 7
	{{7, 8, 6}, {8, 0, 6}, {3, 11, 6}, {3, 6, 0}},    // 126: 1, 2, 3, 4, 5, 6
	{{8, 4, 3}, {4, 5, 3}, {9, 0, 3}, {9, 3, 5}},     // 222: 1, 2, 3, 4, 6, 7
	{{2, 3, 10}, {3, 8, 10}, {0, 1, 10}, {0, 10, 8}}, // 250: 1, 3, 4, 5, 6, 7
}

// Test4 holds the sign of the interior test for two opposite corners.
var Test4 = [8]int8{
	7,  // 65: 0, 6
	7,  // 130: 1, 7
	7,  // 20: 2, 4
	7,  // 40: 3, 5
	-7, // 215: 0, 1, 2, 4, 6, 7
	-7, // 235: 0, 1, 3, 5, 6, 7
	-7, // 125: 0, 2, 3, 4, 5, 6
	-7, // 190: 1, 2, 3, 4, 5, 7
}

// Tiling4_1 cuts off the two opposite corners separately.
var Tiling4_1 = [8][2]Triangle{
	{{0, 8, 3}, {5, 10, 6}}, // 65: 0, 6
	{{0, 1, 9}, {11, 7, 6}}, // 130: 1, 7
	{{1, 2, 10}, {8, 4, 7}}, // 20: 2, 4
	{{9, 5, 4}, {2, 3, 11}}, // 40: 3, 5
	{{4, 5, 9}, {11, 3, 2}}, // 215: 0, 1, 2, 4, 6, 7
	{{10, 2, 1}, {7, 4, 8}}, // 235: 0, 1, 3, 5, 6, 7
	{{9, 1, 0}, {6, 7, 11}}, // 125: 0, 2, 3, 4, 5, 6
	{{3, 8, 0}, {6, 10, 5}}, // 190: 1, 2, 3, 4, 5, 7
}

// Tiling4_2 joins the two opposite corners with a tube through the cube.
var Tiling4_2 = [8][6]Triangle{
	{{8, 5, 0}, {5, 8, 6}, {3, 6, 8}, {6, 3, 10}, {0, 10, 3}, {10, 0, 5}}, // 65: 0, 6
	{{9, 6, 1}, {6, 9, 7}, {0, 7, 9}, {7, 0, 11}, {1, 11, 0}, {11, 1, 6}}, // 130: 1, 7
	{{10, 7, 2}, {7, 10, 4}, {1, 4, 10}, {4, 1, 8}, {2, 8, 1}, {8, 2, 7}}, // 20: 2, 4
	{{11, 4, 3}, {4, 11, 5}, {2, 5, 11}, {5, 2, 9}, {3, 9, 2}, {9, 3, 4}}, // 40: 3, 5
	{{3, 4, 11}, {5, 11, 4}, {11, 5, 2}, {9, 2, 5}, {2, 9, 3}, {4, 3, 9}}, // 215: 0, 1, 2, 4, 6, 7
	{{2, 7, 10}, {4, 10, 7}, {10, 4, 1}, {8, 1, 4}, {1, 8, 2}, {7, 2, 8}}, // 235: 0, 1, 3, 5, 6, 7
	{{1, 6, 9}, {7, 9, 6}, {9, 7, 0}, {11, 0, 7}, {0, 11, 1}, {6, 1, 11}}, // 125: 0, 2, 3, 4, 5, 6
	{{0, 5, 8}, {6, 8, 5}, {8, 6, 3}, {10, 3, 6}, {3, 10, 0}, {5, 0, 10}}, // 190: 1, 2, 3, 4, 5, 7
}

// Tiling5 triangulates three corners of a face.
var Tiling5 = [48][3]Triangle{
	{{2, 8, 3}, {2, 10, 8}, {10, 9, 8}},   // 7: 0, 1, 2
	{{1, 11, 2}, {1, 9, 11}, {9, 8, 11}},  // 11: 0, 1, 3
	{{4, 1, 9}, {4, 7, 1}, {7, 3, 1}},     // 19: 0, 1, 4
	{{8, 5, 4}, {8, 3, 5}, {3, 1, 5}},     // 35: 0, 1, 5
	{{0, 10, 1}, {0, 8, 10}, {8, 11, 10}}, // 13: 0, 2, 3
	{{11, 4, 7}, {11, 2, 4}, {2, 0, 4}},   // 25: 0, 3, 4
	{{7, 0, 8}, {7, 6, 0}, {6, 2, 0}},     // 137: 0, 3, 7
	{{9, 3, 0}, {9, 5, 3}, {5, 7, 3}},     // 49: 0, 4, 5
	{{3, 6, 11}, {3, 0, 6}, {0, 4, 6}},    // 145: 0, 4, 7
	{{3, 9, 0}, {3, 11, 9}, {11, 10, 9}},  // 14: 1, 2, 3
	{{5, 2, 10}, {5, 4, 2}, {4, 0, 2}},    // 38: 1, 2, 5
	{{9, 6, 5}, {9, 0, 6}, {0, 2, 6}},     // 70: 1, 2, 6
	{{0, 7, 8}, {0, 1, 7}, {1, 5, 7}},     // 50: 1, 4, 5
	{{10, 0, 1}, {10, 6, 0}, {6, 4, 0}},   // 98: 1, 5, 6
	{{6, 3, 11}, {6, 5, 3}, {5, 1, 3}},    // 76: 2, 3, 6
	{{10, 7, 6}, {10, 1, 7}, {1, 3, 7}},   // 140: 2, 3, 7
	{{1, 4, 9}, {1, 2, 4}, {2, 6, 4}},     // 100: 2, 5, 6
	{{11, 1, 2}, {11, 7, 1}, {7, 5, 1}},   // 196: 2, 6, 7
	{{8, 2, 3}, {8, 4, 2}, {4, 6, 2}},     // 152: 3, 4, 7
	{{2, 5, 10}, {2, 3, 5}, {3, 7, 5}},    // 200: 3, 6, 7
	{{7, 10, 6}, {7, 8, 10}, {8, 9, 10}},  // 112: 4, 5, 6
	{{6, 9, 5}, {6, 11, 9}, {11, 8, 9}},   // 176: 4, 5, 7
	{{5, 8, 4}, {5, 10, 8}, {10, 11, 8}},  // 208: 4, 6, 7
	{{4, 11, 7}, {4, 9, 11}, {9, 10, 11}}, // 224: 5, 6, 7
	{{4, 7, 11}, {4, 11, 9}, {9, 11, 10}}, // 31: 0, 1, 2, 3, 4
	{{5, 4, 8}, {5, 8, 10}, {10, 8, 11}},  // 47: 0, 1, 2, 3, 5
	{{6, 5, 9}, {6, 9, 11}, {11, 9, 8}},   // 79: 0, 1, 2, 3, 6
	{{7, 6, 10}, {7, 10, 8}, {8, 10, 9}},  // 143: 0, 1, 2, 3, 7
	{{2, 10, 5}, {2, 5, 3}, {3, 5, 7}},    // 55: 0, 1, 2, 4, 5
	{{8, 3, 2}, {8, 2, 4}, {4, 2, 6}},     // 103: 0, 1, 2, 5, 6
	{{11, 2, 1}, {11, 1, 7}, {7, 1, 5}},   // 59: 0, 1, 3, 4, 5
	{{1, 9, 4}, {1, 4, 2}, {2, 4, 6}},     // 155: 0, 1, 3, 4, 7
	{{10, 6, 7}, {10, 7, 1}, {1, 7, 3}},   // 115: 0, 1, 4, 5, 6
	{{6, 11, 3}, {6, 3, 5}, {5, 3, 1}},    // 179: 0, 1, 4, 5, 7
	{{10, 1, 0}, {10, 0, 6}, {6, 0, 4}},   // 157: 0, 2, 3, 4, 7
	{{0, 8, 7}, {0, 7, 1}, {1, 7, 5}},     // 205: 0, 2, 3, 6, 7
	{{9, 5, 6}, {9, 6, 0}, {0, 6, 2}},     // 185: 0, 3, 4, 5, 7
	{{5, 10, 2}, {5, 2, 4}, {4, 2, 0}},    // 217: 0, 3, 4, 6, 7
	{{3, 0, 9}, {3, 9, 11}, {11, 9, 10}},  // 241: 0, 4, 5, 6, 7
	{{3, 11, 6}, {3, 6, 0}, {0, 6, 4}},    // 110: 1, 2, 3, 5, 6
	{{9, 0, 3}, {9, 3, 5}, {5, 3, 7}},     // 206: 1, 2, 3, 6, 7
	{{7, 8, 0}, {7, 0, 6}, {6, 0, 2}},     // 118: 1, 2, 4, 5, 6
	{{11, 7, 4}, {11, 4, 2}, {2, 4, 0}},   // 230: 1, 2, 5, 6, 7
	{{0, 1, 10}, {0, 10, 8}, {8, 10, 11}}, // 242: 1, 4, 5, 6, 7
	{{8, 4, 5}, {8, 5, 3}, {3, 5, 1}},     // 220: 2, 3, 4, 6, 7
	{{4, 9, 1}, {4, 1, 7}, {7, 1, 3}},     // 236: 2, 3, 5, 6, 7
	{{1, 2, 11}, {1, 11, 9}, {9, 11, 8}},  // 244: 2, 4, 5, 6, 7
	{{2, 3, 8}, {2, 8, 10}, {10, 8, 9}},   // 248: 3, 4, 5, 6, 7
}

// Test6 holds per configuration the tested face, the interior test sign and
// the interior test reference edge.
var Test6 = [48][3]int8{
	{2, 7, 10},   // 67: 0, 1, 6
	{4, 7, 11},   // 131: 0, 1, 7
	{5, 7, 1},    // 21: 0, 2, 4
	{5, 7, 3},    // 69: 0, 2, 6
	{1, 7, 9},    // 41: 0, 3, 5
	{3, 7, 10},   // 73: 0, 3, 6
	{6, 7, 5},    // 81: 0, 4, 6
	{1, 7, 8},    // 97: 0, 5, 6
	{4, 7, 8},    // 193: 0, 6, 7
	{1, 7, 8},    // 22: 1, 2, 4
	{3, 7, 11},   // 134: 1, 2, 7
	{5, 7, 2},    // 42: 1, 3, 5
	{5, 7, 0},    // 138: 1, 3, 7
	{1, 7, 9},    // 146: 1, 4, 7
	{6, 7, 6},    // 162: 1, 5, 7
	{2, 7, 9},    // 194: 1, 6, 7
	{4, 7, 8},    // 28: 2, 3, 4
	{2, 7, 9},    // 44: 2, 3, 5
	{2, 7, 10},   // 52: 2, 4, 5
	{6, 7, 7},    // 84: 2, 4, 6
	{3, 7, 10},   // 148: 2, 4, 7
	{4, 7, 11},   // 56: 3, 4, 5
	{3, 7, 11},   // 104: 3, 5, 6
	{6, 7, 4},    // 168: 3, 5, 7
	{-6, -7, 4},  // 87: 0, 1, 2, 4, 6
	{-3, -7, 11}, // 151: 0, 1, 2, 4, 7
	{-4, -7, 11}, // 199: 0, 1, 2, 6, 7
	{-3, -7, 10}, // 107: 0, 1, 3, 5, 6
	{-6, -7, 7},  // 171: 0, 1, 3, 5, 7
	{-2, -7, 10}, // 203: 0, 1, 3, 6, 7
	{-2, -7, 9},  // 211: 0, 1, 4, 6, 7
	{-4, -7, 8},  // 227: 0, 1, 5, 6, 7
	{-2, -7, 9},  // 61: 0, 2, 3, 4, 5
	{-6, -7, 6},  // 93: 0, 2, 3, 4, 6
	{-1, -7, 9},  // 109: 0, 2, 3, 5, 6
	{-5, -7, 0},  // 117: 0, 2, 4, 5, 6
	{-5, -7, 2},  // 213: 0, 2, 4, 6, 7
	{-3, -7, 11}, // 121: 0, 3, 4, 5, 6
	{-1, -7, 8},  // 233: 0, 3, 5, 6, 7
	{-4, -7, 8},  // 62: 1, 2, 3, 4, 5
	{-1, -7, 8},  // 158: 1, 2, 3, 4, 7
	{-6, -7, 5},  // 174: 1, 2, 3, 5, 7
	{-3, -7, 10}, // 182: 1, 2, 4, 5, 7
	{-1, -7, 9},  // 214: 1, 2, 4, 6, 7
	{-5, -7, 3},  // 186: 1, 3, 4, 5, 7
	{-5, -7, 1},  // 234: 1, 3, 5, 6, 7
	{-4, -7, 11}, // 124: 2, 3, 4, 5, 6
	{-2, -7, 10}, // 188: 2, 3, 4, 5, 7
}

var Tiling6_1_1 = [48][3]Triangle{
	{{1, 9, 3}, {9, 8, 3}, {5, 10, 6}},   // 67: 0, 1, 6
	{{1, 9, 3}, {9, 8, 3}, {6, 11, 7}},   // 131: 0, 1, 7
	{{0, 4, 3}, {4, 7, 3}, {1, 2, 10}},   // 21: 0, 2, 4
	{{0, 8, 3}, {1, 2, 5}, {2, 6, 5}},    // 69: 0, 2, 6
	{{0, 8, 2}, {8, 11, 2}, {4, 9, 5}},   // 41: 0, 3, 5
	{{0, 8, 2}, {8, 11, 2}, {5, 10, 6}},  // 73: 0, 3, 6
	{{0, 4, 3}, {4, 7, 3}, {5, 10, 6}},   // 81: 0, 4, 6
	{{0, 8, 3}, {4, 9, 6}, {9, 10, 6}},   // 97: 0, 5, 6
	{{0, 8, 3}, {5, 10, 7}, {10, 11, 7}}, // 193: 0, 6, 7
	{{0, 2, 9}, {2, 10, 9}, {4, 7, 8}},   // 22: 1, 2, 4
	{{0, 2, 9}, {2, 10, 9}, {6, 11, 7}},  // 134: 1, 2, 7
	{{0, 1, 4}, {1, 5, 4}, {2, 3, 11}},   // 42: 1, 3, 5
	{{0, 1, 9}, {2, 3, 6}, {3, 7, 6}},    // 138: 1, 3, 7
	{{0, 1, 9}, {4, 6, 8}, {6, 11, 8}},   // 146: 1, 4, 7
	{{0, 1, 4}, {1, 5, 4}, {6, 11, 7}},   // 162: 1, 5, 7
	{{0, 1, 9}, {5, 10, 7}, {10, 11, 7}}, // 194: 1, 6, 7
	{{1, 3, 10}, {3, 11, 10}, {4, 7, 8}}, // 28: 2, 3, 4
	{{1, 3, 10}, {3, 11, 10}, {4, 9, 5}}, // 44: 2, 3, 5
	{{1, 2, 10}, {5, 7, 9}, {7, 8, 9}},   // 52: 2, 4, 5
	{{1, 2, 5}, {2, 6, 5}, {4, 7, 8}},    // 84: 2, 4, 6
	{{1, 2, 10}, {4, 6, 8}, {6, 11, 8}},  // 148: 2, 4, 7
	{{2, 3, 11}, {5, 7, 9}, {7, 8, 9}},   // 56: 3, 4, 5
	{{2, 3, 11}, {4, 9, 6}, {9, 10, 6}},  // 104: 3, 5, 6
	{{2, 3, 6}, {3, 7, 6}, {4, 9, 5}},    // 168: 3, 5, 7
	{{6, 3, 2}, {6, 7, 3}, {5, 9, 4}},    // 87: 0, 1, 2, 4, 6
	{{11, 3, 2}, {6, 9, 4}, {6, 10, 9}},  // 151: 0, 1, 2, 4, 7
	{{11, 3, 2}, {9, 7, 5}, {9, 8, 7}},   // 199: 0, 1, 2, 6, 7
	{{10, 2, 1}, {8, 6, 4}, {8, 11, 6}},  // 107: 0, 1, 3, 5, 6
	{{5, 2, 1}, {5, 6, 2}, {8, 7, 4}},    // 171: 0, 1, 3, 5, 7
	{{10, 2, 1}, {9, 7, 5}, {9, 8, 7}},   // 203: 0, 1, 3, 6, 7
	{{10, 3, 1}, {10, 11, 3}, {5, 9, 4}}, // 211: 0, 1, 4, 6, 7
	{{10, 3, 1}, {10, 11, 3}, {8, 7, 4}}, // 227: 0, 1, 5, 6, 7
	{{9, 1, 0}, {7, 10, 5}, {7, 11, 10}}, // 61: 0, 2, 3, 4, 5
	{{4, 1, 0}, {4, 5, 1}, {7, 11, 6}},   // 93: 0, 2, 3, 4, 6
	{{9, 1, 0}, {8, 6, 4}, {8, 11, 6}},   // 109: 0, 2, 3, 5, 6
	{{9, 1, 0}, {6, 3, 2}, {6, 7, 3}},    // 117: 0, 2, 4, 5, 6
	{{4, 1, 0}, {4, 5, 1}, {11, 3, 2}},   // 213: 0, 2, 4, 6, 7
	{{9, 2, 0}, {9, 10, 2}, {7, 11, 6}},  // 121: 0, 3, 4, 5, 6
	{{9, 2, 0}, {9, 10, 2}, {8, 7, 4}},   // 233: 0, 3, 5, 6, 7
	{{3, 8, 0}, {7, 10, 5}, {7, 11, 10}}, // 62: 1, 2, 3, 4, 5
	{{3, 8, 0}, {6, 9, 4}, {6, 10, 9}},   // 158: 1, 2, 3, 4, 7
	{{3, 4, 0}, {3, 7, 4}, {6, 10, 5}},   // 174: 1, 2, 3, 5, 7
	{{2, 8, 0}, {2, 11, 8}, {6, 10, 5}},  // 182: 1, 2, 4, 5, 7
	{{2, 8, 0}, {2, 11, 8}, {5, 9, 4}},   // 214: 1, 2, 4, 6, 7
	{{3, 8, 0}, {5, 2, 1}, {5, 6, 2}},    // 186: 1, 3, 4, 5, 7
	{{3, 4, 0}, {3, 7, 4}, {10, 2, 1}},   // 234: 1, 3, 5, 6, 7
	{{3, 9, 1}, {3, 8, 9}, {7, 11, 6}},   // 124: 2, 3, 4, 5, 6
	{{3, 9, 1}, {3, 8, 9}, {6, 10, 5}},   // 188: 2, 3, 4, 5, 7
}

var Tiling6_1_2 = [48][9]Triangle{
	{{1, 9, 12}, {9, 8, 12}, {3, 1, 12}, {5, 10, 12}, {6, 5, 12}, {8, 3, 6}, {10, 6, 3}, {8, 6, 12}, {10, 3, 12}},    // 67: 0, 1, 6
	{{9, 8, 12}, {8, 3, 12}, {3, 1, 12}, {6, 11, 12}, {11, 7, 12}, {1, 9, 6}, {7, 6, 9}, {1, 6, 12}, {7, 9, 12}},     // 131: 0, 1, 7
	{{0, 4, 12}, {7, 3, 12}, {3, 0, 12}, {1, 2, 12}, {10, 1, 12}, {4, 7, 10}, {2, 10, 7}, {4, 10, 12}, {2, 7, 12}},   // 21: 0, 2, 4
	{{1, 2, 12}, {2, 6, 12}, {5, 1, 12}, {8, 3, 12}, {3, 0, 12}, {6, 5, 8}, {0, 8, 5}, {6, 8, 12}, {0, 5, 12}},       // 69: 0, 2, 6
	{{0, 8, 12}, {8, 11, 12}, {2, 0, 12}, {4, 9, 12}, {5, 4, 12}, {11, 2, 5}, {9, 5, 2}, {11, 5, 12}, {9, 2, 12}},    // 41: 0, 3, 5
	{{8, 11, 12}, {11, 2, 12}, {2, 0, 12}, {5, 10, 12}, {10, 6, 12}, {0, 8, 5}, {6, 5, 8}, {0, 5, 12}, {6, 8, 12}},   // 73: 0, 3, 6
	{{0, 4, 12}, {4, 7, 12}, {7, 3, 12}, {10, 6, 12}, {6, 5, 12}, {3, 0, 10}, {5, 10, 0}, {3, 10, 12}, {5, 0, 12}},   // 81: 0, 4, 6
	{{4, 9, 12}, {9, 10, 12}, {6, 4, 12}, {0, 8, 12}, {3, 0, 12}, {10, 6, 3}, {8, 3, 6}, {10, 3, 12}, {8, 6, 12}},    // 97: 0, 5, 6
	{{10, 11, 12}, {11, 7, 12}, {7, 5, 12}, {0, 8, 12}, {8, 3, 12}, {5, 10, 0}, {3, 0, 10}, {5, 0, 12}, {3, 10, 12}}, // 193: 0, 6, 7
	{{0, 2, 12}, {10, 9, 12}, {9, 0, 12}, {7, 8, 12}, {8, 4, 12}, {2, 10, 7}, {4, 7, 10}, {2, 7, 12}, {4, 10, 12}},   // 22: 1, 2, 4
	{{0, 2, 12}, {2, 10, 12}, {10, 9, 12}, {6, 11, 12}, {7, 6, 12}, {9, 0, 7}, {11, 7, 0}, {9, 7, 12}, {11, 0, 12}},  // 134: 1, 2, 7
	{{0, 1, 12}, {1, 5, 12}, {4, 0, 12}, {2, 3, 12}, {11, 2, 12}, {5, 4, 11}, {3, 11, 4}, {5, 11, 12}, {3, 4, 12}},   // 42: 1, 3, 5
	{{2, 3, 12}, {3, 7, 12}, {6, 2, 12}, {0, 1, 12}, {9, 0, 12}, {7, 6, 9}, {1, 9, 6}, {7, 9, 12}, {1, 6, 12}},       // 138: 1, 3, 7
	{{4, 6, 12}, {11, 8, 12}, {8, 4, 12}, {1, 9, 12}, {9, 0, 12}, {6, 11, 1}, {0, 1, 11}, {6, 1, 12}, {0, 11, 12}},   // 146: 1, 4, 7
	{{1, 5, 12}, {5, 4, 12}, {4, 0, 12}, {11, 7, 12}, {7, 6, 12}, {0, 1, 11}, {6, 11, 1}, {0, 11, 12}, {6, 1, 12}},   // 162: 1, 5, 7
	{{5, 10, 12}, {10, 11, 12}, {7, 5, 12}, {0, 1, 12}, {1, 9, 12}, {11, 7, 0}, {9, 0, 7}, {11, 0, 12}, {9, 7, 12}},  // 194: 1, 6, 7
	{{1, 3, 12}, {3, 11, 12}, {11, 10, 12}, {4, 7, 12}, {7, 8, 12}, {10, 1, 4}, {8, 4, 1}, {10, 4, 12}, {8, 1, 12}},  // 28: 2, 3, 4
	{{1, 3, 12}, {11, 10, 12}, {10, 1, 12}, {4, 9, 12}, {9, 5, 12}, {3, 11, 4}, {5, 4, 11}, {3, 4, 12}, {5, 11, 12}}, // 44: 2, 3, 5
	{{5, 7, 12}, {8, 9, 12}, {9, 5, 12}, {2, 10, 12}, {10, 1, 12}, {7, 8, 2}, {1, 2, 8}, {7, 2, 12}, {1, 8, 12}},     // 52: 2, 4, 5
	{{2, 6, 12}, {6, 5, 12}, {5, 1, 12}, {4, 7, 12}, {8, 4, 12}, {1, 2, 8}, {7, 8, 2}, {1, 8, 12}, {7, 2, 12}},       // 84: 2, 4, 6
	{{4, 6, 12}, {6, 11, 12}, {11, 8, 12}, {1, 2, 12}, {2, 10, 12}, {8, 4, 1}, {10, 1, 4}, {8, 1, 12}, {10, 4, 12}},  // 148: 2, 4, 7
	{{5, 7, 12}, {7, 8, 12}, {8, 9, 12}, {2, 3, 12}, {3, 11, 12}, {9, 5, 2}, {11, 2, 5}, {9, 2, 12}, {11, 5, 12}},    // 56: 3, 4, 5
	{{9, 10, 12}, {10, 6, 12}, {6, 4, 12}, {3, 11, 12}, {11, 2, 12}, {4, 9, 3}, {2, 3, 9}, {4, 3, 12}, {2, 9, 12}},   // 104: 3, 5, 6
	{{3, 7, 12}, {7, 6, 12}, {6, 2, 12}, {9, 5, 12}, {5, 4, 12}, {2, 3, 9}, {4, 9, 3}, {2, 9, 12}, {4, 3, 12}},       // 168: 3, 5, 7
	{{12, 7, 3}, {12, 6, 7}, {12, 2, 6}, {12, 5, 9}, {12, 4, 5}, {9, 3, 2}, {3, 9, 4}, {12, 9, 2}, {12, 3, 4}},       // 87: 0, 1, 2, 4, 6
	{{12, 10, 9}, {12, 6, 10}, {12, 4, 6}, {12, 11, 3}, {12, 2, 11}, {3, 9, 4}, {9, 3, 2}, {12, 3, 4}, {12, 9, 2}},   // 151: 0, 1, 2, 4, 7
	{{12, 7, 5}, {12, 8, 7}, {12, 9, 8}, {12, 3, 2}, {12, 11, 3}, {2, 5, 9}, {5, 2, 11}, {12, 2, 9}, {12, 5, 11}},    // 199: 0, 1, 2, 6, 7
	{{12, 6, 4}, {12, 11, 6}, {12, 8, 11}, {12, 2, 1}, {12, 10, 2}, {1, 4, 8}, {4, 1, 10}, {12, 1, 8}, {12, 4, 10}},  // 107: 0, 1, 3, 5, 6
	{{12, 6, 2}, {12, 5, 6}, {12, 1, 5}, {12, 7, 4}, {12, 4, 8}, {8, 2, 1}, {2, 8, 7}, {12, 8, 1}, {12, 2, 7}},       // 171: 0, 1, 3, 5, 7
	{{12, 7, 5}, {12, 9, 8}, {12, 5, 9}, {12, 10, 2}, {12, 1, 10}, {2, 8, 7}, {8, 2, 1}, {12, 2, 7}, {12, 8, 1}},     // 203: 0, 1, 3, 6, 7
	{{12, 3, 1}, {12, 10, 11}, {12, 1, 10}, {12, 9, 4}, {12, 5, 9}, {4, 11, 3}, {11, 4, 5}, {12, 4, 3}, {12, 11, 5}}, // 211: 0, 1, 4, 6, 7
	{{12, 3, 1}, {12, 11, 3}, {12, 10, 11}, {12, 7, 4}, {12, 8, 7}, {4, 1, 10}, {1, 4, 8}, {12, 4, 10}, {12, 1, 8}},  // 227: 0, 1, 5, 6, 7
	{{12, 10, 5}, {12, 11, 10}, {12, 5, 7}, {12, 1, 0}, {12, 9, 1}, {0, 7, 11}, {7, 0, 9}, {12, 0, 11}, {12, 7, 9}},  // 61: 0, 2, 3, 4, 5
	{{12, 5, 1}, {12, 4, 5}, {12, 0, 4}, {12, 7, 11}, {12, 6, 7}, {11, 1, 0}, {1, 11, 6}, {12, 11, 0}, {12, 1, 6}},   // 93: 0, 2, 3, 4, 6
	{{12, 6, 4}, {12, 8, 11}, {12, 4, 8}, {12, 9, 1}, {12, 0, 9}, {1, 11, 6}, {11, 1, 0}, {12, 1, 6}, {12, 11, 0}},   // 109: 0, 2, 3, 5, 6
	{{12, 3, 2}, {12, 7, 3}, {12, 2, 6}, {12, 1, 0}, {12, 0, 9}, {9, 6, 7}, {6, 9, 1}, {12, 9, 7}, {12, 6, 1}},       // 117: 0, 2, 4, 5, 6
	{{12, 1, 0}, {12, 5, 1}, {12, 0, 4}, {12, 3, 2}, {12, 2, 11}, {11, 4, 5}, {4, 11, 3}, {12, 11, 5}, {12, 4, 3}},   // 213: 0, 2, 4, 6, 7
	{{12, 2, 0}, {12, 10, 2}, {12, 9, 10}, {12, 11, 6}, {12, 6, 7}, {7, 0, 9}, {0, 7, 11}, {12, 7, 9}, {12, 0, 11}},  // 121: 0, 3, 4, 5, 6
	{{12, 2, 0}, {12, 9, 10}, {12, 0, 9}, {12, 8, 7}, {12, 4, 8}, {7, 10, 2}, {10, 7, 4}, {12, 7, 2}, {12, 10, 4}},   // 233: 0, 3, 5, 6, 7
	{{12, 11, 10}, {12, 7, 11}, {12, 5, 7}, {12, 8, 0}, {12, 3, 8}, {0, 10, 5}, {10, 0, 3}, {12, 0, 5}, {12, 10, 3}}, // 62: 1, 2, 3, 4, 5
	{{12, 9, 4}, {12, 10, 9}, {12, 4, 6}, {12, 8, 0}, {12, 0, 3}, {3, 6, 10}, {6, 3, 8}, {12, 3, 10}, {12, 6, 8}},    // 158: 1, 2, 3, 4, 7
	{{12, 4, 0}, {12, 7, 4}, {12, 3, 7}, {12, 6, 10}, {12, 5, 6}, {10, 0, 3}, {0, 10, 5}, {12, 10, 3}, {12, 0, 5}},   // 174: 1, 2, 3, 5, 7
	{{12, 11, 8}, {12, 2, 11}, {12, 0, 2}, {12, 10, 5}, {12, 6, 10}, {5, 8, 0}, {8, 5, 6}, {12, 5, 0}, {12, 8, 6}},   // 182: 1, 2, 4, 5, 7
	{{12, 8, 0}, {12, 11, 8}, {12, 0, 2}, {12, 9, 4}, {12, 4, 5}, {5, 2, 11}, {2, 5, 9}, {12, 5, 11}, {12, 2, 9}},    // 214: 1, 2, 4, 6, 7
	{{12, 2, 1}, {12, 6, 2}, {12, 1, 5}, {12, 3, 8}, {12, 0, 3}, {8, 5, 6}, {5, 8, 0}, {12, 8, 6}, {12, 5, 0}},       // 186: 1, 3, 4, 5, 7
	{{12, 4, 0}, {12, 3, 7}, {12, 0, 3}, {12, 2, 1}, {12, 1, 10}, {10, 7, 4}, {7, 10, 2}, {12, 10, 4}, {12, 7, 2}},   // 234: 1, 3, 5, 6, 7
	{{12, 8, 9}, {12, 3, 8}, {12, 1, 3}, {12, 11, 6}, {12, 7, 11}, {6, 9, 1}, {9, 6, 7}, {12, 6, 1}, {12, 9, 7}},     // 124: 2, 3, 4, 5, 6
	{{12, 9, 1}, {12, 8, 9}, {12, 1, 3}, {12, 10, 5}, {12, 5, 6}, {6, 3, 8}, {3, 6, 10}, {12, 6, 8}, {12, 3, 10}},    // 188: 2, 3, 4, 5, 7
}

var Tiling6_2 = [48][5]Triangle{
	{{1, 10, 3}, {10, 6, 3}, {6, 5, 9}, {6, 9, 3}, {9, 8, 3}},    // 67: 0, 1, 6
	{{1, 9, 3}, {9, 8, 6}, {8, 7, 6}, {9, 6, 3}, {6, 11, 3}},     // 131: 0, 1, 7
	{{0, 4, 1}, {4, 7, 10}, {7, 3, 10}, {3, 2, 10}, {4, 10, 1}},  // 21: 0, 2, 4
	{{0, 8, 1}, {8, 3, 6}, {3, 2, 6}, {8, 6, 1}, {6, 5, 1}},      // 69: 0, 2, 6
	{{0, 9, 2}, {9, 5, 2}, {5, 4, 8}, {5, 8, 2}, {8, 11, 2}},     // 41: 0, 3, 5
	{{0, 8, 2}, {8, 11, 5}, {11, 6, 5}, {8, 5, 2}, {5, 10, 2}},   // 73: 0, 3, 6
	{{0, 4, 3}, {4, 5, 10}, {4, 10, 3}, {10, 6, 3}, {6, 7, 3}},   // 81: 0, 4, 6
	{{0, 9, 3}, {9, 10, 3}, {10, 6, 3}, {6, 4, 3}, {4, 8, 3}},    // 97: 0, 5, 6
	{{0, 8, 7}, {0, 7, 10}, {7, 5, 10}, {0, 10, 3}, {10, 11, 3}}, // 193: 0, 6, 7
	{{0, 2, 8}, {2, 10, 7}, {10, 9, 7}, {9, 4, 7}, {2, 7, 8}},    // 22: 1, 2, 4
	{{0, 2, 9}, {2, 11, 7}, {2, 7, 9}, {7, 6, 9}, {6, 10, 9}},    // 134: 1, 2, 7
	{{0, 3, 4}, {3, 11, 4}, {11, 2, 1}, {11, 1, 4}, {1, 5, 4}},   // 42: 1, 3, 5
	{{0, 3, 9}, {3, 7, 9}, {7, 6, 9}, {6, 2, 9}, {2, 1, 9}},      // 138: 1, 3, 7
	{{0, 1, 8}, {1, 9, 6}, {9, 4, 6}, {1, 6, 8}, {6, 11, 8}},     // 146: 1, 4, 7
	{{0, 1, 4}, {1, 5, 11}, {5, 6, 11}, {1, 11, 4}, {11, 7, 4}},  // 162: 1, 5, 7
	{{0, 1, 10}, {0, 10, 7}, {10, 11, 7}, {0, 7, 9}, {7, 5, 9}},  // 194: 1, 6, 7
	{{1, 3, 10}, {3, 8, 4}, {3, 4, 10}, {4, 7, 10}, {7, 11, 10}}, // 28: 2, 3, 4
	{{1, 3, 9}, {3, 11, 4}, {11, 10, 4}, {10, 5, 4}, {3, 4, 9}},  // 44: 2, 3, 5
	{{1, 2, 9}, {2, 10, 7}, {10, 5, 7}, {2, 7, 9}, {7, 8, 9}},    // 52: 2, 4, 5
	{{1, 2, 5}, {2, 6, 8}, {6, 7, 8}, {2, 8, 5}, {8, 4, 5}},      // 84: 2, 4, 6
	{{1, 2, 11}, {1, 11, 4}, {11, 8, 4}, {1, 4, 10}, {4, 6, 10}}, // 148: 2, 4, 7
	{{2, 3, 8}, {2, 8, 5}, {8, 9, 5}, {2, 5, 11}, {5, 7, 11}},    // 56: 3, 4, 5
	{{2, 3, 10}, {3, 11, 4}, {11, 6, 4}, {3, 4, 10}, {4, 9, 10}}, // 104: 3, 5, 6
	{{2, 3, 6}, {3, 7, 9}, {7, 4, 9}, {3, 9, 6}, {9, 5, 6}},      // 168: 3, 5, 7
	{{6, 3, 2}, {9, 7, 3}, {9, 4, 7}, {6, 9, 3}, {6, 5, 9}},      // 87: 0, 1, 2, 4, 6
	{{10, 3, 2}, {4, 11, 3}, {4, 6, 11}, {10, 4, 3}, {10, 9, 4}}, // 151: 0, 1, 2, 4, 7
	{{8, 3, 2}, {5, 8, 2}, {5, 9, 8}, {11, 5, 2}, {11, 7, 5}},    // 199: 0, 1, 2, 6, 7
	{{11, 2, 1}, {4, 11, 1}, {4, 8, 11}, {10, 4, 1}, {10, 6, 4}}, // 107: 0, 1, 3, 5, 6
	{{5, 2, 1}, {8, 6, 2}, {8, 7, 6}, {5, 8, 2}, {5, 4, 8}},      // 171: 0, 1, 3, 5, 7
	{{9, 2, 1}, {7, 10, 2}, {7, 5, 10}, {9, 7, 2}, {9, 8, 7}},    // 203: 0, 1, 3, 6, 7
	{{9, 3, 1}, {4, 11, 3}, {4, 10, 11}, {4, 5, 10}, {9, 4, 3}},  // 211: 0, 1, 4, 6, 7
	{{10, 3, 1}, {4, 8, 3}, {10, 4, 3}, {10, 7, 4}, {10, 11, 7}}, // 227: 0, 1, 5, 6, 7
	{{10, 1, 0}, {7, 10, 0}, {7, 11, 10}, {9, 7, 0}, {9, 5, 7}},  // 61: 0, 2, 3, 4, 5
	{{4, 1, 0}, {11, 5, 1}, {11, 6, 5}, {4, 11, 1}, {4, 7, 11}},  // 93: 0, 2, 3, 4, 6
	{{8, 1, 0}, {6, 9, 1}, {6, 4, 9}, {8, 6, 1}, {8, 11, 6}},     // 109: 0, 2, 3, 5, 6
	{{9, 3, 0}, {9, 7, 3}, {9, 6, 7}, {9, 2, 6}, {9, 1, 2}},      // 117: 0, 2, 4, 5, 6
	{{4, 3, 0}, {4, 11, 3}, {1, 2, 11}, {4, 1, 11}, {4, 5, 1}},   // 213: 0, 2, 4, 6, 7
	{{9, 2, 0}, {7, 11, 2}, {9, 7, 2}, {9, 6, 7}, {9, 10, 6}},    // 121: 0, 3, 4, 5, 6
	{{8, 2, 0}, {7, 10, 2}, {7, 9, 10}, {7, 4, 9}, {8, 7, 2}},    // 233: 0, 3, 5, 6, 7
	{{7, 8, 0}, {10, 7, 0}, {10, 5, 7}, {3, 10, 0}, {3, 11, 10}}, // 62: 1, 2, 3, 4, 5
	{{3, 9, 0}, {3, 10, 9}, {3, 6, 10}, {3, 4, 6}, {3, 8, 4}},    // 158: 1, 2, 3, 4, 7
	{{3, 4, 0}, {10, 5, 4}, {3, 10, 4}, {3, 6, 10}, {3, 7, 6}},   // 174: 1, 2, 3, 5, 7
	{{2, 8, 0}, {5, 11, 8}, {5, 6, 11}, {2, 5, 8}, {2, 10, 5}},   // 182: 1, 2, 4, 5, 7
	{{2, 9, 0}, {2, 5, 9}, {8, 4, 5}, {2, 8, 5}, {2, 11, 8}},     // 214: 1, 2, 4, 6, 7
	{{1, 8, 0}, {6, 3, 8}, {6, 2, 3}, {1, 6, 8}, {1, 5, 6}},      // 186: 1, 3, 4, 5, 7
	{{1, 4, 0}, {10, 7, 4}, {10, 3, 7}, {10, 2, 3}, {1, 10, 4}},  // 234: 1, 3, 5, 6, 7
	{{3, 9, 1}, {6, 8, 9}, {6, 7, 8}, {3, 6, 9}, {3, 11, 6}},     // 124: 2, 3, 4, 5, 6
	{{3, 10, 1}, {3, 6, 10}, {9, 5, 6}, {3, 9, 6}, {3, 8, 9}},    // 188: 2, 3, 4, 5, 7
}

// Test7 holds per configuration the three tested faces, the interior test
// sign and the interior test reference edge.
var Test7 = [16][5]int8{
	{1, 2, 5, 7, 1},     // 37: 0, 2, 5
	{3, 4, 5, 7, 3},     // 133: 0, 2, 7
	{4, 1, 6, 7, 4},     // 161: 0, 5, 7
	{4, 1, 5, 7, 0},     // 26: 1, 3, 4
	{2, 3, 5, 7, 2},     // 74: 1, 3, 6
	{1, 2, 6, 7, 5},     // 82: 1, 4, 6
	{2, 3, 6, 7, 6},     // 164: 2, 5, 7
	{3, 4, 6, 7, 7},     // 88: 3, 4, 6
	{-3, -4, -6, -7, 7}, // 167: 0, 1, 2, 5, 7
	{-2, -3, -6, -7, 6}, // 91: 0, 1, 3, 4, 6
	{-1, -2, -6, -7, 5}, // 173: 0, 2, 3, 5, 7
	{-2, -3, -5, -7, 2}, // 181: 0, 2, 4, 5, 7
	{-4, -1, -5, -7, 0}, // 229: 0, 2, 5, 6, 7
	{-4, -1, -6, -7, 4}, // 94: 1, 2, 3, 4, 6
	{-3, -4, -5, -7, 3}, // 122: 1, 3, 4, 5, 6
	{-1, -2, -5, -7, 1}, // 218: 1, 3, 4, 6, 7
}

var Tiling7_1 = [16][3]Triangle{
	{{0, 8, 3}, {1, 2, 10}, {4, 9, 5}},  // 37: 0, 2, 5
	{{0, 8, 3}, {1, 2, 10}, {6, 11, 7}}, // 133: 0, 2, 7
	{{0, 8, 3}, {4, 9, 5}, {6, 11, 7}},  // 161: 0, 5, 7
	{{0, 1, 9}, {2, 3, 11}, {4, 7, 8}},  // 26: 1, 3, 4
	{{0, 1, 9}, {2, 3, 11}, {5, 10, 6}}, // 74: 1, 3, 6
	{{0, 1, 9}, {4, 7, 8}, {5, 10, 6}},  // 82: 1, 4, 6
	{{1, 2, 10}, {4, 9, 5}, {6, 11, 7}}, // 164: 2, 5, 7
	{{2, 3, 11}, {4, 7, 8}, {5, 10, 6}}, // 88: 3, 4, 6
	{{11, 3, 2}, {8, 7, 4}, {6, 10, 5}}, // 167: 0, 1, 2, 5, 7
	{{10, 2, 1}, {5, 9, 4}, {7, 11, 6}}, // 91: 0, 1, 3, 4, 6
	{{9, 1, 0}, {8, 7, 4}, {6, 10, 5}},  // 173: 0, 2, 3, 5, 7
	{{9, 1, 0}, {11, 3, 2}, {6, 10, 5}}, // 181: 0, 2, 4, 5, 7
	{{9, 1, 0}, {11, 3, 2}, {8, 7, 4}},  // 229: 0, 2, 5, 6, 7
	{{3, 8, 0}, {5, 9, 4}, {7, 11, 6}},  // 94: 1, 2, 3, 4, 6
	{{3, 8, 0}, {10, 2, 1}, {7, 11, 6}}, // 122: 1, 3, 4, 5, 6
	{{3, 8, 0}, {10, 2, 1}, {5, 9, 4}},  // 218: 1, 3, 4, 6, 7
}

// Tiling7_2 is indexed by configuration and by which of the three faces joins.
var Tiling7_2 = [16][3][5]Triangle{
	{{{0, 9, 3}, {9, 5, 3}, {5, 4, 3}, {4, 8, 3}, {1, 2, 10}}, {{0, 8, 3}, {1, 2, 9}, {2, 10, 4}, {10, 5, 4}, {2, 4, 9}}, {{0, 8, 1}, {8, 3, 10}, {3, 2, 10}, {8, 10, 1}, {4, 9, 5}}},     // 37: 0, 2, 5
	{{{0, 8, 3}, {1, 2, 7}, {2, 11, 7}, {1, 7, 10}, {7, 6, 10}}, {{0, 8, 6}, {8, 7, 6}, {0, 6, 3}, {6, 11, 3}, {1, 2, 10}}, {{0, 8, 1}, {8, 3, 10}, {3, 2, 10}, {8, 10, 1}, {6, 11, 7}}},  // 133: 0, 2, 7
	{{{0, 8, 6}, {8, 7, 6}, {0, 6, 3}, {6, 11, 3}, {4, 9, 5}}, {{0, 9, 3}, {9, 5, 3}, {5, 4, 3}, {4, 8, 3}, {6, 11, 7}}, {{0, 8, 3}, {4, 9, 7}, {9, 5, 11}, {5, 6, 11}, {9, 11, 7}}},      // 161: 0, 5, 7
	{{{0, 1, 9}, {2, 3, 4}, {3, 8, 4}, {2, 4, 11}, {4, 7, 11}}, {{0, 1, 8}, {1, 9, 7}, {9, 4, 7}, {1, 7, 8}, {2, 3, 11}}, {{0, 3, 9}, {3, 11, 9}, {11, 2, 9}, {2, 1, 9}, {4, 7, 8}}},      // 26: 1, 3, 4
	{{{0, 1, 6}, {1, 10, 6}, {0, 6, 9}, {6, 5, 9}, {2, 3, 11}}, {{0, 1, 9}, {2, 3, 10}, {3, 11, 5}, {11, 6, 5}, {3, 5, 10}}, {{0, 3, 9}, {3, 11, 9}, {11, 2, 9}, {2, 1, 9}, {5, 10, 6}}},  // 74: 1, 3, 6
	{{{0, 1, 8}, {1, 9, 7}, {9, 4, 7}, {1, 7, 8}, {5, 10, 6}}, {{0, 1, 6}, {1, 10, 6}, {0, 6, 9}, {6, 5, 9}, {4, 7, 8}}, {{0, 1, 9}, {4, 5, 8}, {5, 10, 8}, {10, 6, 8}, {6, 7, 8}}},       // 82: 1, 4, 6
	{{{1, 2, 9}, {2, 10, 4}, {10, 5, 4}, {2, 4, 9}, {6, 11, 7}}, {{1, 2, 7}, {2, 11, 7}, {1, 7, 10}, {7, 6, 10}, {4, 9, 5}}, {{1, 2, 10}, {4, 9, 7}, {9, 5, 11}, {5, 6, 11}, {9, 11, 7}}}, // 164: 2, 5, 7
	{{{2, 3, 10}, {3, 11, 5}, {11, 6, 5}, {3, 5, 10}, {4, 7, 8}}, {{2, 3, 4}, {3, 8, 4}, {2, 4, 11}, {4, 7, 11}, {5, 10, 6}}, {{2, 3, 11}, {4, 5, 8}, {5, 10, 8}, {10, 6, 8}, {6, 7, 8}}}, // 88: 3, 4, 6
	{{{10, 3, 2}, {5, 11, 3}, {5, 6, 11}, {10, 5, 3}, {8, 7, 4}}, {{4, 3, 2}, {4, 8, 3}, {11, 4, 2}, {11, 7, 4}, {6, 10, 5}}, {{11, 3, 2}, {8, 5, 4}, {8, 10, 5}, {8, 6, 10}, {8, 7, 6}}}, // 167: 0, 1, 2, 5, 7
	{{{9, 2, 1}, {4, 10, 2}, {4, 5, 10}, {9, 4, 2}, {7, 11, 6}}, {{7, 2, 1}, {7, 11, 2}, {10, 7, 1}, {10, 6, 7}, {5, 9, 4}}, {{10, 2, 1}, {7, 9, 4}, {11, 5, 9}, {11, 6, 5}, {7, 11, 9}}}, // 91: 0, 1, 3, 4, 6
	{{{8, 1, 0}, {7, 9, 1}, {7, 4, 9}, {8, 7, 1}, {6, 10, 5}}, {{6, 1, 0}, {6, 10, 1}, {9, 6, 0}, {9, 5, 6}, {8, 7, 4}}, {{9, 1, 0}, {8, 5, 4}, {8, 10, 5}, {8, 6, 10}, {8, 7, 6}}},       // 173: 0, 2, 3, 5, 7
	{{{6, 1, 0}, {6, 10, 1}, {9, 6, 0}, {9, 5, 6}, {11, 3, 2}}, {{9, 1, 0}, {10, 3, 2}, {5, 11, 3}, {5, 6, 11}, {10, 5, 3}}, {{9, 3, 0}, {9, 11, 3}, {9, 2, 11}, {9, 1, 2}, {6, 10, 5}}},  // 181: 0, 2, 4, 5, 7
	{{{9, 1, 0}, {4, 3, 2}, {4, 8, 3}, {11, 4, 2}, {11, 7, 4}}, {{8, 1, 0}, {7, 9, 1}, {7, 4, 9}, {8, 7, 1}, {11, 3, 2}}, {{9, 3, 0}, {9, 11, 3}, {9, 2, 11}, {9, 1, 2}, {8, 7, 4}}},      // 229: 0, 2, 5, 6, 7
	{{{6, 8, 0}, {6, 7, 8}, {3, 6, 0}, {3, 11, 6}, {5, 9, 4}}, {{3, 9, 0}, {3, 5, 9}, {3, 4, 5}, {3, 8, 4}, {7, 11, 6}}, {{3, 8, 0}, {7, 9, 4}, {11, 5, 9}, {11, 6, 5}, {7, 11, 9}}},      // 94: 1, 2, 3, 4, 6
	{{{3, 8, 0}, {7, 2, 1}, {7, 11, 2}, {10, 7, 1}, {10, 6, 7}}, {{6, 8, 0}, {6, 7, 8}, {3, 6, 0}, {3, 11, 6}, {10, 2, 1}}, {{1, 8, 0}, {10, 3, 8}, {10, 2, 3}, {1, 10, 8}, {7, 11, 6}}},  // 122: 1, 3, 4, 5, 6
	{{{3, 9, 0}, {3, 5, 9}, {3, 4, 5}, {3, 8, 4}, {10, 2, 1}}, {{3, 8, 0}, {9, 2, 1}, {4, 10, 2}, {4, 5, 10}, {9, 4, 2}}, {{1, 8, 0}, {10, 3, 8}, {10, 2, 3}, {1, 10, 8}, {5, 9, 4}}},     // 218: 1, 3, 4, 6, 7
}

// Tiling7_3 is indexed by configuration and by which of the three faces separates.
var Tiling7_3 = [16][3][9]Triangle{
	{{{0, 9, 12}, {9, 1, 12}, {1, 2, 12}, {2, 10, 12}, {10, 5, 12}, {5, 4, 12}, {4, 8, 12}, {8, 3, 12}, {3, 0, 12}}, {{0, 9, 12}, {9, 5, 12}, {5, 4, 12}, {4, 8, 12}, {8, 3, 12}, {3, 2, 12}, {2, 10, 12}, {10, 1, 12}, {1, 0, 12}}, {{0, 8, 12}, {8, 3, 12}, {3, 2, 12}, {2, 10, 12}, {10, 5, 12}, {5, 4, 12}, {4, 9, 12}, {9, 1, 12}, {1, 0, 12}}},       // 37: 0, 2, 5
	{{{0, 8, 12}, {8, 7, 12}, {7, 6, 12}, {6, 10, 12}, {10, 1, 12}, {1, 2, 12}, {2, 11, 12}, {11, 3, 12}, {3, 0, 12}}, {{0, 8, 12}, {8, 3, 12}, {3, 2, 12}, {2, 11, 12}, {11, 7, 12}, {7, 6, 12}, {6, 10, 12}, {10, 1, 12}, {1, 0, 12}}, {{0, 8, 12}, {8, 7, 12}, {7, 6, 12}, {6, 11, 12}, {11, 3, 12}, {3, 2, 12}, {2, 10, 12}, {10, 1, 12}, {1, 0, 12}}}, // 133: 0, 2, 7
	{{{0, 9, 12}, {9, 5, 12}, {5, 4, 12}, {4, 8, 12}, {8, 7, 12}, {7, 6, 12}, {6, 11, 12}, {11, 3, 12}, {3, 0, 12}}, {{0, 8, 12}, {8, 7, 12}, {7, 4, 12}, {4, 9, 12}, {9, 5, 12}, {5, 6, 12}, {6, 11, 12}, {11, 3, 12}, {3, 0, 12}}, {{0, 9, 12}, {9, 5, 12}, {5, 6, 12}, {6, 11, 12}, {11, 7, 12}, {7, 4, 12}, {4, 8, 12}, {8, 3, 12}, {3, 0, 12}}},       // 161: 0, 5, 7
	{{{0, 1, 12}, {1, 9, 12}, {9, 4, 12}, {4, 7, 12}, {7, 11, 12}, {11, 2, 12}, {2, 3, 12}, {3, 8, 12}, {8, 0, 12}}, {{0, 3, 12}, {3, 8, 12}, {8, 4, 12}, {4, 7, 12}, {7, 11, 12}, {11, 2, 12}, {2, 1, 12}, {1, 9, 12}, {9, 0, 12}}, {{0, 3, 12}, {3, 11, 12}, {11, 2, 12}, {2, 1, 12}, {1, 9, 12}, {9, 4, 12}, {4, 7, 12}, {7, 8, 12}, {8, 0, 12}}},       // 26: 1, 3, 4
	{{{0, 1, 12}, {1, 10, 12}, {10, 2, 12}, {2, 3, 12}, {3, 11, 12}, {11, 6, 12}, {6, 5, 12}, {5, 9, 12}, {9, 0, 12}}, {{0, 3, 12}, {3, 11, 12}, {11, 2, 12}, {2, 1, 12}, {1, 10, 12}, {10, 6, 12}, {6, 5, 12}, {5, 9, 12}, {9, 0, 12}}, {{0, 3, 12}, {3, 11, 12}, {11, 6, 12}, {6, 5, 12}, {5, 10, 12}, {10, 2, 12}, {2, 1, 12}, {1, 9, 12}, {9, 0, 12}}}, // 74: 1, 3, 6
	{{{0, 1, 12}, {1, 10, 12}, {10, 6, 12}, {6, 5, 12}, {5, 9, 12}, {9, 4, 12}, {4, 7, 12}, {7, 8, 12}, {8, 0, 12}}, {{0, 1, 12}, {1, 9, 12}, {9, 4, 12}, {4, 5, 12}, {5, 10, 12}, {10, 6, 12}, {6, 7, 12}, {7, 8, 12}, {8, 0, 12}}, {{0, 1, 12}, {1, 10, 12}, {10, 6, 12}, {6, 7, 12}, {7, 8, 12}, {8, 4, 12}, {4, 5, 12}, {5, 9, 12}, {9, 0, 12}}},       // 82: 1, 4, 6
	{{{1, 2, 12}, {2, 11, 12}, {11, 7, 12}, {7, 6, 12}, {6, 10, 12}, {10, 5, 12}, {5, 4, 12}, {4, 9, 12}, {9, 1, 12}}, {{1, 2, 12}, {2, 10, 12}, {10, 5, 12}, {5, 6, 12}, {6, 11, 12}, {11, 7, 12}, {7, 4, 12}, {4, 9, 12}, {9, 1, 12}}, {{1, 2, 12}, {2, 11, 12}, {11, 7, 12}, {7, 4, 12}, {4, 9, 12}, {9, 5, 12}, {5, 6, 12}, {6, 10, 12}, {10, 1, 12}}}, // 164: 2, 5, 7
	{{{2, 3, 12}, {3, 8, 12}, {8, 4, 12}, {4, 7, 12}, {7, 11, 12}, {11, 6, 12}, {6, 5, 12}, {5, 10, 12}, {10, 2, 12}}, {{2, 3, 12}, {3, 11, 12}, {11, 6, 12}, {6, 7, 12}, {7, 8, 12}, {8, 4, 12}, {4, 5, 12}, {5, 10, 12}, {10, 2, 12}}, {{2, 3, 12}, {3, 8, 12}, {8, 4, 12}, {4, 5, 12}, {5, 10, 12}, {10, 6, 12}, {6, 7, 12}, {7, 11, 12}, {11, 2, 12}}}, // 88: 3, 4, 6
	{{{12, 3, 2}, {12, 8, 3}, {12, 4, 8}, {12, 7, 4}, {12, 11, 7}, {12, 6, 11}, {12, 5, 6}, {12, 10, 5}, {12, 2, 10}}, {{12, 3, 2}, {12, 11, 3}, {12, 6, 11}, {12, 7, 6}, {12, 8, 7}, {12, 4, 8}, {12, 5, 4}, {12, 10, 5}, {12, 2, 10}}, {{12, 3, 2}, {12, 8, 3}, {12, 4, 8}, {12, 5, 4}, {12, 10, 5}, {12, 6, 10}, {12, 7, 6}, {12, 11, 7}, {12, 2, 11}}}, // 167: 0, 1, 2, 5, 7
	{{{12, 2, 1}, {12, 11, 2}, {12, 7, 11}, {12, 6, 7}, {12, 10, 6}, {12, 5, 10}, {12, 4, 5}, {12, 9, 4}, {12, 1, 9}}, {{12, 2, 1}, {12, 10, 2}, {12, 5, 10}, {12, 6, 5}, {12, 11, 6}, {12, 7, 11}, {12, 4, 7}, {12, 9, 4}, {12, 1, 9}}, {{12, 2, 1}, {12, 11, 2}, {12, 7, 11}, {12, 4, 7}, {12, 9, 4}, {12, 5, 9}, {12, 6, 5}, {12, 10, 6}, {12, 1, 10}}}, // 91: 0, 1, 3, 4, 6
	{{{12, 1, 0}, {12, 10, 1}, {12, 6, 10}, {12, 5, 6}, {12, 9, 5}, {12, 4, 9}, {12, 7, 4}, {12, 8, 7}, {12, 0, 8}}, {{12, 1, 0}, {12, 9, 1}, {12, 4, 9}, {12, 5, 4}, {12, 10, 5}, {12, 6, 10}, {12, 7, 6}, {12, 8, 7}, {12, 0, 8}}, {{12, 1, 0}, {12, 10, 1}, {12, 6, 10}, {12, 7, 6}, {12, 8, 7}, {12, 4, 8}, {12, 5, 4}, {12, 9, 5}, {12, 0, 9}}},       // 173: 0, 2, 3, 5, 7
	{{{12, 1, 0}, {12, 10, 1}, {12, 2, 10}, {12, 3, 2}, {12, 11, 3}, {12, 6, 11}, {12, 5, 6}, {12, 9, 5}, {12, 0, 9}}, {{12, 3, 0}, {12, 11, 3}, {12, 2, 11}, {12, 1, 2}, {12, 10, 1}, {12, 6, 10}, {12, 5, 6}, {12, 9, 5}, {12, 0, 9}}, {{12, 3, 0}, {12, 11, 3}, {12, 6, 11}, {12, 5, 6}, {12, 10, 5}, {12, 2, 10}, {12, 1, 2}, {12, 9, 1}, {12, 0, 9}}}, // 181: 0, 2, 4, 5, 7
	{{{12, 1, 0}, {12, 9, 1}, {12, 4, 9}, {12, 7, 4}, {12, 11, 7}, {12, 2, 11}, {12, 3, 2}, {12, 8, 3}, {12, 0, 8}}, {{12, 3, 0}, {12, 8, 3}, {12, 4, 8}, {12, 7, 4}, {12, 11, 7}, {12, 2, 11}, {12, 1, 2}, {12, 9, 1}, {12, 0, 9}}, {{12, 3, 0}, {12, 11, 3}, {12, 2, 11}, {12, 1, 2}, {12, 9, 1}, {12, 4, 9}, {12, 7, 4}, {12, 8, 7}, {12, 0, 8}}},       // 229: 0, 2, 5, 6, 7
	{{{12, 9, 0}, {12, 5, 9}, {12, 4, 5}, {12, 8, 4}, {12, 7, 8}, {12, 6, 7}, {12, 11, 6}, {12, 3, 11}, {12, 0, 3}}, {{12, 8, 0}, {12, 7, 8}, {12, 4, 7}, {12, 9, 4}, {12, 5, 9}, {12, 6, 5}, {12, 11, 6}, {12, 3, 11}, {12, 0, 3}}, {{12, 9, 0}, {12, 5, 9}, {12, 6, 5}, {12, 11, 6}, {12, 7, 11}, {12, 4, 7}, {12, 8, 4}, {12, 3, 8}, {12, 0, 3}}},       // 94: 1, 2, 3, 4, 6
	{{{12, 8, 0}, {12, 7, 8}, {12, 6, 7}, {12, 10, 6}, {12, 1, 10}, {12, 2, 1}, {12, 11, 2}, {12, 3, 11}, {12, 0, 3}}, {{12, 8, 0}, {12, 3, 8}, {12, 2, 3}, {12, 11, 2}, {12, 7, 11}, {12, 6, 7}, {12, 10, 6}, {12, 1, 10}, {12, 0, 1}}, {{12, 8, 0}, {12, 7, 8}, {12, 6, 7}, {12, 11, 6}, {12, 3, 11}, {12, 2, 3}, {12, 10, 2}, {12, 1, 10}, {12, 0, 1}}}, // 122: 1, 3, 4, 5, 6
	{{{12, 9, 0}, {12, 1, 9}, {12, 2, 1}, {12, 10, 2}, {12, 5, 10}, {12, 4, 5}, {12, 8, 4}, {12, 3, 8}, {12, 0, 3}}, {{12, 9, 0}, {12, 5, 9}, {12, 4, 5}, {12, 8, 4}, {12, 3, 8}, {12, 2, 3}, {12, 10, 2}, {12, 1, 10}, {12, 0, 1}}, {{12, 8, 0}, {12, 3, 8}, {12, 2, 3}, {12, 10, 2}, {12, 5, 10}, {12, 4, 5}, {12, 9, 4}, {12, 1, 9}, {12, 0, 1}}},       // 218: 1, 3, 4, 6, 7
}

var Tiling7_4_1 = [16][5]Triangle{
	{{0, 9, 1}, {2, 10, 3}, {10, 5, 4}, {10, 4, 3}, {4, 8, 3}},  // 37: 0, 2, 5
	{{0, 8, 1}, {8, 7, 6}, {8, 6, 1}, {6, 10, 1}, {2, 11, 3}},   // 133: 0, 2, 7
	{{0, 9, 3}, {9, 5, 6}, {9, 6, 3}, {6, 11, 3}, {4, 8, 7}},    // 161: 0, 5, 7
	{{0, 3, 8}, {1, 9, 2}, {9, 4, 7}, {9, 7, 2}, {7, 11, 2}},    // 26: 1, 3, 4
	{{0, 3, 9}, {3, 11, 6}, {3, 6, 9}, {6, 5, 9}, {1, 10, 2}},   // 74: 1, 3, 6
	{{0, 1, 8}, {1, 10, 6}, {1, 6, 8}, {6, 7, 8}, {4, 5, 9}},    // 82: 1, 4, 6
	{{1, 2, 9}, {2, 11, 7}, {2, 7, 9}, {7, 4, 9}, {5, 6, 10}},   // 164: 2, 5, 7
	{{2, 3, 10}, {3, 8, 4}, {3, 4, 10}, {4, 5, 10}, {6, 7, 11}}, // 88: 3, 4, 6
	{{10, 3, 2}, {4, 8, 3}, {10, 4, 3}, {10, 5, 4}, {11, 7, 6}}, // 167: 0, 1, 2, 5, 7
	{{9, 2, 1}, {7, 11, 2}, {9, 7, 2}, {9, 4, 7}, {10, 6, 5}},   // 91: 0, 1, 3, 4, 6
	{{8, 1, 0}, {6, 10, 1}, {8, 6, 1}, {8, 7, 6}, {9, 5, 4}},    // 173: 0, 2, 3, 5, 7
	{{9, 3, 0}, {6, 11, 3}, {9, 6, 3}, {9, 5, 6}, {2, 10, 1}},   // 181: 0, 2, 4, 5, 7
	{{8, 3, 0}, {2, 9, 1}, {7, 4, 9}, {2, 7, 9}, {2, 11, 7}},    // 229: 0, 2, 5, 6, 7
	{{3, 9, 0}, {6, 5, 9}, {3, 6, 9}, {3, 11, 6}, {7, 8, 4}},    // 94: 1, 2, 3, 4, 6
	{{1, 8, 0}, {6, 7, 8}, {1, 6, 8}, {1, 10, 6}, {3, 11, 2}},   // 122: 1, 3, 4, 5, 6
	{{1, 9, 0}, {3, 10, 2}, {4, 5, 10}, {3, 4, 10}, {3, 8, 4}},  // 218: 1, 3, 4, 6, 7
}

var Tiling7_4_2 = [16][9]Triangle{
	{{0, 9, 10}, {2, 10, 9}, {5, 2, 9}, {9, 1, 5}, {1, 0, 5}, {10, 5, 0}, {5, 4, 8}, {5, 8, 2}, {8, 3, 2}},      // 37: 0, 2, 5
	{{10, 7, 2}, {2, 11, 10}, {11, 3, 10}, {6, 10, 3}, {3, 2, 6}, {7, 6, 2}, {10, 1, 0}, {10, 0, 7}, {0, 8, 7}}, // 133: 0, 2, 7
	{{4, 8, 6}, {5, 6, 8}, {8, 7, 5}, {9, 5, 7}, {6, 9, 7}, {7, 4, 6}, {6, 11, 3}, {6, 3, 9}, {3, 0, 9}},        // 161: 0, 5, 7
	{{11, 1, 0}, {0, 3, 11}, {4, 11, 3}, {3, 8, 4}, {1, 4, 8}, {8, 0, 1}, {1, 9, 4}, {4, 7, 11}, {11, 2, 1}},    // 26: 1, 3, 4
	{{1, 10, 6}, {3, 6, 10}, {9, 3, 10}, {10, 2, 9}, {2, 1, 9}, {6, 9, 1}, {3, 11, 6}, {6, 5, 9}, {9, 0, 3}},    // 74: 1, 3, 6
	{{4, 5, 1}, {5, 9, 1}, {7, 1, 9}, {9, 4, 7}, {10, 7, 4}, {1, 10, 4}, {10, 6, 7}, {7, 8, 1}, {8, 0, 1}},      // 82: 1, 4, 6
	{{9, 2, 5}, {5, 6, 9}, {7, 9, 6}, {6, 10, 7}, {2, 7, 10}, {10, 5, 2}, {2, 11, 7}, {7, 4, 9}, {9, 1, 2}},     // 164: 2, 5, 7
	{{10, 3, 6}, {6, 7, 10}, {4, 10, 7}, {7, 11, 4}, {11, 6, 4}, {3, 4, 6}, {3, 8, 4}, {4, 5, 10}, {10, 2, 3}},  // 88: 3, 4, 6
	{{6, 3, 10}, {10, 7, 6}, {7, 10, 4}, {4, 11, 7}, {4, 6, 11}, {6, 4, 3}, {4, 8, 3}, {10, 5, 4}, {3, 2, 10}},  // 167: 0, 1, 2, 5, 7
	{{5, 2, 9}, {9, 6, 5}, {6, 9, 7}, {7, 10, 6}, {10, 7, 2}, {2, 5, 10}, {7, 11, 2}, {9, 4, 7}, {2, 1, 9}},     // 91: 0, 1, 3, 4, 6
	{{1, 5, 4}, {1, 9, 5}, {9, 1, 7}, {7, 4, 9}, {4, 7, 10}, {4, 10, 1}, {7, 6, 10}, {1, 8, 7}, {1, 0, 8}},      // 173: 0, 2, 3, 5, 7
	{{6, 10, 1}, {10, 6, 3}, {10, 3, 9}, {9, 2, 10}, {9, 1, 2}, {1, 9, 6}, {6, 11, 3}, {9, 5, 6}, {3, 0, 9}},    // 181: 0, 2, 4, 5, 7
	{{0, 1, 11}, {11, 3, 0}, {3, 11, 4}, {4, 8, 3}, {8, 4, 1}, {1, 0, 8}, {4, 9, 1}, {11, 7, 4}, {1, 2, 11}},    // 229: 0, 2, 5, 6, 7
	{{6, 8, 4}, {8, 6, 5}, {5, 7, 8}, {7, 5, 9}, {7, 9, 6}, {6, 4, 7}, {3, 11, 6}, {9, 3, 6}, {9, 0, 3}},        // 94: 1, 2, 3, 4, 6
	{{2, 7, 10}, {10, 11, 2}, {10, 3, 11}, {3, 10, 6}, {6, 2, 3}, {2, 6, 7}, {0, 1, 10}, {7, 0, 10}, {7, 8, 0}}, // 122: 1, 3, 4, 5, 6
	{{10, 9, 0}, {9, 10, 2}, {9, 2, 5}, {5, 1, 9}, {5, 0, 1}, {0, 5, 10}, {8, 4, 5}, {2, 8, 5}, {2, 3, 8}},      // 218: 1, 3, 4, 6, 7
}

// Tiling8 triangulates a plane splitting the cube in half.
var Tiling8 = [6][2]Triangle{
	{{9, 8, 10}, {10, 8, 11}}, // 15: 0, 1, 2, 3
	{{1, 5, 3}, {3, 5, 7}},    // 51: 0, 1, 4, 5
	{{0, 4, 2}, {4, 6, 2}},    // 153: 0, 3, 4, 7
	{{0, 2, 4}, {4, 2, 6}},    // 102: 1, 2, 5, 6
	{{1, 3, 5}, {3, 7, 5}},    // 204: 2, 3, 6, 7
	{{9, 10, 8}, {10, 11, 8}}, // 240: 4, 5, 6, 7
}

var Tiling9 = [8][4]Triangle{
	{{2, 10, 5}, {3, 2, 5}, {3, 5, 4}, {3, 4, 8}},   // 39: 0, 1, 2, 5
	{{4, 7, 11}, {9, 4, 11}, {9, 11, 2}, {9, 2, 1}}, // 27: 0, 1, 3, 4
	{{10, 7, 6}, {1, 7, 10}, {1, 8, 7}, {1, 0, 8}},  // 141: 0, 2, 3, 7
	{{3, 6, 11}, {0, 6, 3}, {0, 5, 6}, {0, 9, 5}},   // 177: 0, 4, 5, 7
	{{3, 11, 6}, {0, 3, 6}, {0, 6, 5}, {0, 5, 9}},   // 78: 1, 2, 3, 6
	{{10, 6, 7}, {1, 10, 7}, {1, 7, 8}, {1, 8, 0}},  // 114: 1, 4, 5, 6
	{{4, 11, 7}, {9, 11, 4}, {9, 2, 11}, {9, 1, 2}}, // 228: 2, 5, 6, 7
	{{2, 5, 10}, {3, 5, 2}, {3, 4, 5}, {3, 8, 4}},   // 216: 3, 4, 6, 7
}

// Test10 holds per configuration the two tested faces and the interior test sign.
var Test10 = [6][3]int8{
	{2, 4, 7}, // 195: 0, 1, 6, 7
	{5, 6, 7}, // 85: 0, 2, 4, 6
	{1, 3, 7}, // 105: 0, 3, 5, 6
	{1, 3, 7}, // 150: 1, 2, 4, 7
	{5, 6, 7}, // 170: 1, 3, 5, 7
	{2, 4, 7}, // 60: 2, 3, 4, 5
}

var Tiling10_1_1 = [6][4]Triangle{
	{{5, 10, 7}, {11, 7, 10}, {8, 1, 9}, {1, 8, 3}}, // 195: 0, 1, 6, 7
	{{1, 2, 5}, {6, 5, 2}, {4, 3, 0}, {3, 4, 7}},    // 85: 0, 2, 4, 6
	{{11, 0, 8}, {0, 11, 2}, {4, 9, 6}, {10, 6, 9}}, // 105: 0, 3, 5, 6
	{{9, 0, 10}, {2, 10, 0}, {6, 8, 4}, {8, 6, 11}}, // 150: 1, 2, 4, 7
	{{7, 2, 3}, {2, 7, 6}, {0, 1, 4}, {5, 4, 1}},    // 170: 1, 3, 5, 7
	{{7, 9, 5}, {9, 7, 8}, {10, 1, 11}, {3, 11, 1}}, // 60: 2, 3, 4, 5
}

var Tiling10_1_1_ = [6][4]Triangle{
	{{5, 9, 7}, {8, 7, 9}, {11, 1, 10}, {1, 11, 3}}, // 195: 0, 1, 6, 7
	{{3, 2, 7}, {6, 7, 2}, {4, 1, 0}, {1, 4, 5}},    // 85: 0, 2, 4, 6
	{{10, 0, 9}, {0, 10, 2}, {4, 8, 6}, {11, 6, 8}}, // 105: 0, 3, 5, 6
	{{8, 0, 11}, {2, 11, 0}, {6, 9, 4}, {9, 6, 10}}, // 150: 1, 2, 4, 7
	{{5, 2, 1}, {2, 5, 6}, {0, 3, 4}, {7, 4, 3}},    // 170: 1, 3, 5, 7
	{{7, 10, 5}, {10, 7, 11}, {9, 1, 8}, {3, 8, 1}}, // 60: 2, 3, 4, 5
}

var Tiling10_1_2 = [6][8]Triangle{
	{{7, 5, 1}, {1, 9, 7}, {11, 7, 9}, {5, 11, 9}, {9, 8, 5}, {8, 1, 5}, {8, 3, 1}, {5, 10, 11}},       // 195: 0, 1, 6, 7
	{{0, 7, 6}, {2, 6, 7}, {5, 2, 7}, {7, 3, 5}, {3, 0, 5}, {6, 5, 0}, {0, 4, 7}, {5, 1, 2}},           // 85: 0, 2, 4, 6
	{{0, 8, 10}, {8, 2, 10}, {9, 10, 2}, {6, 9, 2}, {2, 0, 6}, {10, 6, 0}, {8, 11, 2}, {6, 4, 9}},      // 105: 0, 3, 5, 6
	{{0, 2, 11}, {4, 11, 2}, {2, 10, 4}, {8, 4, 10}, {11, 8, 10}, {10, 0, 11}, {10, 9, 0}, {4, 6, 11}}, // 150: 1, 2, 4, 7
	{{0, 1, 7}, {1, 4, 7}, {3, 7, 4}, {6, 3, 4}, {4, 0, 6}, {7, 6, 0}, {1, 5, 4}, {6, 2, 3}},           // 170: 1, 3, 5, 7
	{{1, 3, 5}, {3, 11, 5}, {9, 5, 11}, {11, 1, 9}, {8, 9, 1}, {5, 8, 1}, {11, 10, 1}, {5, 7, 8}},      // 60: 2, 3, 4, 5
}

var Tiling10_2 = [6][8]Triangle{
	{{1, 10, 12}, {10, 11, 12}, {11, 7, 12}, {7, 5, 12}, {5, 9, 12}, {9, 8, 12}, {8, 3, 12}, {3, 1, 12}}, // 195: 0, 1, 6, 7
	{{0, 4, 12}, {4, 7, 12}, {7, 3, 12}, {3, 2, 12}, {2, 6, 12}, {6, 5, 12}, {5, 1, 12}, {1, 0, 12}},     // 85: 0, 2, 4, 6
	{{0, 9, 12}, {9, 10, 12}, {10, 6, 12}, {6, 4, 12}, {4, 8, 12}, {8, 11, 12}, {11, 2, 12}, {2, 0, 12}}, // 105: 0, 3, 5, 6
	{{12, 8, 0}, {12, 11, 8}, {12, 6, 11}, {12, 4, 6}, {12, 9, 4}, {12, 10, 9}, {12, 2, 10}, {12, 0, 2}}, // 150: 1, 2, 4, 7
	{{12, 4, 0}, {12, 5, 4}, {12, 1, 5}, {12, 2, 1}, {12, 6, 2}, {12, 7, 6}, {12, 3, 7}, {12, 0, 3}},     // 170: 1, 3, 5, 7
	{{12, 9, 1}, {12, 8, 9}, {12, 7, 8}, {12, 5, 7}, {12, 10, 5}, {12, 11, 10}, {12, 3, 11}, {12, 1, 3}}, // 60: 2, 3, 4, 5
}

var Tiling10_2_ = [6][8]Triangle{
	{{1, 9, 12}, {9, 8, 12}, {8, 7, 12}, {7, 5, 12}, {5, 10, 12}, {10, 11, 12}, {11, 3, 12}, {3, 1, 12}}, // 195: 0, 1, 6, 7
	{{0, 4, 12}, {4, 5, 12}, {5, 1, 12}, {1, 2, 12}, {2, 6, 12}, {6, 7, 12}, {7, 3, 12}, {3, 0, 12}},     // 85: 0, 2, 4, 6
	{{0, 8, 12}, {8, 11, 12}, {11, 6, 12}, {6, 4, 12}, {4, 9, 12}, {9, 10, 12}, {10, 2, 12}, {2, 0, 12}}, // 105: 0, 3, 5, 6
	{{12, 9, 0}, {12, 10, 9}, {12, 6, 10}, {12, 4, 6}, {12, 8, 4}, {12, 11, 8}, {12, 2, 11}, {12, 0, 2}}, // 150: 1, 2, 4, 7
	{{12, 4, 0}, {12, 7, 4}, {12, 3, 7}, {12, 2, 3}, {12, 6, 2}, {12, 5, 6}, {12, 1, 5}, {12, 0, 1}},     // 170: 1, 3, 5, 7
	{{12, 10, 1}, {12, 11, 10}, {12, 7, 11}, {12, 5, 7}, {12, 9, 5}, {12, 8, 9}, {12, 3, 8}, {12, 1, 3}}, // 60: 2, 3, 4, 5
}

var Tiling11 = [12][4]Triangle{
	{{2, 10, 9}, {2, 9, 7}, {2, 7, 3}, {7, 9, 4}},    // 23: 0, 1, 2, 4
	{{1, 6, 2}, {1, 8, 6}, {1, 9, 8}, {8, 7, 6}},     // 139: 0, 1, 3, 7
	{{8, 3, 1}, {8, 1, 6}, {8, 6, 4}, {6, 1, 10}},    // 99: 0, 1, 5, 6
	{{0, 8, 11}, {0, 11, 5}, {0, 5, 1}, {5, 11, 6}},  // 77: 0, 2, 3, 6
	{{9, 5, 7}, {9, 7, 2}, {9, 2, 0}, {2, 7, 11}},    // 57: 0, 3, 4, 5
	{{5, 0, 4}, {5, 11, 0}, {5, 10, 11}, {11, 3, 0}}, // 209: 0, 4, 6, 7
	{{5, 4, 0}, {5, 0, 11}, {5, 11, 10}, {11, 0, 3}}, // 46: 1, 2, 3, 5
	{{9, 7, 5}, {9, 2, 7}, {9, 0, 2}, {2, 11, 7}},    // 198: 1, 2, 6, 7
	{{0, 11, 8}, {0, 5, 11}, {0, 1, 5}, {5, 6, 11}},  // 178: 1, 4, 5, 7
	{{8, 1, 3}, {8, 6, 1}, {8, 4, 6}, {6, 10, 1}},    // 156: 2, 3, 4, 7
	{{1, 2, 6}, {1, 6, 8}, {1, 8, 9}, {8, 6, 7}},     // 116: 2, 4, 5, 6
	{{2, 9, 10}, {2, 7, 9}, {2, 3, 7}, {7, 4, 9}},    // 232: 3, 5, 6, 7
}

// Test12 holds per configuration the two tested faces, the interior test
// sign and the interior test reference edge.
var Test12 = [24][4]int8{
	{4, 3, 7, 11}, // 135: 0, 1, 2, 7
	{3, 2, 7, 10}, // 75: 0, 1, 3, 6
	{2, 6, 7, 5},  // 83: 0, 1, 4, 6
	{6, 4, 7, 7},  // 163: 0, 1, 5, 7
	{2, 1, 7, 9},  // 45: 0, 2, 3, 5
	{5, 2, 7, 1},  // 53: 0, 2, 4, 5
	{5, 3, 7, 2},  // 149: 0, 2, 4, 7
	{5, 1, 7, 0},  // 101: 0, 2, 5, 6
	{5, 4, 7, 3},  // 197: 0, 2, 6, 7
	{6, 3, 7, 6},  // 89: 0, 3, 4, 6
	{1, 6, 7, 4},  // 169: 0, 3, 5, 7
	{1, 4, 7, 8},  // 225: 0, 5, 6, 7
	{4, 1, 7, 8},  // 30: 1, 2, 3, 4
	{6, 1, 7, 4},  // 86: 1, 2, 4, 6
	{3, 6, 7, 6},  // 166: 1, 2, 5, 7
	{4, 5, 7, 3},  // 58: 1, 3, 4, 5
	{1, 5, 7, 0},  // 154: 1, 3, 4, 7
	{3, 5, 7, 2},  // 106: 1, 3, 5, 6
	{2, 5, 7, 1},  // 202: 1, 3, 6, 7
	{1, 2, 7, 9},  // 210: 1, 4, 6, 7
	{4, 6, 7, 7},  // 92: 2, 3, 4, 6
	{6, 2, 7, 5},  // 172: 2, 3, 5, 7
	{2, 3, 7, 10}, // 180: 2, 4, 5, 7
	{3, 4, 7, 11}, // 120: 3, 4, 5, 6
}

var Tiling12_1_1 = [24][4]Triangle{
	{{2, 10, 3}, {10, 9, 3}, {9, 8, 3}, {6, 11, 7}}, // 135: 0, 1, 2, 7
	{{1, 9, 2}, {9, 8, 2}, {8, 11, 2}, {5, 10, 6}},  // 75: 0, 1, 3, 6
	{{1, 9, 3}, {9, 4, 3}, {4, 7, 3}, {5, 10, 6}},   // 83: 0, 1, 4, 6
	{{1, 5, 4}, {1, 4, 3}, {4, 8, 3}, {6, 11, 7}},   // 163: 0, 1, 5, 7
	{{0, 8, 1}, {8, 11, 1}, {11, 10, 1}, {4, 9, 5}}, // 45: 0, 2, 3, 5
	{{0, 9, 3}, {9, 5, 7}, {9, 7, 3}, {1, 2, 10}},   // 53: 0, 2, 4, 5
	{{0, 4, 3}, {4, 6, 3}, {6, 11, 3}, {1, 2, 10}},  // 149: 0, 2, 4, 7
	{{0, 8, 3}, {1, 2, 9}, {2, 6, 9}, {6, 4, 9}},    // 101: 0, 2, 5, 6
	{{0, 8, 3}, {1, 2, 5}, {2, 11, 5}, {11, 7, 5}},  // 197: 0, 2, 6, 7
	{{0, 4, 7}, {0, 7, 2}, {7, 11, 2}, {5, 10, 6}},  // 89: 0, 3, 4, 6
	{{0, 8, 2}, {8, 7, 2}, {7, 6, 2}, {4, 9, 5}},    // 169: 0, 3, 5, 7
	{{0, 8, 3}, {4, 9, 7}, {9, 10, 7}, {10, 11, 7}}, // 225: 0, 5, 6, 7
	{{3, 9, 0}, {3, 10, 9}, {3, 11, 10}, {7, 8, 4}}, // 30: 1, 2, 3, 4
	{{2, 9, 0}, {2, 5, 9}, {2, 6, 5}, {7, 8, 4}},    // 86: 1, 2, 4, 6
	{{5, 4, 0}, {2, 5, 0}, {2, 10, 5}, {11, 7, 6}},  // 166: 1, 2, 5, 7
	{{1, 8, 0}, {5, 7, 8}, {1, 5, 8}, {3, 11, 2}},   // 58: 1, 3, 4, 5
	{{1, 9, 0}, {3, 6, 2}, {3, 4, 6}, {3, 8, 4}},    // 154: 1, 3, 4, 7
	{{1, 4, 0}, {1, 6, 4}, {1, 10, 6}, {3, 11, 2}},  // 106: 1, 3, 5, 6
	{{1, 9, 0}, {3, 10, 2}, {7, 5, 10}, {3, 7, 10}}, // 202: 1, 3, 6, 7
	{{1, 9, 0}, {5, 8, 4}, {5, 11, 8}, {5, 10, 11}}, // 210: 1, 4, 6, 7
	{{6, 5, 1}, {3, 6, 1}, {3, 11, 6}, {7, 8, 4}},   // 92: 2, 3, 4, 6
	{{3, 10, 1}, {3, 6, 10}, {3, 7, 6}, {9, 5, 4}},  // 172: 2, 3, 5, 7
	{{2, 10, 1}, {6, 9, 5}, {6, 8, 9}, {6, 11, 8}},  // 180: 2, 4, 5, 7
	{{3, 11, 2}, {7, 10, 6}, {7, 9, 10}, {7, 8, 9}}, // 120: 3, 4, 5, 6
}

var Tiling12_1_1_ = [24][4]Triangle{
	{{2, 11, 3}, {6, 10, 7}, {10, 9, 7}, {9, 8, 7}}, // 135: 0, 1, 2, 7
	{{1, 10, 2}, {5, 9, 6}, {9, 8, 6}, {8, 11, 6}},  // 75: 0, 1, 3, 6
	{{1, 10, 3}, {10, 6, 3}, {6, 7, 3}, {4, 5, 9}},  // 83: 0, 1, 4, 6
	{{1, 5, 6}, {1, 6, 3}, {6, 11, 3}, {4, 8, 7}},   // 163: 0, 1, 5, 7
	{{0, 9, 1}, {4, 8, 5}, {8, 11, 5}, {11, 10, 5}}, // 45: 0, 2, 3, 5
	{{0, 9, 1}, {2, 10, 3}, {10, 5, 7}, {10, 7, 3}}, // 53: 0, 2, 4, 5
	{{0, 4, 1}, {4, 6, 1}, {6, 10, 1}, {2, 11, 3}},  // 149: 0, 2, 4, 7
	{{0, 9, 1}, {2, 6, 3}, {6, 4, 3}, {4, 8, 3}},    // 101: 0, 2, 5, 6
	{{0, 8, 1}, {8, 7, 5}, {8, 5, 1}, {2, 11, 3}},   // 197: 0, 2, 6, 7
	{{0, 4, 5}, {0, 5, 2}, {5, 10, 2}, {6, 7, 11}},  // 89: 0, 3, 4, 6
	{{0, 9, 2}, {9, 5, 2}, {5, 6, 2}, {4, 8, 7}},    // 169: 0, 3, 5, 7
	{{0, 9, 3}, {9, 10, 3}, {10, 11, 3}, {4, 8, 7}}, // 225: 0, 5, 6, 7
	{{3, 8, 0}, {7, 9, 4}, {7, 10, 9}, {7, 11, 10}}, // 30: 1, 2, 3, 4
	{{2, 8, 0}, {2, 7, 8}, {2, 6, 7}, {5, 9, 4}},    // 86: 1, 2, 4, 6
	{{7, 4, 0}, {2, 7, 0}, {2, 11, 7}, {6, 10, 5}},  // 166: 1, 2, 5, 7
	{{3, 8, 0}, {5, 2, 1}, {5, 11, 2}, {5, 7, 11}},  // 58: 1, 3, 4, 5
	{{3, 8, 0}, {9, 2, 1}, {9, 6, 2}, {9, 4, 6}},    // 154: 1, 3, 4, 7
	{{3, 4, 0}, {3, 6, 4}, {3, 11, 6}, {10, 2, 1}},  // 106: 1, 3, 5, 6
	{{3, 9, 0}, {7, 5, 9}, {3, 7, 9}, {10, 2, 1}},   // 202: 1, 3, 6, 7
	{{1, 8, 0}, {1, 11, 8}, {1, 10, 11}, {5, 9, 4}}, // 210: 1, 4, 6, 7
	{{4, 5, 1}, {3, 4, 1}, {3, 8, 4}, {7, 11, 6}},   // 92: 2, 3, 4, 6
	{{3, 9, 1}, {3, 4, 9}, {3, 7, 4}, {6, 10, 5}},   // 172: 2, 3, 5, 7
	{{2, 9, 1}, {2, 8, 9}, {2, 11, 8}, {6, 10, 5}},  // 180: 2, 4, 5, 7
	{{3, 10, 2}, {3, 9, 10}, {3, 8, 9}, {7, 11, 6}}, // 120: 3, 4, 5, 6
}

var Tiling12_1_2 = [24][8]Triangle{
	{{7, 6, 10}, {10, 9, 7}, {11, 7, 9}, {6, 11, 9}, {9, 3, 6}, {3, 10, 6}, {9, 8, 3}, {3, 2, 10}},    // 135: 0, 1, 2, 7
	{{6, 5, 9}, {9, 8, 6}, {10, 6, 8}, {5, 10, 8}, {8, 2, 5}, {2, 9, 5}, {8, 11, 2}, {2, 1, 9}},       // 75: 0, 1, 3, 6
	{{9, 7, 6}, {10, 6, 7}, {7, 3, 10}, {5, 10, 3}, {6, 5, 3}, {3, 9, 6}, {9, 4, 7}, {3, 1, 9}},       // 83: 0, 1, 4, 6
	{{7, 6, 1}, {11, 7, 1}, {1, 5, 11}, {5, 4, 11}, {6, 11, 4}, {4, 8, 6}, {8, 3, 6}, {3, 1, 6}},      // 163: 0, 1, 5, 7
	{{0, 8, 5}, {8, 11, 5}, {9, 5, 11}, {4, 9, 11}, {11, 10, 4}, {10, 1, 4}, {5, 4, 1}, {1, 0, 5}},    // 45: 0, 2, 3, 5
	{{0, 9, 10}, {2, 10, 9}, {9, 5, 2}, {5, 7, 2}, {1, 2, 7}, {10, 1, 7}, {7, 3, 10}, {3, 0, 10}},     // 53: 0, 2, 4, 5
	{{4, 6, 1}, {10, 1, 6}, {6, 3, 10}, {3, 4, 10}, {2, 10, 4}, {1, 2, 4}, {6, 11, 3}, {3, 0, 4}},     // 149: 0, 2, 4, 7
	{{1, 6, 8}, {0, 8, 6}, {3, 0, 6}, {6, 4, 3}, {8, 3, 4}, {4, 1, 8}, {1, 2, 6}, {4, 9, 1}},          // 101: 0, 2, 5, 6
	{{1, 11, 0}, {11, 5, 0}, {3, 0, 5}, {8, 3, 5}, {5, 1, 8}, {0, 8, 1}, {1, 2, 11}, {11, 7, 5}},      // 197: 0, 2, 6, 7
	{{6, 5, 0}, {10, 6, 0}, {0, 7, 10}, {7, 2, 10}, {5, 10, 2}, {2, 0, 5}, {0, 4, 7}, {7, 11, 2}},     // 89: 0, 3, 4, 6
	{{0, 8, 5}, {8, 7, 5}, {9, 5, 7}, {7, 6, 9}, {6, 2, 9}, {4, 9, 2}, {5, 4, 2}, {2, 0, 5}},          // 169: 0, 3, 5, 7
	{{4, 10, 3}, {8, 3, 10}, {0, 8, 10}, {10, 11, 0}, {3, 0, 11}, {11, 4, 3}, {4, 9, 10}, {11, 7, 4}}, // 225: 0, 5, 6, 7
	{{3, 10, 4}, {10, 3, 8}, {10, 8, 0}, {0, 11, 10}, {11, 0, 3}, {3, 4, 11}, {10, 9, 4}, {4, 7, 11}}, // 30: 1, 2, 3, 4
	{{5, 8, 0}, {5, 7, 8}, {7, 5, 9}, {9, 6, 7}, {9, 2, 6}, {2, 9, 4}, {2, 4, 5}, {5, 0, 2}},          // 86: 1, 2, 4, 6
	{{0, 5, 6}, {0, 6, 10}, {10, 7, 0}, {10, 2, 7}, {2, 10, 5}, {5, 0, 2}, {7, 4, 0}, {2, 11, 7}},     // 166: 1, 2, 5, 7
	{{0, 11, 1}, {0, 5, 11}, {5, 0, 3}, {5, 3, 8}, {8, 1, 5}, {1, 8, 0}, {11, 2, 1}, {5, 7, 11}},      // 58: 1, 3, 4, 5
	{{8, 6, 1}, {6, 8, 0}, {6, 0, 3}, {3, 4, 6}, {4, 3, 8}, {8, 1, 4}, {6, 2, 1}, {1, 9, 4}},          // 154: 1, 3, 4, 7
	{{1, 6, 4}, {6, 1, 10}, {10, 3, 6}, {10, 4, 3}, {4, 10, 2}, {4, 2, 1}, {3, 11, 6}, {4, 0, 3}},     // 106: 1, 3, 5, 6
	{{10, 9, 0}, {9, 10, 2}, {2, 5, 9}, {2, 7, 5}, {7, 2, 1}, {7, 1, 10}, {10, 3, 7}, {10, 0, 3}},     // 202: 1, 3, 6, 7
	{{5, 8, 0}, {5, 11, 8}, {11, 5, 9}, {11, 9, 4}, {4, 10, 11}, {4, 1, 10}, {1, 4, 5}, {5, 0, 1}},    // 210: 1, 4, 6, 7
	{{1, 6, 7}, {1, 7, 11}, {11, 5, 1}, {11, 4, 5}, {4, 11, 6}, {6, 8, 4}, {6, 3, 8}, {6, 1, 3}},      // 92: 2, 3, 4, 6
	{{6, 7, 9}, {7, 6, 10}, {10, 3, 7}, {3, 10, 5}, {3, 5, 6}, {6, 9, 3}, {7, 4, 9}, {9, 1, 3}},       // 172: 2, 3, 5, 7
	{{9, 5, 6}, {6, 8, 9}, {8, 6, 10}, {8, 10, 5}, {5, 2, 8}, {5, 9, 2}, {2, 11, 8}, {9, 1, 2}},       // 180: 2, 4, 5, 7
	{{10, 6, 7}, {7, 9, 10}, {9, 7, 11}, {9, 11, 6}, {6, 3, 9}, {6, 10, 3}, {3, 8, 9}, {10, 2, 3}},    // 120: 3, 4, 5, 6
}

var Tiling12_2 = [24][8]Triangle{
	{{2, 10, 12}, {10, 9, 12}, {9, 8, 12}, {8, 7, 12}, {7, 6, 12}, {6, 11, 12}, {11, 3, 12}, {3, 2, 12}}, // 135: 0, 1, 2, 7
	{{1, 9, 12}, {9, 8, 12}, {8, 11, 12}, {11, 6, 12}, {6, 5, 12}, {5, 10, 12}, {10, 2, 12}, {2, 1, 12}}, // 75: 0, 1, 3, 6
	{{1, 10, 12}, {10, 6, 12}, {6, 5, 12}, {5, 9, 12}, {9, 4, 12}, {4, 7, 12}, {7, 3, 12}, {3, 1, 12}},   // 83: 0, 1, 4, 6
	{{1, 5, 12}, {5, 6, 12}, {6, 11, 12}, {11, 7, 12}, {7, 4, 12}, {4, 8, 12}, {8, 3, 12}, {3, 1, 12}},   // 163: 0, 1, 5, 7
	{{0, 8, 12}, {8, 11, 12}, {11, 10, 12}, {10, 5, 12}, {5, 4, 12}, {4, 9, 12}, {9, 1, 12}, {1, 0, 12}}, // 45: 0, 2, 3, 5
	{{0, 9, 12}, {9, 5, 12}, {5, 7, 12}, {7, 3, 12}, {3, 2, 12}, {2, 10, 12}, {10, 1, 12}, {1, 0, 12}},   // 53: 0, 2, 4, 5
	{{0, 4, 12}, {4, 6, 12}, {6, 11, 12}, {11, 3, 12}, {3, 2, 12}, {2, 10, 12}, {10, 1, 12}, {1, 0, 12}}, // 149: 0, 2, 4, 7
	{{0, 8, 12}, {8, 3, 12}, {3, 2, 12}, {2, 6, 12}, {6, 4, 12}, {4, 9, 12}, {9, 1, 12}, {1, 0, 12}},     // 101: 0, 2, 5, 6
	{{0, 8, 12}, {8, 3, 12}, {3, 2, 12}, {2, 11, 12}, {11, 7, 12}, {7, 5, 12}, {5, 1, 12}, {1, 0, 12}},   // 197: 0, 2, 6, 7
	{{0, 4, 12}, {4, 5, 12}, {5, 10, 12}, {10, 6, 12}, {6, 7, 12}, {7, 11, 12}, {11, 2, 12}, {2, 0, 12}}, // 89: 0, 3, 4, 6
	{{0, 9, 12}, {9, 5, 12}, {5, 4, 12}, {4, 8, 12}, {8, 7, 12}, {7, 6, 12}, {6, 2, 12}, {2, 0, 12}},     // 169: 0, 3, 5, 7
	{{0, 9, 12}, {9, 10, 12}, {10, 11, 12}, {11, 7, 12}, {7, 4, 12}, {4, 8, 12}, {8, 3, 12}, {3, 0, 12}}, // 225: 0, 5, 6, 7
	{{12, 9, 0}, {12, 10, 9}, {12, 11, 10}, {12, 7, 11}, {12, 4, 7}, {12, 8, 4}, {12, 3, 8}, {12, 0, 3}}, // 30: 1, 2, 3, 4
	{{12, 9, 0}, {12, 5, 9}, {12, 4, 5}, {12, 8, 4}, {12, 7, 8}, {12, 6, 7}, {12, 2, 6}, {12, 0, 2}},     // 86: 1, 2, 4, 6
	{{12, 4, 0}, {12, 5, 4}, {12, 10, 5}, {12, 6, 10}, {12, 7, 6}, {12, 11, 7}, {12, 2, 11}, {12, 0, 2}}, // 166: 1, 2, 5, 7
	{{12, 8, 0}, {12, 3, 8}, {12, 2, 3}, {12, 11, 2}, {12, 7, 11}, {12, 5, 7}, {12, 1, 5}, {12, 0, 1}},   // 58: 1, 3, 4, 5
	{{12, 8, 0}, {12, 3, 8}, {12, 2, 3}, {12, 6, 2}, {12, 4, 6}, {12, 9, 4}, {12, 1, 9}, {12, 0, 1}},     // 154: 1, 3, 4, 7
	{{12, 4, 0}, {12, 6, 4}, {12, 11, 6}, {12, 3, 11}, {12, 2, 3}, {12, 10, 2}, {12, 1, 10}, {12, 0, 1}}, // 106: 1, 3, 5, 6
	{{12, 9, 0}, {12, 5, 9}, {12, 7, 5}, {12, 3, 7}, {12, 2, 3}, {12, 10, 2}, {12, 1, 10}, {12, 0, 1}},   // 202: 1, 3, 6, 7
	{{12, 8, 0}, {12, 11, 8}, {12, 10, 11}, {12, 5, 10}, {12, 4, 5}, {12, 9, 4}, {12, 1, 9}, {12, 0, 1}}, // 210: 1, 4, 6, 7
	{{12, 5, 1}, {12, 6, 5}, {12, 11, 6}, {12, 7, 11}, {12, 4, 7}, {12, 8, 4}, {12, 3, 8}, {12, 1, 3}},   // 92: 2, 3, 4, 6
	{{12, 10, 1}, {12, 6, 10}, {12, 5, 6}, {12, 9, 5}, {12, 4, 9}, {12, 7, 4}, {12, 3, 7}, {12, 1, 3}},   // 172: 2, 3, 5, 7
	{{12, 9, 1}, {12, 8, 9}, {12, 11, 8}, {12, 6, 11}, {12, 5, 6}, {12, 10, 5}, {12, 2, 10}, {12, 1, 2}}, // 180: 2, 4, 5, 7
	{{12, 10, 2}, {12, 9, 10}, {12, 8, 9}, {12, 7, 8}, {12, 6, 7}, {12, 11, 6}, {12, 3, 11}, {12, 2, 3}}, // 120: 3, 4, 5, 6
}

var Tiling12_2_ = [24][8]Triangle{
	{{2, 11, 12}, {11, 7, 12}, {7, 6, 12}, {6, 10, 12}, {10, 9, 12}, {9, 8, 12}, {8, 3, 12}, {3, 2, 12}}, // 135: 0, 1, 2, 7
	{{1, 10, 12}, {10, 6, 12}, {6, 5, 12}, {5, 9, 12}, {9, 8, 12}, {8, 11, 12}, {11, 2, 12}, {2, 1, 12}}, // 75: 0, 1, 3, 6
	{{1, 9, 12}, {9, 4, 12}, {4, 5, 12}, {5, 10, 12}, {10, 6, 12}, {6, 7, 12}, {7, 3, 12}, {3, 1, 12}},   // 83: 0, 1, 4, 6
	{{1, 5, 12}, {5, 4, 12}, {4, 8, 12}, {8, 7, 12}, {7, 6, 12}, {6, 11, 12}, {11, 3, 12}, {3, 1, 12}},   // 163: 0, 1, 5, 7
	{{0, 9, 12}, {9, 5, 12}, {5, 4, 12}, {4, 8, 12}, {8, 11, 12}, {11, 10, 12}, {10, 1, 12}, {1, 0, 12}}, // 45: 0, 2, 3, 5
	{{0, 9, 12}, {9, 1, 12}, {1, 2, 12}, {2, 10, 12}, {10, 5, 12}, {5, 7, 12}, {7, 3, 12}, {3, 0, 12}},   // 53: 0, 2, 4, 5
	{{0, 4, 12}, {4, 6, 12}, {6, 10, 12}, {10, 1, 12}, {1, 2, 12}, {2, 11, 12}, {11, 3, 12}, {3, 0, 12}}, // 149: 0, 2, 4, 7
	{{0, 9, 12}, {9, 1, 12}, {1, 2, 12}, {2, 6, 12}, {6, 4, 12}, {4, 8, 12}, {8, 3, 12}, {3, 0, 12}},     // 101: 0, 2, 5, 6
	{{0, 8, 12}, {8, 7, 12}, {7, 5, 12}, {5, 1, 12}, {1, 2, 12}, {2, 11, 12}, {11, 3, 12}, {3, 0, 12}},   // 197: 0, 2, 6, 7
	{{0, 4, 12}, {4, 7, 12}, {7, 11, 12}, {11, 6, 12}, {6, 5, 12}, {5, 10, 12}, {10, 2, 12}, {2, 0, 12}}, // 89: 0, 3, 4, 6
	{{0, 8, 12}, {8, 7, 12}, {7, 4, 12}, {4, 9, 12}, {9, 5, 12}, {5, 6, 12}, {6, 2, 12}, {2, 0, 12}},     // 169: 0, 3, 5, 7
	{{0, 8, 12}, {8, 7, 12}, {7, 4, 12}, {4, 9, 12}, {9, 10, 12}, {10, 11, 12}, {11, 3, 12}, {3, 0, 12}}, // 225: 0, 5, 6, 7
	{{12, 8, 0}, {12, 7, 8}, {12, 4, 7}, {12, 9, 4}, {12, 10, 9}, {12, 11, 10}, {12, 3, 11}, {12, 0, 3}}, // 30: 1, 2, 3, 4
	{{12, 8, 0}, {12, 7, 8}, {12, 4, 7}, {12, 9, 4}, {12, 5, 9}, {12, 6, 5}, {12, 2, 6}, {12, 0, 2}},     // 86: 1, 2, 4, 6
	{{12, 4, 0}, {12, 7, 4}, {12, 11, 7}, {12, 6, 11}, {12, 5, 6}, {12, 10, 5}, {12, 2, 10}, {12, 0, 2}}, // 166: 1, 2, 5, 7
	{{12, 8, 0}, {12, 7, 8}, {12, 5, 7}, {12, 1, 5}, {12, 2, 1}, {12, 11, 2}, {12, 3, 11}, {12, 0, 3}},   // 58: 1, 3, 4, 5
	{{12, 9, 0}, {12, 1, 9}, {12, 2, 1}, {12, 6, 2}, {12, 4, 6}, {12, 8, 4}, {12, 3, 8}, {12, 0, 3}},     // 154: 1, 3, 4, 7
	{{12, 4, 0}, {12, 6, 4}, {12, 10, 6}, {12, 1, 10}, {12, 2, 1}, {12, 11, 2}, {12, 3, 11}, {12, 0, 3}}, // 106: 1, 3, 5, 6
	{{12, 9, 0}, {12, 1, 9}, {12, 2, 1}, {12, 10, 2}, {12, 5, 10}, {12, 7, 5}, {12, 3, 7}, {12, 0, 3}},   // 202: 1, 3, 6, 7
	{{12, 9, 0}, {12, 5, 9}, {12, 4, 5}, {12, 8, 4}, {12, 11, 8}, {12, 10, 11}, {12, 1, 10}, {12, 0, 1}}, // 210: 1, 4, 6, 7
	{{12, 5, 1}, {12, 4, 5}, {12, 8, 4}, {12, 7, 8}, {12, 6, 7}, {12, 11, 6}, {12, 3, 11}, {12, 1, 3}},   // 92: 2, 3, 4, 6
	{{12, 9, 1}, {12, 4, 9}, {12, 5, 4}, {12, 10, 5}, {12, 6, 10}, {12, 7, 6}, {12, 3, 7}, {12, 1, 3}},   // 172: 2, 3, 5, 7
	{{12, 10, 1}, {12, 6, 10}, {12, 5, 6}, {12, 9, 5}, {12, 8, 9}, {12, 11, 8}, {12, 2, 11}, {12, 1, 2}}, // 180: 2, 4, 5, 7
	{{12, 11, 2}, {12, 7, 11}, {12, 6, 7}, {12, 10, 6}, {12, 9, 10}, {12, 8, 9}, {12, 3, 8}, {12, 2, 3}}, // 120: 3, 4, 5, 6
}

// Test13 holds per configuration the six tested faces and the interior test sign.
var Test13 = [2][7]int8{
	{1, 2, 3, 4, 5, 6, 7}, // 165: 0, 2, 5, 7
	{2, 3, 4, 1, 5, 6, 7}, // 90: 1, 3, 4, 6
}

// Subconfig13 maps the 6 bit mask of face test results of class 13 to one of
// its 46 sub-configurations. Entries of -1 are unreachable masks.
var Subconfig13 = [64]int8{
	0, 1, 2, 7, 3, -1, 11, -1,
	4, 8, -1, -1, 14, -1, -1, -1,
	5, 9, 12, 23, 15, -1, 21, 38,
	17, 20, -1, 36, 26, 33, 30, 44,
	6, 10, 13, 19, 16, -1, 25, 37,
	18, 24, -1, 35, 22, 32, 29, 43,
	-1, -1, -1, 34, -1, -1, 27, 42,
	-1, 31, -1, 41, 28, 39, 40, 45,
}

var Tiling13_1 = [2][4]Triangle{
	{{0, 8, 3}, {1, 2, 10}, {4, 9, 5}, {6, 11, 7}}, // 165: 0, 2, 5, 7
	{{0, 1, 9}, {2, 3, 11}, {4, 7, 8}, {5, 10, 6}}, // 90: 1, 3, 4, 6
}

var Tiling13_1_ = [2][4]Triangle{
	{{0, 9, 1}, {2, 11, 3}, {4, 8, 7}, {5, 6, 10}}, // 165: 0, 2, 5, 7
	{{0, 3, 8}, {1, 10, 2}, {4, 5, 9}, {6, 7, 11}}, // 90: 1, 3, 4, 6
}

var Tiling13_2 = [2][6][6]Triangle{
	{{{0, 9, 3}, {9, 5, 3}, {5, 4, 3}, {4, 8, 3}, {1, 2, 10}, {6, 11, 7}}, {{0, 8, 3}, {1, 2, 9}, {2, 10, 4}, {10, 5, 4}, {2, 4, 9}, {6, 11, 7}}, {{0, 8, 3}, {1, 2, 7}, {2, 11, 7}, {1, 7, 10}, {7, 6, 10}, {4, 9, 5}}, {{0, 8, 6}, {8, 7, 6}, {0, 6, 3}, {6, 11, 3}, {1, 2, 10}, {4, 9, 5}}, {{0, 8, 1}, {8, 3, 10}, {3, 2, 10}, {8, 10, 1}, {4, 9, 5}, {6, 11, 7}}, {{0, 8, 3}, {1, 2, 10}, {4, 9, 7}, {9, 5, 11}, {5, 6, 11}, {9, 11, 7}}}, // 165: 0, 2, 5, 7
	{{{0, 1, 6}, {1, 10, 6}, {0, 6, 9}, {6, 5, 9}, {2, 3, 11}, {4, 7, 8}}, {{0, 1, 9}, {2, 3, 10}, {3, 11, 5}, {11, 6, 5}, {3, 5, 10}, {4, 7, 8}}, {{0, 1, 9}, {2, 3, 4}, {3, 8, 4}, {2, 4, 11}, {4, 7, 11}, {5, 10, 6}}, {{0, 1, 8}, {1, 9, 7}, {9, 4, 7}, {1, 7, 8}, {2, 3, 11}, {5, 10, 6}}, {{0, 3, 9}, {3, 11, 9}, {11, 2, 9}, {2, 1, 9}, {4, 7, 8}, {5, 10, 6}}, {{0, 1, 9}, {2, 3, 11}, {4, 5, 8}, {5, 10, 8}, {10, 6, 8}, {6, 7, 8}}},  // 90: 1, 3, 4, 6
}

var Tiling13_2_ = [2][6][6]Triangle{
	{{{0, 9, 6}, {9, 5, 6}, {0, 6, 1}, {6, 10, 1}, {2, 11, 3}, {4, 8, 7}}, {{0, 8, 1}, {8, 7, 1}, {7, 4, 1}, {4, 9, 1}, {2, 11, 3}, {5, 6, 10}}, {{0, 9, 1}, {2, 10, 3}, {10, 5, 3}, {5, 6, 3}, {6, 11, 3}, {4, 8, 7}}, {{0, 9, 1}, {2, 11, 4}, {11, 7, 4}, {2, 4, 3}, {4, 8, 3}, {5, 6, 10}}, {{0, 9, 3}, {9, 1, 11}, {1, 2, 11}, {9, 11, 3}, {4, 8, 7}, {5, 6, 10}}, {{0, 9, 1}, {2, 11, 3}, {4, 8, 5}, {8, 7, 10}, {7, 6, 10}, {8, 10, 5}}}, // 165: 0, 2, 5, 7
	{{{0, 3, 8}, {1, 10, 7}, {10, 6, 7}, {1, 7, 2}, {7, 11, 2}, {4, 5, 9}}, {{0, 3, 8}, {1, 9, 2}, {9, 4, 2}, {4, 5, 2}, {5, 10, 2}, {6, 7, 11}}, {{0, 3, 6}, {3, 11, 6}, {0, 6, 8}, {6, 7, 8}, {1, 10, 2}, {4, 5, 9}}, {{0, 3, 9}, {3, 8, 5}, {8, 4, 5}, {3, 5, 9}, {1, 10, 2}, {6, 7, 11}}, {{0, 1, 8}, {1, 10, 8}, {10, 2, 8}, {2, 3, 8}, {4, 5, 9}, {6, 7, 11}}, {{0, 3, 8}, {1, 10, 2}, {4, 7, 9}, {7, 11, 9}, {11, 6, 9}, {6, 5, 9}}},    // 90: 1, 3, 4, 6
}

var Tiling13_3 = [2][12][10]Triangle{
	{{{0, 9, 12}, {9, 1, 12}, {1, 2, 12}, {2, 10, 12}, {10, 5, 12}, {5, 4, 12}, {4, 8, 12}, {8, 3, 12}, {3, 0, 12}, {6, 11, 7}}, {{0, 9, 12}, {9, 5, 12}, {5, 4, 12}, {4, 8, 12}, {8, 7, 12}, {7, 6, 12}, {6, 11, 12}, {11, 3, 12}, {3, 0, 12}, {1, 2, 10}}, {{0, 9, 12}, {9, 5, 12}, {5, 4, 12}, {4, 8, 12}, {8, 3, 12}, {3, 2, 12}, {2, 10, 12}, {10, 1, 12}, {1, 0, 12}, {6, 11, 7}}, {{0, 9, 12}, {9, 5, 12}, {5, 6, 12}, {6, 11, 12}, {11, 7, 12}, {7, 4, 12}, {4, 8, 12}, {8, 3, 12}, {3, 0, 12}, {1, 2, 10}}, {{0, 8, 3}, {1, 2, 12}, {2, 11, 12}, {11, 7, 12}, {7, 6, 12}, {6, 10, 12}, {10, 5, 12}, {5, 4, 12}, {4, 9, 12}, {9, 1, 12}}, {{0, 8, 12}, {8, 3, 12}, {3, 2, 12}, {2, 10, 12}, {10, 5, 12}, {5, 4, 12}, {4, 9, 12}, {9, 1, 12}, {1, 0, 12}, {6, 11, 7}}, {{0, 8, 3}, {1, 2, 12}, {2, 10, 12}, {10, 5, 12}, {5, 6, 12}, {6, 11, 12}, {11, 7, 12}, {7, 4, 12}, {4, 9, 12}, {9, 1, 12}}, {{0, 8, 12}, {8, 7, 12}, {7, 6, 12}, {6, 10, 12}, {10, 1, 12}, {1, 2, 12}, {2, 11, 12}, {11, 3, 12}, {3, 0, 12}, {4, 9, 5}}, {{0, 8, 12}, {8, 3, 12}, {3, 2, 12}, {2, 11, 12}, {11, 7, 12}, {7, 6, 12}, {6, 10, 12}, {10, 1, 12}, {1, 0, 12}, {4, 9, 5}}, {{0, 8, 3}, {1, 2, 12}, {2, 11, 12}, {11, 7, 12}, {7, 4, 12}, {4, 9, 12}, {9, 5, 12}, {5, 6, 12}, {6, 10, 12}, {10, 1, 12}}, {{0, 8, 12}, {8, 7, 12}, {7, 6, 12}, {6, 11, 12}, {11, 3, 12}, {3, 2, 12}, {2, 10, 12}, {10, 1, 12}, {1, 0, 12}, {4, 9, 5}}, {{0, 8, 12}, {8, 7, 12}, {7, 4, 12}, {4, 9, 12}, {9, 5, 12}, {5, 6, 12}, {6, 11, 12}, {11, 3, 12}, {3, 0, 12}, {1, 2, 10}}}, // 165: 0, 2, 5, 7
	{{{0, 1, 12}, {1, 10, 12}, {10, 2, 12}, {2, 3, 12}, {3, 11, 12}, {11, 6, 12}, {6, 5, 12}, {5, 9, 12}, {9, 0, 12}, {4, 7, 8}}, {{0, 1, 12}, {1, 10, 12}, {10, 6, 12}, {6, 5, 12}, {5, 9, 12}, {9, 4, 12}, {4, 7, 12}, {7, 8, 12}, {8, 0, 12}, {2, 3, 11}}, {{0, 3, 12}, {3, 11, 12}, {11, 2, 12}, {2, 1, 12}, {1, 10, 12}, {10, 6, 12}, {6, 5, 12}, {5, 9, 12}, {9, 0, 12}, {4, 7, 8}}, {{0, 1, 12}, {1, 10, 12}, {10, 6, 12}, {6, 7, 12}, {7, 8, 12}, {8, 4, 12}, {4, 5, 12}, {5, 9, 12}, {9, 0, 12}, {2, 3, 11}}, {{0, 1, 9}, {2, 3, 12}, {3, 8, 12}, {8, 4, 12}, {4, 7, 12}, {7, 11, 12}, {11, 6, 12}, {6, 5, 12}, {5, 10, 12}, {10, 2, 12}}, {{0, 3, 12}, {3, 11, 12}, {11, 6, 12}, {6, 5, 12}, {5, 10, 12}, {10, 2, 12}, {2, 1, 12}, {1, 9, 12}, {9, 0, 12}, {4, 7, 8}}, {{0, 1, 9}, {2, 3, 12}, {3, 11, 12}, {11, 6, 12}, {6, 7, 12}, {7, 8, 12}, {8, 4, 12}, {4, 5, 12}, {5, 10, 12}, {10, 2, 12}}, {{0, 1, 12}, {1, 9, 12}, {9, 4, 12}, {4, 7, 12}, {7, 11, 12}, {11, 2, 12}, {2, 3, 12}, {3, 8, 12}, {8, 0, 12}, {5, 10, 6}}, {{0, 3, 12}, {3, 8, 12}, {8, 4, 12}, {4, 7, 12}, {7, 11, 12}, {11, 2, 12}, {2, 1, 12}, {1, 9, 12}, {9, 0, 12}, {5, 10, 6}}, {{0, 1, 9}, {2, 3, 12}, {3, 8, 12}, {8, 4, 12}, {4, 5, 12}, {5, 10, 12}, {10, 6, 12}, {6, 7, 12}, {7, 11, 12}, {11, 2, 12}}, {{0, 3, 12}, {3, 11, 12}, {11, 2, 12}, {2, 1, 12}, {1, 9, 12}, {9, 4, 12}, {4, 7, 12}, {7, 8, 12}, {8, 0, 12}, {5, 10, 6}}, {{0, 1, 12}, {1, 9, 12}, {9, 4, 12}, {4, 5, 12}, {5, 10, 12}, {10, 6, 12}, {6, 7, 12}, {7, 8, 12}, {8, 0, 12}, {2, 3, 11}}}, // 90: 1, 3, 4, 6
}

var Tiling13_3_ = [2][12][10]Triangle{
	{{{0, 8, 12}, {8, 3, 12}, {3, 2, 12}, {2, 11, 12}, {11, 7, 12}, {7, 4, 12}, {4, 9, 12}, {9, 1, 12}, {1, 0, 12}, {5, 6, 10}}, {{0, 8, 12}, {8, 7, 12}, {7, 4, 12}, {4, 9, 12}, {9, 5, 12}, {5, 6, 12}, {6, 10, 12}, {10, 1, 12}, {1, 0, 12}, {2, 11, 3}}, {{0, 8, 12}, {8, 7, 12}, {7, 4, 12}, {4, 9, 12}, {9, 1, 12}, {1, 2, 12}, {2, 11, 12}, {11, 3, 12}, {3, 0, 12}, {5, 6, 10}}, {{0, 8, 12}, {8, 7, 12}, {7, 6, 12}, {6, 10, 12}, {10, 5, 12}, {5, 4, 12}, {4, 9, 12}, {9, 1, 12}, {1, 0, 12}, {2, 11, 3}}, {{0, 9, 12}, {9, 5, 12}, {5, 6, 12}, {6, 11, 12}, {11, 3, 12}, {3, 2, 12}, {2, 10, 12}, {10, 1, 12}, {1, 0, 12}, {4, 8, 7}}, {{0, 9, 12}, {9, 5, 12}, {5, 6, 12}, {6, 10, 12}, {10, 1, 12}, {1, 2, 12}, {2, 11, 12}, {11, 3, 12}, {3, 0, 12}, {4, 8, 7}}, {{0, 9, 12}, {9, 5, 12}, {5, 4, 12}, {4, 8, 12}, {8, 7, 12}, {7, 6, 12}, {6, 10, 12}, {10, 1, 12}, {1, 0, 12}, {2, 11, 3}}, {{0, 9, 1}, {2, 10, 12}, {10, 5, 12}, {5, 6, 12}, {6, 11, 12}, {11, 7, 12}, {7, 4, 12}, {4, 8, 12}, {8, 3, 12}, {3, 2, 12}}, {{0, 9, 12}, {9, 1, 12}, {1, 2, 12}, {2, 10, 12}, {10, 5, 12}, {5, 6, 12}, {6, 11, 12}, {11, 3, 12}, {3, 0, 12}, {4, 8, 7}}, {{0, 9, 1}, {2, 10, 12}, {10, 5, 12}, {5, 4, 12}, {4, 8, 12}, {8, 7, 12}, {7, 6, 12}, {6, 11, 12}, {11, 3, 12}, {3, 2, 12}}, {{0, 9, 12}, {9, 1, 12}, {1, 2, 12}, {2, 11, 12}, {11, 7, 12}, {7, 4, 12}, {4, 8, 12}, {8, 3, 12}, {3, 0, 12}, {5, 6, 10}}, {{0, 9, 1}, {2, 11, 12}, {11, 7, 12}, {7, 6, 12}, {6, 10, 12}, {10, 5, 12}, {5, 4, 12}, {4, 8, 12}, {8, 3, 12}, {3, 2, 12}}}, // 165: 0, 2, 5, 7
	{{{0, 3, 12}, {3, 8, 12}, {8, 4, 12}, {4, 5, 12}, {5, 10, 12}, {10, 2, 12}, {2, 1, 12}, {1, 9, 12}, {9, 0, 12}, {6, 7, 11}}, {{0, 3, 8}, {1, 9, 12}, {9, 4, 12}, {4, 5, 12}, {5, 10, 12}, {10, 6, 12}, {6, 7, 12}, {7, 11, 12}, {11, 2, 12}, {2, 1, 12}}, {{0, 1, 12}, {1, 9, 12}, {9, 4, 12}, {4, 5, 12}, {5, 10, 12}, {10, 2, 12}, {2, 3, 12}, {3, 8, 12}, {8, 0, 12}, {6, 7, 11}}, {{0, 3, 8}, {1, 9, 12}, {9, 4, 12}, {4, 7, 12}, {7, 11, 12}, {11, 6, 12}, {6, 5, 12}, {5, 10, 12}, {10, 2, 12}, {2, 1, 12}}, {{0, 3, 12}, {3, 11, 12}, {11, 2, 12}, {2, 1, 12}, {1, 10, 12}, {10, 6, 12}, {6, 7, 12}, {7, 8, 12}, {8, 0, 12}, {4, 5, 9}}, {{0, 1, 12}, {1, 10, 12}, {10, 6, 12}, {6, 7, 12}, {7, 11, 12}, {11, 2, 12}, {2, 3, 12}, {3, 8, 12}, {8, 0, 12}, {4, 5, 9}}, {{0, 3, 8}, {1, 10, 12}, {10, 6, 12}, {6, 5, 12}, {5, 9, 12}, {9, 4, 12}, {4, 7, 12}, {7, 11, 12}, {11, 2, 12}, {2, 1, 12}}, {{0, 3, 12}, {3, 11, 12}, {11, 6, 12}, {6, 7, 12}, {7, 8, 12}, {8, 4, 12}, {4, 5, 12}, {5, 9, 12}, {9, 0, 12}, {1, 10, 2}}, {{0, 1, 12}, {1, 10, 12}, {10, 2, 12}, {2, 3, 12}, {3, 11, 12}, {11, 6, 12}, {6, 7, 12}, {7, 8, 12}, {8, 0, 12}, {4, 5, 9}}, {{0, 3, 12}, {3, 11, 12}, {11, 6, 12}, {6, 5, 12}, {5, 9, 12}, {9, 4, 12}, {4, 7, 12}, {7, 8, 12}, {8, 0, 12}, {1, 10, 2}}, {{0, 1, 12}, {1, 10, 12}, {10, 2, 12}, {2, 3, 12}, {3, 8, 12}, {8, 4, 12}, {4, 5, 12}, {5, 9, 12}, {9, 0, 12}, {6, 7, 11}}, {{0, 3, 12}, {3, 8, 12}, {8, 4, 12}, {4, 7, 12}, {7, 11, 12}, {11, 6, 12}, {6, 5, 12}, {5, 9, 12}, {9, 0, 12}, {1, 10, 2}}}, // 90: 1, 3, 4, 6
}

var Tiling13_4 = [2][4][12]Triangle{
	{{{0, 9, 12}, {9, 1, 12}, {1, 2, 12}, {2, 10, 12}, {10, 5, 12}, {5, 6, 12}, {6, 11, 12}, {11, 7, 12}, {7, 4, 12}, {4, 8, 12}, {8, 3, 12}, {3, 0, 12}}, {{0, 9, 12}, {9, 5, 12}, {5, 4, 12}, {4, 8, 12}, {8, 7, 12}, {7, 6, 12}, {6, 11, 12}, {11, 3, 12}, {3, 2, 12}, {2, 10, 12}, {10, 1, 12}, {1, 0, 12}}, {{0, 8, 12}, {8, 3, 12}, {3, 2, 12}, {2, 11, 12}, {11, 7, 12}, {7, 6, 12}, {6, 10, 12}, {10, 5, 12}, {5, 4, 12}, {4, 9, 12}, {9, 1, 12}, {1, 0, 12}}, {{0, 8, 12}, {8, 7, 12}, {7, 4, 12}, {4, 9, 12}, {9, 5, 12}, {5, 6, 12}, {6, 10, 12}, {10, 1, 12}, {1, 2, 12}, {2, 11, 12}, {11, 3, 12}, {3, 0, 12}}}, // 165: 0, 2, 5, 7
	{{{0, 1, 12}, {1, 10, 12}, {10, 2, 12}, {2, 3, 12}, {3, 11, 12}, {11, 6, 12}, {6, 7, 12}, {7, 8, 12}, {8, 4, 12}, {4, 5, 12}, {5, 9, 12}, {9, 0, 12}}, {{0, 3, 12}, {3, 11, 12}, {11, 2, 12}, {2, 1, 12}, {1, 10, 12}, {10, 6, 12}, {6, 5, 12}, {5, 9, 12}, {9, 4, 12}, {4, 7, 12}, {7, 8, 12}, {8, 0, 12}}, {{0, 3, 12}, {3, 8, 12}, {8, 4, 12}, {4, 7, 12}, {7, 11, 12}, {11, 6, 12}, {6, 5, 12}, {5, 10, 12}, {10, 2, 12}, {2, 1, 12}, {1, 9, 12}, {9, 0, 12}}, {{0, 1, 12}, {1, 9, 12}, {9, 4, 12}, {4, 5, 12}, {5, 10, 12}, {10, 6, 12}, {6, 7, 12}, {7, 11, 12}, {11, 2, 12}, {2, 3, 12}, {3, 8, 12}, {8, 0, 12}}}, // 90: 1, 3, 4, 6
}

// Tiling13_5_1 starts with the reference edge of the interior test.
var Tiling13_5_1 = [2][4][6]Triangle{
	{{{3, 2, 10}, {0, 9, 1}, {10, 5, 4}, {10, 4, 3}, {4, 8, 3}, {6, 11, 7}}, {{3, 0, 9}, {9, 5, 6}, {9, 6, 3}, {6, 11, 3}, {1, 2, 10}, {4, 8, 7}}, {{1, 2, 9}, {0, 8, 3}, {2, 11, 7}, {2, 7, 9}, {7, 4, 9}, {5, 6, 10}}, {{8, 1, 0}, {8, 7, 6}, {8, 6, 1}, {6, 10, 1}, {2, 11, 3}, {4, 9, 5}}}, // 165: 0, 2, 5, 7
	{{{1, 10, 2}, {0, 3, 9}, {3, 11, 6}, {3, 6, 9}, {6, 5, 9}, {4, 7, 8}}, {{1, 8, 0}, {1, 10, 6}, {1, 6, 8}, {6, 7, 8}, {2, 3, 11}, {4, 5, 9}}, {{0, 1, 9}, {2, 3, 10}, {3, 8, 4}, {3, 4, 10}, {4, 5, 10}, {6, 7, 11}}, {{0, 3, 8}, {1, 9, 2}, {9, 4, 7}, {9, 7, 2}, {7, 11, 2}, {5, 10, 6}}}, // 90: 1, 3, 4, 6
}

var Tiling13_5_2 = [2][4][10]Triangle{
	{{{7, 6, 10}, {10, 4, 7}, {11, 7, 4}, {6, 11, 4}, {4, 3, 6}, {3, 10, 6}, {10, 5, 4}, {4, 8, 3}, {3, 2, 10}, {0, 9, 1}}, {{9, 6, 1}, {10, 1, 6}, {6, 3, 10}, {3, 9, 10}, {2, 10, 9}, {1, 2, 9}, {9, 5, 6}, {6, 11, 3}, {3, 0, 9}, {4, 8, 7}}, {{1, 11, 0}, {3, 0, 11}, {11, 4, 3}, {8, 3, 4}, {4, 1, 8}, {0, 8, 1}, {1, 2, 11}, {11, 7, 4}, {4, 9, 1}, {5, 6, 10}}, {{5, 4, 7}, {9, 5, 7}, {7, 6, 9}, {6, 1, 9}, {4, 9, 1}, {1, 7, 4}, {6, 10, 1}, {1, 0, 7}, {0, 8, 7}, {2, 11, 3}}}, // 165: 0, 2, 5, 7
	{{{8, 4, 6}, {6, 5, 8}, {7, 8, 5}, {5, 9, 7}, {9, 6, 7}, {4, 7, 6}, {9, 0, 3}, {9, 3, 6}, {3, 11, 6}, {1, 10, 2}}, {{11, 2, 10}, {3, 11, 10}, {10, 6, 3}, {2, 3, 6}, {6, 7, 2}, {7, 10, 2}, {7, 8, 0}, {7, 0, 10}, {0, 1, 10}, {4, 5, 9}}, {{2, 5, 9}, {1, 9, 5}, {0, 1, 5}, {5, 10, 0}, {9, 0, 10}, {10, 2, 9}, {2, 3, 8}, {2, 8, 5}, {8, 4, 5}, {6, 7, 11}}, {{6, 5, 9}, {9, 7, 6}, {10, 6, 7}, {7, 2, 10}, {5, 10, 2}, {2, 9, 5}, {9, 4, 7}, {7, 11, 2}, {2, 1, 9}, {0, 3, 8}}},   // 90: 1, 3, 4, 6
}

var Tiling14 = [12][4]Triangle{
	{{5, 9, 8}, {5, 8, 2}, {5, 2, 6}, {3, 2, 8}},     // 71: 0, 1, 2, 6
	{{2, 1, 5}, {2, 5, 8}, {2, 8, 11}, {4, 8, 5}},    // 43: 0, 1, 3, 5
	{{9, 4, 6}, {9, 6, 3}, {9, 3, 1}, {11, 3, 6}},    // 147: 0, 1, 4, 7
	{{1, 11, 10}, {1, 4, 11}, {1, 0, 4}, {7, 11, 4}}, // 29: 0, 2, 3, 4
	{{8, 2, 0}, {8, 5, 2}, {8, 7, 5}, {10, 2, 5}},    // 201: 0, 3, 6, 7
	{{0, 7, 3}, {0, 10, 7}, {0, 9, 10}, {6, 7, 10}},  // 113: 0, 4, 5, 6
	{{0, 3, 7}, {0, 7, 10}, {0, 10, 9}, {6, 10, 7}},  // 142: 1, 2, 3, 7
	{{8, 0, 2}, {8, 2, 5}, {8, 5, 7}, {10, 5, 2}},    // 54: 1, 2, 4, 5
	{{1, 10, 11}, {1, 11, 4}, {1, 4, 0}, {7, 4, 11}}, // 226: 1, 5, 6, 7
	{{9, 6, 4}, {9, 3, 6}, {9, 1, 3}, {11, 6, 3}},    // 108: 2, 3, 5, 6
	{{2, 5, 1}, {2, 8, 5}, {2, 11, 8}, {4, 5, 8}},    // 212: 2, 4, 6, 7
	{{5, 8, 9}, {5, 2, 8}, {5, 6, 2}, {3, 8, 2}},     // 184: 3, 4, 5, 7
}
