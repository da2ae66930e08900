package spectrum

// GammaLUT holds trunc(-ln(1 - (i/256)^2.1) * 4096): the linear light at
// which display level i begins. Regenerate with cmd/mklut.
var GammaLUT = [256]int32{
	0, 0, 0, 0, 0, 1, 1, 2, 2, 3, 4, 5,
	6, 7, 9, 10, 12, 13, 15, 17, 19, 21, 23, 26,
	28, 31, 33, 36, 39, 42, 45, 48, 52, 55, 59, 63,
	67, 71, 75, 79, 83, 88, 93, 97, 102, 107, 112, 118,
	123, 129, 134, 140, 146, 152, 159, 165, 171, 178, 185, 192,
	199, 206, 213, 221, 229, 236, 244, 253, 261, 269, 278, 286,
	295, 304, 314, 323, 332, 342, 352, 362, 372, 382, 393, 403,
	414, 425, 436, 448, 459, 471, 483, 495, 507, 520, 532, 545,
	558, 571, 585, 598, 612, 626, 640, 655, 669, 684, 699, 714,
	730, 745, 761, 777, 794, 810, 827, 844, 861, 879, 896, 914,
	932, 951, 970, 989, 1008, 1027, 1047, 1067, 1087, 1108, 1129, 1150,
	1171, 1193, 1215, 1238, 1260, 1283, 1306, 1330, 1354, 1378, 1403, 1428,
	1453, 1479, 1505, 1531, 1558, 1585, 1612, 1640, 1668, 1697, 1726, 1756,
	1785, 1816, 1847, 1878, 1910, 1942, 1974, 2007, 2041, 2075, 2110, 2145,
	2181, 2217, 2254, 2291, 2329, 2368, 2407, 2447, 2488, 2529, 2571, 2613,
	2657, 2701, 2745, 2791, 2837, 2884, 2932, 2981, 3031, 3081, 3133, 3185,
	3239, 3293, 3349, 3406, 3463, 3522, 3582, 3644, 3706, 3770, 3836, 3903,
	3971, 4041, 4112, 4185, 4260, 4336, 4415, 4495, 4578, 4662, 4749, 4838,
	4930, 5024, 5121, 5221, 5324, 5429, 5539, 5652, 5768, 5889, 6014, 6144,
	6278, 6418, 6563, 6714, 6872, 7038, 7210, 7392, 7582, 7783, 7996, 8221,
	8460, 8715, 8989, 9283, 9602, 9950, 10331, 10754, 11227, 11765, 12388, 13126,
	14031, 15200, 16852, 19682,
}

// DegammaLUT holds the linear light of each 5-bit display level. Entry v
// equals GammaLUT[8*v], so a display color survives a round trip through
// FromColor and Gamma.
var DegammaLUT = [32]int32{
	0, 2, 12, 28, 52, 83, 123, 171,
	229, 295, 372, 459, 558, 669, 794, 932,
	1087, 1260, 1453, 1668, 1910, 2181, 2488, 2837,
	3239, 3706, 4260, 4930, 5768, 6872, 8460, 11227,
}
