package fixed

// AsinLUT holds trunc(asin(i/32 - 1) / (π/2) * 4096) for i in [0, 64].
// Regenerate with cmd/mklut.
var AsinLUT = [65]int32{
	-4096, -3442, -3169, -2957, -2778, -2618, -2473, -2338,
	-2211, -2091, -1976, -1866, -1760, -1657, -1557, -1460,
	-1365, -1272, -1180, -1090, -1002, -915, -828, -743,
	-658, -575, -491, -409, -326, -244, -163, -81,
	0,
	81, 163, 244, 326, 409, 491, 575, 658,
	743, 828, 915, 1002, 1090, 1180, 1272, 1365,
	1460, 1557, 1657, 1760, 1866, 1976, 2091, 2211,
	2338, 2473, 2618, 2778, 2957, 3169, 3442, 4096,
}
