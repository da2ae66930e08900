package lightmap

// Spherical sample layout. RingX/RingZ place MapSize points around the
// horizontal circle at angles π(2i+1)/8; BandHeight/BandRadius give the
// height and ring radius of MapSize elevation bands centered at π(2j+1)/16
// from the south pole. Regenerate with cmd/mklut.
var (
	RingX = [MapSize]int32{3784, 1567, -1567, -3784, -3784, -1567, 1567, 3784}
	RingZ = [MapSize]int32{1567, 3784, 3784, 1567, -1567, -3784, -3784, -1567}

	BandHeight = [MapSize]int32{-4017, -3405, -2275, -799, 799, 2275, 3405, 4017}
	BandRadius = [MapSize]int32{799, 2275, 3405, 4017, 4017, 3405, 2275, 799}
)
