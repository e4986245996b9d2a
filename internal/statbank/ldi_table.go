package statbank

// ldiFloor is assigned to any digraph with no corpus-observed frequency.
const ldiFloor = -4.0

// ldiLogFreq is the bundled base-10 log-frequency table for English
// digraphs, indexed s[i]*26+s[j] for letters i,j in [0,25]. Values are a
// fixed constant per spec: two implementations must share a table to
// agree on LDI magnitudes, though rankings are stable across tables that
// are internally consistent.
var ldiLogFreq = [676]float64{
	-4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -2.4318, -4.0, -2.0862, -4.0, -4.0, -4.0, -2.3665, -2.4815, -2.2676, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-4.0, -4.0, -4.0, -4.0, -2.7959, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-4.0, -4.0, -4.0, -4.0, -2.7447, -4.0, -4.0, -2.7447, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -2.699, -4.0, -4.0, -4.0, -4.0, -2.8861, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-4.0, -4.0, -4.0, -4.0, -2.6576, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-2.2924, -4.0, -2.7212, -2.2757, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -2.7959, -4.0, -2.2596, -4.0, -4.0, -4.0, -2.0269, -2.2147, -2.5528, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-2.5086, -4.0, -4.0, -4.0, -1.8928, -4.0, -4.0, -4.0, -2.6576, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-4.0, -4.0, -2.5686, -2.8239, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -2.8239, -4.0, -2.0269, -2.8239, -4.0, -4.0, -4.0, -2.4559, -2.4318, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-2.7696, -4.0, -4.0, -4.0, -2.6021, -4.0, -4.0, -4.0, -2.7696, -4.0, -4.0, -2.7212, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-4.0, -4.0, -4.0, -4.0, -2.6576, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-2.8539, -4.0, -4.0, -2.2924, -2.6576, -4.0, -2.4202, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -2.8239, -4.0, -4.0, -4.0, -2.7696, -2.2518, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-4.0, -4.0, -4.0, -4.0, -4.0, -2.4685, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -2.7447, -2.2441, -4.0, -4.0, -4.0, -2.2924, -4.0, -2.8539, -2.5376, -4.0, -2.7696, -4.0, -4.0, -4.0,
	-4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-2.6576, -4.0, -4.0, -4.0, -2.1675, -4.0, -4.0, -4.0, -2.6576, -4.0, -4.0, -4.0, -4.0, -4.0, -2.6021, -4.0, -4.0, -4.0, -4.0, -2.8239, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-2.699, -4.0, -4.0, -4.0, -2.5229, -4.0, -4.0, -4.0, -2.7212, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -2.2596, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-2.699, -4.0, -4.0, -4.0, -2.3768, -4.0, -4.0, -1.8182, -2.4685, -4.0, -4.0, -4.0, -4.0, -4.0, -2.284, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -2.7447, -4.0, -2.8239, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-4.0, -4.0, -4.0, -4.0, -2.6198, -4.0, -4.0, -4.0, -2.8861, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-2.7212, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -2.7959, -2.7696, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
	-4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0, -4.0,
}
