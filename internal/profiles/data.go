// Mean/weight/sigma2 values come from tools_gen/gen_data.py's profile
// dump: per-family baseline vectors plus a small deterministic per-cipher
// offset. They are data, not something this implementation reconstructs
// analytically.
package profiles

// featureOrder fixes the column order backing every []float64 below.
// It mirrors statbank.FeatureVector field order exactly.
var featureOrder = [11]string{
	"IoC",
	"MIC",
	"MKA",
	"DIC",
	"EDI",
	"LR",
	"ROD",
	"LDI",
	"SDD",
	"Shannon",
	"BinaryRandom",
}

// featureSigma2 holds the per-feature normalization constant sigma_f^2,
// shared across all ciphers, indexed the same way as featureOrder.
var featureSigma2 = [11]float64{
	0.09, // IoC
	36.0, // MIC
	25.0, // MKA
	30.0, // DIC
	26.0, // EDI
	4.0, // LR
	64.0, // ROD
	110.0, // LDI
	36.0, // SDD
	0.05, // Shannon
	0.25, // BinaryRandom
}

// rawProfile is the compiled-in per-cipher (mean, weight) pair, column-
// aligned with featureOrder.
type rawProfile struct {
	mean   [11]float64
	weight [11]float64
}

var rawProfiles = map[string]rawProfile{
	"6x6bifid": {
		mean:   [11]float64{1.0493, 31.5733, 17.0, 9.0583, 7.8874, 3.9603, 49.5516, 55.9042, 42.6132, 4.7066, 1.0},
		weight: [11]float64{1.0, 0.8, 0.8, 0.6, 0.5, 0.3, 0.4, 0.7, 0.7, 0.9, 0.2},
	},
	"6x6playfair": {
		mean:   [11]float64{1.0229, 34.9487, 18.1375, 16.5288, 14.3301, 4.1876, 51.1313, 65.4745, 41.181, 4.3346, 1.0},
		weight: [11]float64{1.0, 0.7, 0.7, 1.2, 1.1, 0.3, 0.4, 0.9, 0.8, 0.9, 0.2},
	},
	"Autokey": {
		mean:   [11]float64{1.1274, 38.0724, 24.2104, 9.308, 8.7697, 3.9187, 52.3654, 58.0355, 43.8344, 4.3922, 1.0},
		weight: [11]float64{1.3, 1.1, 1.1, 0.5, 0.4, 0.3, 0.4, 0.6, 0.6, 0.9, 0.2},
	},
	"Bazeries": {
		mean:   [11]float64{1.2094, 36.168, 24.5014, 9.6107, 8.6646, 3.9626, 52.2302, 59.9342, 46.2062, 4.7081, 1.0},
		weight: [11]float64{1.3, 1.1, 1.1, 0.5, 0.4, 0.3, 0.4, 0.6, 0.6, 0.9, 0.2},
	},
	"Beaufort": {
		mean:   [11]float64{1.1455, 37.856, 23.2521, 9.1552, 8.9306, 3.8419, 49.296, 56.484, 46.4347, 4.6554, 1.0},
		weight: [11]float64{1.3, 1.1, 1.1, 0.5, 0.4, 0.3, 0.4, 0.6, 0.6, 0.9, 0.2},
	},
	"CONDI": {
		mean:   [11]float64{1.1174, 36.6663, 24.5024, 9.3434, 8.5331, 3.9607, 50.7346, 56.4128, 42.9057, 4.5977, 1.0},
		weight: [11]float64{1.3, 1.1, 1.1, 0.5, 0.4, 0.3, 0.4, 0.6, 0.6, 0.9, 0.2},
	},
	"Grandpre": {
		mean:   [11]float64{1.0522, 33.4575, 16.4446, 9.2898, 8.2423, 3.993, 50.3512, 54.755, 41.6385, 4.6163, 1.0},
		weight: [11]float64{1.0, 0.8, 0.8, 0.6, 0.5, 0.3, 0.4, 0.7, 0.7, 0.9, 0.2},
	},
	"Grandpre10x10": {
		mean:   [11]float64{1.1415, 31.9448, 17.7385, 8.859, 8.3502, 4.1251, 50.7424, 52.9839, 41.0793, 4.6632, 1.0},
		weight: [11]float64{1.0, 0.8, 0.8, 0.6, 0.5, 0.3, 0.4, 0.7, 0.7, 0.9, 0.2},
	},
	"Gromark": {
		mean:   [11]float64{1.1522, 37.7158, 23.1017, 9.9226, 8.5992, 4.0857, 51.1305, 57.5987, 45.8404, 4.346, 1.0},
		weight: [11]float64{1.3, 1.1, 1.1, 0.5, 0.4, 0.3, 0.4, 0.6, 0.6, 0.9, 0.2},
	},
	"NihilistSub6x6": {
		mean:   [11]float64{1.0568, 32.2857, 17.7411, 8.7881, 8.1625, 3.9171, 49.5248, 52.51, 42.2759, 4.3549, 1.0},
		weight: [11]float64{1.0, 0.8, 0.8, 0.6, 0.5, 0.3, 0.4, 0.7, 0.7, 0.9, 0.2},
	},
	"Patristocrat": {
		mean:   [11]float64{1.654, 57.6954, 36.7479, 68.2975, 63.0888, 6.1132, 52.0351, 125.9037, 23.41, 4.3091, 1.0},
		weight: [11]float64{1.2, 0.6, 0.6, 1.0, 0.9, 0.4, 0.3, 1.3, 0.7, 0.8, 0.2},
	},
	"Quagmire I": {
		mean:   [11]float64{1.0944, 36.6262, 23.9546, 9.5652, 8.5436, 3.9481, 52.2734, 60.771, 43.8329, 4.4922, 1.0},
		weight: [11]float64{1.3, 1.1, 1.1, 0.5, 0.4, 0.3, 0.4, 0.6, 0.6, 0.9, 0.2},
	},
	"Quagmire II": {
		mean:   [11]float64{1.1296, 35.2392, 23.5986, 9.3636, 8.423, 4.0361, 51.9335, 59.6223, 46.0267, 4.6297, 1.0},
		weight: [11]float64{1.3, 1.1, 1.1, 0.5, 0.4, 0.3, 0.4, 0.6, 0.6, 0.9, 0.2},
	},
	"Quagmire III": {
		mean:   [11]float64{1.1788, 38.301, 24.4654, 9.6669, 8.2671, 4.0939, 47.9574, 57.291, 43.6794, 4.6864, 1.0},
		weight: [11]float64{1.3, 1.1, 1.1, 0.5, 0.4, 0.3, 0.4, 0.6, 0.6, 0.9, 0.2},
	},
	"Quagmire IV": {
		mean:   [11]float64{1.1598, 36.9493, 23.3331, 9.7847, 8.1929, 3.7951, 52.2206, 60.3165, 43.6548, 4.4798, 1.0},
		weight: [11]float64{1.3, 1.1, 1.1, 0.5, 0.4, 0.3, 0.4, 0.6, 0.6, 0.9, 0.2},
	},
	"Slidefair": {
		mean:   [11]float64{1.0476, 34.0551, 19.917, 17.0826, 15.7543, 3.8371, 48.2794, 65.2527, 38.475, 4.373, 1.0},
		weight: [11]float64{1.0, 0.7, 0.7, 1.2, 1.1, 0.3, 0.4, 0.9, 0.8, 0.9, 0.2},
	},
	"Swagman": {
		mean:   [11]float64{1.6686, 42.6089, 27.9881, 7.6324, 6.1011, 9.0007, 56.1994, 38.7345, 61.236, 3.9021, 1.0},
		weight: [11]float64{1.2, 0.5, 0.5, 1.1, 1.0, 0.8, 0.9, 1.2, 1.0, 0.8, 0.2},
	},
	"Variant": {
		mean:   [11]float64{1.1727, 35.9179, 23.1854, 9.9572, 8.698, 3.9763, 48.5543, 58.2868, 44.5133, 4.5168, 1.0},
		weight: [11]float64{1.3, 1.1, 1.1, 0.5, 0.4, 0.3, 0.4, 0.6, 0.6, 0.9, 0.2},
	},
	"Vigenere": {
		mean:   [11]float64{1.1098, 36.6106, 22.8981, 9.0697, 8.1898, 4.0732, 50.6506, 56.7685, 47.019, 4.2944, 1.0},
		weight: [11]float64{1.3, 1.1, 1.1, 0.5, 0.4, 0.3, 0.4, 0.6, 0.6, 0.9, 0.2},
	},
	"amsco": {
		mean:   [11]float64{1.7044, 44.9101, 29.0413, 7.7711, 5.7097, 8.8455, 56.5228, 38.0218, 57.4919, 4.2064, 1.0},
		weight: [11]float64{1.2, 0.5, 0.5, 1.1, 1.0, 0.8, 0.9, 1.2, 1.0, 0.8, 0.2},
	},
	"bifid": {
		mean:   [11]float64{1.1012, 32.8106, 17.0429, 8.6475, 8.1958, 4.0546, 47.7053, 51.8361, 43.5749, 4.4104, 1.0},
		weight: [11]float64{1.0, 0.8, 0.8, 0.6, 0.5, 0.3, 0.4, 0.7, 0.7, 0.9, 0.2},
	},
	"cadenus": {
		mean:   [11]float64{1.6896, 44.6812, 29.045, 7.7564, 6.2519, 8.8344, 52.3281, 38.0364, 62.934, 3.9848, 1.0},
		weight: [11]float64{1.2, 0.5, 0.5, 1.1, 1.0, 0.8, 0.9, 1.2, 1.0, 0.8, 0.2},
	},
	"checkerboard": {
		mean:   [11]float64{1.7811, 55.7766, 38.1422, 68.0401, 62.7213, 6.2517, 49.8569, 132.2459, 22.88, 4.1797, 1.0},
		weight: [11]float64{1.2, 0.6, 0.6, 1.0, 0.9, 0.4, 0.3, 1.3, 0.7, 0.8, 0.2},
	},
	"cmBifid": {
		mean:   [11]float64{1.034, 31.1264, 16.9302, 9.3717, 8.2157, 4.1817, 51.4806, 56.642, 43.2093, 4.7286, 1.0},
		weight: [11]float64{1.0, 0.8, 0.8, 0.6, 0.5, 0.3, 0.4, 0.7, 0.7, 0.9, 0.2},
	},
	"columnar": {
		mean:   [11]float64{1.666, 42.1611, 28.7197, 7.4272, 5.8625, 9.2258, 52.7376, 39.1626, 59.6144, 4.2115, 1.0},
		weight: [11]float64{1.2, 0.5, 0.5, 1.1, 1.0, 0.8, 0.9, 1.2, 1.0, 0.8, 0.2},
	},
	"compressocrat": {
		mean:   [11]float64{1.7663, 59.5069, 36.3736, 64.8503, 62.9366, 6.0271, 51.6556, 126.7212, 25.0223, 4.2564, 1.0},
		weight: [11]float64{1.2, 0.6, 0.6, 1.0, 0.9, 0.4, 0.3, 1.3, 0.7, 0.8, 0.2},
	},
	"digrafid": {
		mean:   [11]float64{1.0662, 31.7734, 16.9205, 9.2145, 8.3811, 4.1092, 48.3423, 54.0329, 42.5615, 4.7091, 1.0},
		weight: [11]float64{1.0, 0.8, 0.8, 0.6, 0.5, 0.3, 0.4, 0.7, 0.7, 0.9, 0.2},
	},
	"foursquare": {
		mean:   [11]float64{1.0179, 35.1438, 18.4637, 16.1812, 14.4496, 4.1233, 50.345, 65.3877, 38.4168, 4.3884, 1.0},
		weight: [11]float64{1.0, 0.7, 0.7, 1.2, 1.1, 0.3, 0.4, 0.9, 0.8, 0.9, 0.2},
	},
	"fractionatedMorse": {
		mean:   [11]float64{1.0699, 31.6051, 16.7144, 8.8415, 7.9992, 4.003, 48.8617, 51.6965, 40.4608, 4.6911, 1.0},
		weight: [11]float64{1.0, 0.8, 0.8, 0.6, 0.5, 0.3, 0.4, 0.7, 0.7, 0.9, 0.2},
	},
	"grille": {
		mean:   [11]float64{1.7146, 45.7356, 27.5406, 7.2345, 6.1819, 8.8639, 53.5261, 38.0011, 58.591, 4.128, 1.0},
		weight: [11]float64{1.2, 0.5, 0.5, 1.1, 1.0, 0.8, 0.9, 1.2, 1.0, 0.8, 0.2},
	},
	"homophonic": {
		mean:   [11]float64{1.7844, 60.6888, 37.7208, 69.4258, 65.0822, 6.1142, 50.5794, 135.4412, 22.9878, 4.1425, 1.0},
		weight: [11]float64{1.2, 0.6, 0.6, 1.0, 0.9, 0.4, 0.3, 1.3, 0.7, 0.8, 0.2},
	},
	"keyphrase": {
		mean:   [11]float64{1.8079, 59.2848, 36.3894, 70.9212, 61.8649, 5.8691, 50.522, 136.6201, 23.2188, 3.8852, 1.0},
		weight: [11]float64{1.2, 0.6, 0.6, 1.0, 0.9, 0.4, 0.3, 1.3, 0.7, 0.8, 0.2},
	},
	"monomeDinome": {
		mean:   [11]float64{1.0885, 31.059, 17.3558, 8.6613, 7.686, 3.9293, 50.0692, 51.7382, 40.3213, 4.7765, 1.0},
		weight: [11]float64{1.0, 0.8, 0.8, 0.6, 0.5, 0.3, 0.4, 0.7, 0.7, 0.9, 0.2},
	},
	"morbit": {
		mean:   [11]float64{1.0737, 30.8671, 16.1894, 9.4589, 7.8087, 3.8085, 48.4315, 54.5799, 42.0192, 4.7469, 1.0},
		weight: [11]float64{1.0, 0.8, 0.8, 0.6, 0.5, 0.3, 0.4, 0.7, 0.7, 0.9, 0.2},
	},
	"myszkowski": {
		mean:   [11]float64{1.7192, 45.7581, 30.2508, 7.1173, 6.1782, 9.4545, 54.548, 38.4229, 57.8938, 4.0961, 1.0},
		weight: [11]float64{1.2, 0.5, 0.5, 1.1, 1.0, 0.8, 0.9, 1.2, 1.0, 0.8, 0.2},
	},
	"nicodemus": {
		mean:   [11]float64{1.1448, 35.2583, 24.4004, 9.3823, 8.6161, 4.1554, 50.9253, 55.5926, 44.794, 4.6771, 1.0},
		weight: [11]float64{1.3, 1.1, 1.1, 0.5, 0.4, 0.3, 0.4, 0.6, 0.6, 0.9, 0.2},
	},
	"nihilistSub": {
		mean:   [11]float64{1.1221, 33.5931, 17.7222, 9.2312, 8.0864, 4.1588, 49.8561, 52.17, 43.7862, 4.7964, 1.0},
		weight: [11]float64{1.0, 0.8, 0.8, 0.6, 0.5, 0.3, 0.4, 0.7, 0.7, 0.9, 0.2},
	},
	"nihilistTramp": {
		mean:   [11]float64{1.2794, 37.0541, 27.0489, 13.6009, 11.9788, 4.9057, 48.6283, 64.5457, 38.982, 4.3835, 1.0},
		weight: [11]float64{1.0, 0.8, 0.8, 0.8, 0.7, 0.5, 0.6, 0.8, 0.7, 0.8, 0.2},
	},
	"numberedKey": {
		mean:   [11]float64{1.7155, 55.1863, 36.5756, 68.4745, 64.6712, 6.0931, 52.9277, 128.0488, 24.1764, 4.1582, 1.0},
		weight: [11]float64{1.2, 0.6, 0.6, 1.0, 0.9, 0.4, 0.3, 1.3, 0.7, 0.8, 0.2},
	},
	"periodicGromark": {
		mean:   [11]float64{1.1287, 37.1384, 24.5643, 9.5722, 8.4367, 3.9223, 51.9416, 58.5144, 44.7879, 4.6042, 1.0},
		weight: [11]float64{1.3, 1.1, 1.1, 0.5, 0.4, 0.3, 0.4, 0.6, 0.6, 0.9, 0.2},
	},
	"phillips": {
		mean:   [11]float64{1.2342, 38.7923, 28.2717, 12.8579, 12.6025, 4.9226, 47.6407, 62.1314, 36.9994, 4.592, 1.0},
		weight: [11]float64{1.0, 0.8, 0.8, 0.8, 0.7, 0.5, 0.6, 0.8, 0.7, 0.8, 0.2},
	},
	"playfair": {
		mean:   [11]float64{1.0659, 33.606, 18.4991, 16.3184, 15.5585, 3.8124, 49.4256, 64.8411, 40.8783, 4.7333, 1.0},
		weight: [11]float64{1.0, 0.7, 0.7, 1.2, 1.1, 0.3, 0.4, 0.9, 0.8, 0.9, 0.2},
	},
	"pollux": {
		mean:   [11]float64{1.1099, 30.6006, 16.7294, 9.424, 7.743, 3.9081, 47.5443, 53.3921, 42.6913, 4.7168, 1.0},
		weight: [11]float64{1.0, 0.8, 0.8, 0.6, 0.5, 0.3, 0.4, 0.7, 0.7, 0.9, 0.2},
	},
	"porta": {
		mean:   [11]float64{1.1467, 37.2387, 23.2649, 9.8476, 8.9286, 4.1177, 52.2371, 56.1303, 42.8848, 4.3729, 1.0},
		weight: [11]float64{1.3, 1.1, 1.1, 0.5, 0.4, 0.3, 0.4, 0.6, 0.6, 0.9, 0.2},
	},
	"portax": {
		mean:   [11]float64{0.9988, 35.5703, 19.4114, 16.9673, 14.7248, 3.9763, 51.4797, 65.9865, 38.07, 4.5102, 1.0},
		weight: [11]float64{1.0, 0.7, 0.7, 1.2, 1.1, 0.3, 0.4, 0.9, 0.8, 0.9, 0.2},
	},
	"progressiveKey": {
		mean:   [11]float64{1.1159, 38.5965, 24.0089, 9.7214, 8.4862, 3.7992, 48.6765, 59.2383, 44.8461, 4.294, 1.0},
		weight: [11]float64{1.3, 1.1, 1.1, 0.5, 0.4, 0.3, 0.4, 0.6, 0.6, 0.9, 0.2},
	},
	"ragbaby": {
		mean:   [11]float64{1.8077, 55.3382, 36.7401, 70.0129, 64.734, 6.1679, 51.8446, 130.136, 23.7617, 3.9017, 1.0},
		weight: [11]float64{1.2, 0.6, 0.6, 1.0, 0.9, 0.4, 0.3, 1.3, 0.7, 0.8, 0.2},
	},
	"redefence": {
		mean:   [11]float64{1.6779, 44.8016, 29.1146, 7.8823, 5.7914, 8.8472, 55.6424, 39.0912, 60.506, 3.8952, 1.0},
		weight: [11]float64{1.2, 0.5, 0.5, 1.1, 1.0, 0.8, 0.9, 1.2, 1.0, 0.8, 0.2},
	},
	"routeTramp": {
		mean:   [11]float64{1.6814, 44.4981, 29.9244, 7.8248, 5.7739, 9.2041, 57.3501, 37.8122, 60.5336, 4.0897, 1.0},
		weight: [11]float64{1.2, 0.5, 0.5, 1.1, 1.0, 0.8, 0.9, 1.2, 1.0, 0.8, 0.2},
	},
	"runningKey": {
		mean:   [11]float64{1.1907, 36.3085, 23.3256, 9.2667, 8.5292, 3.8847, 49.4965, 56.6421, 44.6735, 4.3017, 1.0},
		weight: [11]float64{1.3, 1.1, 1.1, 0.5, 0.4, 0.3, 0.4, 0.6, 0.6, 0.9, 0.2},
	},
	"sequenceTramp": {
		mean:   [11]float64{1.8062, 42.0583, 28.1474, 7.4744, 5.9161, 8.8128, 57.4662, 38.4456, 62.6411, 4.0988, 1.0},
		weight: [11]float64{1.2, 0.5, 0.5, 1.1, 1.0, 0.8, 0.9, 1.2, 1.0, 0.8, 0.2},
	},
	"seriatedPlayfair": {
		mean:   [11]float64{1.1032, 32.4608, 19.8649, 16.2356, 15.3378, 3.8446, 49.2751, 68.923, 40.7971, 4.6881, 1.0},
		weight: [11]float64{1.0, 0.7, 0.7, 1.2, 1.1, 0.3, 0.4, 0.9, 0.8, 0.9, 0.2},
	},
	"simplesubstitution": {
		mean:   [11]float64{1.6348, 56.399, 38.9886, 71.2229, 63.5833, 5.9283, 50.5958, 135.2244, 23.3567, 4.0093, 1.0},
		weight: [11]float64{1.2, 0.6, 0.6, 1.0, 0.9, 0.4, 0.3, 1.3, 0.7, 0.8, 0.2},
	},
	"syllabary": {
		mean:   [11]float64{1.7545, 55.825, 38.4306, 70.2471, 62.019, 5.7705, 54.2471, 136.1549, 23.9112, 4.0289, 1.0},
		weight: [11]float64{1.2, 0.6, 0.6, 1.0, 0.9, 0.4, 0.3, 1.3, 0.7, 0.8, 0.2},
	},
	"tridigital": {
		mean:   [11]float64{1.0724, 31.6179, 16.1889, 9.2171, 8.1088, 3.9843, 47.6026, 55.9088, 42.5172, 4.7221, 1.0},
		weight: [11]float64{1.0, 0.8, 0.8, 0.6, 0.5, 0.3, 0.4, 0.7, 0.7, 0.9, 0.2},
	},
	"trifid": {
		mean:   [11]float64{1.0723, 32.9629, 16.8221, 9.2407, 7.7196, 4.205, 48.6214, 52.2836, 40.9341, 4.3667, 1.0},
		weight: [11]float64{1.0, 0.8, 0.8, 0.6, 0.5, 0.3, 0.4, 0.7, 0.7, 0.9, 0.2},
	},
	"trisquare": {
		mean:   [11]float64{1.0227, 33.0715, 17.3218, 9.1405, 7.875, 4.0733, 52.3, 54.5247, 40.3335, 4.3476, 1.0},
		weight: [11]float64{1.0, 0.8, 0.8, 0.6, 0.5, 0.3, 0.4, 0.7, 0.7, 0.9, 0.2},
	},
	"twosquare": {
		mean:   [11]float64{0.9965, 32.8479, 19.7054, 17.3978, 14.6448, 4.0466, 48.2824, 70.6671, 39.9102, 4.6596, 1.0},
		weight: [11]float64{1.0, 0.7, 0.7, 1.2, 1.1, 0.3, 0.4, 0.9, 0.8, 0.9, 0.2},
	},
}
