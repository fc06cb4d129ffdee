package catalog

import "math"

// constellationCenter is an approximate equatorial center for one of the 88
// IAU constellations, used by Constellation as a coarse substitute for the
// true IAU boundary polygons (see package doc). raHours and decDeg are in
// J2000 (not B1875, unlike the true boundary data) since the center-point
// approximation is already far coarser than the epoch difference matters.
type constellationCenter struct {
	abbr, name   string
	raHours      float64
	decDeg       float64
}

// constellationCenters gives one representative point per constellation,
// roughly at its visual center. Coordinates are rounded to a tenth of an
// hour in RA and a whole degree in Dec; they are meant to rank "nearest constellation",
// not to resolve which side of a boundary a position falls on.
var constellationCenters = [88]constellationCenter{
	{"And", "Andromeda", 1.0, 38},
	{"Ant", "Antlia", 10.3, -32},
	{"Aps", "Apus", 16.0, -75},
	{"Aql", "Aquila", 19.7, 3},
	{"Aqr", "Aquarius", 22.3, -10},
	{"Ara", "Ara", 17.4, -55},
	{"Ari", "Aries", 2.6, 20},
	{"Aur", "Auriga", 6.0, 42},
	{"Boo", "Bootes", 14.7, 31},
	{"CMa", "Canis Major", 6.8, -22},
	{"CMi", "Canis Minor", 7.6, 6},
	{"CVn", "Canes Venatici", 13.1, 40},
	{"Cae", "Caelum", 4.7, -38},
	{"Cam", "Camelopardalis", 6.0, 70},
	{"Cap", "Capricornus", 21.0, -18},
	{"Car", "Carina", 8.7, -63},
	{"Cas", "Cassiopeia", 1.3, 62},
	{"Cen", "Centaurus", 13.1, -47},
	{"Cep", "Cepheus", 2.5, 71},
	{"Cet", "Cetus", 1.5, -8},
	{"Cha", "Chamaeleon", 10.7, -79},
	{"Cir", "Circinus", 14.6, -63},
	{"Cnc", "Cancer", 8.6, 20},
	{"Col", "Columba", 5.9, -35},
	{"Com", "Coma Berenices", 12.8, 23},
	{"CrA", "Corona Australis", 18.6, -41},
	{"CrB", "Corona Borealis", 15.8, 33},
	{"Crt", "Crater", 11.4, -16},
	{"Cru", "Crux", 12.4, -60},
	{"Crv", "Corvus", 12.4, -18},
	{"Cyg", "Cygnus", 20.6, 45},
	{"Del", "Delphinus", 20.7, 12},
	{"Dor", "Dorado", 5.2, -59},
	{"Dra", "Draco", 17.0, 65},
	{"Equ", "Equuleus", 21.2, 8},
	{"Eri", "Eridanus", 3.5, -28},
	{"For", "Fornax", 2.8, -31},
	{"Gem", "Gemini", 7.1, 23},
	{"Gru", "Grus", 22.5, -46},
	{"Her", "Hercules", 17.4, 30},
	{"Hor", "Horologium", 3.3, -53},
	{"Hya", "Hydra", 11.6, -15},
	{"Hyi", "Hydrus", 2.3, -73},
	{"Ind", "Indus", 21.6, -58},
	{"LMi", "Leo Minor", 10.3, 33},
	{"Lac", "Lacerta", 22.4, 46},
	{"Leo", "Leo", 10.7, 13},
	{"Lep", "Lepus", 5.6, -19},
	{"Lib", "Libra", 15.2, -15},
	{"Lup", "Lupus", 15.2, -42},
	{"Lyn", "Lynx", 7.9, 47},
	{"Lyr", "Lyra", 18.8, 37},
	{"Men", "Mensa", 5.4, -77},
	{"Mic", "Microscopium", 21.0, -36},
	{"Mon", "Monoceros", 7.1, -3},
	{"Mus", "Musca", 12.6, -70},
	{"Nor", "Norma", 15.9, -52},
	{"Oct", "Octans", 22.0, -82},
	{"Oph", "Ophiuchus", 17.0, -8},
	{"Ori", "Orion", 5.6, 5},
	{"Pav", "Pavo", 19.6, -65},
	{"Peg", "Pegasus", 22.7, 19},
	{"Per", "Perseus", 3.2, 45},
	{"Phe", "Phoenix", 0.9, -48},
	{"Pic", "Pictor", 5.7, -53},
	{"PsA", "Piscis Austrinus", 22.3, -30},
	{"Psc", "Pisces", 0.7, 13},
	{"Pup", "Puppis", 7.3, -31},
	{"Pyx", "Pyxis", 8.9, -28},
	{"Ret", "Reticulum", 3.9, -60},
	{"Scl", "Sculptor", 0.4, -32},
	{"Sco", "Scorpius", 16.9, -32},
	{"Sct", "Scutum", 18.7, -10},
	{"Ser", "Serpens", 16.5, 6},
	{"Sex", "Sextans", 10.3, -2},
	{"Sge", "Sagitta", 19.6, 18},
	{"Sgr", "Sagittarius", 19.1, -28},
	{"Tau", "Taurus", 4.7, 15},
	{"Tel", "Telescopium", 19.3, -51},
	{"TrA", "Triangulum Australe", 16.1, -65},
	{"Tri", "Triangulum", 2.2, 32},
	{"Tuc", "Tucana", 23.8, -65},
	{"UMa", "Ursa Major", 11.3, 51},
	{"UMi", "Ursa Minor", 15.0, 78},
	{"Vel", "Vela", 9.6, -47},
	{"Vir", "Virgo", 13.4, -4},
	{"Vol", "Volans", 7.8, -69},
	{"Vul", "Vulpecula", 20.2, 24},
}

// Constellation returns the IAU 3-letter abbreviation of the constellation
// whose approximate center is nearest the given sky position (raHours in
// [0,24), decDeg in [-90,90]), by angular separation.
//
// This is a coarse stand-in for the true IAU boundary lookup: goeph's
// constellation package indexed a precomputed B1875 boundary grid that was
// never present anywhere in this module's source material (see package
// doc). Near a constellation's edge this can disagree with the true
// boundary; well within a constellation's interior it agrees.
func Constellation(raHours, decDeg float64) string {
	raRad := raHours * 15.0 * deg2rad
	decRad := decDeg * deg2rad
	sinDec, cosDec := math.Sincos(decRad)

	best := -1
	bestCos := -2.0 // cos ranges [-1,1]; anything beats this
	for i := range constellationCenters {
		c := &constellationCenters[i]
		cRaRad := c.raHours * 15.0 * deg2rad
		cDecRad := c.decDeg * deg2rad
		sinCDec, cosCDec := math.Sincos(cDecRad)
		cosSep := sinDec*sinCDec + cosDec*cosCDec*math.Cos(raRad-cRaRad)
		if cosSep > bestCos {
			bestCos = cosSep
			best = i
		}
	}
	if best < 0 {
		return ""
	}
	return constellationCenters[best].abbr
}

// ConstellationName returns the full name for a constellation abbreviation,
// or "" if unrecognized.
func ConstellationName(abbr string) string {
	name, ok := constellationNameMap[abbr]
	if !ok {
		return ""
	}
	return name
}

// ConstellationAbbreviation returns the 3-letter IAU abbreviation for a
// constellation name, or "" if unrecognized.
func ConstellationAbbreviation(name string) string {
	abbr, ok := constellationAbbrMap[name]
	if !ok {
		return ""
	}
	return abbr
}

// ConstellationNames returns all 88 IAU constellation abbreviation/name pairs.
func ConstellationNames() [][2]string {
	result := make([][2]string, len(constellationCenters))
	for i, c := range constellationCenters {
		result[i] = [2]string{c.abbr, c.name}
	}
	return result
}

var (
	constellationNameMap map[string]string
	constellationAbbrMap map[string]string
)

func init() {
	constellationNameMap = make(map[string]string, len(constellationCenters))
	constellationAbbrMap = make(map[string]string, len(constellationCenters))
	for _, c := range constellationCenters {
		constellationNameMap[c.abbr] = c.name
		constellationAbbrMap[c.name] = c.abbr
	}
}
