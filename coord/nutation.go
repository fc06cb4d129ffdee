package coord

// nutationPlanetaryBiasPsiArcsec and nutationPlanetaryBiasEpsArcsec are the
// constant planetary-perturbation terms added to the truncated luni-solar
// nutation series: IAU 2000B's fixed correction for the planetary-argument
// terms the truncated series otherwise drops.
const (
	nutationPlanetaryBiasPsiArcsec = -0.000135
	nutationPlanetaryBiasEpsArcsec = 0.000388
)
