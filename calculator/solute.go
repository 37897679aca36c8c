package calculator

import "math"

// ApparentSoluteMW 由冻结点下降反推非水固形物的表观摩尔质量，单位 g/mol。
// 理想稀溶液假设：XA = exp[(λ/R)·(1/T0 - 1/Tf_K)]，
// PM_s = XA·m_s·PM_water / (m_u·(1-XA))。
// 接近纯水(Tf → 0)时 XA → 1，表观摩尔质量发散，显式返回 +Inf
func ApparentSoluteMW(tf, waterPct float64) (float64, error) {
	if tf > 0 {
		return 0, ErrFreezingPointPositive
	}
	mu := waterPct / 100
	ms := 1 - mu
	if mu <= 0 {
		return 0, ErrNoWater
	}
	if ms <= 0 {
		return 0, ErrNoSolids
	}

	tk := tf + ZeroCelsiusK
	if tk <= 0 {
		return 0, ErrBelowAbsoluteZero
	}
	xa := unfrozenMolarFraction(tk)
	if xa >= 1 {
		return math.Inf(1), nil
	}
	return xa * ms * WaterMolarMass / (mu * (1 - xa)), nil
}
