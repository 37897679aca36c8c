package calculator

import (
	"math"

	"fp/model"
)

// Plank 冻结时间估算。
// t = [Le/(Tf-Ta)]·[P·a/h + R·a²/k_f]，Le = L0·初始含水率。
// 不计相变点上下的显热，是该方程公认的简化而不是缺陷

// 几何形状因子 (P, R)
func shapeFactors(g model.Geometry) (p, r float64, err error) {
	switch g {
	case model.Slab:
		return 0.5, 0.125, nil
	case model.Cylinder:
		return 0.25, 0.0625, nil
	case model.Sphere:
		return 1.0 / 6, 1.0 / 24, nil
	}
	return 0, 0, ErrUnknownGeometry
}

// FreezingTime 估算冻结时间，单位秒。
// t0 为冻结前的初始温度，仅作记录，方程本身不含预冷段；
// ta 为冷冻介质温度，必须低于初始冻结温度 tf；
// Tf = Ta 的极限情形无法冻结，返回 +Inf 而不报错。
// 冻结相导热系数在参考温度 max(Ta, Tf-5) 下评估
func (c *Calculator) FreezingTime(comp model.Composition, t0, ta, h float64, g model.Geometry, a, tf float64) (float64, error) {
	if err := ValidateComposition(comp); err != nil {
		return 0, err
	}
	if ta == tf {
		return math.Inf(1), nil
	}
	if ta > tf {
		return 0, ErrMediumTooWarm
	}
	if h <= 0 {
		return 0, ErrNonPositiveH
	}
	if a <= 0 {
		return 0, ErrNonPositiveSize
	}
	p, r, err := shapeFactors(g)
	if err != nil {
		return 0, err
	}

	ref := math.Max(ta, tf-5)
	kf, err := c.Conductivity(ref, comp, tf)
	if err != nil {
		return 0, err
	}
	if kf <= 0 {
		return 0, ErrZeroConductivity
	}

	le := LatentHeatFusion * comp.Water / 100
	return le / (tf - ta) * (p*a/h + r*a*a/kf), nil
}
