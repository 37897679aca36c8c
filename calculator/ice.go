package calculator

import "math"

// 物理常数
const (
	LatentHeatFusion = 333.6e3 // 0°C 下冰的融解潜热 J/kg
	CpWaterRef       = 4186.0  // 液态水比热参考值 J/(kg·K)，热平衡近似中取定值
	MolarLatentHeat  = 6010.0  // 水的摩尔融解潜热 J/mol
	GasConstant      = 8.314   // 通用气体常数 J/(mol·K)
	ZeroCelsiusK     = 273.15  // 0°C 对应的热力学温度 K
	WaterMolarMass   = 18.015  // 水的摩尔质量 g/mol
)

// 冰晶率模型
type IceModel int

const (
	IceActivity    IceModel = iota // 热力学活度模型，Clausius-Clapeyron 型冻结点下降关系
	IceHeatBalance                 // 简化热平衡近似，Xi = L0/(Cp·ΔT)·Xw
)

// IceFraction 计算温度 t(°C) 下的冰与未冻水质量分数。
// waterPct 为初始含水百分数，tf 为初始冻结温度(°C)。
// 恒有 xi + xu = waterPct/100；t >= tf 时 xi = 0。
// ΔT = 0、热力学温度非正、指数溢出等退化情形一律钳制而不报错。
func IceFraction(m IceModel, t, waterPct, tf float64) (xi, xu float64) {
	xw := waterPct / 100
	if xw <= 0 {
		return 0, 0
	}
	if t >= tf {
		return 0, xw
	}

	switch m {
	case IceHeatBalance:
		dt := tf - t
		if dt <= 0 {
			return 0, xw
		}
		xi = LatentHeatFusion / (CpWaterRef * dt) * xw
	default:
		tk := t + ZeroCelsiusK
		if tk <= 0 {
			return 0, xw
		}
		xi = (1 - unfrozenMolarFraction(tk)) * xw
	}

	if xi < 0 || math.IsNaN(xi) {
		xi = 0
	}
	if xi > xw {
		xi = xw
	}
	return xi, xw - xi
}

// 未冻水的摩尔分数，tk 为热力学温度 K，结果钳制在 [0, 1]。
// tk = 273.15 时指数理论上恰为零，但 1/ZeroCelsiusK 在编译期折叠、
// 1/tk 在运行期求值，两者相差 1 ulp 会让 xa 略小于 1，须先行短路
func unfrozenMolarFraction(tk float64) float64 {
	if tk >= ZeroCelsiusK {
		return 1
	}
	xa := math.Exp(MolarLatentHeat / GasConstant * (1/ZeroCelsiusK - 1/tk))
	if math.IsNaN(xa) || xa < 0 {
		return 0
	}
	if xa > 1 {
		return 1
	}
	return xa
}
