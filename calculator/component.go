package calculator

// Choi-Okos (1986) 各组分热物性随温度变化的关联式
// 温度单位 °C，适用范围约 -40°C ~ 150°C，超出范围按外推处理，不做越界检查
// 水在 0°C 处分为液态水和冰两支，该分支与食品实际冻结点无关

type Component int

const (
	Water Component = iota
	Protein
	Fat
	Carbohydrate
	Fiber
	Ash
)

// 液态水和冰的关联式，冻结相聚合时需要分别取用
func waterDensityLiquid(t float64) float64 {
	return 997.18 + 3.1439e-3*t - 3.7574e-3*t*t
}

func waterDensityIce(t float64) float64 {
	return 916.89 - 0.13071*t
}

func waterSpecificHeatLiquid(t float64) float64 {
	return 4176.2 - 9.0864e-2*t + 5.4731e-3*t*t
}

func waterSpecificHeatIce(t float64) float64 {
	return 2062.3 + 6.0769*t
}

func waterConductivityLiquid(t float64) float64 {
	return 0.57109 + 1.7625e-3*t - 6.7036e-6*t*t
}

func waterConductivityIce(t float64) float64 {
	return 2.2196 - 6.2489e-3*t + 1.0154e-4*t*t
}

func waterDiffusivityLiquid(t float64) float64 {
	return 1.3168e-7 + 6.2477e-10*t - 2.4022e-12*t*t
}

func waterDiffusivityIce(t float64) float64 {
	return 1.1756e-6 - 6.0833e-9*t + 9.5037e-11*t*t
}

// ComponentDensity 计算组分在温度 t(°C) 下的密度，单位 kg/m³
func ComponentDensity(c Component, t float64) float64 {
	switch c {
	case Water:
		if t >= 0 {
			return waterDensityLiquid(t)
		}
		return waterDensityIce(t)
	case Protein:
		return 1329.9 - 0.5184*t
	case Fat:
		return 925.59 - 0.41757*t
	case Carbohydrate:
		return 1599.1 - 0.31046*t
	case Fiber:
		return 1311.5 - 0.36589*t
	case Ash:
		return 2423.8 - 0.28063*t
	}
	return 0
}

// ComponentSpecificHeat 计算组分在温度 t(°C) 下的比热容，单位 J/(kg·K)
func ComponentSpecificHeat(c Component, t float64) float64 {
	switch c {
	case Water:
		if t >= 0 {
			return waterSpecificHeatLiquid(t)
		}
		return waterSpecificHeatIce(t)
	case Protein:
		return 2008.2 + 1.2089*t - 1.3129e-3*t*t
	case Fat:
		return 1984.2 + 1.4733*t - 4.8008e-3*t*t
	case Carbohydrate:
		return 1548.8 + 1.9625*t - 5.9399e-3*t*t
	case Fiber:
		return 1845.9 + 1.8306*t - 4.6509e-3*t*t
	case Ash:
		return 1092.6 + 1.8896*t - 3.6817e-3*t*t
	}
	return 0
}

// ComponentConductivity 计算组分在温度 t(°C) 下的导热系数，单位 W/(m·K)
func ComponentConductivity(c Component, t float64) float64 {
	switch c {
	case Water:
		if t >= 0 {
			return waterConductivityLiquid(t)
		}
		return waterConductivityIce(t)
	case Protein:
		return 0.17881 + 1.1958e-3*t - 2.7178e-6*t*t
	case Fat:
		return 0.18071 - 2.7604e-4*t - 1.7749e-7*t*t
	case Carbohydrate:
		return 0.20141 + 1.3874e-3*t - 4.3312e-6*t*t
	case Fiber:
		return 0.18331 + 1.2497e-3*t - 3.1683e-6*t*t
	case Ash:
		return 0.32962 + 1.4011e-3*t - 2.9069e-6*t*t
	}
	return 0
}

// ComponentDiffusivity 计算组分在温度 t(°C) 下的热扩散系数，单位 m²/s
// 食品整体的热扩散系数由 k/(ρ·Cp) 导出，此处的组分关联式仅供单独查询
func ComponentDiffusivity(c Component, t float64) float64 {
	switch c {
	case Water:
		if t >= 0 {
			return waterDiffusivityLiquid(t)
		}
		return waterDiffusivityIce(t)
	case Protein:
		return 9.8777e-8 - 1.2569e-11*t - 3.8286e-14*t*t
	case Fat:
		return 6.8714e-8 + 4.7578e-10*t - 1.4646e-12*t*t
	case Carbohydrate:
		return 8.0842e-8 + 5.3052e-10*t - 2.3218e-12*t*t
	case Fiber:
		return 7.3976e-8 + 5.1902e-10*t - 2.2202e-12*t*t
	case Ash:
		return 1.2461e-7 + 3.7321e-10*t - 1.2244e-12*t*t
	}
	return 0
}
