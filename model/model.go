package model

// 食品近似组成，六种组分的质量百分数，总和应为 100%
type Composition struct {
	Water        float64 `json:"water"`        // 水分
	Protein      float64 `json:"protein"`      // 蛋白质
	Fat          float64 `json:"fat"`          // 脂肪
	Carbohydrate float64 `json:"carbohydrate"` // 碳水化合物
	Fiber        float64 `json:"fiber"`        // 纤维
	Ash          float64 `json:"ash"`          // 灰分
}

// 百分数之和
func (c Composition) Sum() float64 {
	return c.Water + c.Protein + c.Fat + c.Carbohydrate + c.Fiber + c.Ash
}

// 几何形状
type Geometry int

const (
	Slab     Geometry = iota // 平板，特征尺寸为半厚
	Cylinder                 // 无限长圆柱，特征尺寸为半径
	Sphere                   // 球，特征尺寸为半径
)

func (g Geometry) String() string {
	switch g {
	case Slab:
		return "slab"
	case Cylinder:
		return "cylinder"
	case Sphere:
		return "sphere"
	}
	return "unknown"
}

// 从请求字符串解析几何形状
func ParseGeometry(s string) (Geometry, bool) {
	switch s {
	case "slab":
		return Slab, true
	case "cylinder":
		return Cylinder, true
	case "sphere":
		return Sphere, true
	}
	return Slab, false
}

// 食品整体热物性
type FoodProperties struct {
	Temperature  float64 `json:"temperature"`   // °C
	Density      float64 `json:"density"`       // kg/m³
	SpecificHeat float64 `json:"specific_heat"` // J/(kg·K)
	Conductivity float64 `json:"conductivity"`  // W/(m·K)
	Diffusivity  float64 `json:"diffusivity"`   // m²/s
	IceFraction  float64 `json:"ice_fraction"`  // kg 冰 / kg 食品
}

// 空间温度分布上的一个点
type ProfilePoint struct {
	Position    float64 `json:"position"`    // 距中心距离 m
	Temperature float64 `json:"temperature"` // °C
}
