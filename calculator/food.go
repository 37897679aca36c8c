package calculator

import (
	"math"

	log "github.com/sirupsen/logrus"

	"fp/model"
)

// 组分之和允许的偏差
const CompositionTolerance = 0.01

// Calculator 食品热物性计算器。所有方法都是输入到输出的纯计算，
// 不携带可变状态，可以被多个连接并发使用
type Calculator struct {
	IceModel         IceModel
	ClampMeanAboveTf bool
}

// NewCalculator 按配置文件选择冰晶率模型构造计算器
func NewCalculator() *Calculator {
	m := IceActivity
	if calCfg.IceModel == "heatbalance" {
		m = IceHeatBalance
	}
	log.WithFields(log.Fields{
		"IceModel":         calCfg.IceModel,
		"ClampMeanAboveTf": calCfg.ClampMeanAboveTf,
	}).Info("初始化热物性计算器")
	return &Calculator{
		IceModel:         m,
		ClampMeanAboveTf: calCfg.ClampMeanAboveTf,
	}
}

// ValidateComposition 校验各组分百分数非负且总和为 100±0.01，
// 不满足时必须中止计算，关联式对未归一的组成没有意义
func ValidateComposition(comp model.Composition) error {
	for _, x := range []float64{comp.Water, comp.Protein, comp.Fat, comp.Carbohydrate, comp.Fiber, comp.Ash} {
		if x < 0 {
			return ErrNegativeComposition
		}
	}
	if math.Abs(comp.Sum()-100) > CompositionTolerance {
		return ErrCompositionSum
	}
	return nil
}

// IceFraction 按计算器所选模型计算冰与未冻水质量分数
func (c *Calculator) IceFraction(t, waterPct, tf float64) (xi, xu float64) {
	return IceFraction(c.IceModel, t, waterPct, tf)
}

// Density 计算食品在温度 t(°C) 下的密度，单位 kg/m³。
// 调和平均：1/ρ = Σ Xi/ρi；冻结相时水项拆为未冻水(液态支)与冰(冰支)两项
func (c *Calculator) Density(t float64, comp model.Composition, tf float64) (float64, error) {
	if err := ValidateComposition(comp); err != nil {
		return 0, err
	}
	xi, xu := c.IceFraction(t, comp.Water, tf)
	inv := xu/waterDensityLiquid(t) +
		comp.Protein/100/ComponentDensity(Protein, t) +
		comp.Fat/100/ComponentDensity(Fat, t) +
		comp.Carbohydrate/100/ComponentDensity(Carbohydrate, t) +
		comp.Fiber/100/ComponentDensity(Fiber, t) +
		comp.Ash/100/ComponentDensity(Ash, t)
	if xi > 0 {
		inv += xi / waterDensityIce(t)
	}
	return 1 / inv, nil
}

// SpecificHeat 计算食品在温度 t(°C) 下的比热容，单位 J/(kg·K)。
// 质量分数加权算术和，冻结相时水项同样拆分
func (c *Calculator) SpecificHeat(t float64, comp model.Composition, tf float64) (float64, error) {
	if err := ValidateComposition(comp); err != nil {
		return 0, err
	}
	xi, xu := c.IceFraction(t, comp.Water, tf)
	cp := xu*waterSpecificHeatLiquid(t) +
		comp.Protein/100*ComponentSpecificHeat(Protein, t) +
		comp.Fat/100*ComponentSpecificHeat(Fat, t) +
		comp.Carbohydrate/100*ComponentSpecificHeat(Carbohydrate, t) +
		comp.Fiber/100*ComponentSpecificHeat(Fiber, t) +
		comp.Ash/100*ComponentSpecificHeat(Ash, t)
	if xi > 0 {
		cp += xi * waterSpecificHeatIce(t)
	}
	return cp, nil
}

// Conductivity 计算食品在温度 t(°C) 下的导热系数，单位 W/(m·K)
func (c *Calculator) Conductivity(t float64, comp model.Composition, tf float64) (float64, error) {
	if err := ValidateComposition(comp); err != nil {
		return 0, err
	}
	xi, xu := c.IceFraction(t, comp.Water, tf)
	k := xu*waterConductivityLiquid(t) +
		comp.Protein/100*ComponentConductivity(Protein, t) +
		comp.Fat/100*ComponentConductivity(Fat, t) +
		comp.Carbohydrate/100*ComponentConductivity(Carbohydrate, t) +
		comp.Fiber/100*ComponentConductivity(Fiber, t) +
		comp.Ash/100*ComponentConductivity(Ash, t)
	if xi > 0 {
		k += xi * waterConductivityIce(t)
	}
	return k, nil
}

// Diffusivity 计算食品在温度 t(°C) 下的热扩散系数，单位 m²/s。
// 恒由 α = k/(ρ·Cp) 导出；ρ·Cp 为零时返回 0 而不报除零错误
func (c *Calculator) Diffusivity(t float64, comp model.Composition, tf float64) (float64, error) {
	p, err := c.Properties(t, comp, tf)
	if err != nil {
		return 0, err
	}
	return p.Diffusivity, nil
}

// Properties 一次计算食品在温度 t(°C) 下的全部热物性
func (c *Calculator) Properties(t float64, comp model.Composition, tf float64) (model.FoodProperties, error) {
	rho, err := c.Density(t, comp, tf)
	if err != nil {
		return model.FoodProperties{}, err
	}
	cp, err := c.SpecificHeat(t, comp, tf)
	if err != nil {
		return model.FoodProperties{}, err
	}
	k, err := c.Conductivity(t, comp, tf)
	if err != nil {
		return model.FoodProperties{}, err
	}
	alpha := 0.0
	if rho*cp != 0 {
		alpha = k / (rho * cp)
	}
	xi, _ := c.IceFraction(t, comp.Water, tf)
	return model.FoodProperties{
		Temperature:  t,
		Density:      rho,
		SpecificHeat: cp,
		Conductivity: k,
		Diffusivity:  alpha,
		IceFraction:  xi,
	}, nil
}

// PropertyTable 按温度区间 [tMin, tMax] 扫描热物性，步长 step，
// 供调用方绘制物性随温度变化的曲线
func (c *Calculator) PropertyTable(comp model.Composition, tf, tMin, tMax, step float64) ([]model.FoodProperties, error) {
	if step <= 0 || tMax < tMin {
		return nil, ErrBadSweep
	}
	var rows []model.FoodProperties
	for t := tMin; t <= tMax+step/2; t += step {
		p, err := c.Properties(t, comp, tf)
		if err != nil {
			return nil, err
		}
		rows = append(rows, p)
	}
	return rows, nil
}

// HeislerMeanTemperature 计算 Heisler 求解时评估物性用的代表温度，
// 取初始温度与介质温度的平均值；配置允许时钳制在冻结点以上，
// 避免加热/冷却问题误用冻结相物性
func (c *Calculator) HeislerMeanTemperature(t0, tm, tf float64) float64 {
	mean := (t0 + tm) / 2
	if c.ClampMeanAboveTf && mean < tf {
		mean = tf
	}
	return mean
}
