package calculator

import (
	"testing"

	"fp/model"
)

func newTestCalculator() *Calculator {
	return &Calculator{IceModel: IceActivity, ClampMeanAboveTf: true}
}

func TestCompositionValidation(t *testing.T) {
	c := newTestCalculator()
	bad := defaultComp()
	bad.Water = 80 // 总和 105

	if _, err := c.Density(25, bad, -1.8); err != ErrCompositionSum {
		t.Errorf("Density err = %v", err)
	}
	if _, err := c.SpecificHeat(25, bad, -1.8); err != ErrCompositionSum {
		t.Errorf("SpecificHeat err = %v", err)
	}
	if _, err := c.Conductivity(25, bad, -1.8); err != ErrCompositionSum {
		t.Errorf("Conductivity err = %v", err)
	}
	if _, err := c.Diffusivity(25, bad, -1.8); err != ErrCompositionSum {
		t.Errorf("Diffusivity err = %v", err)
	}
	if _, err := c.FreezingTime(bad, 20, -20, 15, model.Slab, 0.05, -1.8); err != ErrCompositionSum {
		t.Errorf("FreezingTime err = %v", err)
	}

	// 容差 0.01 以内放行
	almost := defaultComp()
	almost.Ash = 0.505
	if _, err := c.Density(25, almost, -1.8); err != nil {
		t.Errorf("容差内的组成被拒绝: %v", err)
	}
}

func TestCompositionNegativeComponent(t *testing.T) {
	// 各组分限定在 [0, 100]，总和凑足 100 也不能放行负值
	c := newTestCalculator()
	neg := defaultComp()
	neg.Fat = -5
	neg.Water = 85 // 总和仍为 100
	if _, err := c.Density(25, neg, -1.8); err != ErrNegativeComposition {
		t.Errorf("Density err = %v", err)
	}
	if _, err := c.Properties(25, neg, -1.8); err != ErrNegativeComposition {
		t.Errorf("Properties err = %v", err)
	}
}

func TestUnfrozenScenario(t *testing.T) {
	// 典型高水分食品 25°C 下的热物性量级
	c := newTestCalculator()
	p, err := c.Properties(25, defaultComp(), -1.8)
	if err != nil {
		t.Fatal(err)
	}
	if p.Density < 1000 || p.Density > 1050 {
		t.Errorf("密度 = %v, 期望 1000~1050", p.Density)
	}
	if p.SpecificHeat < 3600 || p.SpecificHeat > 3900 {
		t.Errorf("比热容 = %v, 期望 3600~3900", p.SpecificHeat)
	}
	if p.Conductivity < 0.4 || p.Conductivity > 0.6 {
		t.Errorf("导热系数 = %v", p.Conductivity)
	}
	if p.IceFraction != 0 {
		t.Errorf("25°C 不应有冰: %v", p.IceFraction)
	}
}

func TestDiffusivityDerived(t *testing.T) {
	// α 恒由 k/(ρ·Cp) 导出
	c := newTestCalculator()
	for _, temp := range []float64{-30, -10, -2, 0, 25, 80, 120} {
		p, err := c.Properties(temp, defaultComp(), -1.8)
		if err != nil {
			t.Fatal(err)
		}
		want := p.Conductivity / (p.Density * p.SpecificHeat)
		if !closeTo(p.Diffusivity, want, 1e-12) {
			t.Errorf("T=%v: α = %v, k/(ρ·Cp) = %v", temp, p.Diffusivity, want)
		}
	}
}

func TestUnfrozenMatchesPlainFormula(t *testing.T) {
	// T >= Tf 时结果必须与不含冰项的公式严格一致
	c := newTestCalculator()
	comp := defaultComp()
	tf := -1.8
	for _, temp := range []float64{-1.8, 0, 25} {
		rho, err := c.Density(temp, comp, tf)
		if err != nil {
			t.Fatal(err)
		}
		inv := comp.Water/100/waterDensityLiquid(temp) +
			comp.Protein/100/ComponentDensity(Protein, temp) +
			comp.Fat/100/ComponentDensity(Fat, temp) +
			comp.Carbohydrate/100/ComponentDensity(Carbohydrate, temp) +
			comp.Fiber/100/ComponentDensity(Fiber, temp) +
			comp.Ash/100/ComponentDensity(Ash, temp)
		if rho != 1/inv {
			t.Errorf("T=%v: 密度 %v != 无冰公式 %v", temp, rho, 1/inv)
		}

		cp, err := c.SpecificHeat(temp, comp, tf)
		if err != nil {
			t.Fatal(err)
		}
		want := comp.Water/100*waterSpecificHeatLiquid(temp) +
			comp.Protein/100*ComponentSpecificHeat(Protein, temp) +
			comp.Fat/100*ComponentSpecificHeat(Fat, temp) +
			comp.Carbohydrate/100*ComponentSpecificHeat(Carbohydrate, temp) +
			comp.Fiber/100*ComponentSpecificHeat(Fiber, temp) +
			comp.Ash/100*ComponentSpecificHeat(Ash, temp)
		if cp != want {
			t.Errorf("T=%v: 比热容 %v != 无冰公式 %v", temp, cp, want)
		}
	}
}

func TestFrozenBranch(t *testing.T) {
	c := newTestCalculator()
	comp := defaultComp()
	tf := -1.8

	frozen, err := c.Properties(-20, comp, tf)
	if err != nil {
		t.Fatal(err)
	}
	unfrozen, err := c.Properties(5, comp, tf)
	if err != nil {
		t.Fatal(err)
	}
	if frozen.IceFraction <= 0 {
		t.Fatal("-20°C 应有冰")
	}
	// 冰的密度低于液态水，冻结后整体密度下降
	if frozen.Density >= unfrozen.Density {
		t.Errorf("冻结相密度 %v 应低于未冻相 %v", frozen.Density, unfrozen.Density)
	}
	// 冰的导热系数远高于液态水，冻结后整体导热系数上升
	if frozen.Conductivity <= unfrozen.Conductivity {
		t.Errorf("冻结相导热系数 %v 应高于未冻相 %v", frozen.Conductivity, unfrozen.Conductivity)
	}
	// 冰的比热约为液态水一半，冻结相比热下降
	if frozen.SpecificHeat >= unfrozen.SpecificHeat {
		t.Errorf("冻结相比热容 %v 应低于未冻相 %v", frozen.SpecificHeat, unfrozen.SpecificHeat)
	}
}

func TestDeterminism(t *testing.T) {
	// 同一输入必须得到完全相同的结果
	c := newTestCalculator()
	p1, err := c.Properties(-7.3, defaultComp(), -1.8)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := c.Properties(-7.3, defaultComp(), -1.8)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Errorf("重复计算结果不一致: %v / %v", p1, p2)
	}
}

func TestPropertyTable(t *testing.T) {
	c := newTestCalculator()
	rows, err := c.PropertyTable(defaultComp(), -1.8, -30, 30, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 13 {
		t.Fatalf("行数 = %d, 期望 13", len(rows))
	}
	if rows[0].Temperature != -30 || !closeTo(rows[12].Temperature, 30, 1e-9) {
		t.Errorf("区间端点 = %v, %v", rows[0].Temperature, rows[12].Temperature)
	}

	if _, err := c.PropertyTable(defaultComp(), -1.8, 30, -30, 5); err != ErrBadSweep {
		t.Errorf("倒置区间 err = %v", err)
	}
	if _, err := c.PropertyTable(defaultComp(), -1.8, -30, 30, 0); err != ErrBadSweep {
		t.Errorf("零步长 err = %v", err)
	}
}

func TestHeislerMeanTemperature(t *testing.T) {
	c := newTestCalculator()
	if got := c.HeislerMeanTemperature(20, 80, -1.8); got != 50 {
		t.Errorf("平均温度 = %v", got)
	}
	// 平均值落进冻结区时钳制到冻结点
	if got := c.HeislerMeanTemperature(-30, 4, -1.8); got != -1.8 {
		t.Errorf("钳制后的平均温度 = %v", got)
	}
	c.ClampMeanAboveTf = false
	if got := c.HeislerMeanTemperature(-30, 4, -1.8); got != -13 {
		t.Errorf("未钳制的平均温度 = %v", got)
	}
}
