package calculator

import (
	"math"
	"testing"

	"fp/model"
)

func TestFreezingTimePositive(t *testing.T) {
	c := newTestCalculator()
	secs, err := c.FreezingTime(defaultComp(), 20, -20, 15, model.Slab, 0.05, -1.8)
	if err != nil {
		t.Fatal(err)
	}
	if secs <= 0 || math.IsInf(secs, 0) {
		t.Fatalf("冻结时间 = %v", secs)
	}
	// 与闭式解逐项对照：Le = L0·Xw (J/kg)，
	// kf 在参考温度 max(Ta, Tf-5) = -6.8°C 下评估
	kf, err := c.Conductivity(-6.8, defaultComp(), -1.8)
	if err != nil {
		t.Fatal(err)
	}
	le := LatentHeatFusion * 0.75
	want := le / (-1.8 - -20) * (0.5*0.05/15 + 0.125*0.05*0.05/kf)
	if !closeTo(secs, want, 1e-12) {
		t.Errorf("冻结时间 = %v, 期望 %v", secs, want)
	}
}

func TestFreezingTimeShapeOrder(t *testing.T) {
	// 同尺寸下平板最慢、球最快 (P_slab > P_cyl > P_sph)
	c := newTestCalculator()
	times := make(map[model.Geometry]float64)
	for _, g := range []model.Geometry{model.Slab, model.Cylinder, model.Sphere} {
		secs, err := c.FreezingTime(defaultComp(), 20, -20, 15, g, 0.05, -1.8)
		if err != nil {
			t.Fatal(err)
		}
		times[g] = secs
	}
	if !(times[model.Slab] > times[model.Cylinder] && times[model.Cylinder] > times[model.Sphere]) {
		t.Errorf("冻结时间排序异常: %v", times)
	}
}

func TestFreezingTimeScalesWithCold(t *testing.T) {
	// 介质越冷冻结越快
	c := newTestCalculator()
	t1, err := c.FreezingTime(defaultComp(), 20, -10, 15, model.Slab, 0.05, -1.8)
	if err != nil {
		t.Fatal(err)
	}
	t2, err := c.FreezingTime(defaultComp(), 20, -40, 15, model.Slab, 0.05, -1.8)
	if err != nil {
		t.Fatal(err)
	}
	if t2 >= t1 {
		t.Errorf("-40°C 冻结时间 %v 应短于 -10°C 的 %v", t2, t1)
	}
}

func TestFreezingTimeDegenerate(t *testing.T) {
	// Tf = Ta 时无法冻结，返回 +Inf 而不是除零错误
	c := newTestCalculator()
	secs, err := c.FreezingTime(defaultComp(), 20, -2, 15, model.Slab, 0.05, -2)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(secs, 1) {
		t.Errorf("冻结时间 = %v, 期望 +Inf", secs)
	}
}

func TestFreezingTimePreconditions(t *testing.T) {
	c := newTestCalculator()
	comp := defaultComp()

	// 介质比冻结点热
	if _, err := c.FreezingTime(comp, 20, 5, 15, model.Slab, 0.05, -1.8); err != ErrMediumTooWarm {
		t.Errorf("err = %v", err)
	}
	if _, err := c.FreezingTime(comp, 20, -20, 0, model.Slab, 0.05, -1.8); err != ErrNonPositiveH {
		t.Errorf("err = %v", err)
	}
	if _, err := c.FreezingTime(comp, 20, -20, 15, model.Slab, 0, -1.8); err != ErrNonPositiveSize {
		t.Errorf("err = %v", err)
	}
	if _, err := c.FreezingTime(comp, 20, -20, 15, model.Geometry(99), 0.05, -1.8); err != ErrUnknownGeometry {
		t.Errorf("err = %v", err)
	}
}

func TestShapeFactors(t *testing.T) {
	p, r, err := shapeFactors(model.Slab)
	if err != nil || p != 0.5 || r != 0.125 {
		t.Errorf("平板 (P, R) = (%v, %v), err = %v", p, r, err)
	}
	p, r, err = shapeFactors(model.Cylinder)
	if err != nil || p != 0.25 || r != 0.0625 {
		t.Errorf("圆柱 (P, R) = (%v, %v), err = %v", p, r, err)
	}
	p, r, err = shapeFactors(model.Sphere)
	if err != nil || !closeTo(p, 1.0/6, 1e-12) || !closeTo(r, 1.0/24, 1e-12) {
		t.Errorf("球 (P, R) = (%v, %v), err = %v", p, r, err)
	}
}
