package calculator

import (
	"math"

	"fp/model"
)

// 一维非稳态导热一项近似(Heisler)求解。
// θ0 = A1·exp(-λ1²·Fo)，Fo = α·t/Lc²，Fo >= 0.2 时一项截断才可靠。
// (A1, λ1) 来自特征值超越方程的数表，按 Bi 线性插值，
// 表两端分别对应集总参数极限(Bi→0, A1→1)和第一类边界极限

// Fo 低于该值时一项近似精度不足，结果附带提示标记返回
const FourierOneTermLimit = 0.2

// 数表行：{Bi, λ1, A1}
var slabCoeff = [][3]float64{
	{0.01, 0.0998, 1.0017},
	{0.02, 0.1410, 1.0033},
	{0.03, 0.1732, 1.0049},
	{0.04, 0.1987, 1.0066},
	{0.05, 0.2218, 1.0082},
	{0.06, 0.2425, 1.0098},
	{0.07, 0.2615, 1.0114},
	{0.08, 0.2791, 1.0130},
	{0.09, 0.2956, 1.0145},
	{0.10, 0.3111, 1.0161},
	{0.15, 0.3779, 1.0237},
	{0.20, 0.4328, 1.0311},
	{0.25, 0.4801, 1.0382},
	{0.30, 0.5218, 1.0450},
	{0.40, 0.5932, 1.0580},
	{0.50, 0.6533, 1.0701},
	{0.60, 0.7051, 1.0814},
	{0.70, 0.7506, 1.0918},
	{0.80, 0.7910, 1.1016},
	{0.90, 0.8274, 1.1107},
	{1.00, 0.8603, 1.1191},
	{2.00, 1.0769, 1.1785},
	{3.00, 1.1925, 1.2102},
	{4.00, 1.2646, 1.2287},
	{5.00, 1.3138, 1.2402},
	{6.00, 1.3496, 1.2479},
	{7.00, 1.3766, 1.2532},
	{8.00, 1.3978, 1.2570},
	{9.00, 1.4149, 1.2598},
	{10.0, 1.4289, 1.2620},
	{20.0, 1.4961, 1.2699},
	{30.0, 1.5202, 1.2717},
	{40.0, 1.5325, 1.2723},
	{50.0, 1.5400, 1.2727},
	{100.0, 1.5552, 1.2731},
	{1000.0, math.Pi / 2, 4 / math.Pi},
}

var cylinderCoeff = [][3]float64{
	{0.01, 0.1412, 1.0025},
	{0.02, 0.1995, 1.0050},
	{0.03, 0.2440, 1.0075},
	{0.04, 0.2814, 1.0099},
	{0.05, 0.3143, 1.0124},
	{0.06, 0.3438, 1.0148},
	{0.07, 0.3709, 1.0173},
	{0.08, 0.3960, 1.0197},
	{0.09, 0.4195, 1.0222},
	{0.10, 0.4417, 1.0246},
	{0.15, 0.5376, 1.0365},
	{0.20, 0.6170, 1.0483},
	{0.25, 0.6856, 1.0598},
	{0.30, 0.7465, 1.0712},
	{0.40, 0.8516, 1.0931},
	{0.50, 0.9408, 1.1143},
	{0.60, 1.0184, 1.1345},
	{0.70, 1.0873, 1.1539},
	{0.80, 1.1490, 1.1724},
	{0.90, 1.2048, 1.1902},
	{1.00, 1.2558, 1.2071},
	{2.00, 1.5995, 1.3384},
	{3.00, 1.7887, 1.4191},
	{4.00, 1.9081, 1.4698},
	{5.00, 1.9898, 1.5029},
	{6.00, 2.0490, 1.5253},
	{7.00, 2.0937, 1.5411},
	{8.00, 2.1286, 1.5526},
	{9.00, 2.1566, 1.5611},
	{10.0, 2.1795, 1.5677},
	{20.0, 2.2880, 1.5919},
	{30.0, 2.3261, 1.5973},
	{40.0, 2.3455, 1.5993},
	{50.0, 2.3572, 1.6002},
	{100.0, 2.3809, 1.6015},
	{1000.0, 2.4048, 1.6021}, // λ1 → J0 的第一个零点
}

var sphereCoeff = [][3]float64{
	{0.01, 0.1730, 1.0030},
	{0.02, 0.2445, 1.0060},
	{0.03, 0.2989, 1.0090},
	{0.04, 0.3450, 1.0120},
	{0.05, 0.3852, 1.0149},
	{0.06, 0.4217, 1.0179},
	{0.07, 0.4550, 1.0209},
	{0.08, 0.4860, 1.0239},
	{0.09, 0.5150, 1.0268},
	{0.10, 0.5423, 1.0298},
	{0.15, 0.6608, 1.0445},
	{0.20, 0.7593, 1.0592},
	{0.25, 0.8447, 1.0737},
	{0.30, 0.9208, 1.0880},
	{0.40, 1.0528, 1.1164},
	{0.50, 1.1656, 1.1441},
	{0.60, 1.2644, 1.1713},
	{0.70, 1.3525, 1.1978},
	{0.80, 1.4320, 1.2236},
	{0.90, 1.5044, 1.2488},
	{1.00, 1.5708, 1.2732},
	{2.00, 2.0288, 1.4793},
	{3.00, 2.2889, 1.6227},
	{4.00, 2.4556, 1.7202},
	{5.00, 2.5704, 1.7870},
	{6.00, 2.6537, 1.8338},
	{7.00, 2.7165, 1.8673},
	{8.00, 2.7654, 1.8920},
	{9.00, 2.8044, 1.9106},
	{10.0, 2.8363, 1.9249},
	{20.0, 2.9857, 1.9781},
	{30.0, 3.0372, 1.9898},
	{40.0, 3.0632, 1.9942},
	{50.0, 3.0788, 1.9962},
	{100.0, 3.1102, 1.9990},
	{1000.0, math.Pi, 2.0},
}

func coeffTable(g model.Geometry) [][3]float64 {
	switch g {
	case model.Cylinder:
		return cylinderCoeff
	case model.Sphere:
		return sphereCoeff
	}
	return slabCoeff
}

// HeislerCoefficients 查表获取 (λ1, A1)，表内按 Bi 线性插值，表外取端点值
func HeislerCoefficients(g model.Geometry, bi float64) (lambda1, a1 float64) {
	table := coeffTable(g)
	first, last := table[0], table[len(table)-1]
	if bi <= first[0] {
		return first[1], first[2]
	}
	if bi >= last[0] {
		return last[1], last[2]
	}
	for i := 1; i < len(table); i++ {
		if bi <= table[i][0] {
			lo, hi := table[i-1], table[i]
			f := (bi - lo[0]) / (hi[0] - lo[0])
			return lo[1] + f*(hi[1]-lo[1]), lo[2] + f*(hi[2]-lo[2])
		}
	}
	return last[1], last[2]
}

// HeislerState 某一 (几何, Bi) 组合下的一项近似求解状态
type HeislerState struct {
	Geometry model.Geometry
	Biot     float64
	Lambda1  float64
	A1       float64
	Lc       float64 // 特征尺寸 m
	Alpha    float64 // 热扩散系数 m²/s
}

// NewHeislerState 由换热系数、导热系数、热扩散系数与特征尺寸
// 计算 Bi 并查表构造求解状态
func NewHeislerState(g model.Geometry, h, k, alpha, lc float64) (*HeislerState, error) {
	if h <= 0 {
		return nil, ErrNonPositiveH
	}
	if lc <= 0 {
		return nil, ErrNonPositiveSize
	}
	if k <= 0 {
		return nil, ErrZeroConductivity
	}
	if alpha <= 0 {
		return nil, ErrZeroDiffusivity
	}
	bi := h * lc / k
	lambda1, a1 := HeislerCoefficients(g, bi)
	return &HeislerState{
		Geometry: g,
		Biot:     bi,
		Lambda1:  lambda1,
		A1:       a1,
		Lc:       lc,
		Alpha:    alpha,
	}, nil
}

// Fourier 无量纲时间 Fo = α·t/Lc²
func (s *HeislerState) Fourier(elapsed float64) float64 {
	return s.Alpha * elapsed / (s.Lc * s.Lc)
}

// CenterTemperature 计算 elapsed(s) 时刻的中心温度。
// valid 为 false 表示 Fo < 0.2，一项近似的精度不足，结果仍然返回
func (s *HeislerState) CenterTemperature(elapsed, t0, tm float64) (temp, fo float64, valid bool, err error) {
	if elapsed <= 0 {
		return 0, 0, false, ErrNonPositiveTime
	}
	fo = s.Fourier(elapsed)
	theta := s.A1 * math.Exp(-s.Lambda1*s.Lambda1*fo)
	return tm + theta*(t0-tm), fo, fo >= FourierOneTermLimit, nil
}

// TimeToReach 反解中心温度到达 target 所需的时间(s)。
// 温度轨迹单调且被限定在初始温度与介质温度之间，
// 目标在该区间之外或 θ0 >= A1 时均不可达
func (s *HeislerState) TimeToReach(target, t0, tm float64) (elapsed, fo float64, valid bool, err error) {
	if t0 == tm {
		return 0, 0, false, ErrEqualTemperature
	}
	theta := (target - tm) / (t0 - tm)
	if theta <= 0 || theta > 1 || theta >= s.A1 {
		return 0, 0, false, ErrTargetUnreachable
	}
	fo = -math.Log(theta/s.A1) / (s.Lambda1 * s.Lambda1)
	return fo * s.Lc * s.Lc / s.Alpha, fo, fo >= FourierOneTermLimit, nil
}

// TemperatureAt 计算 elapsed(s) 时刻距中心 x(m) 处的温度
func (s *HeislerState) TemperatureAt(x, elapsed, t0, tm float64) (temp, fo float64, valid bool, err error) {
	if x < 0 || x > s.Lc {
		return 0, 0, false, ErrPositionOutOfRange
	}
	if elapsed <= 0 {
		return 0, 0, false, ErrNonPositiveTime
	}
	fo = s.Fourier(elapsed)
	theta0 := s.A1 * math.Exp(-s.Lambda1*s.Lambda1*fo)
	factor := positionFactor(s.Geometry, s.Lambda1, x/s.Lc)
	return tm + theta0*factor*(t0-tm), fo, fo >= FourierOneTermLimit, nil
}

// Profile 计算 elapsed(s) 时刻从中心到表面 n 个等距点的温度分布
func (s *HeislerState) Profile(elapsed, t0, tm float64, n int) ([]model.ProfilePoint, float64, bool, error) {
	if n < 2 {
		n = 2
	}
	if elapsed <= 0 {
		return nil, 0, false, ErrNonPositiveTime
	}
	fo := s.Fourier(elapsed)
	valid := fo >= FourierOneTermLimit
	theta0 := s.A1 * math.Exp(-s.Lambda1*s.Lambda1*fo)
	points := make([]model.ProfilePoint, n)
	for i := 0; i < n; i++ {
		xr := float64(i) / float64(n-1)
		factor := positionFactor(s.Geometry, s.Lambda1, xr)
		points[i] = model.ProfilePoint{
			Position:    xr * s.Lc,
			Temperature: tm + theta0*factor*(t0-tm),
		}
	}
	return points, fo, valid, nil
}

// 位置因子 X(x/Lc, λ1)：平板为 cos，圆柱为零阶第一类 Bessel 函数 J0，
// 球为 sin(u)/u，u → 0 的极限取 1。中心处三种几何均恒为 1
func positionFactor(g model.Geometry, lambda1, xr float64) float64 {
	u := lambda1 * xr
	switch g {
	case model.Cylinder:
		return math.J0(u)
	case model.Sphere:
		if u == 0 {
			return 1
		}
		return math.Sin(u) / u
	}
	return math.Cos(u)
}
