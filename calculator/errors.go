package calculator

import "errors"

// 错误分三类：组成校验错误、物理前置条件错误、目标温度不可达。
// Fo < 0.2 的一项近似精度问题不是错误，作为标记随结果返回。
var (
	ErrCompositionSum      = errors.New("组分百分数之和必须为 100")
	ErrNegativeComposition = errors.New("组分百分数不能为负值")

	ErrNonPositiveH          = errors.New("对流换热系数必须为正值")
	ErrNonPositiveSize       = errors.New("特征尺寸必须为正值")
	ErrZeroConductivity      = errors.New("导热系数必须为正值")
	ErrZeroDiffusivity       = errors.New("热扩散系数必须为正值")
	ErrEqualTemperature      = errors.New("初始温度与介质温度相同，无法求解")
	ErrMediumTooWarm         = errors.New("冷冻介质温度必须低于初始冻结温度")
	ErrFreezingPointPositive = errors.New("初始冻结温度必须不高于 0°C")
	ErrNoWater               = errors.New("水分含量为零，无法估算")
	ErrNoSolids              = errors.New("固形物含量为零，无法估算")
	ErrUnknownGeometry       = errors.New("未知的几何形状")
	ErrNonPositiveTime       = errors.New("时间必须为正值")
	ErrPositionOutOfRange    = errors.New("位置必须落在中心与表面之间")
	ErrBelowAbsoluteZero     = errors.New("温度低于绝对零度")
	ErrBadSweep              = errors.New("温度扫描区间或步长非法")

	ErrTargetUnreachable = errors.New("目标温度超出初始温度与介质温度所限定的可达范围")
)
