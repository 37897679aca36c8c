package model

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 热物性计算请求；TemperatureEnd > Temperature 且 TemperatureStep > 0 时
// 按温度区间扫描，否则只计算单点。
// FreezingPoint 用指针区分"未填"和"显式 0°C"，未填时服务端取配置缺省值
type PropertiesReq struct {
	Temperature     float64     `json:"temperature"`
	TemperatureEnd  float64     `json:"temperature_end"`
	TemperatureStep float64     `json:"temperature_step"`
	Composition     Composition `json:"composition"`
	FreezingPoint   *float64    `json:"freezing_point"`
}

type PropertiesResp struct {
	Properties []FoodProperties `json:"properties"`
}

// 冰晶率计算请求
type IceReq struct {
	Temperature   float64  `json:"temperature"`
	WaterPercent  float64  `json:"water_percent"`
	FreezingPoint *float64 `json:"freezing_point"`
}

type IceResp struct {
	IceFraction   float64 `json:"ice_fraction"`
	UnfrozenWater float64 `json:"unfrozen_water"`
}

// Plank 冻结时间计算请求
type PlankReq struct {
	Composition        Composition `json:"composition"`
	InitialTemperature float64     `json:"initial_temperature"`
	MediumTemperature  float64     `json:"medium_temperature"`
	HeatTransfer       float64     `json:"heat_transfer"` // 对流换热系数 W/(m²·K)
	Geometry           string      `json:"geometry"`
	Dimension          float64     `json:"dimension"` // 特征尺寸 m
	FreezingPoint      *float64    `json:"freezing_point"`
}

// JSON 不能携带 Inf，Tf = Ta 的极限情形用 Infinite 标记
type PlankResp struct {
	Seconds  float64 `json:"seconds"`
	Hours    float64 `json:"hours"`
	Infinite bool    `json:"infinite"`
}

// Heisler 一项近似计算请求，三种子类型共用：
// heisler_center 用 Time；heisler_time 用 TargetTemperature；
// heisler_profile 用 Time 和 Points
type HeislerReq struct {
	Composition        Composition `json:"composition"`
	FreezingPoint      *float64    `json:"freezing_point"`
	Geometry           string      `json:"geometry"`
	Dimension          float64     `json:"dimension"`
	HeatTransfer       float64     `json:"heat_transfer"`
	InitialTemperature float64     `json:"initial_temperature"`
	MediumTemperature  float64     `json:"medium_temperature"`
	Time               float64     `json:"time"`               // s
	TargetTemperature  float64     `json:"target_temperature"` // °C
	Points             int         `json:"points"`
}

type HeislerResp struct {
	Biot              float64        `json:"biot"`
	Fourier           float64        `json:"fourier"`
	Lambda1           float64        `json:"lambda1"`
	A1                float64        `json:"a1"`
	MeanTemperature   float64        `json:"mean_temperature"`
	CenterTemperature float64        `json:"center_temperature"`
	Seconds           float64        `json:"seconds"`
	OneTermValid      bool           `json:"one_term_valid"` // Fo >= 0.2 时一项近似才可靠
	Profile           []ProfilePoint `json:"profile,omitempty"`
}

// 溶质表观摩尔质量估算请求
type SoluteReq struct {
	FreezingPoint float64 `json:"freezing_point"`
	WaterPercent  float64 `json:"water_percent"`
}

type SoluteResp struct {
	MolarMass float64 `json:"molar_mass"` // g/mol
	Infinite  bool    `json:"infinite"`
}

// 一次计算的历史记录
type CalcRecord struct {
	Kind    string `json:"kind"`
	Request string `json:"request"`
	Result  string `json:"result"`
	At      int64  `json:"at"` // unix 秒
}

type HistoryResp struct {
	Records []CalcRecord `json:"records"`
}
