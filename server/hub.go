package server

import (
	"encoding/json"
	"math"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"fp/calculator"
	"fp/deque"
	"fp/model"
)

// Hub 处理单个连接上的计算请求并回写结果。
// 请求与响应都是 model.Msg，Content 为各请求/响应结构的 JSON。
// 计算本身无状态，hub 只额外保留最近若干次计算的历史记录
type Hub struct {
	calc    *calculator.Calculator
	conn    *websocket.Conn
	history deque.Deque
	// request
	msg chan model.Msg
	// response
	result chan model.Msg
	failed chan model.Msg
	// 连接读循环退出时关闭，通知两个处理协程退出
	done chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		calc:    calculator.NewCalculator(),
		history: deque.NewArrDeque(srvCfg.HistorySize),
		msg:     make(chan model.Msg, 10),
		result:  make(chan model.Msg, 10),
		failed:  make(chan model.Msg, 10),
		done:    make(chan struct{}),
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case <-h.done:
			return
		case reply := <-h.result:
			err := h.conn.WriteJSON(&reply)
			if err != nil {
				log.Println("err: ", err)
			}
		case reply := <-h.failed:
			err := h.conn.WriteJSON(&reply)
			if err != nil {
				log.Println("err: ", err)
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case <-h.done:
			return
		case msg := <-h.msg:
			switch msg.Type {
			case "properties":
				h.handleProperties(msg)
			case "ice":
				h.handleIce(msg)
			case "plank":
				h.handlePlank(msg)
			case "heisler_center", "heisler_time", "heisler_profile":
				h.handleHeisler(msg)
			case "solute":
				h.handleSolute(msg)
			case "history":
				h.handleHistory(msg)
			default:
				log.Warn("未知的请求类型: ", msg.Type)
				h.failed <- model.Msg{Type: "error", Content: "未知的请求类型: " + msg.Type}
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

// 回写结果并保存到历史记录
func (h *Hub) reply(req model.Msg, resp interface{}) {
	data, err := json.Marshal(resp)
	if err != nil {
		h.fail(req, err)
		return
	}
	h.history.PushBack(model.CalcRecord{
		Kind:    req.Type,
		Request: req.Content,
		Result:  string(data),
		At:      time.Now().Unix(),
	})
	h.result <- model.Msg{Type: req.Type + "_result", Content: string(data)}
}

// 报告该次计算失败及未满足的前置条件
func (h *Hub) fail(req model.Msg, err error) {
	log.WithFields(log.Fields{
		"type": req.Type,
		"err":  err,
	}).Warn("计算失败")
	h.failed <- model.Msg{Type: "error", Content: req.Type + ": " + err.Error()}
}

// 请求未填冻结点时取配置的缺省初始冻结温度；
// 指针区分"未填"和"显式 0°C"，后者原样生效
func freezingPointOrDefault(tf *float64) float64 {
	if tf == nil {
		return calculator.DefaultFreezingPoint()
	}
	return *tf
}

func (h *Hub) handleProperties(msg model.Msg) {
	var req model.PropertiesReq
	if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
		h.fail(msg, err)
		return
	}
	tf := freezingPointOrDefault(req.FreezingPoint)
	var rows []model.FoodProperties
	if req.TemperatureStep > 0 && req.TemperatureEnd > req.Temperature {
		var err error
		rows, err = h.calc.PropertyTable(req.Composition, tf,
			req.Temperature, req.TemperatureEnd, req.TemperatureStep)
		if err != nil {
			h.fail(msg, err)
			return
		}
	} else {
		p, err := h.calc.Properties(req.Temperature, req.Composition, tf)
		if err != nil {
			h.fail(msg, err)
			return
		}
		rows = []model.FoodProperties{p}
	}
	h.reply(msg, model.PropertiesResp{Properties: rows})
}

func (h *Hub) handleIce(msg model.Msg) {
	var req model.IceReq
	if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
		h.fail(msg, err)
		return
	}
	xi, xu := h.calc.IceFraction(req.Temperature, req.WaterPercent, freezingPointOrDefault(req.FreezingPoint))
	h.reply(msg, model.IceResp{IceFraction: xi, UnfrozenWater: xu})
}

func (h *Hub) handlePlank(msg model.Msg) {
	var req model.PlankReq
	if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
		h.fail(msg, err)
		return
	}
	g, ok := model.ParseGeometry(req.Geometry)
	if !ok {
		h.fail(msg, calculator.ErrUnknownGeometry)
		return
	}
	tf := freezingPointOrDefault(req.FreezingPoint)
	secs, err := h.calc.FreezingTime(req.Composition, req.InitialTemperature,
		req.MediumTemperature, req.HeatTransfer, g, req.Dimension, tf)
	if err != nil {
		h.fail(msg, err)
		return
	}
	resp := model.PlankResp{}
	if math.IsInf(secs, 1) {
		// Tf = Ta 时无法冻结，JSON 携带不了 Inf，改用标记
		resp.Infinite = true
	} else {
		resp.Seconds = secs
		resp.Hours = secs / 3600
	}
	h.reply(msg, resp)
}

func (h *Hub) handleHeisler(msg model.Msg) {
	var req model.HeislerReq
	if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
		h.fail(msg, err)
		return
	}
	g, ok := model.ParseGeometry(req.Geometry)
	if !ok {
		h.fail(msg, calculator.ErrUnknownGeometry)
		return
	}
	tf := freezingPointOrDefault(req.FreezingPoint)
	// 物性在初始温度与介质温度的平均值下评估，每次请求只评估一次
	mean := h.calc.HeislerMeanTemperature(req.InitialTemperature, req.MediumTemperature, tf)
	p, err := h.calc.Properties(mean, req.Composition, tf)
	if err != nil {
		h.fail(msg, err)
		return
	}
	s, err := calculator.NewHeislerState(g, req.HeatTransfer, p.Conductivity, p.Diffusivity, req.Dimension)
	if err != nil {
		h.fail(msg, err)
		return
	}
	resp := model.HeislerResp{
		Biot:            s.Biot,
		Lambda1:         s.Lambda1,
		A1:              s.A1,
		MeanTemperature: mean,
	}

	t0, tm := req.InitialTemperature, req.MediumTemperature
	switch msg.Type {
	case "heisler_center":
		temp, fo, valid, err := s.CenterTemperature(req.Time, t0, tm)
		if err != nil {
			h.fail(msg, err)
			return
		}
		resp.CenterTemperature = temp
		resp.Fourier = fo
		resp.Seconds = req.Time
		resp.OneTermValid = valid
	case "heisler_time":
		secs, fo, valid, err := s.TimeToReach(req.TargetTemperature, t0, tm)
		if err != nil {
			h.fail(msg, err)
			return
		}
		resp.CenterTemperature = req.TargetTemperature
		resp.Fourier = fo
		resp.Seconds = secs
		resp.OneTermValid = valid
	case "heisler_profile":
		n := req.Points
		if n <= 0 {
			n = calculator.DefaultProfilePoints()
		}
		points, fo, valid, err := s.Profile(req.Time, t0, tm, n)
		if err != nil {
			h.fail(msg, err)
			return
		}
		resp.Profile = points
		resp.CenterTemperature = points[0].Temperature
		resp.Fourier = fo
		resp.Seconds = req.Time
		resp.OneTermValid = valid
	}
	h.reply(msg, resp)
}

func (h *Hub) handleSolute(msg model.Msg) {
	var req model.SoluteReq
	if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
		h.fail(msg, err)
		return
	}
	pm, err := calculator.ApparentSoluteMW(req.FreezingPoint, req.WaterPercent)
	if err != nil {
		h.fail(msg, err)
		return
	}
	resp := model.SoluteResp{}
	if math.IsInf(pm, 1) {
		resp.Infinite = true
	} else {
		resp.MolarMass = pm
	}
	h.reply(msg, resp)
}

func (h *Hub) handleHistory(msg model.Msg) {
	records := make([]model.CalcRecord, 0, h.history.Size())
	h.history.Traverse(func(i int, r model.CalcRecord) {
		records = append(records, r)
	})
	data, err := json.Marshal(model.HistoryResp{Records: records})
	if err != nil {
		h.fail(msg, err)
		return
	}
	// 历史查询本身不记入历史
	h.result <- model.Msg{Type: "history_result", Content: string(data)}
}
