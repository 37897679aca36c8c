package calculator

import (
	"fmt"

	"gopkg.in/ini.v1"
)

var calCfg Config

type Config struct {
	IceModel             string  // heatbalance / activity
	ClampMeanAboveTf     bool    // Heisler 平均温度是否钳制在冻结点以上
	DefaultFreezingPoint float64 // 缺省初始冻结温度 °C
	ProfilePoints        int     // 温度分布默认采样点数
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		file, err = ini.Load("../conf/config.ini")
	}
	if err != nil {
		fmt.Println("配置文件读取错误，使用默认配置: ", err)
		file = nil
	}

	loadCfg(file)
}

// DefaultProfilePoints 温度分布默认采样点数
func DefaultProfilePoints() int {
	return calCfg.ProfilePoints
}

// DefaultFreezingPoint 配置的缺省初始冻结温度 °C
func DefaultFreezingPoint() float64 {
	return calCfg.DefaultFreezingPoint
}

func loadCfg(file *ini.File) {
	calCfg = Config{
		IceModel:             "activity",
		ClampMeanAboveTf:     true,
		DefaultFreezingPoint: -1.8,
		ProfilePoints:        50,
	}
	if file == nil {
		return
	}
	calCfg = Config{
		IceModel:             file.Section("calculator").Key("IceModel").MustString("activity"),
		ClampMeanAboveTf:     file.Section("calculator").Key("ClampMeanAboveTf").MustBool(true),
		DefaultFreezingPoint: file.Section("calculator").Key("DefaultFreezingPoint").MustFloat64(-1.8),
		ProfilePoints:        file.Section("calculator").Key("ProfilePoints").MustInt(50),
	}
}
