package server

import (
	"fmt"

	"gopkg.in/ini.v1"
)

var srvCfg SrvConfig

type SrvConfig struct {
	Addr        string // 监听地址
	HistorySize int    // 每个连接保留的计算历史条数
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

func loadCfg(file *ini.File) {
	srvCfg = SrvConfig{
		Addr:        ":9000",
		HistorySize: 32,
	}
	if file == nil {
		return
	}
	srvCfg = SrvConfig{
		Addr:        file.Section("server").Key("Addr").MustString(":9000"),
		HistorySize: file.Section("server").Key("HistorySize").MustInt(32),
	}
}

// DefaultAddr 配置文件中的监听地址
func DefaultAddr() string {
	return srvCfg.Addr
}
