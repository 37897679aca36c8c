package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"fp/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
}

func NewServer(addr string, upgrader websocket.Upgrader) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	hub := NewHub()
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	hub.conn = conn
	defer conn.Close()
	// 读循环退出后通知处理协程一并退出
	defer close(hub.done)
	var msg model.Msg
	go hub.handleRequest()
	go hub.handleResponse()
	for {
		err = conn.ReadJSON(&msg)
		if err != nil {
			log.Println("err: ", err)
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() {
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	log.Info("监听地址: ", s.addr)
	err := http.ListenAndServe(s.addr, nil)
	if err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
