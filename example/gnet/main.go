// FILE: example/gnet/main.go
package main

import (
	"github.com/lixenwraith/joblog"
	"github.com/lixenwraith/joblog/compat"
	"github.com/panjf2000/gnet/v2"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnBoot(eng gnet.Engine) gnet.Action {
	joblog.Status("echo server ready")
	return gnet.None
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	logger := joblog.Default()
	if err := logger.Init("echo", joblog.ConsoleSink(), joblog.FileSink("gnet.log")); err != nil {
		panic(err)
	}
	defer logger.Close()

	// Engine failures are logged inside the "echo" section and end the process
	gnetAdapter := compat.NewGnetAdapter(logger)

	err := gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		logger.Fatal("gnet stopped:", err)
	}
	_ = logger.CompleteSection()
}
