package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"

	"github.com/nharmon/chalkline/chalk-core/ipc"
	"github.com/nharmon/chalkline/chalk-core/playbook"
	"github.com/nharmon/chalkline/chalk-core/session"
)

const banner = `
 ██████╗██╗  ██╗ █████╗ ██╗     ██╗  ██╗██╗     ██╗███╗   ██╗███████╗
██╔════╝██║  ██║██╔══██╗██║     ██║ ██╔╝██║     ██║████╗  ██║██╔════╝
██║     ███████║███████║██║     █████╔╝ ██║     ██║██╔██╗ ██║█████╗
██║     ██╔══██║██╔══██║██║     ██╔═██╗ ██║     ██║██║╚██╗██║██╔══╝
╚██████╗██║  ██║██║  ██║███████╗██║  ██╗███████╗██║██║ ╚████║███████╗
 ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚══════╝╚═╝╚═╝  ╚═══╝╚══════╝

Concept Build Engine`

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The sidecar binds to loopback; the editor shell is the only caller.
		return true
	},
}

func main() {
	addr := flag.String("addr", "127.0.0.1:7380", "listen address for the editor front-end")
	libraryDir := flag.String("library", "", "optional directory of extra concept YAML files")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	fmt.Println(banner)
	slog.Info("starting chalkline sidecar")

	library, err := playbook.NewLibrary()
	if err != nil {
		slog.Error("failed to load builtin concept library", "error", err)
		os.Exit(1)
	}
	if *libraryDir != "" {
		if err := library.LoadDir(*libraryDir); err != nil {
			slog.Error("failed to load concept library dir", "dir", *libraryDir, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("concept library ready", "concepts", len(library.Concepts()))

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", "error", err)
			return
		}
		slog.Info("new connection accepted", "remote", r.RemoteAddr)
		go handleConn(ws, library)
	})

	server := &http.Server{Addr: *addr}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("listening for editor connections", "addr", *addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("listen failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	_ = server.Shutdown(context.Background())
}

func handleConn(ws *websocket.Conn, library *playbook.Library) {
	c := ipc.NewConnection(ws, nil)
	s := session.New(c, library)
	c.RegisterHandler(ipc.TypeHello, s.HandleHello)
	c.RegisterHandler(ipc.TypeBuildPlay, s.HandleBuildPlay)
	c.RegisterHandler(ipc.TypeSyncAssignment, s.HandleSyncAssignment)
	c.RegisterHandler(ipc.TypeRecommend, s.HandleRecommend)
	c.RegisterHandler(ipc.TypeGeneratePlaybook, s.HandleGeneratePlaybook)
	c.ReadLoop()
}
