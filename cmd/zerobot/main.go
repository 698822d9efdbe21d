// Command zerobot is the CLI entry point (A8): it loads the on-disk
// UserConfig, assembles a Bot, dials the configured server, and starts the
// operator console when stdin is a TTY.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/dm-vev/zerobot/zero/console"
	"github.com/dm-vev/zerobot/zero/event"
	"github.com/dm-vev/zerobot/zero/game"
	"github.com/dm-vev/zerobot/zero/netio"

	zerobot "github.com/dm-vev/zerobot"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		name       = flag.String("name", "", "login name (overrides the config file)")
		password   = flag.String("password", "", "login password (overrides the config file)")
		server     = flag.String("server", "", "server host:port (overrides the config file)")
		configPath = flag.String("config", "zerobot.toml", "path to the user config file")
		zone       = flag.String("zone", "", "zone to join (overrides the config file)")
	)
	flag.Parse()

	log := slog.Default()

	uc, err := zerobot.LoadUserConfig(*configPath)
	if err != nil {
		log.Error("load config", "err", err)
		return 1
	}
	if *name != "" {
		uc.Name = *name
	}
	if *password != "" {
		uc.Password = *password
	}
	if *server != "" {
		uc.Server = *server
	}
	if *zone != "" {
		uc.Zone = *zone
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bot, err := zerobot.Config{
		Log:      log,
		CacheDir: uc.CacheDir,
		Settings: game.Settings{},
	}.New()
	if err != nil {
		log.Error("assemble bot", "err", err)
		return 1
	}

	transport := netio.NewRakNetTransport(log)
	conn, err := transport.Dial(ctx, uc.Server)
	if err != nil {
		log.Error("dial server", "err", err, "server", uc.Server)
		bot.Shutdown("dial failed")
		return 1
	}
	defer conn.Close()

	if isatty.IsTerminal(os.Stdin.Fd()) {
		out := &consoleOutput{conn: conn}
		var started bool
		event.Subscribe(bot.Bus, func(event.MapBuilt) {
			if started {
				return
			}
			ctrl, _ := bot.Snapshot()
			if ctrl == nil {
				return
			}
			started = true
			con := console.New(ctrl, out, log)
			go con.Run(ctx)
		})
	}

	<-ctx.Done()
	(&consoleOutput{conn: conn}).SendDisconnect()
	bot.Shutdown("signal received")
	return 0
}

// consoleOutput is a minimal game.OutputSink that serializes chat/ship
// requests as plain frames over the raw transport connection. The actual
// wire encoding belongs to the external network collaborator named in
// spec §6; this is only enough to let /say and /ship reach the socket.
type consoleOutput struct {
	conn  netio.Conn
	chatC chan game.ChatMessage
}

func (o *consoleOutput) RequestShip(ship uint8) {
	_ = o.conn.SendFrame([]byte(fmt.Sprintf("ship:%d", ship)))
}

func (o *consoleOutput) RequestAttach(target uint16) {
	_ = o.conn.SendFrame([]byte(fmt.Sprintf("attach:%d", target)))
}

func (o *consoleOutput) RequestDetach() {
	_ = o.conn.SendFrame([]byte("detach"))
}

func (o *consoleOutput) RequestSpawn() {
	_ = o.conn.SendFrame([]byte("spawn"))
}

func (o *consoleOutput) SendDisconnect() {
	_ = o.conn.SendFrame([]byte("disconnect"))
}

func (o *consoleOutput) Chat() chan<- game.ChatMessage {
	if o.chatC == nil {
		o.chatC = make(chan game.ChatMessage, 16)
		go func() {
			for msg := range o.chatC {
				_ = o.conn.SendFrame([]byte("chat:" + msg.Text))
			}
		}()
	}
	return o.chatC
}
