// Command worker runs one iteration of the word-count worker server (spec
// §4.8, §6): bind port, accept one connection, count, respond, exit.
package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/logger"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/filelist"
	"github.com/baditaflorin/go_topk_wordcount/internal/ports"
	"github.com/baditaflorin/go_topk_wordcount/internal/worker"
)

func main() {
	app := cli.NewApp()
	app.Name = "worker"
	app.Usage = "word-count worker: bind a port, accept one connection, count, respond"
	app.ArgsUsage = "port"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "top-k, k",
			Usage: "if set, respond with only the local top-K lines instead of the full map",
		},
		cli.IntFlag{
			Name:  "buffer-size, b",
			Value: 64 * 1024,
			Usage: "tokenizer working buffer size in bytes",
		},
		cli.StringFlag{
			Name:  "backend",
			Value: "stream",
			Usage: "master/worker protocol: \"stream\" (count a distributed byte stream) or \"filelist\" (open and count whole files named by the master)",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		cli.ShowAppHelp(c)
		return cli.NewExitError("usage: worker port", 1)
	}
	port, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid port %q", c.Args().Get(0)), 1)
	}

	log, err := logger.New()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer log.Close()

	format := worker.FormatGeneral
	if k := c.Int("top-k"); k > 0 {
		format = worker.FormatFilter(k)
	}
	bufSize := c.Int("buffer-size")

	switch backend := c.String("backend"); backend {
	case "", "stream":
		srv := worker.NewServer(format, log)
		srv.BufSize = bufSize
		if err := srv.Run(port); err != nil {
			log.Error("worker: fatal", "error", err)
			return cli.NewExitError(err.Error(), 1)
		}
	case "filelist":
		if err := runFileListBackend(port, bufSize, format, log); err != nil {
			log.Error("worker: fatal", "error", err)
			return cli.NewExitError(err.Error(), 1)
		}
	default:
		return cli.NewExitError(fmt.Sprintf("unknown backend %q", backend), 1)
	}
	return nil
}

// runFileListBackend binds port, accepts exactly one connection, and runs
// one iteration of the file-list worker (internal/filelist.RunWorker):
// the master sends file paths instead of a byte stream, and this worker
// opens and counts each one itself.
func runFileListBackend(port, bufSize int, format worker.FormatFunc, log ports.Logger) error {
	ln, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(port)))
	if err != nil {
		return errors.Wrap(domain.ErrTransport, err.Error())
	}
	defer ln.Close()

	log.Info("worker: listening", "port", port, "backend", "filelist")

	conn, err := ln.Accept()
	if err != nil {
		return errors.Wrap(domain.ErrTransport, err.Error())
	}
	defer conn.Close()

	return filelist.RunWorker(conn, bufSize, format, log)
}
