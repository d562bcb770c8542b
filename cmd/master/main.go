// Command master runs the word-count master controller (spec §4.9, §6):
// walk a directory, fan its bytes out across worker connections, merge
// their responses, print the global top-K.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/distributor"
	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/logger"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/filelist"
	"github.com/baditaflorin/go_topk_wordcount/internal/master"
)

func main() {
	app := cli.NewApp()
	app.Name = "master"
	app.Usage = "word-count master: directory host port [host port]..."
	app.ArgsUsage = "directory host port [host port]..."
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "top-k, k",
			Value: 10,
			Usage: "size of the global top-K to print",
		},
		cli.IntFlag{
			Name:  "queue-capacity, q",
			Value: domain.DefaultQueueCapacity,
			Usage: "per-worker SPSC queue capacity in bytes",
		},
		cli.IntFlag{
			Name:  "buffer-size, b",
			Value: domain.DefaultStreamBufferSize,
			Usage: "reader/sender working buffer size in bytes",
		},
		cli.StringFlag{
			Name:  "status-addr",
			Usage: "if set, serve a GET /status debug endpoint on this address while the job runs",
		},
		cli.StringFlag{
			Name:  "backend",
			Value: "stream",
			Usage: "master/worker protocol: \"stream\" (fan-out a distributed byte stream) or \"filelist\" (round-robin whole files)",
		},
		cli.StringFlag{
			Name:  "distributor",
			Value: string(distributor.ModeFanOut),
			Usage: "stream backend only: \"fanout\" (load-balanced) or \"byfirstletter\" (key-partitioned, at most 36 workers)",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 3 || c.NArg()%2 == 0 {
		cli.ShowAppHelp(c)
		return cli.NewExitError("usage: master directory host port [host port]...", 1)
	}

	root := c.Args().Get(0)
	workerArgs := c.Args()[1:]

	hostPorts := make([][2]string, 0, len(workerArgs)/2)
	for i := 0; i < len(workerArgs); i += 2 {
		hostPorts = append(hostPorts, [2]string{workerArgs[i], workerArgs[i+1]})
	}

	log, err := logger.New()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer log.Close()

	var jobErr error
	switch backend := c.String("backend"); backend {
	case "", "stream":
		ctrl := master.NewController(hostPorts, c.Int("queue-capacity"), c.Int("buffer-size"), distributor.Mode(c.String("distributor")), log)

		if addr := c.String("status-addr"); addr != "" {
			status := master.NewStatusServer(ctrl, log)
			go func() {
				if err := status.ListenAndServe(addr); err != nil {
					log.Warn("master: status endpoint stopped", "error", err)
				}
			}()
		}

		jobErr = ctrl.Run(root, c.Int("top-k"), os.Stdout)
	case "filelist":
		jobErr = filelist.RunMaster(root, hostPorts, c.Int("top-k"), os.Stdout, log)
	default:
		return cli.NewExitError(fmt.Sprintf("unknown backend %q", backend), 1)
	}

	if jobErr != nil {
		log.Error("master: job failed", "error", jobErr)
		var workerErr *master.WorkerError
		if errors.As(jobErr, &workerErr) {
			return cli.NewExitError(jobErr.Error(), 2)
		}
		return cli.NewExitError(jobErr.Error(), 1)
	}
	return nil
}
