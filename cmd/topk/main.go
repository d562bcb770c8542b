// Command topk runs the single-process word-count pipeline (spec §4's
// buffered streamer + tokenizer + top-K, without any networking): given a
// directory or a single file, prints its top-K most frequent words.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/logger"
	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/wordcount"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/topk"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/walk"
)

func main() {
	app := cli.NewApp()
	app.Name = "topk"
	app.Usage = "single-process top-K word count over a directory or file"
	app.ArgsUsage = "[directory|file]"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "top-k, k",
			Value: 10,
			Usage: "number of highest-count words to print (words tied with the last one are also printed)",
		},
		cli.IntFlag{
			Name:  "buffer-size, b",
			Value: domain.DefaultStreamBufferSize,
			Usage: "tokenizer working buffer size in bytes",
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
	if c.NArg() > 1 {
		cli.ShowAppHelp(c)
		return cli.NewExitError("usage: topk [directory|file]", 1)
	}
	target := "."
	if c.NArg() == 1 {
		target = c.Args().Get(0)
	}

	log, err := logger.New()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer log.Close()

	streamer := wordcount.NewBufferedStreamer(c.Int("buffer-size"), log)
	counter := wordcount.NewCounter()

	files, err := resolveFiles(target)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	for _, path := range files {
		if err := streamFile(path, streamer, counter); err != nil {
			if errors.Is(err, domain.ErrBufferTooSmall) {
				return cli.NewExitError(err.Error(), 2)
			}
			return cli.NewExitError(err.Error(), 1)
		}
	}

	top := topk.FromWordMap(counter.Map, c.Int("top-k"))
	for _, p := range top.Items() {
		fmt.Fprintf(os.Stdout, "%s\t%d\n", p.Word, p.Count)
	}
	return nil
}

func resolveFiles(target string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, errors.Wrap(domain.ErrDirectoryMissing, err.Error())
	}
	if !info.IsDir() {
		return []string{target}, nil
	}
	return walk.Files(target)
}

func streamFile(path string, streamer *wordcount.BufferedStreamer, counter *wordcount.Counter) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(domain.ErrTransport, err.Error())
	}
	defer f.Close()
	return streamer.Stream(f, counter)
}
