// Package filelist implements the simpler master↔worker backend variant
// from spec §4.9: the master round-robins file paths to workers as framed
// messages plus a sentinel, and each worker opens and counts those files
// itself rather than receiving a distributed byte stream. Both this and
// internal/master's streaming backend are legal implementations of the
// same master-side "send work, receive WordMap" interface.
package filelist

import (
	"fmt"
	"io"
	"net"

	"github.com/pkg/errors"

	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/framing"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/topk"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/walk"
	"github.com/baditaflorin/go_topk_wordcount/internal/master"
	"github.com/baditaflorin/go_topk_wordcount/internal/ports"
)

// SendFileLists enumerates root, round-robins the resulting paths across
// conns (already-dialed connections to each worker, in worker order), and
// terminates each with the done sentinel.
func SendFileLists(root string, conns []net.Conn) error {
	files, err := walk.Files(root)
	if err != nil {
		return err
	}

	links := make([]*framing.Conn, len(conns))
	for i, c := range conns {
		links[i] = framing.NewConn(c)
	}

	for i, path := range files {
		link := links[i%len(links)]
		if err := link.WriteMessage([]byte(path)); err != nil {
			return err
		}
	}
	for _, link := range links {
		if err := link.WriteMessage([]byte(domain.DoneSentinel)); err != nil {
			return errors.Wrap(domain.ErrTransport, err.Error())
		}
	}
	return nil
}

// RunMaster drives the full file-list backend job: dial every worker,
// distribute root's files across them, read back each worker's one-shot
// "word\tcount\n" response, merge, and print the global top-K to w.
//
// This is the file-list counterpart to internal/master.Controller.Run;
// worker-side failures are wrapped in *master.WorkerError so cmd/master
// can map them to the same exit code regardless of which backend ran.
func RunMaster(root string, hostPorts [][2]string, k int, w io.Writer, logger ports.Logger) error {
	conns := make([]net.Conn, len(hostPorts))
	addrs := make([]string, len(hostPorts))
	for i, hp := range hostPorts {
		addr := net.JoinHostPort(hp[0], hp[1])
		addrs[i] = addr
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			for _, c := range conns[:i] {
				c.Close()
			}
			return &master.WorkerError{Addr: addr, Err: errors.Wrap(domain.ErrTransport, err.Error())}
		}
		conns[i] = conn
	}
	defer func() {
		for _, c := range conns {
			c.Close()
		}
	}()

	if err := SendFileLists(root, conns); err != nil {
		return err
	}

	merged := make(domain.WordMap)
	for i, conn := range conns {
		link := framing.NewConn(conn)
		body, err := link.ReadMessage()
		if err != nil {
			return &master.WorkerError{Addr: addrs[i], Err: err}
		}

		collector := master.NewCollector()
		collector.Process(body, true)
		if err := collector.Err(); err != nil {
			return &master.WorkerError{Addr: addrs[i], Err: err}
		}
		merged.Merge(collector.Map)

		if logger != nil {
			logger.Info("filelist master: worker responded", "addr", addrs[i], "words", len(collector.Map))
		}
	}

	top := topk.FromWordMap(merged, k)
	for _, p := range top.Items() {
		fmt.Fprintf(w, "%s\t%d\n", p.Word, p.Count)
	}
	return nil
}
