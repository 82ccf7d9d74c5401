// internal/pipeline/pipeline.go
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"profseq-core/align"
	"profseq-core/alphabet"
	"profseq-core/fasta"
	"profseq-core/profile"
	"profseq-core/score"
)

// Config controls the alignment pipeline.
type Config struct {
	Threads int  // worker goroutines; 0 = all CPUs
	Sort    bool // deliver results in input order
	Render  bool // fill the gapped rows of Aligned
	Logger  *slog.Logger
}

// Aligned is one finished alignment.
type Aligned struct {
	Index      int // 0-based position across all input files
	SourceFile string
	ID         string
	Seq        alphabet.Seq
	Result     align.Result
	ProfileRow string
	SeqRow     string
}

type job struct {
	index  int
	rec    fasta.Record
	source string
}

// ForEachAlignment streams records from seqFiles, aligns each against prof
// with s, and calls visit from the calling goroutine. Gap characters are
// removed from input sequences before encoding. It returns the first error
// from reading, encoding or visit, or the context error.
func ForEachAlignment(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	prof *profile.Profile,
	s score.Scheme,
	visit func(Aligned) error,
) error {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	a := prof.Alphabet

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	jobs := make(chan job, threads*2)
	results := make(chan Aligned, threads*2)

	// Feed work
	g.Go(func() error {
		defer close(jobs)
		idx := 0
		for _, path := range seqFiles {
			log.Debug("reading sequences", "file", path)
			err := fasta.StreamPathCtx(gctx, path, func(r fasta.Record) error {
				select {
				case jobs <- job{index: idx, rec: r, source: path}:
					idx++
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
			if err != nil {
				return err
			}
		}
		log.Debug("all sequences queued", "count", idx)
		return nil
	})

	// Workers
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		g.Go(func() error {
			defer wg.Done()
			for j := range jobs {
				seq, err := a.Encode(j.rec.ID, ungap(j.rec.Seq))
				if err != nil {
					return fmt.Errorf("%s: %w", j.source, err)
				}
				out := Aligned{Index: j.index, SourceFile: j.source, ID: j.rec.ID, Seq: seq}
				out.Result = align.Global(s, prof, seq)
				if cfg.Render {
					out.ProfileRow, out.SeqRow = out.Result.Render(a, prof, seq)
				}
				select {
				case results <- out:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect
	var (
		verr    error
		next    int
		pending = map[int]Aligned{}
	)
	deliver := func(r Aligned) {
		if verr != nil {
			return
		}
		if err := visit(r); err != nil {
			verr = err
			cancel()
		}
	}
	for r := range results {
		if !cfg.Sort {
			deliver(r)
			continue
		}
		pending[r.Index] = r
		for {
			p, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			deliver(p)
		}
	}

	gerr := g.Wait()
	if verr != nil {
		return verr
	}
	return gerr
}

func ungap(b []byte) []byte {
	if bytes.IndexAny(b, "-.") < 0 {
		return b
	}
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c != '-' && c != '.' {
			out = append(out, c)
		}
	}
	return out
}
