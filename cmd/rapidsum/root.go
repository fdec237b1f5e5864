package main

import (
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/panjf2000/ants"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sosozhuang/rapidhash"
)

type options struct {
	seed    uint64
	workers int
	verbose bool
}

func newRootCommand(fs afero.Fs, out io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "rapidsum [file ...]",
		Short: "print rapidhash fingerprints of files or standard input",
		Long: `rapidsum prints the 64-bit rapidhash fingerprint of each named file,
or of standard input when no files are given. Fingerprints are stable
across platforms for a given seed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(fs, out, cmd.InOrStdin(), opts, args)
		},
	}
	cmd.Flags().Uint64Var(&opts.seed, "seed", rapidhash.DefaultSeed, "hash family seed")
	cmd.Flags().IntVar(&opts.workers, "workers", runtime.NumCPU(), "number of files hashed concurrently")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log per-file progress")
	return cmd
}

func run(fs afero.Fs, out io.Writer, stdin io.Reader, opts *options, args []string) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	if len(args) == 0 {
		d := rapidhash.NewSeeded(opts.seed)
		if _, err := io.Copy(d, stdin); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		fmt.Fprintf(out, "%016x  -\n", d.Sum64())
		return nil
	}

	type result struct {
		sum uint64
		err error
	}
	results := make([]result, len(args))

	pool, err := ants.NewPool(opts.workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, path := range args {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			log.Debugf("hashing %s", path)
			sum, err := hashFile(fs, path, opts.seed)
			results[i] = result{sum: sum, err: err}
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			results[i] = result{err: fmt.Errorf("submit task: %w", err)}
		}
	}
	wg.Wait()

	failed := 0
	for i, path := range args {
		if results[i].err != nil {
			log.Errorf("skipping %s: %v", path, results[i].err)
			failed++
			continue
		}
		fmt.Fprintf(out, "%016x  %s\n", results[i].sum, path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func hashFile(fs afero.Fs, path string, seed uint64) (uint64, error) {
	f, err := fs.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	d := rapidhash.NewSeeded(seed)
	if _, err := io.Copy(d, f); err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	return d.Sum64(), nil
}
