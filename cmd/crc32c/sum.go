package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/hupe1980/crc32c"
	"golang.org/x/sync/errgroup"
)

// sumFiles checksums every path concurrently, then prints results in input
// order so output is stable regardless of completion order.
func sumFiles(w io.Writer, paths []string) error {
	sums := make([]uint32, len(paths))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			sum, err := sumFile(path)
			if err != nil {
				return err
			}
			sums[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range paths {
		fmt.Fprintf(w, "%08x  %s\n", sums[i], path)
	}
	return nil
}

func sumFile(path string) (uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	return crc32c.Checksum(data), nil
}

func sumStdin(w io.Writer) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	fmt.Fprintf(w, "%08x  -\n", crc32c.Checksum(data))
	return nil
}
