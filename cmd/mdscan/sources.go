package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/julien-sobczak/mdscan/internal/config"
	"github.com/julien-sobczak/mdscan/internal/logger"
	"github.com/julien-sobczak/mdscan/pkg/console"
	"github.com/julien-sobczak/mdscan/pkg/markdown"
)

// Path used for the standard input
const stdinPath = "-"

// Source is a Markdown document read from a file or the standard input.
type Source struct {
	Path string
	Doc  markdown.Document
}

// collectPaths expands the arguments into file paths.
// Directories are walked recursively. No argument means the standard input.
func collectPaths(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{stdinPath}, nil
	}

	configFile := config.CurrentConfig().ConfigFile

	var paths []string
	stdinSeen := false
	for _, arg := range args {
		if arg == stdinPath {
			// The standard input can only be read once
			if !stdinSeen {
				paths = append(paths, arg)
				stdinSeen = true
			}
			continue
		}
		stat, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !stat.IsDir() {
			// Explicit files are always processed
			paths = append(paths, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			relativePath, err := filepath.Rel(arg, path)
			if err != nil {
				return err
			}
			if d.IsDir() {
				if relativePath != "." && configFile.MustExcludeFile(relativePath, true) {
					logger.CurrentLogger().Debugf("Ignoring directory %s", path)
					return filepath.SkipDir
				}
				return nil
			}
			if !configFile.SupportExtension(path) || configFile.MustExcludeFile(relativePath, false) {
				logger.CurrentLogger().Tracef("Ignoring file %s", path)
				return nil
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("unable to walk directory %s: %w", arg, err)
		}
	}
	return paths, nil
}

func readSource(stdin io.Reader, path string) (Source, error) {
	var data []byte
	var err error
	if path == stdinPath {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return Source{}, fmt.Errorf("unable to read %s: %w", path, err)
	}
	return Source{Path: path, Doc: markdown.Document(data)}, nil
}

// processSources reads every source and applies a function on it.
// Sources are processed concurrently but results keep the order of the paths.
func processSources[T any](ctx context.Context, stdin io.Reader, args []string, fn func(Source) (T, error)) ([]T, error) {
	paths, err := collectPaths(args)
	if err != nil {
		return nil, err
	}

	var progress *console.ProgressLog
	if showProgress && len(paths) > 1 {
		progress = console.NewProgressLog(len(paths), console.ShowPercent())
	}

	results := make([]T, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(config.CurrentConfig().Parallel())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logger.CurrentLogger().Debugf("Processing %s...", path)
			source, err := readSource(stdin, path)
			if err != nil {
				return err
			}
			result, err := fn(source)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = result
			if progress != nil {
				progress.Step(path)
			}
			return nil
		})
	}
	err = g.Wait()
	if progress != nil {
		progress.Clear("")
	}
	if err != nil {
		return nil, err
	}
	return results, nil
}
