/*
Package numfile loads arrays of integers from text files.

A number file contains base-10 integers separated by white space, including
newlines. Lines starting with '#' are comments.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package numfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global command tracer.
func T() tracing.Trace {
	return gtrace.CommandTracer
}

// maxFileSize guards against accidentally loading huge files.
const maxFileSize = 64 << 20

// Load reads a number file and returns its values in file order.
func Load(name string) ([]int64, error) {
	f, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	values, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	T().P("file", name).Infof("loaded %d values", len(values))
	return values, nil
}

// openFile opens an OS file for reading, checking for error conditions.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: not a regular file", name)
	} else if fi.Size() > maxFileSize {
		return nil, fmt.Errorf("%s: file too large (%d bytes)", name, fi.Size())
	}
	return os.Open(name) // just open for read access
}

// Read parses integers from r.
func Read(r io.Reader) ([]int64, error) {
	var values []int64
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, token := range strings.Fields(line) {
			v, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: not an integer: %q", lineno, token)
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}
