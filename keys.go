// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// LoadReport counts what happened to each key offered to a workspace.
type LoadReport struct {
	Read       int
	Inserted   int
	Duplicates int
	Rejected   int
}

func (r LoadReport) String() string {
	return fmt.Sprintf("read %d, inserted %d, duplicates %d, rejected %d",
		r.Read, r.Inserted, r.Duplicates, r.Rejected)
}

func (r *LoadReport) add(ws *Workspace, raw string) {
	r.Read++
	inserted, err := ws.Insert(raw)
	switch {
	case err != nil:
		r.Rejected++
		log.Printf("skipping key: %v", err)
	case inserted:
		r.Inserted++
	default:
		r.Duplicates++
	}
}

// InsertKeys inserts every key in order.
func InsertKeys(ws *Workspace, keys []string) LoadReport {
	var report LoadReport
	for _, raw := range keys {
		report.add(ws, raw)
	}
	return report
}

// LoadKeys reads one key per line from r. Blank lines and lines starting with
// '#' are skipped. A non-nil bar is advanced by the bytes consumed.
func LoadKeys(ws *Workspace, r io.Reader, bar *progressbar.ProgressBar) (LoadReport, error) {
	var report LoadReport

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if bar != nil {
			_ = bar.Add(len(line) + 1)
		}

		key := strings.TrimSpace(line)
		if key == "" || strings.HasPrefix(key, "#") {
			continue
		}
		report.add(ws, key)
	}

	if err := scanner.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// LoadKeysFile loads keys from path, showing a progress bar on stderr when
// the file is at least threshold bytes long. A threshold <= 0 disables it.
func LoadKeysFile(ws *Workspace, path string, threshold int64) (LoadReport, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadReport{}, fmt.Errorf("keys file %s not found", path)
		}
		return LoadReport{}, err
	}
	defer file.Close()

	var bar *progressbar.ProgressBar
	if stat, err := file.Stat(); err == nil && threshold > 0 && stat.Size() >= threshold {
		bar = newLoadProgressBar(stat.Size())
	}

	report, err := LoadKeys(ws, file, bar)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return report, fmt.Errorf("failed to read keys from %s: %w", path, err)
	}
	return report, nil
}

func newLoadProgressBar(size int64) *progressbar.ProgressBar {
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Loading keys..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
