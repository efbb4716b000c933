package transcript

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/moringa-school/karibu/pkg/dialog"
)

// Record is one parsed transcript line.
type Record struct {
	At      time.Time
	Speaker dialog.Speaker
	Text    string
}

// ReadFile parses a transcript file back into records.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		at, err := time.Parse(TimeFormat, row[0])
		if err != nil {
			return nil, fmt.Errorf("parse %s record %d: %w", path, i+1, err)
		}
		records = append(records, Record{
			At:      at,
			Speaker: dialog.Speaker(row[1]),
			Text:    row[2],
		})
	}
	return records, nil
}

// Info describes one transcript file on disk.
type Info struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// List returns the transcript files in dir, newest first. A missing
// directory yields an empty list, not an error.
func List(dir string) ([]Info, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var infos []Info
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		infos = append(infos, Info{Name: e.Name(), Size: fi.Size(), ModTime: fi.ModTime()})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ModTime.After(infos[j].ModTime)
	})
	return infos, nil
}
