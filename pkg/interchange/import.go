package interchange

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"meetgrid/core/model"
	"meetgrid/core/schedule"
	"meetgrid/pkg/export"
)

// ErrMissingHeader is returned when a file lacks the required day and hour
// columns.
var ErrMissingHeader = errors.New("missing day/hour header columns")

// ReadSchedule parses one delimited schedule from r. The header row must name
// day and hour columns; username is optional and falls back to fallbackName.
// Any malformed or off-grid data row fails the whole read, so a file either
// yields a complete schedule or nothing. A file with a header but no data
// rows returns a nil schedule and no error: the caller skips it.
func ReadSchedule(r io.Reader, delimiter rune, fallbackName string) (string, *schedule.Schedule, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	dayIdx, okDay := cols["day"]
	hourIdx, okHour := cols["hour"]
	if !okDay || !okHour {
		return "", nil, ErrMissingHeader
	}
	userIdx, hasUser := cols["username"]

	name := fallbackName
	sched := schedule.New()
	rows := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", nil, fmt.Errorf("read row: %w", err)
		}
		if len(rec) <= dayIdx || len(rec) <= hourIdx {
			return "", nil, fmt.Errorf("row %d: missing fields", rows+2)
		}
		if hasUser && rows == 0 && len(rec) > userIdx && rec[userIdx] != "" {
			name = rec[userIdx]
		}
		day, err := strconv.Atoi(strings.TrimSpace(rec[dayIdx]))
		if err != nil {
			return "", nil, fmt.Errorf("row %d: bad day: %w", rows+2, err)
		}
		hour, err := strconv.Atoi(strings.TrimSpace(rec[hourIdx]))
		if err != nil {
			return "", nil, fmt.Errorf("row %d: bad hour: %w", rows+2, err)
		}
		sl := model.Slot{Day: day, Hour: hour}
		if !sl.Valid() {
			return "", nil, fmt.Errorf("row %d: %w: day=%d hour=%d", rows+2, schedule.ErrSlotOutOfRange, day, hour)
		}
		if err := sched.SetRange(day, hour, hour, true); err != nil {
			return "", nil, err
		}
		rows++
	}
	if rows == 0 {
		return "", nil, nil
	}
	return name, sched, nil
}

// LoadFile reads the schedule stored at path. The delimiter is chosen by file
// extension and the participant name falls back to the file's base name with
// the extension stripped.
func LoadFile(path string) (string, *schedule.Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	base := filepath.Base(path)
	fallback := strings.TrimSuffix(base, filepath.Ext(base))
	return ReadSchedule(f, export.DelimiterFor(path), fallback)
}

// FileResult reports the outcome of loading one file in a batch.
type FileResult struct {
	Path        string
	Participant string
	Schedule    *schedule.Schedule
	Err         error
}

// Skipped reports whether the file parsed cleanly but contributed no
// participant (header only, zero data rows).
func (r FileResult) Skipped() bool {
	return r.Err == nil && r.Schedule == nil
}

// LoadFiles loads each file independently. A failure is recorded in that
// file's result and never stops the rest of the batch; collision handling is
// the roster's concern and happens in file order at insertion time.
func LoadFiles(paths []string) []FileResult {
	results := make([]FileResult, 0, len(paths))
	for _, p := range paths {
		name, sched, err := LoadFile(p)
		results = append(results, FileResult{
			Path:        p,
			Participant: name,
			Schedule:    sched,
			Err:         err,
		})
	}
	return results
}
