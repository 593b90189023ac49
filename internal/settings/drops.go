package settings

import (
	"encoding/json"
	"time"

	"github.com/cristianoliveira/shizuku/internal/logging"
	"github.com/cristianoliveira/shizuku/internal/storage"
)

const dateLayout = "2006-01-02"

type dropRecord struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DropLog counts completed focus phases per local calendar day.
type DropLog struct {
	kv storage.Store
}

// NewDropLog returns a DropLog over kv.
func NewDropLog(kv storage.Store) *DropLog {
	return &DropLog{kv: kv}
}

// Today returns the number of drops recorded on now's local date.
// A different date or any read failure counts as zero.
func (d *DropLog) Today(now time.Time) int {
	rec, ok := d.read()
	if !ok || rec.Date != now.Format(dateLayout) || rec.Count < 0 {
		return 0
	}
	return rec.Count
}

// Add records one drop for now's date and returns the new count.
func (d *DropLog) Add(now time.Time) int {
	rec := dropRecord{Date: now.Format(dateLayout), Count: d.Today(now) + 1}
	data, err := json.Marshal(rec)
	if err == nil {
		err = d.kv.Set(KeyDrops, string(data))
	}
	if err != nil {
		logging.Warn("drop log write failed", "error", err)
	}
	return rec.Count
}

func (d *DropLog) read() (dropRecord, bool) {
	raw, ok, err := d.kv.Get(KeyDrops)
	if err != nil || !ok {
		return dropRecord{}, false
	}
	var rec dropRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return dropRecord{}, false
	}
	return rec, true
}
