package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"math"
	"strings"

	"dailytrack/internal/domain"
)

// LoadStatus describes what a load found under a mapping's key.
type LoadStatus int

const (
	// LoadEmpty means the key was absent or unreadable.
	LoadEmpty LoadStatus = iota
	// LoadMalformed means the stored value could not be decoded; the mapping
	// starts empty.
	LoadMalformed
	// LoadOK means the stored mapping was decoded.
	LoadOK
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadMalformed:
		return "malformed"
	default:
		return "empty"
	}
}

// dayLog is a mapping of date key to records, most recent first, persisted
// as one JSON document under a fixed key.
type dayLog[T any] struct {
	kv     domain.KeyValueStore
	key    string
	groups map[string][]T
}

func loadDayLog[T any](ctx context.Context, kv domain.KeyValueStore, key string) (*dayLog[T], LoadStatus) {
	l := &dayLog[T]{kv: kv, key: key, groups: map[string][]T{}}

	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		log.Printf("load %s: %v", key, err)
		return l, LoadEmpty
	}
	if !found || raw == "" {
		return l, LoadEmpty
	}

	var groups map[string][]T
	if err := json.Unmarshal([]byte(raw), &groups); err != nil {
		log.Printf("load %s: discarding malformed data: %v", key, err)
		return l, LoadMalformed
	}
	// A stored null stays nil so it is written back as null.
	l.groups = groups
	return l, LoadOK
}

func (l *dayLog[T]) persist(ctx context.Context) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(l.groups); err != nil {
		log.Printf("persist %s: %v", l.key, err)
		return
	}
	raw := strings.TrimSuffix(buf.String(), "\n")
	if err := l.kv.Set(ctx, l.key, raw); err != nil {
		log.Printf("persist %s: %v", l.key, err)
	}
}

func (l *dayLog[T]) prepend(ctx context.Context, day string, rec T) {
	if l.groups == nil {
		l.groups = map[string][]T{}
	}
	group := l.groups[day]
	next := make([]T, 0, len(group)+1)
	next = append(next, rec)
	l.groups[day] = append(next, group...)
	l.persist(ctx)
}

func (l *dayLog[T]) remove(ctx context.Context, day string, index int) {
	group := l.groups[day]
	if index >= 0 && index < len(group) {
		next := make([]T, 0, len(group)-1)
		next = append(next, group[:index]...)
		next = append(next, group[index+1:]...)
		if len(next) == 0 {
			delete(l.groups, day)
		} else {
			l.groups[day] = next
		}
	}
	l.persist(ctx)
}

// group returns a copy of the day's records, never nil.
func (l *dayLog[T]) group(day string) []T {
	out := make([]T, len(l.groups[day]))
	copy(out, l.groups[day])
	return out
}

// cleanText trims s and reports whether anything is left.
func cleanText(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// roundCount rounds a non-negative finite amount to the nearest integer.
func roundCount(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > math.MaxInt32 {
		return 0, false
	}
	return int(math.Round(v)), true
}
