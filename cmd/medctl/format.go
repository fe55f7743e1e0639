package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func hours(f *float64) string {
	if f == nil {
		return "as needed"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64) + "h"
}

func stamp(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.UTC().Format("2006-01-02 15:04")
}
