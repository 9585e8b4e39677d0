// Package renderer turns reports into markdown. The cmd layer decides how the
// markdown reaches the terminal (styled or raw).
package renderer

import "time"

// dayLayout is the date format used in rendered tables.
const dayLayout = "2006-01-02"

func day(t time.Time) string { return t.Format(dayLayout) }
