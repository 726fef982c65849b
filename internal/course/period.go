package course

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the YYYY-MM-DD form used for study periods.
const DateLayout = "2006-01-02"

// Period is a start/end pair.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PlaceholderStudyPeriod returns today and tomorrow in UTC.
//
// The registration site exposes no study dates on the class row, so this is
// a stand-in the frontend relies on to anchor its calendar view. It does not
// describe the real teaching period.
func PlaceholderStudyPeriod(now time.Time) Period {
	start := now.UTC()
	return Period{
		Start: start.Format(DateLayout),
		End:   start.Add(24 * time.Hour).Format(DateLayout),
	}
}

// RegistrationPeriod holds the registration deadline cell. When the cell
// contains whitespace its first two tokens become start and end; otherwise the
// raw text is kept as is and encoded as a bare JSON string. Raw always keeps
// the full cell, including any tokens past the second.
type RegistrationPeriod struct {
	Period
	Raw   string
	Split bool
}

// NewRegistrationPeriod splits raw into whitespace-separated tokens. It
// returns nil for an empty cell.
func NewRegistrationPeriod(raw string) *RegistrationPeriod {
	raw = strings.TrimSpace(raw)
	tokens := strings.Fields(raw)
	switch len(tokens) {
	case 0:
		return nil
	case 1:
		return &RegistrationPeriod{Raw: raw}
	}

	return &RegistrationPeriod{
		Period: Period{
			Start: tokens[0],
			End:   tokens[1],
		},
		Raw:   raw,
		Split: true,
	}
}

// MarshalJSON encodes a split period as {start,end} and anything else as a string.
func (p RegistrationPeriod) MarshalJSON() ([]byte, error) {
	if p.Split {
		return json.Marshal(p.Period)
	}
	return json.Marshal(p.Raw)
}

// UnmarshalJSON accepts either encoding produced by MarshalJSON.
func (p *RegistrationPeriod) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*p = RegistrationPeriod{Raw: raw}
		return nil
	}

	var period Period
	if err := json.Unmarshal(data, &period); err != nil {
		return fmt.Errorf("decoding registration period: %w", err)
	}
	*p = RegistrationPeriod{
		Period: period,
		Raw:    strings.TrimSpace(period.Start + " " + period.End),
		Split:  true,
	}
	return nil
}

// String returns the period as it appeared upstream.
func (p RegistrationPeriod) String() string {
	return p.Raw
}
