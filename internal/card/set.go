package card

import "encoding/json"

// ReleaseDateLayout is the layout of Set.ReleaseDate
const ReleaseDateLayout = "2006-01-02"

// Set represents one MTGJSON set list entry
type Set struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	ReleaseDate string `json:"releaseDate"` // ISO date (e.g., 2023-11-17)
	Type        string `json:"type"`

	raw json.RawMessage
}

type setJSON Set

// UnmarshalJSON decodes the known fields and keeps the full upstream object.
func (s *Set) UnmarshalJSON(data []byte) error {
	var decoded setJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*s = Set(decoded)
	s.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON re-emits the upstream object when the set was decoded from one.
func (s Set) MarshalJSON() ([]byte, error) {
	if len(s.raw) > 0 {
		return s.raw, nil
	}
	return json.Marshal(setJSON(s))
}
