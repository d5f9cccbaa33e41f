package radio

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// wireFrequency is the structured form shared by the JSON and YAML encodings.
type wireFrequency struct {
	Left          uint16 `json:"left" yaml:"left"`
	Right         uint16 `json:"right" yaml:"right"`
	Is25kHzSpaced bool   `json:"is_25_khz_spaced" yaml:"is_25_khz_spaced"`
}

func (f Frequency) wire() wireFrequency {
	return wireFrequency{Left: f.left, Right: f.right, Is25kHzSpaced: f.is25kHz}
}

// fromWire validates decoded parts. The decoded spacing flag is discarded
// and recomputed.
func fromWire(w wireFrequency) (Frequency, error) {
	f, err := New(w.Left, w.Right)
	if err != nil {
		return Frequency{}, fmt.Errorf("decode frequency %d/%d: %w", w.Left, w.Right, err)
	}
	return f, nil
}

// MarshalJSON implements json.Marshaler.
func (f Frequency) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.wire())
}

// UnmarshalJSON implements json.Unmarshaler. It accepts the object form
// produced by MarshalJSON or a string in "LLL.RRR" form.
func (f *Frequency) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return f.UnmarshalText([]byte(s))
	}

	var w wireFrequency
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	v, err := fromWire(w)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalYAML implements yaml.Marshaler (gopkg.in/yaml.v2).
func (f Frequency) MarshalYAML() (interface{}, error) {
	return f.wire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler (gopkg.in/yaml.v2). Scalars are
// parsed as "LLL.RRR"; mappings use the keys written by MarshalYAML. Write
// scalars quoted so the YAML resolver keeps trailing zeros.
func (f *Frequency) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		return f.UnmarshalText([]byte(s))
	}

	var w wireFrequency
	if err := unmarshal(&w); err != nil {
		return err
	}
	v, err := fromWire(w)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalText implements encoding.TextMarshaler using the "LLL.RRR" form.
func (f Frequency) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Frequency) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("decode frequency %q: %w", text, err)
	}
	*f = v
	return nil
}

// Set implements flag.Value.
func (f *Frequency) Set(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type implements pflag.Value.
func (f *Frequency) Type() string {
	return "frequency"
}
