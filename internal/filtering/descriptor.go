package filtering

import (
	"encoding/json"
	"io"
)

// Descriptor is the browser runtime summary of a filter.
//
// Encoded with encoding/json the client expression is an ordinary string. The
// script form produced by AppendScript embeds it as raw code instead, which is
// what the page runtime evaluates.
type Descriptor struct {
	ID     string     `json:"id"`
	Fnc    ClientExpr `json:"fnc"`
	Type   Kind       `json:"type"`
	Values []string   `json:"values"`
}

// AppendScript appends the script form of d to dst.
func (d Descriptor) AppendScript(dst []byte) []byte {
	dst = append(dst, `{"id":`...)
	dst = appendString(dst, d.ID)
	dst = append(dst, `,"fnc":`...)
	dst = append(dst, d.Fnc...)
	dst = append(dst, `,"type":`...)
	dst = appendString(dst, string(d.Type))
	dst = append(dst, `,"values":[`...)
	for i, v := range d.Values {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendString(dst, v)
	}
	return append(dst, "]}"...)
}

// AppendScript appends the descriptors as an array literal to dst.
func AppendScript(dst []byte, descriptors []Descriptor) []byte {
	dst = append(dst, '[')
	for i, d := range descriptors {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = d.AppendScript(dst)
	}
	return append(dst, ']')
}

// WriteScript writes the descriptors as an array literal to w.
func WriteScript(w io.Writer, descriptors []Descriptor) error {
	_, err := w.Write(AppendScript(nil, descriptors))
	return err
}

func appendString(dst []byte, s string) []byte {
	// Marshalling a string cannot fail.
	b, _ := json.Marshal(s)
	return append(dst, b...)
}
