package utils

import (
	"bytes"
	stdjson "encoding/json"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJSON serializa o valor com indentação por tabulação.
// O jsoniter só indenta com espaços, então a indentação fica com encoding/json.
func PrettyJSON(in any) ([]byte, error) {
	buffer, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := stdjson.Indent(&out, buffer, "", "\t"); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// JSONWriter adapta um valor serializado para io.WriterTo
func JSONWriter(in any) (io.WriterTo, error) {
	buffer, err := PrettyJSON(in)
	if err != nil {
		return nil, err
	}

	buffer = append(buffer, '\n')
	return bytes.NewBuffer(buffer), nil
}
