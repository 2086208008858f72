// Package validate checks inbound wire-transfer records before anything is
// rendered or sent.
package validate

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/bft-labs/wireletter/internal/domain"
)

// RequiredFields lists the keys every submission must carry, in check order.
var RequiredFields = []string{
	"amount",
	"currency",
	"beneficiaryName",
	"beneficiaryAddress",
	"beneficiaryBank",
	"beneficiarySwift",
	"beneficiaryIban",
	"submitterName",
	"submitterEmail",
}

// Check returns a *domain.MissingFieldError naming the first required key
// that is absent or falsy. Field contents are not inspected otherwise.
func Check(record map[string]any, required []string) error {
	for _, name := range required {
		v, ok := record[name]
		if !ok || falsy(v) {
			return &domain.MissingFieldError{Field: name}
		}
	}
	return nil
}

// falsy treats nil, empty strings, false, zero numbers and NaN as absent.
func falsy(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case bool:
		return !t
	case json.Number:
		f, err := t.Float64()
		return err == nil && (f == 0 || math.IsNaN(f))
	case float64:
		return t == 0 || math.IsNaN(t)
	case float32:
		return t == 0 || math.IsNaN(float64(t))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Decode maps a checked record onto a WireTransferRequest.
func Decode(record map[string]any) (domain.WireTransferRequest, error) {
	var req domain.WireTransferRequest
	b, err := json.Marshal(record)
	if err != nil {
		return req, &domain.DecodeError{Err: err}
	}
	if err := json.Unmarshal(b, &req); err != nil {
		return req, &domain.DecodeError{Err: err}
	}
	return req, nil
}

// Request runs Check against RequiredFields and then Decode.
func Request(record map[string]any) (domain.WireTransferRequest, error) {
	if err := Check(record, RequiredFields); err != nil {
		return domain.WireTransferRequest{}, err
	}
	return Decode(record)
}
