// Package decode turns a raw upload body into a list of raw records. It
// accepts UTF-8 JSON or CSV, optionally base64-encoded, and is deliberately
// forgiving about JSON shape: an object with an "accounts" array, a bare
// object, and a plain array are all accepted.
package decode

import (
	"bytes"
	"encoding/base64"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gyaneshwarpardhi/vaultaudit/internal/account"
)

// Kind distinguishes the two fatal decode outcomes.
type Kind string

const (
	// KindDecode means the payload could not be base64- or UTF-8-decoded.
	KindDecode Kind = "decode"
	// KindFormat means the payload decoded but is neither recognizable JSON nor CSV.
	KindFormat Kind = "format"
)

// Error is a fatal decode failure, surfaced to the caller with a short
// message plus a details string. Field-level problems inside individual
// records are never an Error; those degrade to absent values downstream.
type Error struct {
	Kind    Kind
	Message string
	Details string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Details)
}

// Records decodes body into raw records. When base64Required is set (the
// caller saw a base64 transfer-encoding header) a failed base64 decode is
// fatal; otherwise base64 is sniffed and plain text is accepted as-is.
func Records(body []byte, base64Required bool) ([]account.RawRecord, error) {
	text, err := payloadText(body, base64Required)
	if err != nil {
		return nil, err
	}
	if recs, ok := fromJSON(text); ok {
		return recs, nil
	}
	recs, csvErr := fromCSV(text)
	if csvErr != nil {
		return nil, &Error{Kind: KindFormat, Message: "Unsupported file format", Details: csvErr.Error()}
	}
	return recs, nil
}

// payloadText resolves optional base64 wrapping and enforces UTF-8.
func payloadText(body []byte, base64Required bool) ([]byte, error) {
	trimmed := bytes.TrimSpace(body)

	if base64Required {
		// MIME transfer encoding may wrap lines; strip all whitespace first.
		decoded, err := base64.StdEncoding.DecodeString(string(bytes.Join(bytes.Fields(trimmed), nil)))
		if err != nil {
			return nil, &Error{Kind: KindDecode, Message: "File decoding failed", Details: err.Error()}
		}
		if !utf8.Valid(decoded) {
			return nil, &Error{Kind: KindDecode, Message: "File decoding failed", Details: "base64 payload is not valid UTF-8"}
		}
		return decoded, nil
	}

	// Sniff base64 only for single-token bodies. The std decoder skips
	// newlines, so without this guard a short CSV whose characters all fall
	// in the base64 alphabet would decode to garbage instead of parsing.
	if !bytes.ContainsAny(trimmed, " \t\r\n") {
		if decoded, err := base64.StdEncoding.DecodeString(string(trimmed)); err == nil {
			if !utf8.Valid(decoded) {
				return nil, &Error{Kind: KindDecode, Message: "File decoding failed", Details: "base64 payload is not valid UTF-8"}
			}
			return decoded, nil
		}
	}

	if !utf8.Valid(body) {
		return nil, &Error{Kind: KindDecode, Message: "File decoding failed", Details: "payload is not valid UTF-8"}
	}
	return body, nil
}

// fromJSON reports ok=false only when text is not valid JSON at all; the
// caller then falls back to CSV. Valid JSON of an unexpected shape yields an
// empty record list, matching the upstream exporter contract.
func fromJSON(text []byte) ([]account.RawRecord, bool) {
	var v interface{}
	if err := json.Unmarshal(text, &v); err != nil {
		return nil, false
	}
	switch val := v.(type) {
	case map[string]interface{}:
		if accounts, ok := val["accounts"].([]interface{}); ok {
			return recordList(accounts), true
		}
		return []account.RawRecord{toRecord(val)}, true
	case []interface{}:
		return recordList(val), true
	default:
		return []account.RawRecord{}, true
	}
}

func recordList(items []interface{}) []account.RawRecord {
	recs := make([]account.RawRecord, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue // non-object entries carry no fields to analyze
		}
		recs = append(recs, toRecord(obj))
	}
	return recs
}

// toRecord flattens a JSON object into string fields. Nested values have no
// aliased field to land in and are dropped.
func toRecord(obj map[string]interface{}) account.RawRecord {
	rec := make(account.RawRecord, len(obj))
	for k, v := range obj {
		switch val := v.(type) {
		case string:
			rec[k] = val
		case float64:
			rec[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			rec[k] = strconv.FormatBool(val)
		}
	}
	return rec
}

// fromCSV reads a header row plus data rows, one record per row.
func fromCSV(text []byte) ([]account.RawRecord, error) {
	r := csv.NewReader(bytes.NewReader(text))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1 // ragged rows lose trailing fields, not the batch
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []account.RawRecord{}, nil
	}
	header := rows[0]
	recs := make([]account.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(account.RawRecord, len(header))
		for i, col := range header {
			col = strings.TrimSpace(col)
			if col == "" || i >= len(row) {
				continue
			}
			rec[col] = row[i]
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
