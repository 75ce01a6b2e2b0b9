package decode

import (
	"encoding/base64"
	"errors"
	"reflect"
	"testing"

	"github.com/gyaneshwarpardhi/vaultaudit/internal/account"
)

func TestRecords_JSONShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want []account.RawRecord
	}{
		{
			name: "object with accounts key",
			body: `{"accounts": [{"service": "gmail"}, {"service": "netflix"}]}`,
			want: []account.RawRecord{{"service": "gmail"}, {"service": "netflix"}},
		},
		{
			name: "bare object wraps into one record",
			body: `{"service": "gmail", "signup_date": "2020-01-01"}`,
			want: []account.RawRecord{{"service": "gmail", "signup_date": "2020-01-01"}},
		},
		{
			name: "plain array",
			body: `[{"Service": "Chase Bank"}]`,
			want: []account.RawRecord{{"Service": "Chase Bank"}},
		},
		{
			name: "scalar values stringified",
			body: `{"service": "gmail", "logins": 42, "mfa": true}`,
			want: []account.RawRecord{{"service": "gmail", "logins": "42", "mfa": "true"}},
		},
		{
			name: "nested values dropped",
			body: `{"service": "gmail", "extra": {"deep": 1}, "tags": ["a"]}`,
			want: []account.RawRecord{{"service": "gmail"}},
		},
		{
			name: "non-object array entries skipped",
			body: `[{"service": "gmail"}, "stray", 7]`,
			want: []account.RawRecord{{"service": "gmail"}},
		},
		{
			name: "unexpected scalar shape yields empty batch",
			body: `12345`,
			want: []account.RawRecord{},
		},
		{
			name: "empty accounts",
			body: `{"accounts": []}`,
			want: []account.RawRecord{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Records([]byte(tc.body), false)
			if err != nil {
				t.Fatalf("Records error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Records = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRecords_CSV(t *testing.T) {
	body := "Service,signup_date,last_login\nChase Bank,2015-01-01,2024-01-01\namazon.in,2023-09-01,\n"
	got, err := Records([]byte(body), false)
	if err != nil {
		t.Fatalf("Records error: %v", err)
	}
	want := []account.RawRecord{
		{"Service": "Chase Bank", "signup_date": "2015-01-01", "last_login": "2024-01-01"},
		{"Service": "amazon.in", "signup_date": "2023-09-01", "last_login": ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Records = %v, want %v", got, want)
	}
}

func TestRecords_CSVRaggedRow(t *testing.T) {
	body := "Service,signup_date\nChase Bank\n"
	got, err := Records([]byte(body), false)
	if err != nil {
		t.Fatalf("Records error: %v", err)
	}
	want := []account.RawRecord{{"Service": "Chase Bank"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Records = %v, want %v", got, want)
	}
}

func TestRecords_Base64(t *testing.T) {
	plain := `{"accounts": [{"service": "gmail"}]}`
	body := base64.StdEncoding.EncodeToString([]byte(plain))

	for _, required := range []bool{false, true} {
		got, err := Records([]byte(body), required)
		if err != nil {
			t.Fatalf("Records(required=%v) error: %v", required, err)
		}
		if len(got) != 1 || got[0]["service"] != "gmail" {
			t.Errorf("Records(required=%v) = %v, want one gmail record", required, got)
		}
	}
}

func TestRecords_Base64AlphabetCSVStaysCSV(t *testing.T) {
	// Every character here is in the base64 alphabet and the std decoder
	// skips newlines, but a multi-line body must be read as CSV.
	body := "Service\ngmail\nabcd\n"
	got, err := Records([]byte(body), false)
	if err != nil {
		t.Fatalf("Records error: %v", err)
	}
	want := []account.RawRecord{{"Service": "gmail"}, {"Service": "abcd"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Records = %v, want %v", got, want)
	}
}

func TestRecords_Base64RequiredWithWrappedLines(t *testing.T) {
	plain := `{"accounts": [{"service": "gmail"}, {"service": "netflix"}]}`
	encoded := base64.StdEncoding.EncodeToString([]byte(plain))
	wrapped := encoded[:20] + "\r\n" + encoded[20:40] + "\n" + encoded[40:]

	got, err := Records([]byte(wrapped), true)
	if err != nil {
		t.Fatalf("Records error: %v", err)
	}
	if len(got) != 2 || got[0]["service"] != "gmail" {
		t.Errorf("Records = %v, want gmail and netflix records", got)
	}
}

func TestRecords_Errors(t *testing.T) {
	cases := []struct {
		name           string
		body           []byte
		base64Required bool
		wantKind       Kind
	}{
		{
			name:     "neither JSON nor CSV",
			body:     []byte(`{"unterminated`),
			wantKind: KindFormat,
		},
		{
			name:     "not UTF-8",
			body:     []byte{0xff, 0xfe, 0xfd},
			wantKind: KindDecode,
		},
		{
			name:     "base64 of non-UTF-8 bytes",
			body:     []byte(base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe, 0xfd, 0xfc})),
			wantKind: KindDecode,
		},
		{
			name:           "base64 required but body is not base64",
			body:           []byte(`{"service": "gmail"}`),
			base64Required: true,
			wantKind:       KindDecode,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Records(tc.body, tc.base64Required)
			var dErr *Error
			if !errors.As(err, &dErr) {
				t.Fatalf("Records error = %v, want *decode.Error", err)
			}
			if dErr.Kind != tc.wantKind {
				t.Errorf("Kind = %q, want %q", dErr.Kind, tc.wantKind)
			}
			if dErr.Message == "" || dErr.Details == "" {
				t.Errorf("error envelope incomplete: %+v", dErr)
			}
		})
	}
}
