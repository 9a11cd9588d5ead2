package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		def      int
		expected int
		wantErr  bool
	}{
		{name: "plain number", input: "42\n", expected: 42},
		{name: "empty uses default", input: "\n", def: 7, expected: 7},
		{name: "not a number", input: "abc\n", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetInt(rdr(tc.input), "Age?", tc.def, &out)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestGetFloat(t *testing.T) {
	var out bytes.Buffer
	got, err := GetFloat(rdr("12.5\n"), "Weight?", 0, &out)
	require.NoError(t, err)
	require.Equal(t, 12.5, got)

	got, err = GetFloat(rdr("\n"), "Weight?", 3.5, &out)
	require.NoError(t, err)
	require.Equal(t, 3.5, got)
}

func TestGetChoice(t *testing.T) {
	allowed := []string{"PASSIVE", "ACTIVE"}

	var out bytes.Buffer
	got, err := GetChoice(rdr("active\n"), "Style?", allowed, "PASSIVE", &out)
	require.NoError(t, err)
	require.Equal(t, "ACTIVE", got)

	got, err = GetChoice(rdr("\n"), "Style?", allowed, "PASSIVE", &out)
	require.NoError(t, err)
	require.Equal(t, "PASSIVE", got)

	_, err = GetChoice(rdr("bogus\n"), "Style?", allowed, "PASSIVE", &out)
	require.Error(t, err)
}

func TestGetBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		def      bool
		expected bool
		wantErr  bool
	}{
		{name: "yes", input: "y\n", expected: true},
		{name: "no", input: "no\n", expected: false},
		{name: "empty uses default", input: "\n", def: true, expected: true},
		{name: "garbage", input: "maybe\n", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetBool(rdr(tc.input), "Tax saving?", tc.def, &out)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}
