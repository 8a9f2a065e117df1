package utils

import "testing"

func TestSanitizeHeaderFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.pdf"},
		{"  padded.txt  ", "padded.txt"},
		{"bad\r\nname.txt", "badname.txt"},
		{`quo"ted.txt`, "quoted.txt"},
		{"", "download"},
	}
	for _, tc := range cases {
		if got := SanitizeHeaderFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeHeaderFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
