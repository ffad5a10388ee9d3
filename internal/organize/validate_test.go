package organize

import "testing"

func TestValidate(t *testing.T) {
	cases := []struct {
		format string
		want   Validity
	}{
		{"", Accepted},
		{"%title", Accepted},
		{"%albumartist/%album/%track - %title", Accepted},
		{"%title{ - %album}", Accepted},
		{"literal only", Accepted},

		{"%titl", Rejected},
		{"%title %bogus", Rejected},
		{"50% off", Rejected},
		{"}x{", Rejected},
		{"{%artist{%album}}", Rejected}, // nested blocks not accepted
		{"{}}", Rejected},

		{"{%album", Intermediate},
		{"%title{", Intermediate},
		{"%", Intermediate},
		{"%title%", Intermediate},
	}

	for _, c := range cases {
		if got := Validate(c.format); got != c.want {
			t.Errorf("Validate(%q) = %v, want %v", c.format, got, c.want)
		}
	}
}

func TestIsValid(t *testing.T) {
	if !New("%artist/%title").IsValid() {
		t.Error("IsValid() = false for a well-formed format")
	}
	if New("%oops").IsValid() {
		t.Error("IsValid() = true for an unknown tag")
	}
}
