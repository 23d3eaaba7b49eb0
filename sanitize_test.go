package main

import "testing"

func TestCleanString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "buy milk", "buy milk"},
		{"trims whitespace", "  buy milk \n", "buy milk"},
		{"strips tags", "<b>urgent</b> task", "urgent task"},
		{"strips script", `<script>alert("x")</script>hello`, "hello"},
		{"escapes angle brackets", "1 < 2 > 0", "1 &lt; 2 &gt; 0"},
		{"escapes ampersand", "fish & chips", "fish &amp; chips"},
		{"escapes quotes", `it's "fine"`, "it&#39;s &#34;fine&#34;"},
		{"empty", "   ", ""},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := cleanString(test.in); got != test.want {
				t.Errorf("cleanString(%q) = %q, want %q", test.in, got, test.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()
	valid := []string{"a@b.com", "user.name+tag@example.co.uk", "x@localhost"}
	invalid := []string{"", "plain", "@no-user.com", "spaces in@mail.com", "a@b@c"}

	for _, s := range valid {
		if !isValidEmail(s) {
			t.Errorf("isValidEmail(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if isValidEmail(s) {
			t.Errorf("isValidEmail(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"2026-09-01", true},
		{"2026-02-29", false},
		{"2026-02-30", false},
		{"2026-9-1", false},
		{"01-09-2026", false},
		{"tomorrow", false},
	}
	for _, test := range tests {
		if got := isValidDate(test.in); got != test.want {
			t.Errorf("isValidDate(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestIsValidColor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want bool
	}{
		{"#3B82F6", true},
		{"#abcdef", true},
		{"#ABC", false},
		{"3B82F6", false},
		{"#3B82F6FF", false},
		{"#GGGGGG", false},
		{"", false},
	}
	for _, test := range tests {
		if got := isValidColor(test.in); got != test.want {
			t.Errorf("isValidColor(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestIsValidLength(t *testing.T) {
	t.Parallel()
	if !isValidLength("abc", 1, 3) {
		t.Error("3 chars rejected within 1..3")
	}
	if isValidLength("", 1, 3) {
		t.Error("empty accepted with min 1")
	}
	if isValidLength("abcd", 1, 3) {
		t.Error("4 chars accepted with max 3")
	}
}
