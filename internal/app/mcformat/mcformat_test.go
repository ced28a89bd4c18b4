package mcformat

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", `<span class="mc-text">plain</span>`},
		{"§aHi", `<span class="mc-text mc-ca">Hi</span>`},
		{"&cRed&lBold", `<span class="mc-text mc-cc">Red</span><span class="mc-text mc-cc mc-bold">Bold</span>`},
		{"§ax§ry", `<span class="mc-text mc-ca">x</span><span class="mc-text">y</span>`},
		{"a<b", `<span class="mc-text">a&lt;b</span>`},
		{"", ""},
	}
	for _, c := range cases {
		if got := string(Format(c.in)); got != c.want {
			t.Fatalf("Format(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStrip(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"§aHi", "Hi"},
		{"&cRed&lBold", "RedBold"},
		{"trailing§", "trailing"},
	}
	for _, c := range cases {
		if got := Strip(c.in); got != c.want {
			t.Fatalf("Strip(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
