package helper

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"Matematika Dasar", 100, "matematika-dasar"},
		{"  Fisika   Kuantum  ", 100, "fisika-kuantum"},
		{"Éléctronique Avancée", 100, "electronique-avancee"},
		{"C++ & Go!!", 100, "c-go"},
		{"---", 100, "item"},
		{"", 100, "item"},
		{"Bahasa Indonesia", 7, "bahasa"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in, tc.maxLen); got != tc.want {
			t.Errorf("Slugify(%q, %d) = %q, want %q", tc.in, tc.maxLen, got, tc.want)
		}
	}
}
