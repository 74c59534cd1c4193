package langid

import "testing"

func TestClassify_Scripts(t *testing.T) {
	c := New()

	cases := []struct {
		in   string
		want Language
	}{
		{"こんにちは、元気ですか", Japanese},
		{"カタカナだけでもいける", Japanese},
		{"你好吗 今天天气不错", Chinese},
		{"漢字", Chinese},
		{"bonjour tout le monde, c'est très cool", French},
		{"hola como estas, muy bueno", Spanish},
		{"what are you doing, this is great", English},
	}
	for _, tc := range cases {
		got, ok := c.Classify(tc.in)
		if !ok || got != tc.want {
			t.Fatalf("Classify(%q) = (%v, %v), want (%v, true)", tc.in, got, ok, tc.want)
		}
	}
}

func TestClassify_AmbiguousAndEmpty(t *testing.T) {
	c := New()

	for _, in := range []string{"", "   ", "!!!???", "zzzz qqqq", "la la la"} {
		if got, ok := c.Classify(in); ok {
			t.Fatalf("Classify(%q) = (%v, true), want Unknown", in, got)
		}
	}
}

func TestClassify_RestrictedCandidates(t *testing.T) {
	c := New(English, French)

	// Han text cannot resolve when Chinese is not a candidate
	if got, ok := c.Classify("今天天气不错"); ok {
		t.Fatalf("restricted Classify = (%v, true), want Unknown", got)
	}
	if got, ok := c.Classify("bonjour tout le monde, c'est très cool"); !ok || got != French {
		t.Fatalf("restricted Classify = (%v, %v), want French", got, ok)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := New()
	const in = "merci beaucoup pour le cadeau"

	first, ok := c.Classify(in)
	if !ok {
		t.Fatalf("Classify(%q) not ok", in)
	}
	for i := 0; i < 50; i++ {
		if got, _ := c.Classify(in); got != first {
			t.Fatalf("Classify unstable: %v then %v", first, got)
		}
	}
}

func TestLanguage_StringAndTag(t *testing.T) {
	if English.String() != "English" || Unknown.String() != "Unknown" {
		t.Fatalf("unexpected String values")
	}
	if French.Tag().String() != "fr" {
		t.Fatalf("French tag = %s", French.Tag())
	}
	if Unknown.Tag().String() != "und" {
		t.Fatalf("Unknown tag = %s", Unknown.Tag())
	}
}
