package classify

import "testing"

func TestClassify_DefaultTerms(t *testing.T) {
	c := New(DefaultTerms())

	cases := []struct {
		in   string
		want string
	}{
		{"cow", TagCow},
		{"Cow", TagCow},
		{"  COW  ", TagCow},
		{"गाय", TagCow},
		{"ఆవు", TagCow},
		{"calf", TagCalf},
		{"बछड़ा", TagCalf},
		{"भैंस", TagBuffalo},
		{"BUFFALO", TagBuffalo},
		{"tractor", ""},
		{"", ""},
		{"  ", ""},
	}
	for _, tc := range cases {
		if got := c.Classify(tc.in); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClassify_InjectedTerms(t *testing.T) {
	c := New(Terms{
		TagCow: {"kuh"},
		"goat": {"bakri", "मेमना"},
	})

	if got := c.Classify("Kuh"); got != TagCow {
		t.Fatalf("expected injected cow term to match, got %q", got)
	}
	if got := c.Classify("bakri"); got != "goat" {
		t.Fatalf("expected custom tag to match, got %q", got)
	}
	// default dictionary must not leak into a custom classifier
	if got := c.Classify("भैंस"); got != "" {
		t.Fatalf("expected no match outside injected terms, got %q", got)
	}
}

func TestClassify_FirstTagWinsOnOverlap(t *testing.T) {
	c := New(Terms{
		TagCow:  {"shared"},
		TagCalf: {"shared"},
	})
	if got := c.Classify("shared"); got != TagCow {
		t.Fatalf("expected canonical ordering to keep cow, got %q", got)
	}
}

func TestClassify_FoldsFullwidthAndComposed(t *testing.T) {
	c := New(DefaultTerms())
	// NFKC maps fullwidth latin to ASCII before folding
	if got := c.Classify("ｃｏｗ"); got != TagCow {
		t.Fatalf("expected fullwidth cow to classify, got %q", got)
	}
}
