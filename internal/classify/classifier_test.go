package classify

import "testing"

func testRules() []Rule {
	return []Rule{
		{Category: "Banking", Needles: []string{"bank", "chase", "hdfc"}},
		{Category: "E-Commerce", Needles: []string{"amazon", "ebay", "shop"}},
		{Category: "Email", Needles: []string{"gmail", "mail"}},
	}
}

func TestClassify(t *testing.T) {
	c := New(testRules())

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "substring match", in: "amazon.in", want: "E-Commerce"},
		{name: "multi-word", in: "Chase Bank", want: "Banking"},
		{name: "case insensitive", in: "HDFC NetBanking", want: "Banking"},
		{name: "trimmed", in: "  ebay  ", want: "E-Commerce"},
		{name: "empty", in: "", want: Uncategorized},
		{name: "whitespace only", in: "   ", want: Uncategorized},
		{name: "no match", in: "example.org", want: Uncategorized},
		// "bankmail" matches Banking and Email; table order is the tie-break.
		{name: "table order tie-break", in: "bankmail", want: "Banking"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Classify(tc.in); got != tc.want {
				t.Errorf("Classify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNew_OwnsRules(t *testing.T) {
	rules := testRules()
	c := New(rules)
	rules[0].Needles[0] = "mutated"
	if got := c.Classify("mybank"); got != "Banking" {
		t.Errorf("Classify after caller mutation = %q, want %q", got, "Banking")
	}
}

func TestClassify_EmptyTable(t *testing.T) {
	c := New(nil)
	if got := c.Classify("anything"); got != Uncategorized {
		t.Errorf("Classify with empty table = %q, want %q", got, Uncategorized)
	}
}
