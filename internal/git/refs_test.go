package git

import (
	"reflect"
	"testing"
)

func TestParseRefs(t *testing.T) {
	out := `f3c07e09b5c0c24790c0a17ae0e05eefd9a1b228	HEAD
f3c07e09b5c0c24790c0a17ae0e05eefd9a1b228	refs/heads/main
0f2e1cb072fba16e07a15a0450cd7fd651d4ac5e	refs/heads/dev
8a19b7d18f46b60e79ca8e3a47c87f4ba4c48e46	refs/tags/v1.0.0
3bb16fe7ab5ed7c12a287d10a1af30c789b27b29	refs/tags/v1.0.0^{}

bad line
`
	refs := ParseRefs(out)
	want := Refs{
		"refs/heads/main":  "f3c07e09b5c0c24790c0a17ae0e05eefd9a1b228",
		"refs/heads/dev":   "0f2e1cb072fba16e07a15a0450cd7fd651d4ac5e",
		"refs/tags/v1.0.0": "8a19b7d18f46b60e79ca8e3a47c87f4ba4c48e46",
	}
	if !reflect.DeepEqual(refs, want) {
		t.Errorf("ParseRefs = %v, want %v", refs, want)
	}
}

func TestCompareRefs(t *testing.T) {
	src := Refs{
		"refs/heads/main":  "aaa",
		"refs/heads/dev":   "bbb",
		"refs/tags/v1.0.0": "ccc",
	}

	t.Run("in sync", func(t *testing.T) {
		diff := CompareRefs(src, Refs{
			"refs/heads/main":  "aaa",
			"refs/heads/dev":   "bbb",
			"refs/tags/v1.0.0": "ccc",
		})
		if !diff.InSync() {
			t.Errorf("expected in sync, got %+v", diff)
		}
	})

	t.Run("divergent", func(t *testing.T) {
		diff := CompareRefs(src, Refs{
			"refs/heads/main":  "aaa",
			"refs/heads/dev":   "zzz",
			"refs/tags/v2.0.0": "ddd",
		})
		if diff.InSync() {
			t.Fatal("expected divergence")
		}
		if !reflect.DeepEqual(diff.Missing, []string{"refs/tags/v1.0.0"}) {
			t.Errorf("Missing = %v", diff.Missing)
		}
		if !reflect.DeepEqual(diff.Changed, []string{"refs/heads/dev"}) {
			t.Errorf("Changed = %v", diff.Changed)
		}
		if !reflect.DeepEqual(diff.Extra, []string{"refs/tags/v2.0.0"}) {
			t.Errorf("Extra = %v", diff.Extra)
		}
		if diff.SrcCount != 3 || diff.DstCount != 3 {
			t.Errorf("counts = %d/%d", diff.SrcCount, diff.DstCount)
		}
	})

	t.Run("empty target", func(t *testing.T) {
		diff := CompareRefs(src, Refs{})
		if len(diff.Missing) != 3 {
			t.Errorf("Missing = %v", diff.Missing)
		}
	})
}
