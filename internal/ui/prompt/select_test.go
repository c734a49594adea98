package prompt

import (
	"reflect"
	"testing"
)

func TestFilterOptions(t *testing.T) {
	options := []string{"a51", "conveyor", "wheel-lacer", "a52-test"}

	t.Run("empty query returns all", func(t *testing.T) {
		if got := filterOptions(options, ""); !reflect.DeepEqual(got, options) {
			t.Errorf("got %v", got)
		}
		if got := filterOptions(options, "   "); !reflect.DeepEqual(got, options) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("fuzzy match", func(t *testing.T) {
		got := filterOptions(options, "a5")
		want := map[string]bool{"a51": true, "a52-test": true}
		if len(got) != 2 {
			t.Fatalf("got %v", got)
		}
		for _, g := range got {
			if !want[g] {
				t.Errorf("unexpected match %q", g)
			}
		}
	})

	t.Run("no matches", func(t *testing.T) {
		if got := filterOptions(options, "zzz"); len(got) != 0 {
			t.Errorf("got %v", got)
		}
	})
}
