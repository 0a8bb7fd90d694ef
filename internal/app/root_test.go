package app

import (
	"reflect"
	"testing"
)

func TestParseBookIDs(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"5", []int{5}},
		{"1,2,3", []int{1, 2, 3}},
		{"1, 2, 3", []int{1, 2, 3}},
		{" 7 ,8", []int{7, 8}},
		{"1,,2", []int{1, 2}},
		{"", nil},
	}
	for _, c := range cases {
		got, err := parseBookIDs(c.in)
		if err != nil {
			t.Errorf("parseBookIDs(%q): %v", c.in, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("parseBookIDs(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseBookIDs_Invalid(t *testing.T) {
	for _, in := range []string{"abc", "1,x,3", "1.5", "5 6"} {
		if _, err := parseBookIDs(in); err == nil {
			t.Errorf("parseBookIDs(%q): expected error", in)
		}
	}
}
