package payment

import "testing"

func TestMapTransactionStatus(t *testing.T) {
	cases := []struct {
		status string
		want   Kind
	}{
		{"settlement", KindSuccess},
		{"capture", KindSuccess},
		{"pending", KindPending},
		{"deny", KindError},
		{"cancel", KindError},
		{"expire", KindError},
		{"failure", KindError},
		{"", KindError},
		{"something-new", KindError},
	}
	for _, tc := range cases {
		if got := MapTransactionStatus(tc.status); got != tc.want {
			t.Errorf("MapTransactionStatus(%q) = %s, want %s", tc.status, got, tc.want)
		}
	}
}
