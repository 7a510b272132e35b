package cmd

import (
	"testing"

	"github.com/etnz/fincast"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want fincast.Amount
		err  bool
	}{
		{in: "1000", want: fincast.A(1000)},
		{in: "1,234.56", want: fincast.A(1234.56)},
		{in: "0", want: fincast.A(0)},
		{in: "-50", want: fincast.A(-50)},
		{in: "abc", err: true},
		{in: "", err: true},
	}
	for _, tc := range tests {
		got, err := parseAmount(tc.in)
		if tc.err {
			if err == nil {
				t.Errorf("parseAmount(%q): want error, got %s", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseAmount(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("parseAmount(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in   string
		want fincast.Rate
		err  bool
	}{
		{in: "0.07", want: fincast.R(0.07)},
		{in: "7%", want: fincast.R(0.07)},
		{in: "10.5%", want: fincast.R(0.105)},
		{in: "-2%", want: fincast.R(-0.02)},
		{in: "0", want: fincast.R(0)},
		{in: "seven", err: true},
		{in: "%", err: true},
	}
	for _, tc := range tests {
		got, err := parseRate(tc.in)
		if tc.err {
			if err == nil {
				t.Errorf("parseRate(%q): want error, got %s", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRate(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("parseRate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseYearsList(t *testing.T) {
	got, err := parseYearsList("5, 10,20")
	if err != nil {
		t.Fatal(err)
	}
	want := []int{5, 10, 20}
	if len(got) != len(want) {
		t.Fatalf("parseYearsList = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("parseYearsList[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	if _, err := parseYearsList("5,x,20"); err == nil {
		t.Error("want error for a non-numeric horizon")
	}
}

func TestParseScenarios(t *testing.T) {
	got, err := parseScenarios("cautious:3%, bold:0.12")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d scenarios, want 2", len(got))
	}
	if got[0].Name != "cautious" || !got[0].Rate.Equal(fincast.R(0.03)) {
		t.Errorf("scenario[0] = %+v", got[0])
	}
	if got[1].Name != "bold" || !got[1].Rate.Equal(fincast.R(0.12)) {
		t.Errorf("scenario[1] = %+v", got[1])
	}

	for _, bad := range []string{"noname", ":3%", "a:nope"} {
		if _, err := parseScenarios(bad); err == nil {
			t.Errorf("parseScenarios(%q): want error", bad)
		}
	}
}

func TestParseStrategies(t *testing.T) {
	got, err := parseStrategies("steady:500, aggressive:900")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d strategies, want 2", len(got))
	}
	if got[0].Name != "steady" || !got[0].Contribution.Equal(fincast.A(500)) {
		t.Errorf("strategy[0] = %+v", got[0])
	}
	if got[1].Name != "aggressive" || !got[1].Contribution.Equal(fincast.A(900)) {
		t.Errorf("strategy[1] = %+v", got[1])
	}

	if _, err := parseStrategies(""); err == nil {
		t.Error("want error for an empty strategy list")
	}
	if _, err := parseStrategies("steady"); err == nil {
		t.Error("want error for a strategy without an amount")
	}
}
