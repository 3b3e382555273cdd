package simmer

import "testing"

func TestString(t *testing.T) {
	cases := []struct {
		temp Temperature
		want string
	}{
		{F(32), "32 °F"},
		{C(0), "0 °C"},
		{C(-40), "-40 °C"},
		{C(42.13), "42.13 °C"},
		{K(273.15), "273.15 K"},
	}
	for _, tc := range cases {
		if got := tc.temp.String(); got != tc.want {
			t.Errorf("String() = %q, expected %q", got, tc.want)
		}
	}
}

func TestAppendMatchesString(t *testing.T) {
	temps := []Temperature{F(32), C(-40), C(42.13), K(0), K(5778.15)}
	for _, temp := range temps {
		if got := string(temp.Append(nil)); got != temp.String() {
			t.Errorf("Append produced %q, String produced %q", got, temp.String())
		}
	}
}

func TestAppendExtendsDst(t *testing.T) {
	buf := []byte("ice is ")
	buf = F(32).Append(buf)
	if string(buf) != "ice is 32 °F" {
		t.Errorf("unexpected buffer contents %q", buf)
	}
}

func TestAppendDoesNotAllocate(t *testing.T) {
	buf := make([]byte, 0, 64)
	temp := K(273.15)
	allocs := testing.AllocsPerRun(100, func() {
		buf = temp.Append(buf[:0])
	})
	if allocs != 0 {
		t.Errorf("Append allocated %v times per run with sufficient capacity", allocs)
	}
}
