package pixel

import "testing"

func TestAddSat(t *testing.T) {
	cases := []struct {
		a, b Pixel
		want Pixel
	}{
		{Pixel{10, 10, 10}, Pixel{5, 5, 5}, Pixel{15, 15, 15}},
		{Pixel{250, 0, 0}, Pixel{10, 0, 0}, Pixel{255, 0, 0}},
		{Pixel{0, 0, 0}, Pixel{0, 0, 0}, Pixel{0, 0, 0}},
	}
	for i, tc := range cases {
		if got := tc.a.AddSat(tc.b); got != tc.want {
			t.Errorf("%d: AddSat(%v, %v) = %v, want %v", i, tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSubSat(t *testing.T) {
	cases := []struct {
		a, b Pixel
		want Pixel
	}{
		{Pixel{10, 10, 10}, Pixel{5, 5, 5}, Pixel{5, 5, 5}},
		{Pixel{5, 0, 0}, Pixel{10, 0, 0}, Pixel{0, 0, 0}},
	}
	for i, tc := range cases {
		if got := tc.a.SubSat(tc.b); got != tc.want {
			t.Errorf("%d: SubSat(%v, %v) = %v, want %v", i, tc.a, tc.b, got, tc.want)
		}
	}
}

func TestScaleVideoNeverZeroesNonzero(t *testing.T) {
	p := Pixel{1, 1, 1}
	got := p.ScaleVideo(1)
	if got.R == 0 || got.G == 0 || got.B == 0 {
		t.Errorf("ScaleVideo(1) on %v = %v, want all channels >= 1", p, got)
	}
}

func TestScaleVideoZeroStaysZero(t *testing.T) {
	p := Pixel{0, 0, 0}
	if got := p.ScaleVideo(200); got != Black {
		t.Errorf("ScaleVideo on black = %v, want black", got)
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := Pixel{10, 20, 30}
	b := Pixel{200, 100, 50}
	if got := Blend(a, b, 0); got != a {
		t.Errorf("Blend(a,b,0) = %v, want %v", got, a)
	}
	if got := Blend(a, b, 255); got != b {
		t.Errorf("Blend(a,b,255) = %v, want %v", got, b)
	}
}

func TestBlendMidpoint(t *testing.T) {
	a := Pixel{0, 0, 0}
	b := Pixel{255, 0, 254}
	got := Blend(a, b, 127)
	if got.R != 127 {
		t.Errorf("Blend midpoint R = %d, want 127", got.R)
	}
}
