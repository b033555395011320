package collision

import "testing"

func TestCanCollideWithIsSymmetric(t *testing.T) {
	for _, a := range Layers() {
		for _, b := range Layers() {
			ca := NewCollider(Circle{Radius: 1}, a)
			cb := NewCollider(Circle{Radius: 1}, b)
			if ca.CanCollideWith(cb) != cb.CanCollideWith(ca) {
				t.Fatalf("%s vs %s: asymmetric", a, b)
			}
		}
	}
}

func TestCanCollideWithTable(t *testing.T) {
	cases := []struct {
		a, b Layer
		want bool
	}{
		{LayerShip, LayerBullet, true},
		{LayerShip, LayerSonarPulse, true},
		{LayerShip, LayerPlanet, true},
		{LayerShip, LayerShip, false},
		{LayerShipComponent, LayerBullet, true},
		{LayerShipComponent, LayerSonarPulse, false},
		{LayerShipComponent, LayerPlanet, false},
		{LayerBullet, LayerBullet, false},
		{LayerBullet, LayerPlanet, false},
		{LayerSonarPulse, LayerSonarPulse, false},
		{LayerPlanet, LayerPlanet, false},
	}
	for _, c := range cases {
		t.Run(c.a.String()+"_"+c.b.String(), func(t *testing.T) {
			got := NewCollider(Circle{}, c.a).CanCollideWith(NewCollider(Circle{}, c.b))
			if got != c.want {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestParseLayer(t *testing.T) {
	cases := []struct {
		in   string
		want Layer
		err  bool
	}{
		{"ship", LayerShip, false},
		{"ShipComponent", LayerShipComponent, false},
		{"sonar_pulse", LayerSonarPulse, false},
		{" Planet ", LayerPlanet, false},
		{"asteroid", 0, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseLayer(c.in)
			if c.err {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLayer: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %s, want %s", got, c.want)
			}
		})
	}
}
