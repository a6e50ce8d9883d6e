package geometry

import "testing"

func TestIntersectDisjoint(t *testing.T) {
	cases := []struct {
		name string
		a, b Segment
	}{
		{
			name: "disjoint crossing lines, non-overlapping ranges",
			a:    NewSegment(Vec2{0, 0}, Vec2{1, 0}),
			b:    NewSegment(Vec2{3, 1}, Vec2{4, 2}),
		},
		{
			name: "parallel disjoint",
			a:    NewSegment(Vec2{0, 0}, Vec2{10, 0}),
			b:    NewSegment(Vec2{0, 5}, Vec2{10, 5}),
		},
		{
			name: "collinear disjoint",
			a:    NewSegment(Vec2{0, 0}, Vec2{1, 0}),
			b:    NewSegment(Vec2{2, 0}, Vec2{3, 0}),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, ok := Intersect(c.a, c.b); ok {
				t.Fatalf("expected no intersection for %s", c.name)
			}
		})
	}
}

func TestIntersectMeets(t *testing.T) {
	cases := []struct {
		name string
		a, b Segment
		want Vec2
	}{
		{
			name: "touching endpoints",
			a:    NewSegment(Vec2{0, 0}, Vec2{1, 1}),
			b:    NewSegment(Vec2{1, 1}, Vec2{2, 0}),
			want: Vec2{1, 1},
		},
		{
			name: "crossing",
			a:    NewSegment(Vec2{0, 0}, Vec2{2, 2}),
			b:    NewSegment(Vec2{0, 2}, Vec2{2, 0}),
			want: Vec2{1, 1},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Intersect(c.a, c.b)
			if !ok {
				t.Fatalf("expected intersection for %s", c.name)
			}
			if !near(got.X, c.want.X) || !near(got.Y, c.want.Y) {
				t.Fatalf("got %v want %v", got, c.want)
			}

			// Symmetric under swapping either segment's endpoints.
			aRev := NewSegment(c.a.End(), c.a.P)
			if _, ok := Intersect(aRev, c.b); !ok {
				t.Fatalf("direction-reversed a failed to intersect")
			}
			bRev := NewSegment(c.b.End(), c.b.P)
			if _, ok := Intersect(c.a, bRev); !ok {
				t.Fatalf("direction-reversed b failed to intersect")
			}
		})
	}
}

func TestIntersectCollinearOverlap(t *testing.T) {
	a := NewSegment(Vec2{0, 0}, Vec2{10, 0})
	b := NewSegment(Vec2{5, 0}, Vec2{15, 0})

	got, ok := Intersect(a, b)
	if !ok {
		t.Fatal("expected overlap to be detected")
	}
	// Contract: returns an endpoint of the second segment.
	if got != b.P && got != b.End() {
		t.Fatalf("expected an endpoint of b, got %v", got)
	}
}
